package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Segment records the segment (cookie) name under the key "segment".
func Segment(name string) slog.Attr {
	return slog.String("segment", name)
}

// Diagnostic records a diagnostic message under the key "diagnostic".
func Diagnostic(msg string) slog.Attr {
	return slog.String("diagnostic", msg)
}

// Field records a configuration field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
