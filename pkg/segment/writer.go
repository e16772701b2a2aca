package segment

import (
	"net/http"
	"sync"
)

// responseWriter runs a hook once, before the first header or body write.
type responseWriter struct {
	http.ResponseWriter
	once   sync.Once
	before func()
}

func newResponseWriter(w http.ResponseWriter, before func()) *responseWriter {
	return &responseWriter{ResponseWriter: w, before: before}
}

// flushHooks runs the hook if it has not run yet.
// It reports whether this call ran it.
func (w *responseWriter) flushHooks() bool {
	ran := false
	w.once.Do(func() {
		w.before()
		ran = true
	})
	return ran
}

func (w *responseWriter) WriteHeader(code int) {
	w.flushHooks()
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.flushHooks()
	return w.ResponseWriter.Write(b)
}

// Flush implements http.Flusher. Flushing sends the header, so the hook runs first.
func (w *responseWriter) Flush() {
	w.flushHooks()
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
