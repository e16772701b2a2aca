package segment

import "context"

type contextKey struct{ name string }

// WithSegment adds a segment to the context under its name.
func WithSegment(ctx context.Context, s *Segment) context.Context {
	return context.WithValue(ctx, contextKey{name: s.Name()}, s)
}

// FromContext retrieves the named segment from the context.
func FromContext(ctx context.Context, name string) (*Segment, bool) {
	s, ok := ctx.Value(contextKey{name: name}).(*Segment)
	return s, ok
}

// MustFromContext retrieves the named segment from the context or panics.
func MustFromContext(ctx context.Context, name string) *Segment {
	s, ok := FromContext(ctx, name)
	if !ok {
		panic("segment: " + name + " not found in context")
	}
	return s
}
