package segment

import (
	"net/http"

	"github.com/dmitrymomot/secretcookie/pkg/logger"
)

// Middleware opens the named segments for every request and makes them
// available through FromContext.
//
// Changed segments are saved right before the response header is written, or
// once the handler returns if it wrote nothing. Changes still pending after
// the header was sent cannot reach the client and are logged as a warning.
func (m *Manager) Middleware(names ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			tr := m.transport(w, r)

			segments := make([]*Segment, 0, len(names))
			for _, name := range names {
				s := m.Open(ctx, tr, name)
				segments = append(segments, s)
				ctx = WithSegment(ctx, s)
			}

			rw := newResponseWriter(w, func() {
				for _, s := range segments {
					// Failures are logged and kept in the segment diagnostics.
					_ = s.Save()
				}
			})

			next.ServeHTTP(rw, r.WithContext(ctx))

			if !rw.flushHooks() {
				for _, s := range segments {
					if s.Changed() {
						m.opts.logger.WarnContext(ctx, "segment has unsaved changes after the response was written",
							logger.Segment(s.Name()))
					}
				}
			}
		})
	}
}
