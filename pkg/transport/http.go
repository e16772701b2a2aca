package transport

import (
	"errors"
	"fmt"
	"net/http"
)

// MaxCookieSize is the default limit for a Set-Cookie header (4KB).
const MaxCookieSize = 4096

// HTTP reads cookies from an incoming request and writes Set-Cookie headers
// to its response.
type HTTP struct {
	w       http.ResponseWriter
	r       *http.Request
	maxSize int
}

// Option configures the HTTP transport.
type Option func(*HTTP)

// WithMaxSize sets the maximum Set-Cookie header size.
func WithMaxSize(size int) Option {
	return func(t *HTTP) {
		if size > 0 {
			t.maxSize = size
		}
	}
}

// NewHTTP creates a transport bound to one request/response pair.
func NewHTTP(w http.ResponseWriter, r *http.Request, opts ...Option) *HTTP {
	t := &HTTP{w: w, r: r, maxSize: MaxCookieSize}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Read implements Transport.
func (t *HTTP) Read(name string) (string, bool) {
	c, err := t.r.Cookie(name)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}

// Write implements Transport.
func (t *HTTP) Write(name, value string, attrs Attributes) error {
	cookie := attrs.Cookie(name, value)

	if err := cookie.Valid(); err != nil {
		return errors.Join(ErrInvalidCookie, fmt.Errorf("cookie %q: %w", name, err))
	}

	if size := len(cookie.String()); size > t.maxSize {
		return ErrCookieTooLarge{Name: name, Size: size, Max: t.maxSize}
	}

	http.SetCookie(t.w, cookie)
	return nil
}
