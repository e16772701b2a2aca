package transport

import (
	"net/http"
	"time"
)

// Transport reads incoming cookies and emits outgoing ones.
type Transport interface {
	// Read returns the raw value of the named incoming cookie.
	// ok is false when the cookie is absent or empty.
	Read(name string) (value string, ok bool)

	// Write emits a cookie with the given value and attributes.
	Write(name, value string, attrs Attributes) error
}

// Attributes describes an outgoing cookie.
type Attributes struct {
	Expires time.Time
	// MaxAge follows net/http semantics: 0 omits the attribute,
	// a negative value deletes the cookie.
	MaxAge   int
	Path     string
	Domain   string // omitted when empty, the browser then scopes the cookie to the current host
	Secure   bool
	HTTPOnly bool
	SameSite http.SameSite
}

// Cookie builds the http.Cookie for name and value.
func (a Attributes) Cookie(name, value string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     a.Path,
		Domain:   a.Domain,
		Expires:  a.Expires,
		MaxAge:   a.MaxAge,
		Secure:   a.Secure,
		HttpOnly: a.HTTPOnly,
		SameSite: a.SameSite,
	}
}
