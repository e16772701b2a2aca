package transport

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCookie indicates the cookie name, value or attributes cannot
	// be represented in a Set-Cookie header.
	ErrInvalidCookie = errors.New("invalid cookie")
)

// ErrCookieTooLarge indicates the cookie exceeds the maximum allowed size.
type ErrCookieTooLarge struct {
	Name string
	Size int
	Max  int
}

// Error implements the error interface.
func (e ErrCookieTooLarge) Error() string {
	return fmt.Sprintf("cookie %q size %d exceeds maximum %d bytes", e.Name, e.Size, e.Max)
}
