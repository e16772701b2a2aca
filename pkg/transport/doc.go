// Package transport moves segment cookies between the client and the server.
//
// Transport is the boundary the segment package depends on: Read returns an
// incoming cookie value, Write emits an outgoing cookie described by
// Attributes. Two implementations are provided:
//
//   - HTTP, bound to one http.ResponseWriter / *http.Request pair. Writes are
//     validated with http.Cookie.Valid and rejected with ErrCookieTooLarge
//     when the Set-Cookie header exceeds MaxCookieSize (configurable with
//     WithMaxSize).
//   - Memory, an in-process jar that records every write. It backs the
//     segmentctl tool and the package tests.
//
// # Usage
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    t := transport.NewHTTP(w, r)
//	    raw, ok := t.Read("userInfo")
//	    _ = t.Write("userInfo", raw, transport.Attributes{Path: "/", HTTPOnly: true})
//	    _ = ok
//	}
package transport
