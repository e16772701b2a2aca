// Package segment stores a named set of values in a single encrypted cookie.
//
// A Segment is bound to one cookie name. On creation it reads the incoming
// cookie, decrypts it and loads the values into memory. Has, Get, Set and
// Remove work on that in-memory set; Save encrypts it and emits a replacement
// cookie, but only when something changed.
//
// # Fail-open
//
// Nothing that can go wrong with the client's cookie or with the cookie
// settings stops a request:
//
//   - a missing cookie yields an empty segment,
//   - a cookie that cannot be decrypted (wrong key, tampering, truncation)
//     yields an empty segment,
//   - an invalid TTL, Secure, HTTPOnly or SameSite value falls back to its
//     default when saving.
//
// Each case appends a human-readable message to Debug and is logged. An empty
// decrypted payload is treated like a failed decryption.
//
// # Usage
//
//	m, err := segment.NewManager(
//	    segment.WithKey(os.Getenv("SEGMENT_KEY")),
//	    segment.WithTTL(3600),
//	    segment.WithSecure(true),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    seg := m.Request(w, r, "userInfo")
//	    if !seg.Has("mail") {
//	        seg.Set("username", "john").Set("mail", "john@example.com")
//	        if err := seg.Save(); err != nil {
//	            // the cookie could not be encrypted or was too large
//	        }
//	    }
//	    fmt.Fprint(w, seg.Get("username", "Undefined"))
//	}
//
// Save must run before the response header is sent. Middleware does this
// automatically:
//
//	r := chi.NewRouter()
//	r.Use(m.Middleware("userInfo"))
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//	    seg := segment.MustFromContext(r.Context(), "userInfo")
//	    seg.Set("visits", segment.Value(seg, "visits", 0.0)+1)
//	})
//
// Outside HTTP handlers, `defer seg.Close()` saves on every return path.
//
// # Configuration
//
// Config carries env and yaml tags and can be loaded with the config
// package. Fields left empty keep their defaults:
//
//	algo      SHA256
//	cipher    AES-256-CTR
//	key       SecretCookie (placeholder, always override)
//	ttl       3600 seconds (at most MaxTTL)
//	path      /
//	domain    empty, the cookie is scoped to the current host
//	secure    false
//	httponly  true
//	samesite  Strict (None, Lax or Strict, case-insensitive)
//
// # Concurrency
//
// A Segment belongs to a single request and must not be shared between
// goroutines. A Manager is safe to share.
package segment
