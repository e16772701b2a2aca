// Package bag provides Bag, the in-memory key/value container behind a cookie
// segment.
//
// A Bag maps string keys to arbitrary values. It remembers the order in which
// keys were first inserted so that Keys is deterministic, but lookups never
// depend on that order. The package has no persistence awareness: encoding,
// encryption and transport are handled by the segment package.
//
// # Usage
//
//	b := bag.New(nil)
//	b.Set("username", "john").Set("theme", "dark")
//
//	if b.Has("theme") {
//	    theme := bag.Value(b, "theme", "light")
//	    _ = theme
//	}
//
//	snapshot := b.All() // safe to serialize, independent of b
//
// Bag is not safe for concurrent use.
package bag
