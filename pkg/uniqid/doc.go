// Package uniqid generates short, URL-safe, time-ordered unique identifiers
// with an optional human-readable prefix, e.g. "user_1BVXue8CnY6eSRFn2bDLFU".
//
// Each identifier is a 128-bit time-ordered value (UUIDv7 by default)
// encoded with a compact alphanumeric alphabet from pkg/basex. The first
// 48 bits are a millisecond timestamp, so identifiers sort by creation time
// and need no central allocator or coordination service.
//
// Basic usage:
//
//	import "github.com/forgelabs/uniqid/pkg/uniqid"
//
//	id, err := uniqid.GenerateWithPrefix("user")
//	// Output: "user_1BVXue8CnY6eSRFn2bDLFU"
//
//	id, err = uniqid.Generate()
//	// Output: "1BVXue8CnY6eSRFn2bDLFU" (no prefix, no underscore)
//
// # Configuration
//
// Construct a Generator to change the alphabet or the value source:
//
//	g := uniqid.New(
//		uniqid.WithAlphabet(basex.Base62),
//		uniqid.WithSource(uniqid.NewULIDSource()),
//	)
//	id, err := g.GenerateWithPrefix("order")
//
// Base58 (the default) excludes the visually ambiguous characters 0, O, I,
// and l; Base62 uses all alphanumerics. The two encodings are not
// interchangeable, so standardize on one per deployment.
//
// # Prefix semantics
//
// The prefix is free-form and never validated. An absent prefix and an
// empty prefix produce different shapes:
//
//	uniqid.MustGenerate()              // "29f8Xx..."  (no separator)
//	uniqid.MustGenerateWithPrefix("")  // "_29f8Xx..." (leading underscore)
//
// # Ordering
//
// Identifiers generated at least one millisecond apart compare in
// generation order as raw strings with the same prefix, with one caveat:
// the encoded length can occasionally differ by one character, and string
// comparison tracks numeric order only for equal-length strings. Decode the
// payload and compare its first 6 bytes when exact ordering matters.
//
// All errors originate in the value source (e.g. exhausted entropy) and
// propagate unchanged; the composer itself cannot fail.
package uniqid
