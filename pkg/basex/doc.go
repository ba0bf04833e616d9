// Package basex implements positional base-N encoding of byte sequences over
// arbitrary alphabets.
//
// Unlike encoding/base32 or encoding/base64, the radix does not need to be a
// power of two: the input is treated as one big-endian unsigned integer and
// converted digit by digit using arbitrary-precision arithmetic. Leading zero
// bytes are preserved as leading copies of the alphabet's first character, so
// every encoding round-trips losslessly, including inputs that are all zeros.
//
// Basic usage:
//
//	import "github.com/forgelabs/uniqid/pkg/basex"
//
//	s := basex.Base58.Encode([]byte{0xde, 0xad, 0xbe, 0xef})
//	// Output: "6h8cQN"
//
//	b, err := basex.Base58.Decode(s)
//	// b == []byte{0xde, 0xad, 0xbe, 0xef}
//
// Two alphabets ship with the package:
//
//   - Base58: Bitcoin-style, excludes the visually ambiguous 0, O, I, l
//   - Base62: all alphanumerics in digits, lowercase, uppercase order
//
// Custom alphabets are supported via NewAlphabet:
//
//	hex, err := basex.NewAlphabet("0123456789abcdef")
//	if err != nil {
//		// invalid character set
//	}
//	s := hex.Encode([]byte{0x0f, 0xf0})
//	// Output: "0ff0"
//
// # Leading zeros
//
// Plain positional encoding drops leading zero bytes, because they carry no
// numeric value. Encode instead counts them and prepends one digit-0
// character per zero byte; Decode reverses this. As a consequence:
//
//	basex.Base62.Encode([]byte{0, 0, 0}) // "000"
//
// decodes back to exactly three zero bytes.
//
// # Errors
//
// Decode returns ErrInvalidCharacter (wrapped with the offending character
// and its position) when the input contains a character outside the
// alphabet. Encode cannot fail.
//
// All operations are pure functions on immutable data and safe for
// concurrent use.
package basex
