package basex

import (
	"fmt"
	"math/big"
)

// Built-in alphabet character sets.
const (
	// Bitcoin-style base58: excludes 0, O, I, and l to avoid visual ambiguity.
	base58Chars = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

	// Base62: digits, then lowercase, then uppercase.
	base62Chars = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Ready-made alphabets.
var (
	// Base58 excludes the visually ambiguous characters 0, O, I, and l.
	Base58 = mustAlphabet(base58Chars)

	// Base62 covers all alphanumeric characters: 0-9, a-z, A-Z.
	Base62 = mustAlphabet(base62Chars)
)

// Alphabet defines a positional base-N encoding over a fixed, ordered
// character set. The character at index i represents digit value i; the
// character at index 0 doubles as the padding digit for leading zero bytes.
//
// Alphabet is an immutable value type. The zero value is not usable; obtain
// one from NewAlphabet or use the package-level Base58 or Base62.
type Alphabet struct {
	chars  string
	lookup [256]int8 // byte -> digit value, -1 when not in the alphabet
	radix  int
}

// NewAlphabet builds an Alphabet from the given ordered character set.
// Characters must be unique printable ASCII bytes, and at least two are
// required. Character order defines digit values: chars[i] encodes digit i.
func NewAlphabet(chars string) (Alphabet, error) {
	if len(chars) < 2 {
		return Alphabet{}, ErrAlphabetTooShort
	}

	a := Alphabet{chars: chars, radix: len(chars)}
	for i := range a.lookup {
		a.lookup[i] = -1
	}
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		if c < '!' || c > '~' {
			return Alphabet{}, fmt.Errorf("%w: byte 0x%02x at index %d", ErrNonASCII, c, i)
		}
		if a.lookup[c] >= 0 {
			return Alphabet{}, fmt.Errorf("%w: %q", ErrDuplicateCharacter, c)
		}
		a.lookup[c] = int8(i)
	}
	return a, nil
}

func mustAlphabet(chars string) Alphabet {
	a, err := NewAlphabet(chars)
	if err != nil {
		panic(err)
	}
	return a
}

// Radix returns the number of characters in the alphabet.
func (a Alphabet) Radix() int { return a.radix }

// String returns the character set in digit order.
func (a Alphabet) String() string { return a.chars }

// Encode converts src to its base-N representation, treating the bytes as a
// big-endian unsigned integer. Each leading zero byte becomes one copy of the
// alphabet's first character, so an all-zero input of length L encodes to L
// such characters and the original length survives a round trip through
// Decode. Empty input encodes to the empty string.
func (a Alphabet) Encode(src []byte) string {
	zeros := 0
	for zeros < len(src) && src[zeros] == 0 {
		zeros++
	}

	// Digits accumulate least-significant first.
	num := new(big.Int).SetBytes(src[zeros:])
	radix := big.NewInt(int64(a.radix))
	rem := new(big.Int)
	var digits []byte
	for num.Sign() > 0 {
		num.DivMod(num, radix, rem)
		digits = append(digits, a.chars[rem.Int64()])
	}

	out := make([]byte, zeros+len(digits))
	for i := 0; i < zeros; i++ {
		out[i] = a.chars[0]
	}
	for i, d := range digits {
		out[len(out)-1-i] = d
	}
	return string(out)
}

// Decode is the inverse of Encode. It returns ErrInvalidCharacter if s
// contains a character outside the alphabet. Leading copies of the
// alphabet's first character are restored as zero bytes, so the decoded
// length matches the originally encoded input exactly.
func (a Alphabet) Decode(s string) ([]byte, error) {
	zero := a.chars[0]
	zeros := 0
	for zeros < len(s) && s[zeros] == zero {
		zeros++
	}

	num := new(big.Int)
	radix := big.NewInt(int64(a.radix))
	digit := new(big.Int)
	for i := zeros; i < len(s); i++ {
		d := a.lookup[s[i]]
		if d < 0 {
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidCharacter, s[i], i)
		}
		num.Mul(num, radix)
		num.Add(num, digit.SetInt64(int64(d)))
	}

	value := num.Bytes()
	out := make([]byte, zeros+len(value))
	copy(out[zeros:], value)
	return out, nil
}
