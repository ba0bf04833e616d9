package basex

import "errors"

// Sentinel errors for alphabet construction and decoding.
var (
	// ErrInvalidCharacter is returned by Decode when the input contains a
	// character that is not part of the alphabet.
	ErrInvalidCharacter = errors.New("basex: invalid character")

	// ErrAlphabetTooShort is returned by NewAlphabet for alphabets with
	// fewer than two characters.
	ErrAlphabetTooShort = errors.New("basex: alphabet requires at least 2 characters")

	// ErrDuplicateCharacter is returned by NewAlphabet when a character
	// appears more than once.
	ErrDuplicateCharacter = errors.New("basex: duplicate character in alphabet")

	// ErrNonASCII is returned by NewAlphabet when the alphabet contains a
	// byte outside the printable ASCII range.
	ErrNonASCII = errors.New("basex: alphabet must be ASCII")
)
