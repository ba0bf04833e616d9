package basex_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/forgelabs/uniqid/pkg/basex"
)

// Round-trip identity over arbitrary byte sequences, for both alphabets.
func TestRoundTripProperty(t *testing.T) {
	t.Parallel()

	alphabets := map[string]basex.Alphabet{
		"base58": basex.Base58,
		"base62": basex.Base62,
	}

	for name, alphabet := range alphabets {
		alphabet := alphabet
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			rapid.Check(t, func(t *rapid.T) {
				input := rapid.SliceOfN(rapid.Byte(), 0, 64).Draw(t, "input")

				encoded := alphabet.Encode(input)
				decoded, err := alphabet.Decode(encoded)
				require.NoError(t, err)
				require.Equal(t, input, decoded, "round trip mismatch for %x", input)
			})
		})
	}
}

// Encoded output length never shrinks below the leading-zero count, and the
// digit-0 prefix length always equals the number of leading zero bytes.
func TestLeadingZeroProperty(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		zeros := rapid.IntRange(0, 16).Draw(t, "zeros")
		tail := rapid.SliceOfN(rapid.Byte(), 0, 16).Draw(t, "tail")

		input := make([]byte, zeros, zeros+len(tail))
		input = append(input, tail...)

		encoded := basex.Base62.Encode(input)

		prefix := 0
		for prefix < len(encoded) && encoded[prefix] == '0' {
			prefix++
		}

		// The digit-0 run may extend past the zero-byte count only when the
		// numeric part itself begins with a zero digit, which cannot happen:
		// big-integer encoding never emits a most-significant zero digit.
		wantZeros := zeros
		for i := zeros; i < len(input); i++ {
			if input[i] != 0 {
				break
			}
			wantZeros++
		}
		require.Equal(t, wantZeros, prefix, "digit-0 prefix must match leading zero bytes in %x", input)
	})
}
