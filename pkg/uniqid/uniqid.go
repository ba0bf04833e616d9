package uniqid

import "github.com/forgelabs/uniqid/pkg/basex"

// Generator produces short, URL-safe, time-ordered identifiers by encoding
// 16-byte values from a Source with a fixed basex alphabet.
//
// A Generator is immutable after construction and safe for concurrent use
// as long as its Source is. Outputs from different alphabets are not
// interchangeable: pick one radix per deployment and stick with it.
//
// Lexicographic order of generated strings tracks generation time, with one
// boundary: string comparison is only numeric-order-preserving between
// encodings of equal length, and the encoded length can vary by one
// character across the 16-byte value range. Callers needing exact ordering
// should compare the decoded timestamp bytes instead.
type Generator struct {
	alphabet basex.Alphabet
	source   Source
}

// Option configures the Generator.
type Option func(*Generator)

// New creates a Generator with the given options. The defaults are the
// Base58 alphabet and a UUIDv7Source.
func New(opts ...Option) *Generator {
	g := &Generator{
		alphabet: basex.Base58,
		source:   UUIDv7Source{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// WithAlphabet sets the encoding alphabet.
func WithAlphabet(a basex.Alphabet) Option {
	return func(g *Generator) {
		g.alphabet = a
	}
}

// WithSource sets the 16-byte value source. Nil sources are ignored.
func WithSource(s Source) Option {
	return func(g *Generator) {
		if s != nil {
			g.source = s
		}
	}
}

// Generate returns a new identifier without a prefix. Source failures
// propagate unchanged.
func (g *Generator) Generate() (string, error) {
	v, err := g.source.Next()
	if err != nil {
		return "", err
	}
	return g.alphabet.Encode(v[:]), nil
}

// GenerateWithPrefix returns prefix + "_" + encoded value. The prefix is
// not validated or restricted; the empty prefix is legitimate and yields an
// identifier starting with an underscore, which is distinct from calling
// Generate.
func (g *Generator) GenerateWithPrefix(prefix string) (string, error) {
	s, err := g.Generate()
	if err != nil {
		return "", err
	}
	return prefix + "_" + s, nil
}

// MustGenerate is like Generate but panics on source failure.
func (g *Generator) MustGenerate() string {
	s, err := g.Generate()
	if err != nil {
		panic(err)
	}
	return s
}

// MustGenerateWithPrefix is like GenerateWithPrefix but panics on source failure.
func (g *Generator) MustGenerateWithPrefix(prefix string) string {
	s, err := g.GenerateWithPrefix(prefix)
	if err != nil {
		panic(err)
	}
	return s
}

// std backs the package-level convenience functions.
var std = New()

// Generate returns a new Base58-encoded UUIDv7 identifier without a prefix.
func Generate() (string, error) {
	return std.Generate()
}

// GenerateWithPrefix returns a new Base58-encoded UUIDv7 identifier with
// the given prefix and an underscore separator.
func GenerateWithPrefix(prefix string) (string, error) {
	return std.GenerateWithPrefix(prefix)
}

// MustGenerate is like Generate but panics on source failure.
func MustGenerate() string {
	return std.MustGenerate()
}

// MustGenerateWithPrefix is like GenerateWithPrefix but panics on source failure.
func MustGenerateWithPrefix(prefix string) string {
	return std.MustGenerateWithPrefix(prefix)
}
