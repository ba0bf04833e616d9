package uniqid

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// Source yields 16-byte time-ordered unique values. The first 6 bytes must
// be a big-endian millisecond timestamp so that values generated later
// compare at or above earlier ones as raw big-endian integers.
//
// Implementations must be safe for concurrent use; Generator adds no
// synchronization of its own.
type Source interface {
	Next() ([16]byte, error)
}

// UUIDv7Source produces UUID version 7 values (RFC 9562). This is the
// default source: 48-bit millisecond timestamp followed by random bits,
// monotonic within the same millisecond.
type UUIDv7Source struct{}

// Next returns the raw bytes of a freshly generated UUIDv7. It fails only
// when the system entropy source is unavailable.
func (UUIDv7Source) Next() ([16]byte, error) {
	u, err := uuid.NewV7()
	if err != nil {
		return [16]byte{}, err
	}
	return [16]byte(u), nil
}

// ULIDSource produces ULID values: the same 48-bit millisecond timestamp
// prefix as UUIDv7, with 80 bits of monotonic entropy. Within a single
// millisecond consecutive values are strictly increasing.
type ULIDSource struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// NewULIDSource creates a ULIDSource backed by crypto/rand.
func NewULIDSource() *ULIDSource {
	return &ULIDSource{entropy: ulid.Monotonic(rand.Reader, 0)}
}

// Next returns the raw bytes of a freshly generated ULID. The monotonic
// entropy reader is not safe for concurrent use, so calls serialize on an
// internal mutex.
func (s *ULIDSource) Next() ([16]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := ulid.New(ulid.Timestamp(time.Now()), s.entropy)
	if err != nil {
		return [16]byte{}, err
	}
	return [16]byte(id), nil
}
