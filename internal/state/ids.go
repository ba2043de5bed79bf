package state

import (
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator hands out identities; one instance is shared by every store
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator generates random UUIDv4 identities
type UUIDGenerator struct{}

// NewID returns a new random identity
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// Sequence generates monotonic numeric-string identities
type Sequence struct {
	next atomic.Uint64
}

// NewSequence creates a sequence whose first identity is start
func NewSequence(start uint64) *Sequence {
	s := &Sequence{}
	s.next.Store(start)
	return s
}

// NewID returns the next identity in the sequence
func (s *Sequence) NewID() string {
	return strconv.FormatUint(s.next.Add(1)-1, 10)
}

// NewGenerator builds the generator named by strategy (uuid/sequence)
func NewGenerator(strategy string) (IDGenerator, error) {
	switch strategy {
	case "uuid":
		return UUIDGenerator{}, nil
	case "sequence":
		return NewSequence(1), nil
	default:
		return nil, fmt.Errorf("unsupported id strategy: %s", strategy)
	}
}
