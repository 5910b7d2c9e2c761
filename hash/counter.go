package hash

import (
	"go.uber.org/atomic"

	"github.com/graph-gophers/relayql-go/internal/base62"
)

// Counter mints hashes of the form '_' followed by the base-62 encoding of a
// monotonically increasing counter, starting at "_0". Hashes never repeat for
// the lifetime of the counter and may be minted concurrently. They are
// process local: do not persist them or share them across process boundaries.
type Counter struct {
	n atomic.Uint64
}

var _ Generator = (*Counter)(nil)

// NewCounter returns a counter whose first hash is "_0".
func NewCounter() *Counter {
	return &Counter{}
}

// Next returns the next hash in the sequence.
func (c *Counter) Next() string {
	return "_" + base62.Encode(c.n.Inc()-1)
}
