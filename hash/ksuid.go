package hash

import "github.com/segmentio/ksuid"

// KSUID mints hashes of the form '_' followed by a KSUID. The KSUID payload
// is a 27-character base-62 string, so the client prefix contract holds, and
// unlike Counter hashes the result stays unique across factories and
// processes. Use it when client fragments minted in different places can end
// up in the same store.
type KSUID struct{}

var _ Generator = KSUID{}

// Next returns '_' followed by a fresh KSUID.
func (KSUID) Next() string {
	return "_" + ksuid.New().String()
}
