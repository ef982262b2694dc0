// Package runid generates sortable identifiers for audit runs.
package runid

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"io"
	mathrand "math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var monotonicPool = sync.Pool{
	New: func() any {
		var seed int64
		if err := binary.Read(cryptorand.Reader, binary.BigEndian, &seed); err != nil {
			seed = time.Now().UnixNano()
		}
		rand := mathrand.New(mathrand.NewSource(seed))
		return ulid.Monotonic(rand, 0)
	},
}

// New returns a ULID for t. IDs made from the same entropy source within
// one millisecond sort in creation order.
func New(t time.Time) (ulid.ULID, error) {
	mono := monotonicPool.Get().(io.Reader)
	defer monotonicPool.Put(mono)

	return ulid.New(ulid.Timestamp(t), mono)
}

// String returns a new run ID for the current time, or an empty string if
// the entropy source is exhausted.
func String() string {
	id, err := New(time.Now())
	if err != nil {
		return ""
	}
	return id.String()
}
