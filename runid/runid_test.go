package runid

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsUniqueAndOrdered(t *testing.T) {
	tm := time.Now()

	ul1, err := New(tm)
	require.NoError(t, err)
	ul2, err := New(tm)
	require.NoError(t, err)

	assert.NotEqual(t, ul1.String(), ul2.String())
	assert.Equal(t, ulid.Timestamp(tm), ul1.Time())
	assert.Equal(t, ul1.Time(), ul2.Time())
	t.Logf("ulid string 1 and 2: %s | %s", ul1, ul2)
}

func TestString(t *testing.T) {
	s := String()
	require.Len(t, s, ulid.EncodedSize)

	id, err := ulid.Parse(s)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), ulid.Time(id.Time()), time.Minute)
}
