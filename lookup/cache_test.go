package lookup

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_Get(t *testing.T) {
	c := New[string]()

	var calls atomic.Int32
	compute := func() (string, error) {
		calls.Add(1)
		return "value", nil
	}

	v, err := c.Get("k", compute)
	require.NoError(t, err)
	assert.Equal(t, "value", v)

	v, err = c.Get("k", compute)
	require.NoError(t, err)
	assert.Equal(t, "value", v)
	assert.Equal(t, int32(1), calls.Load(), "settled key should not recompute")
}

func TestCache_ConcurrentComputeOnce(t *testing.T) {
	c := New[int]()

	var calls atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := c.Get("k", func() (int, error) {
				calls.Add(1)
				return 42, nil
			})
			assert.NoError(t, err)
			assert.Equal(t, 42, v)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load(), "concurrent callers should share one computation")
}

func TestCache_ErrorsNotCached(t *testing.T) {
	c := New[string]()

	boom := errors.New("boom")
	_, err := c.Get("k", func() (string, error) { return "", boom })
	require.ErrorIs(t, err, boom)

	v, err := c.Get("k", func() (string, error) { return "ok", nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", v, "a failed computation should be retried")
}

func TestCache_PeekLenDelete(t *testing.T) {
	c := New[int]()

	_, ok := c.Peek("k")
	assert.False(t, ok)

	_, err := c.Get("k", func() (int, error) { return 7, nil })
	require.NoError(t, err)

	v, ok := c.Peek("k")
	assert.True(t, ok)
	assert.Equal(t, 7, v)
	assert.Equal(t, 1, c.Len())

	c.Delete("k")
	assert.Equal(t, 0, c.Len())
	_, ok = c.Peek("k")
	assert.False(t, ok)
}
