package app

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordConn struct {
	mu     sync.Mutex
	closed int
}

func (c *recordConn) SendJSON(v any) error { return nil }

func (c *recordConn) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed++
}

func (c *recordConn) closedCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func TestCreateIfAbsentIsNewExactlyOnce(t *testing.T) {
	r := NewRegistry()

	s1, isNew := r.CreateIfAbsent("mtg-1", "stream-1")
	require.True(t, isNew)
	require.NotNil(t, s1)

	s2, isNew := r.CreateIfAbsent("mtg-1", "stream-other")
	assert.False(t, isNew)
	assert.Same(t, s1, s2)

	// After removal the identifier is fresh again.
	r.Remove("mtg-1")
	_, isNew = r.CreateIfAbsent("mtg-1", "stream-1")
	assert.True(t, isNew)
}

func TestCreateIfAbsentConcurrent(t *testing.T) {
	r := NewRegistry()

	var newCount int64
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, isNew := r.CreateIfAbsent("mtg-1", "stream-1"); isNew {
				atomic.AddInt64(&newCount, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), newCount)
	assert.Equal(t, 1, r.Len())
}

func TestRemoveClosesHandles(t *testing.T) {
	r := NewRegistry()
	s, _ := r.CreateIfAbsent("mtg-1", "stream-1")

	sig, med := &recordConn{}, &recordConn{}
	s.BindSignaling(sig)
	s.BindMedia(med)

	removed := r.Remove("mtg-1")
	require.Same(t, s, removed)
	assert.Equal(t, 1, sig.closedCount())
	assert.Equal(t, 1, med.closedCount())

	_, ok := r.Get("mtg-1")
	assert.False(t, ok)
}

func TestRemoveUnknownMeeting(t *testing.T) {
	r := NewRegistry()
	assert.Nil(t, r.Remove("nope"))
}
