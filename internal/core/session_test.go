package core

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeConn struct {
	mu     sync.Mutex
	closed int
}

func (f *fakeConn) SendJSON(v any) error { return nil }

func (f *fakeConn) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed++
}

func (f *fakeConn) closedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func TestSessionTranscriptAccumulation(t *testing.T) {
	s := NewSession("mtg", "stream")
	s.AppendTranscript("Alice: hi")
	s.AppendTranscript("Bob: hello")
	assert.Equal(t, "\n Alice: hi\n Bob: hello", s.Transcript())
}

func TestCloseHandlesClosesAndClears(t *testing.T) {
	s := NewSession("mtg", "stream")
	sig, med := &fakeConn{}, &fakeConn{}
	s.BindSignaling(sig)
	s.BindMedia(med)

	s.CloseHandles()

	assert.Equal(t, 1, sig.closedCount())
	assert.Equal(t, 1, med.closedCount())
	assert.Nil(t, s.Signaling())
	assert.Nil(t, s.Media())

	// Second call finds nothing to close.
	s.CloseHandles()
	assert.Equal(t, 1, sig.closedCount())
}

func TestCloseHandlesPartial(t *testing.T) {
	s := NewSession("mtg", "stream")
	sig := &fakeConn{}
	s.BindSignaling(sig)

	s.CloseHandles()
	assert.Equal(t, 1, sig.closedCount())
}
