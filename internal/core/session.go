// Package core defines the session state and the interfaces between the
// channel drivers, the dispatcher and the external collaborators.
package core

import (
	"strings"
	"sync"
)

// Session is one meeting's live state: both channel handles, the accumulated
// transcript, the in-progress analysis window and the target document id.
// All mutation goes through methods holding the session lock; both channel
// drivers, the windower and the dispatcher touch the same instance.
type Session struct {
	MeetingUUID string
	StreamID    string

	mu         sync.Mutex
	signaling  Conn
	media      Conn
	transcript strings.Builder
	window     []string
	pageID     string
}

func NewSession(meetingUUID, streamID string) *Session {
	return &Session{MeetingUUID: meetingUUID, StreamID: streamID}
}

func (s *Session) BindSignaling(c Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.signaling = c
}

func (s *Session) ClearSignaling() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.signaling = nil
}

func (s *Session) Signaling() Conn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.signaling
}

func (s *Session) BindMedia(c Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.media = c
}

func (s *Session) ClearMedia() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.media = nil
}

func (s *Session) Media() Conn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.media
}

func (s *Session) SetPageID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pageID = id
}

func (s *Session) PageID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pageID
}

// AppendTranscript records one labeled line into the full transcript.
func (s *Session) AppendTranscript(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript.WriteString("\n ")
	s.transcript.WriteString(line)
}

func (s *Session) Transcript() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transcript.String()
}

// PushWindow appends line to the current analysis window. When the window
// reaches max lines it is snapshotted, reset and returned. Lines keep their
// arrival order; the triggering line is part of the snapshot.
func (s *Session) PushWindow(line string, max int) ([]string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.window = append(s.window, line)
	if len(s.window) < max {
		return nil, false
	}
	snap := s.window
	s.window = nil
	return snap, true
}

// CloseHandles closes whichever channel handles are still open and clears
// them. Safe to call more than once.
func (s *Session) CloseHandles() {
	s.mu.Lock()
	sig, med := s.signaling, s.media
	s.signaling, s.media = nil, nil
	s.mu.Unlock()

	if sig != nil {
		sig.Close()
	}
	if med != nil {
		med.Close()
	}
}
