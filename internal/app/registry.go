package app

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/okorch/notetaker/internal/core"
)

// Registry is the process-wide map from meeting UUID to live session state.
// It is the only structure mutated by both channel drivers and the webhook
// handler, so every mutation takes the registry lock.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*core.Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*core.Session)}
}

// CreateIfAbsent returns the session for meetingUUID, creating it when
// absent. The second result reports whether this call created it; that is
// the trigger for requesting a meeting document exactly once per meeting.
func (r *Registry) CreateIfAbsent(meetingUUID, streamID string) (*core.Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[meetingUUID]; ok {
		return s, false
	}
	s := core.NewSession(meetingUUID, streamID)
	r.sessions[meetingUUID] = s
	log.Info().Str("module", "app.registry").Str("meeting", meetingUUID).Msg("created session")
	return s, true
}

func (r *Registry) Get(meetingUUID string) (*core.Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[meetingUUID]
	return s, ok
}

// Remove drops the session and closes any still-open channel handles.
// Returns the removed session, nil when the meeting is unknown.
func (r *Registry) Remove(meetingUUID string) *core.Session {
	r.mu.Lock()
	s, ok := r.sessions[meetingUUID]
	delete(r.sessions, meetingUUID)
	r.mu.Unlock()
	if !ok {
		return nil
	}
	s.CloseHandles()
	log.Info().Str("module", "app.registry").Str("meeting", meetingUUID).Msg("removed session")
	return s
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
