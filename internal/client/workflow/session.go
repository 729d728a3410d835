package workflow

import (
	"sync"

	"github.com/google/uuid"
)

// Session is the per-process application context shared by both panels.
// The artifact key is last-write-wins.
type Session struct {
	mu     sync.RWMutex
	id     string
	fileID string
}

// NewSession starts a session with a fresh random identifier.
func NewSession() *Session {
	return &Session{id: uuid.NewString()}
}

// ID is sent to the service with every request.
func (s *Session) ID() string {
	return s.id
}

// FileID returns the current artifact key.
func (s *Session) FileID() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fileID, s.fileID != ""
}

func (s *Session) SetFileID(id string) {
	s.mu.Lock()
	s.fileID = id
	s.mu.Unlock()
}

func (s *Session) ClearFileID() {
	s.SetFileID("")
}
