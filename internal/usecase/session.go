package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/metrics"
	"resume-builder/internal/model"
)

var ErrSessionNotFound = errors.New("session not found")

// Session is one user's editing state: the selected style and language, a
// working copy of the data for every style, and the last rendered preview.
type Session struct {
	ID uuid.UUID

	// unix nanoseconds of the last lookup
	lastUsed atomic.Int64

	mu       sync.Mutex
	styleID  string
	language string
	working  map[string]model.Resume
	preview  string
}

// SessionState is a point-in-time copy of a Session, safe to hand out.
type SessionState struct {
	ID       uuid.UUID      `json:"id"`
	StyleID  string         `json:"styleId"`
	Language string         `json:"language"`
	Features model.Features `json:"features"`
	Resume   model.Resume   `json:"resume"`
}

// Snapshot is the rendered document of a session, as consumed by exporters.
type Snapshot struct {
	SessionID uuid.UUID
	StyleID   string
	Language  string
	FileBase  string
	HTML      string
}

// Store keeps sessions in memory. Sessions are only ever created, looked up
// and dropped here; their contents are guarded by their own lock. Sessions
// left idle are removed by Sweep.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{sessions: map[uuid.UUID]*Session{}, now: time.Now}
}

func (s *Store) put(sess *Session) {
	sess.lastUsed.Store(s.now().UnixNano())
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	metrics.Sessions.Set(float64(len(s.sessions)))
	s.mu.Unlock()
}

// Get returns the session with the given id.
func (s *Store) Get(id uuid.UUID) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	sess.lastUsed.Store(s.now().UnixNano())
	return sess, nil
}

// Delete drops a session. Unknown ids are ignored.
func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	delete(s.sessions, id)
	metrics.Sessions.Set(float64(len(s.sessions)))
	s.mu.Unlock()
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep drops sessions not looked up for longer than maxIdle and returns how
// many it removed.
func (s *Store) Sweep(maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle).UnixNano()

	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, sess := range s.sessions {
		if sess.lastUsed.Load() < cutoff {
			delete(s.sessions, id)
			n++
		}
	}
	metrics.Sessions.Set(float64(len(s.sessions)))
	return n
}

// RunSweeper calls Sweep every interval until ctx is done. A non-positive
// maxIdle disables it.
func (s *Store) RunSweeper(ctx context.Context, interval, maxIdle time.Duration) {
	if maxIdle <= 0 || interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(maxIdle); n > 0 {
				slog.Info("idle sessions dropped", "count", n, "remaining", s.Len())
			}
		}
	}
}
