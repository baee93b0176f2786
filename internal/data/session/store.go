package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"pos-terminal/internal/data/entity"

	"go.uber.org/zap"
)

// Store holds the terminal's authenticated identity. The record is
// written through to a JSON file before any in-memory change is
// visible, so a restart right after login or logout always observes
// the same state the operator last saw.
type Store struct {
	mu      sync.RWMutex
	path    string
	current *entity.Session
	log     *zap.Logger
}

// NewStore loads the persisted session once at startup. A missing file
// means logged out; a corrupt or invalid record is dropped silently
// (logged, never surfaced) and the file is removed so the next start
// does not trip over it again.
func NewStore(path string, log *zap.Logger) *Store {
	s := &Store{
		path: path,
		log:  log.With(zap.String("store", "session")),
	}
	s.current = s.load()
	return s
}

func (s *Store) load() *entity.Session {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Warn("Failed to read session file, starting logged out",
				zap.String("path", s.path), zap.Error(err))
		}
		return nil
	}

	var sess entity.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		s.log.Warn("Corrupt session record discarded",
			zap.String("path", s.path), zap.Error(err))
		os.Remove(s.path)
		return nil
	}

	if !sess.Valid() {
		s.log.Warn("Invalid session record discarded",
			zap.String("username", sess.Username),
			zap.String("role", string(sess.Role)))
		os.Remove(s.path)
		return nil
	}

	s.log.Info("Session restored",
		zap.String("username", sess.Username),
		zap.String("role", string(sess.Role)))
	return &sess
}

// Get returns the current session or nil when logged out. It is
// synchronous and side-effect-free; route guards call it on every
// request.
func (s *Store) Get() *entity.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Login records the identity the backend asserted. No credential
// checking happens here; that already happened on the backend. The
// persisted copy is written before the in-memory switch.
func (s *Store) Login(sess *entity.Session) error {
	if !sess.Valid() {
		return fmt.Errorf("refusing to store invalid session")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	s.current = sess
	return nil
}

// Logout clears the persisted copy first, then the in-memory state, so
// a restart immediately after logout never resurrects the old session.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear persisted session: %w", err)
	}

	s.current = nil
	return nil
}
