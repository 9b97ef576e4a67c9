package player

import (
	"github.com/google/uuid"

	"github.com/cobreklo/portafolio-api/internal/common"
	"github.com/cobreklo/portafolio-api/internal/registry"
)

// Sessions holds the live player sessions keyed by id. Sessions are
// in-memory only; a restart drops them and clients simply create new
// ones.
type Sessions struct {
	players *registry.Registry[*Player]
}

// NewSessions creates an empty session set.
func NewSessions() *Sessions {
	return &Sessions{players: registry.NewRegistry[*Player]()}
}

// Create starts a new idle session over a playlist of the given length
// and returns its id.
func (s *Sessions) Create(length int) (string, Snapshot) {
	id := uuid.NewString()
	p := New(length)
	s.players.Register(id, p)
	return id, p.Snapshot()
}

// Get returns the session with the given id.
func (s *Sessions) Get(id string) (*Player, error) {
	p, ok := s.players.Get(id)
	if !ok {
		return nil, common.ErrNotFound
	}
	return p, nil
}

// Remove drops a session.
func (s *Sessions) Remove(id string) {
	s.players.Remove(id)
}

// Count returns the number of live sessions.
func (s *Sessions) Count() int {
	return s.players.Len()
}
