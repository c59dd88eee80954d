// Package session implements the game state machine: phase
// transitions, secret assignment, turn-ordered hint collection, vote
// tallies and win-condition checks. One Service routes commands to the
// addressed room's session; commands for one room run serialized,
// different rooms proceed independently.
package session

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shx-dow/impostor-hunt/internal/game"
	"github.com/shx-dow/impostor-hunt/internal/models"
	"github.com/shx-dow/impostor-hunt/internal/store"
)

// Service holds shared game dependencies
type Service struct {
	registry *store.Registry
	newRand  func() *rand.Rand
}

// NewService wires a command service over the registry
func NewService(registry *store.Registry) *Service {
	return NewServiceWithRand(registry, func() *rand.Rand {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	})
}

// NewServiceWithRand uses the given factory for per-session
// randomness. Tests pass a fixed seed to get reproducible shuffles.
func NewServiceWithRand(registry *store.Registry, newRand func() *rand.Rand) *Service {
	return &Service{registry: registry, newRand: newRand}
}

// Host creates a session for the room with the actor as host. The
// host is seated on the roster immediately.
func (s *Service) Host(room string, actor models.Player) (*models.Result, error) {
	session := &models.Session{
		Room:   room,
		Host:   actor,
		Phase:  models.PhaseSetup,
		Roster: []models.Player{actor},
		Votes:  make(map[string][]models.Player),
		Round:  1,
		Rng:    s.newRand(),
	}
	if err := s.registry.Create(room, session); err != nil {
		return nil, err
	}
	return &models.Result{
		Broadcast: fmt.Sprintf("%s is now hosting a game. Players can join with /join.", actor.Name),
	}, nil
}

// End tears the session down on the host's request
func (s *Service) End(room string, actor models.Player) (*models.Result, error) {
	session, err := s.acquire(room)
	if err != nil {
		return nil, err
	}
	defer session.Unlock()

	if actor.ID != session.Host.ID {
		return nil, game.ErrNotHost
	}

	s.destroy(session)
	return &models.Result{
		Broadcast: "The game has been ended by the host.",
		Ended:     true,
	}, nil
}

// acquire looks up the room's session and locks it. A session already
// torn down by a racing command reads as absent.
func (s *Service) acquire(room string) (*models.Session, error) {
	session, exists := s.registry.Get(room)
	if !exists {
		return nil, game.ErrNoSession
	}
	session.Lock()
	if session.Phase == models.PhaseEnded {
		session.Unlock()
		return nil, game.ErrNoSession
	}
	return session, nil
}

// destroy marks the session terminal and drops it from the registry
// (must be called with lock held)
func (s *Service) destroy(session *models.Session) {
	session.Phase = models.PhaseEnded
	s.registry.Remove(session.Room)
}
