package models

import (
	"math/rand"
	"sync"
)

// Hint is one ledger entry, recorded in submission order.
type Hint struct {
	Author Player
	Text   string
}

// Session represents one active game in one chat room (ephemeral)
type Session struct {
	Room  string
	Host  Player
	Phase Phase

	Roster []Player

	// Assignments maps player ID -> secret payload. Entries for players
	// removed after assignment stay in the map; roster membership is
	// what gates voting and turn eligibility.
	Assignments map[string]string
	ImpostorID  string

	// ImpostorCount is sized from the roster at game start and used only
	// for win-condition arithmetic. The assignment engine seats exactly
	// one impostor regardless of roster size; for large rosters the two
	// numbers intentionally disagree (inherited game behavior).
	ImpostorCount int
	CrewCount     int

	TurnQueue []Player
	HintLog   []Hint
	Round     int

	// Votes maps candidate ID -> the voters who picked them. Cleared at
	// the start of every voting phase.
	Votes map[string][]Player

	// Rng drives shuffles and the impostor pick. Injected at creation
	// so tests can seed it. Only touched with the session lock held.
	Rng *rand.Rand

	mu sync.Mutex
}

// Lock acquires the session's lock. Commands for one room are
// serialized: a command runs to completion before the next is accepted.
func (s *Session) Lock() {
	s.mu.Lock()
}

// Unlock releases the session's lock
func (s *Session) Unlock() {
	s.mu.Unlock()
}

// InRoster reports whether the player ID is a current member (must be called with lock held)
func (s *Session) InRoster(id string) bool {
	for _, p := range s.Roster {
		if p.ID == id {
			return true
		}
	}
	return false
}

// RemoveFromRoster removes the player with the given ID (must be called with lock held)
func (s *Session) RemoveFromRoster(id string) {
	for i, p := range s.Roster {
		if p.ID == id {
			s.Roster = append(s.Roster[:i], s.Roster[i+1:]...)
			return
		}
	}
}

// HasVoted reports whether the player already cast a ballot this
// voting phase (must be called with lock held)
func (s *Session) HasVoted(id string) bool {
	for _, voters := range s.Votes {
		for _, v := range voters {
			if v.ID == id {
				return true
			}
		}
	}
	return false
}

// PurgeBallots drops every ballot cast by or for the given player,
// used when a player is removed mid-vote (must be called with lock held)
func (s *Session) PurgeBallots(id string) {
	delete(s.Votes, id)
	for candidate, voters := range s.Votes {
		kept := voters[:0]
		for _, v := range voters {
			if v.ID != id {
				kept = append(kept, v)
			}
		}
		if len(kept) == 0 {
			delete(s.Votes, candidate)
		} else {
			s.Votes[candidate] = kept
		}
	}
}

// VoterCount returns how many ballots have been cast this voting
// phase. Duplicate votes are rejected at submission, so this equals
// the number of distinct players who have voted.
func (s *Session) VoterCount() int {
	n := 0
	for _, voters := range s.Votes {
		n += len(voters)
	}
	return n
}
