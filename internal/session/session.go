package session

import (
	"fmt"

	"github.com/shx-dow/impostor-hunt/internal/game"
	"github.com/shx-dow/impostor-hunt/internal/models"
	"github.com/shx-dow/impostor-hunt/internal/render"
)

// Join adds the actor to the roster. Only possible while the game is
// still being set up.
func (s *Service) Join(room string, actor models.Player) (*models.Result, error) {
	session, err := s.acquire(room)
	if err != nil {
		return nil, err
	}
	defer session.Unlock()

	if session.InRoster(actor.ID) {
		return nil, game.ErrAlreadyJoined
	}
	if session.Phase != models.PhaseSetup {
		return nil, game.ErrWrongPhase
	}

	session.Roster = append(session.Roster, actor)
	return &models.Result{
		Broadcast: fmt.Sprintf("%s has joined the game. %s", actor.Name, render.RosterLine(session.Roster)),
	}, nil
}

// Leave removes the actor from the roster. Draining the roster to
// zero cancels the session.
func (s *Service) Leave(room string, actor models.Player) (*models.Result, error) {
	session, err := s.acquire(room)
	if err != nil {
		return nil, err
	}
	defer session.Unlock()

	if !session.InRoster(actor.ID) {
		return nil, game.ErrNotInGame
	}

	session.RemoveFromRoster(actor.ID)
	if len(session.Roster) == 0 {
		s.destroy(session)
		return &models.Result{
			Broadcast: fmt.Sprintf("%s has left the game. No players left, the game has been canceled.", actor.Name),
			Ended:     true,
		}, nil
	}

	broadcast := fmt.Sprintf("%s has left the game. %s", actor.Name, render.RosterLine(session.Roster))
	extra, ended := s.dropFromPlay(session, actor.ID)
	return &models.Result{Broadcast: broadcast + extra, Ended: ended}, nil
}

// Kick lets the host remove a player. The turn queue is regenerated
// over the reduced roster.
func (s *Service) Kick(room string, actor, target models.Player) (*models.Result, error) {
	session, err := s.acquire(room)
	if err != nil {
		return nil, err
	}
	defer session.Unlock()

	if actor.ID != session.Host.ID {
		return nil, game.ErrNotHost
	}
	if !session.InRoster(target.ID) {
		return nil, game.ErrNotInGame
	}

	session.RemoveFromRoster(target.ID)
	if len(session.Roster) == 0 {
		s.destroy(session)
		return &models.Result{
			Broadcast: fmt.Sprintf("%s has been kicked from the game. No players left, the game has been canceled.", target.Name),
			Ended:     true,
		}, nil
	}

	broadcast := fmt.Sprintf("%s has been kicked from the game. %s", target.Name, render.RosterLine(session.Roster))
	extra, ended := s.dropFromPlay(session, target.ID)
	return &models.Result{Broadcast: broadcast + extra, Ended: ended}, nil
}

// dropFromPlay repairs in-game state after a leave or kick: the turn
// queue stays inside the shrunken roster, and mid-vote the removed
// player's ballots are voided. Dropping the last player yet to vote
// can itself complete the quorum, so the tally re-checks here too.
// Returns extra broadcast text and whether the session ended (must be
// called with lock held).
func (s *Service) dropFromPlay(session *models.Session, removedID string) (string, bool) {
	switch session.Phase {
	case models.PhasePlaying:
		session.TurnQueue = game.Reshuffle(session.Roster, session.Rng)
		return "\nUpdated " + render.HintOrder(session.TurnQueue), false
	case models.PhaseVoting:
		session.TurnQueue = game.Reshuffle(session.Roster, session.Rng)
		session.PurgeBallots(removedID)
		if session.VoterCount() >= len(session.Roster) {
			verdict, ended := s.evaluateVotes(session)
			return "\n" + verdict, ended
		}
	}
	return "", false
}

// SetSecrets binds the two payloads to the roster: one player drawn
// uniformly at random gets the minority payload, everyone else the
// majority. The full table goes privately to the host, never to the
// room. Moves setup to ready; the host may re-run it before starting.
func (s *Service) SetSecrets(room string, actor models.Player, majority, minority string) (*models.Result, error) {
	session, err := s.acquire(room)
	if err != nil {
		return nil, err
	}
	defer session.Unlock()

	if actor.ID != session.Host.ID {
		return nil, game.ErrNotHost
	}
	if session.Phase != models.PhaseSetup && session.Phase != models.PhaseReady {
		return nil, game.ErrWrongPhase
	}

	assignment := game.Assign(session.Roster, majority, minority, session.Rng)
	session.Assignments = assignment.Payloads
	session.ImpostorID = assignment.ImpostorID
	session.Phase = models.PhaseReady

	return &models.Result{
		Broadcast: "Secrets are set. The game is ready to start.",
		Private: []models.Direct{
			{To: session.Host, Text: render.AssignmentTable(session.Roster, session.Assignments)},
		},
	}, nil
}

// Start moves the ready session into play: sizes the impostor count
// from the roster, deals every player their secret payload privately
// and seeds the hint order.
func (s *Service) Start(room string, actor models.Player) (*models.Result, error) {
	session, err := s.acquire(room)
	if err != nil {
		return nil, err
	}
	defer session.Unlock()

	if actor.ID != session.Host.ID {
		return nil, game.ErrNotHost
	}
	if session.Phase != models.PhaseReady {
		return nil, game.ErrWrongPhase
	}

	session.ImpostorCount = game.ImpostorCountFor(len(session.Roster))
	session.CrewCount = len(session.Roster) - session.ImpostorCount
	session.Round = 1
	session.TurnQueue = game.Reshuffle(session.Roster, session.Rng)
	session.Phase = models.PhasePlaying

	private := make([]models.Direct, 0, len(session.Roster))
	for _, p := range session.Roster {
		private = append(private, models.Direct{
			To:   p,
			Text: fmt.Sprintf("The word you got is: %s.", session.Assignments[p.ID]),
		})
	}

	return &models.Result{
		Broadcast: fmt.Sprintf(
			"Game started with %d players. Use /hint to give hints and /vote to vote for the impostor. %s",
			len(session.Roster), render.HintOrder(session.TurnQueue)),
		Private: private,
	}, nil
}

// GiveHint records the actor's hint if it is their turn, then either
// hands the turn on, opens another hint round, or moves to voting.
func (s *Service) GiveHint(room string, actor models.Player, text string) (*models.Result, error) {
	session, err := s.acquire(room)
	if err != nil {
		return nil, err
	}
	defer session.Unlock()

	if session.Phase != models.PhasePlaying {
		return nil, game.ErrWrongPhase
	}
	if !session.InRoster(actor.ID) {
		return nil, game.ErrNotInGame
	}

	current, ok := game.CurrentTurn(session.TurnQueue)
	if !ok {
		// The queue is refilled or the phase advanced before it can
		// drain while playing, so this is a logic bug.
		return nil, game.ErrEmptyQueue
	}
	if current.ID != actor.ID {
		return nil, game.ErrNotYourTurn
	}

	session.HintLog = append(session.HintLog, models.Hint{Author: actor, Text: text})
	_, rest, err := game.Advance(session.TurnQueue)
	if err != nil {
		return nil, err
	}
	session.TurnQueue = rest

	recorded := fmt.Sprintf("Hint recorded from %s.", actor.Name)

	if next, ok := game.CurrentTurn(session.TurnQueue); ok {
		return &models.Result{
			Broadcast: fmt.Sprintf("%s Next up: %s", recorded, next.Name),
		}, nil
	}

	if game.NeedsAnotherRound(len(session.Roster), session.ImpostorCount, session.Round) {
		session.Round++
		session.TurnQueue = game.Reshuffle(session.Roster, session.Rng)
		return &models.Result{
			Broadcast: fmt.Sprintf("%s Round %d of hint giving starts now. %s",
				recorded, session.Round, render.HintOrder(session.TurnQueue)),
		}, nil
	}

	session.Phase = models.PhaseVoting
	session.Votes = make(map[string][]models.Player)
	return &models.Result{
		Broadcast: recorded + " All hints are in. Vote for the impostor with /vote.",
	}, nil
}

// ListHints renders the full hint ledger for the room
func (s *Service) ListHints(room string, actor models.Player) (*models.Result, error) {
	session, err := s.acquire(room)
	if err != nil {
		return nil, err
	}
	defer session.Unlock()

	return &models.Result{Broadcast: render.HintLog(session.HintLog)}, nil
}

// Vote records one ballot per living player. Once every rostered
// player has voted the tally evaluates automatically.
func (s *Service) Vote(room string, actor, target models.Player) (*models.Result, error) {
	session, err := s.acquire(room)
	if err != nil {
		return nil, err
	}
	defer session.Unlock()

	if session.Phase != models.PhaseVoting {
		return nil, game.ErrWrongPhase
	}
	if !session.InRoster(actor.ID) || !session.InRoster(target.ID) {
		return nil, game.ErrNotInGame
	}
	if session.HasVoted(actor.ID) {
		return nil, game.ErrDuplicateVote
	}

	session.Votes[target.ID] = append(session.Votes[target.ID], actor)
	broadcast := fmt.Sprintf("%s voted for %s.", actor.Name, target.Name)

	if session.VoterCount() < len(session.Roster) {
		return &models.Result{Broadcast: broadcast}, nil
	}

	verdict, ended := s.evaluateVotes(session)
	return &models.Result{
		Broadcast: broadcast + "\n" + verdict,
		Ended:     ended,
	}, nil
}

// evaluateVotes resolves a completed voting phase (must be called with
// lock held). A unique plurality either ends the game or eliminates
// the accused; a tie re-runs the vote.
func (s *Service) evaluateVotes(session *models.Session) (string, bool) {
	result := game.CountVotes(session.Votes, session.Roster)

	if result.IsTie {
		session.Votes = make(map[string][]models.Player)
		session.TurnQueue = game.Reshuffle(session.Roster, session.Rng)
		return "No consensus was reached. Vote again.", false
	}

	accused := result.Accused
	if accused.ID == session.ImpostorID {
		s.destroy(session)
		return fmt.Sprintf("%s was the impostor. Crewmates win!", accused.Name), true
	}

	session.CrewCount--
	session.RemoveFromRoster(accused.ID)
	session.TurnQueue = game.Reshuffle(session.Roster, session.Rng)

	if len(session.Roster) <= game.ElimRosterFloor || session.ImpostorCount >= session.CrewCount {
		s.destroy(session)
		return fmt.Sprintf("%s was not the impostor. They have been eliminated. Impostor wins! Game over.", accused.Name), true
	}

	session.Votes = make(map[string][]models.Player)
	session.Phase = models.PhasePlaying
	return fmt.Sprintf("%s was not the impostor. They have been eliminated. Continuing with %d crewmates left. %s",
		accused.Name, session.CrewCount, render.HintOrder(session.TurnQueue)), false
}
