package game

import "errors"

// Command failure kinds. All of them are recoverable; the transport
// layer renders the message verbatim into the room and the session is
// left untouched.
var (
	ErrSessionExists = errors.New("a game is already in progress")
	ErrNoSession     = errors.New("no game is being hosted")
	ErrWrongPhase    = errors.New("that command is not available right now")
	ErrNotHost       = errors.New("only the host can do that")
	ErrAlreadyJoined = errors.New("you are already in the game")
	ErrNotInGame     = errors.New("you are not in the current game")
	ErrNotYourTurn   = errors.New("it is not your turn to give a hint")
	ErrDuplicateVote = errors.New("you have already voted")
	ErrUnknownPlayer = errors.New("the specified player is not here")
)

// ErrEmptyQueue signals an advance on a drained turn queue. It marks a
// logic bug: every caller checks the queue before advancing, so this
// error should never reach a room.
var ErrEmptyQueue = errors.New("turn queue is empty")
