package game

const (
	// MaxHintRounds caps hint giving for games that get more than one
	// round of hints
	MaxHintRounds = 3

	// SmallRosterLimit is the roster size below which a game always
	// gets extra hint rounds
	SmallRosterLimit = 5

	// ElimRosterFloor is the roster size at which the impostor wins
	// after an elimination
	ElimRosterFloor = 3

	// RoomCodeLength is the length of generated room codes
	RoomCodeLength = 6

	// RoomCodeChars are the characters used for generating room codes (excluding ambiguous chars)
	RoomCodeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	// SendTimeoutSeconds is the timeout for sending messages to chat clients
	SendTimeoutSeconds = 1

	// SendBufferSize is the buffer size for client message channels
	SendBufferSize = 16
)

// ImpostorCountFor derives the impostor count used in win-condition
// arithmetic from the roster size. The assignment engine still seats
// exactly one impostor regardless; for rosters above six the two
// numbers disagree on purpose (inherited game behavior, kept as is).
func ImpostorCountFor(players int) int {
	switch {
	case players > 8:
		return 3
	case players > 6:
		return 2
	default:
		return 1
	}
}

// NeedsAnotherRound reports whether a drained hint queue should be
// refilled for another pass instead of moving on to voting. Small
// groups and multi-impostor games get up to MaxHintRounds passes;
// larger single-impostor games get exactly one.
func NeedsAnotherRound(rosterSize, impostorCount, round int) bool {
	return (rosterSize < SmallRosterLimit || impostorCount > 1) && round < MaxHintRounds
}
