package models

// Direct is a private message for a single player.
type Direct struct {
	To   Player
	Text string
}

// Result is the outcome of a successful command: text for the room,
// private messages for individual players, and whether the session was
// torn down by the command. The transport layer renders it.
type Result struct {
	Broadcast string
	Private   []Direct
	Ended     bool
}
