package models

// Player references a participant. Identity is owned by the transport
// layer; the game only tracks membership by ID.
type Player struct {
	ID   string
	Name string
}
