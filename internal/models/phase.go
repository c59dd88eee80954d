package models

// Phase represents the current state of a session
type Phase string

const (
	PhaseSetup   Phase = "setup"
	PhaseReady   Phase = "ready"
	PhasePlaying Phase = "playing"
	PhaseVoting  Phase = "voting"
	PhaseEnded   Phase = "ended"
)
