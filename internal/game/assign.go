package game

import (
	"math/rand"

	"github.com/shx-dow/impostor-hunt/internal/models"
)

// Assignment binds every rostered player to a secret payload and
// records which of them drew the minority one.
type Assignment struct {
	Payloads   map[string]string // player ID -> payload
	ImpostorID string
}

// Assign seats exactly one impostor, chosen uniformly from the roster.
// The impostor gets the minority payload, everyone else the majority.
func Assign(roster []models.Player, majority, minority string, rng *rand.Rand) Assignment {
	a := Assignment{Payloads: make(map[string]string, len(roster))}

	impostor := roster[rng.Intn(len(roster))]
	a.ImpostorID = impostor.ID

	for _, p := range roster {
		if p.ID == impostor.ID {
			a.Payloads[p.ID] = minority
		} else {
			a.Payloads[p.ID] = majority
		}
	}
	return a
}
