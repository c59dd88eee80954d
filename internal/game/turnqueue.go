package game

import (
	"math/rand"

	"github.com/shx-dow/impostor-hunt/internal/models"
)

// Reshuffle returns a uniformly random permutation of the roster,
// replacing the previous hint order. Called at game start, at the
// start of every hint round, after any elimination and after any kick.
func Reshuffle(roster []models.Player, rng *rand.Rand) []models.Player {
	queue := make([]models.Player, len(roster))
	copy(queue, roster)
	rng.Shuffle(len(queue), func(i, j int) {
		queue[i], queue[j] = queue[j], queue[i]
	})
	return queue
}

// CurrentTurn returns the front of the queue, or false when the queue
// is drained.
func CurrentTurn(queue []models.Player) (models.Player, bool) {
	if len(queue) == 0 {
		return models.Player{}, false
	}
	return queue[0], true
}

// Advance pops and returns the front of the queue.
func Advance(queue []models.Player) (models.Player, []models.Player, error) {
	if len(queue) == 0 {
		return models.Player{}, queue, ErrEmptyQueue
	}
	return queue[0], queue[1:], nil
}
