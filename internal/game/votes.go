package game

import "github.com/shx-dow/impostor-hunt/internal/models"

// VoteResult represents the outcome of vote counting
type VoteResult struct {
	Accused   models.Player
	IsTie     bool
	MaxVotes  int
	VoteCount map[string]int
}

// CountVotes analyzes a completed vote set and determines the result.
// A unique plurality names an accused; a tie across the top vote
// getters yields no accused and the phase re-runs.
func CountVotes(votes map[string][]models.Player, roster []models.Player) VoteResult {
	voteCount := make(map[string]int, len(votes))
	for candidateID, voters := range votes {
		voteCount[candidateID] = len(voters)
	}

	maxVotes := 0
	var topCandidates []string
	for id, count := range voteCount {
		if count > maxVotes {
			maxVotes = count
			topCandidates = []string{id}
		} else if count == maxVotes {
			topCandidates = append(topCandidates, id)
		}
	}

	result := VoteResult{
		VoteCount: voteCount,
		MaxVotes:  maxVotes,
		IsTie:     len(topCandidates) > 1,
	}

	if !result.IsTie && len(topCandidates) == 1 {
		for _, p := range roster {
			if p.ID == topCandidates[0] {
				result.Accused = p
				break
			}
		}
	}

	return result
}
