// Package render builds the chat-facing text for game announcements.
package render

import (
	"strings"

	"github.com/shx-dow/impostor-hunt/internal/models"
)

// Names joins player display names with commas
func Names(players []models.Player) string {
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}

// RosterLine generates the "Current players" announcement
func RosterLine(roster []models.Player) string {
	if len(roster) == 0 {
		return "Current players: none"
	}
	return "Current players: " + Names(roster)
}

// HintOrder generates the hint-order announcement for a fresh queue
func HintOrder(queue []models.Player) string {
	return "Hint order: " + Names(queue)
}

// AssignmentTable lists every rostered player next to their secret
// payload. Host eyes only.
func AssignmentTable(roster []models.Player, payloads map[string]string) string {
	var b strings.Builder
	b.WriteString("Players and their assignments:")
	for _, p := range roster {
		b.WriteString("\n")
		b.WriteString(p.Name)
		b.WriteString(" - ")
		b.WriteString(payloads[p.ID])
	}
	return b.String()
}

// HintLog renders every hint given so far, in submission order
func HintLog(hints []models.Hint) string {
	if len(hints) == 0 {
		return "No hints have been given yet."
	}
	var b strings.Builder
	b.WriteString("All given hints:")
	for _, h := range hints {
		b.WriteString("\n")
		b.WriteString(h.Author.Name)
		b.WriteString(": ")
		b.WriteString(h.Text)
	}
	return b.String()
}
