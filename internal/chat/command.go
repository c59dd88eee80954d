// Package chat provides command parsing for inbound lines and the
// per-room fan-out of outbound messages.
package chat

import "strings"

// Command is one parsed chat command
type Command struct {
	Name string // lowercased, without the leading slash
	Arg  string // raw remainder, trimmed
}

// Parse splits a chat line into a command. Lines not starting with a
// slash are plain chat and return false.
func Parse(line string) (Command, bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "/") || len(line) == 1 {
		return Command{}, false
	}

	name, arg, _ := strings.Cut(line[1:], " ")
	return Command{
		Name: strings.ToLower(name),
		Arg:  strings.TrimSpace(arg),
	}, true
}

// StripMention normalizes a user reference: "@name" becomes "name"
func StripMention(ref string) string {
	return strings.TrimPrefix(strings.TrimSpace(ref), "@")
}

// SplitPair cuts an argument of the form "first / second" or
// "first second" into its two halves.
func SplitPair(arg string) (string, string, bool) {
	if first, second, found := strings.Cut(arg, "/"); found {
		return strings.TrimSpace(first), strings.TrimSpace(second), true
	}
	first, second, found := strings.Cut(arg, " ")
	if !found {
		return "", "", false
	}
	return strings.TrimSpace(first), strings.TrimSpace(second), true
}
