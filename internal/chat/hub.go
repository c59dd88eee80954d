package chat

import (
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/shx-dow/impostor-hunt/internal/game"
	"github.com/shx-dow/impostor-hunt/internal/models"
)

var debug bool

func init() {
	debug = os.Getenv("DEBUG") != ""
}

// Hub tracks connected clients per room and fans outbound messages out
// to their send channels. Delivery is best effort: a client that does
// not drain its channel within the send timeout is skipped so one slow
// connection never stalls the room.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[chan string]models.Player
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[chan string]models.Player)}
}

// Register adds a client channel for a player in a room
func (h *Hub) Register(room string, client chan string, player models.Player) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients := h.rooms[room]
	if clients == nil {
		clients = make(map[chan string]models.Player)
		h.rooms[room] = clients
	}
	for _, p := range clients {
		if p.ID == player.ID {
			log.Printf("WARN: player %s opened an additional connection to room %s", player.ID, room)
		}
	}
	clients[client] = player
}

// Unregister removes a client channel from a room
func (h *Hub) Unregister(room string, client chan string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients := h.rooms[room]
	delete(clients, client)
	if len(clients) == 0 {
		delete(h.rooms, room)
	}
}

// Broadcast sends text to every client in the room
func (h *Hub) Broadcast(room, text string) {
	h.mu.RLock()
	clients := make([]chan string, 0, len(h.rooms[room]))
	for client := range h.rooms[room] {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	if debug {
		log.Printf("broadcast: room=%s to %d clients", room, len(clients))
	}

	for _, client := range clients {
		send(client, text)
	}
}

// Whisper sends text to every connection of one player in the room and
// reports whether at least one delivery went through.
func (h *Hub) Whisper(room, playerID, text string) bool {
	h.mu.RLock()
	var clients []chan string
	for client, p := range h.rooms[room] {
		if p.ID == playerID {
			clients = append(clients, client)
		}
	}
	h.mu.RUnlock()

	delivered := false
	for _, client := range clients {
		if send(client, text) {
			delivered = true
		}
	}
	return delivered
}

// Occupied reports whether any client is connected to the room
func (h *Hub) Occupied(room string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room]) > 0
}

// Resolve maps a user reference ("@name" or a bare name, case
// insensitive) to a player connected to the room.
func (h *Hub) Resolve(room, ref string) (models.Player, error) {
	name := StripMention(ref)
	if name == "" {
		return models.Player{}, game.ErrUnknownPlayer
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, p := range h.rooms[room] {
		if strings.EqualFold(p.Name, name) || p.ID == name {
			return p, nil
		}
	}
	return models.Player{}, game.ErrUnknownPlayer
}

// send delivers on the client channel, giving up after the send
// timeout so a stalled reader cannot block the caller.
func send(client chan string, text string) bool {
	select {
	case client <- text:
		return true
	case <-time.After(game.SendTimeoutSeconds * time.Second):
		if debug {
			log.Printf("send: timeout delivering to client")
		}
		return false
	}
}
