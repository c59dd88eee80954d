package handlers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/shx-dow/impostor-hunt/internal/chat"
	"github.com/shx-dow/impostor-hunt/internal/game"
	"github.com/shx-dow/impostor-hunt/internal/models"
)

var debug bool

func init() {
	debug = os.Getenv("DEBUG") != ""
}

// HandleWS upgrades a room connection and pumps chat lines through the
// command dispatcher until the client goes away.
func (ctx *Context) HandleWS(w http.ResponseWriter, r *http.Request) {
	room := strings.TrimPrefix(r.URL.Path, "/ws/")
	if room == "" {
		http.Error(w, "Invalid URL", http.StatusBadRequest)
		return
	}

	playerID, name, err := identity(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	player := models.Player{ID: playerID, Name: name}

	conn, err := ctx.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("HandleWS: upgrade failed: %v", err)
		return
	}

	outbound := make(chan string, game.SendBufferSize)
	done := make(chan struct{})
	ctx.Hub.Register(room, outbound, player)

	// Write pump: copy hub messages onto the socket. The channel is
	// never closed; the pump exits via done so a racing broadcast can
	// still (harmlessly) buffer into it.
	go func() {
		for {
			select {
			case <-done:
				return
			case msg := <-outbound:
				if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
					log.Printf("HandleWS: write to %s failed: %v", player.ID, err)
					return
				}
			}
		}
	}()

	defer func() {
		ctx.Hub.Unregister(room, outbound)
		close(done)
		conn.Close()
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if debug {
				log.Printf("HandleWS: read from %s ended: %v", player.ID, err)
			}
			return
		}
		ctx.dispatch(room, player, string(raw))
	}
}

// dispatch routes one inbound chat line: commands go to the game
// service, everything else is plain room chat.
func (ctx *Context) dispatch(room string, player models.Player, line string) {
	cmd, ok := chat.Parse(line)
	if !ok {
		ctx.Hub.Broadcast(room, player.Name+": "+line)
		return
	}

	result, err := ctx.route(room, player, cmd)
	if err != nil {
		ctx.Hub.Broadcast(room, err.Error())
		return
	}

	if result.Broadcast != "" {
		ctx.Hub.Broadcast(room, result.Broadcast)
	}

	// Independent best-effort fan-out: one slow or missing recipient
	// must not hold up deliveries to the rest.
	for _, direct := range result.Private {
		go func(d models.Direct) {
			if !ctx.Hub.Whisper(room, d.To.ID, d.Text) {
				ctx.Hub.Broadcast(room, fmt.Sprintf("Could not deliver a private message to %s.", d.To.Name))
			}
		}(direct)
	}
}

// route maps a parsed command onto the game service
func (ctx *Context) route(room string, player models.Player, cmd chat.Command) (*models.Result, error) {
	switch cmd.Name {
	case "host":
		return ctx.Service.Host(room, player)
	case "join":
		return ctx.Service.Join(room, player)
	case "leave":
		return ctx.Service.Leave(room, player)
	case "kick":
		target, err := ctx.Hub.Resolve(room, cmd.Arg)
		if err != nil {
			return nil, err
		}
		return ctx.Service.Kick(room, player, target)
	case "secrets":
		majority, minority, ok := chat.SplitPair(cmd.Arg)
		if !ok || majority == "" || minority == "" {
			return nil, fmt.Errorf("usage: /secrets <majority word> / <minority word>")
		}
		return ctx.Service.SetSecrets(room, player, majority, minority)
	case "start":
		return ctx.Service.Start(room, player)
	case "hint":
		if cmd.Arg == "" {
			return nil, fmt.Errorf("usage: /hint <your hint>")
		}
		return ctx.Service.GiveHint(room, player, cmd.Arg)
	case "hints":
		return ctx.Service.ListHints(room, player)
	case "vote":
		target, err := ctx.Hub.Resolve(room, cmd.Arg)
		if err != nil {
			return nil, err
		}
		return ctx.Service.Vote(room, player, target)
	case "end":
		return ctx.Service.End(room, player)
	default:
		return nil, fmt.Errorf("unknown command: /%s", cmd.Name)
	}
}
