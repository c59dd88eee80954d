package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/shx-dow/impostor-hunt/internal/game"
)

// HandleCreateRoom allocates a fresh room code and drops the creator in
func (ctx *Context) HandleCreateRoom(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.ParseForm()
	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}

	code := game.GetUniqueRoomCode(func(c string) bool {
		return ctx.Hub.Occupied(c) || ctx.Registry.Exists(c)
	})
	playerID := uuid.New().String()

	log.Printf("Created room: code=%s player=%s name=%s", code, playerID, name)

	setIdentity(w, playerID, name)
	http.Redirect(w, r, "/room/"+code, http.StatusSeeOther)
}

// HandleJoinRoom drops a player into an existing room by code
func (ctx *Context) HandleJoinRoom(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.ParseForm()
	code := strings.ToUpper(strings.TrimSpace(r.FormValue("code")))
	name := strings.TrimSpace(r.FormValue("name"))

	if code == "" || name == "" {
		http.Error(w, "Room code and name are required", http.StatusBadRequest)
		return
	}

	playerID := uuid.New().String()

	log.Printf("Player joined room: code=%s player=%s name=%s", code, playerID, name)

	setIdentity(w, playerID, name)
	http.Redirect(w, r, "/room/"+code, http.StatusSeeOther)
}

// HandleRoom serves the chat page for a room
func (ctx *Context) HandleRoom(w http.ResponseWriter, r *http.Request) {
	code := strings.TrimPrefix(r.URL.Path, "/room/")
	if code == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if _, _, err := identity(r); err != nil {
		http.Redirect(w, r, "/?code="+code, http.StatusSeeOther)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, roomPage, code, code, code)
}

const roomPage = `<!DOCTYPE html>
<html>
<head><title>impostor-hunt</title></head>
<body>
<h1>Room %s</h1>
<p><img src="/invite/%s" alt="invite QR" width="128" height="128"></p>
<ul id="log"></ul>
<form id="compose">
  <input id="line" autocomplete="off" placeholder="/host, /join, /hint ...">
  <button type="submit">Send</button>
</form>
<script>
const proto = location.protocol === "https:" ? "wss://" : "ws://";
const ws = new WebSocket(proto + location.host + "/ws/%s");
ws.onmessage = function (e) {
  const li = document.createElement("li");
  li.textContent = e.data;
  document.getElementById("log").appendChild(li);
};
document.getElementById("compose").onsubmit = function (e) {
  e.preventDefault();
  const line = document.getElementById("line");
  if (line.value.trim() !== "") ws.send(line.value);
  line.value = "";
};
</script>
</body>
</html>
`

// setIdentity stores the caller's identity in session cookies
func setIdentity(w http.ResponseWriter, playerID, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "player_id",
		Value:    playerID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     "player_name",
		Value:    name,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})
}

// identity reads the caller's identity back from session cookies
func identity(r *http.Request) (string, string, error) {
	id, err := r.Cookie("player_id")
	if err != nil {
		return "", "", fmt.Errorf("no session")
	}
	name, err := r.Cookie("player_name")
	if err != nil {
		return "", "", fmt.Errorf("no session")
	}
	return id.Value, name.Value, nil
}
