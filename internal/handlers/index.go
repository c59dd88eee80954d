package handlers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/shx-dow/impostor-hunt/internal/chat"
	"github.com/shx-dow/impostor-hunt/internal/session"
	"github.com/shx-dow/impostor-hunt/internal/store"
)

// Context holds shared application dependencies
type Context struct {
	Registry *store.Registry
	Service  *session.Service
	Hub      *chat.Hub
	Upgrader websocket.Upgrader
}

// HandleIndex serves the landing page
func (ctx *Context) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	code := r.URL.Query().Get("code")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, indexPage, code)
}

const indexPage = `<!DOCTYPE html>
<html>
<head><title>impostor-hunt</title></head>
<body>
<h1>impostor-hunt</h1>
<h2>Create a room</h2>
<form method="post" action="/create">
  <input name="name" placeholder="Your name" required>
  <button type="submit">Create</button>
</form>
<h2>Join a room</h2>
<form method="post" action="/join">
  <input name="code" placeholder="Room code" value="%s" required>
  <input name="name" placeholder="Your name" required>
  <button type="submit">Join</button>
</form>
</body>
</html>
`
