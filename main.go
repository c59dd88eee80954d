package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/websocket"
	"github.com/joho/godotenv"

	"github.com/shx-dow/impostor-hunt/internal/chat"
	"github.com/shx-dow/impostor-hunt/internal/handlers"
	"github.com/shx-dow/impostor-hunt/internal/session"
	"github.com/shx-dow/impostor-hunt/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	registry := store.NewRegistry()
	ctx := &handlers.Context{
		Registry: registry,
		Service:  session.NewService(registry),
		Hub:      chat.NewHub(),
		Upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}

	http.HandleFunc("/", ctx.HandleIndex)
	http.HandleFunc("/create", ctx.HandleCreateRoom)
	http.HandleFunc("/join", ctx.HandleJoinRoom)
	http.HandleFunc("/room/", ctx.HandleRoom)
	http.HandleFunc("/ws/", ctx.HandleWS)
	http.HandleFunc("/invite/", ctx.HandleInvite)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on http://localhost:%s", port)
	log.Fatal(http.ListenAndServe(":"+port, nil))
}
