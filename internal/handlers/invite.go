package handlers

import (
	"log"
	"net/http"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// HandleInvite serves a QR code pointing at the room's join page
func (ctx *Context) HandleInvite(w http.ResponseWriter, r *http.Request) {
	code := strings.TrimPrefix(r.URL.Path, "/invite/")
	if code == "" {
		http.Error(w, "Invalid URL", http.StatusBadRequest)
		return
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	joinURL := scheme + "://" + r.Host + "/?code=" + code

	png, err := qrcode.Encode(joinURL, qrcode.Medium, 256)
	if err != nil {
		log.Printf("HandleInvite: encoding %q failed: %v", joinURL, err)
		http.Error(w, "Could not generate invite", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
