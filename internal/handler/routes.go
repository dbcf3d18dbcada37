package handler

import (
	"net/http"

	"github.com/mercadito/mercadito/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux. The auth
// endpoints enforce their allowed methods themselves so that wrong
// methods get the JSON 405 shape instead of the mux default.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, cookieSecure bool, cookieMaxAge int) {
	h := NewAuthHandler(auth, cookieSecure, cookieMaxAge)

	mux.HandleFunc("/register", h.HandleRegister)
	mux.HandleFunc("/login", h.HandleLogin)
	mux.HandleFunc("/verify-session", h.HandleVerifySession)
	mux.HandleFunc("/logout", h.HandleLogout)

	mux.HandleFunc("GET /healthz", HandleHealthz)
}
