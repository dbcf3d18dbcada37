package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mercadito/mercadito/internal/domain"
	"github.com/mercadito/mercadito/internal/service"
)

const (
	sessionCookieName = "session_token"

	// Scrubbed message for unexpected faults; the real cause only goes
	// to the server log.
	internalErrorMessage = "internal server error"

	methodNotAllowedMessage = "method not allowed, use POST"
)

// AuthHandler handles the authentication endpoints.
type AuthHandler struct {
	auth         *service.AuthService
	cookieSecure bool
	cookieMaxAge int
}

// NewAuthHandler creates a new AuthHandler. cookieMaxAge is the
// session cookie lifetime in seconds and should match the session
// store's TTL.
func NewAuthHandler(auth *service.AuthService, cookieSecure bool, cookieMaxAge int) *AuthHandler {
	return &AuthHandler{
		auth:         auth,
		cookieSecure: cookieSecure,
		cookieMaxAge: cookieMaxAge,
	}
}

// userDTO is the JSON representation of a user on the auth endpoints.
type userDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// HandleRegister processes a registration request.
// POST /register
// Request:  {"nombre":"...","correo":"...","password":"...","rol":"...","telefono":"...","direccion":"...","confirm_password":"..."}
// Response: {"success":true,"message":...,"user_id":...,"user_name":...,"user_role":...,"redirect":"/"}
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, methodNotAllowedMessage)
		return
	}

	var req struct {
		Nombre          string `json:"nombre"`
		Correo          string `json:"correo"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirm_password"`
		Rol             string `json:"rol"`
		Telefono        string `json:"telefono"`
		Direccion       string `json:"direccion"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, session, err := h.auth.Register(r.Context(), service.RegisterInput{
		Name:            req.Nombre,
		Email:           req.Correo,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Role:            req.Rol,
		Phone:           req.Telefono,
		Address:         req.Direccion,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEmail):
			writeError(w, http.StatusBadRequest, domain.ErrDuplicateEmail.Error())
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, validationMessage(err))
		default:
			slog.Error("register user", "error", err)
			writeError(w, http.StatusInternalServerError, internalErrorMessage)
		}
		return
	}

	h.setSessionCookie(w, session.Token)
	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   "user registered successfully",
		"user_id":   user.ID,
		"user_name": user.Name,
		"user_role": string(user.Role),
		"redirect":  "/",
	})
}

// HandleLogin processes a login request.
// POST /login
// Request:  {"correo":"...","password":"..."}
// Response: {"success":true,"message":...,"user":{...},"redirect":"/"}
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, methodNotAllowedMessage)
		return
	}

	var req struct {
		Correo   string `json:"correo"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, session, err := h.auth.Login(r.Context(), req.Correo, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			writeError(w, http.StatusBadRequest, domain.ErrInvalidCredentials.Error())
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, validationMessage(err))
		default:
			slog.Error("login user", "error", err)
			writeError(w, http.StatusInternalServerError, internalErrorMessage)
		}
		return
	}

	h.setSessionCookie(w, session.Token)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "login successful",
		"user": userDTO{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  string(user.Role),
		},
		"redirect": "/",
	})
}

// HandleVerifySession reports the client's login state from the session
// store alone. Always responds 200.
// GET /verify-session
// Response: {"logged_in":false} or {"logged_in":true,"user":{...}}
func (h *AuthHandler) HandleVerifySession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed, use GET")
		return
	}

	session, err := h.auth.VerifySession(r.Context(), h.sessionToken(r))
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			// A store fault still reads as logged out; log the cause.
			slog.Error("verify session", "error", err)
		}
		writeJSON(w, http.StatusOK, map[string]any{"logged_in": false})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"logged_in": true,
		"user": userDTO{
			ID:    session.UserID,
			Name:  session.UserName,
			Email: session.UserEmail,
			Role:  string(session.UserRole),
		},
	})
}

// HandleLogout destroys the current session and clears the cookie.
// Idempotent: succeeds with or without an existing session.
// GET or POST /logout
// Response: {"success":true}
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed, use GET or POST")
		return
	}

	if err := h.auth.Logout(r.Context(), h.sessionToken(r)); err != nil {
		// The client treats logout as successful regardless; clear the
		// cookie anyway and log the cause.
		slog.Error("logout", "error", err)
	}

	h.clearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *AuthHandler) sessionToken(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   h.cookieMaxAge,
	})
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// validationMessage strips the sentinel prefix so the client sees only
// the field message.
func validationMessage(err error) string {
	msg := err.Error()
	if rest, ok := strings.CutPrefix(msg, domain.ErrInvalidInput.Error()+": "); ok {
		return rest
	}
	return msg
}
