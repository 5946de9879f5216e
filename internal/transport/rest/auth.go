package rest

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/heartmarshall/moodjournal-backend/internal/config"
	"github.com/heartmarshall/moodjournal-backend/internal/domain"
	"github.com/heartmarshall/moodjournal-backend/internal/service/auth"
	"github.com/heartmarshall/moodjournal-backend/internal/transport/middleware"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	SignUp(ctx context.Context, input auth.SignUpInput) (*auth.AuthResult, error)
	SignIn(ctx context.Context, input auth.SignInInput) (*auth.AuthResult, error)
	SignOut(ctx context.Context, token string) error
	GetSession(ctx context.Context, token string) (*domain.AuthSession, error)
}

// AuthHandler serves the identity provider endpoints under /api/auth.
type AuthHandler struct {
	svc          authService
	cookieName   string
	cookieSecure bool
	log          *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, cfg config.AuthConfig, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		svc:          svc,
		cookieName:   cfg.CookieName,
		cookieSecure: cfg.CookieSecure,
		log:          logger.With("handler", "auth"),
	}
}

type signUpRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Image    *string `json:"image"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token   string          `json:"token"`
	User    userResponse    `json:"user"`
	Session sessionResponse `json:"session"`
}

type sessionEnvelope struct {
	User    userResponse    `json:"user"`
	Session sessionResponse `json:"session"`
}

var (
	signUpErrors = errorMessages{Conflict: "Email already registered"}
	authErrors   = errorMessages{}
)

// SignUp handles POST /api/auth/sign-up/email.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	result, err := h.svc.SignUp(r.Context(), auth.SignUpInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Image:    req.Image,
		Client:   clientInfo(r),
	})
	if err != nil {
		handleError(w, r, h.log, err, signUpErrors)
		return
	}

	h.setSessionCookie(w, result.Token, result.Session.ExpiresAt)
	writeJSON(w, http.StatusCreated, toAuthResponse(result))
}

// SignIn handles POST /api/auth/sign-in/email.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	result, err := h.svc.SignIn(r.Context(), auth.SignInInput{
		Email:    req.Email,
		Password: req.Password,
		Client:   clientInfo(r),
	})
	if err != nil {
		handleError(w, r, h.log, err, authErrors)
		return
	}

	h.setSessionCookie(w, result.Token, result.Session.ExpiresAt)
	writeJSON(w, http.StatusOK, toAuthResponse(result))
}

// SignOut handles POST /api/auth/sign-out. Always clears the cookie.
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if token := middleware.SessionToken(r, h.cookieName); token != "" {
		if err := h.svc.SignOut(r.Context(), token); err != nil {
			handleError(w, r, h.log, err, authErrors)
			return
		}
	}

	h.clearSessionCookie(w)
	writeMessage(w, http.StatusOK, "Signed out")
}

// GetSession handles GET /api/auth/get-session.
// Responds with JSON null when the caller has no valid session.
func (h *AuthHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionToken(r, h.cookieName)
	if token == "" {
		writeJSON(w, http.StatusOK, nil)
		return
	}

	as, err := h.svc.GetSession(r.Context(), token)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			writeJSON(w, http.StatusOK, nil)
			return
		}
		handleError(w, r, h.log, err, authErrors)
		return
	}

	writeJSON(w, http.StatusOK, sessionEnvelope{
		User:    toUserResponse(&as.User),
		Session: toSessionResponse(&as.Session),
	})
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func clientInfo(r *http.Request) auth.ClientInfo {
	var info auth.ClientInfo
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		info.IPAddress = &host
	}
	if ua := r.UserAgent(); ua != "" {
		info.UserAgent = &ua
	}
	return info
}

func toAuthResponse(result *auth.AuthResult) authResponse {
	return authResponse{
		Token:   result.Token,
		User:    toUserResponse(result.User),
		Session: toSessionResponse(result.Session),
	}
}
