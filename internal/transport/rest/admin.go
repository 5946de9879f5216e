package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
	"github.com/heartmarshall/moodjournal-backend/internal/service/user"
)

type userService interface {
	ListUsers(ctx context.Context, input user.ListUsersInput) ([]domain.User, int, error)
	SetUserRole(ctx context.Context, targetUserID string, role domain.UserRole) (*domain.User, error)
	BanUser(ctx context.Context, input user.BanUserInput) (*domain.User, error)
	UnbanUser(ctx context.Context, targetUserID string) (*domain.User, error)
	UserAuditLog(ctx context.Context, targetUserID string, limit int) ([]domain.AuditRecord, error)
}

// AdminHandler serves admin REST endpoints under /api/admin.
// Routes are expected behind middleware.AdminOnly; the service re-checks the role.
type AdminHandler struct {
	users userService
	log   *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(users userService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		users: users,
		log:   logger.With("handler", "admin"),
	}
}

type userListResponse struct {
	Users []userResponse `json:"users"`
	Total int            `json:"total"`
}

type setRoleRequest struct {
	Role string `json:"role"`
}

type banRequest struct {
	Reason           *string `json:"reason"`
	ExpiresInSeconds *int64  `json:"expiresInSeconds"`
}

var adminErrors = errorMessages{NotFound: "User not found"}

// ListUsers handles GET /api/admin/users?limit=50&offset=0.
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := parsePage(r)
	if err != nil {
		handleError(w, r, h.log, err, adminErrors)
		return
	}

	users, total, err := h.users.ListUsers(r.Context(), user.ListUsersInput{Limit: limit, Offset: offset})
	if err != nil {
		handleError(w, r, h.log, err, adminErrors)
		return
	}

	resp := userListResponse{Users: make([]userResponse, 0, len(users)), Total: total}
	for i := range users {
		resp.Users = append(resp.Users, toUserResponse(&users[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// SetRole handles POST /api/admin/users/{id}/role.
func (h *AdminHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	var req setRoleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	u, err := h.users.SetUserRole(r.Context(), chi.URLParam(r, "id"), domain.UserRole(req.Role))
	if err != nil {
		handleError(w, r, h.log, err, adminErrors)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Ban handles POST /api/admin/users/{id}/ban. The body is optional.
func (h *AdminHandler) Ban(w http.ResponseWriter, r *http.Request) {
	var req banRequest
	if err := decodeOptionalJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	input := user.BanUserInput{UserID: chi.URLParam(r, "id"), Reason: req.Reason}
	if req.ExpiresInSeconds != nil {
		d := time.Duration(*req.ExpiresInSeconds) * time.Second
		input.ExpiresIn = &d
	}

	u, err := h.users.BanUser(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err, adminErrors)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Unban handles POST /api/admin/users/{id}/unban.
func (h *AdminHandler) Unban(w http.ResponseWriter, r *http.Request) {
	u, err := h.users.UnbanUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, h.log, err, adminErrors)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// AuditLog handles GET /api/admin/users/{id}/audit?limit=.
func (h *AdminHandler) AuditLog(w http.ResponseWriter, r *http.Request) {
	limit, _, err := parsePage(r)
	if err != nil {
		handleError(w, r, h.log, err, adminErrors)
		return
	}

	records, err := h.users.UserAuditLog(r.Context(), chi.URLParam(r, "id"), limit)
	if err != nil {
		handleError(w, r, h.log, err, adminErrors)
		return
	}

	out := make([]auditResponse, 0, len(records))
	for i := range records {
		out = append(out, toAuditResponse(&records[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func parsePage(r *http.Request) (limit, offset int, err error) {
	q := r.URL.Query()
	var errs []domain.FieldError

	if v := q.Get("limit"); v != "" {
		if limit, err = strconv.Atoi(v); err != nil || limit < 1 {
			errs = append(errs, domain.FieldError{Field: "limit", Message: "must be a positive integer"})
		}
	}
	if v := q.Get("offset"); v != "" {
		if offset, err = strconv.Atoi(v); err != nil || offset < 0 {
			errs = append(errs, domain.FieldError{Field: "offset", Message: "must be a non-negative integer"})
		}
	}

	if len(errs) > 0 {
		return 0, 0, domain.NewValidationErrors(errs)
	}
	return limit, offset, nil
}
