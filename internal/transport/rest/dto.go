package rest

import (
	"time"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

type entryResponse struct {
	ID        string         `json:"id"`
	UserID    string         `json:"userId"`
	Title     string         `json:"title"`
	Content   string         `json:"content"`
	Mood      *string        `json:"mood"`
	IsPublic  bool           `json:"isPublic"`
	Tags      []string       `json:"tags"`
	Metadata  map[string]any `json:"metadata"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

type userResponse struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	EmailVerified bool       `json:"emailVerified"`
	Image         *string    `json:"image"`
	Role          string     `json:"role"`
	Banned        bool       `json:"banned"`
	BanReason     *string    `json:"banReason"`
	BanExpires    *time.Time `json:"banExpires"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type sessionResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
	IPAddress *string   `json:"ipAddress"`
	UserAgent *string   `json:"userAgent"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type auditResponse struct {
	ID         string         `json:"id"`
	ActorID    *string        `json:"actorId"`
	EntityType string         `json:"entityType"`
	EntityID   string         `json:"entityId"`
	Action     string         `json:"action"`
	Changes    map[string]any `json:"changes"`
	CreatedAt  time.Time      `json:"createdAt"`
}

func toEntryResponse(e *domain.JournalEntry) entryResponse {
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}
	meta := e.Metadata
	if meta == nil {
		meta = map[string]any{}
	}
	return entryResponse{
		ID:        e.ID,
		UserID:    e.UserID,
		Title:     e.Title,
		Content:   e.Content,
		Mood:      e.Mood,
		IsPublic:  e.IsPublic,
		Tags:      tags,
		Metadata:  meta,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func toEntryResponses(entries []domain.JournalEntry) []entryResponse {
	out := make([]entryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, toEntryResponse(&entries[i]))
	}
	return out
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		EmailVerified: u.EmailVerified,
		Image:         u.Image,
		Role:          u.Role.String(),
		Banned:        u.Banned,
		BanReason:     u.BanReason,
		BanExpires:    u.BanExpires,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func toSessionResponse(s *domain.Session) sessionResponse {
	return sessionResponse{
		ID:        s.ID,
		UserID:    s.UserID,
		ExpiresAt: s.ExpiresAt,
		IPAddress: s.IPAddress,
		UserAgent: s.UserAgent,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toAuditResponse(r *domain.AuditRecord) auditResponse {
	changes := r.Changes
	if changes == nil {
		changes = map[string]any{}
	}
	var actor *string
	if r.ActorID != "" {
		actor = &r.ActorID
	}
	return auditResponse{
		ID:         r.ID,
		ActorID:    actor,
		EntityType: string(r.EntityType),
		EntityID:   r.EntityID,
		Action:     string(r.Action),
		Changes:    changes,
		CreatedAt:  r.CreatedAt,
	}
}
