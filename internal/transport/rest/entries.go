package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
	"github.com/heartmarshall/moodjournal-backend/internal/service/journal"
)

type entryService interface {
	ListEntries(ctx context.Context, input journal.ListInput) ([]domain.JournalEntry, error)
	GetEntry(ctx context.Context, id string) (*domain.JournalEntry, error)
	CreateEntry(ctx context.Context, input journal.CreateEntryInput) (*domain.JournalEntry, error)
	UpdateEntry(ctx context.Context, input journal.UpdateEntryInput) (*domain.JournalEntry, error)
	DeleteEntry(ctx context.Context, id string) error
}

// EntryHandler serves the journal entry endpoints under /api/entries.
type EntryHandler struct {
	svc entryService
	log *slog.Logger
}

// NewEntryHandler creates an EntryHandler.
func NewEntryHandler(svc entryService, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{svc: svc, log: logger.With("handler", "entries")}
}

// Request bodies never carry id, userId or timestamps; unknown fields are ignored.
type createEntryRequest struct {
	Title    string         `json:"title"`
	Content  string         `json:"content"`
	IsPublic bool           `json:"isPublic"`
	Tags     []string       `json:"tags"`
	Metadata map[string]any `json:"metadata"`
}

type updateEntryRequest struct {
	Title    *string         `json:"title"`
	Content  *string         `json:"content"`
	Mood     *string         `json:"mood"`
	IsPublic *bool           `json:"isPublic"`
	Tags     *[]string       `json:"tags"`
	Metadata *map[string]any `json:"metadata"`
}

var (
	entryErrors       = errorMessages{NotFound: "Entry not found"}
	getEntryErrors    = errorMessages{NotFound: "Entry not found", Internal: "Error retrieving entry"}
	deleteEntryErrors = errorMessages{NotFound: "Entry not found", Internal: "Error deleting entry"}
)

// List handles GET /api/entries?tag=&limit=&offset=.
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := parseListInput(r)
	if err != nil {
		handleError(w, r, h.log, err, entryErrors)
		return
	}

	entries, err := h.svc.ListEntries(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err, entryErrors)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponses(entries))
}

// Create handles POST /api/entries.
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	entry, err := h.svc.CreateEntry(r.Context(), journal.CreateEntryInput{
		Title:    req.Title,
		Content:  req.Content,
		IsPublic: req.IsPublic,
		Tags:     req.Tags,
		Metadata: req.Metadata,
	})
	if err != nil {
		handleError(w, r, h.log, err, entryErrors)
		return
	}

	writeJSON(w, http.StatusCreated, toEntryResponse(entry))
}

// Get handles GET /api/entries/{id}.
func (h *EntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	entry, err := h.svc.GetEntry(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, h.log, err, getEntryErrors)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// Update handles POST and PATCH /api/entries/{id}.
func (h *EntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateEntryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	entry, err := h.svc.UpdateEntry(r.Context(), journal.UpdateEntryInput{
		ID:       chi.URLParam(r, "id"),
		Title:    req.Title,
		Content:  req.Content,
		Mood:     req.Mood,
		IsPublic: req.IsPublic,
		Tags:     req.Tags,
		Metadata: req.Metadata,
	})
	if err != nil {
		handleError(w, r, h.log, err, entryErrors)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// Delete handles DELETE /api/entries/{id}.
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteEntry(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleError(w, r, h.log, err, deleteEntryErrors)
		return
	}

	writeMessage(w, http.StatusOK, "Entry deleted")
}

func parseListInput(r *http.Request) (journal.ListInput, error) {
	q := r.URL.Query()
	var (
		input journal.ListInput
		errs  []domain.FieldError
	)

	if q.Has("tag") {
		tag := q.Get("tag")
		input.Tag = &tag
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			errs = append(errs, domain.FieldError{Field: "limit", Message: "must be a positive integer"})
		}
		input.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			errs = append(errs, domain.FieldError{Field: "offset", Message: "must be a non-negative integer"})
		}
		input.Offset = n
	}

	if len(errs) > 0 {
		return journal.ListInput{}, domain.NewValidationErrors(errs)
	}
	return input, nil
}
