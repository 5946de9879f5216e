package journal

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

const maxMoodLength = 32

// ListInput holds parameters for listing entries.
type ListInput struct {
	Tag    *string
	Limit  int
	Offset int
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Tag != nil {
		if *i.Tag == "" {
			errs = append(errs, domain.FieldError{Field: "tag", Message: "must not be empty"})
		} else if utf8.RuneCountInString(*i.Tag) > domain.MaxTagLength {
			errs = append(errs, domain.FieldError{Field: "tag", Message: "too long"})
		}
	}
	if i.Limit < 0 || i.Limit > domain.MaxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 1 and %d", domain.MaxListLimit)})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateEntryInput holds parameters for creating an entry.
type CreateEntryInput struct {
	Title    string
	Content  string
	IsPublic bool
	Tags     []string
	Metadata map[string]any
}

// Validate validates the create input. Tags must already be normalized.
func (i CreateEntryInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateTitle(i.Title)...)
	errs = append(errs, validateContent(i.Content)...)
	errs = append(errs, validateTags(i.Tags)...)
	errs = append(errs, validateMetadata(i.Metadata)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateEntryInput holds parameters for a partial update. Nil fields are unchanged.
type UpdateEntryInput struct {
	ID       string
	Title    *string
	Content  *string
	Mood     *string
	IsPublic *bool
	Tags     *[]string
	Metadata *map[string]any
}

// isEmpty reports whether no updatable field is set.
func (i UpdateEntryInput) isEmpty() bool {
	return i.Title == nil && i.Content == nil && i.Mood == nil &&
		i.IsPublic == nil && i.Tags == nil && i.Metadata == nil
}

// Validate validates the update input. Tags must already be normalized.
func (i UpdateEntryInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.isEmpty() {
		errs = append(errs, domain.FieldError{Field: "body", Message: "no fields to update"})
	}
	if i.Title != nil {
		errs = append(errs, validateTitle(*i.Title)...)
	}
	if i.Content != nil {
		errs = append(errs, validateContent(*i.Content)...)
	}
	if i.Mood != nil && utf8.RuneCountInString(*i.Mood) > maxMoodLength {
		errs = append(errs, domain.FieldError{Field: "mood", Message: "too long"})
	}
	if i.Tags != nil {
		errs = append(errs, validateTags(*i.Tags)...)
	}
	if i.Metadata != nil {
		errs = append(errs, validateMetadata(*i.Metadata)...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateTitle(title string) []domain.FieldError {
	if strings.TrimSpace(title) == "" {
		return []domain.FieldError{{Field: "title", Message: "required"}}
	}
	if utf8.RuneCountInString(title) > domain.MaxTitleLength {
		return []domain.FieldError{{Field: "title", Message: "too long"}}
	}
	return nil
}

func validateContent(content string) []domain.FieldError {
	if utf8.RuneCountInString(content) > domain.MaxContentLength {
		return []domain.FieldError{{Field: "content", Message: "too long"}}
	}
	return nil
}

func validateTags(tags []string) []domain.FieldError {
	if len(tags) > domain.MaxTags {
		return []domain.FieldError{{Field: "tags", Message: fmt.Sprintf("at most %d tags", domain.MaxTags)}}
	}
	for _, tag := range tags {
		if utf8.RuneCountInString(tag) > domain.MaxTagLength {
			return []domain.FieldError{{Field: "tags", Message: fmt.Sprintf("tag %q too long", tag)}}
		}
	}
	return nil
}

func validateMetadata(meta map[string]any) []domain.FieldError {
	if meta == nil {
		return nil
	}
	b, err := json.Marshal(meta)
	if err != nil {
		return []domain.FieldError{{Field: "metadata", Message: "must be a JSON object"}}
	}
	if len(b) > domain.MaxMetadataBytes {
		return []domain.FieldError{{Field: "metadata", Message: "too large"}}
	}
	return nil
}
