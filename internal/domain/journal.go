package domain

import "time"

// Journal entry limits.
const (
	MaxTitleLength   = 200
	MaxContentLength = 50000
	MaxTags          = 20
	MaxTagLength     = 50
	MaxMetadataBytes = 16 * 1024
	MaxListLimit     = 200
)

// JournalEntry is a single text entry owned by exactly one user.
type JournalEntry struct {
	ID        string
	UserID    string
	Title     string
	Content   string
	Mood      *string
	IsPublic  bool
	Tags      []string
	Metadata  map[string]any
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EntryPatch is a partial update. Nil fields are left unchanged.
type EntryPatch struct {
	Title    *string
	Content  *string
	Mood     *string
	IsPublic *bool
	Tags     *[]string
	Metadata *map[string]any
}

// IsEmpty reports whether the patch changes nothing.
func (p EntryPatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && p.Mood == nil &&
		p.IsPublic == nil && p.Tags == nil && p.Metadata == nil
}

// EntryFilter narrows a journal listing. Zero Limit means no limit.
type EntryFilter struct {
	Tag    *string
	Limit  int
	Offset int
}
