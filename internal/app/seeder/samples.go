package seeder

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

//go:embed data/entries.json
var bundledEntries []byte

// Sample is one bundled journal entry.
type Sample struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Mood     string   `json:"mood"`
	IsPublic bool     `json:"isPublic"`
	Tags     []string `json:"tags"`
}

// BundledSamples parses the entries embedded in the binary.
func BundledSamples() ([]Sample, error) {
	return ParseSamples(strings.NewReader(string(bundledEntries)))
}

// ParseSamples decodes a JSON array of samples. Every sample needs a title.
func ParseSamples(r io.Reader) ([]Sample, error) {
	var samples []Sample
	if err := json.NewDecoder(r).Decode(&samples); err != nil {
		return nil, fmt.Errorf("decode samples: %w", err)
	}
	for i, s := range samples {
		if strings.TrimSpace(s.Title) == "" {
			return nil, fmt.Errorf("sample %d: title is required", i)
		}
	}
	return samples, nil
}
