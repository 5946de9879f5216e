package postgres

import (
	"bytes"
	"encoding/json"
)

// DecodeObject decodes a JSONB object column into a map. Numbers are kept
// as json.Number so integers beyond 2^53 survive a read. Empty input yields
// an empty map.
func DecodeObject(raw []byte) (map[string]any, error) {
	out := map[string]any{}
	if len(raw) == 0 {
		return out, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}
