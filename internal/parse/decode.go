// Package parse converts the correction API's category-keyed payload into
// the uniform correction records the rest of the pipeline works with.
package parse

import (
	"encoding/json"
	"fmt"

	"github.com/leslieliu-cn/textcheck/internal/model"
)

// Category pairs an upstream result key with its human-readable label.
// The known set is data, not code: callers can supply their own table when
// the upstream API grows new categories.
type Category struct {
	Key         string `json:"key" toml:"key"`
	Description string `json:"description" toml:"description"`
}

// DefaultCategories returns the upstream API's category table, in the
// order entries are scanned. The trailing entries are legacy tags kept for
// older deployments that still emit them.
func DefaultCategories() []Category {
	return []Category{
		{"black_list", "blacklisted term"},
		{"pol", "political term"},
		{"char", "misused character"},
		{"word", "misused word"},
		{"redund", "redundant grammar"},
		{"miss", "missing grammar"},
		{"order", "word order"},
		{"dapei", "collocation"},
		{"punc", "punctuation"},
		{"idm", "idiom"},
		{"org", "organization name"},
		{"leader", "leader title"},
		{"number", "number"},
		{"addr", "place name"},
		{"name", "person name"},
		{"grammar_pc", "mixed syntax or semantic repetition"},
		// legacy tags
		{"sensitive", "sensitive term"},
		{"inappropriate", "inappropriate wording"},
		{"offensive", "offensive content"},
		{"political", "politically sensitive"},
		{"violence", "violent content"},
		{"adult", "adult content"},
		{"spam", "spam"},
		{"other", "other flagged content"},
	}
}

// Decode parses the (already base64-decoded) result JSON and maps every
// recognised category entry to a Correction. Entries are accepted only as
// arrays of at least four elements [position, current, suggested, ...].
// Keys absent from cats are ignored so upstream additions don't break
// older clients. The upstream API reports no confidence, so every
// correction carries 1.0, meaning "unscored, accept as reported".
func Decode(raw []byte, cats []Category) ([]model.Correction, error) {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("parse: decode result payload: %w", err)
	}

	var out []model.Correction
	for _, cat := range cats {
		rawEntries, ok := payload[cat.Key]
		if !ok {
			continue
		}
		var entries []json.RawMessage
		if err := json.Unmarshal(rawEntries, &entries); err != nil {
			continue // category value is not an array
		}
		for _, rawEntry := range entries {
			var entry []any
			if err := json.Unmarshal(rawEntry, &entry); err != nil || len(entry) < 4 {
				continue
			}
			pos, ok := entry[0].(float64)
			if !ok {
				continue
			}
			cur, ok := entry[1].(string)
			if !ok {
				continue
			}
			suggested, ok := entry[2].(string)
			if !ok {
				continue
			}
			out = append(out, model.Correction{
				Original:    cur,
				Corrected:   suggested,
				Position:    int(pos),
				Type:        cat.Key,
				Confidence:  1.0,
				Description: cat.Description,
			})
		}
	}
	return out, nil
}
