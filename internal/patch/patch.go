// Package patch applies positioned corrections to a document.
//
// Corrections must be non-overlapping; overlapping ranges are not
// reconciled and produce arbitrary output.
package patch

import (
	"sort"
	"unicode/utf8"

	"github.com/leslieliu-cn/textcheck/internal/model"
)

// Apply replaces each correction's span with its suggested text.
// Edits run right-to-left so lower rune offsets stay valid while the
// string changes length. A correction whose span falls outside the
// current text is skipped rather than corrupting the rest of the pass.
// The input slice is left untouched.
func Apply(text string, corrs []model.Correction) string {
	if len(corrs) == 0 {
		return text
	}
	sorted := make([]model.Correction, len(corrs))
	copy(sorted, corrs)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Position > sorted[j].Position })

	runes := []rune(text)
	for _, c := range sorted {
		end := c.Position + utf8.RuneCountInString(c.Original)
		if c.Position < 0 || end > len(runes) {
			continue
		}
		repl := []rune(c.Corrected)
		runes = append(runes[:c.Position], append(repl, runes[end:]...)...)
	}
	return string(runes)
}
