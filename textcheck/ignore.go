package textcheck

import (
	"fmt"

	"github.com/leslieliu-cn/textcheck/internal/model"
	"github.com/leslieliu-cn/textcheck/internal/patch"
	"github.com/leslieliu-cn/textcheck/internal/util"
)

// Ignore returns a copy of res with the corrections at the given indexes
// dropped and, on a successful result, CorrectedText re-derived from the
// original text. Results are immutable once returned, so ignoring is a
// view over the correction list; res itself is never modified. Indexes out
// of range are ignored.
func Ignore(res *model.Result, indexes ...int) *model.Result {
	if res == nil {
		return nil
	}
	out := *res
	if len(indexes) == 0 || len(res.Corrections) == 0 {
		cp := make([]model.Correction, len(res.Corrections))
		copy(cp, res.Corrections)
		out.Corrections = cp
		return &out
	}

	drop := make(map[int]struct{}, len(indexes))
	for _, i := range indexes {
		drop[i] = struct{}{}
	}

	kept := make([]model.Correction, 0, len(res.Corrections))
	for i, c := range res.Corrections {
		if _, ok := drop[i]; ok {
			continue
		}
		kept = append(kept, c)
	}
	out.Corrections = kept
	out.CorrectionCount = len(kept)

	if res.Success {
		// corrections are anchored to the original text, so the patched
		// view can always be rebuilt from scratch
		out.CorrectedText = patch.Apply(res.OriginalText, kept)
		out.EditDistance = util.Levenshtein(res.OriginalText, out.CorrectedText)
		if len(kept) > 0 {
			out.Message = fmt.Sprintf("found %d issues", len(kept))
		} else {
			out.Message = "no issues found"
		}
	}
	return &out
}
