package textcheck

import (
	"fmt"
	"strings"

	"github.com/leslieliu-cn/textcheck/internal/model"
)

// FormatResult renders a Result as a human-readable report: one numbered
// entry per correction, then the fully corrected text when it differs
// from the original.
func FormatResult(res *model.Result) string {
	if res == nil {
		return ""
	}
	if !res.Success {
		return "check failed: " + res.Message
	}
	if len(res.Corrections) == 0 {
		if res.Message != "" {
			return res.Message
		}
		return "no issues found"
	}

	var b strings.Builder
	b.WriteString("Found the following issues:\n\n")
	for i, c := range res.Corrections {
		fmt.Fprintf(&b, "%d. %s: %q\n", i+1, c.Description, c.Original)
		fmt.Fprintf(&b, "   suggested: %q\n", c.Corrected)
		if c.Confidence > 0 {
			fmt.Fprintf(&b, "   confidence: %.1f%%\n", c.Confidence*100)
		}
		b.WriteByte('\n')
	}
	if res.CorrectedText != "" && res.CorrectedText != res.OriginalText {
		b.WriteString("Corrected text:\n")
		b.WriteString(res.CorrectedText)
	}
	return b.String()
}
