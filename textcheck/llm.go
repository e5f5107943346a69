package textcheck

import (
	"context"
	"unicode/utf8"

	"github.com/leslieliu-cn/textcheck/internal/model"
	"github.com/leslieliu-cn/textcheck/internal/util"
)

// checkLLM runs the chat-based alternate workflow: the whole document goes
// out unsegmented and the streamed reply becomes the corrected text. The
// model returns no positioned edits, so Corrections stays empty.
func (c *Client) checkLLM(ctx context.Context, text string) (*model.Result, error) {
	corrected, err := c.llm.Proofread(ctx, text)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return failResult(text, err.Error()), nil
	}

	msg := "no issues found"
	if corrected != text {
		msg = "the model suggested changes"
	}
	return &model.Result{
		Success:       true,
		OriginalText:  text,
		CorrectedText: corrected,
		Message:       msg,
		CharCount:     utf8.RuneCountInString(text),
		SegmentCount:  1,
		EditDistance:  util.Levenshtein(text, corrected),
	}, nil
}
