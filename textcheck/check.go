// Package textcheck checks documents for sensitive, incorrect or
// policy-violating content by delegating to a remote correction API and
// reassembling its per-position edit suggestions into one corrected text.
package textcheck

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/leslieliu-cn/textcheck/internal/llm"
	"github.com/leslieliu-cn/textcheck/internal/model"
	"github.com/leslieliu-cn/textcheck/internal/parse"
	"github.com/leslieliu-cn/textcheck/internal/patch"
	"github.com/leslieliu-cn/textcheck/internal/segment"
	"github.com/leslieliu-cn/textcheck/internal/util"
)

// Client runs the correction pipeline against one configured backend.
// A Client is safe for concurrent use; every CheckText call is independent.
type Client struct {
	cfg    Config
	cats   []parse.Category
	llm    *llm.Checker
	logger *slog.Logger
	now    func() time.Time

	// checkSegment runs one segment through the signed backend;
	// swapped out in tests.
	checkSegment func(ctx context.Context, text string) *model.Result
}

// New builds a Client from an explicit Config.
func New(cfg Config) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Mode == "" {
		cfg.Mode = ModeSigned
	}
	c := &Client{
		cfg:    cfg,
		cats:   cfg.categories(),
		logger: slog.Default(),
		now:    time.Now,
	}
	if cfg.Mode == ModeLLM {
		c.llm = llm.New(cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.BaseURL)
	}
	c.checkSegment = c.checkSigned
	return c, nil
}

// SetLogger replaces the default slog logger.
func (c *Client) SetLogger(l *slog.Logger) {
	if l != nil {
		c.logger = l
	}
}

// CheckText submits text (any length) and returns a merged Result.
//
// Oversized input is split into bounded segments which are dispatched in
// parallel (bounded by GOMAXPROCS) and reassembled in order, so correction
// offsets are independent of response arrival. A failed segment does not
// abort the rest; it flips Success off while the surviving corrections are
// still returned.
//
// The only error paths are a nil or cancelled ctx; every other failure
// folds into a Result with Success=false and a readable Message.
func (c *Client) CheckText(ctx context.Context, text string) (*model.Result, error) {
	if ctx == nil {
		return nil, errors.New("ctx is nil")
	}
	if strings.TrimSpace(text) == "" {
		return failResult(text, "text must not be empty"), nil
	}
	if c.cfg.Mode == ModeLLM {
		return c.checkLLM(ctx, text)
	}

	segs := segment.Split(text, c.cfg.MaxLength)
	if len(segs) == 0 {
		return failResult(text, ErrNoSegments.Error()), nil
	}

	var out []*model.Result
	if c.cfg.Mode == ModeArray {
		out = c.checkArray(ctx, segs)
	} else {
		out = c.fanOut(ctx, segs)
	}
	if err := ctx.Err(); err != nil {
		return nil, err // cancelled: discard partials
	}

	return c.merge(text, segs, out), nil
}

// fanOut dispatches one signed call per segment, results slotted by index.
func (c *Client) fanOut(ctx context.Context, segs []model.Segment) []*model.Result {
	out := make([]*model.Result, len(segs))
	sem := make(chan struct{}, runtime.GOMAXPROCS(0))
	var wg sync.WaitGroup
	for i, s := range segs {
		if ctx.Err() != nil {
			break // cancelled: issue no further requests
		}
		i, text := i, s.Text
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			out[i] = c.checkSegment(ctx, text)
		}()
	}
	wg.Wait()
	return out
}

// merge translates each segment's corrections into document coordinates
// and applies them all against the full original text.
//
// Segment i's offset is the running sum of prior segment rune lengths,
// each plus one separator character.
func (c *Client) merge(text string, segs []model.Segment, results []*model.Result) *model.Result {
	offsets := make([]int, len(segs))
	run := 0
	for i, s := range segs {
		offsets[i] = run
		run += utf8.RuneCountInString(s.Text) + 1
	}

	var corrs []model.Correction
	failed := 0
	for i, r := range results {
		if r == nil || !r.Success {
			failed++
			continue
		}
		for _, cr := range r.Corrections {
			cr.Position += offsets[i]
			corrs = append(corrs, cr)
		}
	}

	res := &model.Result{
		Success:         failed == 0,
		OriginalText:    text,
		Corrections:     corrs,
		CharCount:       utf8.RuneCountInString(text),
		SegmentCount:    len(segs),
		CorrectionCount: len(corrs),
	}

	switch {
	case failed == len(results):
		res.Message = "check failed for every segment"
	case failed > 0:
		res.Message = fmt.Sprintf("%d of %d segments failed; results are partial", failed, len(results))
	default:
		res.CorrectedText = patch.Apply(text, corrs)
		res.EditDistance = util.Levenshtein(text, res.CorrectedText)
		if len(corrs) > 0 {
			res.Message = fmt.Sprintf("found %d issues", len(corrs))
		} else {
			res.Message = "no issues found"
		}
	}
	return res
}

func failResult(text, msg string) *model.Result {
	return &model.Result{
		Success:      false,
		OriginalText: text,
		Message:      msg,
	}
}
