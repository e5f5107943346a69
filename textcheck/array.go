package textcheck

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/leslieliu-cn/textcheck/internal/model"
	"github.com/leslieliu-cn/textcheck/internal/net"
)

// checkArray sends every segment in one unsigned {"texts": [...]} call and
// zips the response entries back onto the segments positionally. Transport
// or protocol failure marks every segment failed; the pipeline still
// produces a well-formed merged Result.
func (c *Client) checkArray(ctx context.Context, segs []model.Segment) []*model.Result {
	texts := make([]string, len(segs))
	for i, s := range segs {
		texts[i] = s.Text
	}

	body, err := json.Marshal(map[string]any{"texts": texts})
	if err != nil {
		return c.allFailed(segs, err.Error())
	}
	req, err := net.NewPOST(ctx, c.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return c.allFailed(segs, fmt.Sprintf("%s: %v", ErrTransport.Error(), err))
	}
	resp, err := net.Do(req)
	if err != nil {
		return c.allFailed(segs, fmt.Sprintf("%s: %v", ErrTransport.Error(), err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.allFailed(segs, fmt.Sprintf("%s: %v", ErrTransport.Error(), err))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.allFailed(segs, fmt.Sprintf("%s: HTTP %d", ErrTransport.Error(), resp.StatusCode))
	}

	return c.zipArray(raw, segs)
}

// zipArray decodes the response (a bare array, or an object carrying the
// array under "results" or "data") and pairs entries with segments. A
// length mismatch is logged and zipped best-effort, not aborted.
func (c *Client) zipArray(raw []byte, segs []model.Segment) []*model.Result {
	entries, err := decodeResultArray(raw)
	if err != nil {
		return c.allFailed(segs, fmt.Sprintf("%s: %v", ErrProtocol.Error(), err))
	}
	if len(entries) != len(segs) {
		c.logger.Warn("segment/result count mismatch",
			"segments", len(segs), "results", len(entries))
	}

	out := make([]*model.Result, len(segs))
	for i, s := range segs {
		if i >= len(entries) {
			out[i] = failResult(s.Text, "no result entry for segment")
			continue
		}
		var r model.Result
		if err := json.Unmarshal(entries[i], &r); err != nil {
			out[i] = failResult(s.Text, fmt.Sprintf("%s: entry %d: %v", ErrProtocol.Error(), i, err))
			continue
		}
		if r.OriginalText == "" {
			r.OriginalText = s.Text
		}
		out[i] = &r
	}
	return out
}

func decodeResultArray(raw []byte) ([]json.RawMessage, error) {
	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err == nil {
		return arr, nil
	}
	var wrap struct {
		Results []json.RawMessage `json:"results"`
		Data    []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrap); err != nil {
		return nil, fmt.Errorf("response is neither an array nor a results/data object: %w", err)
	}
	if wrap.Results != nil {
		return wrap.Results, nil
	}
	if wrap.Data != nil {
		return wrap.Data, nil
	}
	return nil, fmt.Errorf("response object carries no results or data array")
}

func (c *Client) allFailed(segs []model.Segment, msg string) []*model.Result {
	out := make([]*model.Result, len(segs))
	for i, s := range segs {
		out[i] = failResult(s.Text, msg)
	}
	return out
}
