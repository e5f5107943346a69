package textcheck

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/leslieliu-cn/textcheck/internal/model"
	"github.com/leslieliu-cn/textcheck/internal/net"
	"github.com/leslieliu-cn/textcheck/internal/parse"
	"github.com/leslieliu-cn/textcheck/internal/patch"
	"github.com/leslieliu-cn/textcheck/internal/sign"
	"github.com/leslieliu-cn/textcheck/internal/util"
)

// Upstream header.code values with fixed user-facing messages.
const (
	codeQuotaExceeded = 11201
	codeAuthFailed    = 10105
	codeNoLicense     = 10110
)

type signedResponse struct {
	Header struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Sid     string `json:"sid"`
	} `json:"header"`
	Payload *struct {
		Result struct {
			Text string `json:"text"` // base64 of UTF-8 JSON
		} `json:"result"`
	} `json:"payload,omitempty"`
}

// checkSigned runs one bounded piece of text through the HMAC-signed API
// and returns a segment-local Result. All failures fold into the Result.
func (c *Client) checkSigned(ctx context.Context, text string) *model.Result {
	// The signed API enforces a hard cap per call; it fails closed rather
	// than splitting. CheckText segments first and never trips this.
	if c.cfg.MaxLength > 0 && utf8.RuneCountInString(text) > c.cfg.MaxLength {
		return failResult(text, fmt.Sprintf("text exceeds the %d character limit", c.cfg.MaxLength))
	}

	body, err := json.Marshal(map[string]any{
		"header": map[string]any{
			"app_id": c.cfg.AppID,
			"status": 3,
		},
		"parameter": map[string]any{
			c.cfg.serviceID(): map[string]any{
				"result": map[string]any{
					"encoding": "utf8",
					"compress": "raw",
					"format":   "json",
				},
			},
		},
		"payload": map[string]any{
			"input": map[string]any{
				"encoding": "utf8",
				"compress": "raw",
				"format":   "plain",
				"status":   3,
				"text":     base64.StdEncoding.EncodeToString([]byte(text)),
			},
		},
	})
	if err != nil {
		return failResult(text, err.Error())
	}

	signedURL, err := sign.Signed(c.cfg.URL, "POST", c.cfg.APIKey, c.cfg.APISecret, c.now())
	if err != nil {
		return failResult(text, fmt.Sprintf("%s: %v", ErrSign.Error(), err))
	}

	req, err := net.NewPOST(ctx, signedURL, bytes.NewReader(body))
	if err != nil {
		return failResult(text, fmt.Sprintf("%s: %v", ErrTransport.Error(), err))
	}
	resp, err := net.Do(req)
	if err != nil {
		return failResult(text, fmt.Sprintf("%s: %v", ErrTransport.Error(), err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return failResult(text, fmt.Sprintf("%s: %v", ErrTransport.Error(), err))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return failResult(text, fmt.Sprintf("%s: HTTP %d", ErrTransport.Error(), resp.StatusCode))
	}

	var sr signedResponse
	if err := json.Unmarshal(raw, &sr); err != nil {
		return failResult(text, fmt.Sprintf("%s: %v", ErrProtocol.Error(), err))
	}
	if sr.Header.Code != 0 {
		return failResult(text, codeMessage(sr.Header.Code, sr.Header.Message))
	}

	if sr.Payload == nil || sr.Payload.Result.Text == "" {
		return cleanResult(text)
	}

	decoded, err := base64.StdEncoding.DecodeString(sr.Payload.Result.Text)
	if err != nil {
		return failResult(text, fmt.Sprintf("%s: result text: %v", ErrProtocol.Error(), err))
	}
	corrs, err := parse.Decode(decoded, c.cats)
	if err != nil {
		return failResult(text, fmt.Sprintf("%s: %v", ErrProtocol.Error(), err))
	}
	if len(corrs) == 0 {
		return cleanResult(text)
	}

	corrected := patch.Apply(text, corrs)
	return &model.Result{
		Success:         true,
		OriginalText:    text,
		CorrectedText:   corrected,
		Corrections:     corrs,
		Message:         fmt.Sprintf("found %d issues", len(corrs)),
		CharCount:       utf8.RuneCountInString(text),
		SegmentCount:    1,
		CorrectionCount: len(corrs),
		EditDistance:    util.Levenshtein(text, corrected),
	}
}

func cleanResult(text string) *model.Result {
	return &model.Result{
		Success:       true,
		OriginalText:  text,
		CorrectedText: text,
		Corrections:   []model.Correction{},
		Message:       "no issues found",
		CharCount:     utf8.RuneCountInString(text),
		SegmentCount:  1,
	}
}

// codeMessage maps the documented upstream error codes onto their fixed
// messages; anything unrecognised falls back to the upstream message or a
// generic failure.
func codeMessage(code int, upstream string) string {
	switch code {
	case codeQuotaExceeded:
		return "daily quota exceeded; retry after the next reset"
	case codeAuthFailed:
		return "authentication failed; check app id, api key and api secret"
	case codeNoLicense:
		return "insufficient license for this service"
	}
	if upstream != "" {
		return fmt.Sprintf("check failed: %s (code %d)", upstream, code)
	}
	return fmt.Sprintf("check failed (code %d)", code)
}
