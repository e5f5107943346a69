package textcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leslieliu-cn/textcheck/internal/model"
)

func arrayClient(t *testing.T) *Client {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Mode = ModeArray
	cfg.URL = "https://example.com/v1/check"
	c, err := New(cfg)
	require.NoError(t, err)
	return c
}

var arraySegs = []model.Segment{
	{Text: "first segment", Start: 0},
	{Text: "second segment", Start: 14},
}

func TestZipArray_BareArray(t *testing.T) {
	c := arrayClient(t)
	raw := []byte(`[
		{"success": true, "originalText": "first segment", "corrections": [
			{"original": "first", "corrected": "1st", "position": 0, "type": "word", "confidence": 1.0, "description": "misused word"}
		]},
		{"success": true, "correctedText": "second segment"}
	]`)

	out := c.zipArray(raw, arraySegs)
	require.Len(t, out, 2)
	assert.True(t, out[0].Success)
	require.Len(t, out[0].Corrections, 1)
	assert.Equal(t, "1st", out[0].Corrections[0].Corrected)
	assert.True(t, out[1].Success)
	assert.Equal(t, "second segment", out[1].OriginalText, "missing originalText falls back to the segment")
}

func TestZipArray_WrappedResults(t *testing.T) {
	c := arrayClient(t)
	for _, key := range []string{"results", "data"} {
		raw := []byte(`{"` + key + `": [{"success": true}, {"success": false, "message": "nope"}]}`)
		out := c.zipArray(raw, arraySegs)
		require.Len(t, out, 2, key)
		assert.True(t, out[0].Success, key)
		assert.False(t, out[1].Success, key)
	}
}

func TestZipArray_LengthMismatchBestEffort(t *testing.T) {
	c := arrayClient(t)
	raw := []byte(`[{"success": true}]`)

	out := c.zipArray(raw, arraySegs)
	require.Len(t, out, 2)
	assert.True(t, out[0].Success)
	assert.False(t, out[1].Success, "segment without a response entry fails, the rest survive")
}

func TestZipArray_MalformedResponse(t *testing.T) {
	c := arrayClient(t)
	for _, raw := range []string{`"just a string"`, `{"neither": []}`, `{`} {
		out := c.zipArray([]byte(raw), arraySegs)
		require.Len(t, out, 2, raw)
		for _, r := range out {
			assert.False(t, r.Success, raw)
		}
	}
}

func TestZipArray_MalformedEntryFailsOnlyThatSegment(t *testing.T) {
	c := arrayClient(t)
	raw := []byte(`[{"success": true}, 42]`)

	out := c.zipArray(raw, arraySegs)
	require.Len(t, out, 2)
	assert.True(t, out[0].Success)
	assert.False(t, out[1].Success)
}
