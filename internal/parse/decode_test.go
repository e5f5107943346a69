package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_MapsKnownCategories(t *testing.T) {
	raw := []byte(`{
		"char": [[2, "天气", "天氣", ""]],
		"pol":  [[0, "某词", "别词", "extra", "more"]]
	}`)

	corrs, err := Decode(raw, DefaultCategories())
	require.NoError(t, err)
	require.Len(t, corrs, 2)

	// table order: pol before char
	assert.Equal(t, "pol", corrs[0].Type)
	assert.Equal(t, "political term", corrs[0].Description)
	assert.Equal(t, 0, corrs[0].Position)
	assert.Equal(t, "某词", corrs[0].Original)
	assert.Equal(t, "别词", corrs[0].Corrected)
	assert.Equal(t, 1.0, corrs[0].Confidence)

	assert.Equal(t, "char", corrs[1].Type)
	assert.Equal(t, 2, corrs[1].Position)
	assert.Equal(t, "misused character", corrs[1].Description)
}

func TestDecode_UnknownKeysIgnored(t *testing.T) {
	raw := []byte(`{"brand_new_kind": [[1, "a", "b", ""]]}`)
	corrs, err := Decode(raw, DefaultCategories())
	require.NoError(t, err)
	assert.Empty(t, corrs)
}

func TestDecode_CustomCategoryTable(t *testing.T) {
	raw := []byte(`{"brand_new_kind": [[1, "a", "b", ""]], "char": [[0, "x", "y", ""]]}`)
	cats := []Category{{Key: "brand_new_kind", Description: "new kind"}}

	corrs, err := Decode(raw, cats)
	require.NoError(t, err)
	require.Len(t, corrs, 1, "only table keys are scanned")
	assert.Equal(t, "brand_new_kind", corrs[0].Type)
	assert.Equal(t, "new kind", corrs[0].Description)
}

func TestDecode_MalformedEntriesSkipped(t *testing.T) {
	raw := []byte(`{
		"char":  [[1, "a", "b"], [2, "c", "d", ""], "not-an-array"],
		"punc":  {"not": "an array"},
		"idm":   [[true, "a", "b", ""], [3, 7, "b", ""], [4, "a", 9, ""]]
	}`)

	corrs, err := Decode(raw, DefaultCategories())
	require.NoError(t, err)
	require.Len(t, corrs, 1, "only the one well-formed entry survives")
	assert.Equal(t, 2, corrs[0].Position)
	assert.Equal(t, "c", corrs[0].Original)
}

func TestDecode_InvalidJSON(t *testing.T) {
	_, err := Decode([]byte(`[1, 2`), DefaultCategories())
	assert.Error(t, err)
}

func TestDefaultCategories_StableKeys(t *testing.T) {
	cats := DefaultCategories()
	require.NotEmpty(t, cats)
	assert.Equal(t, "black_list", cats[0].Key, "scan order is part of the contract")
	seen := make(map[string]bool, len(cats))
	for _, c := range cats {
		assert.False(t, seen[c.Key], "duplicate key %s", c.Key)
		seen[c.Key] = true
		assert.NotEmpty(t, c.Description, "%s needs a label", c.Key)
	}
}
