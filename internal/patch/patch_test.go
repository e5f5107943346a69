package patch

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leslieliu-cn/textcheck/internal/model"
)

func corr(pos int, original, corrected string) model.Correction {
	return model.Correction{Position: pos, Original: original, Corrected: corrected}
}

func TestApply_NoCorrections(t *testing.T) {
	assert.Equal(t, "unchanged", Apply("unchanged", nil))
	assert.Equal(t, "unchanged", Apply("unchanged", []model.Correction{}))
}

func TestApply_SingleCJKCorrection(t *testing.T) {
	got := Apply("今天天气很好", []model.Correction{corr(2, "天气", "天氣")})
	assert.Equal(t, "今天天氣很好", got)
}

func TestApply_OrderIndependence(t *testing.T) {
	text := "aaa bbb ccc ddd"
	corrs := []model.Correction{
		corr(0, "aaa", "A"),
		corr(4, "bbb", "BBBB"),
		corr(12, "ddd", "D"),
	}
	want := "A BBBB ccc D"

	orders := [][]int{{0, 1, 2}, {2, 1, 0}, {1, 2, 0}, {2, 0, 1}}
	for _, order := range orders {
		shuffled := make([]model.Correction, len(corrs))
		for i, j := range order {
			shuffled[i] = corrs[j]
		}
		assert.Equal(t, want, Apply(text, shuffled), "order %v", order)
	}
}

func TestApply_LengthChangingEditsDontDrift(t *testing.T) {
	// the later (higher-offset) edit shrinks the text; the earlier one
	// must still land where the original coordinates say
	text := "one two three"
	got := Apply(text, []model.Correction{
		corr(8, "three", "3"),
		corr(0, "one", "first"),
	})
	assert.Equal(t, "first two 3", got)
}

func TestApply_OutOfRangeSkipped(t *testing.T) {
	text := "短文本"
	corrs := []model.Correction{
		corr(10, "无", "有"), // beyond the end
		corr(-1, "短", "长"), // negative offset
		corr(1, "文", "字"),
	}
	assert.Equal(t, "短字本", Apply(text, corrs))
}

func TestApply_SpanRunningPastEndSkipped(t *testing.T) {
	// starts in range but original runs past the end of the text
	got := Apply("abcde", []model.Correction{corr(3, "defgh", "x")})
	assert.Equal(t, "abcde", got)
}

func TestApply_InputSliceUntouched(t *testing.T) {
	corrs := []model.Correction{
		corr(1, "b", "z"),
		corr(0, "a", "y"),
	}
	Apply("ab", corrs)
	assert.Equal(t, 1, corrs[0].Position, "caller's slice must not be reordered")
	assert.Equal(t, 0, corrs[1].Position)
}

// Corrections stay anchored to the original document, so re-applying the
// same set to the original text reproduces the same output.
func TestApply_RederivationIdempotent(t *testing.T) {
	text := "今天天气很好，天气真好。"
	corrs := []model.Correction{
		corr(2, "天气", "天氣"),
		corr(7, "天气", "天氣"),
	}
	first := Apply(text, corrs)
	second := Apply(text, corrs)
	assert.Equal(t, first, second)
	assert.Equal(t, "今天天氣很好，天氣真好。", first)
}
