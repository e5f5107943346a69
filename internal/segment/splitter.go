// Package segment slices long documents into length-bounded chunks the
// remote API can check as coherent units.
package segment

import (
	"unicode"

	"github.com/leslieliu-cn/textcheck/internal/model"
)

// boundary cascade, coarsest first
var levels = []func(rune) bool{
	func(r rune) bool { return r == '\n' || r == '\r' }, // paragraph
	func(r rune) bool { // sentence
		switch r {
		case '.', '!', '?', '。', '！', '？':
			return true
		}
		return false
	},
	func(r rune) bool { // clause
		switch r {
		case ',', ';', '，', '；', '、':
			return true
		}
		return false
	},
	unicode.IsSpace, // word
}

// Split slices text into segments of at most maxLen runes each.
// Paragraphs that fit are emitted as-is; oversized ones fall through to
// sentence, clause and word boundaries, accumulating consecutive pieces
// while they stay within the bound, and hard-cutting only when a single
// token leaves no other choice.
//
// Segments are trimmed of surrounding whitespace; Start is the rune offset
// of the trimmed content in the untrimmed original, tracked by cumulative
// consumed length rather than by re-searching (repeated content would
// anchor to the wrong occurrence).
//
// maxLen <= 0 disables splitting. Empty text yields no segments.
func Split(text string, maxLen int) []model.Segment {
	if text == "" {
		return nil
	}
	runes := []rune(text)
	if maxLen <= 0 || len(runes) <= maxLen {
		return []model.Segment{{Text: text, Start: 0}}
	}

	out := make([]model.Segment, 0, len(runes)/maxLen+1)
	for i := 0; i < len(runes); {
		j := pieceEnd(runes, i, levels[0])
		if trimmedLen(runes[i:j]) <= maxLen {
			out = emit(runes[i:j], i, out)
		} else {
			out = split(runes[i:j], i, 1, maxLen, out)
		}
		i = j
	}
	return out
}

// split breaks an oversized run at the given cascade level, flushing the
// accumulated chunk whenever the next piece would overflow it.
func split(runes []rune, start, level, maxLen int, out []model.Segment) []model.Segment {
	if trimmedLen(runes) <= maxLen {
		return emit(runes, start, out)
	}
	if level == len(levels) {
		// atomic token: hard cut, remainder carries into the next chunk
		for len(runes) > maxLen {
			out = emit(runes[:maxLen], start, out)
			runes = runes[maxLen:]
			start += maxLen
		}
		return emit(runes, start, out)
	}

	cur, curStart := 0, 0
	for i := 0; i < len(runes); {
		j := pieceEnd(runes, i, levels[level])
		piece := j - i
		switch {
		case cur > 0 && cur+piece <= maxLen:
			cur += piece
		case trimmedLen(runes[i:j]) <= maxLen:
			if cur > 0 {
				out = emit(runes[curStart:curStart+cur], start+curStart, out)
			}
			curStart, cur = i, piece
		default:
			if cur > 0 {
				out = emit(runes[curStart:curStart+cur], start+curStart, out)
				cur = 0
			}
			out = split(runes[i:j], start+i, level+1, maxLen, out)
		}
		i = j
	}
	if cur > 0 {
		out = emit(runes[curStart:curStart+cur], start+curStart, out)
	}
	return out
}

// pieceEnd returns the index just past the piece beginning at i: a maximal
// run of non-delimiters plus its trailing delimiter run. Keeping delimiters
// attached makes concatenation lossless, so offsets stay a plain running sum.
func pieceEnd(runes []rune, i int, isDelim func(rune) bool) int {
	j := i
	for j < len(runes) && !isDelim(runes[j]) {
		j++
	}
	for j < len(runes) && isDelim(runes[j]) {
		j++
	}
	return j
}

// trimmedLen measures a run the way emit will cut it: lengths are
// compared against the bound after surrounding whitespace goes, so a
// paragraph whose content fits is not split over its own trailing newlines.
func trimmedLen(runes []rune) int {
	lead := 0
	for lead < len(runes) && unicode.IsSpace(runes[lead]) {
		lead++
	}
	end := len(runes)
	for end > lead && unicode.IsSpace(runes[end-1]) {
		end--
	}
	return end - lead
}

// emit appends the trimmed chunk, shifting Start past any leading
// whitespace. Chunks that trim to nothing are dropped.
func emit(runes []rune, start int, out []model.Segment) []model.Segment {
	lead := 0
	for lead < len(runes) && unicode.IsSpace(runes[lead]) {
		lead++
	}
	end := len(runes)
	for end > lead && unicode.IsSpace(runes[end-1]) {
		end--
	}
	if lead == end {
		return out
	}
	return append(out, model.Segment{Text: string(runes[lead:end]), Start: start + lead})
}
