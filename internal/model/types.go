package model

// Result is JSON-serialisable as-is and is what every check returns,
// whether it covers one segment or a whole merged document.
type Result struct {
	Success         bool         `json:"success"`
	OriginalText    string       `json:"originalText"`
	CorrectedText   string       `json:"correctedText,omitempty"` // set only on success
	Corrections     []Correction `json:"corrections,omitempty"`
	Message         string       `json:"message,omitempty"`
	CharCount       int          `json:"charCount,omitempty"`       // UTF-8 rune length of the input
	SegmentCount    int          `json:"segmentCount,omitempty"`    // segments sent upstream
	CorrectionCount int          `json:"correctionCount,omitempty"` // total accepted corrections
	EditDistance    int          `json:"editDistance,omitempty"`    // Levenshtein(original, corrected)
}

// Correction is a single suggested edit, anchored at a rune offset
// into the original text.
type Correction struct {
	Original    string  `json:"original"`    // exact substring at Position
	Corrected   string  `json:"corrected"`   // replacement text
	Position    int     `json:"position"`    // rune offset, document coordinates
	Type        string  `json:"type"`        // upstream category key (pol, char, punc, …)
	Confidence  float64 `json:"confidence"`  // [0,1]; 1.0 means unscored upstream
	Description string  `json:"description"` // human-readable category label
}

// Segment is a length-bounded slice of the original document.
// Start is the rune offset of the (trimmed) slice in the untrimmed original.
type Segment struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
}
