// Package segment defines the unit of text produced by word segmentation
// and the interface the analysis engine consumes it through.
//
// Segmentation itself is an external concern: the engine only needs an
// ordered sequence of segments, each flagged word-like or not. The default
// implementation wraps gse; tests and embedders can supply their own.
package segment

import (
	"strings"
	"unicode"

	"github.com/go-ego/gse"
)

// Segment is one unit of segmented text.
type Segment struct {
	Text       string
	IsWordLike bool
}

// Segmenter splits normalized text into an ordered sequence of segments.
type Segmenter interface {
	Segment(text string) []Segment
}

// GseSegmenter is the default Segmenter, backed by the gse dictionary
// segmenter. It handles mixed Chinese/Latin text.
type GseSegmenter struct {
	seg gse.Segmenter
}

// NewGseSegmenter loads the default gse dictionary. Loading is expensive;
// construct once and share, the segmenter is safe for concurrent use.
func NewGseSegmenter() (*GseSegmenter, error) {
	g := &GseSegmenter{}
	if err := g.seg.LoadDict(); err != nil {
		return nil, err
	}
	return g, nil
}

// Segment cuts text and tags each piece word-like when it contains at
// least one letter or digit. Pure-whitespace pieces are dropped so that
// tag characters stay adjacent to the word they mark.
func (g *GseSegmenter) Segment(text string) []Segment {
	words := g.seg.Cut(text, true)
	out := make([]Segment, 0, len(words))
	for _, w := range words {
		if strings.TrimSpace(w) == "" {
			continue
		}
		out = append(out, Segment{Text: w, IsWordLike: wordLike(w)})
	}
	return out
}

func wordLike(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}
