// Package tokenize turns a segment sequence into recognized tokens:
// configured multi-segment terms, tag+handle markup, hyphen compounds,
// and plain words.
package tokenize

import (
	"strconv"
	"strings"

	"github.com/coinsight/postlex/pkg/postlex/segment"
)

// Tokenizer recognizes configured terms and social-media markup over a
// segment sequence. Immutable after construction.
type Tokenizer struct {
	// byLen groups term sub-token sequences by length, preserving
	// configuration order within each group. Configuration order is the
	// tie-break among equal-length candidates: the first listed wins.
	byLen  map[int][][]string
	maxLen int
}

// NewTokenizer precomputes the term table from the configured phrases.
// Each phrase is lowercased and split on whitespace into sub-tokens.
// Single-word phrases are not indexed: a matching segment already
// surfaces through the plain-word rule, and routing it there keeps the
// word-like and non-numeric guards in force.
func NewTokenizer(terms []string) *Tokenizer {
	t := &Tokenizer{byLen: make(map[int][][]string)}
	for _, phrase := range terms {
		parts := strings.Fields(strings.ToLower(phrase))
		if len(parts) < 2 {
			continue
		}
		t.byLen[len(parts)] = append(t.byLen[len(parts)], parts)
		if len(parts) > t.maxLen {
			t.maxLen = len(parts)
		}
	}
	return t
}

// Tokenize scans segments left to right with a greedy longest-match
// cursor. At each position it tries, in order: the widest configured term
// window, then tag markup (@ # $ followed by a non-numeric word), then a
// hyphen-joined compound chain, then a plain non-numeric word. Segments
// matching none of these (punctuation, bare numbers) are skipped.
func (t *Tokenizer) Tokenize(segs []segment.Segment) []string {
	var tokens []string
	n := len(segs)
	i := 0
	for i < n {
		if tok, width := t.matchTerm(segs, i); width > 0 {
			tokens = append(tokens, tok)
			i += width
			continue
		}

		cur := segs[i]
		if isTag(cur.Text) && i+1 < n && segs[i+1].IsWordLike && !isNumeric(segs[i+1].Text) {
			tokens = append(tokens, cur.Text+segs[i+1].Text)
			i += 2
			continue
		}

		if cur.IsWordLike && i+1 < n && segs[i+1].Text == "-" {
			parts := []string{cur.Text}
			j := i + 1
			for j+1 < n && segs[j].Text == "-" && segs[j+1].IsWordLike {
				parts = append(parts, segs[j+1].Text)
				j += 2
			}
			if len(parts) > 1 {
				tokens = append(tokens, strings.Join(parts, "-"))
				i = j
				continue
			}
		}

		if cur.IsWordLike && !isNumeric(cur.Text) {
			tokens = append(tokens, cur.Text)
		}
		i++
	}
	return tokens
}

// matchTerm tries term windows at position i from widest down to two
// segments and returns the joined term text and consumed segment count,
// or ("", 0). Once a wider window matches, narrower ones are never tried.
func (t *Tokenizer) matchTerm(segs []segment.Segment, i int) (string, int) {
	max := t.maxLen
	if remaining := len(segs) - i; max > remaining {
		max = remaining
	}
	for w := max; w >= 2; w-- {
		for _, term := range t.byLen[w] {
			if equalWindow(segs[i:i+w], term) {
				return strings.Join(term, " "), w
			}
		}
	}
	return "", 0
}

func equalWindow(segs []segment.Segment, term []string) bool {
	for k, sub := range term {
		if segs[k].Text != sub {
			return false
		}
	}
	return true
}

func isTag(s string) bool {
	return s == "@" || s == "#" || s == "$"
}

// isNumeric reports whether the whole segment parses as a number.
func isNumeric(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
