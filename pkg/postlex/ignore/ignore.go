// Package ignore loads the base ignore-word list and expands each entry
// with common morphological variants, so that "run" also excludes "runs",
// "running" and similar noise forms.
package ignore

import (
	"bufio"
	"os"
	"strings"

	"github.com/gertd/go-pluralize"
)

// Set is the expanded ignore set. Immutable after construction.
type Set struct {
	words map[string]struct{}
}

// Load reads a newline-delimited word list and returns the expanded set.
// Blank lines and lines starting with '#' are skipped.
func Load(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var base []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		base = append(base, strings.ToLower(line))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return Expand(base), nil
}

// Expand generates, per base word, the word itself plus its plural and
// singular forms and a set of crude suffix variants: w+"ing",
// w-minus-last+"ing" (hope -> hoping), w+doubled-final+"ing"
// (run -> running), w+"d", w+"ed". The variants are deliberately
// over-generating; a nonsense form like "runing" only ever drops more
// noise.
func Expand(base []string) *Set {
	p := pluralize.NewClient()
	words := make(map[string]struct{}, len(base)*8)
	for _, w := range base {
		if w == "" {
			continue
		}
		for _, v := range variants(p, w) {
			words[v] = struct{}{}
		}
	}
	return &Set{words: words}
}

func variants(p *pluralize.Client, w string) []string {
	out := []string{w, p.Plural(w), p.Singular(w), w + "ing", w + "d", w + "ed"}
	runes := []rune(w)
	if len(runes) > 1 {
		out = append(out, string(runes[:len(runes)-1])+"ing")
	}
	last := string(runes[len(runes)-1])
	out = append(out, w+last+"ing")
	return out
}

// Has reports membership of w in the expanded set.
func (s *Set) Has(w string) bool {
	_, ok := s.words[w]
	return ok
}

// Len returns the number of distinct entries in the expanded set.
func (s *Set) Len() int {
	return len(s.words)
}
