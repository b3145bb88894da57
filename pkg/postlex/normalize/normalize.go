// Package normalize prepares raw post text for segmentation.
package normalize

import (
	"regexp"
	"sort"
	"strings"

	"github.com/siongui/gojianfan"
	"golang.org/x/net/html"
	"golang.org/x/text/width"
)

var (
	shortLinkRe  = regexp.MustCompile(`https?://(?:t\.co|bit\.ly|tinyurl\.com|goo\.gl|ow\.ly)/[a-z0-9]+`)
	possessiveRe = regexp.MustCompile(`(\w)'s`)
)

// Normalizer rewrites raw text into the canonical form the tokenizer
// expects. It is immutable after construction and safe for concurrent use.
type Normalizer struct {
	replacements map[string]string
	replaceRe    *regexp.Regexp
	aliases      map[string]string
	aliasRe      *regexp.Regexp
}

// New builds a Normalizer from literal-replacement pairs and alias pairs.
// Keys are matched case-insensitively (the input is lowercased first), so
// both tables are lowercased here. Keys are regexp-escaped before
// compilation; longer keys win when one key is a prefix of another.
func New(replacements, aliases map[string]string) *Normalizer {
	n := &Normalizer{
		replacements: lowerPairs(replacements),
		aliases:      lowerPairs(aliases),
	}
	if len(n.replacements) > 0 {
		n.replaceRe = regexp.MustCompile(alternation(n.replacements))
	}
	if len(n.aliases) > 0 {
		n.aliasRe = regexp.MustCompile(`\b(?:` + alternation(n.aliases) + `)\b`)
	}
	return n
}

// Normalize applies, in order: HTML text extraction, width folding,
// lowercasing, short-link removal, literal replacements, alias
// substitution at word boundaries, possessive expansion ("x's" -> "x is"),
// and traditional-to-simplified conversion. Pure function.
func (n *Normalizer) Normalize(raw string) string {
	s := stripHTML(raw)
	s = width.Fold.String(s)
	s = strings.ToLower(s)
	s = shortLinkRe.ReplaceAllString(s, "")
	if n.replaceRe != nil {
		s = n.replaceRe.ReplaceAllStringFunc(s, func(m string) string {
			return n.replacements[m]
		})
	}
	if n.aliasRe != nil {
		s = n.aliasRe.ReplaceAllStringFunc(s, func(m string) string {
			return n.aliases[m]
		})
	}
	s = possessiveRe.ReplaceAllString(s, "${1} is")
	return gojianfan.T2S(s)
}

// stripHTML extracts text content and unescapes entities. Plain text
// passes through untouched.
func stripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	tok := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	for {
		switch tok.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(tok.Text())
		}
	}
}

func lowerPairs(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[strings.ToLower(k)] = strings.ToLower(v)
	}
	return out
}

// alternation joins the escaped keys of m into a single alternation,
// longest key first so a longer key beats its own prefix at the same
// position.
func alternation(m map[string]string) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	for i, k := range keys {
		keys[i] = regexp.QuoteMeta(k)
	}
	return strings.Join(keys, "|")
}
