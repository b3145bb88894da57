// Package filter implements the noise-exclusion predicate chain applied
// to canonicalized tokens.
package filter

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/coinsight/postlex/pkg/postlex/ignore"
	"github.com/coinsight/postlex/pkg/postlex/script"
	"github.com/coinsight/postlex/pkg/postlex/symbols"
)

// shorthand characters stripped together with currency signs before
// numeric detection, so "1.2k", "$5m" and "1,000" read as numbers.
const shorthand = "kmbt,-"

// Filter drops noise tokens. A token survives only when every predicate
// passes. Immutable after construction.
type Filter struct {
	excludeHanzi bool
	excludeKana  bool
	signs        *symbols.Table
	ignored      *ignore.Set
}

// New builds a Filter. signs supplies the currency-sign strip set;
// ignored is the expanded ignore set.
func New(excludeHanzi, excludeKana bool, signs *symbols.Table, ignored *ignore.Set) *Filter {
	return &Filter{
		excludeHanzi: excludeHanzi,
		excludeKana:  excludeKana,
		signs:        signs,
		ignored:      ignored,
	}
}

// Apply returns the tokens that pass Keep, in order.
func (f *Filter) Apply(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if f.Keep(tok) {
			out = append(out, tok)
		}
	}
	return out
}

// Keep reports whether tok passes every exclusion predicate. The
// predicates are independent; the ordering here is cheapest-first.
func (f *Filter) Keep(tok string) bool {
	hasHan := script.HasHan(tok)
	hasKana := script.HasKana(tok)

	if f.excludeHanzi && hasHan {
		return false
	}
	if f.excludeKana && hasKana {
		return false
	}
	if !lengthOK(tok, hasHan || hasKana) {
		return false
	}
	if !script.AllASCII(tok) {
		return false
	}
	if f.numericAmount(tok) {
		return false
	}
	if !mostlyAlpha(tok) {
		return false
	}
	return !f.ignored.Has(tok)
}

// lengthOK enforces the 3-rune floor on tokens without CJK content. A
// single ideograph or kana token carries meaning and is exempt.
func lengthOK(tok string, cjk bool) bool {
	if cjk {
		return true
	}
	return utf8.RuneCountInString(tok) > 2
}

// numericAmount reports whether tok is a bare amount once currency signs
// and magnitude shorthand are stripped: "1.2k", "$5m", "1,000-2,000".
func (f *Filter) numericAmount(tok string) bool {
	stripped := strings.Map(func(r rune) rune {
		if f.signs.IsSign(r) || strings.ContainsRune(shorthand, r) {
			return -1
		}
		return r
	}, tok)
	if stripped == "" {
		return true
	}
	_, err := strconv.ParseFloat(stripped, 64)
	return err == nil
}

// mostlyAlpha requires the [a-z]-only length to strictly exceed 60% of
// the token length, rejecting tokens that are mostly digits or
// punctuation.
func mostlyAlpha(tok string) bool {
	alpha := utf8.RuneCountInString(script.StripNonAlpha(tok))
	return float64(alpha) > float64(utf8.RuneCountInString(tok))*0.6
}
