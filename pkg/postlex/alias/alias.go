// Package alias maps tokens to their canonical forms and deduplicates
// the result.
package alias

import "strings"

// Table holds the exact-match alias mapping. Aliases are not chained:
// a token is looked up once, so canonicalization is idempotent.
type Table struct {
	m map[string]string
}

// New builds a Table from alias pairs, lowercasing keys and values.
func New(pairs map[string]string) *Table {
	m := make(map[string]string, len(pairs))
	for k, v := range pairs {
		m[strings.ToLower(k)] = strings.ToLower(v)
	}
	return &Table{m: m}
}

// Resolve returns the canonical form of tok, or tok itself when no alias
// entry exists.
func (t *Table) Resolve(tok string) string {
	if c, ok := t.m[tok]; ok {
		return c
	}
	return tok
}

// Canonicalize maps every token through the table and removes duplicates,
// preserving first-seen order.
func (t *Table) Canonicalize(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		c := t.Resolve(tok)
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
