// Package symbols holds the static symbol/name lookup table. The table is
// produced out of band (a fetch script keeps the JSON file current); the
// engine only consumes it, mainly to know which sign characters to strip
// before testing a token for numericness.
package symbols

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/coinsight/postlex/pkg/postlex/internalerr"
)

// Entry is one symbol/name pair, e.g. {"btc", "bitcoin"} or {"$", "usd"}.
type Entry struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// Table is the loaded lookup table plus the derived sign-strip set.
// Immutable after construction.
type Table struct {
	names map[string]string
	signs map[rune]struct{}
}

// Load reads a JSON array of entries from path and derives the sign set
// from fiatSigns plus every single-rune symbol in the table.
func Load(path string, fiatSigns string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: symbols file %s: %v", internalerr.ErrInvalidConfig, path, err)
	}
	return New(entries, fiatSigns)
}

// New builds a Table directly from entries. Entries with an empty symbol
// are rejected: the table is all-or-nothing per the startup contract.
func New(entries []Entry, fiatSigns string) (*Table, error) {
	t := &Table{
		names: make(map[string]string, len(entries)),
		signs: make(map[rune]struct{}),
	}
	for _, r := range fiatSigns {
		t.signs[r] = struct{}{}
	}
	for _, e := range entries {
		if e.Symbol == "" {
			return nil, fmt.Errorf("%w: symbol entry with empty symbol (name %q)", internalerr.ErrInvalidConfig, e.Name)
		}
		t.names[e.Symbol] = e.Name
		if runes := []rune(e.Symbol); len(runes) == 1 {
			t.signs[runes[0]] = struct{}{}
		}
	}
	return t, nil
}

// Name returns the full name registered for symbol.
func (t *Table) Name(symbol string) (string, bool) {
	n, ok := t.names[symbol]
	return n, ok
}

// IsSign reports whether r is a currency sign to strip before numeric
// detection.
func (t *Table) IsSign(r rune) bool {
	_, ok := t.signs[r]
	return ok
}
