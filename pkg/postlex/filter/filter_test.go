package filter

import (
	"reflect"
	"testing"

	"github.com/coinsight/postlex/pkg/postlex/ignore"
	"github.com/coinsight/postlex/pkg/postlex/symbols"
)

func newFilter(t *testing.T, excludeHanzi, excludeKana bool, ignoreWords ...string) *Filter {
	t.Helper()
	tab, err := symbols.New([]symbols.Entry{{Symbol: "btc", Name: "bitcoin"}}, "$€£¥")
	if err != nil {
		t.Fatal(err)
	}
	return New(excludeHanzi, excludeKana, tab, ignore.Expand(ignoreWords))
}

func TestKeepPlainWord(t *testing.T) {
	f := newFilter(t, false, false)
	if !f.Keep("moon") {
		t.Error("\"moon\" must survive")
	}
}

func TestKeepDropsNumericAmounts(t *testing.T) {
	f := newFilter(t, false, false)
	for _, tok := range []string{"42", "1.2k", "$5m", "1,000", "10-20", "$1.5b"} {
		if f.Keep(tok) {
			t.Errorf("amount %q must be dropped", tok)
		}
	}
}

func TestKeepKeepsAlphabeticDespiteShorthandLetters(t *testing.T) {
	// Stripping k/m/b/t from an alphabetic token must not turn it into a
	// number.
	f := newFilter(t, false, false)
	for _, tok := range []string{"market", "tomb", "kombat"} {
		if !f.Keep(tok) {
			t.Errorf("%q must survive the numeric predicate", tok)
		}
	}
}

func TestLengthFloorExemptsCJK(t *testing.T) {
	// A 1-character ideograph token survives the length floor; a
	// 2-character ASCII token does not.
	if !lengthOK("涨", true) {
		t.Error("single ideograph must pass the length floor")
	}
	if lengthOK("to", false) {
		t.Error("2-char ASCII token must fail the length floor")
	}
	if !lengthOK("dip", false) {
		t.Error("3-char ASCII token must pass the length floor")
	}
}

func TestKeepThreeRuneStopwordNeedsIgnoreList(t *testing.T) {
	// The length floor is strictly > 2 runes: "the" passes it, and only
	// an ignore-list entry removes it.
	bare := newFilter(t, false, false)
	if !bare.Keep("the") {
		t.Error("\"the\" passes the length floor with an empty ignore list")
	}
	ignoring := newFilter(t, false, false, "the")
	if ignoring.Keep("the") {
		t.Error("ignored \"the\" must be dropped")
	}
}

func TestKeepDropsAllShorthandToken(t *testing.T) {
	// Tokens made entirely of sign/shorthand characters strip to the
	// empty string and are treated as amounts.
	f := newFilter(t, false, false)
	for _, tok := range []string{"kkk", "$-,"} {
		if f.Keep(tok) {
			t.Errorf("%q must be dropped", tok)
		}
	}
}

func TestKeepDropsShortASCII(t *testing.T) {
	f := newFilter(t, false, false)
	for _, tok := range []string{"to", "a", "of"} {
		if f.Keep(tok) {
			t.Errorf("short token %q must be dropped", tok)
		}
	}
}

func TestKeepHanziFlag(t *testing.T) {
	f := newFilter(t, true, false)
	if f.Keep("行情") {
		t.Error("ideograph token must be dropped when exclude_hanzi is set")
	}
}

func TestKeepKanaFlag(t *testing.T) {
	f := newFilter(t, false, true)
	if f.Keep("ビット") {
		t.Error("kana token must be dropped when exclude_kana is set")
	}
}

func TestKeepNonASCIIDropped(t *testing.T) {
	f := newFilter(t, false, false)
	if f.Keep("naïve") {
		t.Error("non-ASCII token must be dropped")
	}
}

func TestKeepMostlyPunctuationDropped(t *testing.T) {
	f := newFilter(t, false, false)
	// 3 letters out of 7 runes is below the 60% alpha floor.
	if f.Keep("a.b.c..") {
		t.Error("mostly-punctuation token must be dropped")
	}
	if !f.Keep("#btc") {
		t.Error("\"#btc\" is 75% alphabetic and must survive")
	}
}

func TestKeepIgnoreSet(t *testing.T) {
	f := newFilter(t, false, false, "moon")
	if f.Keep("moon") {
		t.Error("ignored word must be dropped")
	}
	if f.Keep("mooning") {
		t.Error("expanded variant must be dropped")
	}
	if !f.Keep("lambo") {
		t.Error("unrelated word must survive")
	}
}

func TestApplyPreservesOrder(t *testing.T) {
	f := newFilter(t, false, false)
	got := f.Apply([]string{"to", "moon", "1.2k", "#btc", "of"})
	want := []string{"moon", "#btc"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
