package tokenize

import (
	"reflect"
	"testing"

	"github.com/coinsight/postlex/pkg/postlex/segment"
)

func words(ss ...string) []segment.Segment {
	segs := make([]segment.Segment, len(ss))
	for i, s := range ss {
		segs[i] = segment.Segment{Text: s, IsWordLike: true}
	}
	return segs
}

func punct(s string) segment.Segment {
	return segment.Segment{Text: s, IsWordLike: false}
}

func TestTokenizeTermMatch(t *testing.T) {
	tok := NewTokenizer([]string{"stop loss"})

	got := tok.Tokenize(words("btc", "stop", "loss", "now"))
	want := []string{"btc", "stop loss", "now"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokenizeGreedyLongestMatch(t *testing.T) {
	// Both "stop" and "stop loss" can match at position 0; the two-segment
	// term must win.
	tok := NewTokenizer([]string{"stop", "stop loss"})

	got := tok.Tokenize(words("stop", "loss"))
	want := []string{"stop loss"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokenizeSingleWordTerm(t *testing.T) {
	// A one-word phrase is recognized by the plain-word rule, not the
	// window scan; the output is the same either way.
	tok := NewTokenizer([]string{"bitcoin"})

	got := tok.Tokenize(words("bitcoin", "rally"))
	want := []string{"bitcoin", "rally"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokenizeNumericSingleWordTermStillDropped(t *testing.T) {
	// Routing one-word phrases through the plain-word rule keeps its
	// guards: a configured "100" must not resurrect a bare number.
	tok := NewTokenizer([]string{"100"})

	got := tok.Tokenize(words("100", "gone"))
	want := []string{"gone"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokenizePunctuationSingleWordTermStillDropped(t *testing.T) {
	tok := NewTokenizer([]string{"-"})

	got := tok.Tokenize([]segment.Segment{punct("-"), {Text: "dip", IsWordLike: true}})
	want := []string{"dip"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokenizeTagRule(t *testing.T) {
	tok := NewTokenizer(nil)

	segs := []segment.Segment{
		punct("#"),
		{Text: "btc", IsWordLike: true},
		{Text: "to", IsWordLike: true},
		{Text: "the", IsWordLike: true},
		{Text: "moon", IsWordLike: true},
	}
	got := tok.Tokenize(segs)
	want := []string{"#btc", "to", "the", "moon"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokenizeTagSkipsNumericHandle(t *testing.T) {
	tok := NewTokenizer(nil)

	// "$100" is an amount, not a cashtag: the tag rule must not fire and
	// the numeric segment must be dropped.
	segs := []segment.Segment{
		punct("$"),
		{Text: "100", IsWordLike: true},
		{Text: "gone", IsWordLike: true},
	}
	got := tok.Tokenize(segs)
	want := []string{"gone"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokenizeHyphenChain(t *testing.T) {
	tok := NewTokenizer(nil)

	segs := []segment.Segment{
		{Text: "state", IsWordLike: true},
		punct("-"),
		{Text: "of", IsWordLike: true},
		punct("-"),
		{Text: "the", IsWordLike: true},
		punct("-"),
		{Text: "art", IsWordLike: true},
	}
	got := tok.Tokenize(segs)
	want := []string{"state-of-the-art"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokenizeDanglingHyphen(t *testing.T) {
	tok := NewTokenizer(nil)

	// A hyphen with nothing word-like after it leaves the word alone.
	segs := []segment.Segment{
		{Text: "sell", IsWordLike: true},
		punct("-"),
		punct("!"),
	}
	got := tok.Tokenize(segs)
	want := []string{"sell"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokenizeSkipsPunctuationAndNumbers(t *testing.T) {
	tok := NewTokenizer(nil)

	segs := []segment.Segment{
		{Text: "price", IsWordLike: true},
		punct(":"),
		{Text: "42000", IsWordLike: true},
		punct("!"),
	}
	got := tok.Tokenize(segs)
	want := []string{"price"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokenizeTermCrossesWordAndPunct(t *testing.T) {
	// Term matching compares raw segment text, so a term ending at the
	// slice boundary must not read past the end.
	tok := NewTokenizer([]string{"buy the dip"})

	got := tok.Tokenize(words("buy", "the"))
	want := []string{"buy", "the"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokenizeEmpty(t *testing.T) {
	tok := NewTokenizer([]string{"stop loss"})
	if got := tok.Tokenize(nil); len(got) != 0 {
		t.Errorf("expected no tokens, got %v", got)
	}
}
