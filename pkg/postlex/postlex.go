// Package postlex analyses social-media posts: it normalizes the raw
// text, segments it, recognizes configured terms and social markup,
// classifies the post Chinese or English, canonicalizes tokens and
// filters out noise, producing a clean term list for frequency counting.
package postlex

import (
	"github.com/coinsight/postlex/pkg/postlex/alias"
	"github.com/coinsight/postlex/pkg/postlex/classify"
	"github.com/coinsight/postlex/pkg/postlex/config"
	"github.com/coinsight/postlex/pkg/postlex/filter"
	"github.com/coinsight/postlex/pkg/postlex/normalize"
	"github.com/coinsight/postlex/pkg/postlex/segment"
	"github.com/coinsight/postlex/pkg/postlex/tokenize"
)

// Engine is the analysis pipeline. All state is read-only after New, so
// an Engine is safe for concurrent Analyse calls.
type Engine struct {
	norm      *normalize.Normalizer
	seg       segment.Segmenter
	tok       *tokenize.Tokenizer
	aliases   *alias.Table
	filter    *filter.Filter
	threshold float64
}

// Options configures an Engine.
type Options struct {
	Normalizer      *normalize.Normalizer
	Segmenter       segment.Segmenter
	Tokenizer       *tokenize.Tokenizer
	Aliases         *alias.Table
	Filter          *filter.Filter
	HanziPercentage float64
}

// New creates an Engine with the given dependencies.
func New(opts Options) *Engine {
	return &Engine{
		norm:      opts.Normalizer,
		seg:       opts.Segmenter,
		tok:       opts.Tokenizer,
		aliases:   opts.Aliases,
		filter:    opts.Filter,
		threshold: opts.HanziPercentage,
	}
}

// FromConfig loads the configuration file at path, builds all components
// and pairs them with the default gse segmenter.
func FromConfig(path string) (*Engine, error) {
	loader := config.Loader{ConfigPath: path}
	comp, err := loader.Load()
	if err != nil {
		return nil, err
	}
	seg, err := segment.NewGseSegmenter()
	if err != nil {
		return nil, err
	}
	return New(Options{
		Normalizer:      comp.Normalizer,
		Segmenter:       seg,
		Tokenizer:       comp.Tokenizer,
		Aliases:         comp.Aliases,
		Filter:          comp.Filter,
		HanziPercentage: comp.HanziPercentage,
	}), nil
}

// AnalyseOptions control a single Analyse call.
type AnalyseOptions struct {
	// NoFilter skips the exclusion pipeline and returns deduplicated
	// tokens straight from canonicalization.
	NoFilter bool
}

// Result is the outcome of analysing one post.
type Result struct {
	IsChinese bool     `json:"is_chinese"`
	Words     []string `json:"words"`
}

// Analyse runs the full pipeline over one raw post. It is a pure
// function of (raw, opts, configuration); degenerate input yields an
// empty word list rather than an error.
func (e *Engine) Analyse(raw string, opts AnalyseOptions) Result {
	text := e.norm.Normalize(raw)
	segs := e.seg.Segment(text)
	tokens := e.tok.Tokenize(segs)
	isChinese := classify.IsChinese(tokens, e.threshold)
	words := e.aliases.Canonicalize(tokens)
	if !opts.NoFilter {
		words = e.filter.Apply(words)
	}
	if words == nil {
		words = []string{}
	}
	return Result{IsChinese: isChinese, Words: words}
}
