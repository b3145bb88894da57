package config

import (
	"fmt"

	"github.com/coinsight/postlex/pkg/postlex/alias"
	"github.com/coinsight/postlex/pkg/postlex/filter"
	"github.com/coinsight/postlex/pkg/postlex/ignore"
	"github.com/coinsight/postlex/pkg/postlex/normalize"
	"github.com/coinsight/postlex/pkg/postlex/symbols"
	"github.com/coinsight/postlex/pkg/postlex/tokenize"
)

// Loader loads the configuration file and constructs components
type Loader struct {
	ConfigPath string
}

// Components holds every constructed analysis component. All fields are
// immutable after Load returns.
type Components struct {
	Normalizer      *normalize.Normalizer
	Tokenizer       *tokenize.Tokenizer
	Aliases         *alias.Table
	Filter          *filter.Filter
	HanziPercentage float64
}

// Load reads the configuration and builds all components. Any failure is
// returned to the caller; the engine must not start on partial
// configuration, since every stage assumes fully-built tables.
func (l *Loader) Load() (*Components, error) {
	cfg, err := LoadConfig(l.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	ignored := ignore.Expand(nil)
	if cfg.IgnoreFile != "" {
		ignored, err = ignore.Load(cfg.IgnoreFile)
		if err != nil {
			return nil, fmt.Errorf("load ignore list: %w", err)
		}
	}

	var table *symbols.Table
	if cfg.SymbolsFile != "" {
		table, err = symbols.Load(cfg.SymbolsFile, cfg.FiatSigns)
	} else {
		table, err = symbols.New(nil, cfg.FiatSigns)
	}
	if err != nil {
		return nil, fmt.Errorf("load symbols: %w", err)
	}

	return &Components{
		Normalizer:      normalize.New(cfg.Replacements, cfg.Aliases),
		Tokenizer:       tokenize.NewTokenizer(cfg.Terms),
		Aliases:         alias.New(cfg.Aliases),
		Filter:          filter.New(cfg.ExcludeHanzi, cfg.ExcludeKana, table, ignored),
		HanziPercentage: cfg.HanziPercentage,
	}, nil
}
