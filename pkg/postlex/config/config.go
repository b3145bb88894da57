// Package config loads the engine configuration and constructs the
// analysis components from it. Configuration is read once at startup and
// treated as immutable for the process lifetime.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/coinsight/postlex/pkg/postlex/internalerr"
)

// DefaultHanziPercentage is used when the config omits hanzi_percentage.
const DefaultHanziPercentage = 0.3

// Config is the YAML configuration surface.
type Config struct {
	// Replacements are literal substring rewrites applied after
	// lowercasing, e.g. "b t c" -> "btc".
	Replacements map[string]string `yaml:"replacements"`
	// Aliases map variant spellings to canonical tokens. Applied both in
	// the normalizer (word-bounded) and at canonicalization.
	Aliases map[string]string `yaml:"aliases"`
	// Terms are multi-word vocabulary phrases recognized as single tokens.
	Terms []string `yaml:"terms"`
	// HanziPercentage is the ideograph-density threshold for classifying
	// a post as Chinese.
	HanziPercentage float64 `yaml:"hanzi_percentage"`
	// ExcludeHanzi drops every ideograph-bearing token in the filter.
	ExcludeHanzi bool `yaml:"exclude_hanzi"`
	// ExcludeKana drops every kana-bearing token in the filter.
	ExcludeKana bool `yaml:"exclude_kana"`
	// FiatSigns lists currency sign characters stripped before numeric
	// detection, e.g. "$€£¥₩₿".
	FiatSigns string `yaml:"fiat_signs"`
	// IgnoreFile is a newline-delimited base ignore-word list.
	IgnoreFile string `yaml:"ignore_file"`
	// SymbolsFile is a JSON array of {symbol, name} pairs maintained by
	// the out-of-band symbol fetcher.
	SymbolsFile string `yaml:"symbols_file"`
}

// LoadConfig reads and validates the YAML file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", internalerr.ErrInvalidConfig, path, err)
	}
	if cfg.HanziPercentage == 0 {
		cfg.HanziPercentage = DefaultHanziPercentage
	}
	if cfg.HanziPercentage < 0 || cfg.HanziPercentage >= 1 {
		return nil, fmt.Errorf("%w: hanzi_percentage %v outside (0, 1)", internalerr.ErrInvalidConfig, cfg.HanziPercentage)
	}
	return &cfg, nil
}
