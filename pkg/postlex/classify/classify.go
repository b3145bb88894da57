// Package classify labels a token list Chinese or English by ideograph
// density.
package classify

import (
	"math"

	"github.com/coinsight/postlex/pkg/postlex/script"
)

// IsChinese reports whether the ideograph-bearing token count strictly
// exceeds floor(len(tokens) * threshold). An empty token list is never
// Chinese.
func IsChinese(tokens []string, threshold float64) bool {
	if len(tokens) == 0 {
		return false
	}
	han := 0
	for _, tok := range tokens {
		if script.HasHan(tok) {
			han++
		}
	}
	return han > int(math.Floor(float64(len(tokens))*threshold))
}
