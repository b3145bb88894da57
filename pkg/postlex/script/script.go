// Package script provides character-class checks shared by the language
// classifier and the filter pipeline.
package script

import "regexp"

var (
	hanRe   = regexp.MustCompile(`\p{Han}`)
	kanaRe  = regexp.MustCompile(`[\x{3000}-\x{303f}\x{3040}-\x{30ff}]`)
	asciiRe = regexp.MustCompile(`^[\x00-\x7f]+$`)
	alphaRe = regexp.MustCompile(`[^a-z]+`)
)

// HasHan reports whether s contains at least one Han ideograph.
func HasHan(s string) bool {
	return hanRe.MatchString(s)
}

// HasKana reports whether s contains a kana or CJK-symbol-range character.
func HasKana(s string) bool {
	return kanaRe.MatchString(s)
}

// AllASCII reports whether every byte of s is in the ASCII range.
// The empty string does not match.
func AllASCII(s string) bool {
	return asciiRe.MatchString(s)
}

// StripNonAlpha removes everything outside [a-z] from s.
func StripNonAlpha(s string) string {
	return alphaRe.ReplaceAllString(s, "")
}
