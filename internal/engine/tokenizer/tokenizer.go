// Package tokenizer extracts candidate word tokens from transcript text.
//
// This is ingestion-side preparation: bracketed non-speech artifacts are
// removed, text is split on delimiters, and digit-only tokens are dropped.
// Tokens leave this package exactly as they appear in the (NFC-normalized)
// source text — casing and diacritics are untouched.
package tokenizer

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// artifactRe matches non-speech annotations transcribers wrap in brackets,
// e.g. [noise], (laughs), <unk>.
var artifactRe = regexp.MustCompile(`\[[^\]]*\]|\([^)]*\)|<[^>]*>`)

// Words extracts word tokens from one transcript text. Order follows the
// source text and duplicates are preserved; callers that need the unique
// set dedupe downstream.
func Words(text string) []string {
	text = norm.NFC.String(text)
	text = artifactRe.ReplaceAllString(text, " ")

	var words []string
	for _, tok := range strings.FieldsFunc(text, isDelimiter) {
		tok = strings.TrimSpace(tok)
		if tok == "" || isDigitsOnly(tok) {
			continue
		}
		words = append(words, tok)
	}
	return words
}

// isDelimiter reports whether r separates words in transcript text:
// whitespace, Western sentence punctuation, the Devanagari danda, dashes,
// and ellipses.
func isDelimiter(r rune) bool {
	switch r {
	case '.', ',', '?', '!', '।', '॥', '—', '-', '…':
		return true
	}
	return unicode.IsSpace(r)
}

// isDigitsOnly reports whether the token consists entirely of decimal
// digits (any script, so Devanagari numerals are filtered too).
func isDigitsOnly(tok string) bool {
	for _, r := range tok {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
