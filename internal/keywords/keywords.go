// SPDX-License-Identifier: Apache-2.0

// Package keywords recovers clean keyword tokens from the inconsistently
// serialized matched_keywords field of a corpus record and decides whether a
// record mentions both of the two topical vocabularies.
package keywords

import "strings"

// asciiPunctuation is the character set trimmed from both ends of a token.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// FieldDecoder turns one raw encoding of the matched_keywords field into a
// token list. Decoders are registered on a Normalizer in priority order; a
// Decode error means the next decoder should try the same value.
type FieldDecoder interface {
	CanDecode(raw any) bool
	Decode(raw any) ([]string, error)
	Name() string
}

// CleanToken trims surrounding whitespace and leading/trailing ASCII
// punctuation. The second return is false when nothing survives cleaning.
func CleanToken(token string) (string, bool) {
	cleaned := strings.Trim(strings.TrimSpace(token), asciiPunctuation)
	return cleaned, cleaned != ""
}

// CleanTokens cleans every token, dropping the ones that come out empty.
// Order of the survivors is preserved. Cleaning an already-clean list is a
// no-op.
func CleanTokens(tokens []string) []string {
	cleaned := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if c, ok := CleanToken(t); ok {
			cleaned = append(cleaned, c)
		}
	}
	return cleaned
}
