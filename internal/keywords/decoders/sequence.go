// SPDX-License-Identifier: Apache-2.0

// Package decoders holds the FieldDecoder implementations for the known
// encodings of the matched_keywords field.
package decoders

import (
	"github.com/mbkizil/cssm501/internal/keywords"
)

// SequenceDecoder handles the well-behaved case: the field already decoded to
// a list. Elements are cleaned in place; non-string elements are dropped.
type SequenceDecoder struct{}

// NewSequenceDecoder creates a new SequenceDecoder.
func NewSequenceDecoder() *SequenceDecoder {
	return &SequenceDecoder{}
}

func (d *SequenceDecoder) Name() string {
	return "sequence"
}

func (d *SequenceDecoder) CanDecode(raw any) bool {
	switch raw.(type) {
	case []any, []string:
		return true
	}
	return false
}

func (d *SequenceDecoder) Decode(raw any) ([]string, error) {
	switch v := raw.(type) {
	case []string:
		return keywords.CleanTokens(v), nil
	case []any:
		tokens := make([]string, 0, len(v))
		for _, el := range v {
			if s, ok := el.(string); ok {
				tokens = append(tokens, s)
			}
		}
		return keywords.CleanTokens(tokens), nil
	}
	return nil, nil
}
