// SPDX-License-Identifier: Apache-2.0

package decoders

import (
	"strings"

	"github.com/mbkizil/cssm501/internal/keywords"
)

// WhitespaceDecoder is the last-resort handler for string fields: split on
// whitespace and clean whatever comes out. It never fails, so it must be
// registered after LiteralDecoder.
type WhitespaceDecoder struct{}

// NewWhitespaceDecoder creates a new WhitespaceDecoder.
func NewWhitespaceDecoder() *WhitespaceDecoder {
	return &WhitespaceDecoder{}
}

func (d *WhitespaceDecoder) Name() string {
	return "whitespace"
}

func (d *WhitespaceDecoder) CanDecode(raw any) bool {
	_, ok := raw.(string)
	return ok
}

func (d *WhitespaceDecoder) Decode(raw any) ([]string, error) {
	s, _ := raw.(string)
	return keywords.CleanTokens(strings.Fields(s)), nil
}
