// SPDX-License-Identifier: Apache-2.0

package decoders

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/mbkizil/cssm501/internal/keywords"
)

var errNotAListLiteral = errors.New("value is not a usable list literal")

// LiteralDecoder handles string fields that carry a serialized list literal,
// e.g. "['Kürt,', 'PKK,']". YAML flow sequences accept both the single-quoted
// repr form and plain JSON arrays, which covers every literal shape seen in
// the corpus dumps. A literal that decodes to a bare scalar is treated as
// whitespace-delimited text; a string that is no literal at all is left for
// the whitespace fallback.
type LiteralDecoder struct{}

// NewLiteralDecoder creates a new LiteralDecoder.
func NewLiteralDecoder() *LiteralDecoder {
	return &LiteralDecoder{}
}

func (d *LiteralDecoder) Name() string {
	return "literal"
}

func (d *LiteralDecoder) CanDecode(raw any) bool {
	_, ok := raw.(string)
	return ok
}

func (d *LiteralDecoder) Decode(raw any) ([]string, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, errNotAListLiteral
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var value any
	if err := yaml.Unmarshal([]byte(s), &value); err != nil {
		return nil, fmt.Errorf("decode list literal: %w", err)
	}

	switch v := value.(type) {
	case []any:
		tokens := make([]string, 0, len(v))
		for _, el := range v {
			switch el := el.(type) {
			case string:
				tokens = append(tokens, el)
			case nil, map[string]any, []any:
				// nothing token-like in a nested structure
			default:
				tokens = append(tokens, fmt.Sprint(el))
			}
		}
		return keywords.CleanTokens(tokens), nil
	case string:
		return keywords.CleanTokens(strings.Fields(v)), nil
	case nil, map[string]any:
		// "null" or a mapping: hand the original string to the fallback
		return nil, errNotAListLiteral
	default:
		// a bare scalar such as a number: split its printed form
		return keywords.CleanTokens(strings.Fields(fmt.Sprint(v))), nil
	}
}
