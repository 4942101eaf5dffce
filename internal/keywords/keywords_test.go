// SPDX-License-Identifier: Apache-2.0

package keywords_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mbkizil/cssm501/internal/keywords"
	"github.com/mbkizil/cssm501/internal/keywords/decoders"
)

func defaultNormalizer() *keywords.Normalizer {
	return keywords.NewNormalizer(
		decoders.NewSequenceDecoder(),
		decoders.NewLiteralDecoder(),
		decoders.NewWhitespaceDecoder(),
	)
}

// ---------------------------------------------------------------------------
// Token cleaning
// ---------------------------------------------------------------------------

func TestCleanTokens(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "strips trailing punctuation",
			in:   []string{"Kürt,", "PKK."},
			want: []string{"Kürt", "PKK"},
		},
		{
			name: "strips surrounding whitespace and brackets",
			in:   []string{"  [pkk]  ", "'islam'"},
			want: []string{"pkk", "islam"},
		},
		{
			name: "drops tokens that clean to nothing",
			in:   []string{"...", "pkk", "  ", ""},
			want: []string{"pkk"},
		},
		{
			name: "clean input is a no-op",
			in:   []string{"Kürt", "PKK"},
			want: []string{"Kürt", "PKK"},
		},
		{
			name: "inner punctuation survives",
			in:   []string{"kur'an,"},
			want: []string{"kur'an"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keywords.CleanTokens(tt.in))
		})
	}
}

// ---------------------------------------------------------------------------
// Normalizer
// ---------------------------------------------------------------------------

func TestNormalizer_Normalize(t *testing.T) {
	n := defaultNormalizer()

	tests := []struct {
		name string
		raw  any
		want []string
	}{
		{
			name: "nil field yields nothing",
			raw:  nil,
			want: nil,
		},
		{
			name: "genuine list is cleaned in order",
			raw:  []any{"Kürt,", "PKK."},
			want: []string{"Kürt", "PKK"},
		},
		{
			name: "list with non-string elements keeps the strings",
			raw:  []any{"pkk", float64(42), "islam"},
			want: []string{"pkk", "islam"},
		},
		{
			name: "single-quoted list literal",
			raw:  "['Kürt,', 'PKK,']",
			want: []string{"Kürt", "PKK"},
		},
		{
			name: "json array literal",
			raw:  `["pkk", "islam"]`,
			want: []string{"pkk", "islam"},
		},
		{
			name: "free text falls back to whitespace splitting",
			raw:  "Kürt PKK,",
			want: []string{"Kürt", "PKK"},
		},
		{
			name: "malformed literal falls back to whitespace splitting",
			raw:  "['Kürt, 'PKK",
			want: []string{"Kürt", "PKK"},
		},
		{
			name: "quoted scalar literal splits its value",
			raw:  `"Kürt,"`,
			want: []string{"Kürt"},
		},
		{
			name: "empty string yields nothing",
			raw:  "   ",
			want: nil,
		},
		{
			name: "number field yields nothing",
			raw:  float64(3),
			want: nil,
		},
		{
			name: "object field yields nothing",
			raw:  map[string]any{"a": "b"},
			want: nil,
		},
		{
			name: "already-normalized list is unchanged",
			raw:  []string{"kürt", "pkk"},
			want: []string{"kürt", "pkk"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.Normalize(tt.raw)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizer_DecoderNames(t *testing.T) {
	n := defaultNormalizer()
	assert.Equal(t, []string{"sequence", "literal", "whitespace"}, n.DecoderNames())
}

// ---------------------------------------------------------------------------
// Decoders
// ---------------------------------------------------------------------------

func TestSequenceDecoder_CanDecode(t *testing.T) {
	d := decoders.NewSequenceDecoder()
	assert.True(t, d.CanDecode([]any{"a"}))
	assert.True(t, d.CanDecode([]string{"a"}))
	assert.False(t, d.CanDecode("['a']"))
	assert.False(t, d.CanDecode(nil))
}

func TestLiteralDecoder_FallsThroughOnMalformedLiteral(t *testing.T) {
	d := decoders.NewLiteralDecoder()
	assert.True(t, d.CanDecode("anything"))
	_, err := d.Decode("['unclosed")
	assert.Error(t, err)
}

func TestWhitespaceDecoder_NeverFails(t *testing.T) {
	d := decoders.NewWhitespaceDecoder()
	got, err := d.Decode("['unclosed pkk,")
	assert.NoError(t, err)
	assert.Equal(t, []string{"unclosed", "pkk"}, got)
}
