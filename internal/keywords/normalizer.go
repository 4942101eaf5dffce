// SPDX-License-Identifier: Apache-2.0

package keywords

// Normalizer converts the raw matched_keywords value of a record into a
// canonical token list by trying its registered decoders in order.
//
// The upstream producer serialized this field as a real JSON array in some
// dumps, as the string form of a list literal in others, and as free text in
// the rest. Normalize absorbs all of them and never fails: a value no decoder
// can make sense of yields an empty list.
type Normalizer struct {
	decoders []FieldDecoder
}

// NewNormalizer creates a Normalizer with the provided decoders. Order
// matters: the first decoder that accepts the value and decodes it without
// error wins, later decoders act as fallbacks.
func NewNormalizer(decoders ...FieldDecoder) *Normalizer {
	return &Normalizer{decoders: decoders}
}

// Normalize returns the cleaned token list for a raw field value.
// A nil value, an unrecognised type, or an empty field all yield nil.
func (n *Normalizer) Normalize(raw any) []string {
	if raw == nil {
		return nil
	}
	for _, d := range n.decoders {
		if !d.CanDecode(raw) {
			continue
		}
		tokens, err := d.Decode(raw)
		if err != nil {
			continue
		}
		return tokens
	}
	return nil
}

// DecoderNames returns the names of all registered decoders in priority order.
func (n *Normalizer) DecoderNames() []string {
	names := make([]string, len(n.decoders))
	for i, d := range n.decoders {
		names[i] = d.Name()
	}
	return names
}
