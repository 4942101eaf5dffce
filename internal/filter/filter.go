// SPDX-License-Identifier: Apache-2.0

// Package filter evaluates corpus records against the dual keyword-set test
// and runs the evaluation over a JSONL stream with a worker pool.
package filter

import (
	"bytes"
	"encoding/json"

	"github.com/mbkizil/cssm501/internal/keywords"
	"github.com/mbkizil/cssm501/internal/keywords/decoders"
)

// record is the minimal view of an input line. Only the two fields the
// decision needs are decoded; the raw line is what gets written on keep, so
// unknown fields pass through untouched.
type record struct {
	MatchedKeywords any    `json:"matched_keywords"`
	TweetText       string `json:"tweet_text"`
}

// Decision is the outcome for one input line.
type Decision struct {
	Keep      bool
	Malformed bool
}

// Evaluator applies the normalizer and matcher to one line at a time. It is
// stateless and safe for concurrent use.
type Evaluator struct {
	normalizer *keywords.Normalizer
	matcher    *keywords.Matcher
}

// NewEvaluator creates an Evaluator from an explicit normalizer and matcher.
func NewEvaluator(n *keywords.Normalizer, m *keywords.Matcher) *Evaluator {
	return &Evaluator{normalizer: n, matcher: m}
}

// DefaultEvaluator wires the default decoder cascade and the compiled-in
// keyword sets. Decoder order matters: the sequence decoder claims genuine
// lists, the literal decoder claims strings it can parse, and the whitespace
// decoder catches everything else string-shaped.
func DefaultEvaluator() *Evaluator {
	return NewEvaluator(
		keywords.NewNormalizer(
			decoders.NewSequenceDecoder(),
			decoders.NewLiteralDecoder(),
			decoders.NewWhitespaceDecoder(),
		),
		keywords.DefaultMatcher(),
	)
}

// Evaluate decides one line. A line that is not a JSON object is reported as
// malformed and never kept; everything else goes through the token test with
// the free-text fallback.
func (e *Evaluator) Evaluate(line []byte) Decision {
	// Unmarshal alone cannot flag every non-object line: decoding a bare
	// "null" into a struct is a no-op success. Objects start with '{'.
	trimmed := bytes.TrimLeft(line, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Decision{Malformed: true}
	}
	var rec record
	if err := json.Unmarshal(trimmed, &rec); err != nil {
		return Decision{Malformed: true}
	}
	tokens := e.normalizer.Normalize(rec.MatchedKeywords)
	return Decision{Keep: e.matcher.Keep(tokens, rec.TweetText)}
}
