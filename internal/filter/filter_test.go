// SPDX-License-Identifier: Apache-2.0

package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluator_Evaluate(t *testing.T) {
	ev := DefaultEvaluator()

	tests := []struct {
		name          string
		line          string
		wantKeep      bool
		wantMalformed bool
	}{
		{
			name:     "literal-encoded field with both sets",
			line:     `{"matched_keywords": "['pkk','islam']"}`,
			wantKeep: true,
		},
		{
			name:     "literal-encoded field with one set",
			line:     `{"matched_keywords": "['pkk']"}`,
			wantKeep: false,
		},
		{
			name:     "array-encoded field with both sets",
			line:     `{"matched_keywords": ["Kürt,", "İslam."], "tweet_text": ""}`,
			wantKeep: true,
		},
		{
			name:     "array-encoded field, ascii literals",
			line:     `{"matched_keywords": ["kobani,", "ateist."]}`,
			wantKeep: true,
		},
		{
			name:     "free-text fallback",
			line:     `{"id": 7, "tweet_text": "rojava ve ümmet üzerine bir tartışma"}`,
			wantKeep: true,
		},
		{
			name:     "no keyword evidence anywhere",
			line:     `{"id": 8, "tweet_text": "günaydın"}`,
			wantKeep: false,
		},
		{
			name:          "broken json",
			line:          `{"matched_keywords":`,
			wantMalformed: true,
		},
		{
			name:          "non-object json",
			line:          `[1, 2, 3]`,
			wantMalformed: true,
		},
		{
			name:          "bare null line",
			line:          `null`,
			wantMalformed: true,
		},
		{
			name:          "bare scalar line",
			line:          `123`,
			wantMalformed: true,
		},
		{
			name:          "bare bool line",
			line:          `true`,
			wantMalformed: true,
		},
		{
			name:          "empty line",
			line:          ``,
			wantMalformed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ev.Evaluate([]byte(tt.line))
			assert.Equal(t, tt.wantMalformed, d.Malformed)
			assert.Equal(t, tt.wantKeep, d.Keep)
		})
	}
}
