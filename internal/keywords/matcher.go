// SPDX-License-Identifier: Apache-2.0

package keywords

import "strings"

// Set is an immutable, lowercased keyword vocabulary.
type Set struct {
	name    string
	members map[string]struct{}
}

// NewSet builds a Set from its literals. Literals are lowercased once here;
// duplicates collapse naturally.
func NewSet(name string, literals ...string) Set {
	members := make(map[string]struct{}, len(literals))
	for _, l := range literals {
		members[strings.ToLower(l)] = struct{}{}
	}
	return Set{name: name, members: members}
}

// Name returns the label the set was created with.
func (s Set) Name() string { return s.name }

// Len returns the number of distinct literals in the set.
func (s Set) Len() int { return len(s.members) }

// matchesTokens reports whether any literal is an exact member of the token
// index.
func (s Set) matchesTokens(tokens map[string]struct{}) bool {
	for member := range s.members {
		if _, ok := tokens[member]; ok {
			return true
		}
	}
	return false
}

// matchesText reports whether any literal occurs as a substring of the
// already-lowercased text.
func (s Set) matchesText(lower string) bool {
	for member := range s.members {
		if strings.Contains(lower, member) {
			return true
		}
	}
	return false
}

// Matcher decides whether a record touches both vocabularies. The token test
// uses exact membership while the free-text fallback uses substring
// containment; the two deliberately have different false-positive profiles
// and must not be unified.
type Matcher struct {
	first  Set
	second Set
}

// NewMatcher creates a Matcher over the two sets a record must hit.
func NewMatcher(first, second Set) *Matcher {
	return &Matcher{first: first, second: second}
}

// MatchTokens reports whether the token list contains at least one exact
// literal from each set. Tokens are lowercased before the test.
func (m *Matcher) MatchTokens(tokens []string) bool {
	if len(tokens) == 0 {
		return false
	}
	index := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		index[strings.ToLower(t)] = struct{}{}
	}
	return m.first.matchesTokens(index) && m.second.matchesTokens(index)
}

// MatchText reports whether the text contains at least one literal from each
// set as a case-insensitive substring.
func (m *Matcher) MatchText(text string) bool {
	if text == "" {
		return false
	}
	lower := strings.ToLower(text)
	return m.first.matchesText(lower) && m.second.matchesText(lower)
}

// Keep is the per-record decision: the token test first, the free-text
// fallback only when the token test fails.
func (m *Matcher) Keep(tokens []string, text string) bool {
	if m.MatchTokens(tokens) {
		return true
	}
	return m.MatchText(text)
}
