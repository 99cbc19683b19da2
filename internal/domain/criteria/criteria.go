// Package criteria decides whether a text satisfies a qualitative award
// criterion using partial keyword overlap. This is a deliberately lenient
// heuristic, not semantic matching.
package criteria

import "strings"

// minTokenLen is the shortest criterion token that counts as evidence;
// shorter tokens (articles, "of", "to") are discarded.
const minTokenLen = 3

// Tokens splits a criterion into its distinguishing lower-case words,
// dropping tokens shorter than three characters.
func Tokens(criterion string) []string {
	var out []string
	for _, tok := range strings.Fields(strings.ToLower(criterion)) {
		if len(tok) >= minTokenLen {
			out = append(out, tok)
		}
	}
	return out
}

// Satisfied reports whether text contains at least half of the criterion's
// tokens, rounding the requirement up (3 tokens need 2 matches). A token
// matches as a literal substring, or with non-alphanumeric characters
// stripped. Empty text satisfies nothing; a criterion with no usable tokens
// is trivially satisfied.
func Satisfied(text, criterion string) bool {
	tokens := Tokens(criterion)
	if len(tokens) == 0 {
		return true
	}
	if text == "" {
		return false
	}

	matched := 0
	for _, tok := range tokens {
		if strings.Contains(text, tok) {
			matched++
			continue
		}
		if stripped := strings.Map(dropNonAlnum, tok); stripped != "" && strings.Contains(text, stripped) {
			matched++
		}
	}

	// ceil(len/2) without floats
	need := (len(tokens) + 1) / 2
	return matched >= need
}

func dropNonAlnum(r rune) rune {
	if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
		return r
	}
	return -1
}
