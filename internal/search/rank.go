// Package search ranks snippets against a free text query.
package search

import (
	"sort"
	"strings"

	"github.com/atomicstack/chopsticks/internal/snippet"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

const (
	// matchWeight is awarded for every token found in a field. It exceeds
	// the largest total bonus, so a snippet matching more (token, field)
	// pairs always outranks one matching fewer.
	matchWeight = 1 << 10
	// substringBonus rewards a token found contiguously in a field.
	substringBonus = 8
	// wordStartBonus rewards a contiguous match that begins a word.
	wordStartBonus = 4
	// maxBonus caps the summed bonuses of one snippet below matchWeight.
	maxBonus = matchWeight - 1
)

// Tokens splits a query into its whitespace separated terms.
func Tokens(query string) []string {
	return strings.Fields(query)
}

// fieldMatch reports whether token fuzzy-matches field and the quality bonus
// of that match. The bonus depends on how the token matched, never on how
// long the field is.
func fieldMatch(token, field string) (bool, int64) {
	if token == "" || field == "" {
		return false, 0
	}
	if !fuzzy.MatchNormalizedFold(token, field) {
		return false, 0
	}
	lowerField := strings.ToLower(field)
	lowerToken := strings.ToLower(token)
	at := strings.Index(lowerField, lowerToken)
	if at < 0 {
		return true, 0
	}
	bonus := int64(substringBonus)
	if at == 0 || isSeparator(lowerField[at-1]) {
		bonus += wordStartBonus
	}
	return true, bonus
}

func isSeparator(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '-', '_', '/', '.', '=', ':', ',', ';', '|', '"', '\'':
		return true
	}
	return false
}

// FieldScore scores a single token against a single field. Unmatched tokens
// score 0; a match scores matchWeight plus its quality bonus.
func FieldScore(token, field string) int64 {
	ok, bonus := fieldMatch(token, field)
	if !ok {
		return 0
	}
	return matchWeight + bonus
}

// Score sums the matches of every query token against both the command and
// the description. Bonuses are capped so that the number of matched
// (token, field) pairs decides the order and bonuses only break ties.
func Score(query string, s snippet.Snippet) int64 {
	var matched, bonus int64
	for _, token := range Tokens(query) {
		for _, field := range []string{s.Cmd, s.Description} {
			if ok, b := fieldMatch(token, field); ok {
				matched++
				bonus += b
			}
		}
	}
	if bonus > maxBonus {
		bonus = maxBonus
	}
	return matched*matchWeight + bonus
}

// Rank writes each snippet's score into Priority and sorts the slice in place
// by descending score. Ties keep their previous relative order, so an empty
// query leaves the order untouched.
func Rank(query string, snippets []snippet.Snippet) {
	for i := range snippets {
		snippets[i].Priority = Score(query, snippets[i])
	}
	sort.SliceStable(snippets, func(i, j int) bool {
		return snippets[i].Priority > snippets[j].Priority
	})
}
