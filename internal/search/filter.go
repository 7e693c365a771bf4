// Package search implements the prompt filter engine: a pure match
// function over an in-memory prompt list, a debounce scheduler for live
// typing, and a session state machine tying the two together. Nothing in
// this package talks to the store or to any UI event system.
package search

import (
	"regexp"

	"github.com/promptopia/promptopia-api/internal/apperr"
	"github.com/promptopia/promptopia-api/internal/domain/entity"
)

// Compile builds the case-insensitive matcher for a query. The query is
// treated as a pattern, not a literal; metacharacters keep whatever
// semantics they imply.
func Compile(query string) (*regexp.Regexp, error) {
	re, err := regexp.Compile("(?i)" + query)
	if err != nil {
		return nil, apperr.Validation("invalid search pattern")
	}
	return re, nil
}

// Matches reports whether the pattern hits any of the three searched
// fields: creator username, tag, or prompt body.
func Matches(re *regexp.Regexp, p *entity.Prompt) bool {
	if p == nil {
		return false
	}
	if p.Creator != nil && re.MatchString(p.Creator.Username) {
		return true
	}
	return re.MatchString(p.Tag) || re.MatchString(p.Prompt)
}

// Filter returns the prompts matching query, preserving input order. An
// empty query is the caller's signal to bypass filtering; the input is
// returned unchanged.
func Filter(prompts []*entity.Prompt, query string) ([]*entity.Prompt, error) {
	if query == "" {
		return prompts, nil
	}
	re, err := Compile(query)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Prompt, 0, len(prompts))
	for _, p := range prompts {
		if Matches(re, p) {
			out = append(out, p)
		}
	}
	return out, nil
}
