package core

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// DefaultPrivacyPatterns keep obvious secrets out of the share target.
var DefaultPrivacyPatterns = []string{"password=", "token=", "apikey=", "secret=", "authorization: bearer"}

// PrivacyFilter rejects clips that look like they carry credentials. Patterns
// are case-insensitive substrings, or regular expressions when built with
// useRegex.
type PrivacyFilter struct {
	matchers []func(string) bool
}

func NewPrivacyFilter(patterns []string, useRegex bool) (*PrivacyFilter, error) {
	pf := &PrivacyFilter{}
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !useRegex {
			needle := strings.ToLower(p)
			pf.matchers = append(pf.matchers, func(s string) bool {
				return strings.Contains(strings.ToLower(s), needle)
			})
			continue
		}
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, errors.Wrapf(err, "compile privacy pattern %q", p)
		}
		pf.matchers = append(pf.matchers, re.MatchString)
	}
	return pf, nil
}

// Blocks reports whether content matches any pattern. A nil filter blocks
// nothing.
func (pf *PrivacyFilter) Blocks(content string) bool {
	if pf == nil {
		return false
	}
	for _, m := range pf.matchers {
		if m(content) {
			return true
		}
	}
	return false
}
