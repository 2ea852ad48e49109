// Package skills computes the overlap between a posting's required skills
// and a candidate's declared skills. It is pure and safe for unlimited
// concurrent use.
package skills

import (
	"math"
	"strings"
)

type Match struct {
	Matched      []string `json:"matched"`
	Missing      []string `json:"missing"`
	MatchPercent int      `json:"match_percent"`
}

// Normalize splits a comma-separated skill list into lower-cased tokens,
// trimming whitespace and dropping empty entries.
func Normalize(list string) []string {
	parts := strings.Split(list, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.ToLower(strings.TrimSpace(p))
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// Compute compares two comma-separated skill lists. Matching is exact string
// equality on normalized tokens; the required list's original order is
// preserved in the output. An empty required set scores zero.
func Compute(required, candidate string) Match {
	req := Normalize(required)
	have := make(map[string]bool, len(req))
	for _, t := range Normalize(candidate) {
		have[t] = true
	}

	m := Match{Matched: []string{}, Missing: []string{}}
	for _, t := range req {
		if have[t] {
			m.Matched = append(m.Matched, t)
		} else {
			m.Missing = append(m.Missing, t)
		}
	}
	if len(req) > 0 {
		m.MatchPercent = int(math.Round(float64(len(m.Matched)) / float64(len(req)) * 100))
	}
	return m
}
