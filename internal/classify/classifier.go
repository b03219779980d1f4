// Package classify decides which postings are worth notifying.
package classify

import (
	"strings"

	"go-veille-stages/internal/posting"
)

// Verdict records the outcome of evaluating one posting, with the
// individual criteria broken out so runs can log why something passed.
type Verdict struct {
	Accepted  bool
	Subject   bool
	Geo       bool
	Duration  bool
	OrgSignal bool
}

// Evaluate applies the three-tier relevance policy: a posting must hit
// at least one subject term, then passes on geography or duration, or
// failing those, on an institutional signal (org token in the text, or
// the source name starting with a trusted prefix).
func Evaluate(p posting.Posting) Verdict {
	text := strings.ToLower(p.Title + " " + p.Description + " " + p.Location)

	v := Verdict{Subject: containsAny(text, subjectTerms)}
	if !v.Subject {
		return v
	}

	v.Geo = containsAny(text, geoTerms)
	v.Duration = containsAny(text, durationTerms)
	v.OrgSignal = containsAny(text, orgSignalTokens) || trustedName(p.Organization)
	v.Accepted = v.Geo || v.Duration || v.OrgSignal
	return v
}

// IsPriority reports whether the posting deserves the 🔥 marker and a
// front-of-list slot. Deliberately narrower than Evaluate: only title
// and description count, never location.
func IsPriority(p posting.Posting) bool {
	return containsAny(strings.ToLower(p.Title+" "+p.Description), priorityTerms)
}

func containsAny(text string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}

func trustedName(org string) bool {
	name := strings.ToLower(org)
	for _, prefix := range orgNamePrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
