// Package report orders the day's postings and renders the two run
// artifacts: the Telegram notification text and the dated JSON archive.
package report

import (
	"sort"

	"go-veille-stages/internal/classify"
	"go-veille-stages/internal/posting"
)

// Rank returns the postings sorted for display: priority ones first,
// ties broken by organisation then title. The sort is stable, so equal
// keys keep their extraction order. The input is not mutated.
func Rank(postings []posting.Posting) []posting.Posting {
	type entry struct {
		p        posting.Posting
		priority bool
	}
	entries := make([]entry, len(postings))
	for i, p := range postings {
		entries[i] = entry{p: p, priority: classify.IsPriority(p)}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.priority != b.priority {
			return a.priority
		}
		if a.p.Organization != b.p.Organization {
			return a.p.Organization < b.p.Organization
		}
		return a.p.Title < b.p.Title
	})

	out := make([]posting.Posting, len(entries))
	for i, e := range entries {
		out[i] = e.p
	}
	return out
}
