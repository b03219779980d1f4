// Package dedup separates genuinely new postings from everything the
// watch has already notified, keyed purely by link.
package dedup

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"go-veille-stages/internal/posting"
)

// ComputeNew returns the postings whose links are neither duplicated
// earlier in candidates nor present in seen. First occurrence wins and
// input order is preserved. Neither input is mutated.
func ComputeNew(candidates []posting.Posting, seen mapset.Set[string]) []posting.Posting {
	inBatch := mapset.NewThreadUnsafeSet[string]()
	var fresh []posting.Posting
	for _, p := range candidates {
		key := strings.TrimSpace(p.Link)
		if key == "" || inBatch.Contains(key) {
			continue
		}
		inBatch.Add(key)
		if seen.Contains(key) {
			continue
		}
		fresh = append(fresh, p)
	}
	return fresh
}

// Links returns the trimmed link of every posting, in order. Used to
// fold a notified batch back into the seen set.
func Links(postings []posting.Posting) []string {
	out := make([]string, 0, len(postings))
	for _, p := range postings {
		out = append(out, strings.TrimSpace(p.Link))
	}
	return out
}
