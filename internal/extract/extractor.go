// Package extract turns fetched documents into normalized postings.
// Two symmetric extractors cover the two source kinds: gofeed for
// RSS/Atom endpoints, goquery for plain job-board pages.
package extract

import (
	"go-veille-stages/internal/posting"
	"go-veille-stages/internal/source"
)

// Result is the outcome of extracting one source. Skipped counts items
// dropped entirely (feed entries without a link); Errs carries per-item
// anomalies that were replaced with placeholders instead of aborting
// the batch.
type Result struct {
	Postings []posting.Posting
	Skipped  int
	Errs     []error
}

// Extractor parses one fetched document. A returned error means the
// whole document was unusable; per-item trouble lands in the Result.
type Extractor interface {
	Extract(src source.Source, body []byte) (Result, error)
}

// ForKind maps a source kind to its extractor.
func ForKind(k source.Kind) Extractor {
	if k == source.KindFeed {
		return Feed{}
	}
	return Markup{}
}
