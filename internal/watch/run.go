// Package watch runs one full veille pass: fetch every source, keep
// the relevant postings, drop what was already notified, then archive
// and announce the rest.
package watch

import (
	"context"
	"log"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/sync/errgroup"

	"go-veille-stages/internal/classify"
	"go-veille-stages/internal/dedup"
	"go-veille-stages/internal/extract"
	"go-veille-stages/internal/posting"
	"go-veille-stages/internal/report"
	"go-veille-stages/internal/source"
	"go-veille-stages/internal/telegram"
)

// sourceBudget bounds one source's fetch+extract, retries included.
const sourceBudget = 2 * time.Minute

// Fetcher is what the watch needs from the HTTP layer.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Notifier delivers the rendered summary parts.
type Notifier interface {
	Send(parts []string) error
}

type Config struct {
	Sources     []source.Source
	Fetcher     Fetcher
	Store       dedup.Store
	Notifier    Notifier
	ArchiveDir  string
	MaxParallel int
}

type Watch struct {
	sources     []source.Source
	fetcher     Fetcher
	store       dedup.Store
	notifier    Notifier
	archiveDir  string
	maxParallel int
}

// Summary is what one run produced, for the closing log line and for
// callers that want to assert on outcomes.
type Summary struct {
	Date        string
	Collected   int
	Skipped     int
	Accepted    int
	New         int
	Priority    int
	ArchivePath string
	Parts       int
}

func New(cfg Config) *Watch {
	if cfg.Notifier == nil {
		cfg.Notifier = telegram.Disabled{}
	}
	if cfg.ArchiveDir == "" {
		cfg.ArchiveDir = "."
	}
	if cfg.MaxParallel <= 0 {
		cfg.MaxParallel = 4
	}
	return &Watch{
		sources:     cfg.Sources,
		fetcher:     cfg.Fetcher,
		store:       cfg.Store,
		notifier:    cfg.Notifier,
		archiveDir:  cfg.ArchiveDir,
		maxParallel: cfg.MaxParallel,
	}
}

// Run executes one pass. Individual sources and the notification may
// fail freely; only the archive write and the seen-set save can fail
// the run.
func (w *Watch) Run(ctx context.Context) (Summary, error) {
	sum := Summary{Date: time.Now().Format("2006-01-02")}
	log.Printf("🚀 Starting watch — %s (%d sources)", sum.Date, len(w.sources))

	seen, err := w.store.Load()
	if err != nil {
		log.Printf("⚠️ Could not load seen set, starting fresh: %v", err)
		seen = mapset.NewSet[string]()
	}

	// One result slot per source, assembled in registry order below so
	// first-occurrence dedup stays deterministic however the fetches
	// interleave.
	results := make([]extract.Result, len(w.sources))

	var g errgroup.Group
	g.SetLimit(w.maxParallel)
	for i, src := range w.sources {
		i, src := i, src
		g.Go(func() error {
			results[i] = w.collect(ctx, src)
			return nil
		})
	}
	_ = g.Wait()

	var collected []posting.Posting
	for _, res := range results {
		collected = append(collected, res.Postings...)
		sum.Skipped += res.Skipped
	}
	sum.Collected = len(collected)

	var accepted []posting.Posting
	var byGeo, byDuration, byOrgSignal int
	for _, p := range collected {
		v := classify.Evaluate(p)
		if !v.Accepted {
			continue
		}
		accepted = append(accepted, p)
		if v.Geo {
			byGeo++
		}
		if v.Duration {
			byDuration++
		}
		if v.OrgSignal {
			byOrgSignal++
		}
	}
	sum.Accepted = len(accepted)
	log.Printf("🔍 Relevant: %d/%d (geo %d, duration %d, org signal %d)",
		sum.Accepted, sum.Collected, byGeo, byDuration, byOrgSignal)

	fresh := report.Rank(dedup.ComputeNew(accepted, seen))
	sum.New = len(fresh)
	for _, p := range fresh {
		if classify.IsPriority(p) {
			sum.Priority++
		}
	}

	archivePath, err := report.WriteArchive(w.archiveDir, sum.Date, fresh)
	if err != nil {
		return sum, err
	}
	sum.ArchivePath = archivePath
	log.Printf("💾 Archive written: %s", archivePath)

	seen.Append(dedup.Links(fresh)...)
	if err := w.store.Save(seen); err != nil {
		return sum, err
	}

	parts := report.Chunk(report.FormatNotification(sum.Date, fresh), report.CharLimit)
	sum.Parts = len(parts)
	if err := w.notifier.Send(parts); err != nil {
		// the archive and the seen set are already safe on disk
		log.Printf("❌ Notification failed: %v", err)
	}

	log.Printf("📊 Collected: %d | New: %d | Priority: %d", sum.Collected, sum.New, sum.Priority)
	log.Printf("🏁 Watch finished.")
	return sum, nil
}

func (w *Watch) collect(ctx context.Context, src source.Source) extract.Result {
	cctx, cancel := context.WithTimeout(ctx, sourceBudget)
	defer cancel()

	marker := "🌐"
	if src.Kind == source.KindFeed {
		marker = "🔎"
	}
	log.Printf("%s %s → %s", marker, src.Name, src.URL)

	body, err := w.fetcher.Get(cctx, src.URL)
	if err != nil {
		log.Printf("❌ %s: %v", src.Name, err)
		return extract.Result{}
	}

	res, err := extract.ForKind(src.Kind).Extract(src, body)
	if err != nil {
		log.Printf("❌ %s: %v", src.Name, err)
		return extract.Result{}
	}
	for _, e := range res.Errs {
		log.Printf("⚠️ %s: %v", src.Name, e)
	}
	log.Printf("✅ %s: %d posting(s), %d skipped", src.Name, len(res.Postings), res.Skipped)
	return res
}
