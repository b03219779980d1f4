package report

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"go-veille-stages/internal/classify"
	"go-veille-stages/internal/posting"
)

const (
	// MaxPreview caps the entries shown in the notification; the rest
	// live in the day's JSON file.
	MaxPreview = 15
	// CharLimit is Telegram's hard per-message size.
	CharLimit = 4096
)

// FormatNotification renders the day's message. Postings are expected
// already ranked; only the first MaxPreview appear, with a trailer
// pointing at the archive for the remainder.
func FormatNotification(date string, postings []posting.Posting) string {
	if len(postings) == 0 {
		return fmt.Sprintf("📭 Veille du %s — aucune nouvelle offre pertinente.", date)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🎯 Veille du %s — %d nouvelle(s) offre(s)\n", date, len(postings))

	for i, p := range postings {
		if i == MaxPreview {
			break
		}
		marker := "📄"
		if classify.IsPriority(p) {
			marker = "🔥"
		}
		fmt.Fprintf(&b, "%02d. %s %s — %s", i+1, marker, strings.TrimSpace(p.Title), strings.TrimSpace(p.Organization))
		if lieu := strings.TrimSpace(p.Location); lieu != "" && !strings.EqualFold(lieu, posting.LocationFallback) {
			fmt.Fprintf(&b, " (%s)", lieu)
		}
		fmt.Fprintf(&b, "\n%s\n", strings.TrimSpace(p.Link))
	}

	if len(postings) > MaxPreview {
		fmt.Fprintf(&b, "… et %d autres. Fichier JSON du jour dans les artefacts.\n", len(postings)-MaxPreview)
	}
	return b.String()
}

// Chunk splits text into pieces of at most limit characters, cutting
// only at line boundaries and keeping the terminators, so that the
// concatenation of all parts reproduces text exactly. A single line
// longer than limit becomes its own oversized part.
func Chunk(text string, limit int) []string {
	var parts []string
	var buf strings.Builder
	size := 0

	for _, line := range strings.SplitAfter(text, "\n") {
		if line == "" {
			continue
		}
		n := utf8.RuneCountInString(line)
		if size+n > limit && buf.Len() > 0 {
			parts = append(parts, buf.String())
			buf.Reset()
			size = 0
		}
		buf.WriteString(line)
		size += n
	}
	if buf.Len() > 0 {
		parts = append(parts, buf.String())
	}
	return parts
}
