// Package posting defines the normalized record every extractor
// produces, plus the text normalization helpers shared by the pipeline.
package posting

import (
	"strings"

	"golang.org/x/net/html"
)

// Fallback values used when a selector finds nothing. The formatter
// checks LocationFallback to decide whether a location is worth showing.
const (
	TitleFallback       = "Titre non disponible"
	LocationFallback    = "Non précisé"
	DescriptionFallback = "—"
)

// DescriptionLimit is the maximum description length in runes.
const DescriptionLimit = 300

// Posting is one candidate opportunity. JSON tags keep the historical
// French keys of the daily artifact files, which downstream consumers
// rely on.
type Posting struct {
	PublishedAt  string `json:"date"`
	Organization string `json:"organisation"`
	Title        string `json:"titre"`
	Location     string `json:"lieu"`
	Link         string `json:"lien"`
	Description  string `json:"description"`
}

// CollapseSpace folds runs of whitespace (including NBSP) into single
// spaces and trims the ends.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate collapses whitespace and cuts the string to at most limit
// runes, appending an ellipsis when something was dropped.
func Truncate(s string, limit int) string {
	s = CollapseSpace(s)
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

// StripMarkup reduces an HTML fragment to its text content, joining
// text nodes with single spaces so words from adjacent elements don't
// run together. Invalid markup degrades to whatever text the tokenizer
// can recover; it never fails.
func StripMarkup(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	var parts []string
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			if text := z.Token().Data; strings.TrimSpace(text) != "" {
				parts = append(parts, text)
			}
		}
	}
	return strings.Join(parts, " ")
}
