// Package source holds the descriptors for everything the watch polls.
// Two kinds exist: feed sources (RSS/Atom, one URL) and markup sources
// (an HTML page plus the CSS selectors needed to pull postings out of it).
package source

import "fmt"

type Kind string

const (
	KindFeed   Kind = "feed"
	KindMarkup Kind = "markup"
)

// DefaultMaxItems caps how many container nodes a markup source yields
// when the descriptor doesn't say otherwise.
const DefaultMaxItems = 30

// Selectors are the per-field CSS selectors of a markup source. Each
// resolves independently; a selector that matches nothing falls back to
// a placeholder value instead of failing the item.
type Selectors struct {
	Container   string
	Title       string
	Link        string
	Location    string
	Description string
	Date        string
}

// Source describes one polled origin. Descriptors are defined once in
// the registry and never mutated.
type Source struct {
	Name      string
	Kind      Kind
	URL       string
	Selectors Selectors // markup only
	MaxItems  int       // markup only; 0 means DefaultMaxItems
}

// Cap returns the effective item cap for a markup source.
func (s Source) Cap() int {
	if s.MaxItems > 0 {
		return s.MaxItems
	}
	return DefaultMaxItems
}

// Validate checks that the descriptor is usable. The registry is
// validated once at startup so a bad entry fails fast instead of
// silently yielding nothing.
func (s Source) Validate() error {
	if s.URL == "" {
		return fmt.Errorf("source %q: url is required", s.Name)
	}
	switch s.Kind {
	case KindFeed:
		return nil
	case KindMarkup:
		if s.Name == "" {
			return fmt.Errorf("markup source %s: name is required", s.URL)
		}
		sel := s.Selectors
		missing := ""
		switch {
		case sel.Container == "":
			missing = "container"
		case sel.Title == "":
			missing = "title"
		case sel.Link == "":
			missing = "link"
		case sel.Location == "":
			missing = "location"
		case sel.Description == "":
			missing = "description"
		case sel.Date == "":
			missing = "date"
		}
		if missing != "" {
			return fmt.Errorf("markup source %q: %s selector is required", s.Name, missing)
		}
		if s.MaxItems < 0 {
			return fmt.Errorf("markup source %q: max items must be non-negative", s.Name)
		}
		return nil
	default:
		return fmt.Errorf("source %q: unknown kind %q", s.Name, s.Kind)
	}
}
