package extract

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"go-veille-stages/internal/posting"
	"go-veille-stages/internal/source"
)

// Markup extracts postings from job-board HTML using the source's
// selector set. Every field resolves independently; a missing field
// falls back to its placeholder, never drops the item.
type Markup struct{}

func (Markup) Extract(src source.Source, body []byte) (Result, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("parse page %s: %w", src.Name, err)
	}
	base, err := url.Parse(src.URL)
	if err != nil {
		return Result{}, fmt.Errorf("source url %s: %w", src.URL, err)
	}

	var res Result
	sel := src.Selectors
	doc.Find(sel.Container).EachWithBreak(func(i int, item *goquery.Selection) bool {
		if i >= src.Cap() {
			return false
		}

		field := func(selector string) string {
			text, err := textOf(item, selector)
			if err != nil {
				res.Errs = append(res.Errs, fmt.Errorf("%s item %d: %w", src.Name, i, err))
			}
			return text
		}

		title := field(sel.Title)
		if title == "" {
			title = posting.TitleFallback
		}
		loc := field(sel.Location)
		if loc == "" {
			loc = posting.LocationFallback
		}
		desc := posting.Truncate(field(sel.Description), posting.DescriptionLimit)
		if desc == "" {
			desc = posting.DescriptionFallback
		}

		// Relative hrefs resolve against the page URL; an item without
		// any link points back at the board itself.
		link := src.URL
		if el := item.Find(sel.Link).First(); el.Length() > 0 {
			if href := strings.TrimSpace(el.AttrOr("href", "")); href != "" {
				if ref, err := url.Parse(href); err == nil {
					link = base.ResolveReference(ref).String()
				} else {
					res.Errs = append(res.Errs, fmt.Errorf("%s item %d: href %q: %w", src.Name, i, href, err))
				}
			}
		}

		res.Postings = append(res.Postings, posting.Posting{
			PublishedAt:  field(sel.Date),
			Organization: src.Name,
			Title:        title,
			Location:     loc,
			Link:         link,
			Description:  desc,
		})
		return true
	})
	return res, nil
}

// textOf renders the first selector match as space-joined plain text,
// so "<b>Paris</b><span>France</span>" comes out "Paris France" rather
// than glued together.
func textOf(item *goquery.Selection, selector string) (string, error) {
	el := item.Find(selector).First()
	if el.Length() == 0 {
		return "", nil
	}
	raw, err := goquery.OuterHtml(el)
	if err != nil {
		return "", err
	}
	return posting.CollapseSpace(posting.StripMarkup(raw)), nil
}
