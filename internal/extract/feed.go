package extract

import (
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"

	"go-veille-stages/internal/posting"
	"go-veille-stages/internal/source"
)

// FeedOrganization labels feed-derived postings. Feeds do not carry a
// usable organisation field, so the archive keeps this fixed label.
const FeedOrganization = "RSS"

// Feed extracts postings from RSS and Atom documents.
type Feed struct{}

func (Feed) Extract(src source.Source, body []byte) (Result, error) {
	feed, err := gofeed.NewParser().ParseString(string(body))
	if err != nil {
		return Result{}, fmt.Errorf("parse feed %s: %w", src.URL, err)
	}

	var res Result
	for _, item := range feed.Items {
		if item == nil {
			res.Skipped++
			continue
		}

		// The link is the dedup identity; an item without one is useless.
		link := strings.TrimSpace(item.Link)
		if link == "" {
			res.Skipped++
			continue
		}

		desc := item.Description
		if desc == "" {
			desc = item.Content
		}
		date := item.Published
		if date == "" {
			date = item.Updated
		}

		res.Postings = append(res.Postings, posting.Posting{
			PublishedAt:  date,
			Organization: FeedOrganization,
			Title:        posting.CollapseSpace(item.Title),
			Location:     "",
			Link:         link,
			Description:  posting.Truncate(posting.StripMarkup(desc), posting.DescriptionLimit),
		})
	}
	return res, nil
}
