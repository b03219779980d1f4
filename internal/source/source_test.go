package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	full := Selectors{
		Container:   ".row",
		Title:       ".title",
		Link:        "a",
		Location:    ".loc",
		Description: ".desc",
		Date:        ".date",
	}

	tests := []struct {
		name    string
		src     Source
		wantErr string
	}{
		{
			name: "valid feed",
			src:  Source{Name: "Feed", Kind: KindFeed, URL: "https://example.org/rss"},
		},
		{
			name: "valid markup",
			src:  Source{Name: "Page", Kind: KindMarkup, URL: "https://example.org/jobs", Selectors: full},
		},
		{
			name:    "missing url",
			src:     Source{Name: "Feed", Kind: KindFeed},
			wantErr: "url",
		},
		{
			name:    "markup without name",
			src:     Source{Kind: KindMarkup, URL: "https://example.org/jobs", Selectors: full},
			wantErr: "name",
		},
		{
			name: "markup missing selector",
			src: Source{Name: "Page", Kind: KindMarkup, URL: "https://example.org/jobs", Selectors: Selectors{
				Container: ".row", Title: ".title", Link: "a", Location: ".loc", Description: ".desc",
			}},
			wantErr: "selector",
		},
		{
			name:    "negative cap",
			src:     Source{Name: "Page", Kind: KindMarkup, URL: "https://example.org/jobs", Selectors: full, MaxItems: -1},
			wantErr: "max items",
		},
		{
			name:    "unknown kind",
			src:     Source{Name: "Page", Kind: Kind("soap"), URL: "https://example.org/jobs"},
			wantErr: "kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.src.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestCap(t *testing.T) {
	assert.Equal(t, DefaultMaxItems, Source{}.Cap())
	assert.Equal(t, 15, Source{MaxItems: 15}.Cap())
}

func TestRegistryEntriesValidate(t *testing.T) {
	for _, src := range Registry() {
		t.Run(src.Name, func(t *testing.T) {
			assert.NoError(t, src.Validate())
		})
	}
}

func TestRegistryShape(t *testing.T) {
	var feeds, pages int
	for _, src := range Registry() {
		switch src.Kind {
		case KindFeed:
			feeds++
		case KindMarkup:
			pages++
		}
	}
	assert.Equal(t, 6, feeds)
	assert.Equal(t, 26, pages)
}

func TestRegistryReturnsCopy(t *testing.T) {
	a := Registry()
	a[0].Name = "mutated"
	b := Registry()
	assert.NotEqual(t, "mutated", b[0].Name)
}
