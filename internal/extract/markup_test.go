package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-veille-stages/internal/posting"
	"go-veille-stages/internal/source"
)

func markupSource(maxItems int) source.Source {
	return source.Source{
		Name:     "Conseil Test",
		Kind:     source.KindMarkup,
		URL:      "https://example.org/carrieres",
		MaxItems: maxItems,
		Selectors: source.Selectors{
			Container:   ".offre",
			Title:       ".titre",
			Link:        "a",
			Location:    ".lieu",
			Description: ".resume",
			Date:        ".date",
		},
	}
}

const pageFixture = `<html><body>
<div class="offre">
  <span class="date">12 mars 2026</span>
  <h3 class="titre">Stage <em>affaires européennes</em></h3>
  <a href="/offres/42">Voir</a>
  <span class="lieu">Bruxelles</span>
  <p class="resume">Suivi des dossiers du <b>Parlement européen</b>, 6 mois.</p>
</div>
<div class="offre">
  <h3 class="titre">Assistant de recherche</h3>
  <a href="https://autre.example.net/poste/7">Voir</a>
</div>
<div class="offre">
  <p class="resume">Sans titre ni lien.</p>
</div>
</body></html>`

func TestMarkupExtract(t *testing.T) {
	res, err := Markup{}.Extract(markupSource(0), []byte(pageFixture))
	require.NoError(t, err)
	require.Len(t, res.Postings, 3)
	assert.Empty(t, res.Errs)

	full := res.Postings[0]
	assert.Equal(t, "12 mars 2026", full.PublishedAt)
	assert.Equal(t, "Conseil Test", full.Organization)
	assert.Equal(t, "Stage affaires européennes", full.Title)
	assert.Equal(t, "Bruxelles", full.Location)
	assert.Equal(t, "https://example.org/offres/42", full.Link)
	assert.Equal(t, "Suivi des dossiers du Parlement européen , 6 mois.", full.Description)

	// absolute hrefs pass through untouched
	partial := res.Postings[1]
	assert.Equal(t, "https://autre.example.net/poste/7", partial.Link)
	assert.Equal(t, "Assistant de recherche", partial.Title)
	assert.Equal(t, posting.LocationFallback, partial.Location)
	assert.Equal(t, posting.DescriptionFallback, partial.Description)
	assert.Equal(t, "", partial.PublishedAt)

	// nothing matched except the description
	bare := res.Postings[2]
	assert.Equal(t, posting.TitleFallback, bare.Title)
	assert.Equal(t, "https://example.org/carrieres", bare.Link)
	assert.Equal(t, "Sans titre ni lien.", bare.Description)
}

func TestMarkupExtractHonorsCap(t *testing.T) {
	res, err := Markup{}.Extract(markupSource(2), []byte(pageFixture))
	require.NoError(t, err)
	assert.Len(t, res.Postings, 2)
}

func TestMarkupExtractEmptyHrefFallsBackToPage(t *testing.T) {
	body := `<div class="offre"><h3 class="titre">X</h3><a href="  ">vide</a></div>`
	res, err := Markup{}.Extract(markupSource(0), []byte(body))
	require.NoError(t, err)
	require.Len(t, res.Postings, 1)
	assert.Equal(t, "https://example.org/carrieres", res.Postings[0].Link)
}

func TestMarkupExtractNoContainers(t *testing.T) {
	res, err := Markup{}.Extract(markupSource(0), []byte("<html><body><p>rien</p></body></html>"))
	require.NoError(t, err)
	assert.Empty(t, res.Postings)
}
