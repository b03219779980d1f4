package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-veille-stages/internal/posting"
)

func TestEvaluateBranches(t *testing.T) {
	tests := []struct {
		name   string
		p      posting.Posting
		accept bool
	}{
		{
			name: "subject alone is not enough",
			p: posting.Posting{
				Title:        "Stagiaire gestion",
				Description:  "mission administrative classique",
				Organization: "Cabinet Dupont",
			},
			accept: false,
		},
		{
			name: "subject plus geography",
			p: posting.Posting{
				Title:       "Stage diplomatie",
				Description: "suivi des dossiers à Bruxelles",
			},
			accept: true,
		},
		{
			name: "geography may come from the location field",
			p: posting.Posting{
				Title:       "Stagiaire analyste",
				Description: "travail de terrain",
				Location:    "Iran",
			},
			accept: true,
		},
		{
			name: "subject plus duration",
			p: posting.Posting{
				Title:       "Stagiaire recherche",
				Description: "contrat de 6 mois",
			},
			accept: true,
		},
		{
			name: "subject plus institutional token",
			p: posting.Posting{
				Title:       "Stagiaire analyste",
				Description: "programme mené avec nato",
			},
			accept: true,
		},
		{
			name: "subject plus trusted source name",
			p: posting.Posting{
				Title:        "Stagiaire gestion",
				Description:  "mission administrative classique",
				Organization: "OSCE Jobs",
			},
			accept: true,
		},
		{
			name: "no subject term at all",
			p: posting.Posting{
				Title:       "Offre de pâtisserie",
				Description: "fabrication artisanale",
			},
			accept: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Evaluate(tt.p)
			assert.Equal(t, tt.accept, v.Accepted)
		})
	}
}

func TestEvaluateReportsCriteria(t *testing.T) {
	v := Evaluate(posting.Posting{
		Title:       "Stage diplomatie",
		Description: "contrat de 6 mois à Bruxelles",
	})
	assert.True(t, v.Accepted)
	assert.True(t, v.Subject)
	assert.True(t, v.Geo)
	assert.True(t, v.Duration)
}

func TestEvaluateStopsAtSubject(t *testing.T) {
	v := Evaluate(posting.Posting{Title: "Offre de pâtisserie", Location: "Bruxelles"})
	assert.False(t, v.Accepted)
	assert.False(t, v.Subject)
	// later tiers are not evaluated once the subject gate fails
	assert.False(t, v.Geo)
}

func TestIsPriority(t *testing.T) {
	assert.True(t, IsPriority(posting.Posting{Title: "Stage ambassade de France"}))
	assert.True(t, IsPriority(posting.Posting{Title: "Analyst", Description: "Middle East desk"}))
	assert.False(t, IsPriority(posting.Posting{Title: "Stage communication", Description: "rédaction web"}))

	// location never counts towards priority
	assert.False(t, IsPriority(posting.Posting{Title: "Stage documentation", Location: "Iran"}))
}
