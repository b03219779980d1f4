package source

// Registry returns the full source table, feeds first. Feed endpoints
// hold up much better in CI runners than markup scraping, so they lead
// the run; the markup entries are best-effort and their selectors may
// silently stop matching when a site redesigns.
func Registry() []Source {
	out := make([]Source, len(registry))
	copy(out, registry)
	return out
}

var registry = []Source{
	// --- feeds ---
	{Name: "Indeed Stages RI", Kind: KindFeed, URL: "https://www.indeed.fr/rss?q=stage+relations+internationales"},
	{Name: "ReliefWeb", Kind: KindFeed, URL: "https://reliefweb.int/feeds/world"},
	{Name: "ONU Carrières RSS", Kind: KindFeed, URL: "https://careers.un.org/feed/RSS.aspx?Lang=FR"},
	{Name: "OSCE Jobs RSS", Kind: KindFeed, URL: "https://jobs.osce.org/feed"},
	{Name: "Euraxess", Kind: KindFeed, URL: "https://euraxess.ec.europa.eu/jobs/feed"},
	{Name: "MEAE Actualités", Kind: KindFeed, URL: "https://www.diplomatie.gouv.fr/fr/actualites/rss/"},

	// --- markup pages ---
	{
		Name: "OSCE Jobs HTML",
		Kind: KindMarkup,
		URL:  "https://jobs.osce.org/",
		Selectors: Selectors{
			Container:   ".views-row, .vacancy, .job-listing",
			Title:       "h3, .title, a",
			Link:        "a",
			Location:    ".location, .field--name-field-location",
			Description: ".summary, .teaser, .field--name-body",
			Date:        ".date, .date-published, time",
		},
	},
	{
		Name: "EUISS Traineeships",
		Kind: KindMarkup,
		URL:  "https://www.iss.europa.eu/about-us/opportunities",
		Selectors: Selectors{
			Container:   ".node--type-opportunity, .view-content .views-row",
			Title:       "h2 a, h3 a, h2, h3",
			Link:        "a",
			Location:    ".field--name-field-location, .meta",
			Description: ".field--name-body, .teaser, p",
			Date:        "time, .date",
		},
	},
	{
		Name: "EU-Japan Centre Internships",
		Kind: KindMarkup,
		URL:  "https://www.eu-japan.eu/internships",
		Selectors: Selectors{
			Container:   ".node, .block, article",
			Title:       "h2 a, h3 a, h2, h3",
			Link:        "a",
			Location:    "em, strong, .location",
			Description: "p",
			Date:        "time, .date",
		},
	},
	{
		Name: "AFD - Agence Française de Développement",
		Kind: KindMarkup,
		URL:  "https://www.afd.fr/fr/carrieres",
		Selectors: Selectors{
			Container:   ".job-offer, .offre-emploi",
			Title:       ".job-title, h3",
			Link:        "a",
			Location:    ".job-location",
			Description: ".job-description",
			Date:        ".date-publication",
		},
	},
	{
		Name: "CFI - Agence française de développement médias",
		Kind: KindMarkup,
		URL:  "https://www.cfi.fr/recrutement",
		Selectors: Selectors{
			Container:   ".job-listing",
			Title:       ".title",
			Link:        "a",
			Location:    ".location",
			Description: ".excerpt",
			Date:        ".date",
		},
	},
	{
		Name: "Expertise France",
		Kind: KindMarkup,
		URL:  "https://www.expertisefrance.fr/recrutement",
		Selectors: Selectors{
			Container:   ".offre, .job-item",
			Title:       ".titre",
			Link:        "a",
			Location:    ".lieu",
			Description: ".description",
			Date:        ".date-publication",
		},
	},
	{
		Name: "France Volontaires",
		Kind: KindMarkup,
		URL:  "https://france-volontaires.org/offres-emploi",
		Selectors: Selectors{
			Container:   ".job-offer",
			Title:       "h3",
			Link:        "a",
			Location:    ".location",
			Description: ".summary",
			Date:        ".date",
		},
	},
	{
		Name: "CIRAD",
		Kind: KindMarkup,
		URL:  "https://www.cirad.fr/nous-rejoindre",
		Selectors: Selectors{
			Container:   ".offre-emploi",
			Title:       ".titre",
			Link:        "a",
			Location:    ".lieu",
			Description: ".resume",
			Date:        ".date",
		},
	},
	{
		Name: "IRD - Institut de Recherche pour le Développement",
		Kind: KindMarkup,
		URL:  "https://www.ird.fr/nous-rejoindre",
		Selectors: Selectors{
			Container:   ".job-listing",
			Title:       ".title",
			Link:        "a",
			Location:    ".location",
			Description: ".description",
			Date:        ".date",
		},
	},
	{
		Name: "Institut français",
		Kind: KindMarkup,
		URL:  "https://www.institutfrancais.com/fr/carrieres",
		Selectors: Selectors{
			Container:   ".job-offer",
			Title:       ".title",
			Link:        "a",
			Location:    ".location",
			Description: ".summary",
			Date:        ".date",
		},
	},
	{
		Name: "AEFE - Agence pour l'enseignement français à l'étranger",
		Kind: KindMarkup,
		URL:  "https://www.aefe.fr/vie-du-reseau/ressources-humaines",
		Selectors: Selectors{
			Container:   ".offre",
			Title:       ".titre",
			Link:        "a",
			Location:    ".lieu",
			Description: ".description",
			Date:        ".date",
		},
	},
	{
		Name: "Campus France",
		Kind: KindMarkup,
		URL:  "https://www.campusfrance.org/fr/recrutement",
		Selectors: Selectors{
			Container:   ".job-listing",
			Title:       ".title",
			Link:        "a",
			Location:    ".location",
			Description: ".excerpt",
			Date:        ".date",
		},
	},
	{
		Name:     "Business France - VIE/VIA",
		Kind:     KindMarkup,
		URL:      "https://mon-vie-via.businessfrance.fr/",
		MaxItems: 15,
		Selectors: Selectors{
			Container:   ".offer-item, .job-item",
			Title:       ".offer-title, h3",
			Link:        "a",
			Location:    ".offer-location",
			Description: ".offer-description",
			Date:        ".date-publication",
		},
	},
	{
		Name:     "Business France - Emplois",
		Kind:     KindMarkup,
		URL:      "https://businessfrance-recrute.talent-soft.com/",
		MaxItems: 15,
		Selectors: Selectors{
			Container:   ".job-listing",
			Title:       ".title",
			Link:        "a",
			Location:    ".location",
			Description: ".summary",
			Date:        ".date",
		},
	},
	{
		Name: "ONU Carrières",
		Kind: KindMarkup,
		URL:  "https://careers.un.org/lbw/home.aspx?lang=FR",
		Selectors: Selectors{
			Container:   ".job-item, .vacancy",
			Title:       ".job-title, h3",
			Link:        "a",
			Location:    ".duty-station, .location",
			Description: ".job-summary, .description",
			Date:        ".posting-date, .date-posted",
		},
	},
	{
		Name: "OSCE Jobs",
		Kind: KindMarkup,
		URL:  "https://jobs.osce.org/",
		Selectors: Selectors{
			Container:   ".vacancy, .job-listing",
			Title:       ".title, h3",
			Link:        "a",
			Location:    ".location",
			Description: ".summary, .description",
			Date:        ".date-published, .date",
		},
	},
	{
		Name: "OTAN Stages",
		Kind: KindMarkup,
		URL:  "https://www.nato.int/cps/fr/natolive/72041.htm",
		Selectors: Selectors{
			Container:   ".internship-listing",
			Title:       ".title",
			Link:        "a",
			Location:    ".location",
			Description: ".description",
			Date:        ".date",
		},
	},
	{
		Name: "Commission européenne - Stages",
		Kind: KindMarkup,
		URL:  "https://ec.europa.eu/stages/home_fr",
		Selectors: Selectors{
			Container:   ".stage-offer",
			Title:       ".title",
			Link:        "a",
			Location:    ".location",
			Description: ".description",
			Date:        ".date",
		},
	},
	{
		Name: "Parlement européen - Stages Schuman",
		Kind: KindMarkup,
		URL:  "https://ep-stages.gestmax.eu/website/homepage",
		Selectors: Selectors{
			Container:   ".stage-listing",
			Title:       ".title",
			Link:        "a",
			Location:    ".location",
			Description: ".summary",
			Date:        ".date",
		},
	},
	{
		Name: "EUISS - Institut d'études de sécurité",
		Kind: KindMarkup,
		URL:  "https://www.iss.europa.eu/about-us/opportunities/euiss-traineeships-2025-2026",
		Selectors: Selectors{
			Container:   ".opportunity",
			Title:       ".title",
			Link:        "a",
			Location:    ".location",
			Description: ".description",
			Date:        ".date",
		},
	},
	{
		Name: "EU-Japan Centre",
		Kind: KindMarkup,
		URL:  "https://www.eu-japan.eu/internships",
		Selectors: Selectors{
			Container:   ".internship-offer",
			Title:       ".title",
			Link:        "a",
			Location:    ".location",
			Description: ".description",
			Date:        ".date",
		},
	},
	{
		Name: "IFRI",
		Kind: KindMarkup,
		URL:  "https://www.ifri.org/fr/recrutement",
		Selectors: Selectors{
			Container:   ".job-offer",
			Title:       ".title",
			Link:        "a",
			Location:    ".location",
			Description: ".summary",
			Date:        ".date",
		},
	},
	{
		Name: "Institut du Monde Arabe",
		Kind: KindMarkup,
		URL:  "https://www.imarabe.org/fr/nous-rejoindre",
		Selectors: Selectors{
			Container:   ".offre",
			Title:       ".titre",
			Link:        "a",
			Location:    ".lieu",
			Description: ".description",
			Date:        ".date",
		},
	},
	{
		Name: "Fondation Alliance Française",
		Kind: KindMarkup,
		URL:  "https://www.fondation-alliancefr.org/?cat=803",
		Selectors: Selectors{
			Container:   ".job-listing",
			Title:       ".title",
			Link:        "a",
			Location:    ".location",
			Description: ".excerpt",
			Date:        ".date",
		},
	},
	{
		Name: "Trésor International",
		Kind: KindMarkup,
		URL:  "https://www.tresor.economie.gouv.fr/tresor-international",
		Selectors: Selectors{
			Container:   ".offre",
			Title:       ".titre",
			Link:        "a",
			Location:    ".lieu",
			Description: ".description",
			Date:        ".date",
		},
	},
	{
		Name: "Sciences Po Carrières",
		Kind: KindMarkup,
		URL:  "https://www.sciencespo.fr/carrieres/fr/stages/",
		Selectors: Selectors{
			Container:   ".stage-offer",
			Title:       ".title",
			Link:        "a",
			Location:    ".location",
			Description: ".description",
			Date:        ".date",
		},
	},
}
