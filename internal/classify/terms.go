package classify

// Term sets driving the relevance filter. Matching is plain substring
// on lower-cased text, so every entry here must stay lower-case.
// The lists were tuned over months of daily runs; resist pruning the
// oddities (bare "un"/"eu" really do catch UN and EU vacancies, at the
// cost of some noise).

var subjectTerms = []string{
	// international relations core
	"relations internationales", "international relations", "diplomatie", "diplomacy",
	"sécurité internationale", "international security", "défense", "defense",
	"géopolitique", "geopolitics", "politique étrangère", "foreign policy",
	"analyse de données", "data analysis", "data scientist", "quantitative", "qualitative",
	"open source", "osint", "policy", "research assistant", "analyste", "researcher",
	"think tank", "ngos", "ngo", "ong", "charity",
	"moyen-orient", "middle east", "proche-orient", "near east", "iran", "turkey", "turquie",
	"lebanon", "liban", "syria", "syrie", "iraq", "irak", "saudi", "émirats", "uae",
	"qatar", "yemen", "oman", "israel", "palestine", "egypt", "egypte", "jordan", "jordanie",
	"caucasus", "caucase", "armenia", "azerbaijan", "georgia", "géorgie",
	"union européenne", "european union", "ue", "eu", "commission", "parlement européen",
	"otan", "nato", "onu", "un", "osce", "odhir", "coe", "council of europe",
	"ambassade", "embassy", "consulat", "consulate", "institut culturel", "cultural institute",
	"alliances françaises", "alliance française", "institut français",
	"stage", "intern", "internship", "trainee", "traineeship", "stagiaire",
	"assistant", "junior", "entry-level", "graduate programme", "programme diplômé",
	"bachelor", "licence", "bac+3", "césure", "gap year", "6 mois", "12 mois", "1 an",
	"vie", "via", "volontariat international", "service civique", "service national universel",
	"schuman", "blue book", "traineeships",

	// broader support roles, kept on request
	"accueil", "accueil du public", "front desk", "reception",
	"finance", "financial", "comptabilité", "accounting", "budget", "grants",
	"voyage", "travel", "logistics", "visa", "procurement",
	"académique", "academic", "université", "university", "research centre",
	"sports", "sport", "événementiel", "events", "event",
	"bibliothèque", "library", "documentation", "archives",
	"communication", "communications", "digital", "content", "editorial", "web",
	"press", "presse", "media", "journalism", "public affairs", "advocacy",
	"humanitarian", "relief", "development", "développement",
}

var geoTerms = []string{
	"europe", "france", "royaume-uni", "uk", "londres", "bruxelles", "brussels",
	"strasbourg", "genève", "geneva", "berlin", "rome", "madrid", "lisbon", "vienna",
	"canada", "ottawa", "montreal", "montréal", "toronto", "vancouver",
	"moyen-orient", "proche-orient", "middle east", "near east", "iran", "turkey",
	"lebanon", "syria", "iraq", "saudi", "uae", "qatar", "oman", "yemen", "israel",
	"palestine", "egypt", "jordan", "armenia", "azerbaijan", "georgia",
}

var durationTerms = []string{
	"6 mois", "12 mois", "1 an", "18 mois", "24 mois",
	"avril 2026", "2026", "2027", "long term", "long terme",
}

var priorityTerms = []string{
	"iran", "moyen-orient", "middle east", "sécurité internationale",
	"vie", "via", "ambassade", "consulat", "think tank", "schuman", "blue book",
}

// orgSignalTokens let a posting through on subject match alone when the
// text names an IR/IO institution. The embedded spaces are crude word
// boundaries ("un " not "un", or every French noun phrase would match).
var orgSignalTokens = []string{
	"un ", " osce", "nato", "eu ", "commission", "parliament", "ngo", "think tank",
}

// orgNamePrefixes is the same tolerance applied to the source's own
// name: boards run by these institutions only list relevant postings.
var orgNamePrefixes = []string{
	"osce", "euiss", "eu-japan", "commission", "parlement",
}
