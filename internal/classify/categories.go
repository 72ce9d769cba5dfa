package classify

// categoryToDomain maps raw feed category strings (as common feed
// publishers emit them) to the internal domain taxonomy. Keys are
// lowercase. Unmapped categories fall through to keyword analysis.
var categoryToDomain = map[string]string{
	// News / Politics
	"news":          "politics",
	"world":         "politics",
	"world news":    "politics",
	"international": "politics",
	"global":        "politics",
	"top stories":   "politics",
	"headlines":     "politics",
	"breaking news": "politics",
	"latest":        "politics",
	"politics":      "politics",
	"government":    "politics",
	"u.s.":          "politics",
	"us news":       "politics",
	"uk news":       "politics",
	"national":      "politics",
	"policy":        "politics",
	"elections":     "politics",

	// Conflict
	"war":       "conflict",
	"military":  "conflict",
	"defense":   "conflict",
	"security":  "conflict",
	"terrorism": "conflict",

	// Economy / Business
	"business":           "economy",
	"business & economy": "economy",
	"economy":            "economy",
	"finance":            "economy",
	"markets":            "economy",
	"money":              "economy",
	"personal finance":   "economy",
	"startups":           "economy",
	"investing":          "economy",
	"cryptocurrency":     "economy",

	// Science
	"science":               "science",
	"science & environment": "science",
	"space":                 "science",
	"physics":               "science",
	"biology":               "science",
	"chemistry":             "science",
	"astronomy":             "science",
	"research":              "science",

	// Tech
	"tech":                    "tech",
	"technology":              "tech",
	"programming":             "tech",
	"web development":         "tech",
	"android":                 "tech",
	"android development":     "tech",
	"apple":                   "tech",
	"ios development":         "tech",
	"ui / ux":                 "tech",
	"cybersecurity":           "tech",
	"ai":                      "tech",
	"artificial intelligence": "tech",

	// Environment
	"environment":    "environment",
	"climate":        "environment",
	"energy":         "environment",
	"sustainability": "environment",
	"nature":         "environment",
	"weather":        "environment",

	// Health
	"health":        "health",
	"medicine":      "health",
	"medical":       "health",
	"wellness":      "health",
	"mental health": "health",
	"fitness":       "health",

	// Culture / Entertainment
	"culture":         "culture",
	"entertainment":   "culture",
	"arts":            "culture",
	"movies":          "culture",
	"music":           "culture",
	"books":           "culture",
	"television":      "culture",
	"food":            "culture",
	"fashion":         "culture",
	"beauty":          "culture",
	"architecture":    "culture",
	"interior design": "culture",
	"diy":             "culture",
	"photography":     "culture",
	"funny":           "culture",
	"history":         "culture",
	"travel":          "culture",
	"education":       "culture",
	"religion":        "culture",

	// Sports
	"sports":   "sports",
	"football": "sports",
	"soccer":   "sports",
	"cricket":  "sports",
	"tennis":   "sports",
	"cars":     "sports",
	"gaming":   "sports",
}

// categoryConfidence is the fixed score each matched feed category
// contributes to its mapped domain.
const categoryConfidence = 2

// sourceBias lists known sources that lean heavily toward one domain.
// Weight 3 = strong bias, 2 = moderate lean.
var sourceBias = map[string]struct {
	Domain string
	Weight int
}{
	"bbc-science":  {"science", 3},
	"nature":       {"science", 3},
	"sciencedaily": {"science", 3},
	"ars-technica": {"tech", 2},
	"hacker-news":  {"tech", 2},
	"the-verge":    {"tech", 2},
}
