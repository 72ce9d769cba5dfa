package classify

import "strings"

// countryPattern holds weighted terms for one ISO 3166-1 alpha-2 code.
// Term weights: 3 = country name, 2 = capital/demonym, 1 = ambiguous.
type countryPattern struct {
	Code  string
	Terms []Keyword
}

// countryNoiseFloor: a country wins only with a score strictly above this,
// so single weak mentions never tag an article.
const countryNoiseFloor = 2

var countryPatterns = []countryPattern{
	// Major English-speaking
	{"US", []Keyword{{"united states", 3}, {"u.s.", 3}, {"us ", 1}, {"america", 2}, {"american", 2}, {"washington dc", 3}, {"white house", 3}, {"pentagon", 2}, {"congress", 2}, {"senate", 1}, {"california", 3}, {"new york", 2}, {"texas", 3}, {"florida", 3}, {"chicago", 2}, {"los angeles", 2}, {"biden", 2}, {"trump", 2}, {"republican", 1}, {"democrat", 1}}},
	{"GB", []Keyword{{"united kingdom", 3}, {"uk ", 2}, {"u.k.", 3}, {"britain", 3}, {"british", 3}, {"england", 3}, {"english", 1}, {"scotland", 3}, {"scottish", 3}, {"wales", 2}, {"welsh", 2}, {"london", 2}, {"downing street", 3}, {"westminster", 3}, {"nhs", 2}, {"starmer", 2}, {"sunak", 2}, {"labour", 1}, {"tory", 2}, {"tories", 2}, {"mandelson", 2}}},
	{"CA", []Keyword{{"canada", 3}, {"canadian", 3}, {"ottawa", 2}, {"toronto", 2}, {"trudeau", 3}, {"quebec", 3}, {"ontario", 2}, {"alberta", 2}, {"vancouver", 2}}},
	{"AU", []Keyword{{"australia", 3}, {"australian", 3}, {"sydney", 2}, {"melbourne", 2}, {"canberra", 2}, {"queensland", 2}}},
	{"NZ", []Keyword{{"new zealand", 3}, {"zealand", 2}, {"kiwi", 1}, {"auckland", 2}, {"wellington", 1}}},
	{"IE", []Keyword{{"ireland", 3}, {"irish", 3}, {"dublin", 2}}},

	// Europe
	{"FR", []Keyword{{"france", 3}, {"french", 3}, {"paris", 2}, {"macron", 3}, {"élysée", 3}}},
	{"DE", []Keyword{{"germany", 3}, {"german", 3}, {"berlin", 2}, {"merkel", 3}, {"scholz", 3}, {"bundestag", 3}, {"bundeswehr", 3}}},
	{"IT", []Keyword{{"italy", 3}, {"italian", 3}, {"rome", 2}, {"meloni", 3}}},
	{"ES", []Keyword{{"spain", 3}, {"spanish", 3}, {"madrid", 2}, {"barcelona", 1}, {"sánchez", 3}}},
	{"PT", []Keyword{{"portugal", 3}, {"portuguese", 3}, {"lisbon", 2}}},
	{"NL", []Keyword{{"netherlands", 3}, {"dutch", 3}, {"amsterdam", 2}, {"rotterdam", 2}}},
	{"BE", []Keyword{{"belgium", 3}, {"belgian", 3}, {"brussels", 2}}},
	{"SE", []Keyword{{"sweden", 3}, {"swedish", 3}, {"stockholm", 2}}},
	{"NO", []Keyword{{"norway", 3}, {"norwegian", 3}, {"oslo", 2}}},
	{"DK", []Keyword{{"denmark", 3}, {"danish", 3}, {"copenhagen", 2}}},
	{"FI", []Keyword{{"finland", 3}, {"finnish", 3}, {"helsinki", 2}}},
	{"PL", []Keyword{{"poland", 3}, {"polish", 2}, {"warsaw", 2}}},
	{"GR", []Keyword{{"greece", 3}, {"greek", 3}, {"athens", 2}}},
	{"AT", []Keyword{{"austria", 3}, {"austrian", 3}, {"vienna", 2}}},
	{"CH", []Keyword{{"switzerland", 3}, {"swiss", 3}, {"zurich", 2}, {"geneva", 2}}},
	{"UA", []Keyword{{"ukraine", 3}, {"ukrainian", 3}, {"kyiv", 3}, {"zelensky", 3}, {"zelenskyy", 3}}},
	{"RO", []Keyword{{"romania", 3}, {"romanian", 3}, {"bucharest", 2}}},
	{"HU", []Keyword{{"hungary", 3}, {"hungarian", 3}, {"budapest", 2}, {"orbán", 3}, {"orban", 3}}},
	{"CZ", []Keyword{{"czech", 3}, {"czechia", 3}, {"prague", 2}}},

	// Russia & former Soviet
	{"RU", []Keyword{{"russia", 3}, {"russian", 3}, {"moscow", 2}, {"kremlin", 3}, {"putin", 3}}},
	{"BY", []Keyword{{"belarus", 3}, {"belarusian", 3}, {"minsk", 2}, {"lukashenko", 3}}},
	{"GE", []Keyword{{"georgia", 2}, {"georgian", 2}, {"tbilisi", 3}}},
	{"KZ", []Keyword{{"kazakhstan", 3}, {"kazakh", 3}}},

	// Middle East
	{"IL", []Keyword{{"israel", 3}, {"israeli", 3}, {"tel aviv", 3}, {"jerusalem", 2}, {"netanyahu", 3}, {"idf", 2}}},
	{"PS", []Keyword{{"palestine", 3}, {"palestinian", 3}, {"gaza", 3}, {"west bank", 3}, {"hamas", 2}}},
	{"IR", []Keyword{{"iran", 3}, {"iranian", 3}, {"tehran", 3}, {"khamenei", 3}}},
	{"IQ", []Keyword{{"iraq", 3}, {"iraqi", 3}, {"baghdad", 3}}},
	{"SY", []Keyword{{"syria", 3}, {"syrian", 3}, {"damascus", 3}}},
	{"SA", []Keyword{{"saudi", 3}, {"saudi arabia", 3}, {"riyadh", 3}}},
	{"AE", []Keyword{{"emirates", 3}, {"uae", 3}, {"dubai", 2}, {"abu dhabi", 3}}},
	{"TR", []Keyword{{"turkey", 3}, {"turkish", 3}, {"türkiye", 3}, {"ankara", 2}, {"istanbul", 2}, {"erdogan", 3}}},
	{"LB", []Keyword{{"lebanon", 3}, {"lebanese", 3}, {"beirut", 3}, {"hezbollah", 2}}},
	{"YE", []Keyword{{"yemen", 3}, {"yemeni", 3}, {"houthi", 3}}},
	{"JO", []Keyword{{"jordan", 2}, {"jordanian", 3}, {"amman", 2}}},
	{"AF", []Keyword{{"afghanistan", 3}, {"afghan", 3}, {"kabul", 3}, {"taliban", 2}}},

	// Asia
	{"CN", []Keyword{{"china", 3}, {"chinese", 3}, {"beijing", 3}, {"shanghai", 2}, {"xi jinping", 3}}},
	{"JP", []Keyword{{"japan", 3}, {"japanese", 3}, {"tokyo", 2}}},
	{"KR", []Keyword{{"south korea", 3}, {"korean", 2}, {"seoul", 2}}},
	{"KP", []Keyword{{"north korea", 3}, {"pyongyang", 3}, {"kim jong", 3}}},
	{"IN", []Keyword{{"india", 3}, {"indian", 3}, {"modi", 2}, {"delhi", 2}, {"mumbai", 2}}},
	{"PK", []Keyword{{"pakistan", 3}, {"pakistani", 3}, {"islamabad", 3}}},
	{"BD", []Keyword{{"bangladesh", 3}, {"bangladeshi", 3}, {"dhaka", 3}}},
	{"MM", []Keyword{{"myanmar", 3}, {"burmese", 3}, {"burma", 3}}},
	{"TH", []Keyword{{"thailand", 3}, {"thai", 3}, {"bangkok", 2}}},
	{"VN", []Keyword{{"vietnam", 3}, {"vietnamese", 3}, {"hanoi", 3}}},
	{"PH", []Keyword{{"philippines", 3}, {"filipino", 3}, {"manila", 2}}},
	{"ID", []Keyword{{"indonesia", 3}, {"indonesian", 3}, {"jakarta", 3}}},
	{"MY", []Keyword{{"malaysia", 3}, {"malaysian", 3}, {"kuala lumpur", 3}}},
	{"SG", []Keyword{{"singapore", 3}, {"singaporean", 3}}},
	{"TW", []Keyword{{"taiwan", 3}, {"taiwanese", 3}, {"taipei", 3}}},
	{"LK", []Keyword{{"sri lanka", 3}, {"sri lankan", 3}, {"colombo", 2}}},
	{"NP", []Keyword{{"nepal", 3}, {"nepalese", 3}, {"kathmandu", 3}}},

	// Africa
	{"ZA", []Keyword{{"south africa", 3}, {"south african", 3}, {"johannesburg", 2}, {"cape town", 2}, {"pretoria", 2}}},
	{"NG", []Keyword{{"nigeria", 3}, {"nigerian", 3}, {"lagos", 2}, {"abuja", 2}}},
	{"KE", []Keyword{{"kenya", 3}, {"kenyan", 3}, {"nairobi", 2}}},
	{"EG", []Keyword{{"egypt", 3}, {"egyptian", 3}, {"cairo", 2}}},
	{"ET", []Keyword{{"ethiopia", 3}, {"ethiopian", 3}, {"addis ababa", 3}}},
	{"SD", []Keyword{{"sudan", 3}, {"sudanese", 3}, {"khartoum", 3}}},
	{"CD", []Keyword{{"congo", 2}, {"congolese", 3}, {"kinshasa", 3}}},
	{"GH", []Keyword{{"ghana", 3}, {"ghanaian", 3}, {"accra", 2}}},
	{"TZ", []Keyword{{"tanzania", 3}, {"tanzanian", 3}}},
	{"MA", []Keyword{{"morocco", 3}, {"moroccan", 3}, {"rabat", 2}}},
	{"DZ", []Keyword{{"algeria", 3}, {"algerian", 3}}},
	{"TN", []Keyword{{"tunisia", 3}, {"tunisian", 3}}},
	{"LY", []Keyword{{"libya", 3}, {"libyan", 3}, {"tripoli", 2}}},
	{"SO", []Keyword{{"somalia", 3}, {"somali", 3}, {"mogadishu", 3}}},
	{"RW", []Keyword{{"rwanda", 3}, {"rwandan", 3}, {"kigali", 2}}},

	// Americas
	{"MX", []Keyword{{"mexico", 3}, {"mexican", 3}, {"mexico city", 3}, {"cartel", 1}}},
	{"BR", []Keyword{{"brazil", 3}, {"brazilian", 3}, {"brasília", 3}, {"são paulo", 2}, {"lula", 3}}},
	{"AR", []Keyword{{"argentina", 3}, {"argentine", 3}, {"buenos aires", 3}, {"milei", 3}}},
	{"CO", []Keyword{{"colombia", 3}, {"colombian", 3}, {"bogotá", 3}}},
	{"VE", []Keyword{{"venezuela", 3}, {"venezuelan", 3}, {"caracas", 3}, {"maduro", 3}}},
	{"CL", []Keyword{{"chile", 3}, {"chilean", 3}, {"santiago", 2}}},
	{"PE", []Keyword{{"peru", 3}, {"peruvian", 3}, {"lima", 2}}},
	{"CU", []Keyword{{"cuba", 3}, {"cuban", 3}, {"havana", 3}}},
	{"HT", []Keyword{{"haiti", 3}, {"haitian", 3}}},

	// Oceania
	{"FJ", []Keyword{{"fiji", 3}, {"fijian", 3}}},
	{"PG", []Keyword{{"papua new guinea", 3}}},
}

// DetectCountry scans title and summary for country mentions and returns
// the most likely ISO 3166-1 alpha-2 code, or "" when nothing scores above
// the noise floor. Title matches count double. Scores are not normalized
// against text length: short, dense titles scoring higher per raw hit is
// accepted behavior.
func DetectCountry(title, summary string) string {
	titleText := strings.ToLower(title)
	fullText := titleText + " " + strings.ToLower(summary)

	bestCode := ""
	bestScore := countryNoiseFloor

	for _, cp := range countryPatterns {
		score := 0
		for _, term := range cp.Terms {
			if strings.Contains(titleText, term.Term) {
				score += term.Weight * 2
			} else if strings.Contains(fullText, term.Term) {
				score += term.Weight
			}
		}
		if score > bestScore {
			bestCode = cp.Code
			bestScore = score
		}
	}

	return bestCode
}
