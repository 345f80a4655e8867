package weather

import "strings"

// conditionPhrases maps provider wording (English and French) to a
// category. Matching is by substring and the first hit wins, so more
// specific phrases come first.
var conditionPhrases = []struct {
	phrase   string
	category Category
}{
	// storms
	{"thunder", Stormy},
	{"orage", Stormy},
	{"storm", Stormy},
	{"tempête", Stormy},

	// snow and ice
	{"blizzard", Snowy},
	{"snow", Snowy},
	{"sleet", Snowy},
	{"ice pellets", Snowy},
	{"neige", Snowy},
	{"grésil", Snowy},

	// rain
	{"rain", Rainy},
	{"drizzle", Rainy},
	{"shower", Rainy},
	{"pluie", Rainy},
	{"pluvieux", Rainy},
	{"averse", Rainy},
	{"bruine", Rainy},

	// fog
	{"fog", Foggy},
	{"mist", Foggy},
	{"haze", Foggy},
	{"brouillard", Foggy},
	{"brume", Foggy},

	// clouds
	{"partly cloudy", PartlyCloudy},
	{"partiellement nuageux", PartlyCloudy},
	{"éclaircies", PartlyCloudy},
	{"peu nuageux", PartlyCloudy},
	{"overcast", Cloudy},
	{"cloudy", Cloudy},
	{"couvert", Cloudy},
	{"nuageux", Cloudy},

	// sun
	{"sunny", Clear},
	{"clear", Clear},
	{"ensoleillé", Clear},
	{"dégagé", Clear},
	{"soleil", Clear},

	{"wind", Windy},
	{"venteux", Windy},
	{"vent", Windy},

	{"hot", Hot},
	{"chaud", Hot},
	{"canicule", Hot},
	{"cold", Cold},
	{"froid", Cold},
}

// Translate maps a provider condition to a category. Unknown wording is
// returned unchanged.
func Translate(condition string) Category {
	trimmed := strings.TrimSpace(condition)
	lower := strings.ToLower(trimmed)
	if lower == "" {
		return Category(trimmed)
	}
	if Valid(trimmed) {
		return Category(trimmed)
	}
	for _, p := range conditionPhrases {
		if strings.Contains(lower, p.phrase) {
			return p.category
		}
	}
	return Category(trimmed)
}
