package suggestion

import "github.com/keysaw7/MenuMaster-sub000/internal/weather"

type Leaning int

const (
	Neutral Leaning = iota
	ColdLeaning
	HotLeaning
)

func (l Leaning) String() string {
	switch l {
	case ColdLeaning:
		return "cold"
	case HotLeaning:
		return "hot"
	default:
		return "neutral"
	}
}

// LeaningOf groups weather categories. Anything unlisted, including
// provider wording that was not translated, is neutral.
func LeaningOf(c weather.Category) Leaning {
	switch c {
	case weather.Cold, weather.Rainy, weather.Snowy, weather.Windy, weather.Foggy:
		return ColdLeaning
	case weather.Hot, weather.Clear:
		return HotLeaning
	default:
		return Neutral
	}
}
