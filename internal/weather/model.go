package weather

import "strings"

type Category string

const (
	Clear        Category = "clear"
	PartlyCloudy Category = "partlyCloudy"
	Cloudy       Category = "cloudy"
	Rainy        Category = "rainy"
	Stormy       Category = "stormy"
	Snowy        Category = "snowy"
	Foggy        Category = "foggy"
	Windy        Category = "windy"
	Hot          Category = "hot"
	Cold         Category = "cold"
)

// Categories is the fixed vocabulary in display order.
var Categories = []Category{
	Clear, PartlyCloudy, Cloudy, Rainy, Stormy,
	Snowy, Foggy, Windy, Hot, Cold,
}

var descriptions = map[Category]struct {
	label string
	icon  string
}{
	Clear:        {"Ensoleillé", "☀️"},
	PartlyCloudy: {"Partiellement nuageux", "⛅"},
	Cloudy:       {"Nuageux", "☁️"},
	Rainy:        {"Pluvieux", "🌧️"},
	Stormy:       {"Orageux", "⛈️"},
	Snowy:        {"Neigeux", "❄️"},
	Foggy:        {"Brumeux", "🌫️"},
	Windy:        {"Venteux", "💨"},
	Hot:          {"Chaud", "🔥"},
	Cold:         {"Froid", "🥶"},
}

const (
	SimulatedLabel = "Données simulées"
	unknownIcon    = "🌡️"
)

// Snapshot is the weather attached to a generated or saved daily menu.
type Snapshot struct {
	Temperature int      `json:"temperature"`
	Category    Category `json:"category"`
	Label       string   `json:"label"`
	Icon        string   `json:"icon"`
	City        string   `json:"city,omitempty"`
	Date        string   `json:"date,omitempty"`
	Simulated   bool     `json:"simulated"`
	Error       string   `json:"error,omitempty"`
}

// Valid reports whether s names one of the ten categories.
func Valid(s string) bool {
	_, ok := descriptions[Category(s)]
	return ok
}

// Names lists the accepted category names.
func Names() []string {
	out := make([]string, len(Categories))
	for i, c := range Categories {
		out[i] = string(c)
	}
	return out
}

// NamesList is Names joined for error messages.
func NamesList() string {
	return strings.Join(Names(), ", ")
}

// Describe returns the French label and icon of a category. Categories
// outside the vocabulary are labelled with their own name.
func Describe(c Category) (label, icon string) {
	if d, ok := descriptions[c]; ok {
		return d.label, d.icon
	}
	return string(c), unknownIcon
}

// NewSnapshot builds a snapshot for a caller-supplied category.
func NewSnapshot(c Category, temperature int, city, date string) Snapshot {
	label, icon := Describe(c)
	return Snapshot{
		Temperature: temperature,
		Category:    c,
		Label:       label,
		Icon:        icon,
		City:        city,
		Date:        date,
	}
}
