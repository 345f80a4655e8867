package weather

import "testing"

func TestTranslate(t *testing.T) {
	cases := map[string]Category{
		"Sunny":                          Clear,
		"Ensoleillé":                     Clear,
		"Partly cloudy":                  PartlyCloudy,
		"Partiellement nuageux":          PartlyCloudy,
		"Overcast":                       Cloudy,
		"Patchy light rain with thunder": Stormy,
		"Light drizzle":                  Rainy,
		"Averses de neige":               Snowy,
		"Freezing fog":                   Foggy,
		"Brume":                          Foggy,
		"snowy":                          Snowy,
	}
	for in, want := range cases {
		if got := Translate(in); got != want {
			t.Errorf("Translate(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestTranslateUnknownPassesThrough(t *testing.T) {
	if got := Translate("Volcanic ash"); got != "Volcanic ash" {
		t.Fatalf("expected passthrough, got %s", got)
	}
	label, icon := Describe(Translate("Volcanic ash"))
	if label != "Volcanic ash" || icon == "" {
		t.Errorf("unexpected description %q %q", label, icon)
	}
}

func TestValid(t *testing.T) {
	for _, c := range Categories {
		if !Valid(string(c)) {
			t.Errorf("%s should be valid", c)
		}
	}
	if Valid("sunny") {
		t.Error("sunny is not a category")
	}
	if len(Names()) != 10 {
		t.Errorf("expected ten categories, got %d", len(Names()))
	}
}
