package suggestion

import (
	"context"
	"testing"

	"github.com/keysaw7/MenuMaster-sub000/internal/ingredient"
	"github.com/keysaw7/MenuMaster-sub000/internal/weather"
)

func dishNames(pool []Dish) map[string]Dish {
	out := make(map[string]Dish, len(pool))
	for _, d := range pool {
		out[d.Name] = d
	}
	return out
}

func TestSnowyGenerationUsesWarmPool(t *testing.T) {
	for seed := uint64(0); seed < 100; seed++ {
		engine := NewRuleEngine(WithSeed(seed))

		res, err := engine.Generate(context.Background(), Request{
			Weather: weather.NewSnapshot(weather.Snowy, -2, "Paris", ""),
		})
		if err != nil {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}

		if len(res.Starters) != 2 || len(res.Mains) != 2 || len(res.Desserts) != 1 {
			t.Fatalf("seed %d: expected 2/2/1, got %d/%d/%d",
				seed, len(res.Starters), len(res.Mains), len(res.Desserts))
		}
		if res.Price != float64(int(res.Price)) || res.Price < 24 || res.Price > 32 {
			t.Fatalf("seed %d: price %v is not an integer in [24,32]", seed, res.Price)
		}

		check := func(items []MenuItem, pool []Dish, course Course) {
			byName := dishNames(pool)
			for _, item := range items {
				d, ok := byName[item.Name]
				if !ok || !d.IsWarm {
					t.Fatalf("seed %d: %s is not a warm %s", seed, item.Name, course)
				}
				if item.Category != course {
					t.Fatalf("seed %d: expected category %s, got %s", seed, course, item.Category)
				}
			}
		}
		check(res.Starters, DefaultPools.Starters, Starter)
		check(res.Mains, DefaultPools.Mains, Main)
		check(res.Desserts, DefaultPools.Desserts, Dessert)
	}
}

func TestHotWeatherUsesColdPool(t *testing.T) {
	engine := NewRuleEngine(WithSeed(3))
	res, _ := engine.Generate(context.Background(), Request{
		Weather: weather.NewSnapshot(weather.Hot, 31, "Nice", ""),
	})
	byName := dishNames(DefaultPools.Mains)
	for _, item := range res.Mains {
		if !byName[item.Name].IsCold {
			t.Fatalf("%s is not a cold dish", item.Name)
		}
	}
}

func TestStarvedPoolFallsBackToFullPool(t *testing.T) {
	pools := Pools{
		Starters: []Dish{
			{Name: "Soupe", IsWarm: true},
			{Name: "Salade", IsCold: true},
			{Name: "Ceviche", IsCold: true},
		},
		Mains: []Dish{
			{Name: "Tartare", IsCold: true},
			{Name: "Poke", IsCold: true},
		},
		Desserts: []Dish{
			{Name: "Sorbet", IsCold: true},
		},
	}

	for seed := uint64(0); seed < 50; seed++ {
		engine := NewRuleEngine(WithSeed(seed), WithPools(pools))
		res, err := engine.Generate(context.Background(), Request{
			Weather: weather.NewSnapshot(weather.Rainy, 8, "Brest", ""),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Starters) != 2 || len(res.Mains) != 2 || len(res.Desserts) != 1 {
			t.Fatalf("seed %d: expected full counts despite starvation, got %d/%d/%d",
				seed, len(res.Starters), len(res.Mains), len(res.Desserts))
		}
		if res.Starters[0].Name == res.Starters[1].Name {
			t.Fatalf("seed %d: duplicate starter %s", seed, res.Starters[0].Name)
		}
	}
}

func TestNeutralWeatherDoesNotFilter(t *testing.T) {
	pools := Pools{
		Starters: []Dish{{Name: "A", IsCold: true}, {Name: "B", IsCold: true}},
		Mains:    []Dish{{Name: "C", IsCold: true}, {Name: "D", IsCold: true}},
		Desserts: []Dish{{Name: "E", IsCold: true}},
	}
	// partlyCloudy is neutral; untranslated provider text is too
	for _, c := range []weather.Category{weather.PartlyCloudy, weather.Cloudy, "Volcanic ash"} {
		if LeaningOf(c) != Neutral {
			t.Errorf("%s should be neutral", c)
		}
	}
	res, _ := NewRuleEngine(WithSeed(1), WithPools(pools)).Generate(context.Background(), Request{
		Weather: weather.NewSnapshot(weather.PartlyCloudy, 14, "", ""),
	})
	if len(res.Starters) != 2 {
		t.Fatalf("expected 2 starters, got %d", len(res.Starters))
	}
}

func TestIngredientStubsCarryCatalogIDs(t *testing.T) {
	pools := Pools{
		Starters: []Dish{
			{Name: "Soupe", IsWarm: true, Ingredients: []string{"Oignon", "pain"}},
			{Name: "Velouté", IsWarm: true, Ingredients: []string{"potiron"}},
		},
		Mains: []Dish{
			{Name: "Daube", IsWarm: true, Ingredients: []string{"bœuf"}},
			{Name: "Potée", IsWarm: true, Ingredients: []string{"chou"}},
		},
		Desserts: []Dish{{Name: "Tarte", IsWarm: true}},
	}
	engine := NewRuleEngine(WithSeed(9), WithPools(pools))

	res, _ := engine.Generate(context.Background(), Request{
		Weather:     weather.NewSnapshot(weather.Cold, 1, "", ""),
		Ingredients: []ingredient.Ingredient{{ID: "ing-1", Name: "oignon"}},
	})

	found := false
	for _, item := range res.Starters {
		for _, ref := range item.Ingredients {
			if ref.Name == "Oignon" {
				found = true
				if ref.ID != "ing-1" {
					t.Errorf("expected catalog id ing-1, got %q", ref.ID)
				}
			}
			if ref.Name == "pain" && ref.ID != "" {
				t.Errorf("unknown ingredient should have no id, got %q", ref.ID)
			}
		}
	}
	if !found {
		t.Fatal("expected the soup to be selected")
	}
}

func TestSameSeedSameMenu(t *testing.T) {
	req := Request{Weather: weather.NewSnapshot(weather.Rainy, 9, "", "")}
	a, _ := NewRuleEngine(WithSeed(11)).Generate(context.Background(), req)
	b, _ := NewRuleEngine(WithSeed(11)).Generate(context.Background(), req)

	if a.Price != b.Price {
		t.Fatalf("expected same price, got %v and %v", a.Price, b.Price)
	}
	for i := range a.Mains {
		if a.Mains[i].Name != b.Mains[i].Name {
			t.Fatalf("expected same mains, got %s and %s", a.Mains[i].Name, b.Mains[i].Name)
		}
	}
}

func TestGenerateDoesNotMutatePools(t *testing.T) {
	before := DefaultPools.Starters[0].Name
	engine := NewRuleEngine(WithSeed(5))
	for i := 0; i < 20; i++ {
		engine.Generate(context.Background(), Request{Weather: weather.NewSnapshot(weather.Cloudy, 12, "", "")})
	}
	if DefaultPools.Starters[0].Name != before {
		t.Fatal("default pool order changed")
	}
}
