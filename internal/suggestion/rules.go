package suggestion

import (
	"context"
	"math"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	basePrice   = 28.0
	priceSpread = 4.0
)

// Rand is the engine's random source. *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// RuleEngine picks dishes from static pools, filtered by the weather.
type RuleEngine struct {
	pools Pools

	mu  sync.Mutex
	rng Rand
}

type Option func(*RuleEngine)

func WithRand(r Rand) Option {
	return func(e *RuleEngine) { e.rng = r }
}

func WithSeed(seed uint64) Option {
	return func(e *RuleEngine) { e.rng = rand.New(rand.NewPCG(seed, seed+1)) }
}

func WithPools(p Pools) Option {
	return func(e *RuleEngine) { e.pools = p }
}

func NewRuleEngine(opts ...Option) *RuleEngine {
	e := &RuleEngine{pools: DefaultPools}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		now := uint64(time.Now().UnixNano())
		e.rng = rand.New(rand.NewPCG(now, now>>1))
	}
	return e
}

func (e *RuleEngine) Name() string { return "rules" }

// Generate selects 2 starters, 2 mains and 1 dessert. Cuisine and dietary
// restrictions do not filter the pools.
func (e *RuleEngine) Generate(ctx context.Context, req Request) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	leaning := LeaningOf(req.Weather.Category)
	catalog := catalogIDs(req)

	e.mu.Lock()
	defer e.mu.Unlock()

	res := &Result{
		Starters: e.pick(Starter, StarterCount, leaning, catalog),
		Mains:    e.pick(Main, MainCount, leaning, catalog),
		Desserts: e.pick(Dessert, DessertCount, leaning, catalog),
	}
	res.Price = math.Round(basePrice + (e.rng.Float64()*2-1)*priceSpread)
	return res, nil
}

// pick expects e.mu to be held.
func (e *RuleEngine) pick(course Course, n int, leaning Leaning, catalog map[string]string) []MenuItem {
	pool := filterPool(e.pools.byCourse(course), leaning)
	if len(pool) < n {
		pool = append([]Dish(nil), e.pools.byCourse(course)...)
	}

	e.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	if n > len(pool) {
		n = len(pool)
	}
	items := make([]MenuItem, 0, n)
	for _, d := range pool[:n] {
		items = append(items, toMenuItem(d, course, catalog))
	}
	return items
}

// filterPool always returns a fresh slice so shuffling never touches the
// shared pools.
func filterPool(pool []Dish, leaning Leaning) []Dish {
	out := make([]Dish, 0, len(pool))
	for _, d := range pool {
		switch leaning {
		case ColdLeaning:
			if !d.IsWarm {
				continue
			}
		case HotLeaning:
			if !d.IsCold {
				continue
			}
		}
		out = append(out, d)
	}
	return out
}

func toMenuItem(d Dish, course Course, catalog map[string]string) MenuItem {
	refs := make([]IngredientRef, 0, len(d.Ingredients))
	for _, name := range d.Ingredients {
		refs = append(refs, IngredientRef{
			ID:   catalog[strings.ToLower(name)],
			Name: name,
		})
	}
	allergens := append([]string{}, d.Allergens...)

	return MenuItem{
		ID:          uuid.New().String(),
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		Ingredients: refs,
		Allergens:   allergens,
		Category:    course,
	}
}

func catalogIDs(req Request) map[string]string {
	ids := make(map[string]string, len(req.Ingredients))
	for _, ing := range req.Ingredients {
		if ing.ID == "" {
			continue
		}
		ids[strings.ToLower(strings.TrimSpace(ing.Name))] = ing.ID
	}
	return ids
}
