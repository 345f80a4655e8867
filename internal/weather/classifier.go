package weather

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	DefaultCity     = "Paris"
	dateLayout      = "2006-01-02"
	maxForecastDays = 5
	minPlausibleC   = -50
	maxPlausibleC   = 50
)

// Rand is the random source of the seasonal estimator.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// Classifier resolves the weather of a city on a date. Live data comes from
// the provider when one is set; everything else is estimated.
type Classifier struct {
	provider Provider
	timeout  time.Duration
	now      func() time.Time
	log      logrus.FieldLogger

	mu  sync.Mutex
	rng Rand
}

type Option func(*Classifier)

func WithProvider(p Provider) Option {
	return func(c *Classifier) { c.provider = p }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Classifier) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func WithRand(r Rand) Option {
	return func(c *Classifier) { c.rng = r }
}

func WithSeed(seed uint64) Option {
	return func(c *Classifier) { c.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

func WithClock(now func() time.Time) Option {
	return func(c *Classifier) { c.now = now }
}

func NewClassifier(log logrus.FieldLogger, opts ...Option) *Classifier {
	c := &Classifier{
		timeout: 5 * time.Second,
		now:     time.Now,
		log:     log.WithField("component", "weather"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		seed := uint64(c.now().UnixNano())
		c.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
	return c
}

// Classify never fails. Provider problems are logged and noted on the
// snapshot's Error field; unusable input yields SafeDefault.
func (c *Classifier) Classify(ctx context.Context, city, date string) (snap Snapshot) {
	if city == "" {
		city = DefaultCity
	}

	defer func() {
		if r := recover(); r != nil {
			c.log.WithField("panic", r).Error("weather classification panicked")
			snap = SafeDefault(city, date, fmt.Sprintf("internal error: %v", r))
		}
	}()

	today := civilDate(c.now())
	target := today
	if date != "" {
		parsed, err := time.Parse(dateLayout, date)
		if err != nil {
			return SafeDefault(city, date, "invalid date: "+date)
		}
		target = parsed
	} else {
		date = today.Format(dateLayout)
	}

	daysAhead := int(target.Sub(today).Hours() / 24)

	if c.provider == nil {
		return c.Estimate(city, date, target.Month(), "")
	}
	if daysAhead > maxForecastDays {
		return c.Estimate(city, date, target.Month(), "")
	}

	snap, err := c.fromProvider(ctx, city, date, daysAhead)
	if err != nil {
		c.log.WithFields(logrus.Fields{
			"city": city,
			"date": date,
		}).WithError(err).Warn("weather provider unavailable, using seasonal estimate")
		return c.Estimate(city, date, target.Month(), err.Error())
	}
	return snap
}

func (c *Classifier) fromProvider(ctx context.Context, city, date string, daysAhead int) (Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	obs, err := c.provider.Fetch(ctx, city, daysAhead, date)
	if err != nil {
		return Snapshot{}, err
	}
	if math.IsNaN(obs.TempC) || obs.TempC < minPlausibleC || obs.TempC > maxPlausibleC {
		return Snapshot{}, fmt.Errorf("implausible temperature %.1f°C", obs.TempC)
	}

	category := Translate(obs.Condition)
	label, icon := Describe(category)
	return Snapshot{
		Temperature: int(math.Round(obs.TempC)),
		Category:    category,
		Label:       label,
		Icon:        icon,
		City:        city,
		Date:        date,
	}, nil
}

// Estimate draws a plausible snapshot for the month: a temperature from the
// seasonal band, then a category from that temperature. The requested month
// is mixed into the seed of each draw.
func (c *Classifier) Estimate(city, date string, month time.Month, reason string) Snapshot {
	lo, hi := seasonBand(month)

	c.mu.Lock()
	base := uint64(c.rng.IntN(math.MaxInt))
	c.mu.Unlock()

	draw := rand.New(rand.NewPCG(base, uint64(month)))
	temp := lo + draw.IntN(hi-lo+1)
	roll := draw.Float64()

	category := categoryFor(temp, roll)
	label, icon := Describe(category)
	return Snapshot{
		Temperature: temp,
		Category:    category,
		Label:       label,
		Icon:        icon,
		City:        city,
		Date:        date,
		Simulated:   true,
		Error:       reason,
	}
}

// SafeDefault is returned when the request itself cannot be interpreted.
func SafeDefault(city, date, reason string) Snapshot {
	_, icon := Describe(PartlyCloudy)
	return Snapshot{
		Temperature: 15,
		Category:    PartlyCloudy,
		Label:       SimulatedLabel,
		Icon:        icon,
		City:        city,
		Date:        date,
		Simulated:   true,
		Error:       reason,
	}
}

func seasonBand(m time.Month) (lo, hi int) {
	switch m {
	case time.December, time.January, time.February:
		return 0, 10
	case time.June, time.July, time.August:
		return 15, 25
	default:
		return 10, 20
	}
}

func categoryFor(temp int, roll float64) Category {
	switch {
	case temp < 5:
		if roll < 0.3 {
			return Snowy
		}
		return Cloudy
	case temp <= 15:
		if roll < 0.4 {
			return Rainy
		}
		return PartlyCloudy
	default:
		if roll < 0.2 {
			return PartlyCloudy
		}
		return Clear
	}
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
