package dailymenu

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/keysaw7/MenuMaster-sub000/internal/apperr"
	"github.com/keysaw7/MenuMaster-sub000/internal/ingredient"
	"github.com/keysaw7/MenuMaster-sub000/internal/menu"
	"github.com/keysaw7/MenuMaster-sub000/internal/restaurant"
	"github.com/keysaw7/MenuMaster-sub000/internal/suggestion"
	"github.com/keysaw7/MenuMaster-sub000/internal/weather"
)

// defaultTemperature is used when the caller sends a category without a
// temperature.
const defaultTemperature = 15

// RestaurantReader resolves a restaurant for a member. restaurant.Service
// satisfies it: unknown ids are NotFound, non-members get an authorization
// error.
type RestaurantReader interface {
	GetRestaurant(ctx context.Context, userID, id string) (*restaurant.Restaurant, error)
}

type GenerateService struct {
	restaurants RestaurantReader
	ingredients *ingredient.Loader
	menus       *menu.Extractor
	generator   suggestion.Generator
	now         func() time.Time
	log         logrus.FieldLogger
}

func NewGenerateService(
	restaurants RestaurantReader,
	ingredients *ingredient.Loader,
	menus *menu.Extractor,
	generator suggestion.Generator,
	log logrus.FieldLogger,
) *GenerateService {
	return &GenerateService{
		restaurants: restaurants,
		ingredients: ingredients,
		menus:       menus,
		generator:   generator,
		now:         time.Now,
		log:         log.WithField("component", "generate"),
	}
}

func (s *GenerateService) Generate(ctx context.Context, userID string, in GenerateInput) (*GenerateOutput, error) {
	cond := strings.TrimSpace(in.WeatherCondition)
	if cond == "" {
		return nil, apperr.Validation("weatherCondition is required (one of: " + weather.NamesList() + ")")
	}
	if !weather.Valid(cond) {
		return nil, apperr.Validation("invalid weatherCondition, expected one of: " + weather.NamesList())
	}

	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = s.now().Format(DateLayout)
	} else if _, err := time.Parse(DateLayout, date); err != nil {
		return nil, apperr.Validation("date must be a YYYY-MM-DD date")
	}

	city := strings.TrimSpace(in.City)
	if city == "" {
		city = weather.DefaultCity
	}

	temperature := defaultTemperature
	if in.Temperature != nil {
		temperature = *in.Temperature
	}

	req := suggestion.Request{
		Weather:             weather.NewSnapshot(weather.Category(cond), temperature, city, date),
		Cuisine:             in.Cuisine,
		DietaryRestrictions: in.DietaryRestrictions,
		City:                city,
		Date:                date,
	}

	if in.RestaurantID != "" {
		if _, err := uuid.Parse(in.RestaurantID); err != nil {
			return nil, apperr.Validation("invalid restaurantId")
		}
		res, err := s.restaurants.GetRestaurant(ctx, userID, in.RestaurantID)
		if err != nil {
			return nil, err
		}
		req.RestaurantName = res.Name
		if len(req.Cuisine) == 0 {
			req.Cuisine = res.Cuisine
		}
	}

	if err := s.loadContext(ctx, in, &req); err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := s.generator.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"generator":     s.generator.Name(),
		"weather":       cond,
		"restaurant_id": in.RestaurantID,
		"ingredients":   len(req.Ingredients),
		"duration_ms":   time.Since(start).Milliseconds(),
	}).Info("daily menu generated")

	return &GenerateOutput{
		Result:           *result,
		WeatherCondition: cond,
		Generator:        s.generator.Name(),
	}, nil
}

// loadContext fetches inventory and the fixed menu concurrently.
func (s *GenerateService) loadContext(ctx context.Context, in GenerateInput, req *suggestion.Request) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		items, err := s.ingredients.LoadContext(gctx, in.RestaurantID, in.Ingredients)
		if err != nil {
			return err
		}
		req.Ingredients = items
		return nil
	})

	g.Go(func() error {
		fixed, err := s.menus.ExtractContext(gctx, in.RestaurantID)
		if err != nil {
			return err
		}
		req.FixedMenu = fixed
		return nil
	})

	return g.Wait()
}
