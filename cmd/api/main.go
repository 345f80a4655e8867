package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/keysaw7/MenuMaster-sub000/internal/auth"
	"github.com/keysaw7/MenuMaster-sub000/internal/config"
	"github.com/keysaw7/MenuMaster-sub000/internal/dailymenu"
	"github.com/keysaw7/MenuMaster-sub000/internal/db"
	"github.com/keysaw7/MenuMaster-sub000/internal/ingredient"
	"github.com/keysaw7/MenuMaster-sub000/internal/llm"
	"github.com/keysaw7/MenuMaster-sub000/internal/logger"
	"github.com/keysaw7/MenuMaster-sub000/internal/menu"
	"github.com/keysaw7/MenuMaster-sub000/internal/restaurant"
	"github.com/keysaw7/MenuMaster-sub000/internal/router"
	"github.com/keysaw7/MenuMaster-sub000/internal/storage"
	"github.com/keysaw7/MenuMaster-sub000/internal/suggestion"
	"github.com/keysaw7/MenuMaster-sub000/internal/weather"
)

func main() {
	// ───────────────────────── ENV ─────────────────────────
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ───────────────────────── DB ─────────────────────────
	pool, err := db.Connect(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.WithError(err).Fatal("database connection failed")
	}
	defer pool.Close()

	// ───────────────────────── AUTH ─────────────────────────
	tokens, err := auth.NewTokenIssuer(cfg.JWTSecret)
	if err != nil {
		log.WithError(err).Fatal("jwt setup failed")
	}
	authService := auth.NewService(auth.NewPostgresUserRepository(pool))

	// ───────────────────────── CORE REPOS + SERVICES ─────────────────────────
	restaurantService := restaurant.NewService(restaurant.NewPostgresRepository(pool))

	ingredientRepo := ingredient.NewPostgresRepository(pool)
	ingredientService := ingredient.NewService(ingredientRepo, restaurantService)

	menuRepo := menu.NewPostgresRepository(pool)
	menuService := menu.NewService(menuRepo, restaurantService)

	// ───────────────────────── WEATHER ─────────────────────────
	weatherOpts := []weather.Option{weather.WithTimeout(cfg.WeatherTimeout)}
	if cfg.WeatherEnabled() {
		weatherOpts = append(weatherOpts, weather.WithProvider(
			weather.NewWeatherAPIClient(cfg.WeatherBaseURL, cfg.WeatherAPIKey, cfg.WeatherTimeout),
		))
	} else {
		log.Info("WEATHER_API_KEY not set, weather is simulated")
	}
	classifier := weather.NewClassifier(log, weatherOpts...)

	// ───────────────────────── GENERATOR ─────────────────────────
	generator, err := newGenerator(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("menu generator setup failed")
	}
	log.WithField("generator", generator.Name()).Info("menu generator ready")

	// ───────────────────────── DAILY MENUS ─────────────────────────
	var dailyOpts []dailymenu.Option
	if cfg.StorageEnabled() {
		r2, err := storage.NewR2Client(ctx, storage.R2Config{
			Endpoint:      cfg.R2Endpoint,
			AccessKey:     cfg.R2AccessKey,
			SecretKey:     cfg.R2SecretKey,
			Bucket:        cfg.R2Bucket,
			PublicBaseURL: cfg.R2PublicBaseURL,
		})
		if err != nil {
			log.WithError(err).Fatal("R2 init failed")
		}
		dailyOpts = append(dailyOpts, dailymenu.WithCardPublisher(storage.NewCardPublisher(r2)))
	} else {
		log.Info("R2 not configured, published cards are not uploaded")
	}

	dailyService := dailymenu.NewService(
		dailymenu.NewPostgresRepository(pool),
		restaurantService,
		log,
		dailyOpts...,
	)
	generateService := dailymenu.NewGenerateService(
		restaurantService,
		ingredient.NewLoader(ingredientRepo),
		menu.NewExtractor(menuRepo),
		generator,
		log,
	)

	// ───────────────────────── HTTP ─────────────────────────
	r := router.NewRouter(router.Deps{
		Log:         log,
		Tokens:      tokens,
		CORSOrigins: cfg.CORSOrigins,
		Auth:        auth.NewHandler(authService, tokens, log),
		Restaurants: restaurant.NewHandler(restaurantService, log),
		Ingredients: ingredient.NewHandler(ingredientService, log),
		Menus:       menu.NewHandler(menuService, log),
		Weather:     weather.NewHandler(classifier),
		DailyMenus:  dailymenu.NewHandler(dailyService, generateService, log),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("addr", srv.Addr).Info("API listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}

func newGenerator(cfg *config.Config, log *logrus.Logger) (suggestion.Generator, error) {
	if cfg.MenuGenerator != "llm" {
		return suggestion.NewRuleEngine(), nil
	}
	client, err := llm.NewClient(cfg.LLMProvider, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMAPIURL, cfg.LLMTimeout)
	if err != nil {
		return nil, err
	}
	return llm.NewGenerator(client, cfg.LLMTimeout, log), nil
}
