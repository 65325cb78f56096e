package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"kanjiquest/internal/catalog"
	"kanjiquest/internal/config"
	"kanjiquest/internal/database"
	"kanjiquest/internal/game"
	"kanjiquest/internal/handlers"
	"kanjiquest/internal/logging"
	"kanjiquest/internal/random"
	"kanjiquest/internal/repository"
	"kanjiquest/internal/rewards"
	"kanjiquest/internal/scheduler"
	"kanjiquest/internal/security"
	"kanjiquest/internal/service"
	"kanjiquest/internal/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	log := logging.New(cfg.LogLevel, cfg.IsProduction())

	startup := handlers.NewStartupStatus()

	// Serve the startup status while the rest comes up
	var router atomic.Pointer[http.Handler]
	booting := startup.RequireReady(bootMux(startup))
	router.Store(&booting)

	server := &http.Server{
		Addr: ":" + cfg.ServerPort,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			(*router.Load()).ServeHTTP(w, r)
		}),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.WithField("addr", server.Addr).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	app, err := initialize(cfg, startup, log)
	if err != nil {
		log.Fatalf("Startup failed: %v", err)
	}
	defer app.db.Close()

	router.Store(&app.handler)
	startup.MarkReady()
	log.Info("Server ready")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server shutting down...")
	app.scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Graceful shutdown failed")
	}
}

type application struct {
	db        *database.DB
	scheduler *scheduler.Scheduler
	handler   http.Handler
}

func initialize(cfg *config.Config, startup *handlers.StartupStatus, log *logrus.Logger) (*application, error) {
	startup.SetCurrentStep(handlers.StepDatabase)
	db, err := database.Open(database.Options{
		Type: cfg.DatabaseType,
		Path: cfg.DatabasePath,
		URL:  cfg.DatabaseURL,
	}, log)
	if err != nil {
		return nil, err
	}
	startup.CompleteStep(handlers.StepDatabase)

	startup.SetCurrentStep(handlers.StepMigrations)
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		db.Close()
		return nil, err
	}
	startup.CompleteStep(handlers.StepMigrations)

	startup.SetCurrentStep(handlers.StepBadWords)
	if err := db.SeedBadWords(cfg.BadWordsURL); err != nil {
		log.WithError(err).Warn("Failed to seed bad words filter")
	}
	startup.CompleteStep(handlers.StepBadWords)

	startup.SetCurrentStep(handlers.StepServices)
	tuning, err := config.LoadTuning(cfg.TuningPath)
	if err != nil {
		db.Close()
		return nil, err
	}

	seed := cfg.RandomSeed
	if seed == 0 {
		if seed, err = random.NewSeed(); err != nil {
			db.Close()
			return nil, err
		}
	}
	log.WithField("seed", seed).Debug("Random source seeded")
	rng := random.NewLocked(random.NewSeeded(seed))

	secret := cfg.JWTSecret
	if secret == "" {
		if cfg.IsProduction() {
			db.Close()
			return nil, errors.New("JWT_SECRET is required in production")
		}
		secret = uuid.NewString()
		log.Warn("JWT_SECRET not set; tokens will not survive a restart")
	}
	tokens, err := security.NewTokenIssuer(secret, cfg.TokenTTL)
	if err != nil {
		db.Close()
		return nil, err
	}

	cat := catalog.Default()
	players := repository.NewPlayerRepository(db)

	auth := service.NewAuthService(db, players, tokens, log)
	finisher := service.NewRewardService(db, rewards.NewEngine(cat, rng, tuning.Rewards), log)
	play := service.NewPlayService(cat, game.NewSelector(cat, rng), finisher, service.PlayTuning{
		Reading:           tuning.Reading,
		Writing:           tuning.Writing,
		ReadingThresholds: tuning.ReadingThresholds,
		WritingThresholds: tuning.WritingThresholds,
	}, log)
	daily := service.NewDailyService(db, cat, log)
	progress := service.NewProgressService(cat, players, repository.NewResultRepository(db), repository.NewInventoryRepository(db))

	email, err := service.NewEmailService(context.Background(), cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, log)
	if err != nil {
		db.Close()
		return nil, err
	}
	reporter := service.NewWeeklyReporter(players, progress, email, log)
	limiter := security.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)

	validate := validation.NewValidator()
	handler := handlers.Routes(handlers.Handlers{
		Player:  handlers.NewPlayerHandler(auth, cat, validate, log),
		Play:    handlers.NewPlayHandler(play, validate, log),
		Daily:   handlers.NewDailyHandler(daily, validate, log),
		Parent:  handlers.NewParentHandler(auth, progress, reporter, validate, log),
		Startup: startup,
	}, handlers.NewMiddleware(auth, limiter, log))
	startup.CompleteStep(handlers.StepServices)

	startup.SetCurrentStep(handlers.StepScheduler)
	var weekly scheduler.Reporter
	if email.IsEnabled() {
		weekly = reporter
	}
	sched := scheduler.New(play, limiter, weekly, cfg.SessionIdleTTL, cfg.ReportSchedule, log)
	if err := sched.Start(); err != nil {
		db.Close()
		return nil, err
	}
	startup.CompleteStep(handlers.StepScheduler)

	return &application{db: db, scheduler: sched, handler: handler}, nil
}

func bootMux(startup *handlers.StartupStatus) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", startup.ShowStartupStatus)
	return mux
}
