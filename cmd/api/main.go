// SoulSync API
//
// REST API for chakra assessments, healing rituals, journaling and AI coaching.
//
//	@title			SoulSync API
//	@version		1.0
//	@description	Chakra assessments, personalized rituals, journaling and AI coaching.
//
//	@BasePath	/v1
//
//	@securityDefinitions.apikey	AdminToken
//	@in							header
//	@name						X-Admin-Token
//
//	@tag.name			users
//	@tag.description	User management endpoints
//
//	@tag.name			chakras
//	@tag.description	Chakra assessments and reference data
//
//	@tag.name			journal
//	@tag.description	Emotion journal endpoints
//
//	@tag.name			coach
//	@tag.description	AI coaching conversations
//
//	@tag.name			admin
//	@tag.description	Membership administration
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blaisecz/soulsync/internal/api"
	"github.com/blaisecz/soulsync/internal/api/handler"
	"github.com/blaisecz/soulsync/internal/chakra"
	"github.com/blaisecz/soulsync/internal/config"
	"github.com/blaisecz/soulsync/internal/langfuse"
	"github.com/blaisecz/soulsync/internal/llm"
	"github.com/blaisecz/soulsync/internal/logging"
	"github.com/blaisecz/soulsync/internal/metrics"
	"github.com/blaisecz/soulsync/internal/repository"
	"github.com/blaisecz/soulsync/internal/seed"
	"github.com/blaisecz/soulsync/internal/sentiment"
	"github.com/blaisecz/soulsync/internal/service"
	"github.com/blaisecz/soulsync/internal/telemetry"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		zap.L().Error("server exited", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg := config.Load()

	flush, err := logging.Install(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer flush()
	log := zap.L()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "soulsync-api")
	if err != nil {
		return fmt.Errorf("init tracer: %w", err)
	}

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	if err := repository.AutoMigrate(db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	log.Info("database migration completed")

	if cfg.Seed {
		log.Info("seeding database with sample data (SEED=true)")
		if err := seed.Run(ctx, db); err != nil {
			return fmt.Errorf("seed database: %w", err)
		}
	}

	rec, err := metrics.New("soulsync", prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewChakraProfileRepository(db)
	journalRepo := repository.NewJournalRepository(db)
	chatRepo := repository.NewChatRepository(db)

	lf := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	})
	prompts := langfuse.NewPromptStore(langfuse.PromptStoreConfig{
		BaseURL:   cfg.LangfuseBaseURL,
		PublicKey: cfg.LangfusePublicKey,
		SecretKey: cfg.LangfuseSecretKey,
		Label:     cfg.LangfusePromptLabel,
		LocalDir:  cfg.PromptDir,
		Defaults:  llm.DefaultCoachPrompts,
		CacheSize: cfg.PromptCacheSize,
		CacheTTL:  cfg.PromptCacheTTL,
	})

	// OpenAI coach (nil if not configured; Reply then reports unavailability)
	coach := llm.NewOpenAICoach(cfg.OpenAIAPIKey, cfg.OpenAICoachModel)
	if coach == nil {
		log.Warn("OpenAI API key not configured, coach messages will be unavailable")
	}

	engine := chakra.New()

	// Initialize services
	userService := service.NewUserService(userRepo)
	assessmentService := service.NewAssessmentService(profileRepo, userRepo, rec)
	ritualService := service.NewRitualService(engine, profileRepo, userRepo)
	journalService := service.NewJournalService(journalRepo, userRepo, sentiment.NewAnalyzer(), rec)
	coachService := service.NewCoachService(service.CoachDeps{
		Engine:   engine,
		Coach:    coach,
		Prompts:  prompts,
		Langfuse: lf,
		Users:    userRepo,
		Profiles: profileRepo,
		Journal:  journalRepo,
		Chats:    chatRepo,
		Metrics:  rec,
	}, service.CoachConfig{
		FreeDailyLimit: cfg.FreeDailyChatLimit,
		HistoryLimit:   cfg.ChatHistoryLimit,
	})
	adminService := service.NewAdminService(userRepo, profileRepo, journalRepo, chatRepo)

	// Setup router
	router := api.NewRouter(api.Handlers{
		User:       handler.NewUserHandler(userService),
		Assessment: handler.NewAssessmentHandler(assessmentService),
		Ritual:     handler.NewRitualHandler(ritualService),
		Journal:    handler.NewJournalHandler(journalService),
		Coach:      handler.NewCoachHandler(coachService),
		Admin:      handler.NewAdminHandler(adminService),
	}, rec, prometheus.DefaultGatherer, cfg.AdminToken)
	if cfg.AdminToken == "" {
		log.Warn("ADMIN_TOKEN is empty, admin API is disabled")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	if err := srv.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}
	if err := lf.Close(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("langfuse flush: %w", err))
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
	}
	return errors.Join(errs...)
}
