package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/packworks/coursecat-backend/internal/config"
	"github.com/packworks/coursecat-backend/internal/database"
	"github.com/packworks/coursecat-backend/internal/handler"
	"github.com/packworks/coursecat-backend/internal/logger"
	"github.com/packworks/coursecat-backend/internal/repository"
	"github.com/packworks/coursecat-backend/internal/router"
	"github.com/packworks/coursecat-backend/internal/search"
	"github.com/packworks/coursecat-backend/internal/service"
	"github.com/packworks/coursecat-backend/internal/validator"
	"github.com/packworks/coursecat-backend/internal/worker"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting CourseCat Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	departmentRepo := repository.NewDepartmentRepository(pool)
	courseRepo := repository.NewCourseRepository(pool)
	sectionRepo := repository.NewSectionRepository(pool)
	termRepo := repository.NewTermRepository(pool)
	instructorRepo := repository.NewInstructorRepository(pool)
	facetRepo := repository.NewFacetRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	departmentService := service.NewDepartmentService(departmentRepo, courseRepo)
	courseService := service.NewCourseService(courseRepo, sectionRepo)
	sectionService := service.NewSectionService(sectionRepo)
	termService := service.NewTermService(termRepo)
	instructorService := service.NewInstructorService(instructorRepo)
	facetService := service.NewFacetService(facetRepo, rdb, log)

	// ─── Initialize Search Engine ─────────────────────────────────────
	searchFactory := search.NewFactory(pool, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Search:     handler.NewSearchHandler(searchFactory, log),
		Department: handler.NewDepartmentHandler(departmentService),
		Course:     handler.NewCourseHandler(courseService),
		Section:    handler.NewSectionHandler(sectionService),
		Term:       handler.NewTermHandler(termService),
		Instructor: handler.NewInstructorHandler(instructorService),
		Catalog:    handler.NewCatalogHandler(facetService),
		System:     handler.NewSystemHandler(pool, rdb),
	}

	// ─── Prewarm Facet Cache ──────────────────────────────────────────
	// Load the search-form dropdown lists into Redis BEFORE accepting
	// traffic so the first page render never waits on Postgres.
	if _, err := facetService.Warm(ctx); err != nil {
		log.Warn().Err(err).Msg("Facet prewarm failed")
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())

	facetWorker := worker.NewFacetWorker(facetService, cfg.FacetRefresh, log)
	go facetWorker.Start(workerCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, rdb, cfg, log)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	workerCancel()

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
