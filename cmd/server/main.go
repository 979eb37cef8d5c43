package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dhanush7123/sanskrit-spark/internal/api"
	"github.com/dhanush7123/sanskrit-spark/internal/config"
	"github.com/dhanush7123/sanskrit-spark/internal/content"
	"github.com/dhanush7123/sanskrit-spark/internal/db"
	"github.com/dhanush7123/sanskrit-spark/internal/jobs"
	"github.com/dhanush7123/sanskrit-spark/internal/logger"
	"github.com/dhanush7123/sanskrit-spark/internal/oracle"
	"github.com/dhanush7123/sanskrit-spark/internal/repository/sqlite"
	"github.com/dhanush7123/sanskrit-spark/internal/services"
	"github.com/dhanush7123/sanskrit-spark/internal/worker"
)

func main() {
	cfg := config.Load()

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("Sanskrit Spark Server Starting")
	log.Info("===========================================")

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("leaderboard_size=%d", cfg.LeaderboardSize)
	log.Debug("result_worker_count=%d", cfg.ResultWorkerCount)
	log.Debug("result_queue_size=%d", cfg.ResultQueueSize)
	log.Debug("server_clock=%t", cfg.ServerClock)
	log.Debug("session_idle_timeout=%s", cfg.SessionIdleTimeout)
	log.Debug("oracle_url=%s", cfg.OracleAPIURL)
	log.Debug("oracle_model=%s", cfg.OracleModel)
	if cfg.OracleAPIKey == "" {
		log.Warn("ORACLE_API_KEY not set, the oracle will always be meditating")
	}

	questions := content.Questions()
	if err := content.Validate(questions); err != nil {
		log.Error("invalid question bank: %v", err)
		os.Exit(1)
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	profileRepo := sqlite.NewProfileRepository(database.DB)
	leaderboardRepo := sqlite.NewLeaderboardRepository(database.DB)
	resultRepo := sqlite.NewQuizResultRepository(database.DB)

	resultPool := worker.NewPool(cfg.ResultWorkerCount, cfg.ResultQueueSize)
	resultQueue := jobs.NewWorkerQueue(resultPool, resultRepo, profileRepo)

	leaderboardService := services.NewLeaderboardService(leaderboardRepo, cfg.LeaderboardSize)
	quizService := services.NewQuizService(questions, leaderboardService, resultQueue)
	profileService := services.NewProfileService(profileRepo, resultRepo)
	oracleService := services.NewOracleService(oracle.New(cfg.OracleAPIURL, cfg.OracleAPIKey, cfg.OracleModel))

	srv := &api.Server{
		DB:                 database,
		QuizService:        quizService,
		LeaderboardService: leaderboardService,
		ProfileService:     profileService,
		OracleService:      oracleService,
		ServerClock:        cfg.ServerClock,
		CookieSecure:       cfg.CookieSecure,
		StreamInterval:     time.Second,
	}

	// The pool gets its own context so shutdown can drain it after the
	// clock has stopped.
	resultPool.Start(context.Background())
	clockCtx, stopClock := context.WithCancel(context.Background())

	clockDone := make(chan struct{})
	go func() {
		defer close(clockDone)
		services.NewClock(quizService, time.Second, cfg.SessionIdleTimeout, cfg.ServerClock).Run(clockCtx)
	}()

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Debug("stopping quiz clock")
	stopClock()
	<-clockDone

	// Pending results are written before the database closes.
	log.Debug("stopping result pool")
	resultPool.Stop()

	log.Info("===========================================")
	log.Info("Sanskrit Spark Server Stopped")
	log.Info("===========================================")
}
