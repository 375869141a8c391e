package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskhive-backend/internal/config"
	"taskhive-backend/internal/jobs"
	"taskhive-backend/internal/logger"
	"taskhive-backend/internal/repository/postgres"
	"taskhive-backend/internal/scheduler"

	_ "github.com/lib/pq"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit ('expire-invitations', 'purge-email-records', 'all')")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting TaskHive cronjob runner...", "log_level", cfg.Log.Level)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to open database", "error", err)
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	runner := jobs.NewJobRunner(
		store.InvitationRepository,
		store.EmailRecordRepository,
		time.Duration(cfg.Email.RetentionDays)*24*time.Hour,
	)

	if *runOnce != "" {
		switch *runOnce {
		case "expire-invitations":
			runner.ExpireInvitations()
		case "purge-email-records":
			runner.PurgeEmailRecords()
		case "all":
			runner.RunAll()
		default:
			log.Fatalf("Unknown job: %s", *runOnce)
		}
		return
	}

	sched := scheduler.NewScheduler(runner, cfg.Scheduler)
	sched.Start()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	sched.Stop()
}
