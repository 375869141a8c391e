package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	httpapi "taskhive-backend/internal/api/http"
	"taskhive-backend/internal/config"
	"taskhive-backend/internal/email"
	"taskhive-backend/internal/logger"
	"taskhive-backend/internal/repository/postgres"
	"taskhive-backend/internal/security"
	"taskhive-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting TaskHive backend...", "log_level", cfg.Log.Level, "address", cfg.GetServerAddress())

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
	logger.Info("Database connection established", "host", cfg.Database.Host, "database", cfg.Database.Database)

	store := postgres.NewStore(db)

	tokenManager := security.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Minute,
	)

	var provider email.Provider
	if cfg.Email.Provider == "sendgrid" {
		logger.Info("Using SendGrid email provider", "from", cfg.Email.FromAddress)
		provider = email.NewSendGridProvider(cfg.Email.SendGridAPIKey, cfg.Email.FromAddress, cfg.Email.FromName)
	} else {
		logger.Info("Using console email provider")
		provider = email.NewConsoleProvider()
	}

	dispatcher := service.NewEmailDispatcher(store.EmailRecordRepository, provider)
	defer dispatcher.Wait()

	guard := service.NewGuard(store.MembershipRepository)

	authSvc := service.NewAuthService(store.UserRepository, tokenManager, cfg.Debug)
	orgSvc := service.NewOrganizationService(
		store.OrganizationRepository,
		store.MembershipRepository,
		store.InvitationRepository,
		guard,
	)
	inviteSvc := service.NewInvitationService(
		store.InvitationRepository,
		store.MembershipRepository,
		store.OrganizationRepository,
		store.UserRepository,
		guard,
		dispatcher,
		cfg.Email.SiteURL,
		time.Duration(cfg.Invitations.ExpiryHours)*time.Hour,
	)
	todoSvc := service.NewTodoService(store.TodoRepository, guard)

	handlers := &httpapi.Handlers{
		Auth:         httpapi.NewAuthHandler(authSvc),
		Organization: httpapi.NewOrganizationHandler(orgSvc),
		Invitation:   httpapi.NewInvitationHandler(inviteSvc),
		Todo:         httpapi.NewTodoHandler(todoSvc),
	}
	authMw := httpapi.NewAuthMiddleware(tokenManager, store.UserRepository)

	router := httpapi.NewRouter(handlers, authMw)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
