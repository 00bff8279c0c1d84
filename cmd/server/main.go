// Package main initializes and starts the expense tracker HTTP server,
// setting up configuration, logging, the database connection, repositories,
// services and handlers.
package main

import (
	"cmp"
	"fmt"

	nethttp "net/http"

	"github.com/avagyan/expense-tracker/internal/config"
	"github.com/avagyan/expense-tracker/internal/db"
	"github.com/avagyan/expense-tracker/internal/hasher"
	"github.com/avagyan/expense-tracker/internal/logger"
	"github.com/avagyan/expense-tracker/internal/repository"
	"github.com/avagyan/expense-tracker/internal/server/handler/http"
	"github.com/avagyan/expense-tracker/internal/service"
	"github.com/avagyan/expense-tracker/internal/token"
	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	if options.JWTSecret == "" {
		zapLogger.Fatal("JWT secret is not set (use -s flag or JWT_SECRET)")
	}

	// Initialize SQLite connection and schema.
	sqliteDB, err := db.InitSQLite(options.DatabasePath)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	// Initialize repositories for users and expenses.
	userRepo := repository.NewSQLiteUserRepository(sqliteDB)
	expenseRepo := repository.NewSQLiteExpenseRepository(sqliteDB)

	// Token issuance/verification and password hashing.
	tokens := token.New(options.JWTSecret, options.TokenTTL)
	passwords := hasher.NewBcrypt()

	// Initialize business-logic services.
	authService := service.NewAuthService(userRepo, passwords, tokens)
	expenseService := service.NewExpenseService(expenseRepo)

	// Create HTTP handlers for auth and expense endpoints.
	authHandler := &http.AuthHandler{AuthService: authService}
	expenseHandler := &http.ExpenseHandler{ExpenseService: expenseService}

	// Build the router with middleware and routes.
	router := http.NewRouter(authHandler, expenseHandler, tokens, zapLogger)

	// Create and start the HTTP server.
	server := &nethttp.Server{
		Addr:    options.Addr,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", options.Addr))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
