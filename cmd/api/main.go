package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dan9191/finance-planner/internal/config"
	"github.com/Dan9191/finance-planner/internal/handler"
	"github.com/Dan9191/finance-planner/internal/integrations/cbr"
	"github.com/Dan9191/finance-planner/internal/middleware"
	"github.com/Dan9191/finance-planner/internal/repository"
	"github.com/Dan9191/finance-planner/internal/scheduler"
	"github.com/Dan9191/finance-planner/internal/service"
	"github.com/Dan9191/finance-planner/internal/utils/email"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		logger.Fatalf("Failed to apply schema: %v", err)
	}

	var mailer service.Mailer
	if cfg.MailEnabled() {
		mailer = email.NewSender(cfg, logger)
	} else {
		logger.Warn("SMTP not configured, reminders and reset emails are disabled")
	}
	cbrClient := cbr.NewCBRClient(cfg, logger)
	svc := service.NewService(repo, logger, cfg, mailer, cbrClient)
	h := handler.NewHandler(svc, logger)

	// Setup router
	r := mux.NewRouter()
	r.Use(middleware.LoggingMiddleware(logger))
	// Public routes
	r.HandleFunc("/auth/register", h.Register).Methods("POST")
	r.HandleFunc("/auth/login", h.Login).Methods("POST")
	r.HandleFunc("/auth/forgot-password", h.ForgotPassword).Methods("POST")
	r.HandleFunc("/auth/reset-password", h.ResetPassword).Methods("POST")
	// Protected routes
	authRouter := r.PathPrefix("/").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(svc))
	authRouter.HandleFunc("/auth/logout", h.Logout).Methods("POST")
	authRouter.HandleFunc("/auth/me", h.Me).Methods("GET")
	authRouter.HandleFunc("/plans", h.ListPlans).Methods("GET")
	authRouter.HandleFunc("/plans", h.CreatePlan).Methods("POST")
	authRouter.HandleFunc("/plans/{id}", h.UpdatePlan).Methods("PATCH")
	authRouter.HandleFunc("/plans/{id}", h.DeletePlan).Methods("DELETE")
	authRouter.HandleFunc("/savings", h.ListAccounts).Methods("GET")
	authRouter.HandleFunc("/savings", h.CreateAccount).Methods("POST")
	authRouter.HandleFunc("/savings/{id}", h.UpdateAccount).Methods("PATCH")
	authRouter.HandleFunc("/savings/{id}", h.DeleteAccount).Methods("DELETE")
	authRouter.HandleFunc("/payments", h.ListPayments).Methods("GET")
	authRouter.HandleFunc("/payments", h.CreatePayment).Methods("POST")
	authRouter.HandleFunc("/payments/{id}", h.UpdatePayment).Methods("PATCH")
	authRouter.HandleFunc("/payments/{id}", h.DeletePayment).Methods("DELETE")
	authRouter.HandleFunc("/dashboard/summary", h.Summary).Methods("GET")
	authRouter.HandleFunc("/dashboard/analytics", h.Analytics).Methods("GET")
	// CBR key rate endpoint
	authRouter.HandleFunc("/reference-rate", h.ReferenceRate).Methods("GET")

	// Background jobs
	sched, err := scheduler.New(cfg, svc, logger)
	if err != nil {
		logger.Fatalf("Failed to create scheduler: %v", err)
	}
	sched.Start()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	go func() {
		logger.Infof("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Server shutdown failed: %v", err)
	}
	sched.Stop(shutdownCtx)
}
