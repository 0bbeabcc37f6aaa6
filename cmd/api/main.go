package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/leoslab/platform-api/config"
	"github.com/leoslab/platform-api/internal/bootstrap"
	"github.com/leoslab/platform-api/internal/jira"
	"github.com/leoslab/platform-api/internal/maintenance"
	"github.com/leoslab/platform-api/internal/vault"
)

const serviceName = "leoslab platform API"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, err := bootstrap.OpenDB(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer func() {
		conn.Close()
		log.Println("Database disconnected")
	}()
	log.Println("Database connected successfully")

	if cfg.Database.SeedSampleData {
		if err := bootstrap.Seed(ctx, conn); err != nil {
			log.Fatalf("seed: %v", err)
		}
	}

	if cfg.Database.Maintenance {
		sched := maintenance.NewScheduler(conn, cfg.Database.Driver)
		sched.Start()
		defer sched.Stop()
	}

	deps := bootstrap.RouterDeps{
		ServiceName:  serviceName,
		Version:      cfg.App.Version,
		AllowOrigins: strings.Split(cfg.Server.AllowOrigins, ","),
		DB:           conn,
	}
	if cfg.Jira.URL != "" {
		deps.Jira = jira.NewClient(cfg.Jira.URL, cfg.Jira.Email, cfg.Jira.APIToken)
		deps.JiraMaxResults = cfg.Jira.MaxResults
	}
	if cfg.Vault.Addr != "" {
		deps.Vault = vault.NewClient(cfg.Vault.Addr, cfg.Vault.Token)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: bootstrap.BuildRouter(deps),
	}

	go func() {
		log.Printf("listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
