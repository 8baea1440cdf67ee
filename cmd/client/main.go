// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-match-client/internal/adapter"
	"github.com/MKhiriev/go-match-client/internal/client"
	"github.com/MKhiriev/go-match-client/internal/config"
	"github.com/MKhiriev/go-match-client/internal/logger"
	"github.com/MKhiriev/go-match-client/internal/matches"
	"github.com/MKhiriev/go-match-client/internal/service"
	"github.com/MKhiriev/go-match-client/internal/session"
	"github.com/MKhiriev/go-match-client/internal/store"
	"github.com/MKhiriev/go-match-client/internal/tui"
	"github.com/MKhiriev/go-match-client/internal/validators"
	"github.com/MKhiriev/go-match-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("match-client", cfg.App.LogFile)
	logger.SetLevel(cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("close local storage")
		}
	}()

	validator := validators.NewFormValidator()
	services := service.NewClientServices(serverAdapter, validator, log)

	sessionStore := session.NewStore(storages.LocalStorage, services.AuthService, log)
	query := matches.NewQuery(services.MatchService, log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui, err := tui.New(sessionStore, query, services, validator, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, sessionStore, query, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		_ = storages.Close()
		os.Exit(1)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
