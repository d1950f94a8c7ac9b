// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/ome/openmicroscopy-sub022/internal/backend"
	"github.com/ome/openmicroscopy-sub022/internal/config"
	"github.com/ome/openmicroscopy-sub022/internal/handler"
	"github.com/ome/openmicroscopy-sub022/internal/logger"
	"github.com/ome/openmicroscopy-sub022/internal/server"
	"github.com/ome/openmicroscopy-sub022/internal/store"
	"github.com/ome/openmicroscopy-sub022/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(info)

	cfg, err := config.GetServerConfig()
	if err != nil {
		logger.NewLogger("omero-server", "").Fatal().Err(err).Msg("error getting configs")
	}
	if info.Known() {
		cfg.App.Version = info.BuildVersion()
	}

	log := logger.NewLogger("omero-server", cfg.App.LogLevel)
	log.Debug().Str("address", cfg.Server.HTTPAddress).Str("driver", cfg.Storage.DB.Driver).Msg("received configs")

	ctx := context.Background()
	db, err := store.NewDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening database")
	}
	defer db.Close()

	b := backend.New(store.NewStore(db), cfg.Storage.RepositoryQuota, log)
	if err = b.Seed(ctx, cfg.Auth.RootPassword, cfg.Server.SeedDemoData); err != nil {
		log.Fatal().Err(err).Msg("error seeding database")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	handlers, err := handler.NewHandlers(b, cfg, reg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, b, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
