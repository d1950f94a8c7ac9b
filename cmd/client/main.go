// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/ome/openmicroscopy-sub022/internal/client"
	"github.com/ome/openmicroscopy-sub022/internal/config"
	"github.com/ome/openmicroscopy-sub022/internal/logger"
	"github.com/ome/openmicroscopy-sub022/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(info)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger("omero-client", "", "").Fatal().Err(err).Msg("error getting configs")
	}
	if info.Known() {
		cfg.App.Version = info.BuildVersion()
	}

	log := logger.NewClientLogger("omero-client", cfg.App.LogLevel, "")

	app, err := client.NewApp(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
