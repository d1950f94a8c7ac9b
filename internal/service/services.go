// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/ome/openmicroscopy-sub022/internal/config"
	"github.com/ome/openmicroscopy-sub022/internal/gateway"
	"github.com/ome/openmicroscopy-sub022/internal/logger"
	"github.com/ome/openmicroscopy-sub022/internal/registry"
)

type Services struct {
	DataService     DataService
	ImageService    ImageService
	MetadataService MetadataService
	AdminService    AdminService
}

func NewServices(gw gateway.Gateway, reg *registry.Registry, cfg config.Gateway, logger *logger.Logger) *Services {
	return &Services{
		DataService:     NewDataService(gw, logger),
		ImageService:    NewImageService(gw, cfg, logger),
		MetadataService: NewMetadataService(gw, reg, logger),
		AdminService:    NewAdminService(gw, reg, logger),
	}
}
