// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"
	"strings"

	"github.com/ome/openmicroscopy-sub022/internal/gateway"
	"github.com/ome/openmicroscopy-sub022/internal/logger"
	"github.com/ome/openmicroscopy-sub022/internal/registry"
	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/ome/openmicroscopy-sub022/models"
)

type adminService struct {
	gateway  gateway.Gateway
	registry *registry.Registry
	logger   *logger.Logger
}

func NewAdminService(gw gateway.Gateway, reg *registry.Registry, logger *logger.Logger) AdminService {
	return &adminService{gateway: gw, registry: reg, logger: logger.Component("admin_service")}
}

func (s *adminService) CurrentUser() *models.ExperimenterData {
	return s.registry.CurrentUser()
}

func (s *adminService) ChangePassword(ctx context.Context, oldPassword, newPassword string) (bool, error) {
	if strings.TrimSpace(newPassword) == "" {
		return false, gateway.InvalidArguments("the new password is blank")
	}
	creds, ok := s.registry.Credentials()
	if !ok {
		return false, errNoCurrentUser
	}
	if subtle.ConstantTimeCompare([]byte(oldPassword), []byte(creds.Password)) != 1 {
		s.logger.Info().Str("user", creds.UserName).Msg("old password does not match")
		return false, nil
	}

	if err := s.gateway.ChangePassword(ctx, newPassword); err != nil {
		return false, err
	}
	creds.Password = newPassword
	s.registry.SetCredentials(creds)

	if user := s.registry.CurrentUser(); user != nil {
		fresh, err := s.gateway.GetExperimenter(ctx, user.ID())
		if err != nil {
			s.logger.Warn().Err(err).Msg("cannot reload the current user")
		} else {
			s.registry.SetCurrentUser(fresh)
		}
	}
	return true, nil
}

// UpdateExperimenter saves the details of the current user and rebinds it.
func (s *adminService) UpdateExperimenter(ctx context.Context, exp *models.ExperimenterData) (*models.ExperimenterData, error) {
	if exp == nil || !saved(exp) {
		return nil, gateway.InvalidArguments("no saved experimenter")
	}
	user := s.registry.CurrentUser()
	if user == nil {
		return nil, errNoCurrentUser
	}
	if exp.ID() != user.ID() {
		return nil, gateway.InvalidArguments("only the current user can be updated")
	}

	if err := s.gateway.UpdateExperimenter(ctx, exp.Object().(*remote.Experimenter)); err != nil {
		return nil, err
	}
	fresh, err := s.gateway.GetExperimenter(ctx, exp.ID())
	if err != nil {
		return nil, err
	}
	s.registry.SetCurrentUser(fresh)
	return fresh, nil
}

func (s *adminService) GetSpace(ctx context.Context, which Space) (int64, error) {
	switch which {
	case SpaceUsed:
		return s.gateway.GetUsedSpace(ctx)
	case SpaceFree:
		return s.gateway.GetFreeSpace(ctx)
	}
	return 0, gateway.InvalidArguments("unknown space %d", which)
}

func (s *adminService) LoadGroups(ctx context.Context) ([]*models.GroupData, error) {
	return s.gateway.GetGroups(ctx)
}

func (s *adminService) LoadExperimenters(ctx context.Context) ([]*models.ExperimenterData, error) {
	return s.gateway.GetExperimenters(ctx)
}
