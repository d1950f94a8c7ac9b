// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backend

import (
	"context"
	"strings"

	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/ome/openmicroscopy-sub022/internal/store"
	"golang.org/x/crypto/bcrypt"
)

type adminService struct {
	s *Session
}

func (a *adminService) GetEventContext(ctx context.Context) (remote.EventContext, error) {
	if err := a.s.check(); err != nil {
		return remote.EventContext{}, err
	}
	return a.s.ec, nil
}

func (a *adminService) GetExperimenter(ctx context.Context, id int64) (*remote.Experimenter, error) {
	if err := a.s.check(); err != nil {
		return nil, err
	}
	d := a.s.dao()
	obj, err := d.mustObject(ctx, remote.KindExperimenter, id)
	if err != nil {
		return nil, err
	}
	if err := loadRelated(ctx, d, obj); err != nil {
		return nil, err
	}
	return obj.(*remote.Experimenter), nil
}

func (a *adminService) LookupExperimenters(ctx context.Context) ([]*remote.Experimenter, error) {
	if err := a.s.check(); err != nil {
		return nil, err
	}
	d := a.s.dao()
	exps, err := typed[*remote.Experimenter](ctx, d, remote.KindExperimenter, store.ObjectFilter{})
	if err != nil {
		return nil, err
	}
	for _, e := range exps {
		if err := loadRelated(ctx, d, e); err != nil {
			return nil, err
		}
	}
	return exps, nil
}

func (a *adminService) LookupGroups(ctx context.Context) ([]*remote.ExperimenterGroup, error) {
	if err := a.s.check(); err != nil {
		return nil, err
	}
	d := a.s.dao()
	groups, err := typed[*remote.ExperimenterGroup](ctx, d, remote.KindExperimenterGroup, store.ObjectFilter{})
	if err != nil {
		return nil, err
	}
	for _, g := range groups {
		if err := loadRelated(ctx, d, g); err != nil {
			return nil, err
		}
	}
	return groups, nil
}

// UpdateSelf changes the caller's own names and contact details. The login
// name cannot be changed this way.
func (a *adminService) UpdateSelf(ctx context.Context, exp *remote.Experimenter) error {
	if err := a.s.check(); err != nil {
		return err
	}
	if exp == nil {
		return remote.APIUsage("no experimenter")
	}
	if exp.ID != a.s.ec.UserID {
		return remote.SecurityViolation("experimenter %d is not the session user", exp.ID)
	}

	return a.s.inTx(ctx, func(d dao) error {
		current, err := d.mustObject(ctx, remote.KindExperimenter, exp.ID)
		if err != nil {
			return err
		}
		cur := current.(*remote.Experimenter)
		cur.FirstName, cur.MiddleName, cur.LastName = exp.FirstName, exp.MiddleName, exp.LastName
		cur.Email, cur.Institution = exp.Email, exp.Institution

		row, err := toRow(cur)
		if err != nil {
			return remote.APIUsage("%v", err)
		}
		_, err = d.st.UpdateObject(ctx, row)
		return storeFault(err)
	})
}

func (a *adminService) ChangePassword(ctx context.Context, newPassword string) error {
	if err := a.s.check(); err != nil {
		return err
	}
	if strings.TrimSpace(newPassword) == "" {
		return remote.Validation("password cannot be blank")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return remote.APIUsage("%v", err)
	}
	if err := a.s.backend.store.SetPasswordHash(ctx, a.s.ec.UserID, string(hash)); err != nil {
		return storeFault(err)
	}
	a.s.backend.logger.Info().Str("user", a.s.ec.UserName).Msg("password changed")
	return nil
}

type repositoryService struct {
	s *Session
}

func (r *repositoryService) GetUsedSpace(ctx context.Context) (int64, error) {
	if err := r.s.check(); err != nil {
		return 0, err
	}
	return usedSpace(ctx, r.s.dao())
}

func (r *repositoryService) GetFreeSpace(ctx context.Context) (int64, error) {
	if err := r.s.check(); err != nil {
		return 0, err
	}
	used, err := usedSpace(ctx, r.s.dao())
	if err != nil {
		return 0, err
	}
	return max(r.s.backend.quota-used, 0), nil
}

// usedSpace adds the sizes of the stored files and of every pixels set.
func usedSpace(ctx context.Context, d dao) (int64, error) {
	files, err := typed[*remote.OriginalFile](ctx, d, remote.KindOriginalFile, store.ObjectFilter{})
	if err != nil {
		return 0, err
	}
	var used int64
	for _, f := range files {
		used += f.Size
	}

	pixels, err := typed[*remote.Pixels](ctx, d, remote.KindPixels, store.ObjectFilter{})
	if err != nil {
		return 0, err
	}
	for _, px := range pixels {
		used += px.PlaneSize() * int64(px.SizeZ*px.SizeC*px.SizeT) * bytesPerSample
	}
	return used, nil
}
