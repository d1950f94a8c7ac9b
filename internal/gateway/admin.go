// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"context"
	"time"

	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/ome/openmicroscopy-sub022/models"
)

func (g *omeroGateway) GetEventContext(ctx context.Context) (ec remote.EventContext, err error) {
	defer g.track("get_event_context", time.Now(), &err)

	sess, err := g.sess()
	if err != nil {
		return ec, err
	}
	ec, err = sess.AdminService().GetEventContext(ctx)
	return ec, Classify("cannot load the event context", err)
}

func (g *omeroGateway) GetExperimenter(ctx context.Context, id int64) (exp *models.ExperimenterData, err error) {
	defer g.track("get_experimenter", time.Now(), &err)

	sess, err := g.sess()
	if err != nil {
		return nil, err
	}
	e, err := sess.AdminService().GetExperimenter(ctx, id)
	if err != nil {
		return nil, Classify("cannot load the experimenter", err)
	}
	return convertOne[*models.ExperimenterData]("cannot convert the experimenter", e)
}

func (g *omeroGateway) GetExperimenters(ctx context.Context) (out []*models.ExperimenterData, err error) {
	defer g.track("get_experimenters", time.Now(), &err)

	sess, err := g.sess()
	if err != nil {
		return nil, err
	}
	exps, err := sess.AdminService().LookupExperimenters(ctx)
	if err != nil {
		return nil, Classify("cannot load the experimenters", err)
	}
	return convertAll[*models.ExperimenterData]("cannot convert the experimenters", exps)
}

func (g *omeroGateway) GetGroups(ctx context.Context) (out []*models.GroupData, err error) {
	defer g.track("get_groups", time.Now(), &err)

	sess, err := g.sess()
	if err != nil {
		return nil, err
	}
	groups, err := sess.AdminService().LookupGroups(ctx)
	if err != nil {
		return nil, Classify("cannot load the groups", err)
	}
	return convertAll[*models.GroupData]("cannot convert the groups", groups)
}

func (g *omeroGateway) UpdateExperimenter(ctx context.Context, exp *remote.Experimenter) (err error) {
	defer g.track("update_experimenter", time.Now(), &err)

	if exp == nil {
		return InvalidArguments("no experimenter to update")
	}
	sess, err := g.sess()
	if err != nil {
		return err
	}
	return Classify("cannot update the experimenter", sess.AdminService().UpdateSelf(ctx, exp))
}

func (g *omeroGateway) ChangePassword(ctx context.Context, newPassword string) (err error) {
	defer g.track("change_password", time.Now(), &err)

	sess, err := g.sess()
	if err != nil {
		return err
	}
	return Classify("cannot change the password", sess.AdminService().ChangePassword(ctx, newPassword))
}

func (g *omeroGateway) GetFreeSpace(ctx context.Context) (n int64, err error) {
	defer g.track("get_free_space", time.Now(), &err)

	sess, err := g.sess()
	if err != nil {
		return 0, err
	}
	n, err = sess.RepositoryService().GetFreeSpace(ctx)
	return n, Classify("cannot read the free space", err)
}

func (g *omeroGateway) GetUsedSpace(ctx context.Context) (n int64, err error) {
	defer g.track("get_used_space", time.Now(), &err)

	sess, err := g.sess()
	if err != nil {
		return 0, err
	}
	n, err = sess.RepositoryService().GetUsedSpace(ctx)
	return n, Classify("cannot read the used space", err)
}
