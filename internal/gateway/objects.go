// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"context"
	"time"

	"github.com/ome/openmicroscopy-sub022/internal/remote"
)

func (g *omeroGateway) FindObject(ctx context.Context, kind remote.Kind, id int64) (obj remote.Object, err error) {
	defer g.track("find_object", time.Now(), &err)

	sess, err := g.sess()
	if err != nil {
		return nil, err
	}
	obj, err = sess.QueryService().Find(ctx, kind, id)
	return obj, Classify("cannot find the object", err)
}

func (g *omeroGateway) GetObject(ctx context.Context, kind remote.Kind, id int64) (obj remote.Object, err error) {
	defer g.track("get_object", time.Now(), &err)

	sess, err := g.sess()
	if err != nil {
		return nil, err
	}
	obj, err = sess.QueryService().Get(ctx, kind, id)
	return obj, Classify("cannot load the object", err)
}

func (g *omeroGateway) FindAll(ctx context.Context, kind remote.Kind, filter remote.Filter) (objs []remote.Object, err error) {
	defer g.track("find_all", time.Now(), &err)

	sess, err := g.sess()
	if err != nil {
		return nil, err
	}
	objs, err = sess.QueryService().FindAll(ctx, kind, filter)
	return objs, Classify("cannot find the objects", err)
}

func (g *omeroGateway) FindLink(ctx context.Context, linkKind remote.Kind, parentID, childID int64) (remote.Object, error) {
	links, err := g.FindLinks(ctx, linkKind, remote.LinkFilter{
		ParentIDs: []int64{parentID},
		ChildIDs:  []int64{childID},
	})
	if err != nil || len(links) == 0 {
		return nil, err
	}
	return links[0], nil
}

func (g *omeroGateway) FindLinks(ctx context.Context, linkKind remote.Kind, filter remote.LinkFilter) (links []remote.Object, err error) {
	defer g.track("find_links", time.Now(), &err)

	if !linkKind.IsLink() {
		return nil, InvalidArguments("%q is not a link kind", linkKind)
	}
	sess, err := g.sess()
	if err != nil {
		return nil, err
	}
	links, err = sess.QueryService().FindLinks(ctx, linkKind, filter)
	return links, Classify("cannot find the links", err)
}

func (g *omeroGateway) CreateObject(ctx context.Context, obj remote.Object) (saved remote.Object, err error) {
	defer g.track("create_object", time.Now(), &err)

	if obj == nil {
		return nil, InvalidArguments("no object to create")
	}
	sess, err := g.sess()
	if err != nil {
		return nil, err
	}
	saved, err = sess.UpdateService().SaveAndReturnObject(ctx, obj)
	return saved, Classify("cannot create the object", err)
}

func (g *omeroGateway) CreateObjects(ctx context.Context, objs []remote.Object) (saved []remote.Object, err error) {
	defer g.track("create_objects", time.Now(), &err)

	if len(objs) == 0 {
		return []remote.Object{}, nil
	}
	sess, err := g.sess()
	if err != nil {
		return nil, err
	}
	saved, err = sess.UpdateService().SaveAndReturnArray(ctx, objs)
	return saved, Classify("cannot create the objects", err)
}

func (g *omeroGateway) UpdateObject(ctx context.Context, obj remote.Object) (saved remote.Object, err error) {
	defer g.track("update_object", time.Now(), &err)

	if obj == nil || obj.GetID() == 0 {
		return nil, InvalidArguments("no saved object to update")
	}
	sess, err := g.sess()
	if err != nil {
		return nil, err
	}
	saved, err = sess.UpdateService().SaveAndReturnObject(ctx, obj)
	return saved, Classify("cannot update the object", err)
}

func (g *omeroGateway) DeleteObject(ctx context.Context, obj remote.Object) (err error) {
	defer g.track("delete_object", time.Now(), &err)

	if obj == nil {
		return InvalidArguments("no object to delete")
	}
	sess, err := g.sess()
	if err != nil {
		return err
	}
	return Classify("cannot delete the object", sess.UpdateService().DeleteObject(ctx, obj))
}

func (g *omeroGateway) DeleteObjects(ctx context.Context, objs []remote.Object) (err error) {
	defer g.track("delete_objects", time.Now(), &err)

	if len(objs) == 0 {
		return nil
	}
	sess, err := g.sess()
	if err != nil {
		return err
	}
	return Classify("cannot delete the objects", sess.UpdateService().DeleteObjects(ctx, objs))
}
