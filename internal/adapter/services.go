// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/ome/openmicroscopy-sub022/models"
)

// decodeObjects decodes server envelopes. A type the client does not know
// means client and server disagree, which is a server-side failure.
func decodeObjects(envs []remote.Envelope) ([]remote.Object, error) {
	objs, err := remote.DecodeAll(envs)
	if err != nil {
		return nil, remote.ServerError("undecodable server response: %v", err)
	}
	return objs, nil
}

func objectsOf(body models.ObjectsBody, err error) ([]remote.Object, error) {
	if err != nil {
		return nil, err
	}
	return decodeObjects(body.Objects)
}

func objectOf(body models.ObjectBody, err error) (remote.Object, error) {
	if err != nil || body.Object == nil {
		return nil, err
	}
	obj, err := remote.Decode(*body.Object)
	if err != nil {
		return nil, remote.ServerError("undecodable server response: %v", err)
	}
	return obj, nil
}

type containerService struct{ s *httpSession }

func (c *containerService) LoadContainerHierarchy(ctx context.Context, rootKind remote.Kind, rootIDs []int64, opts *remote.Options) ([]remote.Object, error) {
	return objectsOf(post[models.ObjectsBody](ctx, c.s, "/api/v0/container/hierarchy",
		models.HierarchyRequest{RootKind: rootKind, IDs: rootIDs, Options: opts}))
}

func (c *containerService) FindContainerHierarchies(ctx context.Context, rootKind remote.Kind, imageIDs []int64, opts *remote.Options) ([]remote.Object, error) {
	return objectsOf(post[models.ObjectsBody](ctx, c.s, "/api/v0/container/hierarchies",
		models.HierarchyRequest{RootKind: rootKind, IDs: imageIDs, Options: opts}))
}

func (c *containerService) FindAnnotations(ctx context.Context, rootKind remote.Kind, rootIDs []int64, annotatorIDs []int64, opts *remote.Options) (map[int64][]remote.Annotation, error) {
	resp, err := post[models.AnnotationsResponse](ctx, c.s, "/api/v0/container/annotations",
		models.HierarchyRequest{RootKind: rootKind, IDs: rootIDs, AnnotatorIDs: annotatorIDs, Options: opts})
	if err != nil {
		return nil, err
	}

	out := make(map[int64][]remote.Annotation, len(resp.Annotations))
	for id, envs := range resp.Annotations {
		objs, err := decodeObjects(envs)
		if err != nil {
			return nil, err
		}
		anns := make([]remote.Annotation, 0, len(objs))
		for _, obj := range objs {
			ann, ok := obj.(remote.Annotation)
			if !ok {
				return nil, remote.ServerError("%s returned as an annotation", obj.Kind())
			}
			anns = append(anns, ann)
		}
		out[id] = anns
	}
	return out, nil
}

func (c *containerService) GetImages(ctx context.Context, rootKind remote.Kind, rootIDs []int64, opts *remote.Options) ([]*remote.Image, error) {
	resp, err := post[models.ImagesResponse](ctx, c.s, "/api/v0/container/images",
		models.HierarchyRequest{RootKind: rootKind, IDs: rootIDs, Options: opts})
	return resp.Images, err
}

func (c *containerService) GetUserImages(ctx context.Context, opts *remote.Options) ([]*remote.Image, error) {
	resp, err := post[models.ImagesResponse](ctx, c.s, "/api/v0/container/user-images",
		models.HierarchyRequest{Options: opts})
	return resp.Images, err
}

func (c *containerService) GetCollectionCount(ctx context.Context, kind remote.Kind, property string, ids []int64, opts *remote.Options) (map[int64]int64, error) {
	resp, err := post[models.CountResponse](ctx, c.s, "/api/v0/container/count",
		models.CountRequest{Kind: kind, Property: property, IDs: ids, Options: opts})
	return resp.Counts, err
}

type queryService struct{ s *httpSession }

func (q *queryService) Get(ctx context.Context, kind remote.Kind, id int64) (remote.Object, error) {
	obj, err := objectOf(post[models.ObjectBody](ctx, q.s, "/api/v0/query/get", models.ObjectRequest{Kind: kind, ID: id}))
	if err == nil && obj == nil {
		return nil, remote.Validation("no %s with id %d", kind, id)
	}
	return obj, err
}

func (q *queryService) Find(ctx context.Context, kind remote.Kind, id int64) (remote.Object, error) {
	return objectOf(post[models.ObjectBody](ctx, q.s, "/api/v0/query/find", models.ObjectRequest{Kind: kind, ID: id}))
}

func (q *queryService) FindAll(ctx context.Context, kind remote.Kind, filter remote.Filter) ([]remote.Object, error) {
	return objectsOf(post[models.ObjectsBody](ctx, q.s, "/api/v0/query/find-all", models.FindAllRequest{Kind: kind, Filter: filter}))
}

func (q *queryService) FindLinks(ctx context.Context, linkKind remote.Kind, filter remote.LinkFilter) ([]remote.Object, error) {
	return objectsOf(post[models.ObjectsBody](ctx, q.s, "/api/v0/query/find-links", models.FindLinksRequest{Kind: linkKind, Filter: filter}))
}

type updateService struct{ s *httpSession }

func (u *updateService) SaveAndReturnObject(ctx context.Context, obj remote.Object) (remote.Object, error) {
	env, err := remote.Encode(obj)
	if err != nil {
		return nil, err
	}
	saved, err := objectOf(post[models.ObjectBody](ctx, u.s, "/api/v0/update/save", models.ObjectBody{Object: &env}))
	if err == nil && saved == nil {
		return nil, remote.ServerError("save returned no object")
	}
	return saved, err
}

func (u *updateService) SaveAndReturnArray(ctx context.Context, objs []remote.Object) ([]remote.Object, error) {
	envs, err := remote.EncodeAll(objs)
	if err != nil {
		return nil, err
	}
	return objectsOf(post[models.ObjectsBody](ctx, u.s, "/api/v0/update/save-array", models.ObjectsBody{Objects: envs}))
}

func (u *updateService) DeleteObject(ctx context.Context, obj remote.Object) error {
	return u.DeleteObjects(ctx, []remote.Object{obj})
}

func (u *updateService) DeleteObjects(ctx context.Context, objs []remote.Object) error {
	envs, err := remote.EncodeAll(objs)
	if err != nil {
		return err
	}
	_, err = post[struct{}](ctx, u.s, "/api/v0/update/delete", models.ObjectsBody{Objects: envs})
	return err
}

type adminService struct{ s *httpSession }

func (a *adminService) GetEventContext(ctx context.Context) (remote.EventContext, error) {
	return post[remote.EventContext](ctx, a.s, "/api/v0/admin/event-context", nil)
}

func (a *adminService) GetExperimenter(ctx context.Context, id int64) (*remote.Experimenter, error) {
	return post[*remote.Experimenter](ctx, a.s, "/api/v0/admin/experimenter", models.ObjectRequest{Kind: remote.KindExperimenter, ID: id})
}

func (a *adminService) LookupExperimenters(ctx context.Context) ([]*remote.Experimenter, error) {
	resp, err := post[models.ExperimentersResponse](ctx, a.s, "/api/v0/admin/experimenters", nil)
	return resp.Experimenters, err
}

func (a *adminService) LookupGroups(ctx context.Context) ([]*remote.ExperimenterGroup, error) {
	resp, err := post[models.GroupsResponse](ctx, a.s, "/api/v0/admin/groups", nil)
	return resp.Groups, err
}

func (a *adminService) UpdateSelf(ctx context.Context, exp *remote.Experimenter) error {
	_, err := post[struct{}](ctx, a.s, "/api/v0/admin/update-self", exp)
	return err
}

func (a *adminService) ChangePassword(ctx context.Context, newPassword string) error {
	_, err := post[struct{}](ctx, a.s, "/api/v0/admin/password", models.PasswordRequest{Password: newPassword})
	return err
}

type repositoryService struct{ s *httpSession }

func (r *repositoryService) GetFreeSpace(ctx context.Context) (int64, error) {
	resp, err := post[models.SpaceResponse](ctx, r.s, "/api/v0/repository/free", nil)
	return resp.Bytes, err
}

func (r *repositoryService) GetUsedSpace(ctx context.Context) (int64, error) {
	resp, err := post[models.SpaceResponse](ctx, r.s, "/api/v0/repository/used", nil)
	return resp.Bytes, err
}
