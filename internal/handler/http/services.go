// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"

	"github.com/ome/openmicroscopy-sub022/internal/backend"
	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/ome/openmicroscopy-sub022/models"
)

func objectsBody[T remote.Object](objs []T, err error) (models.ObjectsBody, error) {
	if err != nil {
		return models.ObjectsBody{}, err
	}
	envs, err := remote.EncodeAll(objs)
	if err != nil {
		return models.ObjectsBody{}, remote.ServerError("%v", err)
	}
	return models.ObjectsBody{Objects: envs}, nil
}

func objectBody(obj remote.Object, err error) (models.ObjectBody, error) {
	if err != nil || obj == nil {
		return models.ObjectBody{}, err
	}
	env, err := remote.Encode(obj)
	if err != nil {
		return models.ObjectBody{}, remote.ServerError("%v", err)
	}
	return models.ObjectBody{Object: &env}, nil
}

// decodeObjects turns request envelopes into objects. Unknown types are
// the caller's fault.
func decodeObjects(envs []remote.Envelope) ([]remote.Object, error) {
	objs, err := remote.DecodeAll(envs)
	if err != nil {
		return nil, remote.APIUsage("%v", err)
	}
	return objs, nil
}

func (h *Handler) loadContainerHierarchy(ctx context.Context, s *backend.Session, req models.HierarchyRequest) (models.ObjectsBody, error) {
	return objectsBody(s.ContainerService().LoadContainerHierarchy(ctx, req.RootKind, req.IDs, req.Options))
}

func (h *Handler) findContainerHierarchies(ctx context.Context, s *backend.Session, req models.HierarchyRequest) (models.ObjectsBody, error) {
	return objectsBody(s.ContainerService().FindContainerHierarchies(ctx, req.RootKind, req.IDs, req.Options))
}

func (h *Handler) findAnnotations(ctx context.Context, s *backend.Session, req models.HierarchyRequest) (models.AnnotationsResponse, error) {
	found, err := s.ContainerService().FindAnnotations(ctx, req.RootKind, req.IDs, req.AnnotatorIDs, req.Options)
	if err != nil {
		return models.AnnotationsResponse{}, err
	}
	resp := models.AnnotationsResponse{Annotations: make(map[int64][]remote.Envelope, len(found))}
	for id, anns := range found {
		envs, err := remote.EncodeAll(anns)
		if err != nil {
			return models.AnnotationsResponse{}, remote.ServerError("%v", err)
		}
		resp.Annotations[id] = envs
	}
	return resp, nil
}

func (h *Handler) getImages(ctx context.Context, s *backend.Session, req models.HierarchyRequest) (models.ImagesResponse, error) {
	images, err := s.ContainerService().GetImages(ctx, req.RootKind, req.IDs, req.Options)
	return models.ImagesResponse{Images: images}, err
}

func (h *Handler) getUserImages(ctx context.Context, s *backend.Session, req models.HierarchyRequest) (models.ImagesResponse, error) {
	images, err := s.ContainerService().GetUserImages(ctx, req.Options)
	return models.ImagesResponse{Images: images}, err
}

func (h *Handler) getCollectionCount(ctx context.Context, s *backend.Session, req models.CountRequest) (models.CountResponse, error) {
	counts, err := s.ContainerService().GetCollectionCount(ctx, req.Kind, req.Property, req.IDs, req.Options)
	return models.CountResponse{Counts: counts}, err
}

func (h *Handler) get(ctx context.Context, s *backend.Session, req models.ObjectRequest) (models.ObjectBody, error) {
	return objectBody(s.QueryService().Get(ctx, req.Kind, req.ID))
}

func (h *Handler) find(ctx context.Context, s *backend.Session, req models.ObjectRequest) (models.ObjectBody, error) {
	return objectBody(s.QueryService().Find(ctx, req.Kind, req.ID))
}

func (h *Handler) findAll(ctx context.Context, s *backend.Session, req models.FindAllRequest) (models.ObjectsBody, error) {
	return objectsBody(s.QueryService().FindAll(ctx, req.Kind, req.Filter))
}

func (h *Handler) findLinks(ctx context.Context, s *backend.Session, req models.FindLinksRequest) (models.ObjectsBody, error) {
	return objectsBody(s.QueryService().FindLinks(ctx, req.Kind, req.Filter))
}

func (h *Handler) save(ctx context.Context, s *backend.Session, req models.ObjectBody) (models.ObjectBody, error) {
	if req.Object == nil {
		return models.ObjectBody{}, remote.APIUsage("no object to save")
	}
	obj, err := remote.Decode(*req.Object)
	if err != nil {
		return models.ObjectBody{}, remote.APIUsage("%v", err)
	}
	return objectBody(s.UpdateService().SaveAndReturnObject(ctx, obj))
}

func (h *Handler) saveArray(ctx context.Context, s *backend.Session, req models.ObjectsBody) (models.ObjectsBody, error) {
	objs, err := decodeObjects(req.Objects)
	if err != nil {
		return models.ObjectsBody{}, err
	}
	return objectsBody(s.UpdateService().SaveAndReturnArray(ctx, objs))
}

func (h *Handler) delete(ctx context.Context, s *backend.Session, req models.ObjectsBody) (empty, error) {
	objs, err := decodeObjects(req.Objects)
	if err != nil {
		return empty{}, err
	}
	return empty{}, s.UpdateService().DeleteObjects(ctx, objs)
}

func (h *Handler) getEventContext(ctx context.Context, s *backend.Session, _ empty) (remote.EventContext, error) {
	return s.AdminService().GetEventContext(ctx)
}

func (h *Handler) getExperimenter(ctx context.Context, s *backend.Session, req models.ObjectRequest) (*remote.Experimenter, error) {
	return s.AdminService().GetExperimenter(ctx, req.ID)
}

func (h *Handler) lookupExperimenters(ctx context.Context, s *backend.Session, _ empty) (models.ExperimentersResponse, error) {
	exps, err := s.AdminService().LookupExperimenters(ctx)
	return models.ExperimentersResponse{Experimenters: exps}, err
}

func (h *Handler) lookupGroups(ctx context.Context, s *backend.Session, _ empty) (models.GroupsResponse, error) {
	groups, err := s.AdminService().LookupGroups(ctx)
	return models.GroupsResponse{Groups: groups}, err
}

func (h *Handler) updateSelf(ctx context.Context, s *backend.Session, exp remote.Experimenter) (empty, error) {
	return empty{}, s.AdminService().UpdateSelf(ctx, &exp)
}

func (h *Handler) changePassword(ctx context.Context, s *backend.Session, req models.PasswordRequest) (empty, error) {
	return empty{}, s.AdminService().ChangePassword(ctx, req.Password)
}

func (h *Handler) getUsedSpace(ctx context.Context, s *backend.Session, _ empty) (models.SpaceResponse, error) {
	n, err := s.RepositoryService().GetUsedSpace(ctx)
	return models.SpaceResponse{Bytes: n}, err
}

func (h *Handler) getFreeSpace(ctx context.Context, s *backend.Session, _ empty) (models.SpaceResponse, error) {
	n, err := s.RepositoryService().GetFreeSpace(ctx)
	return models.SpaceResponse{Bytes: n}, err
}
