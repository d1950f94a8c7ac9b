// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/ome/openmicroscopy-sub022/internal/gateway"
	"github.com/ome/openmicroscopy-sub022/internal/logger"
	"github.com/ome/openmicroscopy-sub022/internal/mapper"
	"github.com/ome/openmicroscopy-sub022/internal/registry"
	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/ome/openmicroscopy-sub022/models"
)

type metadataService struct {
	gateway  gateway.Gateway
	registry *registry.Registry
	logger   *logger.Logger
}

func NewMetadataService(gw gateway.Gateway, reg *registry.Registry, logger *logger.Logger) MetadataService {
	return &metadataService{gateway: gw, registry: reg, logger: logger.Component("metadata_service")}
}

// checkAnnotationTarget accepts saved images and datasets only.
func checkAnnotationTarget(target models.DataObject) error {
	if missing(target) {
		return gateway.InvalidArguments("no object to annotate")
	}
	switch target.(type) {
	case *models.ImageData, *models.DatasetData:
	default:
		return gateway.InvalidArguments("%s cannot be annotated here", target.Object().Kind())
	}
	if !saved(target) {
		return gateway.InvalidArguments("cannot annotate an unsaved %s", target.Object().Kind())
	}
	return nil
}

func (s *metadataService) LoadAnnotations(ctx context.Context, kind remote.Kind, id int64, userIDs []int64) ([]models.AnnotationData, error) {
	if id <= 0 {
		return nil, gateway.InvalidArguments("invalid id %d", id)
	}
	byID, err := s.gateway.FindAnnotations(ctx, kind, []int64{id}, userIDs, nil)
	if err != nil {
		return nil, err
	}
	return byID[id], nil
}

func (s *metadataService) LoadAnnotationsFor(ctx context.Context, kind remote.Kind, ids []int64, userIDs []int64) (map[int64][]models.AnnotationData, error) {
	return s.gateway.FindAnnotations(ctx, kind, ids, userIDs, nil)
}

// loadAnnotationsOf returns the annotations of one object that are a T.
func loadAnnotationsOf[T models.AnnotationData](ctx context.Context, s *metadataService, kind remote.Kind, id int64, userIDs []int64) ([]T, error) {
	all, err := s.LoadAnnotations(ctx, kind, id, userIDs)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(all))
	for _, a := range all {
		if t, ok := a.(T); ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *metadataService) LoadTextualAnnotations(ctx context.Context, kind remote.Kind, id int64, userIDs []int64) ([]*models.TextualAnnotationData, error) {
	return loadAnnotationsOf[*models.TextualAnnotationData](ctx, s, kind, id, userIDs)
}

func (s *metadataService) LoadTags(ctx context.Context, kind remote.Kind, id int64, userIDs []int64) ([]*models.TagAnnotationData, error) {
	return loadAnnotationsOf[*models.TagAnnotationData](ctx, s, kind, id, userIDs)
}

func (s *metadataService) LoadURLs(ctx context.Context, kind remote.Kind, id int64, userIDs []int64) ([]*models.URLAnnotationData, error) {
	return loadAnnotationsOf[*models.URLAnnotationData](ctx, s, kind, id, userIDs)
}

func (s *metadataService) LoadRatings(ctx context.Context, kind remote.Kind, id int64, userIDs []int64) ([]*models.RatingAnnotationData, error) {
	return loadAnnotationsOf[*models.RatingAnnotationData](ctx, s, kind, id, userIDs)
}

func (s *metadataService) CountAnnotations(ctx context.Context, kind remote.Kind, ids []int64) (map[int64]int64, error) {
	return s.gateway.GetCollectionCount(ctx, kind, remote.PropertyAnnotationLinks, ids, nil)
}

func (s *metadataService) CreateAnnotationFor(ctx context.Context, target models.DataObject, annotation models.AnnotationData) (models.DataObject, error) {
	if err := checkAnnotationTarget(target); err != nil {
		return nil, err
	}
	if missing(annotation) {
		return nil, gateway.InvalidArguments("no annotation")
	}

	current, err := s.gateway.GetObject(ctx, target.Object().Kind(), target.ID())
	if err != nil {
		return nil, err
	}
	link, err := newLink(current, annotation.Annotation())
	if err != nil {
		return nil, err
	}
	if _, err := s.gateway.CreateObject(ctx, link); err != nil {
		return nil, err
	}
	return toData(current)
}

func (s *metadataService) UpdateAnnotationFor(ctx context.Context, target models.DataObject, annotation models.AnnotationData) (models.DataObject, error) {
	if err := checkAnnotationTarget(target); err != nil {
		return nil, err
	}
	if !saved(annotation) {
		return nil, gateway.InvalidArguments("no saved annotation to update")
	}

	current, err := s.gateway.GetObject(ctx, target.Object().Kind(), target.ID())
	if err != nil {
		return nil, err
	}

	changes := annotation.Annotation()
	stored, err := s.gateway.GetObject(ctx, changes.Kind(), annotation.ID())
	if err != nil {
		return nil, err
	}
	patch, err := mapper.PrepareUpdate(stored, changes)
	if err != nil {
		return nil, gateway.Classify("cannot prepare the update", err)
	}
	updated, err := s.gateway.UpdateObject(ctx, patch)
	if err != nil {
		return nil, err
	}

	lk, err := linkKind(current.Kind(), updated.Kind())
	if err != nil {
		return nil, err
	}
	existing, err := s.gateway.FindLink(ctx, lk, current.GetID(), updated.GetID())
	if err != nil {
		return nil, err
	}
	if existing == nil {
		link, err := newLink(current, updated)
		if err != nil {
			return nil, err
		}
		if _, err := s.gateway.CreateObject(ctx, link); err != nil {
			return nil, err
		}
	}
	return toData(current)
}

func (s *metadataService) RemoveAnnotation(ctx context.Context, target models.DataObject, annotation models.AnnotationData) error {
	if missing(target) || !saved(annotation) {
		return gateway.InvalidArguments("no target or no saved annotation")
	}
	lk, err := linkKind(target.Object().Kind(), annotation.Annotation().Kind())
	if err != nil {
		return err
	}
	link, err := s.gateway.FindLink(ctx, lk, target.ID(), annotation.ID())
	if err != nil || link == nil {
		return err
	}
	return s.gateway.DeleteObject(ctx, link)
}

func (s *metadataService) Rate(ctx context.Context, target models.DataObject, rating int) (models.DataObject, error) {
	if err := checkAnnotationTarget(target); err != nil {
		return nil, err
	}
	newRating, err := models.NewRatingAnnotationData(rating)
	if err != nil {
		return nil, gateway.InvalidArguments("%v", err)
	}
	user := s.registry.CurrentUser()
	if user == nil {
		return nil, errNoCurrentUser
	}

	ratings, err := s.LoadRatings(ctx, target.Object().Kind(), target.ID(), []int64{user.ID()})
	if err != nil {
		return nil, err
	}
	if len(ratings) == 0 {
		return s.CreateAnnotationFor(ctx, target, newRating)
	}

	mine := ratings[0]
	if err := mine.SetRating(rating); err != nil {
		return nil, gateway.InvalidArguments("%v", err)
	}
	return s.UpdateAnnotationFor(ctx, target, mine)
}
