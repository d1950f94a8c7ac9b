// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/ome/openmicroscopy-sub022/internal/gateway"
	"github.com/ome/openmicroscopy-sub022/internal/logger"
	"github.com/ome/openmicroscopy-sub022/internal/mapper"
	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/ome/openmicroscopy-sub022/models"
)

type dataService struct {
	gateway gateway.Gateway
	logger  *logger.Logger
}

func NewDataService(gw gateway.Gateway, logger *logger.Logger) DataService {
	return &dataService{gateway: gw, logger: logger.Component("data_service")}
}

func checkContainer(kind remote.Kind) error {
	switch kind {
	case remote.KindProject, remote.KindDataset, remote.KindScreen, remote.KindPlate:
		return nil
	}
	return gateway.InvalidArguments("%q is not a container", kind)
}

func (s *dataService) LoadContainerHierarchy(ctx context.Context, rootKind remote.Kind, rootIDs []int64, withLeaves bool, userID int64) ([]models.DataObject, error) {
	if err := checkContainer(rootKind); err != nil {
		return nil, err
	}
	opts := remote.NewOptions().Exp(userID).CountFields(remote.PropertyAnnotationLinks)
	if withLeaves {
		opts.Leaves()
	}
	return s.gateway.LoadContainerHierarchy(ctx, rootKind, rootIDs, opts)
}

func (s *dataService) LoadTopContainerHierarchy(ctx context.Context, rootKind remote.Kind, userID int64) ([]models.DataObject, error) {
	switch rootKind {
	case remote.KindProject, remote.KindScreen:
	default:
		return nil, gateway.InvalidArguments("%q is not a top-level container", rootKind)
	}
	opts := remote.NewOptions().Exp(userID)
	return s.gateway.LoadContainerHierarchy(ctx, rootKind, nil, opts)
}

func (s *dataService) FindContainerHierarchy(ctx context.Context, rootKind remote.Kind, imageIDs []int64, userID int64) ([]models.DataObject, error) {
	if err := checkContainer(rootKind); err != nil {
		return nil, err
	}
	opts := remote.NewOptions().Exp(userID)
	return s.gateway.FindContainerHierarchy(ctx, rootKind, imageIDs, opts)
}

func (s *dataService) GetImages(ctx context.Context, nodeKind remote.Kind, nodeIDs []int64, userID int64) ([]*models.ImageData, error) {
	if len(nodeIDs) == 0 {
		return nil, gateway.InvalidArguments("no node ids")
	}
	opts := remote.NewOptions().Exp(userID)
	return s.gateway.GetImages(ctx, nodeKind, nodeIDs, opts)
}

func (s *dataService) GetExperimenterImages(ctx context.Context, userID int64) ([]*models.ImageData, error) {
	return s.gateway.GetUserImages(ctx, remote.NewOptions().Exp(userID))
}

func (s *dataService) GetImagesPeriod(ctx context.Context, start, end *time.Time, userID int64) ([]*models.ImageData, error) {
	if start == nil && end == nil {
		return nil, gateway.InvalidArguments("no time window")
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, gateway.InvalidArguments("window ends before it starts")
	}
	opts := remote.NewOptions().Exp(userID).Timeframe(start, end)
	return s.gateway.GetUserImages(ctx, opts)
}

func (s *dataService) GetCollectionCount(ctx context.Context, rootKind remote.Kind, property string, rootIDs []int64) (map[int64]int64, error) {
	switch property {
	case remote.PropertyDatasetLinks, remote.PropertyImageLinks, remote.PropertyPlateLinks, remote.PropertyAnnotationLinks:
	default:
		return nil, gateway.InvalidArguments("cannot count %q", property)
	}
	return s.gateway.GetCollectionCount(ctx, rootKind, property, rootIDs, nil)
}

func (s *dataService) CreateDataObject(ctx context.Context, child, parent models.DataObject) (models.DataObject, error) {
	if missing(child) {
		return nil, gateway.InvalidArguments("no object to create")
	}
	if saved(child) {
		return nil, gateway.InvalidArguments("%s %d is already saved", child.Object().Kind(), child.ID())
	}

	if missing(parent) {
		obj, err := s.gateway.CreateObject(ctx, child.Object())
		if err != nil {
			return nil, err
		}
		return toData(obj)
	}

	if !saved(parent) {
		return nil, gateway.InvalidArguments("the parent must be saved first")
	}
	link, err := newLink(parent.Object(), child.Object())
	if err != nil {
		return nil, err
	}
	savedLink, err := s.gateway.CreateObject(ctx, link)
	if err != nil {
		return nil, err
	}
	return toData(linkChild(savedLink))
}

func (s *dataService) UpdateDataObject(ctx context.Context, object models.DataObject) (models.DataObject, error) {
	if !saved(object) {
		return nil, gateway.InvalidArguments("no saved object to update")
	}
	changes := object.Object()

	current, err := s.gateway.FindObject(ctx, changes.Kind(), object.ID())
	if err != nil {
		return nil, err
	}
	if current == nil {
		s.logger.Debug().Str("kind", string(changes.Kind())).Int64("id", object.ID()).Msg("object to update is gone")
		return nil, nil
	}

	patch, err := mapper.PrepareUpdate(current, changes)
	if err != nil {
		return nil, gateway.Classify("cannot prepare the update", err)
	}
	updated, err := s.gateway.UpdateObject(ctx, patch)
	if err != nil {
		return nil, err
	}
	return toData(updated)
}

func (s *dataService) RemoveDataObject(ctx context.Context, child, parent models.DataObject) error {
	if missing(child) {
		return gateway.InvalidArguments("no object to remove")
	}
	return s.RemoveDataObjects(ctx, []models.DataObject{child}, parent)
}

func (s *dataService) RemoveDataObjects(ctx context.Context, children []models.DataObject, parent models.DataObject) error {
	if len(children) == 0 {
		return nil
	}
	for _, c := range children {
		if !saved(c) {
			return gateway.InvalidArguments("cannot remove an unsaved object")
		}
	}

	if missing(parent) {
		return s.deleteObjects(ctx, children)
	}
	if !saved(parent) {
		return gateway.InvalidArguments("the parent must be saved")
	}
	links, err := s.findLinks(ctx, parent, children)
	if err != nil {
		return err
	}
	return s.gateway.DeleteObjects(ctx, links)
}

// deleteObjects deletes the current server copy of each object. Objects
// already gone are skipped.
func (s *dataService) deleteObjects(ctx context.Context, objects []models.DataObject) error {
	current := make([]remote.Object, 0, len(objects))
	for _, o := range objects {
		obj, err := s.gateway.FindObject(ctx, o.Object().Kind(), o.ID())
		if err != nil {
			return err
		}
		if obj != nil {
			current = append(current, obj)
		}
	}
	return s.gateway.DeleteObjects(ctx, current)
}

// findLinks returns the existing links from parent to children.
func (s *dataService) findLinks(ctx context.Context, parent models.DataObject, children []models.DataObject) ([]remote.Object, error) {
	byKind := make(map[remote.Kind][]int64)
	var order []remote.Kind
	for _, c := range children {
		k, err := linkKind(parent.Object().Kind(), c.Object().Kind())
		if err != nil {
			return nil, err
		}
		if _, ok := byKind[k]; !ok {
			order = append(order, k)
		}
		byKind[k] = append(byKind[k], c.ID())
	}

	var links []remote.Object
	for _, k := range order {
		found, err := s.gateway.FindLinks(ctx, k, remote.LinkFilter{
			ParentIDs: []int64{parent.ID()},
			ChildIDs:  byKind[k],
		})
		if err != nil {
			return nil, err
		}
		links = append(links, found...)
	}
	return links, nil
}

func (s *dataService) AddExistingObjects(ctx context.Context, parent models.DataObject, children []models.DataObject) error {
	if !saved(parent) {
		return gateway.InvalidArguments("no saved parent")
	}
	if len(children) == 0 {
		return gateway.InvalidArguments("no children to add")
	}
	for _, c := range children {
		if !saved(c) {
			return gateway.InvalidArguments("cannot add an unsaved object")
		}
	}

	existing, err := s.findLinks(ctx, parent, children)
	if err != nil {
		return err
	}
	linked := make(map[int64]bool, len(existing))
	for _, l := range existing {
		linked[remote.ChildID(l)] = true
	}

	links := make([]remote.Object, 0, len(children))
	for _, c := range children {
		if linked[c.ID()] {
			continue
		}
		link, err := newLink(parent.Object(), c.Object())
		if err != nil {
			return err
		}
		links = append(links, link)
		linked[c.ID()] = true
	}
	if len(links) == 0 {
		return nil
	}
	_, err = s.gateway.CreateObjects(ctx, links)
	return err
}

func (s *dataService) CutAndPaste(ctx context.Context, children []models.DataObject, from, to models.DataObject) error {
	if !saved(from) || !saved(to) {
		return gateway.InvalidArguments("both containers must be saved")
	}
	if from.Object().Kind() != to.Object().Kind() {
		return gateway.InvalidArguments("cannot move from %s to %s", from.Object().Kind(), to.Object().Kind())
	}
	if len(children) == 0 {
		return nil
	}
	if err := s.RemoveDataObjects(ctx, children, from); err != nil {
		return err
	}
	return s.AddExistingObjects(ctx, to, children)
}

func (s *dataService) Classify(ctx context.Context, images, tags []models.DataObject) error {
	imgs, tagList, err := checkClassification(images, tags)
	if err != nil {
		return err
	}

	links := make([]remote.Object, 0, len(imgs)*len(tagList))
	for _, img := range imgs {
		for _, tag := range tagList {
			link, err := newLink(img.Object(), tag.Object())
			if err != nil {
				return err
			}
			links = append(links, link)
		}
	}
	_, err = s.gateway.CreateObjects(ctx, links)
	return err
}

func (s *dataService) Declassify(ctx context.Context, images, tags []models.DataObject) error {
	imgs, tagList, err := checkClassification(images, tags)
	if err != nil {
		return err
	}

	links, err := s.gateway.FindLinks(ctx, remote.KindImageAnnotationLink, remote.LinkFilter{
		ParentIDs: ids(imgs),
		ChildIDs:  ids(tagList),
	})
	if err != nil {
		return err
	}
	return s.gateway.DeleteObjects(ctx, links)
}

// checkClassification checks that images holds saved images only and tags
// saved tags only.
func checkClassification(images, tags []models.DataObject) ([]*models.ImageData, []*models.TagAnnotationData, error) {
	if len(images) == 0 || len(tags) == 0 {
		return nil, nil, gateway.InvalidArguments("no images or no tags")
	}
	imgs, err := mapper.Typed[*models.ImageData](images)
	if err != nil {
		return nil, nil, gateway.Classify("images", err)
	}
	tagList, err := mapper.Typed[*models.TagAnnotationData](tags)
	if err != nil {
		return nil, nil, gateway.Classify("tags", err)
	}
	for _, d := range images {
		if !saved(d) {
			return nil, nil, gateway.InvalidArguments("unsaved image")
		}
	}
	for _, d := range tags {
		if !saved(d) {
			return nil, nil, gateway.InvalidArguments("unsaved tag")
		}
	}
	return imgs, tagList, nil
}

func toData(obj remote.Object) (models.DataObject, error) {
	d, err := mapper.ToDataObject(obj)
	if err != nil {
		return nil, gateway.Classify("cannot convert the result", err)
	}
	return d, nil
}
