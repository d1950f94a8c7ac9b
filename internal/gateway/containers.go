// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"context"
	"time"

	"github.com/ome/openmicroscopy-sub022/internal/mapper"
	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/ome/openmicroscopy-sub022/models"
)

func checkRootKind(rootKind remote.Kind) error {
	switch rootKind {
	case remote.KindProject, remote.KindDataset, remote.KindScreen, remote.KindPlate:
		return nil
	}
	return InvalidArguments("%q cannot be the root of a hierarchy", rootKind)
}

func (g *omeroGateway) LoadContainerHierarchy(ctx context.Context, rootKind remote.Kind, rootIDs []int64, opts *remote.Options) (out []models.DataObject, err error) {
	defer g.track("load_container_hierarchy", time.Now(), &err)

	if err := checkRootKind(rootKind); err != nil {
		return nil, err
	}
	sess, err := g.sess()
	if err != nil {
		return nil, err
	}

	roots, err := sess.ContainerService().LoadContainerHierarchy(ctx, rootKind, rootIDs, opts)
	if err != nil {
		return nil, Classify("cannot load the hierarchy", err)
	}
	out, err = mapper.ToDataObjects(roots)
	return out, Classify("cannot convert the hierarchy", err)
}

func (g *omeroGateway) FindContainerHierarchy(ctx context.Context, rootKind remote.Kind, imageIDs []int64, opts *remote.Options) (out []models.DataObject, err error) {
	defer g.track("find_container_hierarchy", time.Now(), &err)

	if err := checkRootKind(rootKind); err != nil {
		return nil, err
	}
	if len(imageIDs) == 0 {
		return []models.DataObject{}, nil
	}
	sess, err := g.sess()
	if err != nil {
		return nil, err
	}

	roots, err := sess.ContainerService().FindContainerHierarchies(ctx, rootKind, imageIDs, opts)
	if err != nil {
		return nil, Classify("cannot find the hierarchy", err)
	}
	out, err = mapper.ToDataObjects(roots)
	return out, Classify("cannot convert the hierarchy", err)
}

func (g *omeroGateway) FindAnnotations(ctx context.Context, kind remote.Kind, ids, annotatorIDs []int64, opts *remote.Options) (out map[int64][]models.AnnotationData, err error) {
	defer g.track("find_annotations", time.Now(), &err)

	if _, ok := remote.AnnotationLinkKind(kind); !ok {
		return nil, InvalidArguments("%q cannot be annotated", kind)
	}
	if len(ids) == 0 {
		return map[int64][]models.AnnotationData{}, nil
	}
	sess, err := g.sess()
	if err != nil {
		return nil, err
	}

	anns, err := sess.ContainerService().FindAnnotations(ctx, kind, ids, annotatorIDs, opts)
	if err != nil {
		return nil, Classify("cannot find the annotations", err)
	}
	out, err = mapper.ToAnnotationMap(anns)
	return out, Classify("cannot convert the annotations", err)
}

func (g *omeroGateway) GetImages(ctx context.Context, rootKind remote.Kind, rootIDs []int64, opts *remote.Options) (out []*models.ImageData, err error) {
	defer g.track("get_images", time.Now(), &err)

	switch rootKind {
	case remote.KindProject, remote.KindDataset, remote.KindImage, remote.KindScreen, remote.KindPlate:
	default:
		return nil, InvalidArguments("cannot load images of %q", rootKind)
	}
	sess, err := g.sess()
	if err != nil {
		return nil, err
	}

	images, err := sess.ContainerService().GetImages(ctx, rootKind, rootIDs, opts)
	if err != nil {
		return nil, Classify("cannot load the images", err)
	}
	return convertAll[*models.ImageData]("cannot convert the images", images)
}

func (g *omeroGateway) GetUserImages(ctx context.Context, opts *remote.Options) (out []*models.ImageData, err error) {
	defer g.track("get_user_images", time.Now(), &err)

	sess, err := g.sess()
	if err != nil {
		return nil, err
	}

	images, err := sess.ContainerService().GetUserImages(ctx, opts)
	if err != nil {
		return nil, Classify("cannot load the user images", err)
	}
	return convertAll[*models.ImageData]("cannot convert the images", images)
}

func (g *omeroGateway) GetCollectionCount(ctx context.Context, kind remote.Kind, property string, ids []int64, opts *remote.Options) (out map[int64]int64, err error) {
	defer g.track("get_collection_count", time.Now(), &err)

	if property == "" {
		return nil, InvalidArguments("no collection property")
	}
	if len(ids) == 0 {
		return map[int64]int64{}, nil
	}
	sess, err := g.sess()
	if err != nil {
		return nil, err
	}

	out, err = sess.ContainerService().GetCollectionCount(ctx, kind, property, ids, opts)
	return out, Classify("cannot count "+property, err)
}
