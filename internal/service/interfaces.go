// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"image"
	"time"

	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/ome/openmicroscopy-sub022/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/servicemock/service_mock.go -package=servicemock

// DataService browses and edits container hierarchies. Hierarchy roots are
// projects, datasets, screens or plates.
type DataService interface {
	// LoadContainerHierarchy returns the trees rooted at rootIDs, or at every
	// root owned by userID when rootIDs is nil. Images are loaded at the
	// bottom of the trees when withLeaves is set.
	LoadContainerHierarchy(ctx context.Context, rootKind remote.Kind, rootIDs []int64, withLeaves bool, userID int64) ([]models.DataObject, error)

	// LoadTopContainerHierarchy returns the roots of rootKind owned by userID
	// with their direct children and without images.
	LoadTopContainerHierarchy(ctx context.Context, rootKind remote.Kind, userID int64) ([]models.DataObject, error)

	// FindContainerHierarchy returns the trees of rootKind containing the
	// given images.
	FindContainerHierarchy(ctx context.Context, rootKind remote.Kind, imageIDs []int64, userID int64) ([]models.DataObject, error)

	// GetImages returns the images contained in the given nodes.
	GetImages(ctx context.Context, nodeKind remote.Kind, nodeIDs []int64, userID int64) ([]*models.ImageData, error)

	// GetExperimenterImages returns every image owned by userID.
	GetExperimenterImages(ctx context.Context, userID int64) ([]*models.ImageData, error)

	// GetImagesPeriod returns the images owned by userID and created within
	// the window. At least one bound is required.
	GetImagesPeriod(ctx context.Context, start, end *time.Time, userID int64) ([]*models.ImageData, error)

	// GetCollectionCount counts the property collection of each root.
	GetCollectionCount(ctx context.Context, rootKind remote.Kind, property string, rootIDs []int64) (map[int64]int64, error)

	// CreateDataObject saves child. When parent is not nil the child is
	// linked to it in the same call.
	CreateDataObject(ctx context.Context, child, parent models.DataObject) (models.DataObject, error)

	// UpdateDataObject saves the scalar fields of object. It returns nil
	// without error when the object no longer exists.
	UpdateDataObject(ctx context.Context, object models.DataObject) (models.DataObject, error)

	// RemoveDataObject deletes child when parent is nil; otherwise it only
	// deletes the link from parent to child.
	RemoveDataObject(ctx context.Context, child, parent models.DataObject) error
	RemoveDataObjects(ctx context.Context, children []models.DataObject, parent models.DataObject) error

	// AddExistingObjects links saved children to parent. Children already
	// linked are skipped.
	AddExistingObjects(ctx context.Context, parent models.DataObject, children []models.DataObject) error

	// CutAndPaste moves children from one container to another of the same
	// kind.
	CutAndPaste(ctx context.Context, children []models.DataObject, from, to models.DataObject) error

	// Classify tags every image with every tag in one batched create.
	Classify(ctx context.Context, images, tags []models.DataObject) error
	// Declassify removes the tag links between images and tags in one
	// batched delete.
	Declassify(ctx context.Context, images, tags []models.DataObject) error
}

// ImageService reads pixels and drives the rendering engines.
type ImageService interface {
	GetThumbnail(ctx context.Context, pixelsID int64, sizeX, sizeY int) (image.Image, error)
	GetThumbnailByLongestSide(ctx context.Context, pixelsID int64, size int) (image.Image, error)
	GetThumbnailSet(ctx context.Context, pixelsIDs []int64, size int) (map[int64]image.Image, error)
	RenderImage(ctx context.Context, pixelsID int64, plane remote.PlaneDef) (image.Image, error)

	LoadRenderingSettings(ctx context.Context, pixelsID int64) (*models.RenderingSettings, error)
	SetChannelWindow(ctx context.Context, pixelsID int64, channel int, start, end float64) error
	SetChannelActive(ctx context.Context, pixelsID int64, channel int, active bool) error
	SetDefaultPlane(ctx context.Context, pixelsID int64, z, t int) error
	ResetRenderingSettings(ctx context.Context, pixelsID int64) error
	SaveRenderingSettings(ctx context.Context, pixelsID int64) error
	ShutDownRenderingEngine(ctx context.Context, pixelsID int64)

	LoadPlane(ctx context.Context, pixelsID int64, z, c, t int) ([]byte, error)
	LoadPixels(ctx context.Context, pixelsID int64) (*models.PixelsData, error)
}

// MetadataService reads and writes annotations.
type MetadataService interface {
	// LoadAnnotations returns the annotations of one object. Nil userIDs
	// means any annotator.
	LoadAnnotations(ctx context.Context, kind remote.Kind, id int64, userIDs []int64) ([]models.AnnotationData, error)
	LoadAnnotationsFor(ctx context.Context, kind remote.Kind, ids []int64, userIDs []int64) (map[int64][]models.AnnotationData, error)
	LoadTextualAnnotations(ctx context.Context, kind remote.Kind, id int64, userIDs []int64) ([]*models.TextualAnnotationData, error)
	LoadTags(ctx context.Context, kind remote.Kind, id int64, userIDs []int64) ([]*models.TagAnnotationData, error)
	LoadURLs(ctx context.Context, kind remote.Kind, id int64, userIDs []int64) ([]*models.URLAnnotationData, error)
	LoadRatings(ctx context.Context, kind remote.Kind, id int64, userIDs []int64) ([]*models.RatingAnnotationData, error)
	CountAnnotations(ctx context.Context, kind remote.Kind, ids []int64) (map[int64]int64, error)

	// CreateAnnotationFor links annotation to target, saving the annotation
	// first when it is new. Only images and datasets can be annotated.
	CreateAnnotationFor(ctx context.Context, target models.DataObject, annotation models.AnnotationData) (models.DataObject, error)
	// UpdateAnnotationFor saves a changed annotation and makes sure it is
	// linked to target.
	UpdateAnnotationFor(ctx context.Context, target models.DataObject, annotation models.AnnotationData) (models.DataObject, error)
	// RemoveAnnotation deletes the link between target and annotation.
	RemoveAnnotation(ctx context.Context, target models.DataObject, annotation models.AnnotationData) error
	// Rate sets the rating of the current user on target.
	Rate(ctx context.Context, target models.DataObject, rating int) (models.DataObject, error)
}

// Space selects the repository figure reported by AdminService.GetSpace.
type Space int

const (
	SpaceUsed Space = iota + 1
	SpaceFree
)

// AdminService manages the current user.
type AdminService interface {
	// ChangePassword returns false without contacting the server when
	// oldPassword does not match the password used to log in.
	ChangePassword(ctx context.Context, oldPassword, newPassword string) (bool, error)
	UpdateExperimenter(ctx context.Context, exp *models.ExperimenterData) (*models.ExperimenterData, error)
	GetSpace(ctx context.Context, which Space) (int64, error)
	LoadGroups(ctx context.Context) ([]*models.GroupData, error)
	LoadExperimenters(ctx context.Context) ([]*models.ExperimenterData, error)
	CurrentUser() *models.ExperimenterData
}
