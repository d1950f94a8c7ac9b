// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package remote

import "fmt"

// Kind names a server object type. Values match the model class names used
// on the wire.
type Kind string

const (
	KindProject              Kind = "Project"
	KindDataset              Kind = "Dataset"
	KindImage                Kind = "Image"
	KindPixels               Kind = "Pixels"
	KindExperimenter         Kind = "Experimenter"
	KindExperimenterGroup    Kind = "ExperimenterGroup"
	KindGroupExperimenterMap Kind = "GroupExperimenterMap"
	KindScreen               Kind = "Screen"
	KindPlate                Kind = "Plate"
	KindWell                 Kind = "Well"

	KindCommentAnnotation Kind = "CommentAnnotation"
	KindTagAnnotation     Kind = "TagAnnotation"
	KindURLAnnotation     Kind = "UrlAnnotation"
	KindLongAnnotation    Kind = "LongAnnotation"
	KindFileAnnotation    Kind = "FileAnnotation"
	KindOriginalFile      Kind = "OriginalFile"

	KindProjectDatasetLink    Kind = "ProjectDatasetLink"
	KindDatasetImageLink      Kind = "DatasetImageLink"
	KindScreenPlateLink       Kind = "ScreenPlateLink"
	KindProjectAnnotationLink Kind = "ProjectAnnotationLink"
	KindDatasetAnnotationLink Kind = "DatasetAnnotationLink"
	KindImageAnnotationLink   Kind = "ImageAnnotationLink"
	KindScreenAnnotationLink  Kind = "ScreenAnnotationLink"
	KindPlateAnnotationLink   Kind = "PlateAnnotationLink"
)

// Collection properties accepted by ContainerService.GetCollectionCount.
const (
	PropertyDatasetLinks    = "datasetLinks"
	PropertyImageLinks      = "imageLinks"
	PropertyPlateLinks      = "plateLinks"
	PropertyAnnotationLinks = "annotationLinks"
)

// RatingNamespace marks LongAnnotations that hold a user rating.
const RatingNamespace = "openmicroscopy.org/omero/insight/rating"

var annotationLinkKinds = map[Kind]Kind{
	KindProject: KindProjectAnnotationLink,
	KindDataset: KindDatasetAnnotationLink,
	KindImage:   KindImageAnnotationLink,
	KindScreen:  KindScreenAnnotationLink,
	KindPlate:   KindPlateAnnotationLink,
}

// AnnotationLinkKind returns the link kind joining annotations to objects of
// the given kind. ok is false when the kind cannot be annotated.
func AnnotationLinkKind(parent Kind) (Kind, bool) {
	k, ok := annotationLinkKinds[parent]
	return k, ok
}

// IsLink reports whether k is one of the link kinds.
func (k Kind) IsLink() bool {
	switch k {
	case KindProjectDatasetLink, KindDatasetImageLink, KindScreenPlateLink:
		return true
	}
	for _, lk := range annotationLinkKinds {
		if lk == k {
			return true
		}
	}
	return false
}

// IsAnnotation reports whether k is an annotation kind.
func (k Kind) IsAnnotation() bool {
	switch k {
	case KindCommentAnnotation, KindTagAnnotation, KindURLAnnotation,
		KindLongAnnotation, KindFileAnnotation:
		return true
	}
	return false
}

// New allocates an empty object of the given kind.
func New(k Kind) (Object, error) {
	switch k {
	case KindProject:
		return &Project{}, nil
	case KindDataset:
		return &Dataset{}, nil
	case KindImage:
		return &Image{}, nil
	case KindPixels:
		return &Pixels{}, nil
	case KindExperimenter:
		return &Experimenter{}, nil
	case KindExperimenterGroup:
		return &ExperimenterGroup{}, nil
	case KindGroupExperimenterMap:
		return &GroupExperimenterMap{}, nil
	case KindScreen:
		return &Screen{}, nil
	case KindPlate:
		return &Plate{}, nil
	case KindWell:
		return &Well{}, nil
	case KindCommentAnnotation:
		return &CommentAnnotation{}, nil
	case KindTagAnnotation:
		return &TagAnnotation{}, nil
	case KindURLAnnotation:
		return &URLAnnotation{}, nil
	case KindLongAnnotation:
		return &LongAnnotation{}, nil
	case KindFileAnnotation:
		return &FileAnnotation{}, nil
	case KindOriginalFile:
		return &OriginalFile{}, nil
	case KindProjectDatasetLink:
		return &ProjectDatasetLink{}, nil
	case KindDatasetImageLink:
		return &DatasetImageLink{}, nil
	case KindScreenPlateLink:
		return &ScreenPlateLink{}, nil
	}
	for parent, lk := range annotationLinkKinds {
		if lk == k {
			return &AnnotationLink{ParentKind: parent}, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(k))
}
