// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package mapper converts server objects into client data objects and back.
package mapper

import (
	"fmt"
	"reflect"

	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/ome/openmicroscopy-sub022/models"
)

// ToDataObject wraps o in the data object matching its kind. Link objects,
// group memberships and bare files have no data object and fail with
// ErrUnknownType.
func ToDataObject(o remote.Object) (models.DataObject, error) {
	if isNil(o) {
		return nil, ErrNilObject
	}
	switch v := o.(type) {
	case *remote.Project:
		return models.NewProjectDataFrom(v), nil
	case *remote.Dataset:
		return models.NewDatasetDataFrom(v), nil
	case *remote.Image:
		return models.NewImageDataFrom(v), nil
	case *remote.Pixels:
		return models.NewPixelsDataFrom(v), nil
	case *remote.Experimenter:
		return models.NewExperimenterDataFrom(v), nil
	case *remote.ExperimenterGroup:
		return models.NewGroupDataFrom(v), nil
	case *remote.Screen:
		return models.NewScreenDataFrom(v), nil
	case *remote.Plate:
		return models.NewPlateDataFrom(v), nil
	case *remote.Well:
		return models.NewWellDataFrom(v), nil
	case remote.Annotation:
		return ToAnnotation(v)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownType, o.Kind())
}

// ToAnnotation wraps a in the matching annotation data object.
func ToAnnotation(a remote.Annotation) (models.AnnotationData, error) {
	if isNil(a) {
		return nil, ErrNilObject
	}
	switch v := a.(type) {
	case *remote.CommentAnnotation:
		return models.NewTextualAnnotationDataFrom(v), nil
	case *remote.TagAnnotation:
		return models.NewTagAnnotationDataFrom(v), nil
	case *remote.URLAnnotation:
		return models.NewURLAnnotationDataFrom(v), nil
	case *remote.LongAnnotation:
		return models.NewRatingAnnotationDataFrom(v), nil
	case *remote.FileAnnotation:
		return models.NewFileAnnotationDataFrom(v), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownType, a.Kind())
}

// ToDataObjects converts every element of objs. The first failure aborts
// the conversion.
func ToDataObjects[T remote.Object](objs []T) ([]models.DataObject, error) {
	out := make([]models.DataObject, 0, len(objs))
	for _, o := range objs {
		d, err := ToDataObject(o)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// ToAnnotations converts a list of annotations.
func ToAnnotations(anns []remote.Annotation) ([]models.AnnotationData, error) {
	out := make([]models.AnnotationData, 0, len(anns))
	for _, a := range anns {
		d, err := ToAnnotation(a)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// ToAnnotationMap converts annotations keyed by annotated object id.
func ToAnnotationMap(m map[int64][]remote.Annotation) (map[int64][]models.AnnotationData, error) {
	out := make(map[int64][]models.AnnotationData, len(m))
	for id, anns := range m {
		d, err := ToAnnotations(anns)
		if err != nil {
			return nil, err
		}
		out[id] = d
	}
	return out, nil
}

// Convert converts a single object, or recursively the elements of a slice
// and the keys and values of a map. Values that are not objects, slices or
// maps are returned unchanged, so count results pass through as they are.
func Convert(v any) (any, error) {
	switch t := v.(type) {
	case nil:
		return nil, ErrNilObject
	case remote.Object:
		return ToDataObject(t)
	case []remote.Object:
		return ToDataObjects(t)
	case []remote.Annotation:
		return ToAnnotations(t)
	case map[int64][]remote.Annotation:
		return ToAnnotationMap(t)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		elem := rv.Type().Elem()
		if elem.Implements(objectType) {
			out := make([]models.DataObject, 0, rv.Len())
			for i := 0; i < rv.Len(); i++ {
				o, _ := rv.Index(i).Interface().(remote.Object)
				d, err := ToDataObject(o)
				if err != nil {
					return nil, err
				}
				out = append(out, d)
			}
			return out, nil
		}
		if !convertible(elem) {
			return v, nil
		}
		out := make([]any, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			d, err := convertElem(rv.Index(i))
			if err != nil {
				return nil, err
			}
			out = append(out, d)
		}
		return out, nil
	case reflect.Map:
		if !convertible(rv.Type().Key()) && !convertible(rv.Type().Elem()) {
			return v, nil
		}
		out := make(map[any]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k, err := convertElem(iter.Key())
			if err != nil {
				return nil, err
			}
			d, err := convertElem(iter.Value())
			if err != nil {
				return nil, err
			}
			out[k] = d
		}
		return out, nil
	}
	return v, nil
}

var objectType = reflect.TypeOf((*remote.Object)(nil)).Elem()

// convertible reports whether values of t may hold objects.
func convertible(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Slice, reflect.Map:
		return true
	}
	return t.Implements(objectType)
}

func convertElem(v reflect.Value) (any, error) {
	if v.Kind() == reflect.Interface && v.IsNil() {
		return nil, nil
	}
	if !convertible(v.Type()) {
		return v.Interface(), nil
	}
	return Convert(v.Interface())
}

// Typed checks that every element of objs is a T and returns them as such.
// An empty input yields an empty result.
func Typed[T models.DataObject](objs []models.DataObject) ([]T, error) {
	out := make([]T, 0, len(objs))
	for i, o := range objs {
		t, ok := o.(T)
		if !ok {
			var want T
			return nil, fmt.Errorf("%w: element %d is %T, want %T", ErrNotHomogeneous, i, o, want)
		}
		out = append(out, t)
	}
	return out, nil
}

func isNil(o any) bool {
	if o == nil {
		return true
	}
	v := reflect.ValueOf(o)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
