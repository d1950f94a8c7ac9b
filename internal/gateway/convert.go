// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"github.com/ome/openmicroscopy-sub022/internal/mapper"
	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/ome/openmicroscopy-sub022/models"
)

// convertOne maps o to the data object type T.
func convertOne[T models.DataObject](msg string, o remote.Object) (T, error) {
	var zero T
	d, err := mapper.ToDataObject(o)
	if err != nil {
		return zero, Classify(msg, err)
	}
	t, ok := d.(T)
	if !ok {
		return zero, InvalidArguments("%s: unexpected %T", msg, d)
	}
	return t, nil
}

// convertAll maps objs to data objects of type T.
func convertAll[T models.DataObject, O remote.Object](msg string, objs []O) ([]T, error) {
	data, err := mapper.ToDataObjects(objs)
	if err != nil {
		return nil, Classify(msg, err)
	}
	out, err := mapper.Typed[T](data)
	if err != nil {
		return nil, Classify(msg, err)
	}
	return out, nil
}
