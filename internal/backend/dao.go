// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backend

import (
	"context"
	"errors"

	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/ome/openmicroscopy-sub022/internal/store"
)

// dao reads and writes remote objects through one store, either the shared
// one or a transaction.
type dao struct {
	st store.Store
}

// objects treats an empty, non-nil id list as matching nothing.
func (d dao) objects(ctx context.Context, f store.ObjectFilter) ([]remote.Object, error) {
	if (f.IDs != nil && len(f.IDs) == 0) || (f.ParentIDs != nil && len(f.ParentIDs) == 0) {
		return []remote.Object{}, nil
	}
	rows, err := d.st.FindObjects(ctx, f)
	if err != nil {
		return nil, storeFault(err)
	}
	out := make([]remote.Object, 0, len(rows))
	for _, row := range rows {
		obj, err := fromRow(row)
		if err != nil {
			return nil, remote.ServerError("corrupt %s %d: %v", row.Kind, row.ID, err)
		}
		out = append(out, obj)
	}
	return out, nil
}

// object returns nil without error when no object matches.
func (d dao) object(ctx context.Context, kind remote.Kind, id int64) (remote.Object, error) {
	if id <= 0 {
		return nil, nil
	}
	objs, err := d.objects(ctx, store.ObjectFilter{Kind: string(kind), IDs: []int64{id}})
	if err != nil || len(objs) == 0 {
		return nil, err
	}
	return objs[0], nil
}

func (d dao) mustObject(ctx context.Context, kind remote.Kind, id int64) (remote.Object, error) {
	obj, err := d.object(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, remote.Validation("no %s with id %d", kind, id)
	}
	return obj, nil
}

// typed loads objects of one kind and asserts them to T.
func typed[T remote.Object](ctx context.Context, d dao, kind remote.Kind, f store.ObjectFilter) ([]T, error) {
	f.Kind = string(kind)
	objs, err := d.objects(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(objs))
	for _, o := range objs {
		if t, ok := o.(T); ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (d dao) links(ctx context.Context, kind string, f store.LinkFilter) ([]store.Link, error) {
	f.Kind = kind
	links, err := d.st.FindLinks(ctx, f)
	if err != nil {
		return nil, storeFault(err)
	}
	return links, nil
}

func (d dao) childIDs(ctx context.Context, kind string, parentIDs []int64) ([]int64, error) {
	if len(parentIDs) == 0 {
		return []int64{}, nil
	}
	links, err := d.links(ctx, kind, store.LinkFilter{ParentIDs: parentIDs})
	if err != nil {
		return nil, err
	}
	return uniq(links, func(l store.Link) int64 { return l.ChildID }), nil
}

func (d dao) parentIDs(ctx context.Context, kind string, childIDs []int64) ([]int64, error) {
	if len(childIDs) == 0 {
		return []int64{}, nil
	}
	links, err := d.links(ctx, kind, store.LinkFilter{ChildIDs: childIDs})
	if err != nil {
		return nil, err
	}
	return uniq(links, func(l store.Link) int64 { return l.ParentID }), nil
}

// pixelsOf returns the pixels sets of the images keyed by image id.
func (d dao) pixelsOf(ctx context.Context, imageIDs []int64) (map[int64][]*remote.Pixels, error) {
	out := make(map[int64][]*remote.Pixels)
	if len(imageIDs) == 0 {
		return out, nil
	}
	pxs, err := typed[*remote.Pixels](ctx, d, remote.KindPixels, store.ObjectFilter{ParentIDs: imageIDs})
	if err != nil {
		return nil, err
	}
	for _, px := range pxs {
		out[px.ImageID] = append(out[px.ImageID], px)
	}
	return out, nil
}

func applyOptions(f *store.ObjectFilter, opts *remote.Options) {
	if opts == nil {
		return
	}
	if opts.ExperimenterID > 0 {
		f.OwnerID = opts.ExperimenterID
	}
	if opts.GroupID > 0 {
		f.GroupIDs = []int64{opts.GroupID}
	}
}

// storeFault turns a store error into the fault a client would see.
func storeFault(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return remote.Validation("%v", err)
	case errors.Is(err, store.ErrAlreadyExists):
		return remote.Validation("duplicate object: %v", err)
	default:
		return remote.ServerError("%v", err)
	}
}

func objectIDs[T remote.Object](objs []T) []int64 {
	ids := make([]int64, 0, len(objs))
	for _, o := range objs {
		ids = append(ids, o.GetID())
	}
	return ids
}

func uniq[T any](items []T, key func(T) int64) []int64 {
	seen := make(map[int64]struct{}, len(items))
	out := make([]int64, 0, len(items))
	for _, it := range items {
		k := key(it)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
