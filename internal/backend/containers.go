// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backend

import (
	"context"
	"slices"

	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/ome/openmicroscopy-sub022/internal/store"
)

type containerService struct {
	s *Session
}

func (c *containerService) LoadContainerHierarchy(ctx context.Context, rootKind remote.Kind, rootIDs []int64, opts *remote.Options) ([]remote.Object, error) {
	if err := c.s.check(); err != nil {
		return nil, err
	}
	if rootIDs != nil && len(rootIDs) == 0 {
		return []remote.Object{}, nil
	}
	d := c.s.dao()
	f := store.ObjectFilter{IDs: rootIDs}
	applyOptions(&f, opts)

	switch rootKind {
	case remote.KindProject:
		projects, err := typed[*remote.Project](ctx, d, rootKind, f)
		if err != nil {
			return nil, err
		}
		for _, p := range projects {
			if err := c.fillProject(ctx, d, p, opts); err != nil {
				return nil, err
			}
		}
		if err := countAnnotations(ctx, d, projects, opts, func(p *remote.Project, n *int64) { p.AnnotationLinksCount = n }); err != nil {
			return nil, err
		}
		return objects(projects), nil
	case remote.KindDataset:
		datasets, err := typed[*remote.Dataset](ctx, d, rootKind, f)
		if err != nil {
			return nil, err
		}
		for _, ds := range datasets {
			if err := c.fillDataset(ctx, d, ds, opts); err != nil {
				return nil, err
			}
		}
		if err := countAnnotations(ctx, d, datasets, opts, func(ds *remote.Dataset, n *int64) { ds.AnnotationLinksCount = n }); err != nil {
			return nil, err
		}
		return objects(datasets), nil
	case remote.KindScreen:
		screens, err := typed[*remote.Screen](ctx, d, rootKind, f)
		if err != nil {
			return nil, err
		}
		for _, sc := range screens {
			if err := c.fillScreen(ctx, d, sc, opts); err != nil {
				return nil, err
			}
		}
		if err := countAnnotations(ctx, d, screens, opts, func(sc *remote.Screen, n *int64) { sc.AnnotationLinksCount = n }); err != nil {
			return nil, err
		}
		return objects(screens), nil
	case remote.KindPlate:
		plates, err := typed[*remote.Plate](ctx, d, rootKind, f)
		if err != nil {
			return nil, err
		}
		for _, p := range plates {
			if err := c.fillPlate(ctx, d, p, opts); err != nil {
				return nil, err
			}
		}
		if err := countAnnotations(ctx, d, plates, opts, func(p *remote.Plate, n *int64) { p.AnnotationLinksCount = n }); err != nil {
			return nil, err
		}
		return objects(plates), nil
	}
	return nil, remote.APIUsage("%s cannot be the root of a hierarchy", rootKind)
}

func (c *containerService) fillProject(ctx context.Context, d dao, p *remote.Project, opts *remote.Options) error {
	links, err := d.links(ctx, string(remote.KindProjectDatasetLink), store.LinkFilter{ParentIDs: []int64{p.ID}})
	if err != nil {
		return err
	}
	datasets, err := typed[*remote.Dataset](ctx, d, remote.KindDataset, store.ObjectFilter{IDs: childrenOf(links)})
	if err != nil {
		return err
	}
	byID := index(datasets)

	var out []*remote.ProjectDatasetLink
	for _, l := range links {
		ds, ok := byID[l.ChildID]
		if !ok {
			continue
		}
		out = append(out, &remote.ProjectDatasetLink{Base: linkBase(l), Parent: p, Child: ds})
	}
	for _, ds := range datasets {
		if err := c.fillDataset(ctx, d, ds, opts); err != nil {
			return err
		}
	}
	p.DatasetLinks = remote.Loaded(out...)
	p.DatasetLinksCount = remote.Int64(int64(len(out)))
	return nil
}

func (c *containerService) fillDataset(ctx context.Context, d dao, ds *remote.Dataset, opts *remote.Options) error {
	links, err := d.links(ctx, string(remote.KindDatasetImageLink), store.LinkFilter{ParentIDs: []int64{ds.ID}})
	if err != nil {
		return err
	}
	ds.ImageLinksCount = remote.Int64(int64(len(links)))
	if opts == nil || !opts.IncludeLeaves {
		return nil
	}

	images, err := findImages(ctx, d, store.ObjectFilter{IDs: childrenOf(links)}, opts)
	if err != nil {
		return err
	}
	byID := index(images)
	var out []*remote.DatasetImageLink
	for _, l := range links {
		if img, ok := byID[l.ChildID]; ok {
			out = append(out, &remote.DatasetImageLink{Base: linkBase(l), Parent: ds, Child: img})
		}
	}
	ds.ImageLinks = remote.Loaded(out...)
	return nil
}

func (c *containerService) fillScreen(ctx context.Context, d dao, sc *remote.Screen, opts *remote.Options) error {
	links, err := d.links(ctx, string(remote.KindScreenPlateLink), store.LinkFilter{ParentIDs: []int64{sc.ID}})
	if err != nil {
		return err
	}
	plates, err := typed[*remote.Plate](ctx, d, remote.KindPlate, store.ObjectFilter{IDs: childrenOf(links)})
	if err != nil {
		return err
	}
	byID := index(plates)

	var out []*remote.ScreenPlateLink
	for _, l := range links {
		if p, ok := byID[l.ChildID]; ok {
			out = append(out, &remote.ScreenPlateLink{Base: linkBase(l), Parent: sc, Child: p})
		}
	}
	for _, p := range plates {
		if err := c.fillPlate(ctx, d, p, opts); err != nil {
			return err
		}
	}
	sc.PlateLinks = remote.Loaded(out...)
	sc.PlateLinksCount = remote.Int64(int64(len(out)))
	return nil
}

func (c *containerService) fillPlate(ctx context.Context, d dao, p *remote.Plate, opts *remote.Options) error {
	wells, err := typed[*remote.Well](ctx, d, remote.KindWell, store.ObjectFilter{ParentIDs: []int64{p.ID}})
	if err != nil {
		return err
	}
	if opts != nil && opts.IncludeLeaves {
		for _, w := range wells {
			ids, err := d.childIDs(ctx, linkWellSample, []int64{w.ID})
			if err != nil {
				return err
			}
			images, err := findImages(ctx, d, store.ObjectFilter{IDs: ids}, opts)
			if err != nil {
				return err
			}
			w.Images = remote.Loaded(images...)
		}
	}
	p.Wells = remote.Loaded(wells...)
	return nil
}

// countAnnotations fills the annotation counts of roots when requested.
func countAnnotations[T remote.Object](ctx context.Context, d dao, roots []T, opts *remote.Options, set func(T, *int64)) error {
	if !opts.Counted(remote.PropertyAnnotationLinks) || len(roots) == 0 {
		return nil
	}
	lk, ok := remote.AnnotationLinkKind(roots[0].Kind())
	if !ok {
		return nil
	}
	counts, err := d.st.CountLinks(ctx, store.LinkFilter{Kind: string(lk), ParentIDs: objectIDs(roots)})
	if err != nil {
		return storeFault(err)
	}
	for _, r := range roots {
		set(r, remote.Int64(counts[r.GetID()]))
	}
	return nil
}

func (c *containerService) FindContainerHierarchies(ctx context.Context, rootKind remote.Kind, imageIDs []int64, opts *remote.Options) ([]remote.Object, error) {
	if err := c.s.check(); err != nil {
		return nil, err
	}
	if rootKind != remote.KindProject && rootKind != remote.KindDataset {
		return nil, remote.APIUsage("cannot find %s hierarchies", rootKind)
	}
	if len(imageIDs) == 0 {
		return []remote.Object{}, nil
	}
	d := c.s.dao()

	images, err := findImages(ctx, d, store.ObjectFilter{IDs: imageIDs}, opts)
	if err != nil || len(images) == 0 {
		return []remote.Object{}, err
	}
	imgByID := index(images)

	diLinks, err := d.links(ctx, string(remote.KindDatasetImageLink), store.LinkFilter{ChildIDs: objectIDs(images)})
	if err != nil {
		return nil, err
	}
	datasets, err := typed[*remote.Dataset](ctx, d, remote.KindDataset, store.ObjectFilter{IDs: parentsOf(diLinks)})
	if err != nil {
		return nil, err
	}
	dsByID := index(datasets)

	placed := make(map[int64]bool)
	for _, l := range diLinks {
		ds, img := dsByID[l.ParentID], imgByID[l.ChildID]
		if ds == nil || img == nil {
			continue
		}
		ds.ImageLinks.Add(&remote.DatasetImageLink{Base: linkBase(l), Parent: ds, Child: img})
		placed[img.ID] = true
	}
	var orphans []remote.Object
	for _, img := range images {
		if !placed[img.ID] {
			orphans = append(orphans, img)
		}
	}

	if rootKind == remote.KindDataset {
		return append(objects(datasets), orphans...), nil
	}

	pdLinks, err := d.links(ctx, string(remote.KindProjectDatasetLink), store.LinkFilter{ChildIDs: objectIDs(datasets)})
	if err != nil {
		return nil, err
	}
	projects, err := typed[*remote.Project](ctx, d, remote.KindProject, store.ObjectFilter{IDs: parentsOf(pdLinks)})
	if err != nil {
		return nil, err
	}
	pByID := index(projects)

	inProject := make(map[int64]bool)
	for _, l := range pdLinks {
		p, ds := pByID[l.ParentID], dsByID[l.ChildID]
		if p == nil || ds == nil {
			continue
		}
		p.DatasetLinks.Add(&remote.ProjectDatasetLink{Base: linkBase(l), Parent: p, Child: ds})
		inProject[ds.ID] = true
	}
	out := objects(projects)
	for _, ds := range datasets {
		if !inProject[ds.ID] {
			out = append(out, ds)
		}
	}
	return append(out, orphans...), nil
}

func (c *containerService) FindAnnotations(ctx context.Context, rootKind remote.Kind, rootIDs []int64, annotatorIDs []int64, opts *remote.Options) (map[int64][]remote.Annotation, error) {
	if err := c.s.check(); err != nil {
		return nil, err
	}
	lk, ok := remote.AnnotationLinkKind(rootKind)
	if !ok {
		return nil, remote.APIUsage("%s cannot be annotated", rootKind)
	}
	out := make(map[int64][]remote.Annotation)
	if len(rootIDs) == 0 {
		return out, nil
	}
	d := c.s.dao()

	links, err := d.links(ctx, string(lk), store.LinkFilter{ParentIDs: rootIDs})
	if err != nil {
		return nil, err
	}
	if len(annotatorIDs) > 0 {
		links = slices.DeleteFunc(links, func(l store.Link) bool {
			return !slices.Contains(annotatorIDs, l.OwnerID)
		})
	}
	anns, err := annotations(ctx, d, childrenOf(links))
	if err != nil {
		return nil, err
	}
	for _, l := range links {
		if a, ok := anns[l.ChildID]; ok {
			out[l.ParentID] = append(out[l.ParentID], a)
		}
	}
	return out, nil
}

func (c *containerService) GetImages(ctx context.Context, rootKind remote.Kind, rootIDs []int64, opts *remote.Options) ([]*remote.Image, error) {
	if err := c.s.check(); err != nil {
		return nil, err
	}
	d := c.s.dao()

	ids, err := imagesUnder(ctx, d, rootKind, rootIDs)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*remote.Image{}, nil
	}
	return findImages(ctx, d, store.ObjectFilter{IDs: ids}, opts)
}

func imagesUnder(ctx context.Context, d dao, kind remote.Kind, ids []int64) ([]int64, error) {
	switch kind {
	case remote.KindImage:
		return ids, nil
	case remote.KindDataset:
		return d.childIDs(ctx, string(remote.KindDatasetImageLink), ids)
	case remote.KindProject:
		datasets, err := d.childIDs(ctx, string(remote.KindProjectDatasetLink), ids)
		if err != nil {
			return nil, err
		}
		return imagesUnder(ctx, d, remote.KindDataset, datasets)
	case remote.KindWell:
		return d.childIDs(ctx, linkWellSample, ids)
	case remote.KindPlate:
		if len(ids) == 0 {
			return nil, nil
		}
		rows, err := d.st.FindObjects(ctx, store.ObjectFilter{Kind: string(remote.KindWell), ParentIDs: ids})
		if err != nil {
			return nil, storeFault(err)
		}
		wells := make([]int64, 0, len(rows))
		for _, r := range rows {
			wells = append(wells, r.ID)
		}
		return imagesUnder(ctx, d, remote.KindWell, wells)
	case remote.KindScreen:
		plates, err := d.childIDs(ctx, string(remote.KindScreenPlateLink), ids)
		if err != nil {
			return nil, err
		}
		return imagesUnder(ctx, d, remote.KindPlate, plates)
	}
	return nil, remote.APIUsage("cannot collect images under %s", kind)
}

func (c *containerService) GetUserImages(ctx context.Context, opts *remote.Options) ([]*remote.Image, error) {
	if err := c.s.check(); err != nil {
		return nil, err
	}
	f := store.ObjectFilter{OwnerID: c.s.ec.UserID}
	if opts != nil {
		f.CreatedFrom, f.CreatedTo = opts.Start, opts.End
	}
	return findImages(ctx, c.s.dao(), f, opts)
}

func (c *containerService) GetCollectionCount(ctx context.Context, kind remote.Kind, property string, ids []int64, opts *remote.Options) (map[int64]int64, error) {
	if err := c.s.check(); err != nil {
		return nil, err
	}

	var lk remote.Kind
	switch {
	case kind == remote.KindProject && property == remote.PropertyDatasetLinks:
		lk = remote.KindProjectDatasetLink
	case kind == remote.KindDataset && property == remote.PropertyImageLinks:
		lk = remote.KindDatasetImageLink
	case kind == remote.KindScreen && property == remote.PropertyPlateLinks:
		lk = remote.KindScreenPlateLink
	case property == remote.PropertyAnnotationLinks:
		k, ok := remote.AnnotationLinkKind(kind)
		if !ok {
			return nil, remote.APIUsage("%s cannot be annotated", kind)
		}
		lk = k
	default:
		return nil, remote.APIUsage("%s has no collection %q", kind, property)
	}

	out := make(map[int64]int64, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	f := store.LinkFilter{Kind: string(lk), ParentIDs: ids}
	if opts != nil {
		f.OwnerID = opts.ExperimenterID
	}
	counts, err := c.s.dao().st.CountLinks(ctx, f)
	if err != nil {
		return nil, storeFault(err)
	}
	for _, id := range ids {
		out[id] = counts[id]
	}
	return out, nil
}

// findImages loads images with their pixels, honouring the owner, group
// and time window of opts.
func findImages(ctx context.Context, d dao, f store.ObjectFilter, opts *remote.Options) ([]*remote.Image, error) {
	if f.IDs != nil && len(f.IDs) == 0 {
		return []*remote.Image{}, nil
	}
	applyOptions(&f, opts)
	imgs, err := typed[*remote.Image](ctx, d, remote.KindImage, f)
	if err != nil {
		return nil, err
	}
	imgs = slices.DeleteFunc(imgs, func(img *remote.Image) bool {
		return !opts.InWindow(img.Details.CreatedAt)
	})

	pixels, err := d.pixelsOf(ctx, objectIDs(imgs))
	if err != nil {
		return nil, err
	}
	for _, img := range imgs {
		img.Pixels = remote.Loaded(pixels[img.ID]...)
	}
	err = countAnnotations(ctx, d, imgs, opts, func(img *remote.Image, n *int64) { img.AnnotationLinksCount = n })
	if err != nil {
		return nil, err
	}
	return imgs, nil
}

// annotations loads annotations of any kind keyed by id.
func annotations(ctx context.Context, d dao, ids []int64) (map[int64]remote.Annotation, error) {
	out := make(map[int64]remote.Annotation, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	objs, err := d.objects(ctx, store.ObjectFilter{IDs: ids})
	if err != nil {
		return nil, err
	}
	for _, o := range objs {
		if a, ok := o.(remote.Annotation); ok {
			out[a.GetID()] = a
		}
	}
	return out, nil
}

func linkBase(l store.Link) remote.Base {
	return remote.Base{ID: l.ID, Details: detailsOf(l.OwnerID, l.GroupID, defaultPerms, l.CreatedAt, l.CreatedAt)}
}

func childrenOf(links []store.Link) []int64 {
	return uniq(links, func(l store.Link) int64 { return l.ChildID })
}

func parentsOf(links []store.Link) []int64 {
	return uniq(links, func(l store.Link) int64 { return l.ParentID })
}

func index[T remote.Object](objs []T) map[int64]T {
	m := make(map[int64]T, len(objs))
	for _, o := range objs {
		m[o.GetID()] = o
	}
	return m
}

func objects[T remote.Object](objs []T) []remote.Object {
	out := make([]remote.Object, 0, len(objs))
	for _, o := range objs {
		out = append(out, o)
	}
	return out
}
