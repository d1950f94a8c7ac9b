// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backend

import (
	"context"

	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/ome/openmicroscopy-sub022/internal/store"
)

type queryService struct {
	s *Session
}

func (q *queryService) Get(ctx context.Context, kind remote.Kind, id int64) (remote.Object, error) {
	obj, err := q.Find(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, remote.Validation("no %s with id %d", kind, id)
	}
	return obj, nil
}

func (q *queryService) Find(ctx context.Context, kind remote.Kind, id int64) (remote.Object, error) {
	if err := q.s.check(); err != nil {
		return nil, err
	}
	if _, err := remote.New(kind); err != nil {
		return nil, remote.APIUsage("%v", err)
	}
	d := q.s.dao()

	if kind.IsLink() {
		links, err := d.links(ctx, string(kind), store.LinkFilter{IDs: []int64{id}})
		if err != nil || len(links) == 0 {
			return nil, err
		}
		objs, err := buildLinks(ctx, d, kind, links)
		if err != nil || len(objs) == 0 {
			return nil, err
		}
		return objs[0], nil
	}

	obj, err := d.object(ctx, kind, id)
	if err != nil || obj == nil {
		return nil, err
	}
	if err := loadRelated(ctx, d, obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// loadRelated fills the collections a single-object lookup returns loaded.
func loadRelated(ctx context.Context, d dao, obj remote.Object) error {
	switch o := obj.(type) {
	case *remote.Image:
		pixels, err := d.pixelsOf(ctx, []int64{o.ID})
		if err != nil {
			return err
		}
		o.Pixels = remote.Loaded(pixels[o.ID]...)
	case *remote.Experimenter:
		groups, err := groupsOf(ctx, d, o.ID)
		if err != nil {
			return err
		}
		o.Groups = remote.Loaded(groups...)
	case *remote.ExperimenterGroup:
		ids, err := d.childIDs(ctx, linkGroupMember, []int64{o.ID})
		if err != nil {
			return err
		}
		members, err := typed[*remote.Experimenter](ctx, d, remote.KindExperimenter, store.ObjectFilter{IDs: ids})
		if err != nil {
			return err
		}
		o.Experimenters = remote.Loaded(members...)
	}
	return nil
}

func groupsOf(ctx context.Context, d dao, experimenterID int64) ([]*remote.ExperimenterGroup, error) {
	ids, err := d.parentIDs(ctx, linkGroupMember, []int64{experimenterID})
	if err != nil {
		return nil, err
	}
	return typed[*remote.ExperimenterGroup](ctx, d, remote.KindExperimenterGroup, store.ObjectFilter{IDs: ids})
}

func (q *queryService) FindAll(ctx context.Context, kind remote.Kind, filter remote.Filter) ([]remote.Object, error) {
	if err := q.s.check(); err != nil {
		return nil, err
	}
	if _, err := remote.New(kind); err != nil {
		return nil, remote.APIUsage("%v", err)
	}
	if filter.Limit < 0 {
		return nil, remote.APIUsage("negative limit %d", filter.Limit)
	}
	d := q.s.dao()

	if kind.IsLink() {
		links, err := d.links(ctx, string(kind), store.LinkFilter{IDs: filter.IDs, OwnerID: filter.OwnerID})
		if err != nil {
			return nil, err
		}
		return buildLinks(ctx, d, kind, truncate(links, filter.Limit))
	}

	f := store.ObjectFilter{Kind: string(kind), OwnerID: filter.OwnerID, Name: filter.Name}
	if len(filter.IDs) > 0 {
		f.IDs = filter.IDs
	}
	if filter.GroupID > 0 {
		f.GroupIDs = []int64{filter.GroupID}
	}
	if filter.Namespace == "" && filter.Limit > 0 {
		f.Limit = uint64(filter.Limit)
	}
	objs, err := d.objects(ctx, f)
	if err != nil {
		return nil, err
	}

	if filter.Namespace != "" {
		kept := objs[:0]
		for _, o := range objs {
			if a, ok := o.(remote.Annotation); ok && a.GetNamespace() == filter.Namespace {
				kept = append(kept, o)
			}
		}
		objs = truncate(kept, filter.Limit)
	}
	return objs, nil
}

func (q *queryService) FindLinks(ctx context.Context, linkKind remote.Kind, filter remote.LinkFilter) ([]remote.Object, error) {
	if err := q.s.check(); err != nil {
		return nil, err
	}
	if !linkKind.IsLink() {
		return nil, remote.APIUsage("%s is not a link kind", linkKind)
	}
	d := q.s.dao()

	links, err := d.links(ctx, string(linkKind), store.LinkFilter{
		ParentIDs: filter.ParentIDs,
		ChildIDs:  filter.ChildIDs,
		OwnerID:   filter.OwnerID,
	})
	if err != nil {
		return nil, err
	}
	return buildLinks(ctx, d, linkKind, links)
}

// buildLinks turns stored links into link objects. Links whose ends no
// longer exist are skipped.
func buildLinks(ctx context.Context, d dao, kind remote.Kind, links []store.Link) ([]remote.Object, error) {
	out := make([]remote.Object, 0, len(links))
	if len(links) == 0 {
		return out, nil
	}

	switch kind {
	case remote.KindProjectDatasetLink:
		parents, children, err := linkEnds[*remote.Project, *remote.Dataset](ctx, d, remote.KindProject, remote.KindDataset, links)
		if err != nil {
			return nil, err
		}
		for _, l := range links {
			if p, c := parents[l.ParentID], children[l.ChildID]; p != nil && c != nil {
				out = append(out, &remote.ProjectDatasetLink{Base: linkBase(l), Parent: p, Child: c})
			}
		}
	case remote.KindDatasetImageLink:
		parents, children, err := linkEnds[*remote.Dataset, *remote.Image](ctx, d, remote.KindDataset, remote.KindImage, links)
		if err != nil {
			return nil, err
		}
		for _, l := range links {
			if p, c := parents[l.ParentID], children[l.ChildID]; p != nil && c != nil {
				out = append(out, &remote.DatasetImageLink{Base: linkBase(l), Parent: p, Child: c})
			}
		}
	case remote.KindScreenPlateLink:
		parents, children, err := linkEnds[*remote.Screen, *remote.Plate](ctx, d, remote.KindScreen, remote.KindPlate, links)
		if err != nil {
			return nil, err
		}
		for _, l := range links {
			if p, c := parents[l.ParentID], children[l.ChildID]; p != nil && c != nil {
				out = append(out, &remote.ScreenPlateLink{Base: linkBase(l), Parent: p, Child: c})
			}
		}
	default:
		proto, err := remote.New(kind)
		if err != nil {
			return nil, remote.APIUsage("%v", err)
		}
		al, ok := proto.(*remote.AnnotationLink)
		if !ok {
			return nil, remote.APIUsage("%s is not a link kind", kind)
		}
		parents, err := d.objects(ctx, store.ObjectFilter{Kind: string(al.ParentKind), IDs: parentsOf(links)})
		if err != nil {
			return nil, err
		}
		byID := index(parents)
		anns, err := annotations(ctx, d, childrenOf(links))
		if err != nil {
			return nil, err
		}
		for _, l := range links {
			p, c := byID[l.ParentID], anns[l.ChildID]
			if p == nil || c == nil {
				continue
			}
			out = append(out, &remote.AnnotationLink{Base: linkBase(l), ParentKind: al.ParentKind, Parent: p, Child: c})
		}
	}
	return out, nil
}

func linkEnds[P, C remote.Object](ctx context.Context, d dao, pk, ck remote.Kind, links []store.Link) (map[int64]P, map[int64]C, error) {
	parents, err := typed[P](ctx, d, pk, store.ObjectFilter{IDs: parentsOf(links)})
	if err != nil {
		return nil, nil, err
	}
	children, err := typed[C](ctx, d, ck, store.ObjectFilter{IDs: childrenOf(links)})
	if err != nil {
		return nil, nil, err
	}
	return index(parents), index(children), nil
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
