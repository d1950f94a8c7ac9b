// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backend

import (
	"context"

	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/ome/openmicroscopy-sub022/internal/store"
)

type updateService struct {
	s *Session
}

func (u *updateService) SaveAndReturnObject(ctx context.Context, obj remote.Object) (remote.Object, error) {
	if err := u.s.check(); err != nil {
		return nil, err
	}
	var saved remote.Object
	err := u.s.inTx(ctx, func(d dao) error {
		var err error
		saved, err = u.save(ctx, d, obj)
		return err
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (u *updateService) SaveAndReturnArray(ctx context.Context, objs []remote.Object) ([]remote.Object, error) {
	if err := u.s.check(); err != nil {
		return nil, err
	}
	out := make([]remote.Object, 0, len(objs))
	err := u.s.inTx(ctx, func(d dao) error {
		out = out[:0]
		for _, obj := range objs {
			saved, err := u.save(ctx, d, obj)
			if err != nil {
				return err
			}
			out = append(out, saved)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *updateService) DeleteObject(ctx context.Context, obj remote.Object) error {
	if err := u.s.check(); err != nil {
		return err
	}
	return u.s.inTx(ctx, func(d dao) error {
		return u.delete(ctx, d, obj)
	})
}

func (u *updateService) DeleteObjects(ctx context.Context, objs []remote.Object) error {
	if err := u.s.check(); err != nil {
		return err
	}
	return u.s.inTx(ctx, func(d dao) error {
		for _, obj := range objs {
			if err := u.delete(ctx, d, obj); err != nil {
				return err
			}
		}
		return nil
	})
}

// save persists obj and every transient object reachable through its loaded
// collections, then returns obj as stored.
func (u *updateService) save(ctx context.Context, d dao, obj remote.Object) (remote.Object, error) {
	if obj == nil {
		return nil, remote.APIUsage("nothing to save")
	}
	if obj.Kind().IsLink() {
		return u.saveLink(ctx, d, obj)
	}
	if err := validate(obj); err != nil {
		return nil, err
	}
	if err := u.checkAdminKind(obj.Kind()); err != nil {
		return nil, err
	}

	row, err := toRow(obj)
	if err != nil {
		return nil, remote.APIUsage("%v", err)
	}

	if obj.GetID() == 0 {
		if err := u.checkParent(ctx, d, obj); err != nil {
			return nil, err
		}
		if fa, ok := obj.(*remote.FileAnnotation); ok && fa.File != nil && fa.File.ID == 0 {
			if row, err = u.withSavedFile(ctx, d, fa); err != nil {
				return nil, err
			}
		}
		row.OwnerID = u.s.ec.UserID
		row.GroupID = u.s.ec.GroupID
		row.Permissions = defaultPerms
		row.CreatedAt = u.s.backend.now().UTC()
		created, err := d.st.CreateObject(ctx, row)
		if err != nil {
			return nil, storeFault(err)
		}
		row.ID = created.ID
	} else {
		current, err := d.mustObject(ctx, obj.Kind(), obj.GetID())
		if err != nil {
			return nil, err
		}
		if err := u.s.canModify(current); err != nil {
			return nil, err
		}
		cur := current.GetDetails()
		row.OwnerID, row.GroupID, row.Permissions = cur.OwnerID, cur.GroupID, cur.Permissions
		if _, err := d.st.UpdateObject(ctx, row); err != nil {
			return nil, storeFault(err)
		}
	}

	if err := u.saveNested(ctx, d, obj, row.ID); err != nil {
		return nil, err
	}

	saved, err := d.mustObject(ctx, obj.Kind(), row.ID)
	if err != nil {
		return nil, err
	}
	if err := loadRelated(ctx, d, saved); err != nil {
		return nil, err
	}
	return saved, nil
}

// withSavedFile stores the transient file of fa and returns the row of fa
// referring to it.
func (u *updateService) withSavedFile(ctx context.Context, d dao, fa *remote.FileAnnotation) (store.Object, error) {
	f, err := u.save(ctx, d, fa.File)
	if err != nil {
		return store.Object{}, err
	}
	c := *fa
	c.File = f.(*remote.OriginalFile)
	row, err := toRow(&c)
	if err != nil {
		return store.Object{}, remote.APIUsage("%v", err)
	}
	return row, nil
}

func (u *updateService) checkAdminKind(kind remote.Kind) error {
	switch kind {
	case remote.KindExperimenter, remote.KindExperimenterGroup:
		if !u.s.ec.IsAdmin {
			return remote.SecurityViolation("only administrators manage %s objects", kind)
		}
	}
	return nil
}

// checkParent makes sure a new pixels set or well hangs off an object the
// caller may change.
func (u *updateService) checkParent(ctx context.Context, d dao, obj remote.Object) error {
	var (
		kind remote.Kind
		id   int64
	)
	switch o := obj.(type) {
	case *remote.Pixels:
		kind, id = remote.KindImage, o.ImageID
	case *remote.Well:
		kind, id = remote.KindPlate, o.PlateID
	default:
		return nil
	}
	parent, err := d.mustObject(ctx, kind, id)
	if err != nil {
		return err
	}
	return u.s.canModify(parent)
}

// saveNested stores the transient members of the loaded collections of obj,
// whose id is now id.
func (u *updateService) saveNested(ctx context.Context, d dao, obj remote.Object, id int64) error {
	var pending []remote.Object
	addLinks := func(links []remote.Object) {
		for _, l := range links {
			if l.GetID() == 0 {
				pending = append(pending, l)
			}
		}
	}

	switch o := obj.(type) {
	case *remote.Project:
		for _, l := range o.DatasetLinks.Items() {
			addLinks([]remote.Object{&remote.ProjectDatasetLink{Base: l.Base, Parent: withID(o, id), Child: l.Child}})
		}
		addLinks(annotationLinks(o, id, o.AnnotationLinks.Items()))
	case *remote.Dataset:
		for _, l := range o.ImageLinks.Items() {
			addLinks([]remote.Object{&remote.DatasetImageLink{Base: l.Base, Parent: withID(o, id), Child: l.Child}})
		}
		addLinks(annotationLinks(o, id, o.AnnotationLinks.Items()))
	case *remote.Screen:
		for _, l := range o.PlateLinks.Items() {
			addLinks([]remote.Object{&remote.ScreenPlateLink{Base: l.Base, Parent: withID(o, id), Child: l.Child}})
		}
		addLinks(annotationLinks(o, id, o.AnnotationLinks.Items()))
	case *remote.Plate:
		for _, w := range o.Wells.Items() {
			if w.ID == 0 {
				c := *w
				c.PlateID = id
				pending = append(pending, &c)
			}
		}
		addLinks(annotationLinks(o, id, o.AnnotationLinks.Items()))
	case *remote.Image:
		for _, px := range o.Pixels.Items() {
			if px.ID == 0 {
				c := *px
				c.ImageID = id
				pending = append(pending, &c)
			}
		}
		addLinks(annotationLinks(o, id, o.AnnotationLinks.Items()))
	case *remote.Well:
		for _, img := range o.Images.Items() {
			if err := u.linkWellSample(ctx, d, id, img); err != nil {
				return err
			}
		}
	}

	for _, p := range pending {
		if _, err := u.save(ctx, d, p); err != nil {
			return err
		}
	}
	return nil
}

func (u *updateService) linkWellSample(ctx context.Context, d dao, wellID int64, img *remote.Image) error {
	imageID, err := u.ensure(ctx, d, img)
	if err != nil {
		return err
	}
	existing, err := d.links(ctx, linkWellSample, store.LinkFilter{ParentIDs: []int64{wellID}, ChildIDs: []int64{imageID}})
	if err != nil || len(existing) > 0 {
		return err
	}
	_, err = d.st.CreateLink(ctx, store.Link{
		Kind:      linkWellSample,
		ParentID:  wellID,
		ChildID:   imageID,
		OwnerID:   u.s.ec.UserID,
		GroupID:   u.s.ec.GroupID,
		CreatedAt: u.s.backend.now().UTC(),
	})
	return storeFault(err)
}

func annotationLinks(parent remote.Object, id int64, links []*remote.AnnotationLink) []remote.Object {
	out := make([]remote.Object, 0, len(links))
	for _, l := range links {
		c := *l
		c.ParentKind = parent.Kind()
		c.Parent = withID(parent, id)
		out = append(out, &c)
	}
	return out
}

// withID returns a shallow copy of obj carrying id.
func withID[T remote.Object](obj T, id int64) T {
	c := remote.Shallow(obj).(T)
	c.SetID(id)
	return c
}

func (u *updateService) saveLink(ctx context.Context, d dao, obj remote.Object) (remote.Object, error) {
	kind := obj.Kind()
	if obj.GetID() != 0 {
		links, err := d.links(ctx, string(kind), store.LinkFilter{IDs: []int64{obj.GetID()}})
		if err != nil {
			return nil, err
		}
		built, err := buildLinks(ctx, d, kind, links)
		if err != nil {
			return nil, err
		}
		if len(built) == 0 {
			return nil, remote.Validation("no %s with id %d", kind, obj.GetID())
		}
		return built[0], nil
	}

	parent, child := linkEndpoints(obj)
	if parent == nil || child == nil {
		return nil, remote.APIUsage("%s needs a parent and a child", kind)
	}

	parentID, err := u.ensure(ctx, d, parent)
	if err != nil {
		return nil, err
	}
	if _, isAnnotation := obj.(*remote.AnnotationLink); !isAnnotation {
		stored, err := d.mustObject(ctx, parent.Kind(), parentID)
		if err != nil {
			return nil, err
		}
		if err := u.s.canModify(stored); err != nil {
			return nil, err
		}
	}
	childID, err := u.ensure(ctx, d, child)
	if err != nil {
		return nil, err
	}

	link, err := d.st.CreateLink(ctx, store.Link{
		Kind:      string(kind),
		ParentID:  parentID,
		ChildID:   childID,
		OwnerID:   u.s.ec.UserID,
		GroupID:   u.s.ec.GroupID,
		CreatedAt: u.s.backend.now().UTC(),
	})
	if err != nil {
		return nil, storeFault(err)
	}
	built, err := buildLinks(ctx, d, kind, []store.Link{link})
	if err != nil {
		return nil, err
	}
	if len(built) == 0 {
		return nil, remote.ServerError("%s %d vanished", kind, link.ID)
	}
	return built[0], nil
}

// ensure returns the id of obj, saving it first when it is transient.
func (u *updateService) ensure(ctx context.Context, d dao, obj remote.Object) (int64, error) {
	if obj.GetID() != 0 {
		if _, err := d.mustObject(ctx, obj.Kind(), obj.GetID()); err != nil {
			return 0, err
		}
		return obj.GetID(), nil
	}
	saved, err := u.save(ctx, d, obj)
	if err != nil {
		return 0, err
	}
	return saved.GetID(), nil
}

// linkEndpoints returns the parent and child of a link, or nils when unset.
func linkEndpoints(obj remote.Object) (remote.Object, remote.Object) {
	var parent, child remote.Object
	switch l := obj.(type) {
	case *remote.ProjectDatasetLink:
		if l.Parent != nil {
			parent = l.Parent
		}
		if l.Child != nil {
			child = l.Child
		}
	case *remote.DatasetImageLink:
		if l.Parent != nil {
			parent = l.Parent
		}
		if l.Child != nil {
			child = l.Child
		}
	case *remote.ScreenPlateLink:
		if l.Parent != nil {
			parent = l.Parent
		}
		if l.Child != nil {
			child = l.Child
		}
	case *remote.AnnotationLink:
		parent = l.Parent
		if l.Child != nil {
			child = l.Child
		}
	}
	return parent, child
}

func (u *updateService) delete(ctx context.Context, d dao, obj remote.Object) error {
	if obj == nil {
		return remote.APIUsage("nothing to delete")
	}
	if obj.GetID() == 0 {
		return remote.APIUsage("cannot delete an unsaved %s", obj.Kind())
	}

	if obj.Kind().IsLink() {
		links, err := d.links(ctx, string(obj.Kind()), store.LinkFilter{IDs: []int64{obj.GetID()}})
		if err != nil {
			return err
		}
		if len(links) == 0 {
			return remote.Validation("no %s with id %d", obj.Kind(), obj.GetID())
		}
		if l := links[0]; !u.s.ec.IsAdmin && l.OwnerID != u.s.ec.UserID {
			return remote.SecurityViolation("%s %d belongs to another user", obj.Kind(), l.ID)
		}
		return storeFault(d.st.DeleteLinks(ctx, obj.GetID()))
	}

	if err := u.checkAdminKind(obj.Kind()); err != nil {
		return err
	}
	current, err := d.mustObject(ctx, obj.Kind(), obj.GetID())
	if err != nil {
		return err
	}
	if err := u.s.canModify(current); err != nil {
		return err
	}

	ids := []int64{current.GetID()}
	var owned remote.Kind
	switch current.Kind() {
	case remote.KindImage:
		owned = remote.KindPixels
	case remote.KindPlate:
		owned = remote.KindWell
	}
	if owned != "" {
		rows, err := d.st.FindObjects(ctx, store.ObjectFilter{Kind: string(owned), ParentIDs: ids})
		if err != nil {
			return storeFault(err)
		}
		for _, r := range rows {
			ids = append(ids, r.ID)
		}
	}

	if err := d.st.DeleteLinksOf(ctx, ids...); err != nil {
		return storeFault(err)
	}
	return storeFault(d.st.DeleteObjects(ctx, ids...))
}
