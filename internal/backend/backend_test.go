// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backend

import (
	"bytes"
	"context"
	"image/png"
	"path/filepath"
	"testing"
	"time"

	"github.com/ome/openmicroscopy-sub022/internal/config"
	"github.com/ome/openmicroscopy-sub022/internal/logger"
	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/ome/openmicroscopy-sub022/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	rootPassword = "root-secret"
	testQuota    = int64(1 << 30)
)

func newTestBackend(t *testing.T, demo bool) *Backend {
	t.Helper()
	ctx := context.Background()
	cfg := config.DB{Driver: store.DriverSQLite, DSN: filepath.Join(t.TempDir(), "backend.db")}
	db, err := store.NewDB(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	b := New(store.NewStore(db), testQuota, logger.Nop())
	require.NoError(t, b.Seed(ctx, rootPassword, demo))
	return b
}

func login(t *testing.T, b *Backend, user, password string) *Session {
	t.Helper()
	s, err := b.Login(context.Background(), remote.Credentials{UserName: user, Password: password})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close(context.Background()) })
	return s
}

func TestLogin(t *testing.T) {
	b := newTestBackend(t, false)
	ctx := context.Background()

	s := login(t, b, RootUser, rootPassword)
	ec, err := s.AdminService().GetEventContext(ctx)
	require.NoError(t, err)
	assert.True(t, ec.IsAdmin)
	assert.Equal(t, RootUser, ec.UserName)
	assert.Equal(t, SystemGroup, ec.GroupName)
	assert.NotEmpty(t, ec.SessionUUID)

	_, err = b.Login(ctx, remote.Credentials{UserName: RootUser, Password: "wrong"})
	assert.True(t, remote.IsSecurityViolation(err))

	_, err = b.Login(ctx, remote.Credentials{UserName: "nobody", Password: "x"})
	assert.True(t, remote.IsSecurityViolation(err))

	_, err = b.Login(ctx, remote.Credentials{})
	assert.True(t, remote.IsBadArgument(err))
}

func TestSeed_Idempotent(t *testing.T) {
	b := newTestBackend(t, true)
	ctx := context.Background()
	require.NoError(t, b.Seed(ctx, rootPassword, true))

	s := login(t, b, RootUser, rootPassword)
	projects, err := s.QueryService().FindAll(ctx, remote.KindProject, remote.Filter{})
	require.NoError(t, err)
	assert.Len(t, projects, 1)

	users, err := s.AdminService().LookupExperimenters(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestLoadContainerHierarchy_Demo(t *testing.T) {
	b := newTestBackend(t, true)
	ctx := context.Background()
	s := login(t, b, RootUser, rootPassword)
	cs := s.ContainerService()

	roots, err := cs.LoadContainerHierarchy(ctx, remote.KindProject, nil,
		remote.NewOptions().Leaves().CountFields(remote.PropertyAnnotationLinks))
	require.NoError(t, err)
	require.Len(t, roots, 1)

	p := roots[0].(*remote.Project)
	assert.Equal(t, "Demo project", p.Name)
	require.Equal(t, 2, p.DatasetLinks.Len())
	require.NotNil(t, p.AnnotationLinksCount)
	assert.Equal(t, int64(1), *p.AnnotationLinksCount)

	images := 0
	for _, l := range p.DatasetLinks.Items() {
		require.True(t, l.Child.ImageLinks.IsLoaded())
		for _, il := range l.Child.ImageLinks.Items() {
			assert.Equal(t, 1, il.Child.Pixels.Len())
			images++
		}
	}
	assert.Equal(t, 3, images)

	// without leaves only the counts are filled
	roots, err = cs.LoadContainerHierarchy(ctx, remote.KindDataset, nil, remote.NewOptions())
	require.NoError(t, err)
	assert.Len(t, roots, 3)
	for _, r := range roots {
		ds := r.(*remote.Dataset)
		assert.False(t, ds.ImageLinks.IsLoaded())
		assert.NotNil(t, ds.ImageLinksCount)
	}

	screens, err := cs.LoadContainerHierarchy(ctx, remote.KindScreen, nil, remote.NewOptions().Leaves())
	require.NoError(t, err)
	require.Len(t, screens, 1)
	plates := screens[0].(*remote.Screen).PlateLinks.Items()
	require.Len(t, plates, 1)
	wells := plates[0].Child.Wells.Items()
	assert.Len(t, wells, 6)
	assert.Equal(t, 1, wells[0].Images.Len())

	_, err = cs.LoadContainerHierarchy(ctx, remote.KindImage, nil, nil)
	assert.True(t, remote.IsBadArgument(err))

	empty, err := cs.LoadContainerHierarchy(ctx, remote.KindProject, []int64{}, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestFindContainerHierarchies(t *testing.T) {
	b := newTestBackend(t, true)
	ctx := context.Background()
	s := login(t, b, RootUser, rootPassword)
	cs := s.ContainerService()

	all, err := cs.GetUserImages(ctx, nil)
	require.NoError(t, err)
	require.NotEmpty(t, all)

	var cells01 *remote.Image
	for _, img := range all {
		if img.Name == "cells-01" {
			cells01 = img
		}
	}
	require.NotNil(t, cells01)

	roots, err := cs.FindContainerHierarchies(ctx, remote.KindProject, []int64{cells01.ID}, nil)
	require.NoError(t, err)
	require.Len(t, roots, 1)
	p := roots[0].(*remote.Project)
	require.Equal(t, 1, p.DatasetLinks.Len())
	ds := p.DatasetLinks.Items()[0].Child
	assert.Equal(t, "Cells", ds.Name)
	require.Equal(t, 1, ds.ImageLinks.Len())
	assert.Equal(t, cells01.ID, ds.ImageLinks.Items()[0].Child.ID)

	_, err = cs.FindContainerHierarchies(ctx, remote.KindScreen, []int64{cells01.ID}, nil)
	assert.True(t, remote.IsBadArgument(err))
}

func TestGetImages(t *testing.T) {
	b := newTestBackend(t, true)
	ctx := context.Background()
	s := login(t, b, RootUser, rootPassword)
	cs := s.ContainerService()

	projects, err := s.QueryService().FindAll(ctx, remote.KindProject, remote.Filter{})
	require.NoError(t, err)
	images, err := cs.GetImages(ctx, remote.KindProject, []int64{projects[0].GetID()}, nil)
	require.NoError(t, err)
	assert.Len(t, images, 3)

	screens, err := s.QueryService().FindAll(ctx, remote.KindScreen, remote.Filter{})
	require.NoError(t, err)
	images, err = cs.GetImages(ctx, remote.KindScreen, []int64{screens[0].GetID()}, nil)
	require.NoError(t, err)
	assert.Len(t, images, 6)

	future := time.Now().Add(time.Hour)
	images, err = cs.GetUserImages(ctx, remote.NewOptions().Timeframe(&future, nil))
	require.NoError(t, err)
	assert.Empty(t, images)
}

func TestSaveLinkWithTransientChild(t *testing.T) {
	b := newTestBackend(t, false)
	ctx := context.Background()
	s := login(t, b, RootUser, rootPassword)
	us := s.UpdateService()

	saved, err := us.SaveAndReturnObject(ctx, &remote.Project{Name: "p"})
	require.NoError(t, err)
	p := saved.(*remote.Project)
	assert.NotZero(t, p.ID)
	assert.Equal(t, s.UserID(), p.Details.OwnerID)

	link, err := us.SaveAndReturnObject(ctx, &remote.ProjectDatasetLink{Parent: p, Child: &remote.Dataset{Name: "new"}})
	require.NoError(t, err)
	pdl := link.(*remote.ProjectDatasetLink)
	assert.NotZero(t, pdl.ID)
	assert.NotZero(t, pdl.Child.ID)

	counts, err := s.ContainerService().GetCollectionCount(ctx, remote.KindProject, remote.PropertyDatasetLinks, []int64{p.ID}, nil)
	require.NoError(t, err)
	assert.Equal(t, map[int64]int64{p.ID: 1}, counts)

	// the same link twice is refused
	_, err = us.SaveAndReturnObject(ctx, &remote.ProjectDatasetLink{Parent: p, Child: pdl.Child})
	assert.True(t, remote.IsBadArgument(err))

	_, err = us.SaveAndReturnObject(ctx, &remote.Project{})
	assert.True(t, remote.IsBadArgument(err))
}

func TestPermissions(t *testing.T) {
	b := newTestBackend(t, false)
	ctx := context.Background()
	_, err := b.AddUser(ctx, "alice", "alice-pw")
	require.NoError(t, err)

	root := login(t, b, RootUser, rootPassword)
	alice := login(t, b, "alice", "alice-pw")

	saved, err := root.UpdateService().SaveAndReturnObject(ctx, &remote.Dataset{Name: "root data"})
	require.NoError(t, err)
	ds := saved.(*remote.Dataset)

	ds.Name = "renamed"
	_, err = alice.UpdateService().SaveAndReturnObject(ctx, ds)
	assert.True(t, remote.IsSecurityViolation(err))

	err = alice.UpdateService().DeleteObject(ctx, ds)
	assert.True(t, remote.IsSecurityViolation(err))

	_, err = alice.UpdateService().SaveAndReturnObject(ctx, &remote.Experimenter{OmeName: "mallory"})
	assert.True(t, remote.IsSecurityViolation(err))

	// everyone may annotate what they can see
	tag, err := alice.UpdateService().SaveAndReturnObject(ctx, &remote.AnnotationLink{
		ParentKind: remote.KindDataset, Parent: ds, Child: &remote.TagAnnotation{TextValue: "seen"},
	})
	require.NoError(t, err)
	assert.NotZero(t, tag.GetID())

	anns, err := root.ContainerService().FindAnnotations(ctx, remote.KindDataset, []int64{ds.ID}, []int64{alice.UserID()}, nil)
	require.NoError(t, err)
	require.Len(t, anns[ds.ID], 1)

	anns, err = root.ContainerService().FindAnnotations(ctx, remote.KindDataset, []int64{ds.ID}, []int64{root.UserID()}, nil)
	require.NoError(t, err)
	assert.Empty(t, anns[ds.ID])
}

func TestDeleteCascade(t *testing.T) {
	b := newTestBackend(t, false)
	ctx := context.Background()
	s := login(t, b, RootUser, rootPassword)
	us := s.UpdateService()

	img := &remote.Image{Name: "img"}
	img.Pixels.Add(&remote.Pixels{SizeX: 4, SizeY: 4, SizeZ: 1, SizeC: 1, SizeT: 1, PixelsType: "uint8"})
	ds := &remote.Dataset{Name: "d"}
	ds.LinkImage(img)
	saved, err := us.SaveAndReturnObject(ctx, ds)
	require.NoError(t, err)

	images, err := s.ContainerService().GetImages(ctx, remote.KindDataset, []int64{saved.GetID()}, nil)
	require.NoError(t, err)
	require.Len(t, images, 1)
	pixelsID := images[0].Pixels.Items()[0].ID

	require.NoError(t, us.DeleteObject(ctx, images[0]))

	px, err := s.QueryService().Find(ctx, remote.KindPixels, pixelsID)
	require.NoError(t, err)
	assert.Nil(t, px)

	_, err = s.QueryService().Get(ctx, remote.KindImage, images[0].ID)
	assert.True(t, remote.IsBadArgument(err))

	counts, err := s.ContainerService().GetCollectionCount(ctx, remote.KindDataset, remote.PropertyImageLinks, []int64{saved.GetID()}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), counts[saved.GetID()])
}

func TestAdmin(t *testing.T) {
	b := newTestBackend(t, false)
	ctx := context.Background()
	bob, err := b.AddUser(ctx, "bob", "old")
	require.NoError(t, err)
	s := login(t, b, "bob", "old")
	as := s.AdminService()

	exp, err := as.GetExperimenter(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, exp.Groups.Len())

	exp.FirstName, exp.OmeName = "Bob", "hijack"
	require.NoError(t, as.UpdateSelf(ctx, exp))
	exp, err = as.GetExperimenter(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bob", exp.FirstName)
	assert.Equal(t, "bob", exp.OmeName)

	err = as.UpdateSelf(ctx, &remote.Experimenter{Base: remote.Base{ID: bob.ID + 100}})
	assert.True(t, remote.IsSecurityViolation(err))

	assert.True(t, remote.IsBadArgument(as.ChangePassword(ctx, " ")))
	require.NoError(t, as.ChangePassword(ctx, "new"))
	_, err = b.Login(ctx, remote.Credentials{UserName: "bob", Password: "old"})
	assert.True(t, remote.IsSecurityViolation(err))
	login(t, b, "bob", "new")

	groups, err := as.LookupGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, 2, groups[0].Experimenters.Len())
}

func TestRepositorySpace(t *testing.T) {
	b := newTestBackend(t, false)
	ctx := context.Background()
	s := login(t, b, RootUser, rootPassword)
	rs := s.RepositoryService()

	used, err := rs.GetUsedSpace(ctx)
	require.NoError(t, err)
	assert.Zero(t, used)

	img := &remote.Image{Name: "img"}
	img.Pixels.Add(&remote.Pixels{SizeX: 10, SizeY: 10, SizeZ: 2, SizeC: 3, SizeT: 1, PixelsType: "uint8"})
	_, err = s.UpdateService().SaveAndReturnObject(ctx, img)
	require.NoError(t, err)
	_, err = s.UpdateService().SaveAndReturnObject(ctx, &remote.FileAnnotation{
		File: &remote.OriginalFile{Name: "notes.txt", Path: repositoryPrefix, Size: 400},
	})
	require.NoError(t, err)

	used, err = rs.GetUsedSpace(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(10*10*2*3+400), used)

	free, err := rs.GetFreeSpace(ctx)
	require.NoError(t, err)
	assert.Equal(t, testQuota-used, free)
}

func savedPixels(t *testing.T, s *Session, x, y, z, c, tt int) *remote.Pixels {
	t.Helper()
	img := &remote.Image{Name: "img"}
	img.Pixels.Add(&remote.Pixels{SizeX: x, SizeY: y, SizeZ: z, SizeC: c, SizeT: tt, PixelsType: "uint8"})
	saved, err := s.UpdateService().SaveAndReturnObject(context.Background(), img)
	require.NoError(t, err)
	items := saved.(*remote.Image).Pixels.Items()
	require.Len(t, items, 1)
	return items[0]
}

func TestThumbnailStore(t *testing.T) {
	b := newTestBackend(t, false)
	ctx := context.Background()
	s := login(t, b, RootUser, rootPassword)
	px := savedPixels(t, s, 40, 20, 3, 2, 1)

	ts, err := s.CreateThumbnailStore(ctx)
	require.NoError(t, err)

	_, err = ts.GetThumbnail(ctx, 10, 10)
	assert.True(t, remote.IsBadArgument(err), "no pixels selected yet")

	has, err := ts.SetPixelsID(ctx, px.ID)
	require.NoError(t, err)
	assert.False(t, has)

	data, err := ts.GetThumbnailByLongestSide(ctx, 16)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())

	require.NoError(t, ts.ResetDefaults(ctx))
	has, err = ts.SetPixelsID(ctx, px.ID)
	require.NoError(t, err)
	assert.True(t, has)

	set, err := ts.GetThumbnailSet(ctx, 8, []int64{px.ID, px.ID + 1000})
	require.NoError(t, err)
	assert.Len(t, set, 1)
	assert.Contains(t, set, px.ID)

	require.NoError(t, ts.Close(ctx))
	_, err = ts.GetThumbnail(ctx, 10, 10)
	assert.True(t, remote.IsSessionInvalid(err))
}

func TestRenderingEngine(t *testing.T) {
	b := newTestBackend(t, false)
	ctx := context.Background()
	s := login(t, b, RootUser, rootPassword)
	px := savedPixels(t, s, 8, 8, 4, 2, 2)

	re, err := s.CreateRenderingEngine(ctx)
	require.NoError(t, err)
	require.NoError(t, re.LookupPixels(ctx, px.ID))

	_, err = re.GetRenderingDef(ctx)
	assert.True(t, remote.IsBadArgument(err), "settings not loaded")

	has, err := re.LookupRenderingDef(ctx, px.ID)
	require.NoError(t, err)
	assert.False(t, has)
	require.NoError(t, re.Load(ctx))

	def, err := re.GetRenderingDef(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, def.DefaultZ)
	require.Len(t, def.Channels, 2)

	// the returned settings are a copy
	def.Channels[0].Active = false
	again, err := re.GetRenderingDef(ctx)
	require.NoError(t, err)
	assert.True(t, again.Channels[0].Active)

	require.NoError(t, re.SetActive(ctx, 1, false))
	require.NoError(t, re.SetChannelWindow(ctx, 0, 10, 200))
	assert.True(t, remote.IsBadArgument(re.SetChannelWindow(ctx, 5, 0, 1)))
	assert.True(t, remote.IsBadArgument(re.SetDefaultZ(ctx, 4)))
	require.NoError(t, re.SetDefaultZ(ctx, 1))
	require.NoError(t, re.SetDefaultT(ctx, 1))

	data, err := re.Render(ctx, remote.PlaneDef{Z: 1, T: 1})
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())

	_, err = re.Render(ctx, remote.PlaneDef{Z: 9})
	assert.True(t, remote.IsBadArgument(err))

	require.NoError(t, re.SaveCurrentSettings(ctx))
	has, err = re.LookupRenderingDef(ctx, px.ID)
	require.NoError(t, err)
	assert.True(t, has)

	other, err := s.CreateRenderingEngine(ctx)
	require.NoError(t, err)
	require.NoError(t, other.LookupPixels(ctx, px.ID))
	require.NoError(t, other.Load(ctx))
	saved, err := other.GetRenderingDef(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, saved.DefaultZ)
	assert.False(t, saved.Channels[1].Active)
	assert.Equal(t, 10.0, saved.Channels[0].InputStart)
}

func TestRawPixelsStore(t *testing.T) {
	b := newTestBackend(t, false)
	ctx := context.Background()
	s := login(t, b, RootUser, rootPassword)
	px := savedPixels(t, s, 5, 3, 1, 2, 1)

	rs, err := s.CreateRawPixelsStore(ctx)
	require.NoError(t, err)
	assert.True(t, remote.IsBadArgument(rs.SetPixelsID(ctx, px.ID+1000)))
	require.NoError(t, rs.SetPixelsID(ctx, px.ID))

	plane, err := rs.GetPlane(ctx, 0, 1, 0)
	require.NoError(t, err)
	assert.Len(t, plane, 15)

	again, err := rs.GetPlane(ctx, 0, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, plane, again)

	_, err = rs.GetPlane(ctx, 0, 2, 0)
	assert.True(t, remote.IsBadArgument(err))
}

func TestClosedSession(t *testing.T) {
	b := newTestBackend(t, false)
	ctx := context.Background()
	s, err := b.Login(ctx, remote.Credentials{UserName: RootUser, Password: rootPassword})
	require.NoError(t, err)

	ts, err := s.CreateThumbnailStore(ctx)
	require.NoError(t, err)
	require.NoError(t, s.KeepAlive(ctx))
	require.Equal(t, 1, b.Sessions())

	require.NoError(t, s.Close(ctx))
	assert.Zero(t, b.Sessions())

	_, err = s.QueryService().FindAll(ctx, remote.KindProject, remote.Filter{})
	assert.True(t, remote.IsSessionInvalid(err))
	assert.True(t, remote.IsSessionInvalid(s.KeepAlive(ctx)))
	_, err = ts.SetPixelsID(ctx, 1)
	assert.True(t, remote.IsSessionInvalid(err))
	_, err = s.CreateRenderingEngine(ctx)
	assert.True(t, remote.IsSessionInvalid(err))
}

func TestReap(t *testing.T) {
	b := newTestBackend(t, false)
	ctx := context.Background()
	now := time.Now()
	b.now = func() time.Time { return now }

	idle := login(t, b, RootUser, rootPassword)
	now = now.Add(10 * time.Minute)
	busy := login(t, b, RootUser, rootPassword)

	assert.Equal(t, 1, b.Reap(ctx, 5*time.Minute))
	assert.Equal(t, 1, b.Sessions())

	_, ok := b.Session(idle.UUID())
	assert.False(t, ok)
	_, ok = b.Session(busy.UUID())
	assert.True(t, ok)
	assert.True(t, remote.IsSessionInvalid(idle.KeepAlive(ctx)))
}
