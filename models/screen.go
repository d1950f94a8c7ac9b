// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/ome/openmicroscopy-sub022/internal/remote"

// ScreenData wraps a screen.
type ScreenData struct {
	dataObject
	plates lazy[*PlateData]
}

// NewScreenData returns a dirty wrapper around a new, unsaved screen.
func NewScreenData() *ScreenData {
	s := NewScreenDataFrom(&remote.Screen{})
	s.markDirty()
	return s
}

// NewScreenDataFrom wraps an existing screen. It panics when s is nil.
func NewScreenDataFrom(s *remote.Screen) *ScreenData {
	mustWrap(s == nil, remote.KindScreen)
	return &ScreenData{dataObject: newDataObject(s)}
}

func (s *ScreenData) screen() *remote.Screen { return s.value.(*remote.Screen) }

func (s *ScreenData) Name() string { return s.screen().Name }

func (s *ScreenData) SetName(v string) {
	s.markDirty()
	s.screen().Name = v
}

func (s *ScreenData) Description() string { return s.screen().Description }

func (s *ScreenData) SetDescription(v string) {
	s.markDirty()
	s.screen().Description = v
}

func (s *ScreenData) ProtocolDescription() string { return s.screen().ProtocolDescription }

func (s *ScreenData) SetProtocolDescription(v string) {
	s.markDirty()
	s.screen().ProtocolDescription = v
}

func (s *ScreenData) ReagentSetDescription() string { return s.screen().ReagentSetDescription }

func (s *ScreenData) SetReagentSetDescription(v string) {
	s.markDirty()
	s.screen().ReagentSetDescription = v
}

// Plates returns the plates of the screen, or nil when they were not loaded.
func (s *ScreenData) Plates() []*PlateData {
	return s.plates.get(func() ([]*PlateData, bool) {
		return wrapLinked(s.screen().PlateLinks,
			func(l *remote.ScreenPlateLink) *remote.Plate { return l.Child },
			NewPlateDataFrom)
	})
}

// SetPlates replaces the plates of the screen, unlinking before linking.
// Like SetDatasets it refuses a saved screen whose plates were not loaded.
func (s *ScreenData) SetPlates(plates []*PlateData) error {
	if err := s.checkMutable(s.platesLoaded(), "plates"); err != nil {
		return err
	}
	m := NewSetMutator(s.Plates(), plates)
	scr := s.screen()
	m.Apply(
		func(p *PlateData) { scr.UnlinkPlate(p.plate()) },
		func(p *PlateData) { scr.LinkPlate(p.plate()) },
	)
	s.plates.set(m.Result())
	s.markDirty()
	return nil
}

func (s *ScreenData) platesLoaded() bool {
	return s.plates.isLoaded() || s.screen().PlateLinks.IsLoaded()
}

// PlateCount returns the number of linked plates, or -1 when unknown.
func (s *ScreenData) PlateCount() int64 { return countOf(s.screen().PlateLinksCount) }

// PlateData wraps a plate.
type PlateData struct {
	dataObject
	screens lazy[*ScreenData]
	wells   lazy[*WellData]
}

// NewPlateData returns a dirty wrapper around a new, unsaved plate.
func NewPlateData() *PlateData {
	p := NewPlateDataFrom(&remote.Plate{})
	p.markDirty()
	return p
}

// NewPlateDataFrom wraps an existing plate. It panics when p is nil.
func NewPlateDataFrom(p *remote.Plate) *PlateData {
	mustWrap(p == nil, remote.KindPlate)
	return &PlateData{dataObject: newDataObject(p)}
}

func (p *PlateData) plate() *remote.Plate { return p.value.(*remote.Plate) }

func (p *PlateData) Name() string { return p.plate().Name }

func (p *PlateData) SetName(v string) {
	p.markDirty()
	p.plate().Name = v
}

func (p *PlateData) Description() string { return p.plate().Description }

func (p *PlateData) SetDescription(v string) {
	p.markDirty()
	p.plate().Description = v
}

func (p *PlateData) Status() string { return p.plate().Status }

func (p *PlateData) SetStatus(v string) {
	p.markDirty()
	p.plate().Status = v
}

func (p *PlateData) ExternalIdentifier() string { return p.plate().ExternalIdentifier }

func (p *PlateData) SetExternalIdentifier(v string) {
	p.markDirty()
	p.plate().ExternalIdentifier = v
}

// Screens returns the screens containing the plate, or nil when they were
// not loaded.
func (p *PlateData) Screens() []*ScreenData {
	return p.screens.get(func() ([]*ScreenData, bool) {
		return wrapLinked(p.plate().ScreenLinks,
			func(l *remote.ScreenPlateLink) *remote.Screen { return l.Parent },
			NewScreenDataFrom)
	})
}

// Wells returns the wells of the plate, or nil when they were not loaded.
func (p *PlateData) Wells() []*WellData {
	return p.wells.get(func() ([]*WellData, bool) {
		return wrapAll(p.plate().Wells, NewWellDataFrom)
	})
}

// WellData wraps a well.
type WellData struct {
	dataObject
	images lazy[*ImageData]
}

// NewWellDataFrom wraps an existing well. It panics when w is nil.
func NewWellDataFrom(w *remote.Well) *WellData {
	mustWrap(w == nil, remote.KindWell)
	return &WellData{dataObject: newDataObject(w)}
}

func (w *WellData) well() *remote.Well { return w.value.(*remote.Well) }

func (w *WellData) PlateID() int64 { return w.well().PlateID }
func (w *WellData) Row() int       { return w.well().Row }
func (w *WellData) Column() int    { return w.well().Column }

func (w *WellData) Status() string { return w.well().Status }

func (w *WellData) SetStatus(v string) {
	w.markDirty()
	w.well().Status = v
}

func (w *WellData) ExternalDescription() string { return w.well().ExternalDescription }

func (w *WellData) SetExternalDescription(v string) {
	w.markDirty()
	w.well().ExternalDescription = v
}

// Images returns the images sampled in the well, or nil when they were not
// loaded.
func (w *WellData) Images() []*ImageData {
	return w.images.get(func() ([]*ImageData, bool) {
		return wrapAll(w.well().Images, NewImageDataFrom)
	})
}
