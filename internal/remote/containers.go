// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package remote

import "time"

// Project is the top-level container of datasets.
type Project struct {
	Base
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	DatasetLinks    Collection[*ProjectDatasetLink] `json:"datasetLinks"`
	AnnotationLinks Collection[*AnnotationLink]     `json:"annotationLinks"`

	DatasetLinksCount    *int64 `json:"datasetLinksCount,omitempty"`
	AnnotationLinksCount *int64 `json:"annotationLinksCount,omitempty"`
}

func (p *Project) Kind() Kind      { return KindProject }
func (p *Project) shallow() Object { return shallowCopy(p) }

func (p *Project) Unload() {
	p.DatasetLinks.Unload()
	p.AnnotationLinks.Unload()
}

// LinkDataset adds a new link from p to d and returns it.
func (p *Project) LinkDataset(d *Dataset) *ProjectDatasetLink {
	l := &ProjectDatasetLink{Parent: p, Child: d}
	p.DatasetLinks.Add(l)
	count(&p.DatasetLinksCount, 1)
	return l
}

// UnlinkDataset removes every link from p to d.
func (p *Project) UnlinkDataset(d *Dataset) {
	n := p.DatasetLinks.RemoveFunc(func(l *ProjectDatasetLink) bool {
		return SameObject(l.Child, d)
	})
	count(&p.DatasetLinksCount, -n)
}

// Dataset groups images and may belong to several projects.
type Dataset struct {
	Base
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// ProjectLinks is the child side of project links; it is never sent over
	// the wire.
	ProjectLinks    Collection[*ProjectDatasetLink] `json:"-"`
	ImageLinks      Collection[*DatasetImageLink]   `json:"imageLinks"`
	AnnotationLinks Collection[*AnnotationLink]     `json:"annotationLinks"`

	ImageLinksCount      *int64 `json:"imageLinksCount,omitempty"`
	AnnotationLinksCount *int64 `json:"annotationLinksCount,omitempty"`
}

func (d *Dataset) Kind() Kind      { return KindDataset }
func (d *Dataset) shallow() Object { return shallowCopy(d) }

func (d *Dataset) Unload() {
	d.ProjectLinks.Unload()
	d.ImageLinks.Unload()
	d.AnnotationLinks.Unload()
}

// LinkImage adds a new link from d to img and returns it.
func (d *Dataset) LinkImage(img *Image) *DatasetImageLink {
	l := &DatasetImageLink{Parent: d, Child: img}
	d.ImageLinks.Add(l)
	count(&d.ImageLinksCount, 1)
	return l
}

// UnlinkImage removes every link from d to img.
func (d *Dataset) UnlinkImage(img *Image) {
	n := d.ImageLinks.RemoveFunc(func(l *DatasetImageLink) bool {
		return SameObject(l.Child, img)
	})
	count(&d.ImageLinksCount, -n)
}

// Image is a multi-dimensional image with one or more pixels sets.
type Image struct {
	Base
	Name            string     `json:"name"`
	Description     string     `json:"description,omitempty"`
	AcquisitionDate *time.Time `json:"acquisitionDate,omitempty"`

	Pixels Collection[*Pixels] `json:"pixels"`
	// DatasetLinks is the child side of dataset links; it is never sent over
	// the wire.
	DatasetLinks    Collection[*DatasetImageLink] `json:"-"`
	AnnotationLinks Collection[*AnnotationLink]   `json:"annotationLinks"`

	AnnotationLinksCount *int64 `json:"annotationLinksCount,omitempty"`
}

func (i *Image) Kind() Kind      { return KindImage }
func (i *Image) shallow() Object { return shallowCopy(i) }

func (i *Image) Unload() {
	i.Pixels.Unload()
	i.DatasetLinks.Unload()
	i.AnnotationLinks.Unload()
}

// Pixels describes the dimensions of one pixels set of an image.
type Pixels struct {
	Base
	ImageID        int64   `json:"imageId"`
	SizeX          int     `json:"sizeX"`
	SizeY          int     `json:"sizeY"`
	SizeZ          int     `json:"sizeZ"`
	SizeC          int     `json:"sizeC"`
	SizeT          int     `json:"sizeT"`
	PixelsType     string  `json:"pixelsType"`
	DimensionOrder string  `json:"dimensionOrder,omitempty"`
	PhysicalSizeX  float64 `json:"physicalSizeX,omitempty"`
	PhysicalSizeY  float64 `json:"physicalSizeY,omitempty"`
	PhysicalSizeZ  float64 `json:"physicalSizeZ,omitempty"`
}

func (p *Pixels) Kind() Kind      { return KindPixels }
func (p *Pixels) shallow() Object { return shallowCopy(p) }

// PlaneSize is the number of bytes of one XY plane at one byte per sample.
func (p *Pixels) PlaneSize() int64 { return int64(p.SizeX) * int64(p.SizeY) }

// Screen is the top-level container of plates.
type Screen struct {
	Base
	Name                  string `json:"name"`
	Description           string `json:"description,omitempty"`
	ProtocolDescription   string `json:"protocolDescription,omitempty"`
	ReagentSetDescription string `json:"reagentSetDescription,omitempty"`

	PlateLinks      Collection[*ScreenPlateLink] `json:"plateLinks"`
	AnnotationLinks Collection[*AnnotationLink]  `json:"annotationLinks"`

	PlateLinksCount      *int64 `json:"plateLinksCount,omitempty"`
	AnnotationLinksCount *int64 `json:"annotationLinksCount,omitempty"`
}

func (s *Screen) Kind() Kind      { return KindScreen }
func (s *Screen) shallow() Object { return shallowCopy(s) }

func (s *Screen) Unload() {
	s.PlateLinks.Unload()
	s.AnnotationLinks.Unload()
}

// LinkPlate adds a new link from s to p and returns it.
func (s *Screen) LinkPlate(p *Plate) *ScreenPlateLink {
	l := &ScreenPlateLink{Parent: s, Child: p}
	s.PlateLinks.Add(l)
	count(&s.PlateLinksCount, 1)
	return l
}

// UnlinkPlate removes every link from s to p.
func (s *Screen) UnlinkPlate(p *Plate) {
	n := s.PlateLinks.RemoveFunc(func(l *ScreenPlateLink) bool {
		return SameObject(l.Child, p)
	})
	count(&s.PlateLinksCount, -n)
}

// Plate holds wells and may belong to several screens.
type Plate struct {
	Base
	Name               string `json:"name"`
	Description        string `json:"description,omitempty"`
	Status             string `json:"status,omitempty"`
	ExternalIdentifier string `json:"externalIdentifier,omitempty"`

	// ScreenLinks is the child side of screen links; it is never sent over
	// the wire.
	ScreenLinks     Collection[*ScreenPlateLink] `json:"-"`
	Wells           Collection[*Well]            `json:"wells"`
	AnnotationLinks Collection[*AnnotationLink]  `json:"annotationLinks"`

	AnnotationLinksCount *int64 `json:"annotationLinksCount,omitempty"`
}

func (p *Plate) Kind() Kind      { return KindPlate }
func (p *Plate) shallow() Object { return shallowCopy(p) }

func (p *Plate) Unload() {
	p.ScreenLinks.Unload()
	p.Wells.Unload()
	p.AnnotationLinks.Unload()
}

// Well is one position of a plate; its samples are images.
type Well struct {
	Base
	PlateID             int64  `json:"plateId"`
	Row                 int    `json:"row"`
	Column              int    `json:"column"`
	Status              string `json:"status,omitempty"`
	ExternalDescription string `json:"externalDescription,omitempty"`

	Images Collection[*Image] `json:"images"`
}

func (w *Well) Kind() Kind      { return KindWell }
func (w *Well) shallow() Object { return shallowCopy(w) }
func (w *Well) Unload()         { w.Images.Unload() }
