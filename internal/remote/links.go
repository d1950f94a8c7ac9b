// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package remote

import (
	"encoding/json"
	"fmt"
)

// Links travel with a shallow copy of their parent and the full child so
// that a downward object graph never refers back to itself.

// ProjectDatasetLink joins a project to a dataset.
type ProjectDatasetLink struct {
	Base
	Parent *Project `json:"parent,omitempty"`
	Child  *Dataset `json:"child,omitempty"`
}

func (l *ProjectDatasetLink) Kind() Kind      { return KindProjectDatasetLink }
func (l *ProjectDatasetLink) shallow() Object { return shallowCopy(l) }

func (l *ProjectDatasetLink) MarshalJSON() ([]byte, error) {
	type wire ProjectDatasetLink
	w := wire(*l)
	w.Parent = shallowCopy(l.Parent)
	return json.Marshal(w)
}

// DatasetImageLink joins a dataset to an image.
type DatasetImageLink struct {
	Base
	Parent *Dataset `json:"parent,omitempty"`
	Child  *Image   `json:"child,omitempty"`
}

func (l *DatasetImageLink) Kind() Kind      { return KindDatasetImageLink }
func (l *DatasetImageLink) shallow() Object { return shallowCopy(l) }

func (l *DatasetImageLink) MarshalJSON() ([]byte, error) {
	type wire DatasetImageLink
	w := wire(*l)
	w.Parent = shallowCopy(l.Parent)
	return json.Marshal(w)
}

// ScreenPlateLink joins a screen to a plate.
type ScreenPlateLink struct {
	Base
	Parent *Screen `json:"parent,omitempty"`
	Child  *Plate  `json:"child,omitempty"`
}

func (l *ScreenPlateLink) Kind() Kind      { return KindScreenPlateLink }
func (l *ScreenPlateLink) shallow() Object { return shallowCopy(l) }

func (l *ScreenPlateLink) MarshalJSON() ([]byte, error) {
	type wire ScreenPlateLink
	w := wire(*l)
	w.Parent = shallowCopy(l.Parent)
	return json.Marshal(w)
}

// AnnotationLink joins an annotatable object to an annotation. Its kind
// depends on the parent kind.
type AnnotationLink struct {
	Base
	ParentKind Kind
	Parent     Object
	Child      Annotation
}

// NewAnnotationLink builds a link from parent to child. It fails when
// parent cannot be annotated.
func NewAnnotationLink(parent Object, child Annotation) (*AnnotationLink, error) {
	if _, ok := AnnotationLinkKind(parent.Kind()); !ok {
		return nil, fmt.Errorf("%w: %s cannot be annotated", ErrUnknownKind, parent.Kind())
	}
	return &AnnotationLink{ParentKind: parent.Kind(), Parent: parent, Child: child}, nil
}

func (l *AnnotationLink) Kind() Kind {
	k, _ := AnnotationLinkKind(l.ParentKind)
	return k
}

func (l *AnnotationLink) shallow() Object { return shallowCopy(l) }

type annotationLinkWire struct {
	ID         int64     `json:"id,omitempty"`
	Details    Details   `json:"details"`
	ParentKind Kind      `json:"parentKind"`
	Parent     *Envelope `json:"parent,omitempty"`
	Child      *Envelope `json:"child,omitempty"`
}

func (l *AnnotationLink) MarshalJSON() ([]byte, error) {
	w := annotationLinkWire{ID: l.ID, Details: l.Details, ParentKind: l.ParentKind}
	if l.Parent != nil {
		env, err := Encode(Shallow(l.Parent))
		if err != nil {
			return nil, err
		}
		w.Parent = &env
	}
	if l.Child != nil {
		env, err := Encode(l.Child)
		if err != nil {
			return nil, err
		}
		w.Child = &env
	}
	return json.Marshal(w)
}

func (l *AnnotationLink) UnmarshalJSON(b []byte) error {
	var w annotationLinkWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	l.ID, l.Details, l.ParentKind = w.ID, w.Details, w.ParentKind
	l.Parent, l.Child = nil, nil
	if w.Parent != nil {
		p, err := Decode(*w.Parent)
		if err != nil {
			return err
		}
		l.Parent = p
	}
	if w.Child != nil {
		c, err := Decode(*w.Child)
		if err != nil {
			return err
		}
		ann, ok := c.(Annotation)
		if !ok {
			return fmt.Errorf("%w: %s is not an annotation", ErrUnknownKind, c.Kind())
		}
		l.Child = ann
	}
	return nil
}

// ParentID returns the id of the link parent, or zero when it is unset.
func ParentID(link Object) int64 {
	switch l := link.(type) {
	case *ProjectDatasetLink:
		if l.Parent != nil {
			return l.Parent.ID
		}
	case *DatasetImageLink:
		if l.Parent != nil {
			return l.Parent.ID
		}
	case *ScreenPlateLink:
		if l.Parent != nil {
			return l.Parent.ID
		}
	case *AnnotationLink:
		if l.Parent != nil {
			return l.Parent.GetID()
		}
	}
	return 0
}

// ChildID returns the id of the link child, or zero when it is unset.
func ChildID(link Object) int64 {
	switch l := link.(type) {
	case *ProjectDatasetLink:
		if l.Child != nil {
			return l.Child.ID
		}
	case *DatasetImageLink:
		if l.Child != nil {
			return l.Child.ID
		}
	case *ScreenPlateLink:
		if l.Child != nil {
			return l.Child.ID
		}
	case *AnnotationLink:
		if l.Child != nil {
			return l.Child.GetID()
		}
	}
	return 0
}
