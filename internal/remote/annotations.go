// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package remote

// Annotation is implemented by every annotation type.
type Annotation interface {
	Object
	GetNamespace() string
}

// AnnotationBase holds the fields shared by all annotations.
type AnnotationBase struct {
	Base
	Namespace   string `json:"ns,omitempty"`
	Description string `json:"description,omitempty"`
}

func (a *AnnotationBase) GetNamespace() string { return a.Namespace }

// CommentAnnotation is a free-text comment.
type CommentAnnotation struct {
	AnnotationBase
	TextValue string `json:"textValue"`
}

func (a *CommentAnnotation) Kind() Kind      { return KindCommentAnnotation }
func (a *CommentAnnotation) shallow() Object { return shallowCopy(a) }

// TagAnnotation is a short label shared between objects.
type TagAnnotation struct {
	AnnotationBase
	TextValue string `json:"textValue"`
}

func (a *TagAnnotation) Kind() Kind      { return KindTagAnnotation }
func (a *TagAnnotation) shallow() Object { return shallowCopy(a) }

// URLAnnotation points at an external resource.
type URLAnnotation struct {
	AnnotationBase
	TextValue string `json:"textValue"`
}

func (a *URLAnnotation) Kind() Kind      { return KindURLAnnotation }
func (a *URLAnnotation) shallow() Object { return shallowCopy(a) }

// LongAnnotation carries an integer; the client uses it for ratings.
type LongAnnotation struct {
	AnnotationBase
	LongValue *int64 `json:"longValue,omitempty"`
}

func (a *LongAnnotation) Kind() Kind      { return KindLongAnnotation }
func (a *LongAnnotation) shallow() Object { return shallowCopy(a) }

// FileAnnotation attaches an original file.
type FileAnnotation struct {
	AnnotationBase
	File *OriginalFile `json:"file,omitempty"`
}

func (a *FileAnnotation) Kind() Kind      { return KindFileAnnotation }
func (a *FileAnnotation) shallow() Object { return shallowCopy(a) }

// OriginalFile is a file stored in the server repository.
type OriginalFile struct {
	Base
	Name     string `json:"name"`
	Path     string `json:"path"`
	Size     int64  `json:"size"`
	Sha1     string `json:"sha1,omitempty"`
	MimeType string `json:"mimetype,omitempty"`
}

func (f *OriginalFile) Kind() Kind      { return KindOriginalFile }
func (f *OriginalFile) shallow() Object { return shallowCopy(f) }
