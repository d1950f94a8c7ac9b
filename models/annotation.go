// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/ome/openmicroscopy-sub022/internal/fsfile"
	"github.com/ome/openmicroscopy-sub022/internal/remote"
)

// Rating bounds.
const (
	RatingMin = 0
	RatingMax = 5
)

var (
	// ErrInvalidRating is returned when a rating falls outside RatingMin..RatingMax.
	ErrInvalidRating = errors.New("rating out of range")
	// ErrInvalidURL is returned when a URL annotation value is not an absolute URL.
	ErrInvalidURL = errors.New("invalid url")
)

// AnnotationData is implemented by every annotation wrapper.
type AnnotationData interface {
	DataObject
	Namespace() string
	// ContentAsString renders the annotation value for display.
	ContentAsString() string
	Annotation() remote.Annotation
}

type annotationData struct {
	dataObject
}

func (a *annotationData) Annotation() remote.Annotation { return a.value.(remote.Annotation) }
func (a *annotationData) Namespace() string             { return a.Annotation().GetNamespace() }

// TextualAnnotationData wraps a comment.
type TextualAnnotationData struct {
	annotationData
}

// NewTextualAnnotationData returns a dirty wrapper around a new comment.
func NewTextualAnnotationData(text string) *TextualAnnotationData {
	a := NewTextualAnnotationDataFrom(&remote.CommentAnnotation{})
	a.SetText(text)
	return a
}

// NewTextualAnnotationDataFrom wraps an existing comment.
func NewTextualAnnotationDataFrom(c *remote.CommentAnnotation) *TextualAnnotationData {
	mustWrap(c == nil, remote.KindCommentAnnotation)
	return &TextualAnnotationData{annotationData{newDataObject(c)}}
}

func (a *TextualAnnotationData) comment() *remote.CommentAnnotation {
	return a.value.(*remote.CommentAnnotation)
}

func (a *TextualAnnotationData) Text() string { return a.comment().TextValue }

func (a *TextualAnnotationData) SetText(v string) {
	a.markDirty()
	a.comment().TextValue = v
}

func (a *TextualAnnotationData) ContentAsString() string { return a.Text() }

// TagAnnotationData wraps a tag.
type TagAnnotationData struct {
	annotationData
}

// NewTagAnnotationData returns a dirty wrapper around a new tag.
func NewTagAnnotationData(value string) *TagAnnotationData {
	a := NewTagAnnotationDataFrom(&remote.TagAnnotation{})
	a.SetTagValue(value)
	return a
}

// NewTagAnnotationDataFrom wraps an existing tag.
func NewTagAnnotationDataFrom(t *remote.TagAnnotation) *TagAnnotationData {
	mustWrap(t == nil, remote.KindTagAnnotation)
	return &TagAnnotationData{annotationData{newDataObject(t)}}
}

func (a *TagAnnotationData) tag() *remote.TagAnnotation { return a.value.(*remote.TagAnnotation) }

func (a *TagAnnotationData) TagValue() string { return a.tag().TextValue }

func (a *TagAnnotationData) SetTagValue(v string) {
	a.markDirty()
	a.tag().TextValue = v
}

func (a *TagAnnotationData) TagDescription() string { return a.tag().Description }

func (a *TagAnnotationData) SetTagDescription(v string) {
	a.markDirty()
	a.tag().Description = v
}

func (a *TagAnnotationData) ContentAsString() string { return a.TagValue() }

// URLAnnotationData wraps a URL.
type URLAnnotationData struct {
	annotationData
}

// NewURLAnnotationData returns a dirty wrapper around a new URL annotation.
func NewURLAnnotationData(raw string) (*URLAnnotationData, error) {
	a := NewURLAnnotationDataFrom(&remote.URLAnnotation{})
	if err := a.SetURL(raw); err != nil {
		return nil, err
	}
	return a, nil
}

// NewURLAnnotationDataFrom wraps an existing URL annotation.
func NewURLAnnotationDataFrom(u *remote.URLAnnotation) *URLAnnotationData {
	mustWrap(u == nil, remote.KindURLAnnotation)
	return &URLAnnotationData{annotationData{newDataObject(u)}}
}

func (a *URLAnnotationData) url() *remote.URLAnnotation { return a.value.(*remote.URLAnnotation) }

func (a *URLAnnotationData) URL() string { return a.url().TextValue }

// SetURL stores raw after checking it is an absolute URL.
func (a *URLAnnotationData) SetURL(raw string) error {
	u, err := url.ParseRequestURI(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}
	a.markDirty()
	a.url().TextValue = raw
	return nil
}

func (a *URLAnnotationData) ContentAsString() string { return a.URL() }

// RatingAnnotationData wraps a rating stored as a long annotation.
type RatingAnnotationData struct {
	annotationData
}

// NewRatingAnnotationData returns a dirty wrapper around a new rating.
func NewRatingAnnotationData(rating int) (*RatingAnnotationData, error) {
	a := NewRatingAnnotationDataFrom(&remote.LongAnnotation{
		AnnotationBase: remote.AnnotationBase{Namespace: remote.RatingNamespace},
	})
	if err := a.SetRating(rating); err != nil {
		return nil, err
	}
	return a, nil
}

// NewRatingAnnotationDataFrom wraps an existing rating.
func NewRatingAnnotationDataFrom(l *remote.LongAnnotation) *RatingAnnotationData {
	mustWrap(l == nil, remote.KindLongAnnotation)
	return &RatingAnnotationData{annotationData{newDataObject(l)}}
}

func (a *RatingAnnotationData) long() *remote.LongAnnotation { return a.value.(*remote.LongAnnotation) }

// Rating returns the rating, or RatingMin when unset.
func (a *RatingAnnotationData) Rating() int {
	if v := a.long().LongValue; v != nil {
		return int(*v)
	}
	return RatingMin
}

func (a *RatingAnnotationData) SetRating(v int) error {
	if v < RatingMin || v > RatingMax {
		return fmt.Errorf("%w: %d", ErrInvalidRating, v)
	}
	a.markDirty()
	a.long().LongValue = remote.Int64(int64(v))
	return nil
}

func (a *RatingAnnotationData) ContentAsString() string { return strconv.Itoa(a.Rating()) }

// FileAnnotationData wraps an attached file.
type FileAnnotationData struct {
	annotationData
}

// NewFileAnnotationData returns a dirty wrapper around a new file
// attachment.
func NewFileAnnotationData(name, path string, size int64, mimeType string) *FileAnnotationData {
	a := NewFileAnnotationDataFrom(&remote.FileAnnotation{
		File: &remote.OriginalFile{Name: name, Path: path, Size: size, MimeType: mimeType},
	})
	a.markDirty()
	return a
}

// NewFileAnnotationDataFrom wraps an existing file annotation.
func NewFileAnnotationDataFrom(f *remote.FileAnnotation) *FileAnnotationData {
	mustWrap(f == nil, remote.KindFileAnnotation)
	return &FileAnnotationData{annotationData{newDataObject(f)}}
}

func (a *FileAnnotationData) file() *remote.OriginalFile {
	if f := a.value.(*remote.FileAnnotation).File; f != nil {
		return f
	}
	return &remote.OriginalFile{}
}

func (a *FileAnnotationData) FileID() int64     { return a.file().ID }
func (a *FileAnnotationData) FileName() string  { return a.file().Name }
func (a *FileAnnotationData) FilePath() string  { return a.file().Path }
func (a *FileAnnotationData) FileSize() int64   { return a.file().Size }
func (a *FileAnnotationData) FileFormat() string { return a.file().MimeType }

// Location returns the attached file as a repository entry.
func (a *FileAnnotationData) Location() (*fsfile.File, error) {
	return fsfile.FromPath(a.FilePath(), a.FileName())
}

func (a *FileAnnotationData) ContentAsString() string { return a.FileName() }
