// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"image"

	"github.com/ome/openmicroscopy-sub022/models"
)

type loggedInMsg struct {
	session Session
	err     error
}

type spaceLoadedMsg struct {
	used, free int64
	err        error
}

type rowsLoadedMsg struct {
	level int
	rows  []row
	err   error
}

type detailLoadedMsg struct {
	image     *models.ImageData
	tags      []*models.TagAnnotationData
	files     []*models.FileAnnotationData
	thumbnail image.Image
	err       error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
