// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/ome/openmicroscopy-sub022/models"
)

// row is one line of a browser list.
type row struct {
	id    int64
	kind  remote.Kind
	title string
	info  string
	obj   models.DataObject
}

type listModel struct {
	title   string
	rows    []row
	idx     int
	loading bool
	spinner spinner.Model
	status  string
}

func newListModel(title string) listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{title: title, spinner: s, loading: true}
}

func (m listModel) current() (row, bool) {
	if len(m.rows) == 0 || m.idx < 0 || m.idx >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.idx], true
}

func (m *listModel) move(delta int) {
	if len(m.rows) == 0 {
		return
	}
	m.idx = (m.idx + delta + len(m.rows)) % len(m.rows)
}

func listIcon(k remote.Kind) string {
	switch k {
	case remote.KindProject:
		return "[P]"
	case remote.KindDataset:
		return "[D]"
	case remote.KindImage:
		return "[I]"
	default:
		return "[?]"
	}
}

func (m listModel) View(header, path string) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(path)
	if m.loading {
		b.WriteString("  ")
		b.WriteString(m.spinner.View())
	}
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.rows) == 0:
		b.WriteString("Nothing here\n")
	default:
		for i, r := range m.rows {
			line := fmt.Sprintf("%s %-6d %-32s %s", listIcon(r.kind), r.id, fitText(r.title, 32), fitText(r.info, 30))
			if i == m.idx {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return renderPage(m.title, strings.TrimRight(b.String(), "\n"),
		"↑/↓: move │ enter: open │ esc: back │ a: all images │ r: reload │ c: copy id │ x: log out")
}

func projectRows(objs []models.DataObject) []row {
	rows := make([]row, 0, len(objs))
	for _, o := range objs {
		p, ok := o.(*models.ProjectData)
		if !ok {
			continue
		}
		rows = append(rows, row{
			id:    p.ID(),
			kind:  remote.KindProject,
			title: p.Name(),
			info:  fmt.Sprintf("%d datasets", len(p.Datasets())),
			obj:   p,
		})
	}
	return rows
}

func datasetRows(datasets []*models.DatasetData) []row {
	rows := make([]row, 0, len(datasets))
	for _, d := range datasets {
		rows = append(rows, row{
			id:    d.ID(),
			kind:  remote.KindDataset,
			title: d.Name(),
			info:  valueOrDash(d.Description()),
			obj:   d,
		})
	}
	return rows
}

func imageRows(images []*models.ImageData) []row {
	rows := make([]row, 0, len(images))
	for _, img := range images {
		info := "-"
		if px := img.DefaultPixels(); px != nil {
			info = px.Dimensions()
		}
		rows = append(rows, row{
			id:    img.ID(),
			kind:  remote.KindImage,
			title: img.Name(),
			info:  info,
			obj:   img,
		})
	}
	return rows
}
