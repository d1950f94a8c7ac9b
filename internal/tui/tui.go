// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is a terminal browser over the service adapters: log in,
// walk projects, datasets and images, and inspect one image.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ome/openmicroscopy-sub022/internal/logger"
)

type TUI struct {
	connector Connector
	version   string
	logger    *logger.Logger
}

func New(connector Connector, version string, log *logger.Logger) *TUI {
	return &TUI{connector: connector, version: version, logger: log.Component("tui")}
}

// Run blocks until the user quits. The session open at that point is
// closed before Run returns.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.connector, t.version, t.logger)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if result, ok := finalModel.(appModel); ok && result.session != nil {
		result.session.Logout(context.WithoutCancel(ctx))
	}
	return err
}
