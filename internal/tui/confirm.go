// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

// confirmModel asks whether to reopen a session the server no longer
// answers for.
type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	content := m.message + "\n\nReconnect?\n\n"
	content += "y yes    n quit"
	return overlayBoxStyle.Render(content)
}
