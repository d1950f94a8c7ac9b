// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/ome/openmicroscopy-sub022/internal/remote"
)

type loginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newLoginModel() loginModel {
	userInput := textinput.New()
	userInput.Placeholder = "user"
	userInput.CharLimit = 64
	userInput.Width = 40
	userInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return loginModel{inputs: []textinput.Model{userInput, passwordInput}}
}

// credentials returns the form values, or false when a field is empty.
func (m loginModel) credentials() (remote.Credentials, bool) {
	creds := remote.Credentials{
		UserName: strings.TrimSpace(m.inputs[0].Value()),
		Password: m.inputs[1].Value(),
	}
	return creds, creds.UserName != "" && creds.Password != ""
}

func (m *loginModel) reset() {
	m.inputs[1].SetValue("")
	m.submitting = false
	m.errMsg = ""
	m.inputs[m.focus].Blur()
	m.focus = 0
	m.inputs[0].Focus()
}

func (m *loginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *loginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m loginModel) View(version string) string {
	var b strings.Builder
	b.WriteString("Field    │ Value\n")
	b.WriteString("─────────┼────────────────────────────────────────────\n")
	b.WriteString("User     │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Log in...]\n")
	} else {
		b.WriteString("\n[Log in]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	title := "OMERO LOGIN"
	if version != "" {
		title += "  v" + version
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: log in")
}
