// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"image"
	"strconv"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ome/openmicroscopy-sub022/internal/gateway"
	"github.com/ome/openmicroscopy-sub022/internal/logger"
	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/ome/openmicroscopy-sub022/internal/service"
	"github.com/ome/openmicroscopy-sub022/models"
)

type screen int

const (
	screenLogin screen = iota
	screenBrowse
	screenDetail
)

const thumbnailSize = 96

type appModel struct {
	ctx       context.Context
	connector Connector
	version   string
	logger    *logger.Logger

	currentScreen screen
	login         loginModel
	levels        []listModel
	detail        detailModel

	session Session
	space   string

	showError    bool
	errorOverlay errorOverlayModel
	showConfirm  bool
	confirm      confirmModel
}

func newAppModel(ctx context.Context, connector Connector, version string, log *logger.Logger) appModel {
	return appModel{
		ctx:           ctx,
		connector:     connector,
		version:       version,
		logger:        log,
		currentScreen: screenLogin,
		login:         newLoginModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.showError {
			if msg.String() == "enter" || msg.String() == "esc" {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				return m, m.cmdReconnect()
			}
			if key.Matches(msg, keys.no) || msg.String() == "esc" {
				m.showConfirm = false
				return m, tea.Quit
			}
			return m, nil
		}
	case loggedInMsg:
		m.login.submitting = false
		if msg.err != nil {
			if m.currentScreen == screenLogin {
				m.login.errMsg = msg.err.Error()
				return m, nil
			}
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		return m.startBrowsing(msg.session)
	case spaceLoadedMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Msg("cannot load repository space")
			return m, nil
		}
		m.space = fmt.Sprintf("used %s · free %s", bytesOrDash(msg.used), bytesOrDash(msg.free))
		return m, nil
	case rowsLoadedMsg:
		if msg.level >= len(m.levels) {
			return m, nil
		}
		m.levels[msg.level].loading = false
		if msg.err != nil {
			return m, m.fail(msg.err)
		}
		m.levels[msg.level].rows = msg.rows
		m.levels[msg.level].idx = 0
		return m, nil
	case detailLoadedMsg:
		m.detail.loading = false
		if msg.err != nil {
			return m, m.fail(msg.err)
		}
		m.detail.tags = msg.tags
		m.detail.files = msg.files
		m.detail.thumbnail = msg.thumbnail
		return m, nil
	case copiedMsg:
		status := "Copied!"
		if msg.err != nil {
			status = msg.err.Error()
		}
		m.detail.status = status
		if top := m.top(); top != nil {
			top.status = status
		}
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.detail.status = ""
		if top := m.top(); top != nil {
			top.status = ""
		}
		return m, nil
	case spinner.TickMsg:
		if top := m.top(); top != nil && top.loading {
			var cmd tea.Cmd
			top.spinner, cmd = top.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenBrowse:
		return m.updateBrowse(msg)
	case screenDetail:
		return m.updateDetail(msg)
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, tea.Quit
		case "tab", "down":
			m.login.focusNext()
			return m, nil
		case "shift+tab", "up":
			m.login.focusPrev()
			return m, nil
		case "enter":
			if m.login.submitting {
				return m, nil
			}
			creds, ok := m.login.credentials()
			if !ok {
				m.login.errMsg = "user and password are required"
				return m, nil
			}
			m.login.errMsg = ""
			m.login.submitting = true
			return m, m.cmdLogin(creds)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	top := m.top()

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		top.move(-1)
	case key.Matches(keyMsg, keys.down):
		top.move(1)
	case key.Matches(keyMsg, keys.esc):
		if len(m.levels) > 1 {
			m.levels = m.levels[:len(m.levels)-1]
		}
	case key.Matches(keyMsg, keys.enter):
		r, ok := top.current()
		if !ok {
			return m, nil
		}
		return m.open(r)
	case key.Matches(keyMsg, keys.allImages):
		m.levels = append(m.levels[:1], newListModel("ALL IMAGES"))
		return m, tea.Batch(m.top().spinner.Tick, m.cmdLoadUserImages(len(m.levels)-1))
	case key.Matches(keyMsg, keys.refresh):
		m.levels = []listModel{newListModel("PROJECTS")}
		return m, tea.Batch(m.top().spinner.Tick, m.cmdLoadProjects(), m.cmdLoadSpace())
	case key.Matches(keyMsg, keys.copy):
		if r, ok := top.current(); ok {
			return m, cmdCopyToClipboard(strconv.FormatInt(r.id, 10))
		}
	case key.Matches(keyMsg, keys.logout):
		m.session.Logout(m.ctx)
		m.session = nil
		m.levels = nil
		m.space = ""
		m.login.reset()
		m.currentScreen = screenLogin
	}
	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenBrowse
		m.detail = detailModel{}
	case key.Matches(keyMsg, keys.copy):
		if m.detail.image != nil {
			return m, cmdCopyToClipboard(strconv.FormatInt(m.detail.image.ID(), 10))
		}
	}
	return m, nil
}

// open descends into r: a project shows its datasets, a dataset its images
// and an image its details.
func (m appModel) open(r row) (tea.Model, tea.Cmd) {
	switch obj := r.obj.(type) {
	case *models.ProjectData:
		l := newListModel("PROJECT " + obj.Name())
		l.loading = false
		l.rows = datasetRows(obj.Datasets())
		m.levels = append(m.levels, l)
		return m, nil
	case *models.DatasetData:
		m.levels = append(m.levels, newListModel("DATASET "+obj.Name()))
		return m, tea.Batch(m.top().spinner.Tick, m.cmdLoadImages(len(m.levels)-1, obj.ID()))
	case *models.ImageData:
		m.currentScreen = screenDetail
		m.detail = detailModel{image: obj, loading: true}
		return m, m.cmdLoadDetail(obj)
	}
	return m, nil
}

func (m appModel) startBrowsing(s Session) (tea.Model, tea.Cmd) {
	m.session = s
	m.currentScreen = screenBrowse
	m.detail = detailModel{}
	m.levels = []listModel{newListModel("PROJECTS")}
	return m, tea.Batch(m.top().spinner.Tick, m.cmdLoadProjects(), m.cmdLoadSpace())
}

func (m *appModel) top() *listModel {
	if len(m.levels) == 0 {
		return nil
	}
	return &m.levels[len(m.levels)-1]
}

// fail reports err. A server that stopped answering offers a reconnect
// instead of a plain error.
func (m *appModel) fail(err error) tea.Cmd {
	if kind, ok := gateway.KindOf(err); ok && kind == gateway.KindOutOfService && m.session != nil {
		m.showConfirm = true
		m.confirm.message = err.Error()
		return nil
	}
	if errors.Is(err, service.ErrRendering) {
		m.logger.Warn().Err(err).Msg("rendering failed")
	}
	m.showErrorf(err.Error())
	return nil
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) header() string {
	h := "OMERO"
	if m.session != nil {
		if user := m.session.User(); user != nil {
			h += "  " + user.DisplayName()
		}
	}
	if m.space != "" {
		h += "  " + helpStyle.Render(m.space)
	}
	return h
}

func (m appModel) path() string {
	p := ""
	for i, l := range m.levels {
		if i > 0 {
			p += " › "
		}
		p += l.title
	}
	return helpStyle.Render(p)
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenLogin:
		body = m.login.View(m.version)
	case screenBrowse:
		if top := m.top(); top != nil {
			body = top.View(m.header(), m.path())
		}
	case screenDetail:
		body = m.header() + "\n\n" + m.detail.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m appModel) cmdLogin(creds remote.Credentials) tea.Cmd {
	ctx, connector := m.ctx, m.connector
	return func() tea.Msg {
		s, err := connector.Login(ctx, creds)
		return loggedInMsg{session: s, err: err}
	}
}

func (m appModel) cmdReconnect() tea.Cmd {
	ctx, connector, old := m.ctx, m.connector, m.session
	return func() tea.Msg {
		s, err := connector.Reconnect(ctx, old)
		return loggedInMsg{session: s, err: err}
	}
}

func (m appModel) userID() int64 {
	if user := m.session.User(); user != nil {
		return user.ID()
	}
	return -1
}

func (m appModel) cmdLoadProjects() tea.Cmd {
	ctx, svcs, userID := m.ctx, m.session.Services(), m.userID()
	return func() tea.Msg {
		objs, err := svcs.DataService.LoadTopContainerHierarchy(ctx, remote.KindProject, userID)
		return rowsLoadedMsg{level: 0, rows: projectRows(objs), err: err}
	}
}

func (m appModel) cmdLoadImages(level int, datasetID int64) tea.Cmd {
	ctx, svcs, userID := m.ctx, m.session.Services(), m.userID()
	return func() tea.Msg {
		images, err := svcs.DataService.GetImages(ctx, remote.KindDataset, []int64{datasetID}, userID)
		return rowsLoadedMsg{level: level, rows: imageRows(images), err: err}
	}
}

func (m appModel) cmdLoadUserImages(level int) tea.Cmd {
	ctx, svcs, userID := m.ctx, m.session.Services(), m.userID()
	return func() tea.Msg {
		images, err := svcs.DataService.GetExperimenterImages(ctx, userID)
		return rowsLoadedMsg{level: level, rows: imageRows(images), err: err}
	}
}

func (m appModel) cmdLoadSpace() tea.Cmd {
	ctx, admin := m.ctx, m.session.Services().AdminService
	return func() tea.Msg {
		used, err := admin.GetSpace(ctx, service.SpaceUsed)
		if err != nil {
			return spaceLoadedMsg{err: err}
		}
		free, err := admin.GetSpace(ctx, service.SpaceFree)
		return spaceLoadedMsg{used: used, free: free, err: err}
	}
}

func (m appModel) cmdLoadDetail(img *models.ImageData) tea.Cmd {
	ctx, svcs := m.ctx, m.session.Services()
	return func() tea.Msg {
		annotations, err := svcs.MetadataService.LoadAnnotations(ctx, remote.KindImage, img.ID(), nil)
		if err != nil {
			return detailLoadedMsg{image: img, err: err}
		}
		msg := detailLoadedMsg{image: img}
		for _, a := range annotations {
			switch a := a.(type) {
			case *models.TagAnnotationData:
				msg.tags = append(msg.tags, a)
			case *models.FileAnnotationData:
				msg.files = append(msg.files, a)
			}
		}

		var thumb image.Image
		if px := img.DefaultPixels(); px != nil {
			thumb, err = svcs.ImageService.GetThumbnailByLongestSide(ctx, px.ID(), thumbnailSize)
		}
		msg.thumbnail, msg.err = thumb, err
		return msg
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
