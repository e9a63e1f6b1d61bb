// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"time"

	"github.com/MKhiriev/otp-tray/internal/events"
	"github.com/MKhiriev/otp-tray/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const statusClearDelay = 3 * time.Second

type screen int

const (
	screenMenu screen = iota
	screenSetup
	screenForm
	screenAbout
)

// model is the root bubbletea model. Screens driven by the dispatcher are
// replaced by render messages; navigation that needs no state change (back,
// about) stays local.
type model struct {
	sink events.Sink
	info models.AppBuildInfo

	screen screen
	menu   menuModel
	setup  setupModel
	form   entryFormModel

	status    string
	statusErr bool
	statusSeq int
}

func newModel(sink events.Sink, info models.AppBuildInfo) model {
	return model{sink: sink, info: info}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case renderMenuMsg:
		m.menu.items = msg.items
		m.menu.onSelect = msg.onSelect
		m.menu.rendered = true
		m.menu.idx = clampIndex(m.menu.idx, m.menu.rows())
		return m, nil
	case renderEntryListMsg:
		m.setup.names = msg.names
		m.setup.onSelect = msg.onSelect
		m.setup.idx = clampIndex(m.setup.idx, len(msg.names))
		m.setup.confirming = false
		m.setup.pending = false
		m.screen = screenSetup
		return m, nil
	case renderEntryFormMsg:
		// opening a form leaves the entries untouched, so the list is current
		m.setup.pending = false
		m.form = newEntryFormModel(msg)
		m.screen = screenForm
		return m, textinput.Blink
	case statusMsg:
		m.statusSeq++
		m.status = msg.text
		m.statusErr = msg.isErr
		seq := m.statusSeq
		return m, tea.Tick(statusClearDelay, func(time.Time) tea.Msg {
			return clearStatusMsg{seq: seq}
		})
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQ) {
			m.sink.Post(events.Quit{})
			return m, tea.Quit
		}

		switch m.screen {
		case screenSetup:
			return m.updateSetup(msg)
		case screenForm:
			return m.updateForm(msg)
		case screenAbout:
			if key.Matches(msg, keys.esc, keys.enter) {
				m.screen = screenMenu
			}
			return m, nil
		default:
			return m.updateMenu(msg)
		}
	}

	if m.screen == screenForm {
		return m.updateFormInput(msg)
	}
	return m, nil
}

func (m model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.menu.idx > 0 {
			m.menu.idx--
		}
	case key.Matches(msg, keys.down):
		if m.menu.idx < m.menu.rows()-1 {
			m.menu.idx++
		}
	case key.Matches(msg, keys.setup):
		m.sink.Post(events.OpenSetup{})
	case key.Matches(msg, keys.about):
		m.screen = screenAbout
	case key.Matches(msg, keys.quit):
		m.sink.Post(events.Quit{})
	case key.Matches(msg, keys.enter):
		item, action, isItem := m.menu.selected()
		if isItem {
			if m.menu.onSelect != nil {
				m.menu.onSelect(item.ID)
			}
			return m, nil
		}
		switch action {
		case actionSetup:
			m.sink.Post(events.OpenSetup{})
		case actionAbout:
			m.screen = screenAbout
		case actionQuit:
			m.sink.Post(events.Quit{})
		}
	}

	return m, nil
}

func (m model) updateSetup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.setup.confirming {
		switch {
		case key.Matches(msg, keys.yes):
			m.sink.Post(events.RemoveEntry{Index: m.setup.idx})
			m.setup.confirming = false
			m.setup.pending = true
		case key.Matches(msg, keys.no):
			m.setup.confirming = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenMenu
	case key.Matches(msg, keys.up):
		if m.setup.idx > 0 {
			m.setup.idx--
		}
	case key.Matches(msg, keys.down):
		if m.setup.idx < len(m.setup.names)-1 {
			m.setup.idx++
		}
	case key.Matches(msg, keys.newItem):
		m.sink.Post(events.OpenEntry{Action: models.AddAction()})
	case key.Matches(msg, keys.enter, keys.edit):
		if _, ok := m.setup.current(); ok && m.setup.onSelect != nil {
			m.setup.onSelect(m.setup.idx)
			m.setup.pending = true
		}
	case key.Matches(msg, keys.delete):
		if _, ok := m.setup.current(); ok {
			m.setup.confirming = true
		}
	}

	return m, nil
}

func (m model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		if m.form.onCancel != nil {
			m.form.onCancel()
		}
		m.screen = screenSetup
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.form.onSubmit == nil {
			return m, nil
		}
		if err := m.form.onSubmit(m.form.toForm()); err != nil {
			m.form.errMsg = err.Error()
			return m, nil
		}
		m.form.errMsg = ""
		m.screen = screenSetup
		return m, nil
	case key.Matches(msg, keys.nextField):
		m.form.moveFocus(1)
		return m, nil
	case key.Matches(msg, keys.prevField):
		m.form.moveFocus(-1)
		return m, nil
	}

	if m.form.focus == fieldHash {
		switch {
		case key.Matches(msg, keys.prevHash):
			m.form.cycleHash(-1)
		case key.Matches(msg, keys.nextHash):
			m.form.cycleHash(1)
		}
		return m, nil
	}

	return m.updateFormInput(msg)
}

func (m model) updateFormInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	in := m.form.input(m.form.focus)
	if in == nil {
		return m, nil
	}

	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	return m, cmd
}

func (m model) View() string {
	var body string
	switch m.screen {
	case screenSetup:
		body = m.setup.View()
	case screenForm:
		body = m.form.View()
	case screenAbout:
		body = renderBuildInfoWindow(m.info)
	default:
		body = m.menu.View()
	}

	if m.status != "" {
		style := statusStyle
		if m.statusErr {
			style = errorStyle
		}
		body += "\n\n  " + style.Render(m.status)
	}

	return appStyle.Render(body)
}
