// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/otp-tray/internal/app"
	"github.com/MKhiriev/otp-tray/models"
)

type menuAction int

const (
	actionSetup menuAction = iota
	actionAbout
	actionQuit
)

var menuActions = []struct {
	label  string
	action menuAction
}{
	{"Setup", actionSetup},
	{"About", actionAbout},
	{"Quit", actionQuit},
}

// menuModel lists the codes followed by the fixed actions. The cursor runs
// over both.
type menuModel struct {
	items    []models.MenuItem
	onSelect func(id uint64)
	idx      int
	rendered bool
}

func (m menuModel) rows() int {
	return len(m.items) + len(menuActions)
}

// selected returns the code item under the cursor, or the action when the
// cursor is past the codes.
func (m menuModel) selected() (item models.MenuItem, action menuAction, isItem bool) {
	if m.idx < len(m.items) {
		return m.items[m.idx], 0, true
	}
	return models.MenuItem{}, menuActions[m.idx-len(m.items)].action, false
}

func (m menuModel) View() string {
	var b strings.Builder

	switch {
	case !m.rendered:
		b.WriteString(helpStyle.Render(app.MsgLoadingCodes))
		b.WriteString("\n")
	case len(m.items) == 0:
		b.WriteString(helpStyle.Render(app.MsgNoEntries))
		b.WriteString("\n")
	default:
		for i, item := range m.items {
			b.WriteString(cursorLine(fitText(item.Label, 60), i == m.idx))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	for i, a := range menuActions {
		b.WriteString(cursorLine(a.label, len(m.items)+i == m.idx))
		b.WriteString("\n")
	}

	return renderPage(strings.ToUpper(models.AppName), strings.TrimRight(b.String(), "\n"),
		"enter: copy │ ↑/↓: navigate │ s: setup │ i: about │ q: quit")
}
