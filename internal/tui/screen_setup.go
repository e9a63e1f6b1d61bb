// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/otp-tray/internal/app"
)

// setupModel lists the entry names. Indices it hands out are only valid for
// the list they were taken from, so after an edit or remove the model is
// pending until the dispatcher renders the list again.
type setupModel struct {
	names      []string
	onSelect   func(index int)
	idx        int
	confirming bool
	pending    bool
}

// current returns the name under the cursor. Nothing is selectable while the
// list is pending.
func (m setupModel) current() (string, bool) {
	if m.pending || m.idx < 0 || m.idx >= len(m.names) {
		return "", false
	}
	return m.names[m.idx], true
}

func (m setupModel) View() string {
	var b strings.Builder

	if len(m.names) == 0 {
		b.WriteString(helpStyle.Render(app.MsgNoEntriesSetup))
	}
	for i, name := range m.names {
		b.WriteString(cursorLine(fitText(name, 60), i == m.idx))
		b.WriteString("\n")
	}

	if m.pending {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(app.MsgUpdatingEntries))
	}

	if name, ok := m.current(); ok && m.confirming {
		b.WriteString("\n")
		b.WriteString(confirmModel{message: name}.View())
	}

	return renderPage("SETUP", strings.TrimRight(b.String(), "\n"),
		"enter/e: edit │ a: add │ d: remove │ esc: back")
}
