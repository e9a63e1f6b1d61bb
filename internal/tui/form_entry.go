// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"slices"
	"strings"

	"github.com/MKhiriev/otp-tray/internal/validators"
	"github.com/MKhiriev/otp-tray/models"
	"github.com/charmbracelet/bubbles/textinput"
)

// Focus order of the entry form.
const (
	fieldName = iota
	fieldSecret
	fieldHash
	fieldStep
	fieldDigits
	fieldCount
)

type entryFormModel struct {
	title   string
	name    textinput.Model
	secret  textinput.Model
	step    textinput.Model
	digits  textinput.Model
	hashIdx int
	focus   int
	errMsg  string

	onSubmit func(models.EntryForm) error
	onCancel func()
}

func newEntryFormModel(msg renderEntryFormMsg) entryFormModel {
	form := validators.FormFromEntry(msg.initial)

	newInput := func(value string) textinput.Model {
		in := textinput.New()
		in.Width = 40
		in.Prompt = ""
		in.SetValue(value)
		return in
	}

	m := entryFormModel{
		title:    msg.title,
		name:     newInput(form.Name),
		secret:   newInput(form.Secret),
		step:     newInput(form.Step),
		digits:   newInput(form.DigitCount),
		hashIdx:  max(slices.Index(models.HashFunctions, msg.initial.HashFn), 0),
		onSubmit: msg.onSubmit,
		onCancel: msg.onCancel,
	}
	m.name.CharLimit = models.MaxNameLength
	m.secret.EchoMode = textinput.EchoPassword
	m.secret.EchoCharacter = '*'
	m.name.Focus()

	return m
}

// input returns the text input behind field, or nil for the hash selector.
func (m *entryFormModel) input(field int) *textinput.Model {
	switch field {
	case fieldName:
		return &m.name
	case fieldSecret:
		return &m.secret
	case fieldStep:
		return &m.step
	case fieldDigits:
		return &m.digits
	default:
		return nil
	}
}

func (m *entryFormModel) moveFocus(delta int) {
	if in := m.input(m.focus); in != nil {
		in.Blur()
	}
	m.focus = (m.focus + delta + fieldCount) % fieldCount
	if in := m.input(m.focus); in != nil {
		in.Focus()
	}
}

func (m *entryFormModel) cycleHash(delta int) {
	n := len(models.HashFunctions)
	m.hashIdx = (m.hashIdx + delta + n) % n
}

func (m entryFormModel) toForm() models.EntryForm {
	return models.EntryForm{
		Name:       m.name.Value(),
		Step:       m.step.Value(),
		Secret:     m.secret.Value(),
		HashFn:     models.HashFunctions[m.hashIdx].String(),
		DigitCount: m.digits.Value(),
	}
}

func (m entryFormModel) View() string {
	var b strings.Builder

	label := func(field int, text string) {
		b.WriteString(cursorLine(text, m.focus == field))
	}

	label(fieldName, "Name:     ")
	b.WriteString("[" + m.name.View() + "]\n")
	label(fieldSecret, "Secret:   ")
	b.WriteString("[" + m.secret.View() + "]\n")
	label(fieldHash, "Hash:     ")
	b.WriteString("< " + models.HashFunctions[m.hashIdx].String() + " >\n")
	label(fieldStep, "Step:     ")
	b.WriteString("[" + m.step.View() + "]\n")
	label(fieldDigits, "Digits:   ")
	b.WriteString("[" + m.digits.View() + "]")

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}

	return renderPage(strings.ToUpper(m.title), b.String(), "enter: save │ tab: next field │ ←/→: hash function │ esc: cancel")
}
