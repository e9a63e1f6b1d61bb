// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	quit    key.Binding
	forceQ  key.Binding
	setup   key.Binding
	about   key.Binding
	newItem key.Binding
	edit    key.Binding
	delete  key.Binding
	yes     key.Binding
	no      key.Binding

	// form bindings never capture printable characters
	nextField key.Binding
	prevField key.Binding
	prevHash  key.Binding
	nextHash  key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	quit:    key.NewBinding(key.WithKeys("q")),
	forceQ:  key.NewBinding(key.WithKeys("ctrl+c")),
	setup:   key.NewBinding(key.WithKeys("s")),
	about:   key.NewBinding(key.WithKeys("i")),
	newItem: key.NewBinding(key.WithKeys("a")),
	edit:    key.NewBinding(key.WithKeys("e")),
	delete:  key.NewBinding(key.WithKeys("d")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n", "esc")),

	nextField: key.NewBinding(key.WithKeys("tab", "down")),
	prevField: key.NewBinding(key.WithKeys("shift+tab", "up")),
	prevHash:  key.NewBinding(key.WithKeys("left")),
	nextHash:  key.NewBinding(key.WithKeys("right")),
}
