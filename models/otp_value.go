// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// OTPValue is a freshly derived code paired with the name of its entry.
type OTPValue struct {
	Name string
	Code string
}

// MenuLabel renders the value the way it appears in the tray menu.
func (v OTPValue) MenuLabel() string {
	return v.Name + ": " + v.Code
}

// MenuItem is one rendered code line. ID is the ephemeral id the front end
// hands back when the item is chosen; it is only resolvable for the render
// that produced it.
type MenuItem struct {
	ID    uint64
	Label string
}
