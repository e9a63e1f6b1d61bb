// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// ActionKind distinguishes adding a new entry from editing an existing one.
type ActionKind int

const (
	ActionAdd ActionKind = iota
	ActionEdit
)

// EntryAction tells a save operation where an entry goes: appended to the end
// of the list, or written over the entry at Index.
type EntryAction struct {
	Kind  ActionKind
	Index int
}

// AddAction returns an action that appends.
func AddAction() EntryAction {
	return EntryAction{Kind: ActionAdd}
}

// EditAction returns an action that replaces the entry at index.
func EditAction(index int) EntryAction {
	return EntryAction{Kind: ActionEdit, Index: index}
}

// IsEdit reports whether the action targets an existing entry.
func (a EntryAction) IsEdit() bool {
	return a.Kind == ActionEdit
}

// WindowTitle is the title of the editor opened for this action.
func (a EntryAction) WindowTitle() string {
	if a.IsEdit() {
		return "Edit Entry"
	}
	return "Add Entry"
}

func (a EntryAction) String() string {
	if a.IsEdit() {
		return fmt.Sprintf("edit(%d)", a.Index)
	}
	return "add"
}
