// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrUnknownCodeID is returned when a menu item id does not resolve in
	// the current snapshot, typically because it belongs to an older render.
	ErrUnknownCodeID = errors.New("unknown code id")
	// ErrClipboard wraps a front-end failure to copy a code.
	ErrClipboard = errors.New("copy to clipboard failed")
	// ErrUnknownEvent is returned by Handle for an event type it does not
	// dispatch.
	ErrUnknownEvent = errors.New("unknown event")
)
