// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// OTPTray front end.
//
// All Msg* constants are human-readable strings shown to the user. Keeping
// them in one place ensures consistent wording on every screen.
package app

const (
	// MsgLoadingCodes is shown in the menu before the first refresh lands.
	MsgLoadingCodes = "Loading codes..."

	// MsgNoEntries is the single informational menu item shown when no
	// entries are configured.
	MsgNoEntries = "No OTP entries. Start with setup"

	// MsgNoEntriesSetup is shown on the setup screen with an empty list.
	MsgNoEntriesSetup = "No entries yet. Press a to add one."

	// MsgUpdatingEntries is shown on the setup screen while a change to the
	// entry list is being applied.
	MsgUpdatingEntries = "Updating entries..."

	// MsgCodeCopied confirms that a code was placed on the clipboard.
	MsgCodeCopied = "Code copied to clipboard"

	// MsgCopyFailed prefixes the clipboard error in the status line.
	MsgCopyFailed = "Copy failed"
)
