// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ActivationPolicy controls how the front end presents itself: as a regular
// foreground application or as a background tray-only utility.
type ActivationPolicy int

const (
	Background ActivationPolicy = iota
	Foreground
)

// ActivationPolicyFromFlag maps the -f command-line switch to a policy.
func ActivationPolicyFromFlag(foreground bool) ActivationPolicy {
	if foreground {
		return Foreground
	}
	return Background
}

func (p ActivationPolicy) String() string {
	if p == Foreground {
		return "foreground"
	}
	return "background"
}
