// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the plain data types shared by every layer of the
// tray: credential entries and their editor form, entry actions, derived
// code values, menu items and build metadata.
package models
