// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app implements the application runtime.
//
// It wires the note service adapter, domain services, the tool set and the
// selected transport into a single process lifecycle.
package app
