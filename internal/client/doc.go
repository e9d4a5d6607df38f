// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the local cache, the letters API adapter, the client services and
// the background status job into a single process lifecycle.
package client
