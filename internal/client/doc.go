// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the example client runtime.
//
// It wires configuration, the user services and the optional terminal UI
// into a single process lifecycle. Without the UI the client loads the
// configured users once, demonstrates a chained lookup and keeps refreshing
// in the background until it receives SIGINT or SIGTERM.
package client
