// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the user records served by the fixture users API.
//
// Records are read once from a JSON array, either the built-in fixtures or a
// file given in the server config, and kept in memory.
package store
