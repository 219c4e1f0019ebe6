// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// [App] parses a command and its flags, calls the server through an
// [adapter.ServerAdapter] and prints the result to its output writer.
package client
