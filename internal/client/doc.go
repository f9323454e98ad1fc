// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// Every invocation logs in with the configured credentials and then runs a
// single subcommand (login, list, create, update or delete) against the
// asset routes of the server.
package client
