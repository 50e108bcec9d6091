// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the arrkeeper runtime from its configuration.
//
// [NewApp] loads the merged configuration, opens the log file and builds the
// backend clients, the network executor and the view storage. Both front
// ends start from an [App]: the one-shot command uses its executor directly,
// the interactive UI runs through [App.Run].
package client
