// SPDX-License-Identifier: Apache-2.0

// Package client implements the interactive client application runtime.
//
// It wires the command loop, client services, and the background index
// refresh worker into a single process lifecycle. All cryptography and
// networking live below the service layer; this package only parses
// commands, moves bytes between the filesystem and the services, and
// manages login state transitions.
package client
