// SPDX-License-Identifier: Apache-2.0

package client

// Client is the entry point contract for the interactive application.
// main builds an implementation and hands over control until exit.
type Client interface {
	// Run drives the command loop until the user quits or input ends.
	Run() error
}
