// Package client implements the interactive client application runtime.
//
// It wires the terminal UI flows and client services into a single process
// lifecycle: session restore, login flow, dashboard loop, logout.
package client
