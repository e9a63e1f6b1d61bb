// Package client implements the tray application runtime.
//
// It wires the entries storage, the state store, the event queue, the
// dispatcher and the terminal front end into a single process lifecycle.
package client
