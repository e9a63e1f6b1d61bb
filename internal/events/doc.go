// Package events defines the closed set of messages exchanged between a front
// end and the tray dispatcher, and the queue that carries them.
//
// Front-end callbacks post events with [Queue.Post], which never blocks.
// Exactly one goroutine drains the queue with [Queue.Next] and applies the
// events in posting order.
package events
