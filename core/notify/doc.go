// Package notify turns a subscriber and the instances that changed for them
// into a ready-to-send Message.
//
// Composition is pure: no I/O happens here. Delivery belongs to a Sender
// (see core/mailer).
//
// # Body Format
//
//	Hello Ada Lovelace,
//
//	There has been a change of status in 2 server instances you are subscribing to.
//
//	Here are the current statuses of those servers that have changed:
//
//	NA1 -> DOWN
//	NA2 -> UP
//
//	Thank you.
//
// Lines are joined with CRLF.
package notify
