// Package cell contains the Cell entity and its value objects: the
// open/closed Status state machine and the six-digit Pin with its two
// non-matching sentinel values.
//
// A cell's state record is created lazily on first touch with status closed
// and the unset PIN sentinel; it is never deleted by the core. Closing a
// cell masks its PIN, so a closed cell has no usable PIN until one is
// explicitly re-assigned.
package cell
