// Package redis implements the locker ports on top of Redis hashes, the
// system's external key-value store.
//
// Persisted layout:
//
//	locker:{lockerId}        hash: lockerId (echo of the key), cells (CSV)
//	cell:{lockerId}_{cellId} hash: status ("closed"/"open"), pin
//
// Per-locker atomicity is provided by optimistic WATCH/MULTI transactions
// over the locker's cell keys; lazy cell initialization uses HSETNX inside a
// MULTI block so racing first-touches converge on the same defaults.
package redis

import "fmt"

const (
	fieldLockerID = "lockerId"
	fieldCells    = "cells"
	fieldStatus   = "status"
	fieldPin      = "pin"
)

func lockerKey(lockerID int64) string {
	return fmt.Sprintf("locker:%d", lockerID)
}

func cellKey(lockerID int64, cellID string) string {
	return fmt.Sprintf("cell:%d_%s", lockerID, cellID)
}
