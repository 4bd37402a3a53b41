// Package services contains stateless domain services that coordinate
// multiple cells of a locker. Services hold no per-request state; every
// invocation builds its working data fresh in local scope.
package services
