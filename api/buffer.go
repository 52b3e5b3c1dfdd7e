// Package api
// Author: momentics
//
// Role-swapping bulk buffer contract for phase-alternating pipelines.
//
// A SwapBuffer decouples a producer phase from a consumer phase operating
// on bulk data of identical shape. Roles swap; contents never move.

package api

// SwapBuffer is the double-buffer contract.
//
// The structure performs no synchronization of its own. Commit must only be
// called at a phase barrier: the producer has finished with the write view
// and the consumer has finished with the read view. Views retained across a
// Commit observe the other plane; that is caller misuse, not a detectable
// failure mode.
type SwapBuffer[T any] interface {
	// WriteView returns the plane currently holding the write role.
	WriteView() []T

	// ReadView returns the plane currently holding the read role. Contents
	// are undefined before the first Commit.
	ReadView() []T

	// Commit exchanges the two roles in O(1). No data is copied.
	Commit()
}
