//go:build !forestree_debug

package hsm

// debugCheckInvariants is a no-op outside forestree_debug builds.
func debugCheckInvariants[S any](m *Machine[S]) {}
