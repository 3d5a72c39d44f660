//go:build forestree_debug

package hsm

// debugCheckInvariants panics on the first structural invariant
// violation when the forestree_debug build tag is set, a debug-only
// assert run after every active-set mutation. Release builds skip
// this entirely; see debug_off.go.
func debugCheckInvariants[S any](m *Machine[S]) {
	if err := m.CheckInvariants(); err != nil {
		panic(err)
	}
}
