package hsm

import "fmt"

// CheckInvariants walks the full active set and reports the first
// violation of the engine's structural invariants:
//
//   - every active vertex other than the root has an active parent.
//   - a non-region active vertex has either zero active children (it is
//     an active leaf) or exactly one.
//   - a region active vertex has every one of its children active: a
//     region always fans out to all children together on entry and
//     never partially deactivates one without the rest.
//
// That every active subtree therefore has a well-defined active leaf
// follows from these checks by induction and is not checked directly.
//
// It is intended for use from tests and from debug builds (see the
// forestree_debug build tag files in this package) rather than on every
// hot-path dispatch.
func (m *Machine[S]) CheckInvariants() error {
	t := m.traits.Tree
	root := t.Root()

	for i, active := range m.active {
		if !active {
			continue
		}
		if i != root && !m.active[t.Parent(i)] {
			return fmt.Errorf("%w: vertex %d is active but its parent %d is not", ErrInvariantViolation, i, t.Parent(i))
		}
		if m.traits.IsRegion[i] {
			for _, c := range t.Children(i) {
				if !m.active[c] {
					return fmt.Errorf("%w: region vertex %d is active but child %d is not", ErrInvariantViolation, i, c)
				}
			}
			continue
		}
		activeChildren := 0
		for _, c := range t.Children(i) {
			if m.active[c] {
				activeChildren++
			}
		}
		if activeChildren > 1 {
			return fmt.Errorf("%w: non-region vertex %d has %d active children, want at most 1", ErrInvariantViolation, i, activeChildren)
		}
	}
	return nil
}
