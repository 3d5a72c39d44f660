package hsm

import (
	"fmt"
	"reflect"
)

// reactant is one (leaf, super) pair found while walking every active
// leaf's ancestor chain looking for a Reactor[S, E]: super is the
// vertex whose bound record implements Reactor[S, E], and leaf is the
// descendant leaf the pair is reachable from.
type reactant struct {
	leaf  int
	super int
}

// computeReactants derives, once per event type E, every (leaf, super)
// pair the tree can ever produce for E. Go has no compile-time
// reflection over a closed set of event types, so this scans every
// vertex's bound record with a type assertion at first use and then
// caches the result (reactants below).
//
// Order: leaves in increasing index order, and within a leaf's ancestor
// chain, the vertex closest to the leaf (most-derived) before any
// ancestor closer to the root.
func computeReactants[S any, E any](m *Machine[S]) []reactant {
	t := m.traits.Tree
	n := t.NumVertices()
	root := t.Root()

	var out []reactant
	for leaf := 0; leaf < n; leaf++ {
		for cur := leaf; ; cur = t.Parent(cur) {
			if _, ok := m.traits.Records[cur].(Reactor[S, E]); ok {
				out = append(out, reactant{leaf: leaf, super: cur})
			}
			if cur == root {
				break
			}
		}
	}
	return out
}

func (m *Machine[S]) reactantsFor(event reflect.Type, compute func() []reactant) []reactant {
	if v, ok := m.reactants.Load(event); ok {
		return v.([]reactant)
	}
	computed := compute()
	actual, _ := m.reactants.LoadOrStore(event, computed)
	return actual.([]reactant)
}

// React dispatches event to the machine: in increasing leaf-index
// order, then closest-ancestor-first within a leaf's chain, it looks
// for the first vertex whose record implements Reactor[S, E] and, if
// present, Guarder[S, E]. A reactant whose guard returns false is
// skipped as if it were absent, letting the walk continue up the same
// chain or on to the next leaf. The first reactant that fires — guard
// absent or true — ends dispatch for this call entirely: at most one
// user reaction runs per React call machine-wide, even when orthogonal
// regions leave more than one leaf active. Its TransitResult (if not
// TransitNone) then drives a transition out of that reactant's leaf.
// React reports whether any reactant fired.
func React[S any, E any](m *Machine[S], event E) bool {
	key := typeOf[E]()
	rs := m.reactantsFor(key, func() []reactant { return computeReactants[S, E](m) })

	for _, r := range rs {
		if !m.isLeaf(r.leaf) {
			continue
		}
		record := m.traits.Records[r.super]
		reactor := record.(Reactor[S, E])
		ctx := m.GetContext(r.leaf)

		if g, ok := record.(Guarder[S, E]); ok && !g.Guard(ctx, event) {
			continue
		}

		result := reactor.React(ctx, event)
		if !result.IsNone() {
			idx, ok := result.resolve(m.indexOfType)
			if !ok {
				panic(fmt.Sprintf("hsm: transit target type %s is not bound to any vertex", result.target))
			}
			m.transit(r.leaf, idx)
			debugCheckInvariants(m)
		}
		return true
	}
	return false
}

// ValidateEvent reports ErrUnsupportedEvent if no vertex in the tree
// can ever react to E, letting a caller reject an event type at setup
// time instead of discovering it is a silent no-op on first dispatch.
func ValidateEvent[S any, E any](m *Machine[S]) error {
	key := typeOf[E]()
	rs := m.reactantsFor(key, func() []reactant { return computeReactants[S, E](m) })
	if len(rs) == 0 {
		return ErrUnsupportedEvent
	}
	return nil
}
