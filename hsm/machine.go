package hsm

import (
	"fmt"
	"reflect"
	"sync"
)

// Machine is a running instance of a bound hierarchy: the active-set
// bitset, the shared storage of type S, and the bookkeeping needed to
// dispatch reactions and transitions over it.
//
// A Machine is not safe for concurrent use by multiple goroutines; a
// caller driving several machines concurrently (botrunner does, one per
// chat) must serialize access to each one itself.
type Machine[S any] struct {
	traits    *Traits
	active    []bool
	storage   S
	started   bool
	typeIndex map[reflect.Type]int
	reactants sync.Map // reflect.Type (event) -> []reactant
}

// NewMachine builds a Machine over traits with the given shared
// storage. It fails if two bound state records share the same Go type,
// since StateCastType and TransitTo resolve targets by type and require
// that mapping to be unambiguous.
func NewMachine[S any](traits *Traits, storage S) (*Machine[S], error) {
	typeIndex := make(map[reflect.Type]int, len(traits.Records))
	for i, r := range traits.Records {
		if r == nil {
			continue
		}
		t := reflect.TypeOf(r)
		if t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if other, dup := typeIndex[t]; dup {
			return nil, fmt.Errorf("%w: state records at vertices %d and %d share type %s", ErrBind, other, i, t)
		}
		typeIndex[t] = i
	}
	return &Machine[S]{
		traits:    traits,
		active:    make([]bool, len(traits.Records)),
		storage:   storage,
		typeIndex: typeIndex,
	}, nil
}

func typeOf[T any]() reflect.Type { return reflect.TypeFor[T]() }

func (m *Machine[S]) indexOfType(t reflect.Type) (int, bool) {
	idx, ok := m.typeIndex[t]
	return idx, ok
}

// Traits returns the bound hierarchy the machine is running.
func (m *Machine[S]) Traits() *Traits { return m.traits }

// Storage returns the machine's shared global storage.
func (m *Machine[S]) Storage() *S { return &m.storage }

// IsActive reports whether the vertex at index is currently active.
func (m *Machine[S]) IsActive(index int) bool {
	return index >= 0 && index < len(m.active) && m.active[index]
}

// StateCast returns the state record bound to index, or nil if out of
// range.
func (m *Machine[S]) StateCast(index int) any {
	if index < 0 || index >= len(m.traits.Records) {
		return nil
	}
	return m.traits.Records[index]
}

// GetContext returns a Context bound to index.
func (m *Machine[S]) GetContext(index int) *Context[S] {
	return &Context[S]{m: m, view: index}
}

// Start activates the root and, for every active region encountered
// while descending, all of its children recursively; OnEnter runs on
// each newly-activated vertex in top-down order.
func (m *Machine[S]) Start() error {
	if m.started {
		return ErrAlreadyStarted
	}
	m.started = true
	m.enter(m.traits.Tree.Root())
	debugCheckInvariants(m)
	return nil
}

// Stop deactivates every active vertex bottom-up, running OnExit on
// each, and marks the machine as not started.
func (m *Machine[S]) Stop() error {
	if !m.started {
		return ErrNotStarted
	}
	root := m.traits.Tree.Root()
	m.deactivateDescendants(root)
	m.deactivateLeaf(root)
	m.started = false
	debugCheckInvariants(m)
	return nil
}

func (m *Machine[S]) enter(i int) {
	m.active[i] = true
	if h, ok := m.traits.Records[i].(EntryHook[S]); ok {
		h.OnEnter(m.GetContext(i))
	}
	if m.traits.IsRegion[i] {
		for _, c := range m.traits.Tree.Children(i) {
			if !m.active[c] {
				m.enter(c)
			}
		}
	}
}

func (m *Machine[S]) deactivateLeaf(i int) {
	if h, ok := m.traits.Records[i].(ExitHook[S]); ok {
		h.OnExit(m.GetContext(i))
	}
	m.active[i] = false
}

// deactivateDescendants exits every active descendant of i, strict
// subtree, deepest first (post-order), leaving i itself untouched.
func (m *Machine[S]) deactivateDescendants(i int) {
	for _, c := range m.traits.Tree.Children(i) {
		if m.active[c] {
			m.deactivateDescendants(c)
			m.deactivateLeaf(c)
		}
	}
}

func (m *Machine[S]) reenter(i int) {
	if h, ok := m.traits.Records[i].(ReenterHook[S]); ok {
		h.OnReenter(m.GetContext(i))
	}
}

// isLeaf reports whether i is active and has no active child: the
// definition of an active leaf that reactions are dispatched from.
func (m *Machine[S]) isLeaf(i int) bool {
	if !m.active[i] {
		return false
	}
	for _, c := range m.traits.Tree.Children(i) {
		if m.active[c] {
			return false
		}
	}
	return true
}

// transit moves the active leaf at from to the vertex at to: reenter in
// place when from == to; otherwise, unless from is itself the lca,
// exit the subtree rooted at the child of lca(from, to) on from's side
// (that child included, deepest first), then enter down from lca
// (exclusive) to to, fanning out through any region encountered on the
// way.
//
// A transition whose LCA is an orthogonal region (a region's children
// are independent and can never share one relative transition target)
// panics rather than returning an error. Bind does not inspect the
// targets reactions return, so this is the only place it is detected.
func (m *Machine[S]) transit(from, to int) {
	if from == to {
		m.reenter(from)
		return
	}

	t := m.traits.Tree
	lca := t.LCA(from, to)
	if m.traits.IsRegion[lca] {
		panic(fmt.Errorf("%w: from=%d to=%d lca=%d", ErrRegionLCA, from, to, lca))
	}

	if lca != from {
		beforeLCA := t.BeforeLCA(from, to)
		m.deactivateDescendants(beforeLCA)
		m.deactivateLeaf(beforeLCA)
	}

	for _, i := range t.Path(lca, to) {
		if i == lca {
			continue
		}
		if !m.active[i] {
			m.enter(i)
		}
	}
}
