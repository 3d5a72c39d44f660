package hsm

// Context is the view a state record's hooks and reactions receive. It
// is always bound to the vertex the callback conceptually belongs to
// (the hook's own vertex for entry/exit/reenter, the reacting leaf for
// React/Guard), and gives access to the shared storage and to queries
// over the rest of the active set.
type Context[S any] struct {
	m    *Machine[S]
	view int
}

// Storage returns the machine's shared global storage. Go generics let
// every state record share exactly one concrete storage type instead of
// reaching for an erased `any` blob.
func (c *Context[S]) Storage() *S { return &c.m.storage }

// Index is the tree index this context is bound to.
func (c *Context[S]) Index() int { return c.view }

// IsActive reports whether the vertex at index is currently active.
func (c *Context[S]) IsActive(index int) bool { return c.m.IsActive(index) }

// StateCast returns the state record bound to index, or nil if index is
// out of range.
func (c *Context[S]) StateCast(index int) any { return c.m.StateCast(index) }

// Machine exposes the underlying machine for use with the package-level
// generic helpers (StateCastType, IsActiveType) that need a type
// parameter a method cannot carry.
func (c *Context[S]) Machine() *Machine[S] { return c.m }

// StateCastType resolves the state record bound to type T, a typed
// alternative to Context.StateCast. Go forbids a method from
// introducing its own type parameter, so this is a free function over
// *Machine[S] rather than a method on Context. A record bound as *T is
// returned as is; for a record bound by value the pointer addresses a
// copy of it.
func StateCastType[T any, S any](m *Machine[S]) (*T, bool) {
	idx, ok := m.indexOfType(typeOf[T]())
	if !ok {
		return nil, false
	}
	switch v := m.traits.Records[idx].(type) {
	case *T:
		return v, true
	case T:
		return &v, true
	}
	return nil, false
}

// IsActiveType reports whether the vertex bound to type T is active.
func IsActiveType[T any, S any](m *Machine[S]) bool {
	idx, ok := m.indexOfType(typeOf[T]())
	return ok && m.active[idx]
}
