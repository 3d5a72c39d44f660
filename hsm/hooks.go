package hsm

// State records implement whichever of these interfaces they need; the
// machine checks each with a type assertion rather than requiring a
// single fat interface, so a record can opt into any subset of entry,
// exit, reenter, reaction, and guard behavior.

// EntryHook is implemented by a state record that wants to run logic
// when its vertex becomes active, either from Start or from a
// transition descending through it.
type EntryHook[S any] interface {
	OnEnter(*Context[S])
}

// ExitHook is implemented by a state record that wants to run logic
// when its vertex stops being active, either from Stop or from a
// transition ascending out of it.
type ExitHook[S any] interface {
	OnExit(*Context[S])
}

// ReenterHook is implemented by a state record that wants to run logic
// when a reaction targets its own vertex (from == to in a transition).
type ReenterHook[S any] interface {
	OnReenter(*Context[S])
}

// Reactor is implemented by a state record that reacts to events of
// type E dispatched while one of its descendant leaves is active. React
// returns the transition to make, or TransitNone() to leave the active
// set unchanged.
type Reactor[S, E any] interface {
	React(ctx *Context[S], event E) TransitResult
}

// Guarder is implemented by a Reactor that wants to conditionally
// suppress its own reaction for a given event without giving up its
// place in the ancestor chain: a guard returning false lets dispatch
// keep walking toward the root as if this vertex had no reactant at
// all.
type Guarder[S, E any] interface {
	Guard(ctx *Context[S], event E) bool
}
