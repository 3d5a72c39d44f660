package hsm

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/nullforest/forestree/syntax"
	"github.com/nullforest/forestree/tree"
)

// Traits is the result of binding a parsed syntax.Tree to a set of
// user-supplied state records: for each tree index, the bound record
// and whether that index is an orthogonal region, plus the indexed
// Tree itself for structural queries.
type Traits struct {
	Tree     *tree.Tree
	Names    []string
	IsRegion []bool
	Records  []any
}

// Bind associates each name parsed by syntax.Parse with a user-supplied
// state record (bindings maps name -> record, case-sensitive, any
// order). It detects and reports, aggregated, every unknown name
// (a binding with no matching tree vertex), every missing name (a tree
// vertex with no bound record), and an arity mismatch between the tree
// and the binding set.
func Bind(parsed *syntax.Tree, bindings map[string]any) (*Traits, error) {
	arcs, names, regions := parsed.Flatten()

	var errs error
	inTree := make(map[string]bool, len(names))
	for _, n := range names {
		inTree[n] = true
	}
	for name := range bindings {
		if !inTree[name] {
			errs = multierr.Append(errs, &UnknownNameError{Name: name})
		}
	}
	for _, n := range names {
		if _, ok := bindings[n]; !ok {
			errs = multierr.Append(errs, &MissingNameError{Name: n})
		}
	}
	if len(bindings) != len(names) {
		errs = multierr.Append(errs, &ArityMismatchError{WantVertices: len(names), GotBindings: len(bindings)})
	}
	if errs != nil {
		return nil, errs
	}

	t, err := tree.Build(len(names), toTreeArcs(arcs))
	if err != nil {
		return nil, err
	}

	if err := checkRegionsHaveChildren(t, regions); err != nil {
		return nil, err
	}

	records := make([]any, len(names))
	for i, n := range names {
		records[i] = bindings[n]
	}

	return &Traits{Tree: t, Names: names, IsRegion: regions, Records: records}, nil
}

func toTreeArcs(arcs []syntax.Arc) []tree.Arc {
	out := make([]tree.Arc, len(arcs))
	for i, a := range arcs {
		out[i] = tree.Arc{Parent: a.Parent, Child: a.Child}
	}
	return out
}

// checkRegionsHaveChildren rejects a childless region: an orthogonal
// region's defining behavior is fanning out to all of its children on
// entry, so a region with none can never be meaningfully orthogonal
// and signals a malformed hierarchy.
func checkRegionsHaveChildren(t *tree.Tree, isRegion []bool) error {
	var errs error
	for i, region := range isRegion {
		if region && len(t.Children(i)) == 0 {
			errs = multierr.Append(errs, fmt.Errorf("%w: region vertex %d has no children", ErrBind, i))
		}
	}
	return errs
}
