package main

import (
	"github.com/nullforest/forestree/hsm"
	"github.com/nullforest/forestree/syntax"
)

// placeholderRecord stands in for the real, domain-specific state
// records a Go program would bind at compile time; the CLI only has a
// text file to work from, so every vertex binds to the same empty
// marker so hsm.Bind's structural checks (region-without-children,
// arity, unknown/missing names) still run.
type placeholderRecord struct{}

func bindPlaceholders(text string) (*hsm.Traits, error) {
	parsed, err := syntax.Parse(text)
	if err != nil {
		return nil, err
	}
	_, names, _ := parsed.Flatten()
	bindings := make(map[string]any, len(names))
	for _, n := range names {
		bindings[n] = placeholderRecord{}
	}
	return hsm.Bind(parsed, bindings)
}
