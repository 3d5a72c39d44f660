package tree

import (
	"reflect"
	"testing"
)

// buildSample returns a small two-branch tree for exercising queries:
//
//	Root
//	|-- P
//	|   |-- A
//	|   |-- B
//	|-- Q
//	    |-- C
//
// indices: Root=0 P=1 A=2 B=3 Q=4 C=5
func buildSample(t *testing.T) *Tree {
	t.Helper()
	tr, err := Build(6, []Arc{
		{Parent: 0, Child: 1},
		{Parent: 0, Child: 4},
		{Parent: 1, Child: 2},
		{Parent: 1, Child: 3},
		{Parent: 4, Child: 5},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return tr
}

func TestBuildBasics(t *testing.T) {
	tr := buildSample(t)

	if got, want := tr.Root(), 0; got != want {
		t.Errorf("Root() = %d, want %d", got, want)
	}
	if got, want := tr.Parent(2), 1; got != want {
		t.Errorf("Parent(A) = %d, want %d", got, want)
	}
	if got, want := tr.Parent(0), -1; got != want {
		t.Errorf("Parent(Root) = %d, want %d", got, want)
	}
	if got, want := tr.Depth(5), 2; got != want {
		t.Errorf("Depth(C) = %d, want %d", got, want)
	}
	if got, want := tr.Children(1), []int{2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("Children(P) = %v, want %v", got, want)
	}
}

func TestBuildRejectsMultipleRoots(t *testing.T) {
	_, err := Build(3, []Arc{{Parent: 0, Child: 1}})
	if err == nil {
		t.Fatal("expected error for disconnected/incomplete arcs, got nil")
	}
}

func TestBuildRejectsCycle(t *testing.T) {
	_, err := Build(3, []Arc{
		{Parent: 0, Child: 1},
		{Parent: 1, Child: 2},
		{Parent: 2, Child: 0},
	})
	if err == nil {
		t.Fatal("expected error for cyclic arcs, got nil")
	}
}

func TestIsAncestor(t *testing.T) {
	tr := buildSample(t)

	tests := []struct {
		a, d int
		want bool
	}{
		{0, 5, true},  // root ancestor of everything
		{1, 2, true},  // P ancestor of A
		{1, 5, false}, // P not ancestor of C
		{2, 2, true},  // reflexive
		{2, 1, false}, // A not ancestor of P
	}
	for _, tt := range tests {
		if got := tr.IsAncestor(tt.a, tt.d); got != tt.want {
			t.Errorf("IsAncestor(%d,%d) = %v, want %v", tt.a, tt.d, got, tt.want)
		}
	}
}

func TestLCA(t *testing.T) {
	tr := buildSample(t)

	tests := []struct {
		x, y, want int
	}{
		{2, 3, 1}, // A, B -> P
		{2, 5, 0}, // A, C -> Root
		{2, 2, 2}, // A, A -> A
		{1, 4, 0}, // P, Q -> Root
	}
	for _, tt := range tests {
		if got := tr.LCA(tt.x, tt.y); got != tt.want {
			t.Errorf("LCA(%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestBeforeLCA(t *testing.T) {
	tr := buildSample(t)

	// A -> C: LCA is Root; before_lca on A's side is P.
	if got, want := tr.BeforeLCA(2, 5), 1; got != want {
		t.Errorf("BeforeLCA(A,C) = %d, want %d (P)", got, want)
	}
	// A -> B: LCA is P; before_lca on A's side is A itself.
	if got, want := tr.BeforeLCA(2, 3), 2; got != want {
		t.Errorf("BeforeLCA(A,B) = %d, want %d (A)", got, want)
	}
}

func TestPath(t *testing.T) {
	tr := buildSample(t)

	got := tr.Path(2, 5) // A -> Root -> C
	want := []int{2, 1, 0, 4, 5}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Path(A,C) = %v, want %v", got, want)
	}
}

func TestSubtree(t *testing.T) {
	tr := buildSample(t)

	incl := tr.SubtreeInclusive(1)
	wantIncl := []int{1, 2, 3}
	if !reflect.DeepEqual(incl, wantIncl) {
		t.Errorf("SubtreeInclusive(P) = %v, want %v", incl, wantIncl)
	}

	excl := tr.SubtreeExclusive(1)
	wantExcl := []int{2, 3}
	if !reflect.DeepEqual(excl, wantExcl) {
		t.Errorf("SubtreeExclusive(P) = %v, want %v", excl, wantExcl)
	}

	if got := tr.SubtreeExclusive(2); got != nil {
		t.Errorf("SubtreeExclusive(leaf) = %v, want nil", got)
	}
}

// TestTreeQueryInvariants checks that LCA is idempotent and that its
// result is always a common ancestor no deeper than either argument,
// for every pair of vertices in the sample tree.
func TestTreeQueryInvariants(t *testing.T) {
	tr := buildSample(t)

	n := tr.NumVertices()
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			l := tr.LCA(x, y)
			if got := tr.LCA(x, l); got != l {
				t.Errorf("LCA(%d, LCA(%d,%d)) = %d, want %d", x, x, y, got, l)
			}
			if tr.Depth(l) > tr.Depth(x) || tr.Depth(l) > tr.Depth(y) {
				t.Errorf("depth(lca(%d,%d))=%d exceeds min(depth(x),depth(y))", x, y, tr.Depth(l))
			}
			if !tr.IsAncestor(l, x) || !tr.IsAncestor(l, y) {
				t.Errorf("lca(%d,%d)=%d is not an ancestor of both", x, y, l)
			}
		}
	}
}
