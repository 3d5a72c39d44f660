package tree

// LCA returns the lowest common ancestor of x and y, found by equalizing
// depth and then walking both vertices up together until they meet.
func (t *Tree) LCA(x, y int) int {
	for t.depth[x] > t.depth[y] {
		x = t.parent[x]
	}
	for t.depth[y] > t.depth[x] {
		y = t.parent[y]
	}
	for x != y {
		x = t.parent[x]
		y = t.parent[y]
	}
	return x
}

// BeforeLCA returns the child of lca(x,y) that lies on x's path to the
// LCA — i.e. the unique ancestor of x (or x itself) whose parent is
// lca(x,y). It is used to pick which subtree must be exited during a
// cross-subtree transition.
func (t *Tree) BeforeLCA(x, y int) int {
	l := t.LCA(x, y)
	if x == l {
		return x
	}
	cur := x
	for t.parent[cur] != l {
		cur = t.parent[cur]
	}
	return cur
}

// Path returns the inclusive path from x to y, passing through their LCA:
// the ancestors of x from x up to (and including) the LCA, followed by
// the ancestors of y from just below the LCA down to y.
func (t *Tree) Path(x, y int) []int {
	l := t.LCA(x, y)

	var up []int
	for cur := x; cur != l; cur = t.parent[cur] {
		up = append(up, cur)
	}
	up = append(up, l)

	var down []int
	for cur := y; cur != l; cur = t.parent[cur] {
		down = append(down, cur)
	}
	for i, j := 0, len(down)-1; i < j; i, j = i+1, j-1 {
		down[i], down[j] = down[j], down[i]
	}

	return append(up, down...)
}

// SubtreeInclusive returns every vertex in the subtree rooted at i,
// including i itself, in pre-order.
func (t *Tree) SubtreeInclusive(i int) []int {
	lo, hi := t.eulerIn[i], t.eulerOut[i]
	out := make([]int, hi-lo+1)
	copy(out, t.order[lo:hi+1])
	return out
}

// SubtreeExclusive returns every proper descendant of i, in pre-order.
func (t *Tree) SubtreeExclusive(i int) []int {
	all := t.SubtreeInclusive(i)
	if len(all) <= 1 {
		return nil
	}
	return all[1:]
}
