package persistence

// UnionFind is a disjoint-set forest stored as parent/rank arenas.
// Elements are the integers 0..n-1.
type UnionFind struct {
	parent []int
	rank   []uint8
}

// NewUnionFind returns n singleton sets.
func NewUnionFind(n int) *UnionFind {
	uf := &UnionFind{parent: make([]int, n), rank: make([]uint8, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}

	return uf
}

// Len returns the number of elements.
func (uf *UnionFind) Len() int { return len(uf.parent) }

// Find returns the root of x. Iterative, with path halving.
func (uf *UnionFind) Find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}

	return x
}

// Union merges the sets of a and b by rank and returns the new root.
// If a and b are already connected their common root is returned.
func (uf *UnionFind) Union(a, b int) int {
	ra, rb := uf.Find(a), uf.Find(b)
	if ra == rb {
		return ra
	}
	// Attach smaller-rank tree under larger-rank root.
	if uf.rank[ra] < uf.rank[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	if uf.rank[ra] == uf.rank[rb] {
		uf.rank[ra]++
	}

	return ra
}

// Connected reports whether a and b share a set.
func (uf *UnionFind) Connected(a, b int) bool { return uf.Find(a) == uf.Find(b) }

// Roots returns the root of every set, ascending.
func (uf *UnionFind) Roots() []int {
	var roots []int
	for i := range uf.parent {
		if uf.parent[i] == i {
			roots = append(roots, i)
		}
	}

	return roots
}
