package prim_kruskal

// DisjointSet is an index-addressed union-find over non-negative IDs,
// with recursive path compression and union by rank.
type DisjointSet struct {
	parent []int
	rank   []int
}

// NewDisjointSet creates singleton sets for every id in ids.
// IDs not listed are never touched; ids must be >= 0.
func NewDisjointSet(ids []int) *DisjointSet {
	n := 0
	for _, id := range ids {
		if id+1 > n {
			n = id + 1
		}
	}
	ds := &DisjointSet{parent: make([]int, n), rank: make([]int, n)}
	for _, id := range ids {
		ds.parent[id] = id
	}

	return ds
}

// Find returns the root of x's set, pointing every node on the way at it.
func (ds *DisjointSet) Find(x int) int {
	if ds.parent[x] != x {
		ds.parent[x] = ds.Find(ds.parent[x])
	}

	return ds.parent[x]
}

// Union merges the sets of a and b. Returns false if they were already joined.
// On equal rank the root of a becomes the parent.
func (ds *DisjointSet) Union(a, b int) bool {
	ra, rb := ds.Find(a), ds.Find(b)
	if ra == rb {
		return false
	}
	switch {
	case ds.rank[ra] < ds.rank[rb]:
		ds.parent[ra] = rb
	case ds.rank[ra] > ds.rank[rb]:
		ds.parent[rb] = ra
	default:
		ds.parent[rb] = ra
		ds.rank[ra]++
	}

	return true
}

// Connected reports whether a and b share a set.
func (ds *DisjointSet) Connected(a, b int) bool { return ds.Find(a) == ds.Find(b) }
