package graph

// Matrix returns the dense adjacency matrix indexed by Building.ID.
// Size is (maxID+1)²; absent edges are 0, and on parallel edges the entry
// visited last wins. An empty graph yields an empty matrix.
func (g *Graph) Matrix() [][]int64 {
	n := g.maxID() + 1
	m := make([][]int64, n)
	for i := range m {
		m[i] = make([]int64, n)
	}

	it := g.adjacency.Iterator()
	for it.Next() {
		u := it.Key().(int)
		list, _ := it.Value().([]Neighbor)
		for _, nb := range list {
			m[u][nb.ID] = nb.Weight
		}
	}

	return m
}

// maxID returns the largest registered ID, or -1 when empty.
func (g *Graph) maxID() int {
	mx := -1
	for _, k := range g.nodes.Keys() {
		if id := k.(int); id > mx {
			mx = id
		}
	}

	return mx
}
