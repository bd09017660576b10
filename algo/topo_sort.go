//go:build !goose

package algo

import "pq_structures/leftist"

type Edge struct {
	Src uint32
	Dst uint32
}

type Graph struct {
	Edges []Edge
	Nodes []uint32
}

func NewGraph(edges []Edge) Graph {
	node_map := make(map[uint32]struct{}, 0)
	for _, e := range edges {
		node_map[e.Src] = struct{}{}
		node_map[e.Dst] = struct{}{}
	}

	var nodes = make([]uint32, 0, len(node_map))
	for n := range node_map {
		nodes = append(nodes, n)
	}

	return Graph{Edges: edges, Nodes: nodes}
}

// TopoSort orders the nodes of an acyclic graph so that every edge goes
// forward. Whenever several nodes are ready the smallest is taken first, so
// the result is the lexicographically smallest topological order. Nodes on a
// cycle are left out.
func TopoSort(graph Graph) []uint32 {
	indegree := make(map[uint32]uint64, len(graph.Nodes))
	succs := make(map[uint32][]uint32, len(graph.Nodes))
	for _, n := range graph.Nodes {
		indegree[n] = 0
	}
	for _, e := range graph.Edges {
		indegree[e.Dst]++
		succs[e.Src] = append(succs[e.Src], e.Dst)
	}

	sources := leftist.New()
	for _, n := range graph.Nodes {
		if indegree[n] == 0 {
			sources.Insert(uint64(n))
		}
	}

	var order = []uint32{}
	for {
		x, ok := sources.DeleteMin()
		if !ok {
			break
		}
		u := uint32(x)
		order = append(order, u)
		for _, v := range succs[u] {
			indegree[v]--
			if indegree[v] == 0 {
				sources.Insert(uint64(v))
			}
		}
	}

	return order
}
