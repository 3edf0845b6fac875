// Package bounds computes lower/upper bound estimates used for reporting
// only (spec.md's bounds calculators are never consulted by an improvement
// engine's acceptance decision).
//
// Lower is grounded on prim_kruskal/prim.go's edgePQ min-heap-of-edges
// idiom, with *core.Graph traversal replaced by direct distance.Cache
// lookups: this domain is a fixed complete graph over planar points, not an
// arbitrary user-supplied graph, so there is no adjacency list to walk.
package bounds

import (
	"container/heap"

	"github.com/ptbdnr/tspseq/distance"
	"github.com/ptbdnr/tspseq/node"
)

// edge is a candidate MST edge, ordered by weight for the min-heap.
type edge struct {
	to     int
	weight float64
}

type edgePQ []edge

func (pq edgePQ) Len() int            { return len(pq) }
func (pq edgePQ) Less(i, j int) bool  { return pq[i].weight < pq[j].weight }
func (pq edgePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(edge)) }
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]

	return e
}

// Lower returns a minimum-spanning-tree lower bound on the total length of
// a route visiting every node in nodes (treating the instance as a complete
// graph on planar points, weighted by dist). The root is nodes[0].
//
// Complexity: O(n^2 log n) (n edges pushed per vertex expansion, heap
// operations O(log n)).
func Lower(dist *distance.Cache, nodes []node.Node) float64 {
	if len(nodes) < 2 {
		return 0
	}

	visited := make(map[int]bool, len(nodes))
	visited[nodes[0].ID()] = true

	pq := &edgePQ{}
	heap.Init(pq)
	pushFrontier(pq, dist, nodes[0], nodes, visited)

	var total float64
	for pq.Len() > 0 && len(visited) < len(nodes) {
		e := heap.Pop(pq).(edge)
		if visited[e.to] {
			continue
		}
		visited[e.to] = true
		total += e.weight
		pushFrontier(pq, dist, nodeByID(nodes, e.to), nodes, visited)
	}

	return total
}

func pushFrontier(pq *edgePQ, dist *distance.Cache, from node.Node, nodes []node.Node, visited map[int]bool) {
	for _, n := range nodes {
		if visited[n.ID()] {
			continue
		}
		heap.Push(pq, edge{to: n.ID(), weight: dist.Distance(from, n)})
	}
}

func nodeByID(nodes []node.Node, id int) node.Node {
	for _, n := range nodes {
		if n.ID() == id {
			return n
		}
	}

	return node.Node{}
}
