// SPDX-License-Identifier: MIT
//
// path_source.go — source path: elements ordered by increasing distance
// to the nearest conditioning datum, via multi-source Dijkstra expansion
// over the k-nearest adjacency graph (container/heap lazy-decrease-key,
// the same strategy the single-source shortest-path routine uses).

package seq

import (
	"container/heap"
	"math"

	"github.com/geostoch/fieldsim/spatial"
)

type sourceHeapItem struct {
	index int
	dist  float64
}

type sourceHeap []sourceHeapItem

func (h sourceHeap) Len() int            { return len(h) }
func (h sourceHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h sourceHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *sourceHeap) Push(x interface{}) { *h = append(*h, x.(sourceHeapItem)) }
func (h *sourceHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

func sourcePath(dom spatial.Domain, conditioned []int) ([]int, error) {
	n := dom.ElementCount()
	idx, err := newAdjacency(dom)
	if err != nil {
		return nil, err
	}

	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	settled := make([]bool, n)

	h := &sourceHeap{}
	heap.Init(h)

	seeds := conditioned
	if len(seeds) == 0 {
		seeds = []int{0}
	}
	for _, s := range seeds {
		dist[s] = 0
		heap.Push(h, sourceHeapItem{index: s, dist: 0})
	}

	order := make([]int, 0, n)
	for h.Len() > 0 {
		item := heap.Pop(h).(sourceHeapItem)
		if settled[item.index] {
			continue // stale lazy-decrease-key entry
		}
		settled[item.index] = true
		order = append(order, item.index)

		ci := dom.Centroid(item.index)
		for _, nbr := range idx.neighborsOf(item.index) {
			if settled[nbr] {
				continue
			}
			d := item.dist + ci.Distance(dom.Centroid(nbr))
			if d < dist[nbr] {
				dist[nbr] = d
				heap.Push(h, sourceHeapItem{index: nbr, dist: d})
			}
		}
	}

	for i := 0; i < n; i++ {
		if !settled[i] {
			order = append(order, i) // unreachable under k-NN adjacency
		}
	}

	return order, nil
}
