// SPDX-License-Identifier: MIT
//
// connectivity.go — connected: a breadth-first reachability check over the
// adjacency implied by the Laplacian's nonzero off-diagonal pattern (an
// edge wherever two vertices are coupled), run directly on the dense
// matrix already held by Mesh.

package lindgren

import "fmt"

// connected reports whether mesh's Laplacian implies one connected
// component. A disconnected mesh would make the precision matrix Q
// block-diagonal: each block is its own independent field, which is not
// what a single Lindgren process draw is specified to produce.
func connected(mesh *Mesh) (bool, error) {
	n := mesh.ElementCount()
	if n == 0 {
		return true, nil
	}

	adj, err := laplacianAdjacency(mesh)
	if err != nil {
		return false, err
	}

	visited := make([]bool, n)
	queue := make([]int, 0, n)
	visited[0] = true
	queue = append(queue, 0)

	visitedCount := 1
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nbr := range adj[cur] {
			if !visited[nbr] {
				visited[nbr] = true
				visitedCount++
				queue = append(queue, nbr)
			}
		}
	}

	return visitedCount == n, nil
}

// laplacianAdjacency reads mesh's Laplacian off-diagonal and returns, for
// each vertex, the indices of every vertex it is coupled to.
func laplacianAdjacency(mesh *Mesh) ([][]int, error) {
	n := mesh.ElementCount()
	adj := make([][]int, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v, err := mesh.laplace.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("lindgren: connectivity: %w", err)
			}
			if v == 0 {
				continue
			}
			adj[i] = append(adj[i], j)
			adj[j] = append(adj[j], i)
		}
	}
	return adj, nil
}
