package tspop

import (
	"context"
	"math"
	"math/rand"

	"github.com/katalvlaran/palns"
)

// NearestNeighborBuild returns a palns.BuildFunc that greedily constructs an
// initial tour: start at a random city (drawn from a math/rand source seeded
// directly with rngSeed), then repeatedly hop to the nearest unvisited city.
// When every remaining city is unreachable (+Inf) from the current one, that
// step hops to the lowest-indexed unvisited city instead (in the spirit of
// tsp/solve.go's "trivial ring" fallback).
func NearestNeighborBuild(dist DistanceMatrix, rngSeed int64) palns.BuildFunc {
	return func(ctx context.Context) (palns.Solution, error) {
		if err := dist.validate(); err != nil {
			return nil, err
		}
		n := len(dist)
		r := rand.New(rand.NewSource(rngSeed))

		visited := make([]bool, n)
		order := make([]int, 0, n)

		start := r.Intn(n)
		order = append(order, start)
		visited[start] = true

		cur := start
		for len(order) < n {
			next := -1
			best := math.Inf(1)
			for c := 0; c < n; c++ {
				if visited[c] {
					continue
				}
				w := dist[cur][c]
				if w < best {
					next, best = c, w
				}
			}
			if next == -1 || math.IsInf(best, 1) {
				// Unreachable from here; fall back to the first unvisited city
				// in index order rather than failing the build outright.
				for c := 0; c < n; c++ {
					if !visited[c] {
						next = c
						break
					}
				}
			}
			order = append(order, next)
			visited[next] = true
			cur = next
		}

		return NewTour(dist, order)
	}
}
