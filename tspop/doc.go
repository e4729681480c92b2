// Package tspop is a worked example of palns operators: a Solution, a
// construction heuristic, and a handful of destroy/repair pairs for the
// symmetric Traveling Salesman Problem over a dense distance matrix.
//
// The tour representation, cost stabilization, and segment-reversal moves are
// adapted from github.com/katalvlaran/lvlath/tsp; this package trades that
// package's matrix.Matrix abstraction and core.Graph integration for a plain
// [][]float64 distance matrix, since palns operators only ever need to read
// edge weights, never to rebuild a graph.
package tspop
