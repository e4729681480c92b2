// Package palns implements the core of a Parallel Adaptive Large Neighborhood
// Search (PALNS) metaheuristic engine.
//
// 🚀 What is palns?
//
//	A thread-safe search engine that takes an initial feasible solution and a
//	library of destroy/repair operators and iteratively perturbs, accepts or
//	rejects candidates under a cooling simulated-annealing criterion, while
//	adapting the sampling probability of each destroy/repair pair based on its
//	historical success. Multiple workers explore the neighborhood in parallel
//	against a shared "current" and "best" solution.
//
// ✨ What palns is not:
//
//   - It does not supply a construction heuristic, destroy/repair operators, or
//     a concrete solution type — those are external collaborators (see Solution,
//     DestroyFunc, RepairFunc, BuildFunc). The tspop subpackage provides one
//     worked example (a 2-opt/nearest-neighbor TSP solver) wired against this
//     engine, but the engine itself is problem-agnostic.
//   - It does not guarantee global optimality, cross-thread-count determinism,
//     checkpointing, or distributed execution.
//
// Under the hood, engine state is split into three independently-locked
// pieces — the weight table (W, with a cached cumulative distribution C), the
// current incumbent x, and the best solution x* — so that N workers can each
// run the expensive destroy+repair transform concurrently while only briefly
// serializing on whichever piece of shared state a given pipeline stage needs.
//
//	go get github.com/katalvlaran/palns
package palns
