package tspop

import "errors"

var (
	// ErrNonSquare indicates the distance matrix is not square.
	ErrNonSquare = errors.New("tspop: matrix is not square")

	// ErrNegativeWeight indicates a negative distance was encountered.
	ErrNegativeWeight = errors.New("tspop: negative distance encountered")

	// ErrTooFewCities indicates fewer than two cities were supplied.
	ErrTooFewCities = errors.New("tspop: fewer than two cities")

	// ErrDimensionMismatch indicates a tour/matrix shape mismatch (including a
	// tour that is not a permutation of the cities), a NaN distance, or an
	// asymmetric pair of distances.
	ErrDimensionMismatch = errors.New("tspop: dimension mismatch")

	// ErrIncompleteGraph is returned when an edge has infinite distance.
	ErrIncompleteGraph = errors.New("tspop: incomplete distance matrix")
)
