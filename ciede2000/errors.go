package ciede2000

import "errors"

var (
	// ErrInvalidInput is returned for malformed RGB triples and for solver
	// targets that are negative or not finite.
	ErrInvalidInput = errors.New("ciede2000: invalid input")

	// ErrNotFound is returned when the solver cannot bracket a root or does not
	// converge within its iteration budget.
	ErrNotFound = errors.New("ciede2000: no radius found")
)
