package poly

import "fmt"

// InvalidGeometryError reports a vertex ring or topology that cannot form a
// valid convex face or body: too few edges, non-planar vertices, parallel
// adjacent edges, or a claimed symmetry the vertices do not actually have.
type InvalidGeometryError struct{ Reason string }

func (e *InvalidGeometryError) Error() string { return "invalid geometry: " + e.Reason }

// NumericError reports a series expansion that failed to converge within
// the fixed term budget.
type NumericError struct{ Reason string }

func (e *NumericError) Error() string { return "numeric error: " + e.Reason }

// UsageError reports a caller contract violation, such as passing a
// wavevector out of the plane a 2D form factor expects.
type UsageError struct{ Reason string }

func (e *UsageError) Error() string { return "usage error: " + e.Reason }

func errInvalidGeometry(format string, args ...any) error {
	return &InvalidGeometryError{Reason: fmt.Sprintf(format, args...)}
}

func errNumeric(format string, args ...any) error {
	return &NumericError{Reason: fmt.Sprintf(format, args...)}
}

func errUsage(format string, args ...any) error {
	return &UsageError{Reason: fmt.Sprintf(format, args...)}
}
