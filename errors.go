package formfactor

import "github.com/waveq/formfactor/poly"

// InvalidGeometryError reports a vertex ring or topology that cannot form a
// valid convex face or body: too few edges, non-planar vertices, parallel
// adjacent edges, or a claimed symmetry the vertices do not actually have.
type InvalidGeometryError = poly.InvalidGeometryError

// NumericError reports a series expansion that failed to converge within
// the fixed term budget.
type NumericError = poly.NumericError

// UsageError reports a caller contract violation, such as passing a
// wavevector out of the plane a 2D form factor expects.
type UsageError = poly.UsageError
