package poly

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/waveq/formfactor/cvec"
)

// Edge represents one directed edge of a polygon, for use inside the form
// factor kernel. It precomputes the half-vector between its two endpoints
// and their midpoint, since every moment integral used by Face reduces to
// a polynomial in those two real 3-vectors dotted against the wavevector.
type Edge struct {
	e mgl64.Vec3 // half-vector from midpoint to the upper vertex
	r mgl64.Vec3 // midpoint of the edge
}

// NewEdge builds the edge running from vLow to vHigh. It returns an error
// if the two vertices coincide (zero-length edge).
func NewEdge(vLow, vHigh mgl64.Vec3) (Edge, error) {
	e := vHigh.Sub(vLow).Mul(0.5)
	r := vHigh.Add(vLow).Mul(0.5)
	if e.LenSqr() == 0 {
		return Edge{}, errInvalidGeometry("at least one edge has zero length")
	}
	return Edge{e: e, r: r}, nil
}

// E returns the edge's half-vector (from midpoint to upper vertex).
func (ed Edge) E() mgl64.Vec3 { return ed.e }

// R returns the edge's midpoint.
func (ed Edge) R() mgl64.Vec3 { return ed.r }

// QE returns E·q (antilinear in E, but E is real so this is just the plain
// dot product).
func (ed Edge) QE(q cvec.Vec3) complex128 {
	return cvec.FromReal(ed.e).Dot(q)
}

// QR returns R·q.
func (ed Edge) QR(q cvec.Vec3) complex128 {
	return cvec.FromReal(ed.r).Dot(q)
}

// Contrib evaluates, for integer M >= 0,
//
//	sum_{l=0}^{floor(M/2)} u^2l v^(M-2l) / [(2l+1)!(M-2l)!]  -  v1^M/M!
//
// where u = E·qpa, v2 = R·qpa, v1 = qrperp, v = v1+v2. The v1^M/M! term is
// a counter-term designed to cancel exactly when Contrib is summed over a
// closed polygon (since sum_j E_j = 0); it is subtracted here rather than
// added by the caller so the cancellation happens in the same rounding
// step as its construction.
//
// The equality comparisons against zero below are intentional: they
// short-circuit limits (sin(z)/z, z^0) that are exact only at the literal
// zero bit pattern, not floating-point-error guards.
func (ed Edge) Contrib(m int, qpa cvec.Vec3, qrperp complex128) complex128 {
	u := ed.QE(qpa)
	v2 := cvec.FromReal(ed.r).Dot(qpa)
	v1 := qrperp
	v := v2 + v1

	if v == 0 {
		if m%2 == 1 {
			return 0
		}
		return complex(reciprocalFactorial[m], 0) * (cpow(u, m)/complex(float64(m+1), 0) - cpow(v1, m))
	}

	var result complex128
	switch {
	case v1 == 0:
		result = complex(reciprocalFactorial[m], 0) * cpow(v2, m)
	case v2 == 0:
		// result stays 0: the l=0 term cancels against the counter-term.
	default:
		for mm := 1; mm <= m; mm++ {
			result += complex(reciprocalFactorial[mm]*reciprocalFactorial[m-mm], 0) * cpow(v2, mm) * cpow(v1, m-mm)
		}
	}

	if u == 0 {
		return result
	}
	for l := 1; l <= m/2; l++ {
		result += complex(reciprocalFactorial[m-2*l]*reciprocalFactorial[2*l+1], 0) * cpow(u, 2*l) * cpow(v, m-2*l)
	}
	return result
}

// cpow returns z raised to the non-negative integer power n. Repeated
// squaring is unnecessary at these small n (at most 21); a plain loop keeps the
// rounding behavior easy to reason about term by term.
func cpow(z complex128, n int) complex128 {
	if n == 0 {
		return 1
	}
	result := complex128(1)
	for i := 0; i < n; i++ {
		result *= z
	}
	return result
}
