package poly

import (
	"math"
	"math/cmplx"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/waveq/formfactor/cvec"
)

const (
	// eps is the relative-error floor used by the kernel's evaluation-time
	// tests (series convergence, q parallel to a face). The construction-time
	// geometric tolerances (edge drop, coplanarity, S2 and Ci checks) are
	// separate fixed literals.
	eps = 2e-16

	qpaLimitSeries = 1e-2
	nLimitSeries   = 20
)

// Face is a planar convex polygon, built from an oriented vertex ring, that
// knows how to compute its own contribution to a polyhedron's (or prism's)
// scattering form factor.
type Face struct {
	symS2    bool
	edges    []Edge
	area     float64
	normal   mgl64.Vec3
	rperp    float64
	radius2D float64
	radius3D float64
}

// faceDiameter returns the maximum pairwise distance between the vertices
// of V.
func faceDiameter(v []mgl64.Vec3) float64 {
	d := 0.0
	for j := 0; j < len(v); j++ {
		for k := j + 1; k < len(v); k++ {
			if dd := v[j].Sub(v[k]).Len(); dd > d {
				d = dd
			}
		}
	}
	return d
}

// NewFace builds a Face from an oriented vertex ring V (outward normal
// determined by the right-hand rule) and its optional S2 symmetry flag.
// Construction enforces every invariant of the underlying geometry: at
// least 3 non-degenerate edges, no two consecutive edges parallel, all
// vertices coplanar, and (if symS2) that the polygon truly has the claimed
// 2-fold symmetry.
func NewFace(v []mgl64.Vec3, symS2 bool) (*Face, error) {
	nv := len(v)
	if nv == 0 {
		return nil, errInvalidGeometry("polyhedral face: no edges given")
	}
	if nv < 3 {
		return nil, errInvalidGeometry("polyhedral face: less than three edges")
	}

	radius2D := faceDiameter(v) / 2
	radius3D := 0.0
	for _, p := range v {
		if l := p.Len(); l > radius3D {
			radius3D = l
		}
	}

	edges := make([]Edge, 0, nv)
	for j := 0; j < nv; j++ {
		jj := (j + 1) % nv
		if v[j].Sub(v[jj]).Len() < 1e-14*radius2D {
			continue // distance too short -> skip this edge
		}
		e, err := NewEdge(v[j], v[jj])
		if err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}
	ne := len(edges)
	if ne < 3 {
		return nil, errInvalidGeometry("face has less than three non-vanishing edges")
	}

	normal := mgl64.Vec3{}
	for j := 0; j < ne; j++ {
		jj := (j + 1) % ne
		ee := edges[j].E().Cross(edges[jj].E())
		if ee.LenSqr() == 0 {
			return nil, errInvalidGeometry("two adjacent edges are parallel")
		}
		normal = normal.Add(ee.Normalize())
	}
	normal = normal.Mul(1.0 / float64(ne))

	rperp := 0.0
	for _, p := range v {
		rperp += p.Dot(normal)
	}
	rperp /= float64(nv)
	for j := 1; j < nv; j++ {
		if math.Abs(v[j].Dot(normal)-rperp) > 1e-14*radius3D {
			return nil, errInvalidGeometry("face is not planar")
		}
	}

	area := 0.0
	for j := 0; j < nv; j++ {
		jj := (j + 1) % nv
		area += normal.Dot(v[j].Cross(v[jj])) / 2
	}

	if symS2 {
		if ne%2 != 0 {
			return nil, errInvalidGeometry("odd edge count violates symmetry S2")
		}
		half := ne / 2
		for j := 0; j < half; j++ {
			centerSum := edges[j].R().Sub(normal.Mul(rperp)).Add(edges[j+half].R().Sub(normal.Mul(rperp)))
			if centerSum.Len() > 1e-12*radius2D {
				return nil, errInvalidGeometry("edge centers violate symmetry S2")
			}
			if edges[j].E().Add(edges[j+half].E()).Len() > 1e-12*radius2D {
				return nil, errInvalidGeometry("edge vectors violate symmetry S2")
			}
		}
		edges = edges[:half]
	}

	return &Face{
		symS2:    symS2,
		edges:    edges,
		area:     area,
		normal:   normal,
		rperp:    rperp,
		radius2D: radius2D,
		radius3D: radius3D,
	}, nil
}

// Area returns the face's signed planar area.
func (f *Face) Area() float64 { return f.area }

// PyramidalVolume returns rperp*area/3, the signed volume of the
// origin-to-face pyramid.
func (f *Face) PyramidalVolume() float64 { return f.rperp * f.area / 3 }

// Radius3D returns the max distance from the origin to any vertex of f.
func (f *Face) Radius3D() float64 { return f.radius3D }

// Rperp returns the signed distance from the origin to the face plane.
func (f *Face) Rperp() float64 { return f.rperp }

// Normal returns the face's outward unit normal.
func (f *Face) Normal() mgl64.Vec3 { return f.normal }

// NormalProjection returns conj(q)·normal: q is the antilinear receiver of
// the dot product here, unlike Edge.QE/QR where the real geometry vector
// is the receiver. This distinction only shows up when q is genuinely
// complex, but it is load-bearing for the series/analytic branch formulas.
func (f *Face) NormalProjection(q cvec.Vec3) complex128 {
	return q.Dot(cvec.FromReal(f.normal))
}

// decomposeQ splits q into its component perpendicular to the face plane
// (qperp) and parallel to it (qpa), re-orthogonalizing qpa against roundoff
// and snapping it to exactly zero if it is negligible relative to qperp.
func (f *Face) decomposeQ(q cvec.Vec3) (qperp complex128, qpa cvec.Vec3) {
	n := cvec.FromReal(f.normal)
	qperp = n.Dot(q)
	qpa = q.Sub(n.Scale(qperp))
	qpa = qpa.Sub(n.Scale(n.Dot(qpa)))
	if qpa.Mag() < eps*cmplx.Abs(qperp) {
		qpa = cvec.Vec3{}
	}
	return qperp, qpa
}

// ffNCore returns the core contribution to f_n: the edge sum
// sum_i (2*normal x qpa)·E_i * Edge_i.Contrib(m+1, qpa, qperp*rperp).
func (f *Face) ffNCore(m int, qpa cvec.Vec3, qperp complex128) complex128 {
	prevec := cvec.FromReal(f.normal).Cross(qpa).Scale(2)
	qrperp := qperp * complex(f.rperp, 0)
	var result complex128
	for _, e := range f.edges {
		vfac := prevec.Dot(cvec.FromReal(e.E()))
		result += vfac * e.Contrib(m+1, qpa, qrperp)
	}
	return result
}

// FFN returns the order-(n+1) term qn*f_n of this face's contribution to
// the polyhedral series expansion of F(q).
func (f *Face) FFN(n int, q cvec.Vec3) complex128 {
	qn := f.NormalProjection(q)
	if cmplx.Abs(qn) < eps*q.Mag() {
		return 0
	}
	qperp, qpa := f.decomposeQ(q)
	qpaMag2 := qpa.Mag2()
	if qpaMag2 == 0 {
		return qn * cpow(qperp*complex(f.rperp, 0), n) * complex(f.area, 0) * complex(reciprocalFactorial[n], 0)
	}
	if f.symS2 {
		return qn * (f.ffNCore(n, qpa, qperp) + f.ffNCore(n, qpa.Neg(), qperp)) / complex(qpaMag2, 0)
	}
	return qn * f.ffNCore(n, qpa, qperp) / complex(qpaMag2, 0)
}

// expansion sums the n>=1 terms of the power-series expansion of a 2D-style
// form factor, terminating when three consecutive terms satisfy the
// convergence criterion. abslevel is the overall magnitude scale (|ff0| or
// |area|) used for the absolute half of that criterion.
func (f *Face) expansion(facEven, facOdd complex128, qpa cvec.Vec3, abslevel float64) (complex128, error) {
	var sum complex128
	nFac := complex(0, 1)
	streak := 0
	for n := 1; n < nLimitSeries; n++ {
		fac := facEven
		if n%2 == 1 {
			fac = facOdd
		}
		term := nFac * fac * f.ffNCore(n, qpa, 0) / complex(qpa.Mag2(), 0)
		sum += term
		if cmplx.Abs(term) <= eps*cmplx.Abs(sum) || cmplx.Abs(sum) < eps*abslevel {
			streak++
		} else {
			streak = 0
		}
		if streak > 2 {
			return sum, nil
		}
		nFac = cvec.MulI(nFac)
	}
	return 0, errNumeric("series f(q_pa) not converged")
}

// edgeSumFF returns the core contribution to the analytic 2D form factor:
// the sum over edges of (normal x qpa)·E_i * sinc(qE_i) * Rfac_i, where
// Rfac depends on which symmetry, if any, the caller wants exploited. For
// the last edge, when neither symS2 nor symCi holds, the prefactor is
// replaced by minus the running sum of previous prefactors, so that
// sum_i vfac_i == 0 holds in finite precision as well as in principle.
func (f *Face) edgeSumFF(q, qpa cvec.Vec3, symCi bool) complex128 {
	prevec := cvec.FromReal(f.normal).Cross(qpa)
	var sum, vfacsum complex128
	n := len(f.edges)
	for i, e := range f.edges {
		qE := e.QE(qpa)
		qR := e.QR(qpa)

		var rfac complex128
		switch {
		case f.symS2:
			rfac = cmplx.Sin(qR)
		case symCi:
			rfac = cmplx.Cos(e.QR(q))
		default:
			rfac = cvec.ExpI(qR)
		}

		var vfac complex128
		if f.symS2 || symCi || i < n-1 {
			vfac = prevec.Dot(cvec.FromReal(e.E()))
			vfacsum += vfac
		} else {
			vfac = -vfacsum
		}
		sum += vfac * cvec.Sinc(qE) * rfac
	}
	return sum
}

// FF returns the contribution ff(q) of this face to the polyhedral form
// factor, dispatching between the small-|q| power series and the
// large-|q| analytic edge sum by the reduced parallel wavevector qpaRed.
func (f *Face) FF(q cvec.Vec3, symCi bool) (complex128, error) {
	qperp, qpa := f.decomposeQ(q)
	qpaRed := f.radius2D * qpa.Mag()
	qrPerp := qperp * complex(f.rperp, 0)

	var ff0 complex128
	if symCi {
		ff0 = complex(0, 2) * cmplx.Sin(qrPerp) * complex(f.area, 0)
	} else {
		ff0 = cvec.ExpI(qrPerp) * complex(f.area, 0)
	}
	if qpaRed == 0 {
		return ff0, nil
	}
	if qpaRed < qpaLimitSeries && !f.symS2 {
		var facEven, facOdd complex128
		if symCi {
			facEven = 2 * cvec.MulI(cmplx.Sin(qrPerp))
			facOdd = 2 * cmplx.Cos(qrPerp)
		} else {
			facEven = cvec.ExpI(qrPerp)
			facOdd = facEven
		}
		term, err := f.expansion(facEven, facOdd, qpa, cmplx.Abs(ff0))
		if err != nil {
			return 0, err
		}
		return ff0 + term, nil
	}

	var prefac complex128
	switch {
	case f.symS2 && symCi:
		prefac = complex(-8, 0) * cmplx.Sin(qrPerp)
	case f.symS2 && !symCi:
		prefac = complex(0, 4) * cvec.ExpI(qrPerp)
	case !f.symS2 && symCi:
		prefac = 4
	default:
		prefac = 2 * cvec.ExpI(qrPerp)
	}
	return prefac * f.edgeSumFF(q, qpa, symCi) / cvec.MulI(complex(qpa.Mag2(), 0)), nil
}

// ff2DExpanded is the power-series branch of the 2D form factor, used for
// use in a Prism base and to cross-check ff2DDirect in the triangle test.
func (f *Face) ff2DExpanded(qpa cvec.Vec3) (complex128, error) {
	term, err := f.expansion(1, 1, qpa, math.Abs(f.area))
	if err != nil {
		return 0, err
	}
	return complex(f.area, 0) + term, nil
}

// ff2DDirect is the analytic-sum branch of the 2D form factor, used for use
// in a Prism base and to cross-check ff2DExpanded in the triangle test.
func (f *Face) ff2DDirect(qpa cvec.Vec3) complex128 {
	var factor complex128
	if f.symS2 {
		factor = 4
	} else {
		factor = 2 / complex(0, 1)
	}
	return factor * f.edgeSumFF(qpa, qpa, false) / complex(qpa.Mag2(), 0)
}

// FF2D returns the two-dimensional form factor of this face, for use as a
// Prism base. q must lie in the face's plane; if it does not this is a
// usage error, not a numeric one.
func (f *Face) FF2D(qpa cvec.Vec3) (complex128, error) {
	if cmplx.Abs(cvec.FromReal(f.normal).Dot(qpa)) > eps*qpa.Mag() {
		return 0, errUsage("FF2D called with q not parallel to the face plane")
	}
	qpaRed := f.radius2D * qpa.Mag()
	if qpaRed == 0 {
		return complex(f.area, 0), nil
	}
	if qpaRed < qpaLimitSeries && !f.symS2 {
		return f.ff2DExpanded(qpa)
	}
	return f.ff2DDirect(qpa), nil
}

// AssertCi checks that f and other are Ci-mates: same rperp and area
// within relative tolerance, opposite orientation, as required by a body
// claiming centrosymmetry.
func (f *Face) AssertCi(other *Face) error {
	if math.Abs(f.rperp-other.rperp) > 1e-15*(f.rperp+other.rperp) {
		return errInvalidGeometry("faces with different distance from origin violate symmetry Ci")
	}
	if math.Abs(f.area-other.area) > 1e-15*(f.area+other.area) {
		return errInvalidGeometry("faces with different areas violate symmetry Ci")
	}
	if f.normal.Add(other.normal).Len() > 1e-14 {
		return errInvalidGeometry("faces do not have opposite orientation, violating symmetry Ci")
	}
	return nil
}
