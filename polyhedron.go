package formfactor

import (
	"math"
	"math/cmplx"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/waveq/formfactor/cvec"
	"github.com/waveq/formfactor/poly"
)

const (
	eps                 = 2e-16
	bodySeriesThreshold = 1e-2
	nMaxSeries          = 20
	platonicUniformity  = 160 * eps
	faceDropTolerance   = 1e-14
)

// Polyhedron is a closed convex body bounded by planar faces, built once
// from a topology and a vertex list and safe to evaluate concurrently
// thereafter.
type Polyhedron struct {
	faces  []*poly.Face
	radius float64
	volume float64
	symCi  bool
}

func vertexSetDiameter(v []mgl64.Vec3) float64 {
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

// NewPolyhedron builds a polyhedron from a topology and its vertex list.
// Faces whose diameter is negligible relative to the body's are dropped;
// the body must retain at least four faces. If topology.SymmetryCi is set,
// the face count must be even and face k must be the inversion mate of
// face (N-1-k); only the first half is kept afterward.
func NewPolyhedron(topology PolyhedralTopology, vertices []mgl64.Vec3) (*Polyhedron, error) {
	bodyDiameter := vertexSetDiameter(vertices)

	var faces []*poly.Face
	for _, ft := range topology.Faces {
		vs := make([]mgl64.Vec3, len(ft.VertexIndices))
		for i, idx := range ft.VertexIndices {
			vs[i] = vertices[idx]
		}
		if vertexSetDiameter(vs) <= faceDropTolerance*bodyDiameter {
			continue
		}
		f, err := poly.NewFace(vs, ft.SymmetryS2)
		if err != nil {
			return nil, err
		}
		faces = append(faces, f)
	}
	if len(faces) < 4 {
		return nil, &InvalidGeometryError{Reason: "polyhedron has fewer than four non-vanishing faces"}
	}

	radius, volume := 0.0, 0.0
	for _, f := range faces {
		if f.Radius3D() > radius {
			radius = f.Radius3D()
		}
		volume += f.PyramidalVolume()
	}

	if topology.SymmetryCi {
		n := len(faces)
		if n%2 != 0 {
			return nil, &InvalidGeometryError{Reason: "odd face count violates symmetry Ci"}
		}
		half := n / 2
		for k := 0; k < half; k++ {
			if err := faces[k].AssertCi(faces[n-1-k]); err != nil {
				return nil, err
			}
		}
		faces = faces[:half]
	}

	return &Polyhedron{faces: faces, radius: radius, volume: volume, symCi: topology.SymmetryCi}, nil
}

// Volume returns the body's enclosed volume.
func (p *Polyhedron) Volume() float64 { return p.volume }

// Radius returns the radius of the smallest sphere, centered at the
// origin, containing the body.
func (p *Polyhedron) Radius() float64 { return p.radius }

// AssertPlatonic reports an error unless every retained face has the same
// pyramidal volume to within a fixed relative tolerance, as is required of
// a genuinely Platonic (uniformly-faced) solid.
func (p *Polyhedron) AssertPlatonic() error {
	vols := make([]float64, len(p.faces))
	mean := 0.0
	for i, f := range p.faces {
		vols[i] = f.PyramidalVolume()
		mean += vols[i]
	}
	mean /= float64(len(vols))
	for _, v := range vols {
		if math.Abs(v-mean) > platonicUniformity*mean {
			return &InvalidGeometryError{Reason: "faces have non-uniform pyramidal volume"}
		}
	}
	return nil
}

// FormFactor evaluates F(q) = integral over the body of exp(i q.r) dV,
// selecting between a convergent power series for small |q| and a
// closed-form analytic edge sum for large |q|.
func (p *Polyhedron) FormFactor(q cvec.Vec3) (complex128, error) {
	qRed := p.radius * q.Mag()
	if qRed == 0 {
		return complex(p.volume, 0), nil
	}
	if qRed < bodySeriesThreshold {
		return p.formFactorSeries(q)
	}
	return p.formFactorAnalytic(q)
}

func (p *Polyhedron) formFactorSeries(q cvec.Vec3) (complex128, error) {
	var nFac complex128
	if p.symCi {
		nFac = complex(-2, 0) / complex(q.Mag2(), 0)
	} else {
		nFac = complex(-1, 0) / complex(q.Mag2(), 0)
	}

	var sum complex128
	streak := 0
	for n := 2; n < nMaxSeries; n++ {
		if p.symCi && n%2 == 1 {
			continue
		}
		var faceSum complex128
		for _, f := range p.faces {
			faceSum += f.FFN(n+1, q)
		}
		term := nFac * faceSum
		sum += term

		if cmplx.Abs(term) <= eps*cmplx.Abs(sum) || cmplx.Abs(sum) < eps*p.volume {
			streak++
		} else {
			streak = 0
		}
		if streak > 2 {
			return complex(p.volume, 0) + sum, nil
		}

		if p.symCi {
			nFac = -nFac
		} else {
			nFac = cvec.MulI(nFac)
		}
	}
	return 0, &NumericError{Reason: "polyhedral series F(q) not converged"}
}

func (p *Polyhedron) formFactorAnalytic(q cvec.Vec3) (complex128, error) {
	var sum complex128
	for _, f := range p.faces {
		qn := f.NormalProjection(q)
		if cmplx.Abs(qn) < eps*q.Mag() {
			continue
		}
		ff, err := f.FF(q, p.symCi)
		if err != nil {
			return 0, err
		}
		sum += qn * ff
	}
	return sum / cvec.MulI(complex(q.Mag2(), 0)), nil
}
