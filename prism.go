package formfactor

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/waveq/formfactor/cvec"
	"github.com/waveq/formfactor/poly"
)

// Prism is a right prism over a planar polygonal base, extruded along z.
type Prism struct {
	base   *poly.Face
	height float64
}

// NewPrism builds a prism from a 2D base polygon (given as z=0 vertices)
// and an extrusion height. symmetryCi is passed through as the base
// face's own S2 flag: a prism is centrosymmetric exactly when its base has
// a 2-fold rotation axis through the origin.
func NewPrism(symmetryCi bool, height float64, baseVertices []mgl64.Vec3) (*Prism, error) {
	base, err := poly.NewFace(baseVertices, symmetryCi)
	if err != nil {
		return nil, fmt.Errorf("Prism: %w", err)
	}
	return &Prism{base: base, height: height}, nil
}

// Area returns the base polygon's area.
func (p *Prism) Area() float64 { return p.base.Area() }

// FormFactor evaluates F(q) = height * sinc(height*qz/2) * base.FF2D(qx,qy,0).
func (p *Prism) FormFactor(q cvec.Vec3) (complex128, error) {
	halfHeightQz := q.Z * complex(p.height/2, 0)
	ffBase, err := p.base.FF2D(cvec.New(q.X, q.Y, 0))
	if err != nil {
		return 0, fmt.Errorf("Prism: %w", err)
	}
	return complex(p.height, 0) * cvec.Sinc(halfHeightQz) * ffBase, nil
}
