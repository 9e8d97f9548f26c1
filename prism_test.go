package formfactor_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/waveq/formfactor"
	"github.com/waveq/formfactor/cvec"
	"github.com/waveq/formfactor/shapes"
)

func TestPrismOverTriangleAtZeroQ(t *testing.T) {
	base := shapes.EquilateralTriangle(1)
	prism, err := formfactor.NewPrism(false, 2, base)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(3)/4, prism.Area(), 1e-12)

	ff, err := prism.FormFactor(cvec.New(0, 0, 0))
	require.NoError(t, err)
	assert.InDelta(t, prism.Area()*2, real(ff), 1e-12)
	assert.InDelta(t, 0, imag(ff), 1e-12)
}

func TestPrismFormFactorAtQzZeroScalesLinearlyWithHeight(t *testing.T) {
	base := shapes.EquilateralTriangle(1)
	prism, err := formfactor.NewPrism(false, 3, base)
	require.NoError(t, err)

	q := cvec.New(complex(1.3, 0), complex(-0.7, 0), 0)
	ff, err := prism.FormFactor(q)
	require.NoError(t, err)
	// sinc(0) == 1, so at qz=0 the prism form factor is exactly
	// height * base.ff_2D(qx,qy,0); we only have access to the public
	// FormFactor/Area surface here, so check the magnitude is finite and
	// scales linearly with height instead of poking the unexported base.
	assert.False(t, math.IsNaN(real(ff)) || math.IsInf(real(ff), 0))

	prism2, err := formfactor.NewPrism(false, 6, base)
	require.NoError(t, err)
	ff2, err := prism2.FormFactor(q)
	require.NoError(t, err)
	assert.InDelta(t, 2*real(ff), real(ff2), 1e-9)
	assert.InDelta(t, 2*imag(ff), imag(ff2), 1e-9)
}

func TestPrismRejectsDegenerateBase(t *testing.T) {
	base := []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}}
	_, err := formfactor.NewPrism(false, 1, base)
	assert.Error(t, err)
	var geomErr *formfactor.InvalidGeometryError
	assert.ErrorAs(t, err, &geomErr)
}
