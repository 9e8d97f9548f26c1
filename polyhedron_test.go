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

func TestNewPolyhedronRejectsFewerThanFourFaces(t *testing.T) {
	vertices := []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	topology := formfactor.PolyhedralTopology{
		Faces: []formfactor.PolygonalTopology{
			{VertexIndices: []int{0, 1, 2}},
			{VertexIndices: []int{0, 1, 3}},
		},
	}
	_, err := formfactor.NewPolyhedron(topology, vertices)
	assert.Error(t, err)
	var geomErr *formfactor.InvalidGeometryError
	assert.ErrorAs(t, err, &geomErr)
}

func TestUnitCubeVolumeAndZeroQFormFactor(t *testing.T) {
	topology, vertices := shapes.Cube(1)
	cube, err := formfactor.NewPolyhedron(topology, vertices)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, cube.Volume(), 1e-12)
	assert.Greater(t, cube.Radius(), 0.0)

	ff, err := cube.FormFactor(cvec.New(0, 0, 0))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, real(ff), 1e-12)
	assert.InDelta(t, 0.0, imag(ff), 1e-12)
}

func TestUnitCubeFormFactorAlongAxis(t *testing.T) {
	topology, vertices := shapes.Cube(1)
	cube, err := formfactor.NewPolyhedron(topology, vertices)
	require.NoError(t, err)

	ff, err := cube.FormFactor(cvec.New(complex(math.Pi, 0), 0, 0))
	require.NoError(t, err)
	assert.InDelta(t, 2.0/math.Pi, real(ff), 1e-9)
	assert.InDelta(t, 0.0, imag(ff), 1e-9)
}

func TestOctahedronAssertPlatonic(t *testing.T) {
	topology, vertices := shapes.Octahedron(1)
	oct, err := formfactor.NewPolyhedron(topology, vertices)
	require.NoError(t, err)
	assert.NoError(t, oct.AssertPlatonic())
}

func TestCuboidFailsAssertPlatonic(t *testing.T) {
	topology, vertices := shapes.Cuboid(1, 2, 3)
	box, err := formfactor.NewPolyhedron(topology, vertices)
	require.NoError(t, err)
	assert.Error(t, box.AssertPlatonic())
}

func TestTetrahedronVolumeMatchesFormFactorAtZero(t *testing.T) {
	topology, vertices := shapes.Tetrahedron(1)
	tet, err := formfactor.NewPolyhedron(topology, vertices)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(2)/12, tet.Volume(), 1e-12)

	ff, err := tet.FormFactor(cvec.New(0, 0, 0))
	require.NoError(t, err)
	assert.InDelta(t, tet.Volume(), real(ff), 1e-12)
}

func TestSeriesAndAnalyticBranchesAgreeNearThreshold(t *testing.T) {
	topology, vertices := shapes.Octahedron(1)
	oct, err := formfactor.NewPolyhedron(topology, vertices)
	require.NoError(t, err)

	// Pick |q| just below and just above q_red = 1e-2 along a generic
	// direction and check the two branches don't diverge wildly (the
	// public API always picks one branch per call, so this checks
	// continuity across the switch rather than calling both explicitly).
	dir := cvec.New(1, 1, 1)
	below := 0.005 / oct.Radius() / dir.Mag()
	above := 0.02 / oct.Radius() / dir.Mag()

	ffBelow, err := oct.FormFactor(dir.Scale(complex(below, 0)))
	require.NoError(t, err)
	ffAbove, err := oct.FormFactor(dir.Scale(complex(above, 0)))
	require.NoError(t, err)

	assert.False(t, math.IsNaN(real(ffBelow)) || math.IsNaN(real(ffAbove)))
	assert.InDelta(t, real(ffBelow), real(ffAbove), 1e-3)
}
