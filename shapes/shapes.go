// Package shapes is a catalog of named convex-body constructors. Each one
// is a thin, stateless function producing a (topology, vertex-list) pair
// ready to hand to formfactor.NewPolyhedron; none of them touch the
// numerical kernel itself.
package shapes

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/waveq/formfactor"
)

// Tetrahedron returns the topology and vertices of a regular tetrahedron
// of the given edge length, centered on its center of mass.
func Tetrahedron(edge float64) (formfactor.PolyhedralTopology, []mgl64.Vec3) {
	as := edge / 2
	ac := edge / math.Sqrt(3) / 2
	ah := edge / math.Sqrt(3)
	height := math.Sqrt(2.0/3) * edge
	zcom := height / 4

	vertices := []mgl64.Vec3{
		{-ac, as, -zcom},
		{-ac, -as, -zcom},
		{ah, 0, -zcom},
		{0, 0, height - zcom},
	}
	topology := formfactor.PolyhedralTopology{
		Faces: []formfactor.PolygonalTopology{
			{VertexIndices: []int{2, 1, 0}},
			{VertexIndices: []int{0, 1, 3}},
			{VertexIndices: []int{1, 2, 3}},
			{VertexIndices: []int{2, 0, 3}},
		},
	}
	return topology, vertices
}

// Octahedron returns the topology and vertices of a regular octahedron of
// the given edge length, centered at the origin. It is Ci-symmetric.
func Octahedron(edge float64) (formfactor.PolyhedralTopology, []mgl64.Vec3) {
	a := edge / 2
	h := a * math.Sqrt(2)

	vertices := []mgl64.Vec3{
		{0, 0, -h},
		{-a, -a, 0},
		{a, -a, 0},
		{a, a, 0},
		{-a, a, 0},
		{0, 0, h},
	}
	topology := formfactor.PolyhedralTopology{
		Faces: []formfactor.PolygonalTopology{
			{VertexIndices: []int{0, 2, 1}},
			{VertexIndices: []int{0, 3, 2}},
			{VertexIndices: []int{0, 4, 3}},
			{VertexIndices: []int{0, 1, 4}},
			{VertexIndices: []int{2, 3, 5}},
			{VertexIndices: []int{1, 2, 5}},
			{VertexIndices: []int{4, 1, 5}},
			{VertexIndices: []int{3, 4, 5}},
		},
		SymmetryCi: true,
	}
	return topology, vertices
}

func cuboidTopology() formfactor.PolyhedralTopology {
	return formfactor.PolyhedralTopology{
		Faces: []formfactor.PolygonalTopology{
			{VertexIndices: []int{3, 2, 1, 0}, SymmetryS2: true},
			{VertexIndices: []int{1, 2, 6, 5}, SymmetryS2: true},
			{VertexIndices: []int{0, 1, 5, 4}, SymmetryS2: true},
			{VertexIndices: []int{3, 0, 4, 7}, SymmetryS2: true},
			{VertexIndices: []int{2, 3, 7, 6}, SymmetryS2: true},
			{VertexIndices: []int{4, 5, 6, 7}, SymmetryS2: true},
		},
	}
}

// Cube returns the topology and vertices of a cube of the given edge
// length, centered at the origin.
func Cube(edge float64) (formfactor.PolyhedralTopology, []mgl64.Vec3) {
	return Cuboid(edge, edge, edge)
}

// Cuboid returns the topology and vertices of a rectangular box of the
// given edge lengths, centered at the origin.
func Cuboid(edgeA, edgeB, edgeC float64) (formfactor.PolyhedralTopology, []mgl64.Vec3) {
	a, b, c := edgeA/2, edgeB/2, edgeC/2
	vertices := []mgl64.Vec3{
		{a, -b, -c}, {a, b, -c}, {-a, b, -c}, {-a, -b, -c},
		{a, -b, c}, {a, b, c}, {-a, b, c}, {-a, -b, c},
	}
	return cuboidTopology(), vertices
}

// Decahedron pentagon-plane angular constants, reproduced bit for bit.
const (
	decahedronCoeff = 0.8506508083520399
	cos72           = 0.30901699437494745
	sin72           = 0.9510565162951535
	cos144          = -0.8090169943749475
	sin144          = 0.5877852522924731
)

// Decahedron returns the topology and vertices of a regular decahedron
// (pentagonal bipyramid) of the given edge length.
func Decahedron(edge float64) (formfactor.PolyhedralTopology, []mgl64.Vec3) {
	a := edge * decahedronCoeff
	ac5 := a * cos72
	as5 := a * sin72
	a2c5 := a * cos144
	a2s5 := a * sin144
	height := edge * math.Sqrt(1-decahedronCoeff*decahedronCoeff)

	vertices := []mgl64.Vec3{
		{a, 0, 0},
		{ac5, as5, 0},
		{a2c5, a2s5, 0},
		{a2c5, -a2s5, 0},
		{ac5, -as5, 0},
		{0, 0, height},
		{0, 0, -height},
	}
	topology := formfactor.PolyhedralTopology{
		Faces: []formfactor.PolygonalTopology{
			{VertexIndices: []int{0, 1, 5}},
			{VertexIndices: []int{1, 2, 5}},
			{VertexIndices: []int{2, 3, 5}},
			{VertexIndices: []int{3, 4, 5}},
			{VertexIndices: []int{4, 0, 5}},
			{VertexIndices: []int{1, 0, 6}},
			{VertexIndices: []int{2, 1, 6}},
			{VertexIndices: []int{3, 2, 6}},
			{VertexIndices: []int{4, 3, 6}},
			{VertexIndices: []int{0, 4, 6}},
		},
	}
	return topology, vertices
}

// EquilateralTriangle returns the bare 3-vertex polygon (z=0) of an
// equilateral triangle of the given edge length, centered on its
// centroid. It is meant to be handed directly to poly.NewFace or used as
// a Prism base, not wrapped in a PolyhedralTopology.
func EquilateralTriangle(edge float64) []mgl64.Vec3 {
	as := edge / 2
	ac := edge / math.Sqrt(3) / 2
	ah := edge / math.Sqrt(3)
	return []mgl64.Vec3{
		{-ac, as, 0},
		{-ac, -as, 0},
		{ah, 0, 0},
	}
}
