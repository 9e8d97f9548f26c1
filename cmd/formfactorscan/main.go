// Command formfactorscan prints |F(q(t))| for a logarithmic scan of t along
// a chosen direction, for one of the catalog shapes. It exists to exercise
// the library's public API end to end, the way the original demo/*.cpp
// programs did for the reference implementation.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/waveq/formfactor"
	"github.com/waveq/formfactor/cvec"
	"github.com/waveq/formfactor/shapes"
)

func buildShape(name string, edge float64) (*formfactor.Polyhedron, error) {
	switch name {
	case "cube":
		topology, vertices := shapes.Cube(edge)
		return formfactor.NewPolyhedron(topology, vertices)
	case "octahedron":
		topology, vertices := shapes.Octahedron(edge)
		return formfactor.NewPolyhedron(topology, vertices)
	case "tetrahedron":
		topology, vertices := shapes.Tetrahedron(edge)
		return formfactor.NewPolyhedron(topology, vertices)
	case "decahedron":
		topology, vertices := shapes.Decahedron(edge)
		return formfactor.NewPolyhedron(topology, vertices)
	default:
		return nil, fmt.Errorf("unknown shape %q", name)
	}
}

func main() {
	shape := flag.String("shape", "cube", "shape to scan: cube, octahedron, tetrahedron, decahedron")
	edge := flag.Float64("edge", 1.0, "edge length")
	dirX := flag.Float64("dx", 1, "scan direction x component")
	dirY := flag.Float64("dy", 1, "scan direction y component")
	dirZ := flag.Float64("dz", 1, "scan direction z component")
	tMin := flag.Float64("tmin", 0.2, "starting t")
	tMax := flag.Float64("tmax", 200, "ending t")
	tStep := flag.Float64("tstep", 1.002, "multiplicative step between t values")
	flag.Parse()

	body, err := buildShape(*shape, *edge)
	if err != nil {
		fmt.Fprintln(os.Stderr, "formfactorscan:", err)
		os.Exit(1)
	}

	x, y, z := *dirX, *dirY, *dirZ
	dirLen := math.Sqrt(x*x + y*y + z*z)
	ux, uy, uz := x/dirLen, y/dirLen, z/dirLen

	fmt.Printf("# %s form factor, edge=%g, direction=(%g,%g,%g)\n", *shape, *edge, ux, uy, uz)
	fmt.Println("# t |F(q)|")
	for t := *tMin; t < *tMax; t *= *tStep {
		q := cvec.New(complex(t*ux, 0), complex(t*uy, 0), complex(t*uz, 0))
		ff, err := body.FormFactor(q)
		if err != nil {
			fmt.Fprintln(os.Stderr, "formfactorscan:", err)
			os.Exit(1)
		}
		fmt.Printf("%g %.12e\n", t, cabs(ff))
	}
}

func cabs(z complex128) float64 {
	return math.Hypot(real(z), imag(z))
}
