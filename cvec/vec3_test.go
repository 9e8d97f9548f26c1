package cvec

import (
	"math/cmplx"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestDotAntilinearInReceiver(t *testing.T) {
	v := New(complex(0, 1), 0, 0) // i, 0, 0
	u := New(1, 0, 0)

	// conj(i)*1 = -i
	assert.Equal(t, complex(0, -1), v.Dot(u))
}

func TestCrossIsLinearNoConjugation(t *testing.T) {
	v := New(complex(0, 1), 0, 0)
	u := New(0, 1, 0)

	got := v.Cross(u)
	assert.Equal(t, complex(0, 1), got.Z) // i*1 - 0*0 = i, no conjugation
}

func TestFromRealPromotesComponents(t *testing.T) {
	r := mgl64.Vec3{1, 2, 3}
	c := FromReal(r)
	assert.Equal(t, complex(1., 0), c.X)
	assert.Equal(t, complex(2., 0), c.Y)
	assert.Equal(t, complex(3., 0), c.Z)
}

func TestMagOfRealPromotedVector(t *testing.T) {
	c := FromReal(mgl64.Vec3{3, 4, 0})
	assert.InDelta(t, 5.0, c.Mag(), 1e-15)
}

func TestSincAtZero(t *testing.T) {
	assert.Equal(t, complex128(1), Sinc(0))
}

func TestSincMatchesSinOverZ(t *testing.T) {
	z := complex(0.3, 0.1)
	got := Sinc(z)
	// sanity: sinc(z)*z == sin(z)
	assert.InDelta(t, 0.0, cmplx.Abs(got*z-cmplx.Sin(z)), 1e-14)
}

func TestMulIRotatesByQuarterTurn(t *testing.T) {
	assert.Equal(t, complex(0., 1.), MulI(1))
	assert.Equal(t, complex(-1., 0.), MulI(complex(0, 1)))
}

func TestExpIOfZeroIsOne(t *testing.T) {
	got := ExpI(0)
	assert.InDelta(t, 1.0, real(got), 1e-15)
	assert.InDelta(t, 0.0, imag(got), 1e-15)
}

func TestIsZero(t *testing.T) {
	assert.True(t, Vec3{}.IsZero())
	assert.False(t, New(1, 0, 0).IsZero())
}
