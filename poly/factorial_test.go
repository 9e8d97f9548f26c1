package poly

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReciprocalFactorialTable(t *testing.T) {
	assert.Greater(t, len(reciprocalFactorial), 150)
	assert.InDelta(t, 1.0, reciprocalFactorial[0], 1e-15)
	assert.InDelta(t, 1.0, reciprocalFactorial[1], 1e-15)
	assert.InDelta(t, 0.5, reciprocalFactorial[2], 1e-15)
	assert.InDelta(t, 1.0/6.0, reciprocalFactorial[3], 1e-15)
	assert.InEpsilon(t, 1.75027620692601519e-263, reciprocalFactorial[150], 1e-14)
}
