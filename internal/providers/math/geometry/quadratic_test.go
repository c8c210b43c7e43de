package geometry

import (
	gomath "math"
	"testing"

	"github.com/GriffinCanCode/mathkit/internal/providers/math/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuadraticRootsReal(t *testing.T) {
	roots, err := QuadraticRoots(1, -3, 2)
	require.NoError(t, err)
	assert.True(t, roots[0].IsReal())
	assert.Equal(t, 2.0, roots[0].Re)
	assert.Equal(t, 1.0, roots[1].Re)

	// Repeated root
	roots, err = QuadraticRoots(1, -2, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, roots[0].Re)
	assert.Equal(t, 1.0, roots[1].Re)

	// Negative leading coefficient keeps the formula order
	roots, err = QuadraticRoots(-1, 0, 4)
	require.NoError(t, err)
	assert.Equal(t, -2.0, roots[0].Re)
	assert.Equal(t, 2.0, roots[1].Re)
}

func TestQuadraticRootsComplex(t *testing.T) {
	roots, err := QuadraticRoots(1, 0, 1)
	require.NoError(t, err)
	assert.False(t, roots[0].IsReal())
	assert.Equal(t, "0 + 1i", roots[0].String())
	assert.Equal(t, "0 - 1i", roots[1].String())

	roots, err = QuadraticRoots(1, 2, 5)
	require.NoError(t, err)
	assert.Equal(t, "-1 + 2i", roots[0].String())
	assert.Equal(t, "-1 - 2i", roots[1].String())

	roots, err = QuadraticRoots(2, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, "-0.5 + 0.5i", roots[0].String())
	assert.Equal(t, "-0.5 - 0.5i", roots[1].String())

	// Negative a still puts the positive imaginary part first
	roots, err = QuadraticRoots(-1, 0, -1)
	require.NoError(t, err)
	assert.Equal(t, "0 + 1i", roots[0].String())
	assert.Equal(t, "0 - 1i", roots[1].String())
}

func TestQuadraticRootsInvalid(t *testing.T) {
	_, err := QuadraticRoots(0, 2, 1)
	assert.ErrorIs(t, err, common.ErrInvalidArgument)

	_, err = QuadraticRoots(1, gomath.NaN(), 1)
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
}

func TestRootString(t *testing.T) {
	assert.Equal(t, "2", Root{Re: 2}.String())
	assert.Equal(t, "0", Root{Re: gomath.Copysign(0, -1)}.String())
	assert.Equal(t, "1.5 - 0.25i", Root{Re: 1.5, Im: -0.25}.String())
	assert.Equal(t, "1e+21 + 1e-7i", Root{Re: 1e21, Im: 1e-7}.String())
	assert.Equal(t, "-2.5e+30 - 1.25e-10i", Root{Re: -2.5e30, Im: -1.25e-10}.String())
	assert.Equal(t, "100000000000000000000", Root{Re: 1e20}.String())
	assert.Equal(t, "0.000001", Root{Re: 1e-6}.String())
	assert.Equal(t, "1e+100", Root{Re: 1e100}.String())
}

func TestDiscriminant(t *testing.T) {
	assert.Equal(t, 1.0, Discriminant(1, -3, 2))
	assert.Equal(t, -4.0, Discriminant(1, 0, 1))
}
