package genutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclarke/rectpack"
)

func TestGenerateInstanceProducesRequestedCount(t *testing.T) {
	rng := rectpack.NewRNG(1)
	inst, err := GenerateInstance(20, 15, 2, 8, rng)
	require.NoError(t, err)
	assert.Equal(t, 15, inst.NumRectangles())
}

func TestGenerateInstanceRespectsDimensionRange(t *testing.T) {
	rng := rectpack.NewRNG(2)
	inst, err := GenerateInstance(20, 50, 3, 6, rng)
	require.NoError(t, err)

	for _, r := range inst.Rectangles {
		assert.GreaterOrEqual(t, r.Width, 3)
		assert.LessOrEqual(t, r.Width, 6)
		assert.GreaterOrEqual(t, r.Height, 3)
		assert.LessOrEqual(t, r.Height, 6)
	}
}

func TestGenerateInstanceIsReproducibleForASeed(t *testing.T) {
	inst1, err := GenerateInstance(20, 10, 2, 8, rectpack.NewRNG(5))
	require.NoError(t, err)
	inst2, err := GenerateInstance(20, 10, 2, 8, rectpack.NewRNG(5))
	require.NoError(t, err)

	require.Equal(t, len(inst1.Rectangles), len(inst2.Rectangles))
	for i := range inst1.Rectangles {
		assert.Equal(t, inst1.Rectangles[i].Width, inst2.Rectangles[i].Width)
		assert.Equal(t, inst1.Rectangles[i].Height, inst2.Rectangles[i].Height)
		assert.Equal(t, inst1.Rectangles[i].ID, inst2.Rectangles[i].ID)
	}
}

func TestGenerateInstanceRejectsOversizeMaxDim(t *testing.T) {
	_, err := GenerateInstance(10, 1, 1, 20, rectpack.NewRNG(1))
	assert.Error(t, err)
}
