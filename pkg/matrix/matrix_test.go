package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/kgraph/pkg/matrix"
)

func TestValidate(t *testing.T) {
	n, err := matrix.Validate(path3)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = matrix.Validate(nil)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = matrix.Validate(matrix.Matrix{{0, 1}, {1, 0}, {0, 0}})
	assert.ErrorIs(t, err, matrix.ErrInvalidShape)
}

func TestToAdjacency(t *testing.T) {
	w := matrix.Matrix{
		{0, 5, -2},
		{0, 0, 1},
		{7, 0, 3},
	}
	got, err := matrix.ToAdjacency(w)
	require.NoError(t, err)
	assert.Equal(t, matrix.Matrix{{0, 1, 0}, {0, 0, 1}, {1, 0, 1}}, got)
}

func TestToAdjacency_Property(t *testing.T) {
	rng := matrix.NewRand(3)
	w, err := matrix.Random(8, matrix.RandomOptions{Min: 0, Max: 3}, rng)
	require.NoError(t, err)

	adj, err := matrix.ToAdjacency(w)
	require.NoError(t, err)
	for i := range w {
		for j := range w[i] {
			if w[i][j] > 0 {
				assert.Equal(t, int64(1), adj[i][j])
			} else {
				assert.Equal(t, int64(0), adj[i][j])
			}
		}
	}
}

func TestEdges(t *testing.T) {
	w := matrix.Matrix{
		{0, 2, 0, 4},
		{9, 0, 3, 0},
		{0, 0, 0, 0},
		{0, 0, 1, 0},
	}
	edges, err := matrix.Edges(w)
	require.NoError(t, err)
	assert.Equal(t, []matrix.Edge{
		{From: 0, To: 1, Weight: 2},
		{From: 0, To: 3, Weight: 4},
		{From: 1, To: 2, Weight: 3},
	}, edges)

	_, err = matrix.Edges(matrix.Matrix{{0, 1}})
	assert.ErrorIs(t, err, matrix.ErrInvalidShape)
}

func TestCloneEqual(t *testing.T) {
	c := matrix.Clone(path3)
	assert.True(t, matrix.Equal(path3, c))

	c[1][2] = 0
	assert.False(t, matrix.Equal(path3, c))
	assert.False(t, matrix.Equal(path3, path3[:2]))
	assert.Nil(t, matrix.Clone(nil))
}

func TestString(t *testing.T) {
	assert.Equal(t, "[0 2 0]\n[2 0 3]\n[0 3 0]\n", path3.String())
	assert.Equal(t, "", matrix.Matrix(nil).String())
}
