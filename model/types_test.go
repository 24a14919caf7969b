package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CrazyPandaXJ/nip/model"
	"github.com/CrazyPandaXJ/nip/variable"
)

func TestModelByID(t *testing.T) {
	t.Parallel()

	a, err := variable.New(0, "A", "", []string{"a0", "a1"}, nil)
	require.NoError(t, err)
	b, err := variable.New(1, "B", "", []string{"b0", "b1"}, nil)
	require.NoError(t, err)

	m := &model.Model{Variables: []*variable.Variable{a, b}}

	found, err := m.ByID(1)
	require.NoError(t, err)
	assert.True(t, found.Equal(b))

	_, err = m.ByID(99)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestMissingStateSentinel(t *testing.T) {
	t.Parallel()
	assert.Equal(t, -1, model.MissingState)
}
