package variable_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CrazyPandaXJ/nip/variable"
)

func TestNew_ValidatesSymbolAndName(t *testing.T) {
	t.Parallel()

	_, err := variable.New(0, "", "name", []string{"a", "b"}, nil)
	assert.ErrorIs(t, err, variable.ErrEmptySymbol)

	longSymbol := strings.Repeat("x", variable.MaxSymbolLen+1)
	_, err = variable.New(0, longSymbol, "name", []string{"a", "b"}, nil)
	assert.ErrorIs(t, err, variable.ErrSymbolTooLong)

	longName := strings.Repeat("y", variable.MaxNameLen+1)
	_, err = variable.New(0, "V", longName, []string{"a", "b"}, nil)
	assert.ErrorIs(t, err, variable.ErrNameTooLong)

	_, err = variable.New(0, "V", "name", nil, nil)
	assert.ErrorIs(t, err, variable.ErrInvalidCardinality)
}

func TestNew_DefaultsLikelihoodToOnes(t *testing.T) {
	t.Parallel()

	v, err := variable.New(1, "A", "alpha", []string{"0", "1"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, v.Cardinality())
	assert.Equal(t, []float64{1, 1}, v.Likelihood())
	assert.Equal(t, -1, v.FamilyClique)
}

func TestIndicator(t *testing.T) {
	t.Parallel()

	v, err := variable.New(2, "B", "beta", []string{"lo", "mid", "hi"}, nil)
	require.NoError(t, err)

	lik, err := v.Indicator(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 0}, lik)

	_, err = v.Indicator(3)
	assert.ErrorIs(t, err, variable.ErrUnknownState)
}

func TestSetLikelihood_LengthMismatch(t *testing.T) {
	t.Parallel()

	v, err := variable.New(3, "C", "gamma", []string{"0", "1"}, nil)
	require.NoError(t, err)

	err = v.SetLikelihood([]float64{1, 0, 0})
	assert.ErrorIs(t, err, variable.ErrLikelihoodLenMismatch)

	require.NoError(t, v.SetLikelihood([]float64{0.25, 0.75}))
	assert.Equal(t, []float64{0.25, 0.75}, v.Likelihood())

	v.ResetLikelihood()
	assert.Equal(t, []float64{1, 1}, v.Likelihood())
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a, err := variable.New(5, "A", "a", []string{"0", "1"}, nil)
	require.NoError(t, err)
	b, err := variable.New(5, "A2", "a2", []string{"0", "1"}, nil)
	require.NoError(t, err)
	c, err := variable.New(6, "C", "c", []string{"0", "1"}, nil)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

func TestInterfaceFlagString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "none", variable.None.String())
	assert.Equal(t, "outgoing", variable.Outgoing.String())
	assert.Equal(t, "old-outgoing", variable.OldOutgoing.String())
}
