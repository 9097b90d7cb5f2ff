package tag

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zydeco/nbtkit/format"
)

func TestNewListOf(t *testing.T) {
	l, err := NewListOf([]Value{Long(1), Long(2), Long(3)})
	require.NoError(t, err)
	assert.Equal(t, format.Long, l.ElementType)
	assert.Equal(t, 3, l.Len())
}

func TestNewListOfEmpty(t *testing.T) {
	_, err := NewListOf(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrListEmpty))
}

func TestNewListOfMixedTypes(t *testing.T) {
	_, err := NewListOf([]Value{Int(1), Long(2)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrListMixedTypes))
}

func TestEmptyListCanonicalType(t *testing.T) {
	l := NewList(format.End)
	assert.Equal(t, format.End, l.ElementType)
	assert.Equal(t, 0, l.Len())
	assert.NoError(t, l.Validate())
}

func TestListValidateMismatch(t *testing.T) {
	l := NewList(format.Int)
	l.Append(Int(1))
	l.Append(Long(2))

	err := l.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrListTypeMismatch))
}
