package sbb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_Projection(t *testing.T) {
	assert := assert.New(t)

	t.Run("empty batch acknowledges", func(t *testing.T) {
		res := newResult(nil)
		assert.True(res.Acked())
		assert.False(res.IsScalar())
		assert.Equal("", res.Scalar())
		assert.Equal(0, res.Len())
		assert.Equal(true, res.Value())
	})

	t.Run("single line is a scalar", func(t *testing.T) {
		res := newResult([]string{"DEADBEEF"})
		assert.False(res.Acked())
		assert.True(res.IsScalar())
		assert.Equal("DEADBEEF", res.Scalar())
		assert.Equal("DEADBEEF", res.Value())
	})

	t.Run("multiple lines keep arrival order", func(t *testing.T) {
		res := newResult([]string{"a", "b", "c"})
		assert.False(res.Acked())
		assert.False(res.IsScalar())
		assert.Equal("a", res.Scalar())
		assert.Equal([]string{"a", "b", "c"}, res.Lines())
		assert.Equal([]string{"a", "b", "c"}, res.Value())
	})
}

func TestResult_LinesIsACopy(t *testing.T) {
	res := newResult([]string{"a", "b"})

	lines := res.Lines()
	lines[0] = "mutated"

	assert.Equal(t, []string{"a", "b"}, res.Lines())
}
