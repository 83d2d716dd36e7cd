package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	base := []string{"PATH=/usr/bin", "HOME=/home/dev"}

	t.Run("appends new variable", func(t *testing.T) {
		got := Set(base, "HALSIM_EXTENSIONS", "/ext/ds.so")
		assert.Contains(t, got, "HALSIM_EXTENSIONS=/ext/ds.so")
		assert.Len(t, got, 3)
	})

	t.Run("replaces existing variable", func(t *testing.T) {
		got := Set(base, "HOME", "/tmp")
		assert.Contains(t, got, "HOME=/tmp")
		assert.NotContains(t, got, "HOME=/home/dev")
		assert.Len(t, got, 2)
	})

	t.Run("does not modify input", func(t *testing.T) {
		Set(base, "HOME", "/tmp")
		assert.Equal(t, "HOME=/home/dev", base[1])
	})
}

func TestPrepend(t *testing.T) {
	t.Run("missing variable", func(t *testing.T) {
		got := Prepend(nil, "LD_LIBRARY_PATH", "/a:/b", ":")
		assert.Contains(t, got, "LD_LIBRARY_PATH=/a:/b")
	})

	t.Run("existing variable", func(t *testing.T) {
		base := []string{"LD_LIBRARY_PATH=/system"}
		got := Prepend(base, "LD_LIBRARY_PATH", "/a", ":")
		assert.Contains(t, got, "LD_LIBRARY_PATH=/a:/system")
	})
}

func TestLookup(t *testing.T) {
	base := []string{"A=1", "B="}

	v, ok := Lookup(base, "A")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	v, ok = Lookup(base, "B")
	assert.True(t, ok)
	assert.Empty(t, v)

	_, ok = Lookup(base, "C")
	assert.False(t, ok)
}
