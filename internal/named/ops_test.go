package named

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/namedtensor/internal/schema"
)

func xyz(t *testing.T) *NamedTensor {
	t.Helper()
	return mustArange(t, schema.Shape{{Name: "x", Size: 2}, {Name: "y", Size: 3}, {Name: "z", Size: 4}})
}

func TestRename(t *testing.T) {
	nt := xyz(t)

	renamed, err := nt.Rename("y", "w")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "w", "z"}, renamed.Dims())
	assert.Equal(t, nt.VShape(), renamed.VShape())
	assert.Same(t, nt.Values(), renamed.Values())

	back, err := renamed.Rename("w", "y")
	require.NoError(t, err)
	assert.Equal(t, nt.Dims(), back.Dims())
	assert.Equal(t, values(t, nt), values(t, back))

	_, err = nt.Rename("q", "w")
	assert.ErrorIs(t, err, ErrNameNotFound)

	_, err = nt.Rename("x", "z")
	assert.ErrorIs(t, err, ErrSchema)

	assert.Equal(t, []string{"x", "y", "z"}, nt.Dims(), "receiver must be unchanged")
}

func TestTranspose(t *testing.T) {
	nt := mustArange(t, schema.Shape{{Name: "x", Size: 2}, {Name: "y", Size: 3}})

	t.Run("listed dims move last", func(t *testing.T) {
		tr, err := nt.Transpose("x")
		require.NoError(t, err)
		assert.Equal(t, []string{"y", "x"}, tr.Dims())
		assert.Equal(t, []int{3, 2}, tr.VShape())
		assert.Equal(t, []float32{0, 3, 1, 4, 2, 5}, values(t, tr))
	})

	t.Run("full permutation", func(t *testing.T) {
		full := xyz(t)
		tr, err := full.Transpose("z", "x", "y")
		require.NoError(t, err)
		assert.Equal(t, []string{"z", "x", "y"}, tr.Dims())
		assert.Equal(t, []int{4, 2, 3}, tr.VShape())

		size, err := tr.Size("z")
		require.NoError(t, err)
		assert.Equal(t, 4, size)
	})

	t.Run("round trip is a no-op on values", func(t *testing.T) {
		full := xyz(t)
		tr, err := full.Transpose("z", "x")
		require.NoError(t, err)
		assert.Equal(t, []string{"y", "z", "x"}, tr.Dims())

		back, err := tr.Transpose(full.Dims()...)
		require.NoError(t, err)
		assert.Equal(t, full.Dims(), back.Dims())
		assert.Equal(t, values(t, full), values(t, back))
	})

	t.Run("no names is identity", func(t *testing.T) {
		tr, err := nt.Transpose()
		require.NoError(t, err)
		assert.Equal(t, nt.Dims(), tr.Dims())
		assert.Equal(t, values(t, nt), values(t, tr))
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := nt.Transpose("w")
		assert.ErrorIs(t, err, ErrNameNotFound)
	})

	t.Run("duplicate name", func(t *testing.T) {
		_, err := nt.Transpose("x", "x")
		assert.ErrorIs(t, err, ErrSchema)
	})

	t.Run("mask follows its dim", func(t *testing.T) {
		masked, err := nt.MaskTo("x")
		require.NoError(t, err)
		tr, err := masked.Transpose("x")
		require.NoError(t, err)
		name, ok := tr.Masked()
		require.True(t, ok)
		assert.Equal(t, "x", name)
		assert.Equal(t, 2, tr.Schema().MaskIndex())
	})
}

func TestStack(t *testing.T) {
	t.Run("merge trailing dims", func(t *testing.T) {
		nt := xyz(t)
		st, err := nt.Stack([]string{"y", "z"}, "yz")
		require.NoError(t, err)
		assert.Equal(t, []string{"x", "yz"}, st.Dims())
		assert.Equal(t, []int{2, 12}, st.VShape())
		assert.Equal(t, values(t, nt), values(t, st))
	})

	t.Run("merge in caller order", func(t *testing.T) {
		nt := mustArange(t, schema.Shape{{Name: "x", Size: 2}, {Name: "y", Size: 3}})
		st, err := nt.Stack([]string{"y", "x"}, "yx")
		require.NoError(t, err)
		assert.Equal(t, []string{"yx"}, st.Dims())
		assert.Equal(t, []float32{0, 3, 1, 4, 2, 5}, values(t, st))
	})

	t.Run("merged dim takes first position", func(t *testing.T) {
		nt := xyz(t)
		st, err := nt.Stack([]string{"z", "x"}, "zx")
		require.NoError(t, err)
		assert.Equal(t, []string{"zx", "y"}, st.Dims())
		assert.Equal(t, []int{8, 3}, st.VShape())
	})

	t.Run("errors", func(t *testing.T) {
		nt := xyz(t)
		_, err := nt.Stack([]string{"y", "w"}, "yw")
		assert.ErrorIs(t, err, ErrNameNotFound)

		_, err = nt.Stack(nil, "none")
		assert.ErrorIs(t, err, ErrSchema)

		_, err = nt.Stack([]string{"y", "y"}, "yy")
		assert.ErrorIs(t, err, ErrSchema)

		_, err = nt.Stack([]string{"y", "z"}, "x")
		assert.ErrorIs(t, err, ErrSchema)
	})

	t.Run("mask", func(t *testing.T) {
		nt := xyz(t)
		masked, err := nt.MaskTo("x")
		require.NoError(t, err)

		st, err := masked.Stack([]string{"y", "z"}, "yz")
		require.NoError(t, err)
		name, ok := st.Masked()
		require.True(t, ok)
		assert.Equal(t, "x", name)

		st, err = masked.Stack([]string{"x", "y"}, "x")
		require.NoError(t, err)
		_, ok = st.Masked()
		assert.False(t, ok, "mask is cleared when its dim is merged")
	})
}

func TestSplit(t *testing.T) {
	t.Run("stack then split restores", func(t *testing.T) {
		nt := xyz(t)
		st, err := nt.Stack([]string{"y", "z"}, "yz")
		require.NoError(t, err)

		sp, err := st.Split("yz", []string{"y", "z"}, map[string]int{"y": 3})
		require.NoError(t, err)
		assert.Equal(t, []string{"x", "y", "z"}, sp.Dims())
		assert.Equal(t, []int{2, 3, 4}, sp.VShape())
		assert.Equal(t, values(t, nt), values(t, sp))
	})

	t.Run("inverse law modulo position", func(t *testing.T) {
		nt := xyz(t)
		st, err := nt.Stack([]string{"x", "z"}, "m")
		require.NoError(t, err)
		assert.Equal(t, []string{"m", "y"}, st.Dims())

		sp, err := st.Split("m", []string{"x", "z"}, map[string]int{"x": 2})
		require.NoError(t, err)
		assert.ElementsMatch(t, nt.Dims(), sp.Dims())
		for _, d := range nt.Shape() {
			size, err := sp.Size(d.Name)
			require.NoError(t, err)
			assert.Equal(t, d.Size, size, d.Name)
		}
	})

	t.Run("all sizes given", func(t *testing.T) {
		nt := mustArange(t, schema.Shape{{Name: "n", Size: 12}})
		sp, err := nt.Split("n", []string{"a", "b", "c"}, map[string]int{"a": 2, "b": 3, "c": 2})
		require.NoError(t, err)
		assert.Equal(t, []int{2, 3, 2}, sp.VShape())
	})

	t.Run("inferred last", func(t *testing.T) {
		nt := mustArange(t, schema.Shape{{Name: "n", Size: 12}})
		sp, err := nt.Split("n", []string{"a", "b"}, map[string]int{"a": 4})
		require.NoError(t, err)
		assert.Equal(t, []int{4, 3}, sp.VShape())
	})

	t.Run("split of a transposed view", func(t *testing.T) {
		nt := mustArange(t, schema.Shape{{Name: "x", Size: 2}, {Name: "y", Size: 6}})
		tr, err := nt.Transpose("x")
		require.NoError(t, err)

		sp, err := tr.Split("y", []string{"a", "b"}, map[string]int{"b": 2})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "x"}, sp.Dims())
		assert.Equal(t, []int{3, 2, 2}, sp.VShape())
		assert.Equal(t, values(t, tr), values(t, sp))
	})

	t.Run("errors", func(t *testing.T) {
		nt := mustArange(t, schema.Shape{{Name: "n", Size: 12}})

		_, err := nt.Split("m", []string{"a", "b"}, map[string]int{"a": 4})
		assert.ErrorIs(t, err, ErrNameNotFound)

		_, err = nt.Split("n", []string{"a", "b"}, nil)
		assert.ErrorIs(t, err, ErrShapeMismatch, "two inferred sizes")

		_, err = nt.Split("n", []string{"a", "b"}, map[string]int{"a": 5})
		assert.ErrorIs(t, err, ErrShapeMismatch, "not divisible")

		_, err = nt.Split("n", []string{"a", "b"}, map[string]int{"a": 3, "b": 3})
		assert.ErrorIs(t, err, ErrShapeMismatch, "product differs")

		_, err = nt.Split("n", []string{"a", "b"}, map[string]int{"a": 0})
		assert.ErrorIs(t, err, ErrShapeMismatch)

		_, err = nt.Split("n", []string{"a", "a"}, map[string]int{"a": 3})
		assert.ErrorIs(t, err, ErrSchema)

		_, err = nt.Split("n", []string{"a", "b"}, map[string]int{"c": 3})
		assert.ErrorIs(t, err, ErrSchema)

		_, err = nt.Split("n", nil, nil)
		assert.ErrorIs(t, err, ErrSchema)
	})

	t.Run("mask is cleared on split dim", func(t *testing.T) {
		nt := mustArange(t, schema.Shape{{Name: "x", Size: 2}, {Name: "n", Size: 6}})
		masked, err := nt.MaskTo("n")
		require.NoError(t, err)

		sp, err := masked.Split("n", []string{"a", "b"}, map[string]int{"a": 2})
		require.NoError(t, err)
		_, ok := sp.Masked()
		assert.False(t, ok)

		masked, err = nt.MaskTo("x")
		require.NoError(t, err)
		sp, err = masked.Split("n", []string{"a", "b"}, map[string]int{"a": 2})
		require.NoError(t, err)
		name, ok := sp.Masked()
		require.True(t, ok)
		assert.Equal(t, "x", name)
	})
}

func TestUnsqueeze(t *testing.T) {
	nt := mustArange(t, schema.Shape{{Name: "x", Size: 2}, {Name: "y", Size: 3}})

	un, err := nt.Unsqueeze("w")
	require.NoError(t, err)
	assert.Equal(t, []string{"w", "x", "y"}, un.Dims())
	assert.Equal(t, []int{1, 2, 3}, un.VShape())
	assert.Equal(t, values(t, nt), values(t, un))

	_, err = nt.Unsqueeze("x")
	assert.ErrorIs(t, err, ErrSchema)
	_, err = nt.Unsqueeze("y")
	assert.ErrorIs(t, err, ErrSchema)

	t.Run("keeps mask on first dim", func(t *testing.T) {
		masked, err := nt.MaskTo("x")
		require.NoError(t, err)
		un, err := masked.Unsqueeze("w")
		require.NoError(t, err)
		name, ok := un.Masked()
		require.True(t, ok)
		assert.Equal(t, "x", name)
		assert.Equal(t, 2, un.Schema().MaskIndex())
	})

	t.Run("scalar", func(t *testing.T) {
		scalar := mustArange(t, schema.Shape{})
		un, err := scalar.Unsqueeze("w")
		require.NoError(t, err)
		assert.Equal(t, []string{"w"}, un.Dims())
		assert.Equal(t, []int{1}, un.VShape())
	})
}

func TestMaskTo(t *testing.T) {
	nt := xyz(t)

	masked, err := nt.MaskTo("z")
	require.NoError(t, err)
	assert.Equal(t, 3, masked.Schema().MaskIndex())
	assert.Same(t, nt.Values(), masked.Values())

	cleared, err := masked.MaskTo("")
	require.NoError(t, err)
	_, ok := cleared.Masked()
	assert.False(t, ok)

	_, err = nt.MaskTo("w")
	assert.ErrorIs(t, err, ErrNameNotFound)

	_, ok = nt.Masked()
	assert.False(t, ok, "receiver must be unchanged")
}
