package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/namedtensor/internal/parallel"
)

func mustArange(t *testing.T, shape Shape) *RawTensor {
	t.Helper()
	raw, err := Arange[float32](shape)
	require.NoError(t, err)
	return raw
}

func TestNewRaw(t *testing.T) {
	raw, err := NewRaw(Shape{3, 2}, Int64)
	require.NoError(t, err)
	assert.Equal(t, 6, raw.NumElements())
	assert.Equal(t, 48, raw.ByteSize())
	assert.True(t, raw.IsContiguous())
	assert.True(t, raw.IsUnique())

	_, err = NewRaw(Shape{3, 0}, Float32)
	assert.Error(t, err)
}

func TestRawTensorAsInt64(t *testing.T) {
	raw, err := NewRaw(Shape{3, 2}, Int64)
	require.NoError(t, err)
	data := raw.AsInt64()
	assert.Len(t, data, 6)

	// Modify and verify zero-copy
	data[0] = 42
	assert.Equal(t, int64(42), raw.AsInt64()[0])

	assert.Panics(t, func() { raw.AsFloat32() })
}

func TestFromSlice(t *testing.T) {
	raw, err := FromSlice([]int32{1, 2, 3, 4}, Shape{2, 2})
	require.NoError(t, err)
	assert.Equal(t, Int32, raw.DType())
	assert.Equal(t, []int32{1, 2, 3, 4}, Values[int32](raw))

	_, err = FromSlice([]int32{1, 2, 3}, Shape{2, 2})
	assert.Error(t, err)
}

func TestPermuteIsView(t *testing.T) {
	raw := mustArange(t, Shape{2, 3})

	p, err := raw.Permute(1, 0)
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 2}, p.Shape())
	assert.Equal(t, []int{1, 3}, p.Strides())
	assert.False(t, p.IsContiguous())
	assert.False(t, raw.IsUnique(), "view shares the buffer")
	assert.Panics(t, func() { p.Data() })

	assert.Equal(t, []float32{0, 3, 1, 4, 2, 5}, Values[float32](p))

	p.Release()
	assert.True(t, raw.IsUnique())
}

func TestPermuteValidation(t *testing.T) {
	raw := mustArange(t, Shape{2, 3, 4})

	_, err := raw.Permute(0, 1)
	assert.Error(t, err)
	_, err = raw.Permute(0, 1, 3)
	assert.Error(t, err)
	_, err = raw.Permute(0, 1, 1)
	assert.Error(t, err)
}

func TestPermuteComposes(t *testing.T) {
	raw := mustArange(t, Shape{2, 3, 4})

	p, err := raw.Permute(2, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, Shape{4, 2, 3}, p.Shape())

	back, err := p.Permute(1, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3, 4}, back.Shape())
	assert.True(t, back.IsContiguous())
	assert.Equal(t, Values[float32](raw), Values[float32](back))
}

func TestContiguous(t *testing.T) {
	raw := mustArange(t, Shape{2, 3})
	assert.Same(t, raw, raw.Contiguous())

	p, err := raw.Permute(1, 0)
	require.NoError(t, err)
	c := p.Contiguous()
	assert.NotSame(t, p, c)
	assert.True(t, c.IsContiguous())
	assert.True(t, c.IsUnique())
	assert.Equal(t, []float32{0, 3, 1, 4, 2, 5}, c.AsFloat32())
}

func TestContiguousParallelGather(t *testing.T) {
	raw := mustArange(t, Shape{5, 7, 11})
	p, err := raw.Permute(2, 0, 1)
	require.NoError(t, err)

	saved := gatherConfig
	defer func() { gatherConfig = saved }()

	gatherConfig = parallel.Config{}
	sequential := Values[float32](p)

	gatherConfig = parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 3}
	chunked := Values[float32](p)

	assert.Equal(t, sequential, chunked)
	assert.Equal(t, float32(0), chunked[0])
	assert.Equal(t, float32(11), chunked[1])
	assert.Equal(t, float32(1), chunked[35])
}

func TestContiguousSizeOneAxes(t *testing.T) {
	raw := mustArange(t, Shape{3, 1})
	p, err := raw.Permute(1, 0)
	require.NoError(t, err)
	assert.True(t, p.IsContiguous(), "size-1 axes do not affect layout")
}

func TestReshape(t *testing.T) {
	raw := mustArange(t, Shape{2, 3, 4})

	r, err := raw.Reshape(Shape{2, InferDim})
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 12}, r.Shape())
	assert.Equal(t, Values[float32](raw), Values[float32](r))
	assert.False(t, raw.IsUnique(), "reshape shares the buffer")

	_, err = raw.Reshape(Shape{5, InferDim})
	assert.Error(t, err)

	p, err := raw.Permute(1, 0, 2)
	require.NoError(t, err)
	_, err = p.Reshape(Shape{InferDim})
	assert.Error(t, err, "non-contiguous view cannot be reshaped")
}

func TestDeepCopy(t *testing.T) {
	raw := mustArange(t, Shape{2, 3})
	cp := raw.DeepCopy()
	assert.True(t, cp.IsUnique())

	cp.AsFloat32()[0] = 42
	assert.Equal(t, float32(0), raw.AsFloat32()[0])

	p, err := raw.Permute(1, 0)
	require.NoError(t, err)
	pc := p.DeepCopy()
	assert.True(t, pc.IsContiguous())
	assert.Equal(t, []float32{0, 3, 1, 4, 2, 5}, pc.AsFloat32())
}

func TestRelease(_ *testing.T) {
	raw, _ := NewRaw(Shape{2, 2}, Float32)

	// Should not panic
	raw.Release()
}
