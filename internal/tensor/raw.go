package tensor

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/born-ml/namedtensor/internal/parallel"
)

// tensorBuffer is a reference-counted buffer shared between a tensor and its views.
type tensorBuffer struct {
	data     []byte
	refCount atomic.Int32
	mu       sync.Mutex // For safe deallocation
}

// newTensorBuffer creates a new reference-counted buffer with refCount = 1.
func newTensorBuffer(size int) *tensorBuffer {
	buf := &tensorBuffer{
		data: make([]byte, size),
	}
	buf.refCount.Store(1)
	return buf
}

// addRef increments the reference count (for views).
func (tb *tensorBuffer) addRef() {
	tb.refCount.Add(1)
}

// release decrements the reference count and deallocates if it reaches 0.
func (tb *tensorBuffer) release() {
	if tb.refCount.Add(-1) == 0 {
		tb.mu.Lock()
		defer tb.mu.Unlock()
		tb.data = nil
	}
}

// isUnique returns true if this buffer has only one reference.
func (tb *tensorBuffer) isUnique() bool {
	return tb.refCount.Load() == 1
}

// RawTensor is the low-level dense array.
//
// Permute returns a strided view over the same buffer; Reshape requires a
// contiguous layout and also shares the buffer. Contiguous and DeepCopy are
// the only operations that allocate.
type RawTensor struct {
	buffer *tensorBuffer // Shared reference-counted buffer
	shape  Shape         // Tensor dimensions
	stride []int         // Element strides (row-major unless permuted)
	dtype  DataType      // Runtime type information
}

// NewRaw creates a new RawTensor with the given shape and type.
// Memory is allocated and zeroed.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	byteSize := shape.NumElements() * dtype.Size()

	return &RawTensor{
		buffer: newTensorBuffer(byteSize),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
	}, nil
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the tensor's element strides.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// DType returns the tensor's data type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// ByteSize returns the logical memory size in bytes.
func (r *RawTensor) ByteSize() int {
	return r.NumElements() * r.dtype.Size()
}

// IsContiguous reports whether the strides are the row-major strides of the shape.
// Size-1 axes never affect contiguity.
func (r *RawTensor) IsContiguous() bool {
	want := r.shape.ComputeStrides()
	for i := range want {
		if r.shape[i] != 1 && r.stride[i] != want[i] {
			return false
		}
	}
	return true
}

// Data returns the raw byte slice of a contiguous tensor.
// WARNING: Direct access to underlying memory. Panics on a non-contiguous view.
func (r *RawTensor) Data() []byte {
	if !r.IsContiguous() {
		panic("tensor data is not contiguous; call Contiguous first")
	}
	return r.buffer.data[:r.ByteSize()]
}

// AsFloat32 interprets the data as []float32.
// Panics if the tensor's dtype is not Float32 or the tensor is not contiguous.
func (r *RawTensor) AsFloat32() []float32 {
	if r.dtype != Float32 {
		panic(fmt.Sprintf("tensor dtype is %s, not float32", r.dtype))
	}
	data := r.Data()
	//nolint:gosec // unsafe.Slice for zero-copy performance, bounds checked by NumElements()
	return unsafe.Slice((*float32)(unsafe.Pointer(&data[0])), r.NumElements())
}

// AsFloat64 interprets the data as []float64.
// Panics if the tensor's dtype is not Float64 or the tensor is not contiguous.
func (r *RawTensor) AsFloat64() []float64 {
	if r.dtype != Float64 {
		panic(fmt.Sprintf("tensor dtype is %s, not float64", r.dtype))
	}
	data := r.Data()
	//nolint:gosec // unsafe.Slice for zero-copy performance, bounds checked by NumElements()
	return unsafe.Slice((*float64)(unsafe.Pointer(&data[0])), r.NumElements())
}

// AsInt32 interprets the data as []int32.
// Panics if the tensor's dtype is not Int32 or the tensor is not contiguous.
func (r *RawTensor) AsInt32() []int32 {
	if r.dtype != Int32 {
		panic(fmt.Sprintf("tensor dtype is %s, not int32", r.dtype))
	}
	data := r.Data()
	//nolint:gosec // unsafe.Slice for zero-copy performance, bounds checked by NumElements()
	return unsafe.Slice((*int32)(unsafe.Pointer(&data[0])), r.NumElements())
}

// AsInt64 interprets the data as []int64.
// Panics if the tensor's dtype is not Int64 or the tensor is not contiguous.
func (r *RawTensor) AsInt64() []int64 {
	if r.dtype != Int64 {
		panic(fmt.Sprintf("tensor dtype is %s, not int64", r.dtype))
	}
	data := r.Data()
	//nolint:gosec // unsafe.Slice for zero-copy performance, bounds checked by NumElements()
	return unsafe.Slice((*int64)(unsafe.Pointer(&data[0])), r.NumElements())
}

// AsUint8 interprets the data as []uint8.
func (r *RawTensor) AsUint8() []uint8 {
	if r.dtype != Uint8 {
		panic(fmt.Sprintf("tensor dtype is %s, not uint8", r.dtype))
	}
	return r.Data() // Already []byte = []uint8
}

// AsBool interprets the data as []bool.
func (r *RawTensor) AsBool() []bool {
	if r.dtype != Bool {
		panic(fmt.Sprintf("tensor dtype is %s, not bool", r.dtype))
	}
	data := r.Data()
	//nolint:gosec // unsafe.Slice for zero-copy performance, bounds checked by NumElements()
	return unsafe.Slice((*bool)(unsafe.Pointer(&data[0])), r.NumElements())
}

// view returns a new header over the same buffer.
func (r *RawTensor) view(shape Shape, stride []int) *RawTensor {
	r.buffer.addRef()
	return &RawTensor{
		buffer: r.buffer,
		shape:  shape,
		stride: stride,
		dtype:  r.dtype,
	}
}

// Permute returns a view with axes reordered: axis i of the result is axis axes[i] of r.
// No data is moved.
func (r *RawTensor) Permute(axes ...int) (*RawTensor, error) {
	if err := validatePermutation(axes, len(r.shape)); err != nil {
		return nil, err
	}

	shape := make(Shape, len(axes))
	stride := make([]int, len(axes))
	for i, ax := range axes {
		shape[i] = r.shape[ax]
		stride[i] = r.stride[ax]
	}
	return r.view(shape, stride), nil
}

// Contiguous returns r itself when its layout is already row-major,
// otherwise a freshly allocated row-major copy.
func (r *RawTensor) Contiguous() *RawTensor {
	if r.IsContiguous() {
		return r
	}
	result := &RawTensor{
		buffer: newTensorBuffer(r.ByteSize()),
		shape:  r.shape.Clone(),
		stride: r.shape.ComputeStrides(),
		dtype:  r.dtype,
	}
	gatherStrided(result.buffer.data, r)
	return result
}

// Reshape returns a view of a contiguous tensor with a new shape.
// newShape may contain one InferDim entry.
func (r *RawTensor) Reshape(newShape Shape) (*RawTensor, error) {
	if !r.IsContiguous() {
		return nil, fmt.Errorf("reshape: tensor with shape %v and strides %v is not contiguous", r.shape, r.stride)
	}
	resolved, err := newShape.Infer(r.NumElements())
	if err != nil {
		return nil, fmt.Errorf("reshape %v -> %v: %w", r.shape, []int(newShape), err)
	}
	return r.view(resolved, resolved.ComputeStrides()), nil
}

// DeepCopy returns a contiguous tensor backed by a new buffer.
func (r *RawTensor) DeepCopy() *RawTensor {
	result := &RawTensor{
		buffer: newTensorBuffer(r.ByteSize()),
		shape:  r.shape.Clone(),
		stride: r.shape.ComputeStrides(),
		dtype:  r.dtype,
	}
	if r.IsContiguous() {
		copy(result.buffer.data, r.Data())
	} else {
		gatherStrided(result.buffer.data, r)
	}
	return result
}

// Release decrements the reference count and deallocates if it reaches 0.
func (r *RawTensor) Release() {
	r.buffer.release()
}

// IsUnique returns true if this tensor is the only reference to the buffer.
func (r *RawTensor) IsUnique() bool {
	return r.buffer.isUnique()
}

// gatherConfig controls how materialising a strided view is split across goroutines.
var gatherConfig = parallel.DefaultConfig()

// gatherStrided copies the elements of src in row-major order of its shape into dst.
func gatherStrided(dst []byte, src *RawTensor) {
	elem := src.dtype.Size()
	ndim := len(src.shape)
	outStrides := src.shape.ComputeStrides()

	parallel.Chunks(src.NumElements(), func(start, end int) {
		// Decode the coordinates of the first output element of this chunk.
		coords := make([]int, ndim)
		in := 0
		rem := start
		for i := 0; i < ndim; i++ {
			coords[i] = rem / outStrides[i]
			rem %= outStrides[i]
			in += coords[i] * src.stride[i]
		}

		for out := start; out < end; out++ {
			copy(dst[out*elem:(out+1)*elem], src.buffer.data[in*elem:(in+1)*elem])

			// Advance the row-major coordinate counter.
			for i := ndim - 1; i >= 0; i-- {
				coords[i]++
				in += src.stride[i]
				if coords[i] < src.shape[i] {
					break
				}
				in -= coords[i] * src.stride[i]
				coords[i] = 0
			}
		}
	}, gatherConfig)
}
