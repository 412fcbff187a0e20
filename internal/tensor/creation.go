package tensor

import "fmt"

// Number is the subset of DType that supports arithmetic conversion.
type Number interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8
}

// Zeros creates a raw tensor filled with zeros.
func Zeros(shape Shape, dtype DataType) (*RawTensor, error) {
	// Data is already zero-initialized by make()
	return NewRaw(shape, dtype)
}

// FromSlice creates a raw tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T DType](data []T, shape Shape) (*RawTensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	raw, err := NewRaw(shape, DataTypeOf[T]())
	if err != nil {
		return nil, err
	}

	copy(Values[T](raw), data)
	return raw, nil
}

// Arange creates a tensor holding 0, 1, ..., n-1 in row-major order of shape.
//
// Example:
//
//	t, _ := tensor.Arange[float32](Shape{2, 3}) // [[0 1 2] [3 4 5]]
func Arange[T Number](shape Shape) (*RawTensor, error) {
	raw, err := NewRaw(shape, DataTypeOf[T]())
	if err != nil {
		return nil, err
	}
	data := Values[T](raw)
	for i := range data {
		data[i] = T(i)
	}
	return raw, nil
}

// Values returns a typed slice view of a contiguous tensor (zero-copy).
// Non-contiguous views are materialised first, in which case the slice
// belongs to a fresh copy.
//
// WARNING: Modifications to the returned slice of a contiguous tensor modify the tensor.
func Values[T DType](r *RawTensor) []T {
	r = r.Contiguous()
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return any(r.AsFloat32()).([]T)
	case float64:
		return any(r.AsFloat64()).([]T)
	case int32:
		return any(r.AsInt32()).([]T)
	case int64:
		return any(r.AsInt64()).([]T)
	case uint8:
		return any(r.AsUint8()).([]T)
	case bool:
		return any(r.AsBool()).([]T)
	default:
		panic("unsupported type")
	}
}
