package tensor

import (
	"fmt"
	"unsafe"
)

// View is a borrowed, typed window over caller-owned memory. It never
// allocates or frees the underlying buffer; whichever memory pool or
// allocation produced the buffer owns its lifetime. A View is transient:
// built per request from externally-owned data and discarded after use.
//
// The element type is not validated at construction. A View may carry a
// DataType outside the supported set; consumers that cannot render or
// transform such a type report it themselves.
type View struct {
	info Info
	data []byte
}

// NewView wraps data with the given metadata. It fails if the buffer is
// smaller than the metadata requires; extra trailing bytes are sliced off.
func NewView(info Info, data []byte) (*View, error) {
	if err := info.shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	size := info.NumBytes()
	if len(data) < size {
		return nil, fmt.Errorf("buffer too small: have %d bytes, need %d for %s %s",
			len(data), size, info.shape, info.dtype)
	}
	return &View{info: info, data: data[:size:size]}, nil
}

// ViewOf wraps a typed slice as a View, inferring the element type.
func ViewOf[T DType](shape Shape, data []T) (*View, error) {
	var zero T
	dtype := inferDataType(zero)
	if len(data) == 0 {
		return NewView(NewInfo(shape, dtype), nil)
	}
	raw := unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*dtype.Size())
	return NewView(NewInfo(shape, dtype), raw)
}

// Info returns the tensor's metadata.
func (v *View) Info() Info {
	return v.info
}

// Shape returns the tensor's shape.
func (v *View) Shape() Shape {
	return v.info.shape
}

// DType returns the tensor's element type.
func (v *View) DType() DataType {
	return v.info.dtype
}

// NumElements returns the total number of elements.
func (v *View) NumElements() int {
	return v.info.NumElements()
}

// ByteSize returns the viewed memory size in bytes.
func (v *View) ByteSize() int {
	return len(v.data)
}

// Data returns the raw byte slice.
// WARNING: Direct access to underlying memory. Use with caution.
func (v *View) Data() []byte {
	return v.data
}

// AsFloat32 interprets the data as []float32.
// Panics if the view's dtype is not Float32.
func (v *View) AsFloat32() []float32 {
	if v.info.dtype != Float32 {
		panic(fmt.Sprintf("view dtype is %s, not float32", v.info.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*float32)(unsafe.Pointer(&v.data[0])), v.NumElements())
}

// AsQuant8 interprets the data as []uint8.
// Panics if the view's dtype is not QuantizedAsymm8.
func (v *View) AsQuant8() []uint8 {
	if v.info.dtype != QuantizedAsymm8 {
		panic(fmt.Sprintf("view dtype is %s, not quant8_asymm", v.info.dtype))
	}
	return v.data // Already []byte = []uint8
}

// AsInt32 interprets the data as []int32.
// Panics if the view's dtype is not Signed32.
func (v *View) AsInt32() []int32 {
	if v.info.dtype != Signed32 {
		panic(fmt.Sprintf("view dtype is %s, not int32", v.info.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*int32)(unsafe.Pointer(&v.data[0])), v.NumElements())
}
