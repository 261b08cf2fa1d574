package tensor

// Info describes a tensor: shape, element type, and quantization parameters.
// It carries no data; pair it with a View for element access. An Info is
// built once from an operand descriptor and not modified afterwards.
type Info struct {
	shape      Shape
	dtype      DataType
	quantScale float32
	quantZero  int32
}

// NewInfo creates metadata for a non-quantized tensor.
func NewInfo(shape Shape, dtype DataType) Info {
	return Info{shape: shape.Clone(), dtype: dtype}
}

// NewQuantizedInfo creates metadata carrying quantization parameters.
// Scale and zero point are recorded for any element type; they only have
// meaning for QuantizedAsymm8.
func NewQuantizedInfo(shape Shape, dtype DataType, scale float32, zeroPoint int32) Info {
	return Info{shape: shape.Clone(), dtype: dtype, quantScale: scale, quantZero: zeroPoint}
}

// Shape returns the tensor's shape.
func (i Info) Shape() Shape {
	return i.shape
}

// DType returns the tensor's element type.
func (i Info) DType() DataType {
	return i.dtype
}

// QuantizationScale returns the quantization scale.
func (i Info) QuantizationScale() float32 {
	return i.quantScale
}

// QuantizationZeroPoint returns the quantization zero point.
func (i Info) QuantizationZeroPoint() int32 {
	return i.quantZero
}

// NumElements returns the total number of elements.
func (i Info) NumElements() int {
	return i.shape.NumElements()
}

// NumBytes returns the tensor's memory footprint. It is 0 for an element
// type outside the supported set.
func (i Info) NumBytes() int {
	return i.NumElements() * i.dtype.Size()
}
