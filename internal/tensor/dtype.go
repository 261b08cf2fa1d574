// Package tensor provides the shapes, element types, and buffer views shared
// by the driver's layout-conversion and diagnostic layers.
package tensor

// DType is a constraint for supported tensor element types.
type DType interface {
	~float32 | ~uint8 | ~int32
}

// DataType represents runtime element type information for tensors.
type DataType int

// Element types the driver understands. The set is closed: everything else
// is an unsupported type that consumers must report rather than guess at.
const (
	Float32 DataType = iota
	QuantizedAsymm8
	Signed32
)

// Size returns the byte size of one element, or 0 for a DataType outside
// the supported set. A zero width is never a valid stride; consumers check
// Valid before doing arithmetic with it.
func (dt DataType) Size() int {
	switch dt {
	case Float32, Signed32:
		return 4
	case QuantizedAsymm8:
		return 1
	default:
		return 0
	}
}

// Valid reports whether dt is one of the supported element types.
func (dt DataType) Valid() bool {
	return dt.Size() > 0
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case QuantizedAsymm8:
		return "quant8_asymm"
	case Signed32:
		return "int32"
	default:
		return "unknown"
	}
}

// inferDataType infers DataType from a generic type T.
func inferDataType[T DType](dummy T) DataType {
	switch any(dummy).(type) {
	case float32:
		return Float32
	case uint8:
		return QuantizedAsymm8
	case int32:
		return Signed32
	default:
		panic("unsupported type")
	}
}
