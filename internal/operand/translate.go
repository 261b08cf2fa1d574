package operand

import (
	"fmt"

	"github.com/SheriZhang/android-nn-driver/internal/tensor"
)

// UnsupportedTypeError reports an operand whose type has no counterpart in
// the compute library. It is surfaced to the caller unchanged; the driver
// never substitutes a default type.
type UnsupportedTypeError struct {
	Type Type
}

// Error implements the error interface.
func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported operand type %s", e.Type)
}

// TensorInfoFor translates an operand descriptor into the tensor metadata
// consumed by the permutation and dump layers. Quantization parameters are
// carried through for every tensor type; they only matter for
// TENSOR_QUANT8_ASYMM.
func TensorInfoFor(op Operand) (tensor.Info, error) {
	var dtype tensor.DataType

	switch op.Type {
	case TensorFloat32:
		dtype = tensor.Float32
	case TensorQuant8Asymm:
		dtype = tensor.QuantizedAsymm8
	case TensorInt32:
		dtype = tensor.Signed32
	default:
		return tensor.Info{}, &UnsupportedTypeError{Type: op.Type}
	}

	shape := make(tensor.Shape, len(op.Dimensions))
	for i, d := range op.Dimensions {
		shape[i] = int(d)
	}

	return tensor.NewQuantizedInfo(shape, dtype, op.Scale, op.ZeroPoint), nil
}
