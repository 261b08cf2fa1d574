// Package operand mirrors the NN runtime's model vocabulary (operands,
// operations, models) and translates operand descriptors into the tensor
// metadata the driver's compute layers consume.
package operand

import (
	"fmt"

	"github.com/SheriZhang/android-nn-driver/internal/pool"
)

// Type is the runtime-side descriptor type of an operand. The numeric
// values match the NN API.
type Type int32

// Operand types the driver encounters.
const (
	Float32           Type = 0
	Int32             Type = 1
	UInt32            Type = 2
	TensorFloat32     Type = 3
	TensorInt32       Type = 4
	TensorQuant8Asymm Type = 5
)

// String returns the NN API name of the operand type.
func (t Type) String() string {
	switch t {
	case Float32:
		return "FLOAT32"
	case Int32:
		return "INT32"
	case UInt32:
		return "UINT32"
	case TensorFloat32:
		return "TENSOR_FLOAT32"
	case TensorInt32:
		return "TENSOR_INT32"
	case TensorQuant8Asymm:
		return "TENSOR_QUANT8_ASYMM"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int32(t))
	}
}

// OperationType identifies an operation in the runtime's model. The numeric
// values match the NN API.
type OperationType int32

// Operation types named in summaries. The list is not exhaustive; unknown
// values render by number.
const (
	Add            OperationType = 0
	AveragePool2d  OperationType = 1
	Concatenation  OperationType = 2
	Conv2d         OperationType = 3
	DepthwiseConv  OperationType = 4
	FullyConnected OperationType = 9
	Logistic       OperationType = 14
	MaxPool2d      OperationType = 17
	Mul            OperationType = 18
	Relu           OperationType = 19
	Reshape        OperationType = 22
	Softmax        OperationType = 25
)

// String returns the NN API name of the operation type.
func (t OperationType) String() string {
	switch t {
	case Add:
		return "ADD"
	case AveragePool2d:
		return "AVERAGE_POOL_2D"
	case Concatenation:
		return "CONCATENATION"
	case Conv2d:
		return "CONV_2D"
	case DepthwiseConv:
		return "DEPTHWISE_CONV_2D"
	case FullyConnected:
		return "FULLY_CONNECTED"
	case Logistic:
		return "LOGISTIC"
	case MaxPool2d:
		return "MAX_POOL_2D"
	case Mul:
		return "MUL"
	case Relu:
		return "RELU"
	case Reshape:
		return "RESHAPE"
	case Softmax:
		return "SOFTMAX"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int32(t))
	}
}

// Operand is one tensor or scalar slot of a runtime model.
type Operand struct {
	Type       Type
	Dimensions []uint32
	Scale      float32
	ZeroPoint  int32
	Location   pool.DataLocation
}

// Operation is one node of a runtime model, wired to operands by index.
type Operation struct {
	Type    OperationType
	Inputs  []uint32
	Outputs []uint32
}

// Model is the runtime's network description handed to the driver.
type Model struct {
	Operands      []Operand
	Operations    []Operation
	InputIndexes  []uint32
	OutputIndexes []uint32
}
