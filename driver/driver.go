// Copyright 2025 Android NN Driver Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package driver

import (
	"go.uber.org/zap"

	"github.com/SheriZhang/android-nn-driver/internal/dump"
	"github.com/SheriZhang/android-nn-driver/internal/operand"
	"github.com/SheriZhang/android-nn-driver/internal/permute"
	"github.com/SheriZhang/android-nn-driver/internal/pool"
	"github.com/SheriZhang/android-nn-driver/internal/tensor"
)

// Tensor metadata and views.

// Shape represents the dimensions of a tensor.
type Shape = tensor.Shape

// DataType represents runtime element type information for tensors.
type DataType = tensor.DataType

// Element types the driver understands.
const (
	Float32         DataType = tensor.Float32
	QuantizedAsymm8 DataType = tensor.QuantizedAsymm8
	Signed32        DataType = tensor.Signed32
)

// Info describes a tensor: shape, element type, and quantization parameters.
type Info = tensor.Info

// View is a borrowed, typed window over caller-owned memory.
type View = tensor.View

// NewInfo creates metadata for a non-quantized tensor.
func NewInfo(shape Shape, dtype DataType) Info {
	return tensor.NewInfo(shape, dtype)
}

// NewQuantizedInfo creates metadata carrying quantization parameters.
func NewQuantizedInfo(shape Shape, dtype DataType, scale float32, zeroPoint int32) Info {
	return tensor.NewQuantizedInfo(shape, dtype, scale, zeroPoint)
}

// NewView wraps caller-owned memory with tensor metadata.
func NewView(info Info, data []byte) (*View, error) {
	return tensor.NewView(info, data)
}

// Permutation.

// PermutationVector maps destination axes to source axes; the empty vector
// is the identity.
type PermutationVector = permute.Vector

// DontPermute is the canonical identity vector.
var DontPermute = permute.DontPermute

// Permuted returns the shape produced by applying v to shape.
func Permuted(shape Shape, v PermutationVector) Shape {
	return permute.Permuted(shape, v)
}

// Permute copies every element of src into dst at its permuted index and
// returns a view of dst with the permuted shape.
func Permute(src *View, v PermutationVector, dst []byte) (*View, error) {
	return permute.Permute(src, v, dst)
}

// SwizzleTensor4d converts a 4-dimensional tensor between the runtime's and
// the compute library's memory layouts.
func SwizzleTensor4d(src *View, v PermutationVector, dst []byte) (*View, error) {
	return permute.SwizzleTensor4d(src, v, dst)
}

// Memory pools.

// RunTimePool is one shared-memory block of an inference request.
type RunTimePool = pool.RunTimePool

// DataLocation addresses a byte range inside one pool of a request.
type DataLocation = pool.DataLocation

// NewPool wraps an already-mapped memory block as a pool.
func NewPool(buffer []byte) RunTimePool {
	return pool.New(buffer)
}

// MemoryFromPool resolves location into the raw bytes it addresses.
func MemoryFromPool(location DataLocation, pools []RunTimePool) ([]byte, error) {
	return pool.MemoryFromPool(location, pools)
}

// ViewFromPool resolves location and wraps the memory as a typed view.
func ViewFromPool(info Info, location DataLocation, pools []RunTimePool) (*View, error) {
	return pool.ViewFromPool(info, location, pools)
}

// Operands and models.

// OperandType is the runtime-side descriptor type of an operand.
type OperandType = operand.Type

// Operand types the driver encounters.
const (
	OperandFloat32           OperandType = operand.Float32
	OperandInt32             OperandType = operand.Int32
	OperandUInt32            OperandType = operand.UInt32
	OperandTensorFloat32     OperandType = operand.TensorFloat32
	OperandTensorInt32       OperandType = operand.TensorInt32
	OperandTensorQuant8Asymm OperandType = operand.TensorQuant8Asymm
)

// Operand is one tensor or scalar slot of a runtime model.
type Operand = operand.Operand

// Operation is one node of a runtime model.
type Operation = operand.Operation

// Model is the runtime's network description handed to the driver.
type Model = operand.Model

// UnsupportedOperandTypeError reports an operand type the driver cannot
// translate.
type UnsupportedOperandTypeError = operand.UnsupportedTypeError

// TensorInfoForOperand translates an operand descriptor into tensor
// metadata, or returns an *UnsupportedOperandTypeError.
func TensorInfoForOperand(op Operand) (Info, error) {
	return operand.TensorInfoFor(op)
}

// OperandSummary renders an operand as "[d0, d1, ...] TYPE".
func OperandSummary(op Operand) string {
	return operand.Summary(op)
}

// ModelSummary renders a one-look description of a model.
func ModelSummary(m *Model) string {
	return operand.ModelSummary(m)
}

// Diagnostics.

// Dumper writes request artifacts into a fixed directory.
type Dumper = dump.Dumper

// GraphSerializer renders a network graph as Graphviz DOT text.
type GraphSerializer = dump.GraphSerializer

// NewDumper creates a Dumper writing into dir. The directory must exist in
// advance.
func NewDumper(dir string, log *zap.Logger) *Dumper {
	return dump.New(dir, log)
}
