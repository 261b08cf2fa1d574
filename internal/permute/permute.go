// Package permute implements the axis-permutation (swizzle) engine used to
// convert tensors between the NN runtime's memory layout and the compute
// library's.
package permute

import (
	"fmt"

	"github.com/SheriZhang/android-nn-driver/internal/tensor"
)

// Vector maps destination axes to source axes: entry i names the source
// axis that supplies destination axis i. The empty vector is the identity,
// the driver-wide "don't permute" sentinel.
type Vector []int

// DontPermute is the canonical identity vector.
var DontPermute = Vector{}

// IsIdentity reports whether v is the don't-permute sentinel.
func (v Vector) IsIdentity() bool {
	return len(v) == 0
}

// Validate checks that v is a bijection over {0, ..., rank-1}. The identity
// vector is valid for any rank.
func (v Vector) Validate(rank int) error {
	if v.IsIdentity() {
		return nil
	}
	if len(v) != rank {
		return fmt.Errorf("permutation length %d must match tensor rank %d", len(v), rank)
	}
	seen := make([]bool, rank)
	for i, ax := range v {
		if ax < 0 || ax >= rank {
			return fmt.Errorf("permutation entry %d: axis %d out of range [0, %d)", i, ax, rank)
		}
		if seen[ax] {
			return fmt.Errorf("permutation entry %d: axis %d appears more than once", i, ax)
		}
		seen[ax] = true
	}
	return nil
}

// Inverse returns the vector that undoes v: applying v then v.Inverse()
// restores the original layout.
func (v Vector) Inverse() Vector {
	if v.IsIdentity() {
		return DontPermute
	}
	inv := make(Vector, len(v))
	for i, ax := range v {
		inv[ax] = i
	}
	return inv
}

// Permuted returns the shape produced by applying v to shape:
// out[i] = shape[v[i]].
func Permuted(shape tensor.Shape, v Vector) tensor.Shape {
	if v.IsIdentity() {
		return shape.Clone()
	}
	out := make(tensor.Shape, len(shape))
	for i, ax := range v {
		out[i] = shape[ax]
	}
	return out
}

// Permute copies every element of src into dst at its permuted index and
// returns a view of dst with the permuted shape. dst is caller-supplied and
// must hold src.ByteSize() bytes; it must not alias the source buffer.
//
// An element type outside the supported set is a hard error: no bytes are
// written and no default element width is assumed.
func Permute(src *tensor.View, v Vector, dst []byte) (*tensor.View, error) {
	srcShape := src.Shape()
	if err := v.Validate(len(srcShape)); err != nil {
		return nil, err
	}
	if !src.DType().Valid() {
		return nil, fmt.Errorf("cannot permute tensor: unsupported data type %d", int(src.DType()))
	}

	info := src.Info()
	outShape := Permuted(srcShape, v)
	outInfo := tensor.NewQuantizedInfo(outShape, info.DType(),
		info.QuantizationScale(), info.QuantizationZeroPoint())

	out, err := tensor.NewView(outInfo, dst)
	if err != nil {
		return nil, fmt.Errorf("destination buffer: %w", err)
	}

	if v.IsIdentity() {
		copy(out.Data(), src.Data())
		return out, nil
	}

	switch src.DType() {
	case tensor.Float32:
		permuteData(src.AsFloat32(), out.AsFloat32(), srcShape, outShape, v)
	case tensor.QuantizedAsymm8:
		permuteData(src.AsQuant8(), out.AsQuant8(), srcShape, outShape, v)
	case tensor.Signed32:
		permuteData(src.AsInt32(), out.AsInt32(), srcShape, outShape, v)
	}
	return out, nil
}

// SwizzleTensor4d converts a 4-dimensional tensor between the runtime's and
// the compute library's memory layouts. The rank restriction is driver
// policy; the underlying permutation is rank-generic.
func SwizzleTensor4d(src *tensor.View, v Vector, dst []byte) (*tensor.View, error) {
	if rank := len(src.Shape()); rank != 4 {
		return nil, fmt.Errorf("swizzle expects a 4-dimensional tensor, got rank %d", rank)
	}
	return Permute(src, v, dst)
}

// permuteData walks every destination multi-index in row-major order and
// pulls the matching source element. The destination flat offset of
// iteration i is i itself; the source offset maps each destination
// coordinate through the source stride of the axis it came from.
func permuteData[T tensor.DType](in, out []T, srcShape, dstShape tensor.Shape, v Vector) {
	rank := len(srcShape)
	srcStrides := srcShape.ComputeStrides()

	idx := make([]int, rank)
	for i := range out {
		tmp := i
		for j := rank - 1; j >= 0; j-- {
			idx[j] = tmp % dstShape[j]
			tmp /= dstShape[j]
		}

		srcFlat := 0
		for j := 0; j < rank; j++ {
			srcFlat += idx[j] * srcStrides[v[j]]
		}

		out[i] = in[srcFlat]
	}
}
