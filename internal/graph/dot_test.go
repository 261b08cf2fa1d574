package graph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SheriZhang/android-nn-driver/internal/operand"
)

func testModel() *operand.Model {
	// input(0) -> CONV_2D -> hidden(2) -> RELU -> output(3); operand 1 is
	// the convolution weight.
	return &operand.Model{
		Operands: []operand.Operand{
			{Type: operand.TensorFloat32, Dimensions: []uint32{1, 8, 8, 3}},
			{Type: operand.TensorFloat32, Dimensions: []uint32{4, 3, 3, 3}},
			{Type: operand.TensorFloat32, Dimensions: []uint32{1, 8, 8, 4}},
			{Type: operand.TensorFloat32, Dimensions: []uint32{1, 8, 8, 4}},
		},
		Operations: []operand.Operation{
			{Type: operand.Conv2d, Inputs: []uint32{0, 1}, Outputs: []uint32{2}},
			{Type: operand.Relu, Inputs: []uint32{2}, Outputs: []uint32{3}},
		},
		InputIndexes:  []uint32{0},
		OutputIndexes: []uint32{3},
	}
}

func TestSerializeToDot(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, NewModelGraph(testModel()).SerializeToDot(&sb))
	dot := sb.String()

	assert.True(t, strings.HasPrefix(dot, "digraph model {\n"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))

	assert.Contains(t, dot, `op0 [label="CONV_2D"];`)
	assert.Contains(t, dot, `op1 [label="RELU"];`)

	assert.Contains(t, dot, `in0 [label="[1, 8, 8, 3] TENSOR_FLOAT32", shape=ellipse];`)
	assert.Contains(t, dot, "in0 -> op0;")

	assert.Contains(t, dot, `out3 [label="[1, 8, 8, 4] TENSOR_FLOAT32", shape=ellipse];`)
	assert.Contains(t, dot, "op1 -> out3;")

	assert.Contains(t, dot, `op0 -> op1 [label="[1, 8, 8, 4] TENSOR_FLOAT32"];`)
}

func TestSerializeToDotDeterministic(t *testing.T) {
	model := testModel()

	var first, second strings.Builder
	require.NoError(t, NewModelGraph(model).SerializeToDot(&first))
	require.NoError(t, NewModelGraph(model).SerializeToDot(&second))

	assert.Equal(t, first.String(), second.String())
}

func TestSerializeToDotEmptyModel(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, NewModelGraph(&operand.Model{}).SerializeToDot(&sb))

	assert.Contains(t, sb.String(), "digraph model {")
}
