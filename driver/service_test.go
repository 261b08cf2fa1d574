// Copyright 2025 Android NN Driver Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package driver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestView(t *testing.T) *View {
	t.Helper()
	data := make([]byte, 48)
	v, err := NewView(NewInfo(Shape{1, 2, 2, 3}, Float32), data)
	require.NoError(t, err)
	return v
}

func TestServiceDumpDisabledByDefault(t *testing.T) {
	dir := t.TempDir()
	s := NewService(Options{DumpDir: dir}, nil)

	s.DumpRequestTensor("req", "input0", requestView(t))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "no dump should be written when tensor dumping is off")
}

func TestServiceDumpRequestTensor(t *testing.T) {
	dir := t.TempDir()
	s := NewService(Options{DumpDir: dir, DumpTensors: true}, nil)

	s.DumpRequestTensor("req", "input0", requestView(t))

	content, err := os.ReadFile(filepath.Join(dir, "req_input0.dump"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "# Number of elements 12\n")
}

func TestServiceDumpFailureIsSwallowed(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	s := NewService(Options{DumpDir: missing, DumpTensors: true}, nil)

	// The dump directory does not exist: the failure is logged and the
	// caller's path continues undisturbed.
	assert.NotPanics(t, func() {
		s.DumpRequestTensor("req", "input0", requestView(t))
	})
}

func TestServiceExportNetworkGraph(t *testing.T) {
	dir := t.TempDir()
	s := NewService(Options{DumpDir: dir, DumpGraph: true}, nil)

	model := &Model{
		Operands: []Operand{
			{Type: OperandTensorFloat32, Dimensions: []uint32{1, 4, 4, 2}},
			{Type: OperandTensorFloat32, Dimensions: []uint32{1, 4, 4, 2}},
		},
		Operations:    []Operation{{Inputs: []uint32{0}, Outputs: []uint32{1}}},
		InputIndexes:  []uint32{0},
		OutputIndexes: []uint32{1},
	}
	s.ExportNetworkGraph(model)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Name(), "networkgraph_")

	content, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(content), "digraph model {")
}

func TestSwizzleRoundTripThroughFacade(t *testing.T) {
	data := make([]byte, 48)
	src, err := NewView(NewInfo(Shape{1, 2, 2, 3}, Float32), data)
	require.NoError(t, err)
	for i := range src.AsFloat32() {
		src.AsFloat32()[i] = float32(i)
	}

	nchw, err := SwizzleTensor4d(src, PermutationVector{0, 3, 1, 2}, make([]byte, 48))
	require.NoError(t, err)
	assert.Equal(t, Shape{1, 3, 2, 2}, nchw.Shape())

	back, err := SwizzleTensor4d(nchw, PermutationVector{0, 3, 1, 2}.Inverse(), make([]byte, 48))
	require.NoError(t, err)
	assert.Equal(t, src.AsFloat32(), back.AsFloat32())
}
