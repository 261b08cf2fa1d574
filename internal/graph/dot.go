// Package graph renders a driver model's operation graph as Graphviz DOT
// text for offline inspection. The compiled network is not needed: the
// graph is derived from the runtime model's operand wiring alone.
package graph

import (
	"fmt"
	"io"
	"strings"

	"github.com/SheriZhang/android-nn-driver/internal/operand"
)

// ModelGraph adapts an operand.Model to the dump package's GraphSerializer.
type ModelGraph struct {
	model *operand.Model
}

// NewModelGraph wraps model for DOT serialization.
func NewModelGraph(model *operand.Model) *ModelGraph {
	return &ModelGraph{model: model}
}

// SerializeToDot writes the operation graph: operations are boxes, operand
// tensors are edges from producer to consumer labeled with the operand
// summary, and model inputs and outputs appear as ellipse nodes.
func (g *ModelGraph) SerializeToDot(w io.Writer) error {
	m := g.model

	consumedBy := make(map[uint32][]int)
	for i, op := range m.Operations {
		for _, idx := range op.Inputs {
			consumedBy[idx] = append(consumedBy[idx], i)
		}
	}
	producedBy := make(map[uint32]int)
	for i, op := range m.Operations {
		for _, idx := range op.Outputs {
			producedBy[idx] = i
		}
	}

	var sb strings.Builder
	sb.WriteString("digraph model {\n")
	sb.WriteString("  rankdir=TB;\n")
	sb.WriteString("  node [shape=box];\n\n")

	for i, op := range m.Operations {
		fmt.Fprintf(&sb, "  op%d [label=\"%s\"];\n", i, op.Type)
	}
	sb.WriteByte('\n')

	for _, idx := range m.InputIndexes {
		fmt.Fprintf(&sb, "  in%d [label=\"%s\", shape=ellipse];\n", idx, operand.Summary(m.Operands[idx]))
		for _, consumer := range consumedBy[idx] {
			fmt.Fprintf(&sb, "  in%d -> op%d;\n", idx, consumer)
		}
	}
	for _, idx := range m.OutputIndexes {
		fmt.Fprintf(&sb, "  out%d [label=\"%s\", shape=ellipse];\n", idx, operand.Summary(m.Operands[idx]))
		if producer, ok := producedBy[idx]; ok {
			fmt.Fprintf(&sb, "  op%d -> out%d;\n", producer, idx)
		}
	}
	sb.WriteByte('\n')

	// Interior tensors, in operation order so the output is deterministic.
	for i, op := range m.Operations {
		for _, idx := range op.Outputs {
			for _, consumer := range consumedBy[idx] {
				fmt.Fprintf(&sb, "  op%d -> op%d [label=\"%s\"];\n",
					i, consumer, operand.Summary(m.Operands[idx]))
			}
		}
	}

	sb.WriteString("}\n")

	_, err := io.WriteString(w, sb.String())
	return err
}
