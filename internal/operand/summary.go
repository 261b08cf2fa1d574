package operand

import (
	"fmt"
	"strings"
)

// Summary renders an operand as "[d0, d1, ...] TYPE" for request logs.
func Summary(op Operand) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, d := range op.Dimensions {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d", d)
	}
	sb.WriteString("] ")
	sb.WriteString(op.Type.String())
	return sb.String()
}

// ModelSummary renders a one-look description of a model: a counts line
// followed by the summaries of its inputs, operations, and outputs.
func ModelSummary(m *Model) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%d input(s), %d operation(s), %d output(s), %d operand(s)\n",
		len(m.InputIndexes), len(m.Operations), len(m.OutputIndexes), len(m.Operands))

	sb.WriteString("Inputs: ")
	for _, idx := range m.InputIndexes {
		sb.WriteString(Summary(m.Operands[idx]))
		sb.WriteString(", ")
	}
	sb.WriteByte('\n')

	sb.WriteString("Operations: ")
	for _, op := range m.Operations {
		sb.WriteString(op.Type.String())
		sb.WriteString(", ")
	}
	sb.WriteByte('\n')

	sb.WriteString("Outputs: ")
	for _, idx := range m.OutputIndexes {
		sb.WriteString(Summary(m.Operands[idx]))
		sb.WriteString(", ")
	}
	sb.WriteByte('\n')

	return sb.String()
}
