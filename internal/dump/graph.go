package dump

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unsafe"

	"go.uber.org/zap"

	"github.com/SheriZhang/android-nn-driver/internal/operand"
)

// GraphSerializer renders a network graph as Graphviz DOT text.
type GraphSerializer interface {
	SerializeToDot(w io.Writer) error
}

// GraphFilePath returns the artifact path for a network graph:
// <dir>/networkgraph_<id>.dot.
func (d *Dumper) GraphFilePath(id string) string {
	return filepath.Join(d.dir, fmt.Sprintf("networkgraph_%s.dot", id))
}

// ExportGraph writes the network graph for model to the dump directory,
// truncating any previous content. The artifact is named after the model's
// memory address so repeated exports of the same model overwrite each
// other while distinct models get distinct files. An empty dump directory
// disables the export.
func (d *Dumper) ExportGraph(graph GraphSerializer, model *operand.Model) error {
	if d.dir == "" {
		return nil
	}

	// At least one hex digit even for a nil model.
	id := fmt.Sprintf("%X", modelAddress(model))
	fileName := d.GraphFilePath(id)

	d.log.Debug("exporting the network graph", zap.String("file", fileName))

	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("could not open %s for writing: %w", fileName, err)
	}
	defer file.Close()

	if err := graph.SerializeToDot(file); err != nil {
		return fmt.Errorf("an error occurred when writing to %s: %w", fileName, err)
	}
	return nil
}

// modelAddress derives the graph artifact id from the model's memory
// address, so re-exports of one model overwrite while distinct models do
// not collide.
func modelAddress(model *operand.Model) uintptr {
	return uintptr(unsafe.Pointer(model))
}
