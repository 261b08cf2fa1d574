// Package dump writes human-inspectable diagnostic artifacts for inference
// requests: tensor contents as text files and network graphs as Graphviz
// DOT. Dumping is best-effort; failures are reported to the caller and
// never abort the operation the dump was attached to.
package dump

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"

	"github.com/SheriZhang/android-nn-driver/internal/tensor"
)

// Dumper writes request artifacts into a fixed directory. The directory
// must exist in advance; the dumper never creates it.
type Dumper struct {
	dir string
	log *zap.Logger
}

// New creates a Dumper writing into dir. A nil logger is replaced with a
// no-op logger.
func New(dir string, log *zap.Logger) *Dumper {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dumper{dir: dir, log: log}
}

// Dir returns the dump directory.
func (d *Dumper) Dir() string {
	return d.dir
}

// TensorFilePath returns the artifact path for a request's tensor:
// <dir>/<request>_<tensor>.dump.
func (d *Dumper) TensorFilePath(requestName, tensorName string) string {
	return filepath.Join(d.dir, fmt.Sprintf("%s_%s.dump", requestName, tensorName))
}

// DumpTensor writes every element of view as text to the request's dump
// file, truncating any previous content.
//
// Elements print grid-by-grid per (batch, channel) pair even though channel
// is the fastest-varying axis in memory: for each batch and channel, a
// height x width grid, one row per line, a comma after every element. An
// element type the dumper cannot render produces a single diagnostic line
// instead of data; that is a soft failure and returns nil.
func (d *Dumper) DumpTensor(requestName, tensorName string, view *tensor.View) error {
	fileName := d.TensorFilePath(requestName, tensorName)

	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("could not open %s for writing: %w", fileName, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)

	format := formatterFor(view)
	if format == nil {
		fmt.Fprintf(w, "Cannot dump tensor elements: Unsupported data type %d\n", int(view.DType()))
		if err := w.Flush(); err != nil {
			return fmt.Errorf("an error occurred when writing to %s: %w", fileName, err)
		}
		return nil
	}

	shape := view.Shape()
	rank := len(shape)
	batch, height, width, channels := dumpAxes(shape)

	fmt.Fprintf(w, "# Number of elements %d\n", view.NumElements())
	fmt.Fprintf(w, "# Dimensions %s%s\n", layoutLabel(rank), shape)

	for b := 0; b < batch; b++ {
		if rank >= 4 {
			fmt.Fprintf(w, "# Batch %d\n", b)
		}
		for c := 0; c < channels; c++ {
			if rank >= 3 {
				fmt.Fprintf(w, "# Channel %d\n", c)
			}
			for h := 0; h < height; h++ {
				for x := 0; x < width; x++ {
					// Elements of one channel are strided by the channel
					// count in the row-major buffer.
					offset := ((b*height+h)*width+x)*channels + c
					w.WriteString(format(offset))
					w.WriteByte(',')
				}
				w.WriteByte('\n')
			}
		}
		w.WriteByte('\n')
	}
	w.WriteByte('\n')

	if err := w.Flush(); err != nil {
		return fmt.Errorf("an error occurred when writing to %s: %w", fileName, err)
	}
	return nil
}

// dumpAxes assigns the (batch, height, width, channel) roles of the dump
// layout to the trailing axes of shape. Height, width, and channel are
// always the last three axes; a single leading axis is the batch.
func dumpAxes(shape tensor.Shape) (batch, height, width, channels int) {
	rank := len(shape)

	batch = 1
	if rank == 4 {
		batch = shape[rank-4]
	}

	height = 1
	switch {
	case rank >= 3:
		height = shape[rank-3]
	case rank == 2:
		height = shape[rank-2]
	}

	width = 0
	switch {
	case rank >= 3:
		width = shape[rank-2]
	case rank >= 1:
		width = shape[rank-1]
	}

	channels = 1
	if rank >= 3 {
		channels = shape[rank-1]
	}

	return batch, height, width, channels
}

// layoutLabel names the memory layout the dump assumes for a tensor of the
// given rank.
func layoutLabel(rank int) string {
	switch rank {
	case 4:
		return "(BHWC) "
	case 3:
		return "(HWC) "
	case 2:
		return "(HW) "
	default:
		return ""
	}
}

// formatterFor returns a closure rendering the element at a flat index into
// its printable numeric form, or nil for an element type the dumper cannot
// render. Quantized 8-bit values are widened to unsigned integers so they
// print as numbers, not raw bytes.
func formatterFor(view *tensor.View) func(index int) string {
	switch view.DType() {
	case tensor.Float32:
		data := view.AsFloat32()
		return func(i int) string {
			return strconv.FormatFloat(float64(data[i]), 'g', -1, 32)
		}
	case tensor.QuantizedAsymm8:
		data := view.AsQuant8()
		return func(i int) string {
			return strconv.FormatUint(uint64(data[i]), 10)
		}
	case tensor.Signed32:
		data := view.AsInt32()
		return func(i int) string {
			return strconv.FormatInt(int64(data[i]), 10)
		}
	default:
		return nil
	}
}
