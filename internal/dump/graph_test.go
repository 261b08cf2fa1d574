package dump

import (
	"errors"
	"fmt"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SheriZhang/android-nn-driver/internal/operand"
)

// mockGraph stands in for a compiled network; only its serialized content
// matters here.
type mockGraph struct {
	content string
	fail    bool
}

func (g *mockGraph) SerializeToDot(w io.Writer) error {
	if g.fail {
		return errors.New("serialization failed")
	}
	_, err := io.WriteString(w, g.content)
	return err
}

func graphFileFor(d *Dumper, model *operand.Model) string {
	return d.GraphFilePath(fmt.Sprintf("%X", modelAddress(model)))
}

func TestExportGraphToEmptyDirectory(t *testing.T) {
	d := New("", nil)
	model := &operand.Model{}

	// An empty dump directory disables the export entirely.
	require.NoError(t, d.ExportGraph(&mockGraph{content: "unused"}, model))
}

func TestExportGraphWritesContent(t *testing.T) {
	d := New(t.TempDir(), nil)
	model := &operand.Model{}

	mock := &mockGraph{content: "This is a mock serialized content."}
	require.NoError(t, d.ExportGraph(mock, model))

	content, err := os.ReadFile(graphFileFor(d, model))
	require.NoError(t, err)
	assert.Equal(t, mock.content, string(content))
}

func TestExportGraphOverwritesFile(t *testing.T) {
	d := New(t.TempDir(), nil)
	model := &operand.Model{}

	mock := &mockGraph{content: "This is a mock serialized content."}
	require.NoError(t, d.ExportGraph(mock, model))

	// Re-exporting the same model replaces the artifact.
	mock.content = "This is ANOTHER mock serialized content!"
	require.NoError(t, d.ExportGraph(mock, model))

	content, err := os.ReadFile(graphFileFor(d, model))
	require.NoError(t, err)
	assert.Equal(t, mock.content, string(content))
}

func TestExportGraphMultipleModels(t *testing.T) {
	d := New(t.TempDir(), nil)

	model1 := &operand.Model{}
	model2 := &operand.Model{}
	mock := &mockGraph{content: "This is a mock serialized content."}

	require.NoError(t, d.ExportGraph(mock, model1))
	require.NoError(t, d.ExportGraph(mock, model2))

	// Distinct models produce distinct artifacts.
	file1 := graphFileFor(d, model1)
	file2 := graphFileFor(d, model2)
	assert.NotEqual(t, file1, file2)

	for _, fileName := range []string{file1, file2} {
		content, err := os.ReadFile(fileName)
		require.NoError(t, err)
		assert.Equal(t, mock.content, string(content))
	}
}

func TestExportGraphSerializationFailure(t *testing.T) {
	d := New(t.TempDir(), nil)

	err := d.ExportGraph(&mockGraph{fail: true}, &operand.Model{})
	assert.Error(t, err)
}
