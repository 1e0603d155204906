package pdfext

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stub.txt")
	require.NoError(t, os.WriteFile(path, []byte("Pay Date: 08/29/2025\n\nRegular 3000.00\n"), 0o644))

	doc, err := Extract(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Pay Date: 08/29/2025", "Regular 3000.00"}, doc.Lines())
	assert.Equal(t, 1, doc.Pages())
}

func TestExtractUnsupportedExtension(t *testing.T) {
	_, err := Extract("statement.xlsx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestExtractMissingFile(t *testing.T) {
	_, err := Extract(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
