package service

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDocx(t *testing.T, path, documentXML string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	part, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = part.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
}

func TestExtractDocumentTextTxt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "headlines.txt")
	require.NoError(t, os.WriteFile(path, []byte("ಶೀರ್ಷಿಕೆ ಒಂದು\nಶೀರ್ಷಿಕೆ ಎರಡು\n"), 0o644))

	got, err := ExtractDocumentText(path)
	require.NoError(t, err)
	assert.Equal(t, "ಶೀರ್ಷಿಕೆ ಒಂದು\nಶೀರ್ಷಿಕೆ ಎರಡು\n", got)
}

func TestExtractDocumentTextDocx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "headlines.docx")
	writeDocx(t, path, `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>ಮೊದಲ </w:t></w:r><w:r><w:t>ಶೀರ್ಷಿಕೆ</w:t></w:r></w:p>
<w:p></w:p>
<w:p><w:r><w:t>ಎರಡನೇ ಶೀರ್ಷಿಕೆ</w:t></w:r></w:p>
</w:body>
</w:document>`)

	got, err := ExtractDocumentText(path)
	require.NoError(t, err)
	assert.Equal(t, "ಮೊದಲ ಶೀರ್ಷಿಕೆ\nಎರಡನೇ ಶೀರ್ಷಿಕೆ\n", got)
}

func TestExtractDocumentTextUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "headlines.pdf")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := ExtractDocumentText(path)
	assert.Error(t, err)
}

func TestExtractDocumentTextDocxWithoutDocumentPart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	part, err := zw.Create("word/other.xml")
	require.NoError(t, err)
	_, err = part.Write([]byte("<x/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	_, err = ExtractDocumentText(path)
	assert.Error(t, err)
}

func TestExtractDocumentTextNotAZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.docx")
	require.NoError(t, os.WriteFile(path, []byte("this is not a zip archive"), 0o644))

	_, err := ExtractDocumentText(path)
	assert.Error(t, err)
}
