package docgen

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTemplate(t *testing.T, parts map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range parts {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func readParts(t *testing.T, data []byte) map[string]string {
	t.Helper()
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	out := make(map[string]string, len(r.File))
	for _, f := range r.File {
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		out[f.Name] = string(content)
	}
	return out
}

func TestRewritablePart(t *testing.T) {
	matching := []string{
		"word/document.xml",
		"word/header.xml",
		"word/header1.xml",
		"word/header12.xml",
		"word/footer.xml",
		"word/footer3.xml",
	}
	for _, name := range matching {
		assert.True(t, rewritablePart.MatchString(name), name)
	}

	passthrough := []string{
		"word/styles.xml",
		"word/settings.xml",
		"word/_rels/document.xml.rels",
		"word/media/image1.png",
		"[Content_Types].xml",
		"docProps/core.xml",
		"word/headerless.xml",
		"word/document.xml.bak",
	}
	for _, name := range passthrough {
		assert.False(t, rewritablePart.MatchString(name), name)
	}
}

func TestPackageRoundTrip(t *testing.T) {
	original := buildTemplate(t, map[string]string{
		"word/document.xml": "body",
		"word/media/img.bin": string([]byte{0x00, 0x01, 0xFF}),
	})

	pkg, err := OpenPackage(original)
	require.NoError(t, err)

	pkg.RewriteParts(func(name, xml string) string {
		assert.Equal(t, "word/document.xml", name)
		return "rewritten"
	})

	data, err := pkg.Bytes()
	require.NoError(t, err)

	parts := readParts(t, data)
	assert.Equal(t, "rewritten", parts["word/document.xml"])
	assert.Equal(t, string([]byte{0x00, 0x01, 0xFF}), parts["word/media/img.bin"])
}

func TestOpenPackage_NotAZip(t *testing.T) {
	_, err := OpenPackage([]byte("plain text"))
	assert.Error(t, err)
}
