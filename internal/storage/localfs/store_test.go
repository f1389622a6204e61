package localfs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docugen/internal/domain"
)

func TestStore_SaveAndLoad(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	err = store.Save(context.Background(), "GST2.docx", []byte("template-bytes"))
	require.NoError(t, err)

	data, err := store.Load(context.Background(), "GST2.docx")
	require.NoError(t, err)
	assert.Equal(t, []byte("template-bytes"), data)
}

func TestStore_Load_Missing(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load(context.Background(), "absent.docx")
	assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
}

func TestStore_Load_RejectsPathTraversal(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load(context.Background(), "../outside.docx")
	assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
}

func TestStore_List(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Save(context.Background(), "GST2.docx", []byte("a")))
	require.NoError(t, store.Save(context.Background(), "deed3.docx", []byte("b")))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), []byte("x"), 0o644))

	names, err := store.List(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"GST2.docx", "deed3.docx"}, names)
}

func TestNewStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "templates")
	_, err := NewStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
