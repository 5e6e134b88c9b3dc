package pajek_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/commeval/pajek"
	"github.com/katalvlaran/commeval/partition"
)

// TestWriteFile_ReadFile round-trips through the file system with CRLF endings.
func TestWriteFile_ReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "algo.clu")
	p := partition.Partition{{0, 1, 2}, {3, 4}}

	require.NoError(t, pajek.WriteFile(path, p))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "*Vertices 5\r\n1\r\n1\r\n1\r\n2\r\n2\r\n", string(raw))

	got, err := pajek.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

// TestWriteFile_UTF16 encodes the text and reads it back with the same encoding.
func TestWriteFile_UTF16(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wide.clu")
	p := partition.Partition{{0}, {1}}

	require.NoError(t, pajek.WriteFile(path, p, pajek.WithEncoding("utf-16le")))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{'*', 0, 'V', 0}, raw[:4])

	got, err := pajek.ReadFile(path, pajek.WithEncoding("utf-16le"))
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

// TestReadFile_Latin1 accepts single-byte encodings.
func TestReadFile_Latin1(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latin.clu")
	require.NoError(t, os.WriteFile(path, []byte("*Vertices 2\r\n3\r\n3\r\n"), 0o644))

	got, err := pajek.ReadFile(path, pajek.WithEncoding("latin1"))
	require.NoError(t, err)
	assert.Equal(t, partition.Partition{{0, 1}}, got)
}

// TestReadFile_Missing reports a *StorageError wrapping fs.ErrNotExist.
func TestReadFile_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.clu")
	_, err := pajek.ReadFile(path)

	var se *pajek.StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, path, se.Path)
	assert.Equal(t, "open", se.Op)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

// TestReadFile_FormatError keeps decode failures typed after the file is closed.
func TestReadFile_FormatError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.clu")
	require.NoError(t, os.WriteFile(path, []byte("*Vertices 3\r\n1\r\n"), 0o644))

	_, err := pajek.ReadFile(path)
	assert.ErrorIs(t, err, pajek.ErrTruncated)
}

// TestWriteFile_Errors covers encoding, validation and storage failures.
func TestWriteFile_Errors(t *testing.T) {
	dir := t.TempDir()

	err := pajek.WriteFile(filepath.Join(dir, "x.clu"), partition.Partition{{0}}, pajek.WithEncoding("klingon"))
	assert.ErrorIs(t, err, pajek.ErrUnknownEncoding)

	invalid := filepath.Join(dir, "invalid.clu")
	err = pajek.WriteFile(invalid, partition.Partition{{0, 0}})
	assert.ErrorIs(t, err, partition.ErrInvalidPartition)
	assert.NoFileExists(t, invalid)

	var se *pajek.StorageError
	err = pajek.WriteFile(filepath.Join(dir, "missing", "x.clu"), partition.Partition{{0}})
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "create", se.Op)
}

// TestWriteFile_Replaces overwrites an existing file and leaves no temporary
// files behind.
func TestWriteFile_Replaces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "algo.clu")
	require.NoError(t, os.WriteFile(path, []byte("*Vertices 9\nstale content that is longer\n"), 0o600))

	require.NoError(t, pajek.WriteFile(path, partition.Partition{{0}, {1}}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "*Vertices 2\r\n1\r\n2\r\n", string(raw))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "algo.clu", entries[0].Name())
}

// TestWriteFile_FailedRenameCleansUp leaves the target alone when the final
// rename fails and removes the temporary file.
func TestWriteFile_FailedRenameCleansUp(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "taken.clu")
	require.NoError(t, os.Mkdir(target, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "keep"), []byte("x"), 0o600))

	err := pajek.WriteFile(target, partition.Partition{{0}})
	var se *pajek.StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "rename", se.Op)
	assert.Equal(t, target, se.Path)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].IsDir())
	assert.FileExists(t, filepath.Join(target, "keep"))
}

// TestReadFile_UnknownEncoding fails before opening the file.
func TestReadFile_UnknownEncoding(t *testing.T) {
	_, err := pajek.ReadFile(filepath.Join(t.TempDir(), "nope.clu"), pajek.WithEncoding("klingon"))
	assert.ErrorIs(t, err, pajek.ErrUnknownEncoding)
}
