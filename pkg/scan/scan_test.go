package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yurykabanov/rotator/pkg/domain"
)

func populate(t *testing.T, dir string) {
	t.Helper()

	for _, name := range []string{"a.tar", "b.tar"} {
		err := os.WriteFile(filepath.Join(dir, name), []byte("backup"), 0o644)
		assert.Nil(t, err)
	}

	for _, name := range []string{"snap-1", "snap-2"} {
		err := os.Mkdir(filepath.Join(dir, name), 0o755)
		assert.Nil(t, err)
	}
}

func names(entries []domain.Entry) []string {
	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		result = append(result, filepath.Base(entry.Path))
	}
	return result
}

func TestScanner_Scan_FilesOnly(t *testing.T) {
	dir := t.TempDir()
	populate(t, dir)

	entries, err := New().Scan(dir, domain.TargetFile)

	assert.Nil(t, err)
	assert.Equal(t, []string{"a.tar", "b.tar"}, names(entries))

	for _, entry := range entries {
		assert.Equal(t, domain.TargetFile, entry.Kind)
		assert.NotNil(t, entry.Info)
	}
}

func TestScanner_Scan_DirectoriesOnly(t *testing.T) {
	dir := t.TempDir()
	populate(t, dir)

	entries, err := New().Scan(dir, domain.TargetDirectory)

	assert.Nil(t, err)
	assert.Equal(t, []string{"snap-1", "snap-2"}, names(entries))
}

func TestScanner_Scan_IsNotRecursive(t *testing.T) {
	dir := t.TempDir()

	err := os.Mkdir(filepath.Join(dir, "snap-1"), 0o755)
	assert.Nil(t, err)
	err = os.WriteFile(filepath.Join(dir, "snap-1", "nested.tar"), []byte("backup"), 0o644)
	assert.Nil(t, err)

	entries, err := New().Scan(dir, domain.TargetFile)

	assert.Nil(t, err)
	assert.Empty(t, entries)
}

func TestScanner_Scan_SymlinkResolvesToTargetKind(t *testing.T) {
	dir := t.TempDir()

	err := os.Mkdir(filepath.Join(dir, "real"), 0o755)
	assert.Nil(t, err)

	err = os.Symlink(filepath.Join(dir, "real"), filepath.Join(dir, "link"))
	assert.Nil(t, err)

	entries, err := New().Scan(dir, domain.TargetDirectory)

	assert.Nil(t, err)
	assert.Equal(t, []string{"link", "real"}, names(entries))

	entries, err = New().Scan(dir, domain.TargetFile)

	assert.Nil(t, err)
	assert.Empty(t, entries)
}

func TestScanner_Scan_MissingPath(t *testing.T) {
	entries, err := New().Scan(filepath.Join(t.TempDir(), "nope"), domain.TargetFile)

	assert.True(t, domain.IsPathUnavailable(err))
	assert.Nil(t, entries)
}

func TestScanner_Scan_PathIsNotADirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.tar")

	err := os.WriteFile(file, []byte("backup"), 0o644)
	assert.Nil(t, err)

	entries, scanErr := New().Scan(file, domain.TargetFile)

	assert.True(t, domain.IsPathUnavailable(scanErr))
	assert.Nil(t, entries)
}
