package fileutil

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armadaproject/graphbench/internal/common/benchmarkerrors"
)

func TestValidateReadableFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "email-Enron.txt")
	require.NoError(t, os.WriteFile(file, []byte("1 2\n"), 0o644))

	tests := map[string]struct {
		path     string
		wantKind benchmarkerrors.Kind
	}{
		"readable file":  {path: file},
		"unclean path":   {path: dir + "/./email-Enron.txt"},
		"missing file":   {path: filepath.Join(dir, "missing.txt"), wantKind: benchmarkerrors.NotFound},
		"empty path":     {path: "", wantKind: benchmarkerrors.NotFound},
		"directory":      {path: dir, wantKind: benchmarkerrors.NotReadable},
		"missing parent": {path: filepath.Join(dir, "nope", "x.txt"), wantKind: benchmarkerrors.NotFound},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ValidateReadableFile(tc.path, "dataset")
			if tc.wantKind != benchmarkerrors.Unknown {
				require.Error(t, err)
				assert.Equal(t, tc.wantKind, benchmarkerrors.KindFromError(err))
				assert.Contains(t, err.Error(), "dataset")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, file, got)
		})
	}
}

func TestValidateReadableFile_RoleOnlyAffectsMessage(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "communities.txt")

	_, err := ValidateReadableFile(missing, "actual-communities")
	var notFound *benchmarkerrors.ErrNotFound
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "actual-communities", notFound.Role)
	assert.Equal(t, missing, notFound.Path)
}

func TestValidateReadableFile_Unreadable(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can read files regardless of permissions")
	}
	file := filepath.Join(t.TempDir(), "secret.txt")
	require.NoError(t, os.WriteFile(file, []byte("1 2\n"), 0o000))

	_, err := ValidateReadableFile(file, "dataset")
	assert.Equal(t, benchmarkerrors.NotReadable, benchmarkerrors.KindFromError(err))
}

func TestEnsureWritableDirectory_CreatesMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results", "nested")

	require.NoError(t, EnsureWritableDirectory(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	entries, err := os.ReadDir(path)
	require.NoError(t, err)
	assert.Empty(t, entries, "write probe must be cleaned up")
}

func TestEnsureWritableDirectory_Existing(t *testing.T) {
	path := t.TempDir()
	require.NoError(t, EnsureWritableDirectory(path))
	require.NoError(t, EnsureWritableDirectory(path))
}

func TestEnsureWritableDirectory_PathIsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	err := EnsureWritableDirectory(path)
	assert.Equal(t, benchmarkerrors.ResultsDirectoryUnwritable, benchmarkerrors.KindFromError(err))
}

func TestEnsureWritableDirectory_ReadOnly(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can write to read-only directories")
	}
	path := filepath.Join(t.TempDir(), "results")
	require.NoError(t, os.Mkdir(path, 0o555))

	err := EnsureWritableDirectory(path)
	assert.Equal(t, benchmarkerrors.ResultsDirectoryUnwritable, benchmarkerrors.KindFromError(err))
}

func TestEnsureWritableDirectory_ConcurrentCreators(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results")

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = EnsureWritableDirectory(path)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
}

func TestResolvePath(t *testing.T) {
	assert.Equal(t, "/work/results", ResolvePath("/work", "results"))
	assert.Equal(t, "/abs/results", ResolvePath("/work", "/abs/results/"))
}
