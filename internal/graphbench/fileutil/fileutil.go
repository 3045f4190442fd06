package fileutil

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/armadaproject/graphbench/internal/common/benchmarkerrors"
)

const writeProbePattern = ".graphbench-write-check-*"

// ValidateReadableFile checks that path names an existing regular file that the current user can open for reading.
// role describes what the file is used for (e.g. "dataset") and only appears in error messages.
// Returns the cleaned path.
func ValidateReadableFile(path string, role string) (string, error) {
	if path == "" {
		return "", errors.WithStack(&benchmarkerrors.ErrNotFound{Role: role, Path: path})
	}
	path = filepath.Clean(path)

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", errors.WithStack(&benchmarkerrors.ErrNotFound{Role: role, Path: path})
	} else if err != nil {
		return "", errors.WithStack(&benchmarkerrors.ErrNotReadable{Role: role, Path: path, Reason: err.Error()})
	}

	if info.IsDir() {
		return "", errors.WithStack(&benchmarkerrors.ErrNotReadable{Role: role, Path: path, Reason: "is a directory"})
	}
	if !info.Mode().IsRegular() {
		return "", errors.WithStack(&benchmarkerrors.ErrNotReadable{Role: role, Path: path, Reason: "is not a regular file"})
	}

	f, err := os.Open(path)
	if err != nil {
		return "", errors.WithStack(&benchmarkerrors.ErrNotReadable{Role: role, Path: path, Reason: err.Error()})
	}
	_ = f.Close()
	return path, nil
}

// EnsureWritableDirectory creates path (and any parents) if needed and checks that files can be created in it.
//
// Creation failures are tolerated as long as the directory exists afterwards,
// so two processes racing to create the same directory both succeed.
func EnsureWritableDirectory(path string) error {
	if path == "" {
		return errors.WithStack(&benchmarkerrors.ErrResultsDirectoryUnwritable{Path: path, Cause: errors.New("empty path")})
	}

	if mkdirErr := os.MkdirAll(path, 0o755); mkdirErr != nil {
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			return errors.WithStack(&benchmarkerrors.ErrResultsDirectoryUnwritable{Path: path, Cause: mkdirErr})
		}
	}

	probe, err := os.CreateTemp(path, writeProbePattern)
	if err != nil {
		return errors.WithStack(&benchmarkerrors.ErrResultsDirectoryUnwritable{Path: path, Cause: err})
	}
	name := probe.Name()
	_ = probe.Close()
	if err := os.Remove(name); err != nil {
		return errors.WithStack(&benchmarkerrors.ErrResultsDirectoryUnwritable{Path: path, Cause: err})
	}
	return nil
}

// ResolvePath returns path unchanged if it is absolute, otherwise joined onto base.
func ResolvePath(base string, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}
