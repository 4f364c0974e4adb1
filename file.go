package pngchunk

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ReadFile reads and parses the PNG at path.
func ReadFile(path string) (*PNG, error) {
	b, err := readAll(path)
	if err != nil {
		return nil, err
	}

	return Parse(b)
}

// WriteFile encodes p and writes it to path, replacing any existing file.
func WriteFile(path string, p *PNG) error {
	return writeAll(path, p.Bytes())
}

// ReadBytes returns the raw contents of the file at path.
func ReadBytes(path string) ([]byte, error) {
	return readAll(path)
}

// WriteBytes writes raw PNG bytes to path. The previous file stays intact
// until the new contents are fully written.
func WriteBytes(path string, b []byte) error {
	return writeAll(path, b)
}

func readAll(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrOpenFile, path, err)
	}
	defer func() { _ = f.Close() }()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrReadFile, path, err)
	}

	return b, nil
}

// writeAll writes b to a temp file next to path and renames it over path.
func writeAll(path string, b []byte) error {
	mode := os.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %q: %v", ErrCreateFile, path, err)
	}

	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrCreateFile, path, err)
	}
	tmp := f.Name()

	if err := writeAndClose(f, b, mode); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: %q: %v", ErrWriteFile, path, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: %q: %v", ErrWriteFile, path, err)
	}

	return nil
}

func writeAndClose(f *os.File, b []byte, mode os.FileMode) error {
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
