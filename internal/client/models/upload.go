package models

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// UploadFile is a file chosen for an upload slot. Content is opened lazily
// at submit time so large files are streamed rather than held in memory.
type UploadFile struct {
	Name string
	Path string
	Size int64

	open func() (io.ReadCloser, error)
}

// FileFromPath references a file on disk.
func FileFromPath(path string) (UploadFile, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return UploadFile{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if fi.IsDir() {
		return UploadFile{}, fmt.Errorf("%s is a directory", path)
	}
	return UploadFile{
		Name: filepath.Base(path),
		Path: path,
		Size: fi.Size(),
		open: func() (io.ReadCloser, error) { return os.Open(path) },
	}, nil
}

// FileFromBytes wraps in-memory content.
func FileFromBytes(name string, data []byte) UploadFile {
	return UploadFile{
		Name: name,
		Size: int64(len(data)),
		open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

// Open returns the file content.
func (f UploadFile) Open() (io.ReadCloser, error) {
	if f.open == nil {
		return nil, fmt.Errorf("file %q has no content", f.Name)
	}
	return f.open()
}
