package savers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/securedocs/internal/filex"
)

// maxNameAttempts bounds the "name (n).ext" search for a free file name.
const maxNameAttempts = 1000

// FileSaver writes artifacts into a directory. Content goes to a temporary
// file first and is renamed into place only once fully written, so a
// failed download never leaves a partial artifact behind. Existing files
// are not overwritten.
type FileSaver struct {
	dir string
}

// NewFileSaver creates dir if needed.
func NewFileSaver(dir string) (*FileSaver, error) {
	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, err
	}
	return &FileSaver{dir: abs}, nil
}

func (s *FileSaver) Dir() string { return s.dir }

func (s *FileSaver) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	name = filex.SafeBase(name, "download")

	tmp, err := os.CreateTemp(s.dir, "."+name+".*.part")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := io.Copy(tmp, &ctxReader{ctx: ctx, r: r}); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Sync(); err != nil {
		return "", fmt.Errorf("sync %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", name, err)
	}

	dst, err := s.freePath(name)
	if err != nil {
		return "", err
	}
	if err := os.Rename(tmpName, dst); err != nil {
		return "", fmt.Errorf("rename %s: %w", name, err)
	}
	committed = true

	return dst, nil
}

// freePath returns dir/name, or dir/"base (n).ext" when taken.
func (s *FileSaver) freePath(name string) (string, error) {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)

	for i := 0; i < maxNameAttempts; i++ {
		candidate := name
		if i > 0 {
			candidate = fmt.Sprintf("%s (%d)%s", base, i, ext)
		}
		p := filepath.Join(s.dir, candidate)

		_, err := os.Lstat(p)
		if errors.Is(err, fs.ErrNotExist) {
			return p, nil
		}
		if err != nil {
			return "", fmt.Errorf("stat %s: %w", p, err)
		}
	}
	return "", fmt.Errorf("no free file name for %s in %s", name, s.dir)
}

// ctxReader stops a copy once ctx is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
