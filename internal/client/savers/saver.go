// Package savers stores downloaded artifacts: in a local directory or in an
// S3-compatible bucket.
package savers

import (
	"context"
	"io"
)

// Saver stores the content read from r under name and returns where it
// ended up (a file path or an s3:// URL).
type Saver interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
}
