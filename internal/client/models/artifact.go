package models

import "io"

// Artifact is a downloaded payload. Body must be closed by the receiver.
type Artifact struct {
	Kind        ArtifactKind
	Filename    string
	ContentType string
	Size        int64 // -1 when unknown
	Body        io.ReadCloser
}
