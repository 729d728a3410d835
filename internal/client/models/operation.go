// Package models defines the client-side data exchanged with the remote
// encryption service.
package models

import "fmt"

// Operation is a workflow kind; each has its own panel and endpoint.
type Operation string

const (
	OperationEncrypt Operation = "encrypt"
	OperationDecrypt Operation = "decrypt"
)

// ArtifactKind names a downloadable byproduct of an operation. The values
// are the path segments of GET /api/download/{file_id}/{kind}.
type ArtifactKind string

const (
	ArtifactEncrypted ArtifactKind = "encrypted"
	ArtifactKey       ArtifactKind = "key"
	ArtifactDecrypted ArtifactKind = "decrypted"
)

// Artifacts returns the kinds produced by op, in download-button order.
func (op Operation) Artifacts() []ArtifactKind {
	switch op {
	case OperationEncrypt:
		return []ArtifactKind{ArtifactEncrypted, ArtifactKey}
	case OperationDecrypt:
		return []ArtifactKind{ArtifactDecrypted}
	default:
		return nil
	}
}

// ParseArtifactKind validates a kind given on the command line.
func ParseArtifactKind(s string) (ArtifactKind, error) {
	switch k := ArtifactKind(s); k {
	case ArtifactEncrypted, ArtifactKey, ArtifactDecrypted:
		return k, nil
	default:
		return "", fmt.Errorf("unknown artifact kind %q", s)
	}
}

// DefaultFilename is used when the server does not advertise one.
func (k ArtifactKind) DefaultFilename() string {
	return "file." + string(k)
}
