package client

import (
	"context"

	"github.com/dmitrijs2005/securedocs/internal/client/models"
)

// Client is the transport to the remote encryption service.
//
// Encrypt and Decrypt upload req as a multipart form and decode the JSON
// result. Download fetches one artifact of the file identified by fileID;
// the caller must close the returned Artifact.Body.
//
// Errors: *APIError for a non-2xx answer, ErrUnavailable when the service
// cannot be reached, ErrUnexpectedResponse for an undecodable body.
type Client interface {
	Encrypt(ctx context.Context, req models.SubmissionRequest) (*models.EncryptResult, error)
	Decrypt(ctx context.Context, req models.SubmissionRequest) (*models.DecryptResult, error)
	Download(ctx context.Context, fileID string, kind models.ArtifactKind) (*models.Artifact, error)
}
