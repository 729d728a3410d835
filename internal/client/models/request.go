package models

// SubmissionRequest is assembled from a panel at submit time and dropped once
// the request completes.
type SubmissionRequest struct {
	Operation Operation
	File      *UploadFile
	Password  string
	// KeyFile is only sent for decryption.
	KeyFile *UploadFile
}
