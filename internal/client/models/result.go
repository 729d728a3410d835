package models

// EncryptResult is the success body of POST /api/encrypt.
type EncryptResult struct {
	FileID            string `json:"file_id"`
	OriginalFilename  string `json:"original_filename"`
	FileType          string `json:"file_type"`
	OriginalSize      int64  `json:"original_size"`
	EncryptedSize     int64  `json:"encrypted_size"`
	PasswordGenerated string `json:"password_generated,omitempty"`

	// Sent by the server but not required by the client.
	Success           bool   `json:"success,omitempty"`
	EncryptedFilename string `json:"encrypted_filename,omitempty"`
	KeyFilename       string `json:"key_filename,omitempty"`
}

// DecryptResult is the success body of POST /api/decrypt.
type DecryptResult struct {
	FileID           string `json:"file_id"`
	OriginalFilename string `json:"original_filename"`
	FileType         string `json:"file_type"`
	Size             int64  `json:"size"`

	Success           bool   `json:"success,omitempty"`
	DecryptedFilename string `json:"decrypted_filename,omitempty"`
}
