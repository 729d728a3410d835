package client

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/securedocs/internal/client/models"
)

func TestFilenameFromDisposition(t *testing.T) {
	tests := []struct {
		name   string
		header string
		kind   models.ArtifactKind
		want   string
	}{
		{"quoted", `attachment; filename="report.pdf.encrypted"`, models.ArtifactEncrypted, "report.pdf.encrypted"},
		{"unquoted", `attachment; filename=report.pdf.key`, models.ArtifactKey, "report.pdf.key"},
		{"rfc5987", `attachment; filename*=utf-8''%D0%BE%D1%82%D1%87%D1%91%D1%82.pdf`, models.ArtifactDecrypted, "отчёт.pdf"},
		{"empty", "", models.ArtifactKey, "file.key"},
		{"no filename", "attachment", models.ArtifactDecrypted, "file.decrypted"},
		{"malformed falls back to regex", `attachment; filename="a b.txt"; =broken`, models.ArtifactEncrypted, "a b.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilenameFromDisposition(tt.header, tt.kind))
		})
	}
}
