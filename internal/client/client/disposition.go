package client

import (
	"mime"
	"regexp"

	"github.com/dmitrijs2005/securedocs/internal/client/models"
)

var filenameRe = regexp.MustCompile(`filename="?([^"]+)"?`)

// FilenameFromDisposition returns the file name advertised by a
// Content-Disposition header value, or the kind's default name.
//
// RFC 6266 values (including the RFC 5987 filename* form) are decoded with
// the mime package; headers it rejects fall back to a plain
// filename="<name>" match.
func FilenameFromDisposition(header string, kind models.ArtifactKind) string {
	if header == "" {
		return kind.DefaultFilename()
	}

	if _, params, err := mime.ParseMediaType(header); err == nil {
		if name := params["filename"]; name != "" {
			return name
		}
	}

	if m := filenameRe.FindStringSubmatch(header); m != nil {
		return m[1]
	}
	return kind.DefaultFilename()
}
