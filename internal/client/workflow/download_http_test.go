package workflow

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/securedocs/internal/client/client"
	"github.com/dmitrijs2005/securedocs/internal/client/models"
)

// remoteService serves artifacts for one file id. The key comes with a
// Content-Disposition filename, the encrypted file without one.
func remoteService(t *testing.T, fileID string) *client.HTTPClient {
	t.Helper()
	r := chi.NewRouter()
	r.Get("/api/download/{id}/{kind}", func(w http.ResponseWriter, req *http.Request) {
		if chi.URLParam(req, "id") != fileID {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"detail":"File not found"}`))
			return
		}
		switch chi.URLParam(req, "kind") {
		case "key":
			w.Header().Set("Content-Disposition", `attachment; filename="secret.key"`)
			_, _ = w.Write([]byte("KEYDATA"))
		case "encrypted":
			_, _ = w.Write([]byte("CIPHER"))
		default:
			http.NotFound(w, req)
		}
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	c, err := client.NewHTTPClient(srv.URL)
	require.NoError(t, err)
	return c
}

func TestDownload_OverHTTP(t *testing.T) {
	c := remoteService(t, "abc123")
	s := NewSession()
	s.SetFileID("abc123")
	n := &recordingNotifier{}
	saver := &memSaver{}
	d := NewDownloader(c, s, englishLocalizer(t), n, saver, nil)

	loc, err := d.Download(context.Background(), models.ArtifactKey)
	require.NoError(t, err)
	assert.Equal(t, "mem://secret.key", loc)
	assert.Equal(t, []byte("KEYDATA"), saver.saved["secret.key"])

	loc, err = d.Download(context.Background(), models.ArtifactEncrypted)
	require.NoError(t, err)
	assert.Equal(t, "mem://file.encrypted", loc)
	assert.Equal(t, []byte("CIPHER"), saver.saved["file.encrypted"])

	assert.Empty(t, n.Messages())
}

func TestDownload_OverHTTP_DefaultKeyName(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/download/{id}/{kind}", func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte("KEYDATA"))
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	c, err := client.NewHTTPClient(srv.URL)
	require.NoError(t, err)

	s := NewSession()
	s.SetFileID("abc123")
	saver := &memSaver{}
	d := NewDownloader(c, s, englishLocalizer(t), &recordingNotifier{}, saver, nil)

	loc, err := d.Download(context.Background(), models.ArtifactKey)
	require.NoError(t, err)
	assert.Equal(t, "mem://file.key", loc)
	assert.Equal(t, []byte("KEYDATA"), saver.saved["file.key"])
}

func TestDownload_OverHTTP_UnknownFile(t *testing.T) {
	c := remoteService(t, "abc123")
	s := NewSession()
	s.SetFileID("gone")
	n := &recordingNotifier{}
	d := NewDownloader(c, s, englishLocalizer(t), n, &memSaver{}, nil)

	_, err := d.Download(context.Background(), models.ArtifactKey)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	require.Len(t, n.Messages(), 1)
	assert.Contains(t, n.Messages()[0], "File not found")
}
