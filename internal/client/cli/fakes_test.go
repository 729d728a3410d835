package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/securedocs/internal/client/config"
	"github.com/dmitrijs2005/securedocs/internal/client/models"
)

type stubClient struct {
	mu sync.Mutex

	encryptRes *models.EncryptResult
	decryptRes *models.DecryptResult
	err        error

	requests  []models.SubmissionRequest
	downloads []string
}

func (c *stubClient) Encrypt(_ context.Context, req models.SubmissionRequest) (*models.EncryptResult, error) {
	c.mu.Lock()
	c.requests = append(c.requests, req)
	c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	return c.encryptRes, nil
}

func (c *stubClient) Decrypt(_ context.Context, req models.SubmissionRequest) (*models.DecryptResult, error) {
	c.mu.Lock()
	c.requests = append(c.requests, req)
	c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	return c.decryptRes, nil
}

func (c *stubClient) Download(_ context.Context, fileID string, kind models.ArtifactKind) (*models.Artifact, error) {
	c.mu.Lock()
	c.downloads = append(c.downloads, fileID+"/"+string(kind))
	c.mu.Unlock()
	return &models.Artifact{
		Kind:     kind,
		Filename: "report." + string(kind),
		Size:     -1,
		Body:     io.NopCloser(strings.NewReader("payload-" + string(kind))),
	}, nil
}

type stubSaver struct {
	mu    sync.Mutex
	saved map[string]string
}

func (s *stubSaver) Save(_ context.Context, name string, r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saved == nil {
		s.saved = map[string]string{}
	}
	s.saved[name] = string(b)
	return "mem://" + name, nil
}

type stubClipboard struct{ text string }

func (c *stubClipboard) WriteAll(text string) error {
	c.text = text
	return nil
}

// testConfig returns defaults with a private preferences database and
// English forced so output does not depend on the environment.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.PrefsPath = filepath.Join(t.TempDir(), "prefs", "prefs.db")
	cfg.DownloadDir = t.TempDir()
	cfg.Locale = "en"
	return cfg
}

type testStreams struct {
	out, errOut bytes.Buffer
}

func (ts *testStreams) streams(in string) Streams {
	return Streams{In: strings.NewReader(in), Out: &ts.out, ErrOut: &ts.errOut, InFd: -1}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func encryptResult() *models.EncryptResult {
	return &models.EncryptResult{
		FileID:            "f-1",
		OriginalFilename:  "report.pdf",
		FileType:          "PDF",
		OriginalSize:      1536,
		EncryptedSize:     2048,
		PasswordGenerated: "Xy7-secret",
	}
}
