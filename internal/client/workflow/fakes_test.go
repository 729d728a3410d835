package workflow

import (
	"bytes"
	"context"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/securedocs/internal/client/models"
	"github.com/dmitrijs2005/securedocs/internal/i18n"
)

type fakeClient struct {
	mu sync.Mutex

	encryptRes *models.EncryptResult
	decryptRes *models.DecryptResult
	err        error
	artifact   *models.Artifact

	// block, when set, holds Encrypt until it is closed
	block   chan struct{}
	started chan struct{}

	calls     int
	downloads []string
	lastReq   models.SubmissionRequest
}

func (f *fakeClient) record(req models.SubmissionRequest) {
	f.mu.Lock()
	f.calls++
	f.lastReq = req
	f.mu.Unlock()
}

func (f *fakeClient) Encrypt(ctx context.Context, req models.SubmissionRequest) (*models.EncryptResult, error) {
	f.record(req)
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.encryptRes, nil
}

func (f *fakeClient) Decrypt(ctx context.Context, req models.SubmissionRequest) (*models.DecryptResult, error) {
	f.record(req)
	if f.err != nil {
		return nil, f.err
	}
	return f.decryptRes, nil
}

func (f *fakeClient) Download(ctx context.Context, fileID string, kind models.ArtifactKind) (*models.Artifact, error) {
	f.mu.Lock()
	f.downloads = append(f.downloads, fileID+"/"+string(kind))
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.artifact, nil
}

func (f *fakeClient) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// recordingNotifier keeps every message; onNotify runs inside Notify.
type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
	onNotify func()
}

func (n *recordingNotifier) Notify(_ context.Context, msg string) {
	if n.onNotify != nil {
		n.onNotify()
	}
	n.mu.Lock()
	n.messages = append(n.messages, msg)
	n.mu.Unlock()
}

func (n *recordingNotifier) Messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.messages...)
}

type memSaver struct {
	saved map[string][]byte
	err   error
}

func (s *memSaver) Save(_ context.Context, name string, r io.Reader) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if s.saved == nil {
		s.saved = map[string][]byte{}
	}
	s.saved[name] = b
	return "mem://" + name, nil
}

type trackingBody struct {
	*bytes.Reader
	closed bool
}

func (b *trackingBody) Close() error {
	b.closed = true
	return nil
}

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

func englishLocalizer(t *testing.T) *i18n.Localizer {
	t.Helper()
	loc := i18n.NewLocalizer(nil)
	require.NoError(t, loc.SetActiveLocale(context.Background(), i18n.English))
	return loc
}

func pdfFile() models.UploadFile {
	return models.FileFromBytes("report.pdf", []byte("%PDF-1.7"))
}
