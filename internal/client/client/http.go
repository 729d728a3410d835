package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/securedocs/internal/client/models"
	"github.com/dmitrijs2005/securedocs/internal/common"
	"github.com/dmitrijs2005/securedocs/internal/logging"
)

const (
	encryptPath  = "/api/encrypt"
	decryptPath  = "/api/decrypt"
	downloadPath = "/api/download"

	fieldFile     = "file"
	fieldKey      = "key"
	fieldPassword = "password"

	// error bodies are small JSON documents; anything larger is not read
	maxErrorBody = 64 << 10
)

// HTTPClient implements Client over the service's REST endpoints.
type HTTPClient struct {
	baseURL   *url.URL
	http      *http.Client
	sessionID string
	logger    logging.Logger
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTPClient) { h.http = c }
}

// WithTimeout bounds every request, including reading the body.
func WithTimeout(d time.Duration) Option {
	return func(h *HTTPClient) {
		c := *h.http
		c.Timeout = d
		h.http = &c
	}
}

// WithSessionID sets the value sent in the session header.
func WithSessionID(id string) Option {
	return func(h *HTTPClient) { h.sessionID = id }
}

// WithLogger enables request tracing at debug level. Without it nothing is logged.
func WithLogger(l logging.Logger) Option {
	return func(h *HTTPClient) { h.logger = l }
}

// NewHTTPClient builds a client for the service rooted at baseURL,
// e.g. "http://127.0.0.1:8000".
func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("server url %q: scheme must be http or https", baseURL)
	}
	u.Path = strings.TrimRight(u.Path, "/")

	c := &HTTPClient{baseURL: u, http: &http.Client{}}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// endpoint joins the fixed path prefix and the escaped segments onto the
// base URL. Path and RawPath are set together so escapes are not doubled.
func (c *HTTPClient) endpoint(prefix string, segments ...string) string {
	u := *c.baseURL
	u.Path = c.baseURL.Path + prefix
	u.RawPath = c.baseURL.EscapedPath() + prefix
	for _, seg := range segments {
		u.Path += "/" + seg
		u.RawPath += "/" + url.PathEscape(seg)
	}
	return u.String()
}

type filePart struct {
	field string
	file  *models.UploadFile
}

func (c *HTTPClient) Encrypt(ctx context.Context, req models.SubmissionRequest) (*models.EncryptResult, error) {
	if req.File == nil {
		return nil, ErrMissingUploadedFile
	}

	parts := []filePart{{field: fieldFile, file: req.File}}

	var res models.EncryptResult
	if err := c.postMultipart(ctx, encryptPath, parts, req.Password, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Decrypt(ctx context.Context, req models.SubmissionRequest) (*models.DecryptResult, error) {
	if req.File == nil {
		return nil, ErrMissingUploadedFile
	}

	parts := []filePart{{field: fieldFile, file: req.File}}
	if req.KeyFile != nil {
		parts = append(parts, filePart{field: fieldKey, file: req.KeyFile})
	}

	var res models.DecryptResult
	if err := c.postMultipart(ctx, decryptPath, parts, req.Password, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Download fetches an artifact. The caller owns the returned Body.
func (c *HTTPClient) Download(ctx context.Context, fileID string, kind models.ArtifactKind) (*models.Artifact, error) {
	if fileID == "" || strings.ContainsAny(fileID, "/?#") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFileID, fileID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.endpoint(downloadPath, fileID, string(kind)), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		return nil, decodeError(resp)
	}

	return &models.Artifact{
		Kind:        kind,
		Filename:    FilenameFromDisposition(resp.Header.Get("Content-Disposition"), kind),
		ContentType: resp.Header.Get("Content-Type"),
		Size:        resp.ContentLength,
		Body:        resp.Body,
	}, nil
}

// postMultipart streams the form through a pipe so file content is never
// buffered whole in memory.
func (c *HTTPClient) postMultipart(ctx context.Context, path string, parts []filePart, password string, out any) error {
	pr, pw := io.Pipe()
	defer pr.Close()
	mw := multipart.NewWriter(pw)

	go func() {
		pw.CloseWithError(writeForm(mw, parts, password))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path), pr)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding %s result: %v", ErrUnexpectedResponse, path, err)
	}
	return nil
}

func writeForm(mw *multipart.Writer, parts []filePart, password string) error {
	for _, p := range parts {
		if err := writeFilePart(mw, p); err != nil {
			return err
		}
	}
	// an empty password is omitted so the server generates one
	if password != "" {
		if err := mw.WriteField(fieldPassword, password); err != nil {
			return err
		}
	}
	return mw.Close()
}

func writeFilePart(mw *multipart.Writer, p filePart) error {
	rc, err := p.file.Open()
	if err != nil {
		return fmt.Errorf("open %s: %w", p.file.Name, err)
	}
	defer rc.Close()

	w, err := mw.CreateFormFile(p.field, p.file.Name)
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, rc); err != nil {
		return fmt.Errorf("upload %s: %w", p.file.Name, err)
	}
	return nil
}

func (c *HTTPClient) do(req *http.Request) (*http.Response, error) {
	if c.sessionID != "" {
		req.Header.Set(common.SessionHeaderName, c.sessionID)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, ctxErr)
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if c.logger != nil {
		c.logger.Debug(req.Context(), "request finished",
			"method", req.Method,
			"path", req.URL.Path,
			"status", resp.StatusCode,
			"duration", time.Since(start))
	}
	return resp, nil
}

func decodeError(resp *http.Response) error {
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil && !errors.Is(err, io.EOF) {
		return &APIError{StatusCode: resp.StatusCode}
	}
	return &APIError{StatusCode: resp.StatusCode, Detail: parseDetail(b)}
}

// parseDetail extracts the "detail" member of an error body. FastAPI sends
// either a string or, for validation failures, a list of {"msg": ...}.
func parseDetail(b []byte) string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(b, &body); err != nil || len(body.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(body.Detail, &s); err == nil {
		return s
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(body.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}
