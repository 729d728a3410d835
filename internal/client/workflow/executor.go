package workflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/securedocs/internal/client/client"
	"github.com/dmitrijs2005/securedocs/internal/client/models"
	"github.com/dmitrijs2005/securedocs/internal/logging"
)

// DefaultMaxUploadSize matches the service's own upload limit.
const DefaultMaxUploadSize int64 = 500 << 20

// Executor runs the submit flow of a panel.
type Executor struct {
	client        client.Client
	session       *Session
	tr            Translator
	notifier      Notifier
	logger        logging.Logger
	maxUploadSize int64
}

// ExecutorOption configures an Executor in NewExecutor.
type ExecutorOption func(*Executor)

// WithMaxUploadSize rejects primary files larger than n bytes before any
// request is made. n <= 0 disables the check.
func WithMaxUploadSize(n int64) ExecutorOption {
	return func(e *Executor) { e.maxUploadSize = n }
}

// WithExecutorLogger sets the logger for submissions. The default discards.
func WithExecutorLogger(l logging.Logger) ExecutorOption {
	return func(e *Executor) { e.logger = l }
}

// NewExecutor builds an Executor with DefaultMaxUploadSize unless
// WithMaxUploadSize overrides it.
func NewExecutor(c client.Client, s *Session, tr Translator, n Notifier, opts ...ExecutorOption) *Executor {
	e := &Executor{
		client:        c,
		session:       s,
		tr:            tr,
		notifier:      n,
		logger:        logging.Discard(),
		maxUploadSize: DefaultMaxUploadSize,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Submit sends the panel's form. Every failure except ErrBusy and
// ErrResultShown is shown through the notifier before it is returned.
func (e *Executor) Submit(ctx context.Context, p *Panel) error {
	req, err := p.begin()
	if err != nil {
		return err
	}
	defer p.release()

	if err := e.validate(req); err != nil {
		key := "error_file_required"
		if errors.Is(err, ErrFileTooLarge) {
			key = "error_file_too_large"
		}
		e.fail(ctx, p, e.tr.T(key))
		return err
	}

	log := e.logger.With("operation", string(req.Operation), "file", req.File.Name, "session_id", e.session.ID())
	log.Debug(ctx, "submitting", "size", req.File.Size)

	switch req.Operation {
	case models.OperationEncrypt:
		res, err := e.client.Encrypt(ctx, req)
		if err != nil {
			log.Warn(ctx, "encrypt failed", "error", err)
			e.fail(ctx, p, e.detail(err, "error_encrypt_failed"))
			return fmt.Errorf("encrypt %s: %w", req.File.Name, err)
		}
		e.session.SetFileID(res.FileID)
		p.showEncrypt(res)
		log.Info(ctx, "file encrypted", "file_id", res.FileID)

	case models.OperationDecrypt:
		res, err := e.client.Decrypt(ctx, req)
		if err != nil {
			log.Warn(ctx, "decrypt failed", "error", err)
			e.fail(ctx, p, e.detail(err, "error_decrypt_failed"))
			return fmt.Errorf("decrypt %s: %w", req.File.Name, err)
		}
		e.session.SetFileID(res.FileID)
		p.showDecrypt(res)
		log.Info(ctx, "file decrypted", "file_id", res.FileID)

	default:
		return fmt.Errorf("unknown operation %q", req.Operation)
	}

	return nil
}

func (e *Executor) validate(req models.SubmissionRequest) error {
	if req.File == nil {
		return ErrNoFileSelected
	}
	if e.maxUploadSize > 0 && req.File.Size > e.maxUploadSize {
		return fmt.Errorf("%w: %s is %d bytes", ErrFileTooLarge, req.File.Name, req.File.Size)
	}
	return nil
}

// fail shows the error while the panel is in PhaseErrorShown, then returns
// it to the idle form.
func (e *Executor) fail(ctx context.Context, p *Panel, detail string) {
	p.setPhase(PhaseErrorShown)
	e.notifier.Notify(ctx, e.tr.T("error_prefix")+detail)
	p.setPhase(PhaseIdleForm)
}

// detail is the server's message when it sent one, the localized fallback
// for an empty error body and the error text for transport failures.
func (e *Executor) detail(err error, fallbackKey string) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Detail != "" {
			return apiErr.Detail
		}
		return e.tr.T(fallbackKey)
	}
	return err.Error()
}
