package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/securedocs/internal/client/client"
	"github.com/dmitrijs2005/securedocs/internal/client/config"
	"github.com/dmitrijs2005/securedocs/internal/client/repositories/preferences"
	"github.com/dmitrijs2005/securedocs/internal/client/savers"
	"github.com/dmitrijs2005/securedocs/internal/client/workflow"
	"github.com/dmitrijs2005/securedocs/internal/filex"
	"github.com/dmitrijs2005/securedocs/internal/i18n"
	"github.com/dmitrijs2005/securedocs/internal/logging"

	_ "modernc.org/sqlite"
)

// Streams are the terminal the App talks to.
type Streams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
	// InFd is the descriptor behind In, used for password prompts.
	InFd int
}

// App wires configuration, preference storage, the remote client and the
// workflow state for one process.
type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB

	localizer  *i18n.Localizer
	workspace  *workflow.Workspace
	executor   *workflow.Executor
	downloader *workflow.Downloader
	presenter  *workflow.Presenter
	notifier   *terminalNotifier

	reader *bufio.Reader
	out    io.Writer
	errOut io.Writer
	inFd   int
	now    func() time.Time
}

// appDeps lets tests replace the collaborators NewApp would build.
type appDeps struct {
	client    client.Client
	saver     workflow.Saver
	clipboard workflow.Clipboard
}

func NewApp(ctx context.Context, c *config.Config, s Streams) (*App, error) {
	return newApp(ctx, c, s, appDeps{})
}

func newApp(ctx context.Context, c *config.Config, s Streams, deps appDeps) (*App, error) {
	logger, err := logging.New(logging.Options{
		Backend: c.LogBackend,
		Format:  c.LogFormat,
		Level:   c.LogLevel,
		Output:  s.ErrOut,
	})
	if err != nil {
		return nil, err
	}

	if _, err := filex.EnsureDir(filepath.Dir(c.PrefsPath)); err != nil {
		return nil, fmt.Errorf("preferences directory: %w", err)
	}
	db, err := client.InitDatabase(ctx, c.PrefsPath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.PrefsPath, "error", err)
		return nil, err
	}

	a := &App{
		config: c,
		logger: logger,
		db:     db,
		reader: bufio.NewReader(s.In),
		out:    s.Out,
		errOut: s.ErrOut,
		inFd:   s.InFd,
		now:    time.Now,
	}

	if err := a.wire(ctx, deps); err != nil {
		_ = db.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) wire(ctx context.Context, deps appDeps) error {
	c := a.config

	a.localizer = i18n.NewLocalizer(preferences.NewSQLiteRepository(a.db))
	if err := a.localizer.Load(ctx, c.Locale); err != nil {
		return err
	}

	session := workflow.NewSession()
	a.logger = a.logger.With("session_id", session.ID())

	api := deps.client
	if api == nil {
		hc, err := client.NewHTTPClient(c.ServerURL,
			client.WithSessionID(session.ID()),
			client.WithTimeout(c.RequestTimeout),
			client.WithLogger(a.logger))
		if err != nil {
			return err
		}
		api = hc
	}

	saver := deps.saver
	if saver == nil {
		s, err := newSaver(ctx, c)
		if err != nil {
			return err
		}
		saver = s
	}

	cb := deps.clipboard
	if cb == nil {
		cb = systemClipboard{}
	}

	a.notifier = &terminalNotifier{w: a.errOut}
	a.workspace = workflow.NewWorkspace(session, a.localizer)
	a.executor = workflow.NewExecutor(api, session, a.localizer, a.notifier,
		workflow.WithMaxUploadSize(c.MaxUploadSize),
		workflow.WithExecutorLogger(a.logger))
	a.downloader = workflow.NewDownloader(api, session, a.localizer, a.notifier, saver, a.logger)
	a.presenter = workflow.NewPresenter(session, cb)
	return nil
}

func newSaver(ctx context.Context, c *config.Config) (savers.Saver, error) {
	if c.S3.Bucket != "" {
		return savers.NewS3Saver(ctx, savers.S3Options{
			Bucket:    c.S3.Bucket,
			Region:    c.S3.Region,
			Endpoint:  c.S3.Endpoint,
			AccessKey: c.S3.AccessKey,
			SecretKey: c.S3.SecretKey,
			Prefix:    c.S3.Prefix,
		})
	}
	return savers.NewFileSaver(c.DownloadDir)
}

// Close releases the preferences database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// Run starts the interactive session and blocks until the user leaves.
func (a *App) Run(ctx context.Context) {
	a.notifier.dismiss = a.reader
	unsubscribe := a.localizer.Subscribe(func(i18n.Locale) { a.render() })
	defer unsubscribe()

	fmt.Fprintln(a.out, a.localizer.T("logo")+" (type 'help' for commands)")
	a.render()
	runREPL(ctx, a, a.prompt, a.reader)
}

func (a *App) prompt() string {
	return fmt.Sprintf("securedocs %s/%s> ", a.localizer.Active(), a.workspace.ActiveTab())
}

func (a *App) render() {
	printView(a.out, workflow.Render(a.workspace, a.now()))
}

// reportedError marks an error the user has already been shown.
type reportedError struct{ err error }

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	if err == nil {
		return nil
	}
	return &reportedError{err: err}
}

// IsReported tells whether err was already displayed by a notification.
func IsReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}

