package workflow

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/securedocs/internal/client/client"
	"github.com/dmitrijs2005/securedocs/internal/client/models"
	"github.com/dmitrijs2005/securedocs/internal/filex"
	"github.com/dmitrijs2005/securedocs/internal/logging"
)

// Saver stores a downloaded artifact under name and returns where it went.
type Saver interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
}

// Downloader fetches artifacts of the session's current submission.
type Downloader struct {
	client   client.Client
	session  *Session
	tr       Translator
	notifier Notifier
	saver    Saver
	logger   logging.Logger
}

// NewDownloader builds a Downloader. A nil logger discards.
func NewDownloader(c client.Client, s *Session, tr Translator, n Notifier, saver Saver, l logging.Logger) *Downloader {
	if l == nil {
		l = logging.Discard()
	}
	return &Downloader{client: c, session: s, tr: tr, notifier: n, saver: saver, logger: l}
}

// Download saves one artifact and returns its location.
func (d *Downloader) Download(ctx context.Context, kind models.ArtifactKind) (string, error) {
	fileID, ok := d.session.FileID()
	if !ok {
		d.notifier.Notify(ctx, d.tr.T("error_no_file"))
		return "", ErrNoArtifact
	}

	art, err := d.client.Download(ctx, fileID, kind)
	if err != nil {
		d.logger.Warn(ctx, "download failed", "file_id", fileID, "kind", string(kind), "error", err)
		d.notifier.Notify(ctx, d.tr.T("error_download")+err.Error())
		return "", fmt.Errorf("download %s: %w", kind, err)
	}
	defer art.Body.Close()

	name := filex.SafeBase(art.Filename, kind.DefaultFilename())
	location, err := d.saver.Save(ctx, name, art.Body)
	if err != nil {
		d.logger.Warn(ctx, "saving artifact failed", "name", name, "error", err)
		d.notifier.Notify(ctx, d.tr.T("error_download")+err.Error())
		return "", fmt.Errorf("save %s: %w", name, err)
	}

	d.logger.Info(ctx, "artifact saved", "file_id", fileID, "kind", string(kind), "location", location)
	return location, nil
}
