package workflow

import (
	"math"
	"strconv"
	"time"

	"github.com/dmitrijs2005/securedocs/internal/client/models"
)

// CopyConfirmation is how long the copy control shows the confirmed glyph.
const CopyConfirmation = 1500 * time.Millisecond

const (
	GlyphCopy   = "content_copy"
	GlyphCopied = "check"
)

var sizeUnits = [...]string{"B", "KB", "MB", "GB"}

// FormatFileSize renders a byte count with binary prefixes: the largest unit
// up to GB in which the value is at least 1, rounded to two decimals.
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 B"
	}

	v := float64(bytes)
	i := 0
	for v >= 1024 && i < len(sizeUnits)-1 {
		v /= 1024
		i++
	}
	v = math.Round(v*100) / 100

	return strconv.FormatFloat(v, 'f', -1, 64) + " " + sizeUnits[i]
}

// Clipboard is the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// Presenter owns the result view actions that change state.
type Presenter struct {
	session   *Session
	clipboard Clipboard
	now       func() time.Time
}

func NewPresenter(s *Session, cb Clipboard) *Presenter {
	return &Presenter{session: s, clipboard: cb, now: time.Now}
}

// CopyPassword puts the generated password on the clipboard. The copy
// glyph shows GlyphCopied for CopyConfirmation afterwards.
func (pr *Presenter) CopyPassword(p *Panel) error {
	res := p.EncryptResult()
	if res == nil || res.PasswordGenerated == "" {
		return ErrNoPassword
	}
	if err := pr.clipboard.WriteAll(res.PasswordGenerated); err != nil {
		return err
	}
	p.markCopied(pr.now())
	return nil
}

// Reset returns p to an empty form and forgets the session's artifact key.
func (pr *Presenter) Reset(p *Panel) error {
	if err := p.reset(); err != nil {
		return err
	}
	pr.session.ClearFileID()
	return nil
}

func copyGlyph(copiedAt, now time.Time) string {
	if !copiedAt.IsZero() && now.Sub(copiedAt) < CopyConfirmation {
		return GlyphCopied
	}
	return GlyphCopy
}

// PresentEncrypt lays out an encrypt result in display order.
func PresentEncrypt(res *models.EncryptResult, tr Translator, copiedAt, now time.Time) ResultView {
	v := ResultView{
		Heading: tr.T("encrypt_success"),
		Fields: []ResultField{
			{Label: tr.T("result_file"), Value: res.OriginalFilename},
			{Label: tr.T("result_type"), Value: res.FileType},
			{Label: tr.T("result_size_before"), Value: FormatFileSize(res.OriginalSize)},
			{Label: tr.T("result_size_after"), Value: FormatFileSize(res.EncryptedSize)},
		},
		Downloads: []DownloadView{
			{Kind: models.ArtifactEncrypted, Label: tr.T("download_encrypted")},
			{Kind: models.ArtifactKey, Label: tr.T("download_key")},
		},
		Warning:    tr.T("warning_save"),
		ResetLabel: tr.T("encrypt_another"),
	}

	// an empty generated password hides the region just like an absent one
	if res.PasswordGenerated != "" {
		v.Password = &PasswordView{
			Label:     tr.T("result_password"),
			Text:      res.PasswordGenerated,
			CopyGlyph: copyGlyph(copiedAt, now),
		}
	}
	return v
}

// PresentDecrypt lays out a decrypt result in display order.
func PresentDecrypt(res *models.DecryptResult, tr Translator) ResultView {
	return ResultView{
		Heading: tr.T("decrypt_success"),
		Fields: []ResultField{
			{Label: tr.T("result_filename"), Value: res.OriginalFilename},
			{Label: tr.T("result_type"), Value: res.FileType},
			{Label: tr.T("result_size"), Value: FormatFileSize(res.Size)},
		},
		Downloads: []DownloadView{
			{Kind: models.ArtifactDecrypted, Label: tr.T("download_decrypted")},
		},
		ResetLabel: tr.T("decrypt_another"),
	}
}
