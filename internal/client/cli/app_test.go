package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/securedocs/internal/client/client"
	"github.com/dmitrijs2005/securedocs/internal/client/workflow"
	"github.com/dmitrijs2005/securedocs/internal/i18n"
)

func TestApp_EncryptFlow(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	var ts testStreams

	api := &stubClient{encryptRes: encryptResult()}
	saver := &stubSaver{}
	cb := &stubClipboard{}

	a, err := newApp(ctx, cfg, ts.streams(""), appDeps{client: api, saver: saver, clipboard: cb})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	doc := writeFile(t, "report.pdf", "%PDF-1.4")
	require.NoError(t, a.Pick("encrypt", doc))
	require.NoError(t, a.Password(ctx, []string{"my", "pass"}))
	require.NoError(t, a.Submit(ctx))

	require.Len(t, api.requests, 1)
	require.Equal(t, "report.pdf", api.requests[0].File.Name)
	require.Equal(t, "my pass", api.requests[0].Password)
	require.Contains(t, ts.out.String(), "1.5 KB")
	require.Contains(t, ts.out.String(), "Xy7-secret")

	require.NoError(t, a.Download(ctx, "key"))
	require.Equal(t, []string{"f-1/key"}, api.downloads)
	require.Equal(t, "payload-key", saver.saved["report.key"])
	require.Contains(t, ts.out.String(), "mem://report.key")

	require.NoError(t, a.Copy())
	require.Equal(t, "Xy7-secret", cb.text)
	require.Contains(t, ts.out.String(), "["+workflow.GlyphCopied+"]")

	require.NoError(t, a.Reset())
	_, ok := a.workspace.Session.FileID()
	require.False(t, ok)
	require.Equal(t, workflow.PhaseIdleForm, a.workspace.ActivePanel().Phase())
}

func TestApp_SubmitErrorIsReported(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	var ts testStreams

	api := &stubClient{err: &client.APIError{StatusCode: 400, Detail: "Unsupported file type"}}
	a, err := newApp(ctx, cfg, ts.streams(""), appDeps{client: api, saver: &stubSaver{}, clipboard: &stubClipboard{}})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	require.NoError(t, a.Pick("encrypt", writeFile(t, "a.exe", "MZ")))
	err = a.Submit(ctx)
	require.Error(t, err)
	require.True(t, IsReported(err))
	require.Contains(t, ts.errOut.String(), "Unsupported file type")
	require.Equal(t, workflow.PhaseIdleForm, a.workspace.ActivePanel().Phase())
}

func TestApp_DownloadRejectsForeignKind(t *testing.T) {
	ctx := context.Background()
	var ts testStreams
	api := &stubClient{}

	a, err := newApp(ctx, testConfig(t), ts.streams(""), appDeps{client: api, saver: &stubSaver{}, clipboard: &stubClipboard{}})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	require.NoError(t, a.SelectTab("decrypt"))
	err = a.Download(ctx, "key")
	require.Error(t, err)
	require.True(t, IsReported(err))

	err = a.Download(ctx, "bogus")
	require.Error(t, err)
	require.Empty(t, api.downloads)
}

func TestApp_UnknownSlotAndTab(t *testing.T) {
	ctx := context.Background()
	var ts testStreams

	a, err := newApp(ctx, testConfig(t), ts.streams(""), appDeps{client: &stubClient{}, saver: &stubSaver{}, clipboard: &stubClipboard{}})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	require.Error(t, a.SelectTab("archive"))
	require.ErrorIs(t, a.Clear("key"), workflow.ErrUnknownSlot)
	require.Error(t, a.DragOver("nowhere"))
	require.Contains(t, ts.errOut.String(), i18n.Resolve(i18n.English, "error_prefix"))
}

func TestApp_LangIsPersisted(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	deps := appDeps{client: &stubClient{}, saver: &stubSaver{}, clipboard: &stubClipboard{}}

	var ts testStreams
	a, err := newApp(ctx, cfg, ts.streams(""), deps)
	require.NoError(t, err)
	require.Equal(t, i18n.English, a.localizer.Active())
	require.NoError(t, a.Lang(ctx, "ru"))
	require.Error(t, a.Lang(ctx, "de"))
	require.NoError(t, a.Close())

	cfg.Locale = ""
	b, err := newApp(ctx, cfg, ts.streams(""), deps)
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })
	require.Equal(t, i18n.Russian, b.localizer.Active())
}

func TestApp_RunREPL(t *testing.T) {
	captureOutput(t)
	ctx := context.Background()
	var ts testStreams

	api := &stubClient{encryptRes: encryptResult()}
	doc := writeFile(t, "report.pdf", "%PDF")
	input := "pick encrypt " + doc + "\nsubmit\ndownload encrypted\nexit\n"

	a, err := newApp(ctx, testConfig(t), ts.streams(input), appDeps{client: api, saver: &stubSaver{}, clipboard: &stubClipboard{}})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	a.Run(ctx)
	require.Len(t, api.requests, 1)
	require.Equal(t, []string{"f-1/encrypted"}, api.downloads)
	require.Contains(t, ts.out.String(), i18n.Resolve(i18n.English, "logo"))
}
