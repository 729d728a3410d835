package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/securedocs/internal/buildinfo"
	"github.com/dmitrijs2005/securedocs/internal/client/config"
	"github.com/dmitrijs2005/securedocs/internal/client/models"
	"github.com/dmitrijs2005/securedocs/internal/client/workflow"
	"github.com/dmitrijs2005/securedocs/internal/common"
	"github.com/dmitrijs2005/securedocs/internal/i18n"
)

// newAppFn is a test seam for NewApp.
var newAppFn = NewApp

// Execute runs the command line args and returns the process exit code.
func Execute(ctx context.Context, args []string, s Streams) int {
	cfg, err := config.LoadConfig(args)
	if err != nil {
		fmt.Fprintln(s.ErrOut, err)
		return 1
	}

	root := NewRootCommand(cfg, s)
	root.SetArgs(args)
	root.SetIn(s.In)
	root.SetOut(s.Out)
	root.SetErr(s.ErrOut)

	if err := root.ExecuteContext(ctx); err != nil {
		if !IsReported(err) {
			fmt.Fprintln(s.ErrOut, "securedocs:", err)
		}
		return 1
	}
	return 0
}

// NewRootCommand builds the command tree. Flags are bound to cfg, which
// should already carry defaults and the JSON overlay.
func NewRootCommand(cfg *config.Config, s Streams) *cobra.Command {
	root := &cobra.Command{
		Use:   "securedocs",
		Short: "Encrypt and decrypt documents with a SecureDocs server",
		Long: `securedocs uploads files to a SecureDocs server for encryption or
decryption and saves the resulting artifacts.

Without a subcommand an interactive session starts; type 'help' there.

Examples:
  # Encrypt, letting the server generate a password
  securedocs encrypt -i report.pdf -o ./out

  # Decrypt with the key file produced by encryption
  securedocs decrypt -i report.pdf.encrypted -k report.pdf.key -p "secret"

  # Switch the interface to English permanently
  securedocs lang en`,
		Version:       buildinfo.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), cfg, s, func(a *App) error {
				a.Run(cmd.Context())
				return nil
			})
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	config.BindFlags(root.PersistentFlags(), cfg)

	root.AddCommand(
		newEncryptCommand(cfg, s),
		newDecryptCommand(cfg, s),
		newLangCommand(cfg, s),
		newVersionCommand(s.Out),
	)
	return root
}

func withApp(ctx context.Context, cfg *config.Config, s Streams, fn func(*App) error) error {
	a, err := newAppFn(ctx, cfg, s)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

type passwordFlags struct {
	password string
	stdin    bool
}

func (pf *passwordFlags) bind(cmd *cobra.Command, usage string) {
	cmd.Flags().StringVarP(&pf.password, "password", "p", "", usage)
	cmd.Flags().BoolVarP(&pf.stdin, "password-stdin", "P", false, "read the password from the first line of stdin")
	cmd.MarkFlagsMutuallyExclusive("password", "password-stdin")
}

func (pf *passwordFlags) resolve(a *App) (string, error) {
	if !pf.stdin {
		return pf.password, nil
	}
	line, err := a.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read password from stdin: %w", err)
	}
	b := []byte(strings.TrimRight(line, "\r\n"))
	pw := string(b)
	common.WipeByteArray(b)
	return pw, nil
}

func newEncryptCommand(cfg *config.Config, s Streams) *cobra.Command {
	var (
		input string
		pf    passwordFlags
	)

	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a file and save the encrypted file and its key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), cfg, s, func(a *App) error {
				pw, err := pf.resolve(a)
				if err != nil {
					return err
				}
				return a.RunOnce(cmd.Context(), models.OperationEncrypt, input, "", pw)
			})
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "file to encrypt")
	pf.bind(cmd, "encryption password (generated by the server when empty)")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func newDecryptCommand(cfg *config.Config, s Streams) *cobra.Command {
	var (
		input, key string
		pf         passwordFlags
	)

	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a file with its key and save the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), cfg, s, func(a *App) error {
				pw, err := pf.resolve(a)
				if err != nil {
					return err
				}
				return a.RunOnce(cmd.Context(), models.OperationDecrypt, input, key, pw)
			})
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "encrypted file")
	cmd.Flags().StringVarP(&key, "key", "k", "", "key file")
	pf.bind(cmd, "password used for encryption, if any")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

func newLangCommand(cfg *config.Config, s Streams) *cobra.Command {
	return &cobra.Command{
		Use:   "lang [TAG]",
		Short: "Show or save the interface language",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), cfg, s, func(a *App) error {
				if len(args) == 0 {
					fmt.Fprintf(a.out, "%s (supported: %s)\n", a.localizer.Active(), supportedList())
					return nil
				}
				loc, err := i18n.ParseLocale(args[0])
				if err != nil {
					return err
				}
				if err := a.localizer.SetActiveLocale(cmd.Context(), loc); err != nil {
					return err
				}
				fmt.Fprintln(a.out, loc)
				return nil
			})
		},
	}
}

func supportedList() string {
	locs := i18n.Supported()
	names := make([]string, len(locs))
	for i, l := range locs {
		names[i] = string(l)
	}
	return strings.Join(names, ", ")
}

func newVersionCommand(w io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			buildinfo.PrintBuildData(w)
		},
	}
}

// RunOnce performs one submission non-interactively, prints the result and
// saves every artifact it produced.
func (a *App) RunOnce(ctx context.Context, op models.Operation, input, key, password string) error {
	if err := a.workspace.SelectTab(op); err != nil {
		return err
	}
	p := a.workspace.ActivePanel()

	if err := a.fill(p, input, key); err != nil {
		return err
	}
	p.SetPassword(password)

	if err := a.executor.Submit(ctx, p); err != nil {
		return reported(err)
	}
	a.render()

	for _, kind := range op.Artifacts() {
		loc, err := a.downloader.Download(ctx, kind)
		if err != nil {
			return reported(err)
		}
		fmt.Fprintln(a.out, a.localizer.T("saved_to")+loc)
	}
	return nil
}

func (a *App) fill(p *workflow.Panel, input, key string) error {
	f, err := models.FileFromPath(input)
	if err != nil {
		return err
	}
	p.Slots()[0].Pick([]models.UploadFile{f})

	if key == "" {
		return nil
	}
	ks, err := p.Slot(workflow.SlotKey)
	if err != nil {
		return err
	}
	kf, err := models.FileFromPath(key)
	if err != nil {
		return err
	}
	ks.Pick([]models.UploadFile{kf})
	return nil
}
