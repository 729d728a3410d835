package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/securedocs/internal/client/models"
	"github.com/dmitrijs2005/securedocs/internal/client/workflow"
	"github.com/dmitrijs2005/securedocs/internal/common"
	"github.com/dmitrijs2005/securedocs/internal/i18n"
)

func (a *App) Help() {
	fmt.Fprintln(a.out, helpText)
}

func (a *App) SelectTab(name string) error {
	if err := a.workspace.SelectTab(models.Operation(name)); err != nil {
		return a.printErr(err)
	}
	a.render()
	return nil
}

func (a *App) slot(name string) (*workflow.Slot, error) {
	id, err := workflow.ParseSlotID(name)
	if err != nil {
		return nil, err
	}
	return a.workspace.ActivePanel().Slot(id)
}

// Pick chooses a file through the slot's input control.
func (a *App) Pick(slot, path string) error {
	s, err := a.slot(slot)
	if err != nil {
		return a.printErr(err)
	}
	f, err := models.FileFromPath(path)
	if err != nil {
		return a.printErr(err)
	}
	if !s.Pick([]models.UploadFile{f}) {
		a.logger.Debug(context.Background(), "pick ignored, value unchanged", "slot", slot, "path", path)
	}
	a.render()
	return nil
}

// Drop delivers a file the way a drag-and-drop gesture does.
func (a *App) Drop(slot, path string) error {
	s, err := a.slot(slot)
	if err != nil {
		return a.printErr(err)
	}
	f, err := models.FileFromPath(path)
	if err != nil {
		return a.printErr(err)
	}
	s.OnDrop(&workflow.DropEvent{Files: []models.UploadFile{f}})
	a.render()
	return nil
}

func (a *App) DragOver(slot string) error {
	s, err := a.slot(slot)
	if err != nil {
		return a.printErr(err)
	}
	s.OnDragOver()
	a.render()
	return nil
}

func (a *App) DragLeave(slot string) error {
	s, err := a.slot(slot)
	if err != nil {
		return a.printErr(err)
	}
	s.OnDragLeave()
	a.render()
	return nil
}

func (a *App) Clear(slot string) error {
	s, err := a.slot(slot)
	if err != nil {
		return a.printErr(err)
	}
	s.Clear()
	a.render()
	return nil
}

// Password sets the form's password from args, or prompts for it without
// echo when args is empty. An empty answer clears the field.
func (a *App) Password(ctx context.Context, args []string) error {
	p := a.workspace.ActivePanel()
	if len(args) > 0 {
		p.SetPassword(strings.Join(args, " "))
		a.render()
		return nil
	}

	pw, err := readSecret(a.reader, a.inFd, a.localizer.T(passwordLabelKey(p.Operation()))+" ", a.out)
	if err != nil {
		return a.printErr(err)
	}
	p.SetPassword(string(pw))
	common.WipeByteArray(pw)
	a.render()
	return nil
}

func passwordLabelKey(op models.Operation) string {
	if op == models.OperationDecrypt {
		return "decrypt_password_label"
	}
	return "password_label"
}

func (a *App) Submit(ctx context.Context) error {
	err := a.executor.Submit(ctx, a.workspace.ActivePanel())
	switch {
	case errors.Is(err, workflow.ErrBusy), errors.Is(err, workflow.ErrResultShown):
		return a.printErr(err)
	case err != nil:
		return reported(err)
	}
	a.render()
	return nil
}

func (a *App) Download(ctx context.Context, kind string) error {
	k, err := models.ParseArtifactKind(kind)
	if err != nil {
		return a.printErr(err)
	}
	op := a.workspace.ActiveTab()
	if !slices.Contains(op.Artifacts(), k) {
		return a.printErr(fmt.Errorf("%s does not produce %q artifacts", op, k))
	}

	loc, err := a.downloader.Download(ctx, k)
	if err != nil {
		return reported(err)
	}
	fmt.Fprintln(a.out, a.localizer.T("saved_to")+loc)
	return nil
}

func (a *App) Copy() error {
	if err := a.presenter.CopyPassword(a.workspace.ActivePanel()); err != nil {
		return a.printErr(err)
	}
	fmt.Fprintln(a.out, a.localizer.T("copied"))
	a.render()
	return nil
}

func (a *App) Reset() error {
	if err := a.presenter.Reset(a.workspace.ActivePanel()); err != nil {
		return a.printErr(err)
	}
	a.render()
	return nil
}

// Lang switches and saves the UI language; subscribers re-render.
func (a *App) Lang(ctx context.Context, tag string) error {
	loc, err := i18n.ParseLocale(tag)
	if err != nil {
		return a.printErr(err)
	}
	if err := a.localizer.SetActiveLocale(ctx, loc); err != nil {
		return a.printErr(err)
	}
	return nil
}

func (a *App) Show() {
	a.render()
}

func (a *App) printErr(err error) error {
	fmt.Fprintln(a.errOut, a.localizer.T("error_prefix")+err.Error())
	return reported(err)
}
