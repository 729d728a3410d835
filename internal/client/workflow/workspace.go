package workflow

import (
	"fmt"
	"sync"

	"github.com/dmitrijs2005/securedocs/internal/client/models"
	"github.com/dmitrijs2005/securedocs/internal/i18n"
)

// Localization is the part of i18n.Localizer the view needs.
type Localization interface {
	Translator
	Active() i18n.Locale
}

// Workspace is the whole screen: both panels, the selected tab, the
// session and the localizer.
type Workspace struct {
	mu     sync.RWMutex
	active models.Operation

	encrypt *Panel
	decrypt *Panel

	Session   *Session
	Localizer Localization
}

func NewWorkspace(session *Session, loc Localization) *Workspace {
	return &Workspace{
		active:    models.OperationEncrypt,
		encrypt:   NewEncryptPanel(),
		decrypt:   NewDecryptPanel(),
		Session:   session,
		Localizer: loc,
	}
}

func (w *Workspace) SelectTab(op models.Operation) error {
	if op != models.OperationEncrypt && op != models.OperationDecrypt {
		return fmt.Errorf("unknown tab %q", op)
	}
	w.mu.Lock()
	w.active = op
	w.mu.Unlock()
	return nil
}

func (w *Workspace) ActiveTab() models.Operation {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.active
}

func (w *Workspace) ActivePanel() *Panel {
	return w.Panel(w.ActiveTab())
}

func (w *Workspace) Panel(op models.Operation) *Panel {
	if op == models.OperationDecrypt {
		return w.decrypt
	}
	return w.encrypt
}
