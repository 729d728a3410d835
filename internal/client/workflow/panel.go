package workflow

import (
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/securedocs/internal/client/models"
)

var (
	ErrNoFileSelected = errors.New("no file selected")
	ErrFileTooLarge   = errors.New("file too large")
	ErrBusy           = errors.New("submission in progress")
	ErrResultShown    = errors.New("result is shown, reset the panel first")
	ErrNoArtifact     = errors.New("no artifact available")
	ErrNoPassword     = errors.New("no generated password to copy")
	ErrUnknownSlot    = errors.New("slot does not belong to this panel")
)

// Panel is one tab's form and result. Phases of different panels are
// independent.
type Panel struct {
	mu sync.Mutex

	op      models.Operation
	primary *Slot
	key     *Slot // decrypt only

	phase    Phase
	password string

	encrypted *models.EncryptResult
	decrypted *models.DecryptResult
	copiedAt  time.Time
}

func NewEncryptPanel() *Panel {
	return &Panel{op: models.OperationEncrypt, primary: NewSlot(SlotEncrypt)}
}

func NewDecryptPanel() *Panel {
	return &Panel{
		op:      models.OperationDecrypt,
		primary: NewSlot(SlotDecrypt),
		key:     NewSlot(SlotKey),
	}
}

func (p *Panel) Operation() models.Operation { return p.op }

// Slots returns the panel's upload slots in form order.
func (p *Panel) Slots() []*Slot {
	if p.key != nil {
		return []*Slot{p.primary, p.key}
	}
	return []*Slot{p.primary}
}

func (p *Panel) Slot(id SlotID) (*Slot, error) {
	for _, s := range p.Slots() {
		if s.ID() == id {
			return s, nil
		}
	}
	return nil, ErrUnknownSlot
}

func (p *Panel) Phase() Phase {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.phase
}

// SetPassword sets the password field of the form.
func (p *Panel) SetPassword(pw string) {
	p.mu.Lock()
	p.password = pw
	p.mu.Unlock()
}

func (p *Panel) Password() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.password
}

// EncryptResult returns the shown encrypt result, or nil.
func (p *Panel) EncryptResult() *models.EncryptResult {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.encrypted
}

// DecryptResult returns the shown decrypt result, or nil.
func (p *Panel) DecryptResult() *models.DecryptResult {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.decrypted
}

// begin moves an idle panel into PhaseSubmitting and snapshots the form.
func (p *Panel) begin() (models.SubmissionRequest, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.phase {
	case PhaseSubmitting, PhaseErrorShown:
		return models.SubmissionRequest{}, ErrBusy
	case PhaseResultShown:
		return models.SubmissionRequest{}, ErrResultShown
	}

	req := models.SubmissionRequest{
		Operation: p.op,
		File:      p.primary.File(),
		Password:  p.password,
	}
	if p.key != nil {
		req.KeyFile = p.key.File()
	}
	p.phase = PhaseSubmitting
	return req, nil
}

func (p *Panel) setPhase(ph Phase) {
	p.mu.Lock()
	p.phase = ph
	p.mu.Unlock()
}

// release leaves PhaseSubmitting for the idle form unless a result was
// shown in between.
func (p *Panel) release() {
	p.mu.Lock()
	if p.phase == PhaseSubmitting {
		p.phase = PhaseIdleForm
	}
	p.mu.Unlock()
}

func (p *Panel) showEncrypt(res *models.EncryptResult) {
	p.mu.Lock()
	p.encrypted = res
	p.copiedAt = time.Time{}
	p.phase = PhaseResultShown
	p.mu.Unlock()
}

func (p *Panel) showDecrypt(res *models.DecryptResult) {
	p.mu.Lock()
	p.decrypted = res
	p.phase = PhaseResultShown
	p.mu.Unlock()
}

func (p *Panel) markCopied(at time.Time) {
	p.mu.Lock()
	p.copiedAt = at
	p.mu.Unlock()
}

// reset restores the default form and clears every slot.
func (p *Panel) reset() error {
	p.mu.Lock()
	if p.phase == PhaseSubmitting {
		p.mu.Unlock()
		return ErrBusy
	}
	p.phase = PhaseIdleForm
	p.password = ""
	p.encrypted = nil
	p.decrypted = nil
	p.copiedAt = time.Time{}
	p.mu.Unlock()

	for _, s := range p.Slots() {
		s.Clear()
	}
	return nil
}

type panelState struct {
	phase     Phase
	password  string
	encrypted *models.EncryptResult
	decrypted *models.DecryptResult
	copiedAt  time.Time
}

func (p *Panel) state() panelState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return panelState{
		phase:     p.phase,
		password:  p.password,
		encrypted: p.encrypted,
		decrypted: p.decrypted,
		copiedAt:  p.copiedAt,
	}
}
