package workflow

import (
	"time"

	"github.com/dmitrijs2005/securedocs/internal/client/models"
)

// View is everything a front end displays. It holds no references back
// into the workspace.
type View struct {
	Lang     string
	Title    string
	Logo     string
	Subtitle string
	Footer   string

	Tabs   []TabView
	Active PanelView
}

type TabView struct {
	Operation models.Operation
	Label     string
	Active    bool
}

// PanelView shows either Form or Result.
type PanelView struct {
	Operation models.Operation
	Phase     Phase
	Form      *FormView
	Result    *ResultView
}

type FormView struct {
	Slots []SlotView

	PasswordLabel       string
	PasswordPlaceholder string
	PasswordHint        string
	PasswordSet         bool

	SubmitLabel    string
	SubmitDisabled bool
}

// SlotView sets Prompt when empty and FileName when populated.
type SlotView struct {
	ID       SlotID
	Label    string
	Display  SlotDisplay
	Prompt   string
	FileName string
	DragOver bool
}

type ResultView struct {
	Heading    string
	Fields     []ResultField
	Password   *PasswordView
	Downloads  []DownloadView
	Warning    string
	ResetLabel string
}

type ResultField struct {
	Label string
	Value string
}

type PasswordView struct {
	Label     string
	Text      string
	CopyGlyph string
}

type DownloadView struct {
	Kind  models.ArtifactKind
	Label string
}

// Render builds the View for the active tab at time now.
func Render(w *Workspace, now time.Time) View {
	tr := w.Localizer
	active := w.ActiveTab()

	v := View{
		Lang:     string(tr.Active()),
		Title:    tr.T("title"),
		Logo:     tr.T("logo"),
		Subtitle: tr.T("subtitle"),
		Footer:   tr.T("footer"),
		Tabs: []TabView{
			{Operation: models.OperationEncrypt, Label: tr.T("tab_encrypt"), Active: active == models.OperationEncrypt},
			{Operation: models.OperationDecrypt, Label: tr.T("tab_decrypt"), Active: active == models.OperationDecrypt},
		},
	}
	v.Active = renderPanel(w.Panel(active), tr, now)
	return v
}

func renderPanel(p *Panel, tr Translator, now time.Time) PanelView {
	st := p.state()
	pv := PanelView{Operation: p.Operation(), Phase: st.phase}

	if st.phase == PhaseResultShown {
		var rv ResultView
		switch {
		case st.encrypted != nil && p.Operation() == models.OperationEncrypt:
			rv = PresentEncrypt(st.encrypted, tr, st.copiedAt, now)
		case st.decrypted != nil:
			rv = PresentDecrypt(st.decrypted, tr)
		}
		pv.Result = &rv
		return pv
	}

	pv.Form = renderForm(p, st, tr)
	return pv
}

func renderForm(p *Panel, st panelState, tr Translator) *FormView {
	f := &FormView{PasswordSet: st.password != ""}

	if p.Operation() == models.OperationEncrypt {
		f.PasswordLabel = tr.T("password_label")
		f.PasswordPlaceholder = tr.T("password_placeholder")
		f.PasswordHint = tr.T("password_hint")
		f.SubmitLabel = tr.T("btn_encrypt")
	} else {
		f.PasswordLabel = tr.T("decrypt_password_label")
		f.PasswordPlaceholder = tr.T("decrypt_password_placeholder")
		f.SubmitLabel = tr.T("btn_decrypt")
	}

	if st.phase == PhaseSubmitting {
		f.SubmitLabel = tr.T("btn_processing")
		f.SubmitDisabled = true
	}

	for _, s := range p.Slots() {
		f.Slots = append(f.Slots, renderSlot(s, tr))
	}
	return f
}

var slotLabels = map[SlotID]string{
	SlotDecrypt: "upload_encrypted",
	SlotKey:     "upload_key",
}

func renderSlot(s *Slot, tr Translator) SlotView {
	sv := SlotView{ID: s.ID(), DragOver: s.DragOver()}
	if key, ok := slotLabels[s.ID()]; ok {
		sv.Label = tr.T(key)
	}

	if f := s.File(); f != nil {
		sv.Display = SlotPopulated
		sv.FileName = f.Name
	} else {
		sv.Display = SlotEmpty
		sv.Prompt = tr.T("upload_title") + " " + tr.T("upload_subtitle")
	}
	return sv
}
