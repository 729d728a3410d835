package workflow

// Phase is the display mode of one panel.
type Phase int

const (
	PhaseIdleForm Phase = iota
	PhaseSubmitting
	PhaseResultShown
	// PhaseErrorShown lasts while the error notification is displayed and
	// then returns to PhaseIdleForm.
	PhaseErrorShown
)

func (p Phase) String() string {
	switch p {
	case PhaseIdleForm:
		return "idle-form"
	case PhaseSubmitting:
		return "submitting"
	case PhaseResultShown:
		return "result-shown"
	case PhaseErrorShown:
		return "error-shown"
	default:
		return "unknown"
	}
}
