package workflow

import (
	"fmt"
	"sync"

	"github.com/dmitrijs2005/securedocs/internal/client/models"
)

// SlotID names an upload slot.
type SlotID string

const (
	SlotEncrypt SlotID = "encrypt"
	SlotDecrypt SlotID = "decrypt"
	SlotKey     SlotID = "key"
)

// ParseSlotID accepts "encrypt", "decrypt" or "key".
func ParseSlotID(s string) (SlotID, error) {
	switch id := SlotID(s); id {
	case SlotEncrypt, SlotDecrypt, SlotKey:
		return id, nil
	default:
		return "", fmt.Errorf("unknown slot %q", s)
	}
}

// SlotDisplay is what an upload zone shows: the prompt or the chosen name,
// never both.
type SlotDisplay int

const (
	SlotEmpty SlotDisplay = iota
	SlotPopulated
)

func (d SlotDisplay) String() string {
	if d == SlotPopulated {
		return "populated"
	}
	return "empty"
}

// DropEvent carries the files of a drop gesture.
type DropEvent struct {
	Files []models.UploadFile

	defaultPrevented bool
}

// PreventDefault suppresses the platform's own handling of the drop, such
// as opening the file.
func (e *DropEvent) PreventDefault() { e.defaultPrevented = true }

func (e *DropEvent) DefaultPrevented() bool { return e.defaultPrevented }

// Slot tracks the file chosen for one upload input.
type Slot struct {
	mu       sync.Mutex
	id       SlotID
	file     *models.UploadFile
	dragOver bool
	// inputValue mirrors the file input control; a pick only registers
	// when it changes the value.
	inputValue string
}

func NewSlot(id SlotID) *Slot {
	return &Slot{id: id}
}

func (s *Slot) ID() SlotID { return s.id }

// Pick models the input control's change event. It reports false when the
// choice equals the control's current value, in which case nothing fires.
func (s *Slot) Pick(files []models.UploadFile) bool {
	if len(files) == 0 {
		return false
	}
	value := inputValueOf(files[0])

	s.mu.Lock()
	if value == s.inputValue {
		s.mu.Unlock()
		return false
	}
	s.inputValue = value
	s.mu.Unlock()

	s.OnFilesProvided(files)
	return true
}

// OnFilesProvided adopts the first file; an empty list changes nothing.
func (s *Slot) OnFilesProvided(files []models.UploadFile) {
	if len(files) == 0 {
		return
	}
	f := files[0]

	s.mu.Lock()
	s.file = &f
	s.mu.Unlock()
}

func (s *Slot) OnDragOver() {
	s.mu.Lock()
	s.dragOver = true
	s.mu.Unlock()
}

func (s *Slot) OnDragLeave() {
	s.mu.Lock()
	s.dragOver = false
	s.mu.Unlock()
}

// OnDrop behaves like OnFilesProvided and marks ev default-prevented.
func (s *Slot) OnDrop(ev *DropEvent) {
	ev.PreventDefault()

	s.mu.Lock()
	s.dragOver = false
	if len(ev.Files) > 0 {
		s.inputValue = inputValueOf(ev.Files[0])
	}
	s.mu.Unlock()

	s.OnFilesProvided(ev.Files)
}

// Clear drops the chosen file and resets the input value so picking the
// same path again registers. Clearing an empty slot is a no-op.
func (s *Slot) Clear() {
	s.mu.Lock()
	s.file = nil
	s.inputValue = ""
	s.dragOver = false
	s.mu.Unlock()
}

// File returns the chosen file or nil.
func (s *Slot) File() *models.UploadFile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return nil
	}
	f := *s.file
	return &f
}

func (s *Slot) Display() SlotDisplay {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file != nil {
		return SlotPopulated
	}
	return SlotEmpty
}

func (s *Slot) DragOver() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dragOver
}

func (s *Slot) InputValue() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inputValue
}

func inputValueOf(f models.UploadFile) string {
	if f.Path != "" {
		return f.Path
	}
	return f.Name
}
