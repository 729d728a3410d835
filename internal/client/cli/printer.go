package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/securedocs/internal/client/workflow"
)

// printView draws v as plain text.
func printView(w io.Writer, v workflow.View) {
	var b strings.Builder

	fmt.Fprintf(&b, "\n%s · %s [%s]\n", v.Logo, v.Title, v.Lang)
	fmt.Fprintf(&b, "%s\n\n", v.Subtitle)

	tabs := make([]string, 0, len(v.Tabs))
	for _, t := range v.Tabs {
		if t.Active {
			tabs = append(tabs, "["+t.Label+"]")
		} else {
			tabs = append(tabs, " "+t.Label+" ")
		}
	}
	fmt.Fprintf(&b, "  %s\n\n", strings.Join(tabs, " | "))

	switch {
	case v.Active.Result != nil:
		writeResult(&b, v.Active.Result)
	case v.Active.Form != nil:
		writeForm(&b, v.Active.Form)
	}

	fmt.Fprintf(&b, "\n  %s\n", v.Footer)
	_, _ = io.WriteString(w, b.String())
}

func writeForm(b *strings.Builder, f *workflow.FormView) {
	for _, s := range f.Slots {
		marker := "○"
		if s.DragOver {
			marker = "◎"
		}

		label := string(s.ID)
		if s.Label != "" {
			label = s.Label
		}

		if s.Display == workflow.SlotPopulated {
			fmt.Fprintf(b, "  %s %s: %s\n", marker, label, s.FileName)
		} else {
			fmt.Fprintf(b, "  %s %s: %s\n", marker, label, s.Prompt)
		}
	}

	pw := f.PasswordPlaceholder
	if f.PasswordSet {
		pw = "********"
	}
	fmt.Fprintf(b, "\n  %s %s\n", f.PasswordLabel, pw)
	if f.PasswordHint != "" {
		fmt.Fprintf(b, "    %s\n", f.PasswordHint)
	}

	if f.SubmitDisabled {
		fmt.Fprintf(b, "\n  ( %s )\n", f.SubmitLabel)
	} else {
		fmt.Fprintf(b, "\n  [ %s ]\n", f.SubmitLabel)
	}
}

func writeResult(b *strings.Builder, r *workflow.ResultView) {
	fmt.Fprintf(b, "  ✓ %s\n\n", r.Heading)

	width := 0
	for _, f := range r.Fields {
		width = max(width, len([]rune(f.Label)))
	}
	for _, f := range r.Fields {
		pad := strings.Repeat(" ", width-len([]rune(f.Label)))
		fmt.Fprintf(b, "  %s%s %s\n", f.Label, pad, f.Value)
	}

	if r.Password != nil {
		fmt.Fprintf(b, "\n  %s %s  [%s]\n", r.Password.Label, r.Password.Text, r.Password.CopyGlyph)
	}

	b.WriteString("\n")
	for _, d := range r.Downloads {
		fmt.Fprintf(b, "  download %-10s %s\n", d.Kind, d.Label)
	}
	if r.Warning != "" {
		fmt.Fprintf(b, "\n  ! %s\n", r.Warning)
	}
	fmt.Fprintf(b, "\n  reset  %s\n", r.ResetLabel)
}
