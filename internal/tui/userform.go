package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// UserFormResult carries the values collected by the user form.
type UserFormResult struct {
	Name      string
	Email     string
	Cancelled bool
}

// RunUserForm runs the interactive form for creating or editing a user.
// Initial values pre-fill the fields (empty for a new user). Returns an
// error if the terminal is non-interactive or the TUI fails to start.
func RunUserForm(title, initialName, initialEmail string) (*UserFormResult, error) {
	if !IsInteractive() {
		return nil, fmt.Errorf("cannot run interactive form: not a terminal (provide --name and --email flags)")
	}

	nameField := NewTextField("Name", "Ada Lovelace").
		WithRequired(true).
		WithValue(initialName)

	emailField := NewTextField("Email", "ada@example.com").
		WithRequired(true).
		WithValidator(validateEmail).
		WithValue(initialEmail)

	form := NewForm(title, nameField, emailField)

	model, err := tea.NewProgram(form).Run()
	if err != nil {
		return nil, fmt.Errorf("form failed: %w", err)
	}

	final, ok := model.(Form)
	if !ok {
		return nil, fmt.Errorf("unexpected form model type %T", model)
	}

	if final.Cancelled() || !final.Submitted() {
		return &UserFormResult{Cancelled: true}, nil
	}

	return &UserFormResult{
		Name:  strings.TrimSpace(final.FieldValue(0)),
		Email: strings.TrimSpace(final.FieldValue(1)),
	}, nil
}

// validateEmail is a light sanity check, not full RFC 5322 validation.
// The database remains the source of truth for uniqueness.
func validateEmail(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil // required check handles empty
	}
	at := strings.Index(s, "@")
	if at <= 0 || at == len(s)-1 {
		return fmt.Errorf("invalid email address")
	}
	return nil
}
