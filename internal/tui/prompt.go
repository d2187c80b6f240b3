package tui

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// PromptContinue asks a yes/no question on the terminal. Returns true in
// non-interactive mode so scripted runs are never blocked.
func PromptContinue(message string) bool {
	if !IsInteractive() {
		return true
	}

	fmt.Printf("%s [Y/n]: ", message)

	var response string
	fmt.Scanln(&response)

	return response == "" || response == "y" || response == "Y"
}

// PromptPassword reads a password from the terminal without echo.
// Returns an error in non-interactive mode; callers should fall back to
// $PGPASSWORD or .pgpass.
func PromptPassword(prompt string) (string, error) {
	if !IsInteractive() {
		return "", fmt.Errorf("cannot prompt for password: not a terminal (use $PGPASSWORD or .pgpass)")
	}

	fmt.Fprintf(os.Stderr, "%s: ", prompt)
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(pw), nil
}
