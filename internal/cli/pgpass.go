package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/vvka-141/userdb/internal/tui"
	"github.com/vvka-141/userdb/pkg/userdb"
)

// pgpassPath returns the platform-appropriate .pgpass file path.
func pgpassPath() string {
	if custom := os.Getenv("PGPASSFILE"); custom != "" {
		return custom
	}
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("APPDATA"), "postgresql", "pgpass.conf")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pgpass")
}

// lookupPgpass searches the .pgpass file for a password matching the
// connection, following PostgreSQL semantics: fields are
// host:port:database:username:password and "*" matches anything.
func lookupPgpass(cfg *userdb.ConnectionConfig) (string, bool) {
	path := pgpassPath()
	if path == "" {
		return "", false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}

	port := fmt.Sprintf("%d", cfg.Port)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := splitPgpassLine(line)
		if len(fields) != 5 {
			continue
		}

		if pgpassFieldMatches(fields[0], cfg.Host) &&
			pgpassFieldMatches(fields[1], port) &&
			pgpassFieldMatches(fields[2], cfg.Database) &&
			pgpassFieldMatches(fields[3], cfg.Username) {
			return fields[4], true
		}
	}

	return "", false
}

func pgpassFieldMatches(field, value string) bool {
	return field == "*" || field == value
}

// splitPgpassLine splits a .pgpass line on unescaped colons and unescapes
// \: and \\ within fields.
func splitPgpassLine(line string) []string {
	var fields []string
	var cur strings.Builder
	escaped := false

	for _, r := range line {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == ':':
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	fields = append(fields, cur.String())
	return fields
}

// offerSavePgpass prompts the user to save the password to .pgpass after an
// interactive password prompt. Does nothing if the password is empty, the
// terminal is non-interactive, or the user declines.
func offerSavePgpass(cfg *userdb.ConnectionConfig) {
	if cfg.Password == "" || !tui.IsInteractive() {
		return
	}

	fmt.Fprintln(os.Stderr, "")
	if !tui.PromptContinue("Save password to .pgpass for future sessions?") {
		fmt.Fprintln(os.Stderr, "Tip: provide password via $PGPASSWORD, .pgpass, or connection string.")
		return
	}

	if err := writePgpassEntry(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to save .pgpass: %v\n", err)
		return
	}

	fmt.Fprintf(os.Stderr, "Saved to %s\n", pgpassPath())
}

// writePgpassEntry adds or updates a .pgpass entry for the given connection.
func writePgpassEntry(cfg *userdb.ConnectionConfig) error {
	path := pgpassPath()
	if path == "" {
		return fmt.Errorf("cannot determine home directory")
	}

	// Ensure parent directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	host := escapePgpass(cfg.Host)
	port := fmt.Sprintf("%d", cfg.Port)
	db := escapePgpass(cfg.Database)
	user := escapePgpass(cfg.Username)
	password := escapePgpass(cfg.Password)

	newEntry := fmt.Sprintf("%s:%s:%s:%s:%s", host, port, db, user, password)
	matchPrefix := fmt.Sprintf("%s:%s:%s:%s:", host, port, db, user)

	var lines []string
	if data, err := os.ReadFile(path); err == nil {
		lines = strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read existing .pgpass: %w", err)
	}

	// Replace existing entry or append
	found := false
	for i, line := range lines {
		if strings.HasPrefix(line, matchPrefix) {
			lines[i] = newEntry
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, newEntry)
	}

	content := strings.Join(lines, "\n") + "\n"

	// Write with restricted permissions (0600 required by PostgreSQL on Unix)
	return os.WriteFile(path, []byte(content), 0600)
}

// escapePgpass escapes colons and backslashes in a .pgpass field value.
func escapePgpass(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `:`, `\:`)
	return s
}
