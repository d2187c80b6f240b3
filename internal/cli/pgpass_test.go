package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vvka-141/userdb/pkg/userdb"
)

func TestEscapePgpass(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"simple", "simple"},
		{"pass:word", `pass\:word`},
		{`back\slash`, `back\\slash`},
		{`both\:chars`, `both\\\:chars`},
		{"", ""},
		{"multi:colon:password", `multi\:colon\:password`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := escapePgpass(tt.input)
			if got != tt.want {
				t.Errorf("escapePgpass(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitPgpassLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "plain fields",
			line: "localhost:5432:mydb:user:secret",
			want: []string{"localhost", "5432", "mydb", "user", "secret"},
		},
		{
			name: "escaped colon in password",
			line: `localhost:5432:mydb:user:pa\:ss`,
			want: []string{"localhost", "5432", "mydb", "user", "pa:ss"},
		},
		{
			name: "escaped backslash",
			line: `localhost:5432:mydb:user:pa\\ss`,
			want: []string{"localhost", "5432", "mydb", "user", `pa\ss`},
		},
		{
			name: "wildcards",
			line: "*:*:*:user:secret",
			want: []string{"*", "*", "*", "user", "secret"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitPgpassLine(tt.line)
			if len(got) != len(tt.want) {
				t.Fatalf("splitPgpassLine(%q) = %v, want %v", tt.line, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("field %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLookupPgpass(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pgpass")
	t.Setenv("PGPASSFILE", path)

	content := strings.Join([]string{
		"# comment line",
		"otherhost:5432:otherdb:otheruser:otherpass",
		"localhost:5432:mydb:user:secret",
		"*:*:*:fallback:wildcardpass",
	}, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		cfg    userdb.ConnectionConfig
		want   string
		wantOK bool
	}{
		{
			name:   "exact match",
			cfg:    userdb.ConnectionConfig{Host: "localhost", Port: 5432, Database: "mydb", Username: "user"},
			want:   "secret",
			wantOK: true,
		},
		{
			name:   "wildcard match",
			cfg:    userdb.ConnectionConfig{Host: "anyhost", Port: 9999, Database: "anydb", Username: "fallback"},
			want:   "wildcardpass",
			wantOK: true,
		},
		{
			name:   "no match",
			cfg:    userdb.ConnectionConfig{Host: "localhost", Port: 5432, Database: "mydb", Username: "nobody"},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := lookupPgpass(&tt.cfg)
			if ok != tt.wantOK {
				t.Fatalf("lookupPgpass() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("lookupPgpass() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLookupPgpass_MissingFile(t *testing.T) {
	t.Setenv("PGPASSFILE", filepath.Join(t.TempDir(), "does-not-exist"))

	cfg := userdb.ConnectionConfig{Host: "localhost", Port: 5432, Database: "mydb", Username: "user"}
	if _, ok := lookupPgpass(&cfg); ok {
		t.Error("lookupPgpass() ok = true for missing file, want false")
	}
}

func TestWritePgpassEntry_NewFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pgpass.conf")
	t.Setenv("PGPASSFILE", path)

	cfg := &userdb.ConnectionConfig{
		Host:     "localhost",
		Port:     5432,
		Database: "testdb",
		Username: "user",
		Password: "secret",
	}

	if err := writePgpassEntry(cfg); err != nil {
		t.Fatalf("writePgpassEntry() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read written file: %v", err)
	}
	if got := string(data); got != "localhost:5432:testdb:user:secret\n" {
		t.Errorf("written content = %q", got)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("file permissions = %o, want 0600", perm)
	}
}

func TestWritePgpassEntry_ReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pgpass.conf")
	t.Setenv("PGPASSFILE", path)

	existing := "localhost:5432:testdb:user:oldsecret\notherhost:5432:db:u:p\n"
	if err := os.WriteFile(path, []byte(existing), 0600); err != nil {
		t.Fatal(err)
	}

	cfg := &userdb.ConnectionConfig{
		Host:     "localhost",
		Port:     5432,
		Database: "testdb",
		Username: "user",
		Password: "newsecret",
	}

	if err := writePgpassEntry(cfg); err != nil {
		t.Fatalf("writePgpassEntry() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if !strings.Contains(content, "localhost:5432:testdb:user:newsecret") {
		t.Errorf("entry was not replaced: %q", content)
	}
	if strings.Contains(content, "oldsecret") {
		t.Errorf("old entry still present: %q", content)
	}
	if !strings.Contains(content, "otherhost:5432:db:u:p") {
		t.Errorf("unrelated entry was lost: %q", content)
	}
}

func TestWritePgpassEntry_RoundTripsWithLookup(t *testing.T) {
	t.Setenv("PGPASSFILE", filepath.Join(t.TempDir(), "pgpass"))

	cfg := &userdb.ConnectionConfig{
		Host:     "localhost",
		Port:     5432,
		Database: "mydb",
		Username: "user",
		Password: "se:cr\\et",
	}

	if err := writePgpassEntry(cfg); err != nil {
		t.Fatalf("writePgpassEntry() error = %v", err)
	}

	got, ok := lookupPgpass(cfg)
	if !ok {
		t.Fatal("lookupPgpass() did not find written entry")
	}
	if got != cfg.Password {
		t.Errorf("lookupPgpass() = %q, want %q", got, cfg.Password)
	}
}
