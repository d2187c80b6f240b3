package retry

import (
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestPostgreSQLErrorClassifier_PgErrorCodes(t *testing.T) {
	classifier := NewPostgreSQLErrorClassifier()

	tests := []struct {
		name      string
		code      string
		transient bool
	}{
		{"connection exception", "08000", true},
		{"connection failure", "08006", true},
		{"unable to establish connection", "08001", true},
		{"insufficient resources", "53000", true},
		{"too many connections", "53300", true},
		{"out of memory", "53200", true},
		{"admin shutdown", "57P01", true},
		{"cannot connect now", "57P03", true},
		{"serialization failure", "40001", true},
		{"deadlock detected", "40P01", true},
		{"lock not available", "55P03", true},
		{"unique violation", "23505", false},
		{"foreign key violation", "23503", false},
		{"not null violation", "23502", false},
		{"syntax error", "42601", false},
		{"undefined table", "42P01", false},
		{"insufficient privilege", "42501", false},
		{"invalid text representation", "22P02", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &pgconn.PgError{Code: tt.code, Message: tt.name}
			if got := classifier.IsTransient(err); got != tt.transient {
				t.Errorf("IsTransient(PgError %s) = %v, want %v", tt.code, got, tt.transient)
			}
		})
	}
}

func TestPostgreSQLErrorClassifier_WrappedPgError(t *testing.T) {
	classifier := NewPostgreSQLErrorClassifier()

	wrapped := fmt.Errorf("query failed: %w", &pgconn.PgError{Code: "08006"})
	if !classifier.IsTransient(wrapped) {
		t.Error("Expected wrapped connection failure to be transient")
	}

	wrappedFatal := fmt.Errorf("query failed: %w", &pgconn.PgError{Code: "23505"})
	if classifier.IsTransient(wrappedFatal) {
		t.Error("Expected wrapped constraint violation to be fatal")
	}
}

func TestPostgreSQLErrorClassifier_NetworkErrors(t *testing.T) {
	classifier := NewPostgreSQLErrorClassifier()

	tests := []struct {
		name      string
		err       error
		transient bool
	}{
		{
			name:      "connection refused",
			err:       &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED},
			transient: true,
		},
		{
			name:      "connection reset",
			err:       &net.OpError{Op: "read", Err: syscall.ECONNRESET},
			transient: true,
		},
		{
			name:      "network unreachable",
			err:       &net.OpError{Op: "dial", Err: syscall.ENETUNREACH},
			transient: true,
		},
		{
			name:      "dns timeout",
			err:       &net.DNSError{Err: "lookup timed out", IsTimeout: true},
			transient: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifier.IsTransient(tt.err); got != tt.transient {
				t.Errorf("IsTransient(%v) = %v, want %v", tt.err, got, tt.transient)
			}
		})
	}
}

func TestPostgreSQLErrorClassifier_MessagePatterns(t *testing.T) {
	classifier := NewPostgreSQLErrorClassifier()

	transient := []string{
		"dial tcp 127.0.0.1:5432: connection refused",
		"read: connection reset by peer",
		"i/o timeout",
		"write: broken pipe",
		"FATAL: too many connections",
		"server closed the connection unexpectedly",
		"unexpected EOF",
		"context deadline exceeded",
	}
	for _, msg := range transient {
		if !classifier.IsTransient(errors.New(msg)) {
			t.Errorf("Expected %q to be transient", msg)
		}
	}

	fatal := []string{
		"permission denied for table users",
		"column \"nickname\" does not exist",
	}
	for _, msg := range fatal {
		if classifier.IsTransient(errors.New(msg)) {
			t.Errorf("Expected %q to be fatal", msg)
		}
	}
}

func TestPostgreSQLErrorClassifier_NoRowsIsFatal(t *testing.T) {
	classifier := NewPostgreSQLErrorClassifier()

	if classifier.IsTransient(pgx.ErrNoRows) {
		t.Error("pgx.ErrNoRows must never be retried")
	}
}

func TestPostgreSQLErrorClassifier_NilError(t *testing.T) {
	classifier := NewPostgreSQLErrorClassifier()

	if classifier.IsTransient(nil) {
		t.Error("IsTransient(nil) must be false")
	}
}
