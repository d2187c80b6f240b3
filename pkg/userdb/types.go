package userdb

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents a row in the users table.
// ID is assigned by the store on creation and never changes afterwards.
// Every persisted user has both Name and Email set.
type User struct {
	ID    uuid.UUID
	Name  string
	Email string
}

// NewUser holds the fields required to create a user.
// Kept separate from User so callers cannot smuggle in an ID.
type NewUser struct {
	Name  string
	Email string
}

// Validate checks that both required fields are present and non-blank.
// It returns a multi-error wrapping ErrInvalidInput so callers can test
// with errors.Is().
func (n *NewUser) Validate() error {
	var errs []error

	if strings.TrimSpace(n.Name) == "" {
		errs = append(errs, fmt.Errorf("name is required: %w", ErrInvalidInput))
	}
	if strings.TrimSpace(n.Email) == "" {
		errs = append(errs, fmt.Errorf("email is required: %w", ErrInvalidInput))
	}

	return errors.Join(errs...)
}

// UserUpdate describes a partial update. Nil fields are left unchanged;
// the store only emits SET clauses for the fields that are set.
type UserUpdate struct {
	Name  *string
	Email *string
}

// Validate requires at least one field to be set, and set fields to be
// non-blank. Returns a multi-error wrapping ErrInvalidInput.
func (u *UserUpdate) Validate() error {
	if u.Name == nil && u.Email == nil {
		return fmt.Errorf("at least one of name or email must be provided: %w", ErrInvalidInput)
	}

	var errs []error
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		errs = append(errs, fmt.Errorf("name cannot be blank: %w", ErrInvalidInput))
	}
	if u.Email != nil && strings.TrimSpace(*u.Email) == "" {
		errs = append(errs, fmt.Errorf("email cannot be blank: %w", ErrInvalidInput))
	}

	return errors.Join(errs...)
}

// ConnectionConfig represents parsed connection parameters.
type ConnectionConfig struct {
	Host     string
	Port     int
	Database string
	Username string
	Password string
	SSLMode  string

	// AuthMethod indicates the authentication mechanism to use
	AuthMethod AuthMethod

	// Additional connection parameters
	AppName          string
	ConnectTimeout   time.Duration
	AdditionalParams map[string]string

	// Azure Entra ID authentication parameters (used when AuthMethod is AuthMethodAzureEntraID)
	// If all three are provided, Service Principal authentication is used.
	// If none are provided, DefaultAzureCredential chain is used.
	AzureTenantID     string
	AzureClientID     string
	AzureClientSecret string

	// AWSRegion is required when AuthMethod is AuthMethodAWSIAM.
	AWSRegion string

	// GoogleInstance is the Cloud SQL instance connection name
	// (project:region:instance), required when AuthMethod is AuthMethodGoogleIAM.
	GoogleInstance string
}

// Validate checks if the ConnectionConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *ConnectionConfig) Validate() error {
	var errs []error

	if c.Host == "" {
		errs = append(errs, fmt.Errorf("host is required: %w", ErrInvalidConfig))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port must be between 1 and 65535: %w", ErrInvalidConfig))
	}
	if c.Database == "" {
		errs = append(errs, fmt.Errorf("database is required: %w", ErrInvalidConfig))
	}
	if !c.AuthMethod.IsValid() {
		errs = append(errs, fmt.Errorf("unknown auth method %d: %w", c.AuthMethod, ErrInvalidConfig))
	}
	if c.AuthMethod == AuthMethodAWSIAM && c.AWSRegion == "" {
		errs = append(errs, fmt.Errorf("AWS IAM auth requires a region: %w", ErrInvalidConfig))
	}
	if c.AuthMethod == AuthMethodGoogleIAM && c.GoogleInstance == "" {
		errs = append(errs, fmt.Errorf("Google IAM auth requires an instance connection name: %w", ErrInvalidConfig))
	}
	if c.ConnectTimeout < 0 {
		errs = append(errs, fmt.Errorf("connect timeout cannot be negative: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// AuthMethod represents the type of authentication to use.
type AuthMethod int

const (
	AuthMethodStandard     AuthMethod = iota // Username/Password
	AuthMethodAWSIAM                         // AWS IAM Database Authentication
	AuthMethodGoogleIAM                      // Google Cloud SQL IAM
	AuthMethodAzureEntraID                   // Azure Active Directory (Entra ID)
)

// String returns a human-readable string representation of the AuthMethod.
func (a AuthMethod) String() string {
	switch a {
	case AuthMethodStandard:
		return "Standard"
	case AuthMethodAWSIAM:
		return "AWS IAM"
	case AuthMethodGoogleIAM:
		return "Google IAM"
	case AuthMethodAzureEntraID:
		return "Azure Entra ID"
	default:
		return fmt.Sprintf("Unknown(%d)", a)
	}
}

// IsValid returns true if the AuthMethod is a valid, defined value.
func (a AuthMethod) IsValid() bool {
	return a >= AuthMethodStandard && a <= AuthMethodAzureEntraID
}
