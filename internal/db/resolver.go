package db

import (
	"fmt"
	"os"
	"strconv"

	"github.com/vvka-141/userdb/internal/config"
	"github.com/vvka-141/userdb/pkg/userdb"
)

// GranularConnFlags represents connection parameters from CLI flags.
// These follow PostgreSQL standard flag conventions (-h, -p, -U, -d).
//
// Note: Password is NOT included as a CLI flag for security reasons.
// Use one of these methods instead:
//  1. $PGPASSWORD environment variable
//  2. .pgpass file (PostgreSQL standard)
//  3. Connection string with embedded password
type GranularConnFlags struct {
	Host     string
	Port     int
	Username string
	Database string
	SSLMode  string
}

// IsEmpty returns true if no connection-related granular flags were provided.
// The database flag is excluded because it may override the database from a
// connection string.
func (g *GranularConnFlags) IsEmpty() bool {
	return g.Host == "" && g.Port == 0 && g.Username == "" && g.SSLMode == ""
}

// AzureFlags represents Azure Entra ID CLI flags.
// These override the corresponding AZURE_* environment variables.
// Note: Client secret is NOT included as a CLI flag for security reasons.
// Use AZURE_CLIENT_SECRET environment variable instead.
type AzureFlags struct {
	TenantID string // Overrides AZURE_TENANT_ID
	ClientID string // Overrides AZURE_CLIENT_ID
}

// IsEmpty returns true if no Azure flags were provided.
func (a *AzureFlags) IsEmpty() bool {
	return a == nil || (a.TenantID == "" && a.ClientID == "")
}

// AWSFlags represents AWS RDS IAM CLI flags.
type AWSFlags struct {
	Region string // Overrides AWS_REGION
	UseIAM bool   // Explicit opt-in to RDS IAM token authentication
}

// GoogleFlags represents Google Cloud SQL IAM CLI flags.
type GoogleFlags struct {
	Instance string // Instance connection name (project:region:instance)
}

// EnvVars represents PostgreSQL standard environment variables.
// See: https://www.postgresql.org/docs/current/libpq-envars.html
type EnvVars struct {
	PGHOST       string // PostgreSQL server host
	PGPORT       string // PostgreSQL server port
	PGUSER       string // PostgreSQL username
	PGPASSWORD   string // PostgreSQL password (discouraged, use .pgpass instead)
	PGDATABASE   string // Default database name
	PGSSLMODE    string // SSL mode
	DATABASE_URL string // Full connection string (Heroku/Rails convention)

	// Azure Entra ID environment variables (Azure SDK standard names)
	AZURE_TENANT_ID     string // Azure AD tenant/directory ID
	AZURE_CLIENT_ID     string // Azure AD application/client ID
	AZURE_CLIENT_SECRET string // Azure AD client secret (for Service Principal auth)

	AWS_REGION string // AWS region for RDS IAM token signing
}

// LoadFromEnvironment loads PostgreSQL and cloud provider environment variables.
// This follows standard PostgreSQL client behavior and cloud SDK conventions.
func LoadFromEnvironment() *EnvVars {
	return &EnvVars{
		PGHOST:              os.Getenv("PGHOST"),
		PGPORT:              os.Getenv("PGPORT"),
		PGUSER:              os.Getenv("PGUSER"),
		PGPASSWORD:          os.Getenv("PGPASSWORD"),
		PGDATABASE:          os.Getenv("PGDATABASE"),
		PGSSLMODE:           os.Getenv("PGSSLMODE"),
		DATABASE_URL:        os.Getenv("DATABASE_URL"),
		AZURE_TENANT_ID:     os.Getenv("AZURE_TENANT_ID"),
		AZURE_CLIENT_ID:     os.Getenv("AZURE_CLIENT_ID"),
		AZURE_CLIENT_SECRET: os.Getenv("AZURE_CLIENT_SECRET"),
		AWS_REGION:          os.Getenv("AWS_REGION"),
	}
}

// ResolveConnectionParams resolves connection parameters using
// PostgreSQL-standard precedence:
//
//  1. Connection string flag (--connection) - if provided, parse and use directly
//  2. Granular flags (-h, -p, -U, -d) - if any provided, build config from flags
//  3. DATABASE_URL environment variable - fallback if no granular params
//  4. Environment variables (PGHOST, PGPORT, etc.)
//  5. userdb.yaml project config
//  6. Defaults (localhost:5432, prefer SSL)
//
// Cloud IAM authentication: Azure, AWS, and Google flags or their SDK
// environment variables switch the AuthMethod accordingly. CLI flags take
// precedence over environment variables.
//
// Conflict Detection: returns an error if BOTH --connection AND granular
// flags are provided. This prevents ambiguity and ensures clear user intent.
func ResolveConnectionParams(
	connStringFlag string,
	granularFlags *GranularConnFlags,
	azureFlags *AzureFlags,
	awsFlags *AWSFlags,
	googleFlags *GoogleFlags,
	envVars *EnvVars,
	projectConfig *config.ProjectConfig,
) (*userdb.ConnectionConfig, error) {
	if granularFlags == nil {
		granularFlags = &GranularConnFlags{}
	}
	if azureFlags == nil {
		azureFlags = &AzureFlags{}
	}
	if awsFlags == nil {
		awsFlags = &AWSFlags{}
	}
	if googleFlags == nil {
		googleFlags = &GoogleFlags{}
	}
	if envVars == nil {
		envVars = &EnvVars{}
	}

	// Connection string XOR granular flags
	if connStringFlag != "" && !granularFlags.IsEmpty() {
		return nil, fmt.Errorf(
			"cannot specify both --connection and granular flags (-H, -p, -U)\n" +
				"Choose one approach:\n" +
				"  1. Connection string: --connection \"postgresql://user@localhost:5432/postgres\"\n" +
				"  2. Granular flags: -H localhost -p 5432 -U myuser -d mydb\n" +
				"  3. Environment variables: export PGHOST=localhost PGPORT=5432 PGUSER=myuser",
		)
	}

	var cfg *userdb.ConnectionConfig
	var err error

	switch {
	case connStringFlag != "":
		cfg, err = resolveFromConnectionString(connStringFlag, envVars)
	case granularFlags.IsEmpty() && envVars.DATABASE_URL != "":
		cfg, err = resolveFromConnectionString(envVars.DATABASE_URL, envVars)
	default:
		cfg, err = resolveFromGranularParams(granularFlags, envVars, projectConfig)
	}
	if err != nil {
		return nil, err
	}

	// The database flag overrides whatever the connection string carried.
	if granularFlags.Database != "" {
		cfg.Database = granularFlags.Database
	}

	applyCloudAuth(cfg, azureFlags, awsFlags, googleFlags, envVars, projectConfig)

	return cfg, nil
}

// applyCloudAuth switches the config to a cloud IAM auth method when the
// corresponding flags, environment variables, or project config are present.
// At most one cloud provider wins; explicit flags beat the project config.
func applyCloudAuth(
	cfg *userdb.ConnectionConfig,
	azure *AzureFlags,
	aws *AWSFlags,
	google *GoogleFlags,
	env *EnvVars,
	projectConfig *config.ProjectConfig,
) {
	var pc config.ConnectionConfig
	if projectConfig != nil {
		pc = projectConfig.Connection
	}

	// Google: instance connection name is the trigger.
	instance := google.Instance
	if instance == "" && pc.AuthMethod == "google" {
		instance = pc.GoogleInstance
	}
	if instance != "" {
		cfg.AuthMethod = userdb.AuthMethodGoogleIAM
		cfg.GoogleInstance = instance
		return
	}

	// AWS: explicit opt-in via flag or project config.
	if aws.UseIAM || pc.AuthMethod == "aws" {
		region := aws.Region
		if region == "" {
			region = env.AWS_REGION
		}
		if region == "" {
			region = pc.AWSRegion
		}
		cfg.AuthMethod = userdb.AuthMethodAWSIAM
		cfg.AWSRegion = region
		return
	}

	// Azure: presence of tenant or client ID is the trigger.
	tenantID := azure.TenantID
	if tenantID == "" {
		tenantID = env.AZURE_TENANT_ID
	}
	if tenantID == "" {
		tenantID = pc.AzureTenantID
	}

	clientID := azure.ClientID
	if clientID == "" {
		clientID = env.AZURE_CLIENT_ID
	}
	if clientID == "" {
		clientID = pc.AzureClientID
	}

	if tenantID != "" || clientID != "" || pc.AuthMethod == "azure" {
		cfg.AuthMethod = userdb.AuthMethodAzureEntraID
		cfg.AzureTenantID = tenantID
		cfg.AzureClientID = clientID
		// Client secret only comes from env var (no flag for security)
		cfg.AzureClientSecret = env.AZURE_CLIENT_SECRET
	}
}

// resolveFromConnectionString parses a connection string and applies
// environment variables as fallbacks for parameters the string omits,
// following PostgreSQL's libpq behavior.
func resolveFromConnectionString(connStr string, envVars *EnvVars) (*userdb.ConnectionConfig, error) {
	cfg, err := ParseConnectionString(connStr)
	if err != nil {
		return nil, fmt.Errorf("invalid connection string: %w", err)
	}

	if cfg.Username == "" && envVars.PGUSER != "" {
		cfg.Username = envVars.PGUSER
	}
	if cfg.Password == "" && envVars.PGPASSWORD != "" {
		cfg.Password = envVars.PGPASSWORD
	}
	if envVars.PGSSLMODE != "" && cfg.SSLMode == "prefer" {
		cfg.SSLMode = envVars.PGSSLMODE
	}

	return cfg, nil
}

// resolveFromGranularParams builds a ConnectionConfig from granular flags,
// environment variables, and the project config, in that precedence order.
func resolveFromGranularParams(
	flags *GranularConnFlags,
	envVars *EnvVars,
	projectConfig *config.ProjectConfig,
) (*userdb.ConnectionConfig, error) {
	cfg := &userdb.ConnectionConfig{
		AuthMethod:       userdb.AuthMethodStandard,
		AdditionalParams: make(map[string]string),
	}

	var pc config.ConnectionConfig
	if projectConfig != nil {
		pc = projectConfig.Connection
	}

	// Host: flag > PGHOST > userdb.yaml > default
	cfg.Host = flags.Host
	if cfg.Host == "" {
		cfg.Host = envVars.PGHOST
	}
	if cfg.Host == "" {
		cfg.Host = pc.Host
	}
	if cfg.Host == "" {
		cfg.Host = "localhost"
	}

	// Port: flag > PGPORT > userdb.yaml > default
	if flags.Port != 0 {
		cfg.Port = flags.Port
	} else if envVars.PGPORT != "" {
		port, err := strconv.Atoi(envVars.PGPORT)
		if err != nil {
			return nil, fmt.Errorf("invalid $PGPORT value '%s': must be an integer", envVars.PGPORT)
		}
		cfg.Port = port
	} else if pc.Port != 0 {
		cfg.Port = pc.Port
	} else {
		cfg.Port = userdb.DefaultPort
	}

	// Username: flag > PGUSER > userdb.yaml > current OS user
	cfg.Username = flags.Username
	if cfg.Username == "" {
		cfg.Username = envVars.PGUSER
	}
	if cfg.Username == "" {
		cfg.Username = pc.Username
	}
	if cfg.Username == "" {
		if currentUser := os.Getenv("USER"); currentUser != "" {
			cfg.Username = currentUser
		} else if currentUser := os.Getenv("USERNAME"); currentUser != "" {
			cfg.Username = currentUser
		}
	}

	cfg.Password = envVars.PGPASSWORD

	// Database: flag > PGDATABASE > userdb.yaml > default
	cfg.Database = flags.Database
	if cfg.Database == "" {
		cfg.Database = envVars.PGDATABASE
	}
	if cfg.Database == "" {
		cfg.Database = pc.Database
	}
	if cfg.Database == "" {
		cfg.Database = userdb.DefaultDatabase
	}

	// SSLMode: flag > PGSSLMODE > userdb.yaml > default
	cfg.SSLMode = flags.SSLMode
	if cfg.SSLMode == "" {
		cfg.SSLMode = envVars.PGSSLMODE
	}
	if cfg.SSLMode == "" {
		cfg.SSLMode = pc.SSLMode
	}
	if cfg.SSLMode == "" {
		cfg.SSLMode = "prefer"
	}

	if cfg.AppName == "" {
		cfg.AppName = pc.AppName
	}

	return cfg, nil
}
