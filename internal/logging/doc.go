// Package logging provides concrete implementations of the userdb.Logger
// interface.
//
// ConsoleLogger writes human-readable output to stderr (or an injected
// writer) and is used by the CLI. NullLogger discards everything and is the
// default for tests.
package logging
