package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/userdb/internal/cli"
	"github.com/vvka-141/userdb/pkg/userdb"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(userdb.ExitPanic)
		}
	}()

	if os.Getenv("USERDB_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(userdb.ExitCodeForError(err))
	}
}
