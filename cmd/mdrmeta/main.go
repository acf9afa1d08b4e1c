package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/mdrepo/mdrmeta/internal/cli"
	"github.com/mdrepo/mdrmeta/pkg/mdrmeta"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(mdrmeta.ExitPanic)
		}
	}()

	if os.Getenv("MDRMETA_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(mdrmeta.ExitCodeForError(err))
	}
}
