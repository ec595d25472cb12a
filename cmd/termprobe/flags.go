// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --verbose, --timeout, --legacy-save, --version

package main

import (
	"flag"
	"time"
)

type cliArgs struct {
	verbose    bool
	timeout    time.Duration
	legacySave bool
	version    bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.BoolVar(&args.verbose, "verbose", false, "Enable debug logging of request/reply bytes")
	flag.DurationVar(&args.timeout, "timeout", 0, "Reply timeout per query (e.g., 250ms); 0 uses config or default")
	flag.BoolVar(&args.legacySave, "legacy-save", false, "Use DEC ESC 7/ESC 8 save/restore instead of CSI s/u")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")

	flag.Parse()
	return args
}
