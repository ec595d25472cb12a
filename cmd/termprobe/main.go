// ABOUTME: CLI entry point for termprobe: queries the terminal and reports what it answers
// ABOUTME: Parses flags, loads config, runs both DSR queries plus the OS size fallback

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/go-termctl/internal/config"
	"github.com/mauromedda/go-termctl/internal/log"
	"github.com/mauromedda/go-termctl/pkg/termctl"
	"github.com/mauromedda/go-termctl/pkg/textwidth"
)

var (
	version = "dev"
	commit  = "unknown"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

const labelWidth = 24

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("termprobe %s (%s)\n", version, commit)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args cliArgs) error {
	cwd, _ := os.Getwd()
	cfg, err := config.Load(cwd)
	if err != nil {
		return err
	}

	if args.verbose || cfg.Verbose {
		log.SetLevel(log.LevelDebug)
	}

	timeout := args.timeout
	if timeout == 0 && cfg.TimeoutMS > 0 {
		timeout = time.Duration(cfg.TimeoutMS) * time.Millisecond
	}

	opts := termctl.DefaultOptions()
	if args.legacySave || cfg.LegacySaveRestore {
		opts.SaveRestoreANSI = false
	}

	tr := termctl.NewFileTransport(os.Stdin, os.Stdout, timeout)
	s := termctl.NewSession(tr, opts)
	defer termctl.RestoreOnPanic(s)

	row, col, err := s.CursorPosition()
	printResult("cursor position (6n)", row, col, err)

	rows, cols, err := s.ScreenSize()
	printResult("screen size (18t)", rows, cols, err)

	frows, fcols, err := tr.SizeFallback()
	printResult("screen size (ioctl)", frows, fcols, err)

	return nil
}

// printResult renders one probe line: label, then the value or its failure.
func printResult(label string, a, b int, err error) {
	padded := textwidth.Pad(label, labelWidth)
	switch {
	case err != nil:
		fmt.Printf("%s %s\n", labelStyle.Render(padded), errStyle.Render(err.Error()))
	case a == -1 && b == -1:
		fmt.Printf("%s %s\n", labelStyle.Render(padded), warnStyle.Render("no reply"))
	default:
		fmt.Printf("%s %s\n", labelStyle.Render(padded), okStyle.Render(fmt.Sprintf("%d x %d", a, b)))
	}
}
