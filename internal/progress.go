package internal

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// UIManager handles status output. Everything goes to stderr: stdout is
// reserved for the single JSON value the tool emits.
type UIManager interface {
	NewSpinner(description string) Spinner
	Verbose(format string, args ...any)
	Printf(format string, args ...any)
}

// Spinner abstracts an indeterminate progress indicator
type Spinner interface {
	Describe(description string)
	Advance()
	Finish()
}

// StandardUIManager handles normal UI operations
type StandardUIManager struct {
	verbose bool
	quiet   bool
}

func NewUIManager(verbose, quiet bool) UIManager {
	return &StandardUIManager{verbose: verbose, quiet: quiet}
}

// NewSpinner creates a stderr spinner, or a silent one when output is quiet
// or stderr is not a terminal (e.g. piped into another program).
func (ui *StandardUIManager) NewSpinner(description string) Spinner {
	if ui.quiet || !stderrIsTerminal() {
		return &silentSpinner{}
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	return &visibleSpinner{bar: bar}
}

func (ui *StandardUIManager) Verbose(format string, args ...any) {
	if ui.verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

func (ui *StandardUIManager) Printf(format string, args ...any) {
	if !ui.quiet {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

func stderrIsTerminal() bool {
	return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
}

// visibleSpinner wraps the actual progress bar
type visibleSpinner struct {
	bar *progressbar.ProgressBar
}

func (s *visibleSpinner) Describe(description string) {
	s.bar.Describe(description)
}

func (s *visibleSpinner) Advance() {
	_ = s.bar.Add(1)
}

func (s *visibleSpinner) Finish() {
	_ = s.bar.Finish()
}

// silentSpinner does nothing
type silentSpinner struct{}

func (s *silentSpinner) Describe(string) {}
func (s *silentSpinner) Advance()        {}
func (s *silentSpinner) Finish()         {}
