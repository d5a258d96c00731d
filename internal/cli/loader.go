package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/roach88/symm/internal/chartab"
)

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric      = "E001" // Generic/unknown error
	ErrCodeTableFile    = "E002" // Table file unreadable
	ErrCodeBadTableFile = "E003" // Table file invalid
	ErrCodeUnknownGroup = "E004" // Group name unparseable or untabulated
	ErrCodeEvalFailed   = "E005" // Expression parse/evaluation failure
)

// loadRegistry returns the registry the command should run against: the
// built-ins, plus any tables from the --tables file, registered into a
// private copy so the shared default stays untouched.
func loadRegistry(opts *RootOptions, formatter *OutputFormatter) (*chartab.Registry, error) {
	reg := chartab.Default()
	if opts.Tables == "" {
		return reg, nil
	}

	f, err := os.Open(opts.Tables)
	if err != nil {
		return nil, &ExitError{
			Code:    ExitCommandError,
			Message: fmt.Sprintf("%s: cannot open tables file %s", ErrCodeTableFile, opts.Tables),
			Err:     err,
		}
	}
	defer f.Close()

	extra, err := chartab.LoadYAML(f)
	if err != nil {
		return nil, &ExitError{
			Code:    ExitCommandError,
			Message: fmt.Sprintf("%s: invalid tables file %s", ErrCodeBadTableFile, opts.Tables),
			Err:     err,
		}
	}

	reg = reg.Clone()
	for _, t := range extra {
		if err := reg.Register(t); err != nil {
			return nil, &ExitError{
				Code:    ExitCommandError,
				Message: fmt.Sprintf("%s: cannot register table %s", ErrCodeBadTableFile, t.Name()),
				Err:     err,
			}
		}
		formatter.VerboseLog("Registered table %s (order %d)", t.Name(), t.Order)
	}
	return reg, nil
}

// newFormatter builds the formatter a command writes through.
func newFormatter(opts *RootOptions, out, errOut io.Writer) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    out,
		ErrWriter: errOut,
		Verbose:   opts.Verbose,
	}
}
