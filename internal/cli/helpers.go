package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/thenoetrevino/tablero/internal/services/project"
	"github.com/thenoetrevino/tablero/internal/storage"
)

// Confirm asks question on out and reads a yes/no answer from in. Anything
// but "y" or "yes" is a no.
func Confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s (y/N): ", question)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// ClassifyError maps a service error to an exit code and an error code for
// the formatter.
func ClassifyError(err error) (int, string) {
	switch {
	case errors.Is(err, project.ErrProjectNotFound):
		return ExitNotFound, "PROJECT_NOT_FOUND"
	case errors.Is(err, project.ErrAmbiguousProject):
		return ExitValidation, "AMBIGUOUS_PROJECT"
	case errors.Is(err, project.ErrLastProject):
		return ExitValidation, "LAST_PROJECT"
	case errors.Is(err, storage.ErrInvalidBackup):
		return ExitDataErr, "INVALID_BACKUP"
	case errors.Is(err, ErrNoCLI):
		return ExitError, "INITIALIZATION_ERROR"
	}
	return ExitError, "INTERNAL_ERROR"
}

// Report prints err through f and returns it with the matching exit code.
func Report(f *OutputFormatter, err error) error {
	exitCode, code := ClassifyError(err)
	suggestion := ""
	switch code {
	case "PROJECT_NOT_FOUND":
		suggestion = "run 'tablero project list' to see project ids"
	case "AMBIGUOUS_PROJECT":
		suggestion = "refer to the project by id"
	}
	return f.FailWithSuggestion(exitCode, code, err, suggestion)
}
