package cli

import (
	"errors"

	"github.com/markpadhq/markpad/internal/configloader"
	"github.com/markpadhq/markpad/pkg/match"
)

// ErrNoMatchesFound signals an empty match set to the exit-code logic.
var ErrNoMatchesFound = errors.New("no matches found")

// ErrRenderFailures signals that one or more files failed to render.
var ErrRenderFailures = errors.New("render failures")

// Exit codes for markpad.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitNoMatches indicates a search or replace found nothing.
	ExitNoMatches = 1

	// ExitRenderErrors indicates rendering completed with file errors.
	ExitRenderErrors = 2

	// ExitInvalidUsage indicates invalid command-line usage,
	// including patterns that fail to compile.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromError maps a command error to a process exit code.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var validationErr *configloader.ValidationError
	switch {
	case errors.Is(err, ErrNoMatchesFound):
		return ExitNoMatches
	case errors.Is(err, ErrRenderFailures):
		return ExitRenderErrors
	case errors.Is(err, match.ErrInvalidPattern):
		return ExitInvalidUsage
	case errors.As(err, &validationErr):
		return ExitConfigError
	default:
		return ExitInternalError
	}
}
