package errors

import "errors"

// Exit codes returned by the create-fs-app binary.
const (
	// ExitSuccess indicates the command completed successfully. A missing
	// template is also reported with this code.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates invalid flags, names, or enum values.
	ExitValidationError = 2

	// ExitRetrievalError indicates the template could not be cloned.
	ExitRetrievalError = 3

	// ExitPermissionDenied indicates a filesystem permission failure.
	ExitPermissionDenied = 4

	// ExitNotFound indicates a preset or template key was not found.
	ExitNotFound = 5

	// ExitInstallError indicates dependency installation failed.
	ExitInstallError = 6

	// ExitAlreadyExists indicates the target directory already exists.
	ExitAlreadyExists = 7
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	// Code is the process exit code.
	Code int

	// Err is the underlying error.
	Err error

	// Printed indicates the command layer already reported the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return ExitCodeName(e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// sentinelCodes is checked in order; the first sentinel in an error's
// chain decides the exit code.
var sentinelCodes = []struct {
	sentinel error
	code     int
}{
	{ErrValidation, ExitValidationError},
	{ErrRetrieval, ExitRetrievalError},
	{ErrPermission, ExitPermissionDenied},
	{ErrNotFound, ExitNotFound},
	{ErrInstall, ExitInstallError},
	{ErrAlreadyExists, ExitAlreadyExists},
}

var codeNames = map[int]string{
	ExitSuccess:          "Success",
	ExitGeneralError:     "General Error",
	ExitValidationError:  "Validation Error",
	ExitRetrievalError:   "Retrieval Error",
	ExitPermissionDenied: "Permission Denied",
	ExitNotFound:         "Not Found",
	ExitInstallError:     "Install Error",
	ExitAlreadyExists:    "Already Exists",
}

// ExitCodeFromError maps err to a process exit code. An ExitError anywhere
// in the chain wins over the sentinels.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	for _, sc := range sentinelCodes {
		if errors.Is(err, sc.sentinel) {
			return sc.code
		}
	}
	return ExitGeneralError
}

// ExitCodeName returns a short label for code, or "Unknown".
func ExitCodeName(code int) string {
	if name, ok := codeNames[code]; ok {
		return name
	}
	return "Unknown"
}
