package bluetooth

import (
	"fmt"
	"strings"
)

// UnavailableError indicates the external Bluetooth control tool is not
// installed. Every subcommand fails with this error when the tool is missing.
type UnavailableError struct {
	// Tool is the name of the missing executable.
	Tool string
}

// Error returns a user-friendly error message with install guidance.
func (e *UnavailableError) Error() string {
	return fmt.Sprintf(`%s not found in PATH

bluepods delegates all Bluetooth operations to %s. Install it with:
  brew install %s`, e.Tool, e.Tool, e.Tool)
}

// Is allows errors.Is() to work with wrapped errors.
func (e *UnavailableError) Is(target error) bool {
	_, ok := target.(*UnavailableError)
	return ok
}

// QueryError indicates a read query against the external tool failed or
// produced output that could not be parsed. It names the failed query so a
// multi-query status view can report which step broke.
type QueryError struct {
	// Query is the logical query that failed (e.g. "paired", "power").
	Query string
	// Reason is the underlying error.
	Reason error
}

// Error returns the failed query together with the underlying reason.
func (e *QueryError) Error() string {
	return fmt.Sprintf("bluetooth %s query: %v", e.Query, e.Reason)
}

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *QueryError) Unwrap() error {
	return e.Reason
}

// ActionErrorKind categorizes a failed connect/disconnect attempt.
type ActionErrorKind int

const (
	// ActionExternalFailure indicates the external tool exited non-zero for
	// an unclassified reason.
	ActionExternalFailure ActionErrorKind = iota
	// ActionDeviceNotReachable indicates the device did not respond.
	ActionDeviceNotReachable
)

// String returns a human-readable name for the action error kind.
func (k ActionErrorKind) String() string {
	switch k {
	case ActionDeviceNotReachable:
		return "device not reachable"
	default:
		return "external tool failure"
	}
}

// ActionError indicates a connect or disconnect command failed. The attempt
// is never retried; the user re-runs the command.
type ActionError struct {
	// Action is the attempted operation, "connect" or "disconnect".
	Action string
	// Address is the Bluetooth address the action targeted.
	Address string
	// Kind categorizes the failure.
	Kind ActionErrorKind
	// ExitCode is the external tool's exit code, or -1 when it did not run.
	ExitCode int
	// Output is the external tool's trimmed combined output.
	Output string
}

// Error returns the action, target and failure detail.
func (e *ActionError) Error() string {
	msg := fmt.Sprintf("%s %s: %s (exit code %d)", e.Action, e.Address, e.Kind, e.ExitCode)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += ": " + out
	}
	return msg
}

// Is allows errors.Is() to work with wrapped errors.
func (e *ActionError) Is(target error) bool {
	_, ok := target.(*ActionError)
	return ok
}

// NoMatchError indicates a query string matched no paired device, on either
// the substring or the fuzzy tier.
type NoMatchError struct {
	// Query is the user-supplied search string.
	Query string
}

// Error returns a message naming the unmatched query.
func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no paired device matching %q\n\nRun 'bluepods list' to see paired devices", e.Query)
}

// Is allows errors.Is() to work with wrapped errors.
func (e *NoMatchError) Is(target error) bool {
	_, ok := target.(*NoMatchError)
	return ok
}

// InvalidSelectionError indicates the disambiguation prompt received input
// that is not a valid 1-indexed candidate number. The prompt aborts rather
// than re-prompting.
type InvalidSelectionError struct {
	// Input is the raw input, empty when the prompt was interrupted.
	Input string
	// Count is the number of candidates that were offered.
	Count int
}

// Error returns the rejected input and the valid range.
func (e *InvalidSelectionError) Error() string {
	if e.Input == "" {
		return "selection aborted"
	}
	return fmt.Sprintf("invalid selection %q: expected a number between 1 and %d", e.Input, e.Count)
}

// Is allows errors.Is() to work with wrapped errors.
func (e *InvalidSelectionError) Is(target error) bool {
	_, ok := target.(*InvalidSelectionError)
	return ok
}
