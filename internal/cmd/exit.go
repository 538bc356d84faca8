// Package cmd provides the booterctl commands and the launch path shared
// with the booter binary.
package cmd

// Exit codes.
const (
	// ExitSuccess indicates the entry point returned normally.
	ExitSuccess = 0

	// ExitGeneralError indicates the entry point failed or an unspecified
	// error occurred.
	ExitGeneralError = 1

	// ExitConfigurationError indicates missing inputs, a missing or
	// unreadable descriptor, or a descriptor without an entry point.
	ExitConfigurationError = 2

	// ExitParseError indicates a malformed descriptor.
	ExitParseError = 3

	// ExitDispatchError indicates the entry point could not be resolved.
	ExitDispatchError = 4
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitConfigurationError:
		return "Configuration Error"
	case ExitParseError:
		return "Parse Error"
	case ExitDispatchError:
		return "Dispatch Error"
	default:
		return "Unknown"
	}
}
