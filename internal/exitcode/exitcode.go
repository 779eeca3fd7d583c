// Package exitcode defines exit codes for the CLI.
package exitcode

// Exit codes returned by every command.
const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown id, bad config).
	UserError = 1

	// AuthError indicates missing or rejected Google credentials.
	AuthError = 2

	// BackendError indicates a storage, API or network error.
	BackendError = 3
)
