package schedule

import "fmt"

// ValidationError reports malformed or missing user input. It is
// recoverable and leaves the store untouched.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// AuthenticationError reports a credential mismatch on login
type AuthenticationError struct {
	Email string
}

func (e *AuthenticationError) Error() string {
	return "invalid email or password"
}
