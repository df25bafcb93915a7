package user

import "fmt"

// ValidationError reports a malformed registration or update. Surfaced as a 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError reports an unknown user ID or email. Surfaced as a 404.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("user %s not found", e.ID)
}

// AuthError reports failed credentials. Surfaced as a 401.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}
