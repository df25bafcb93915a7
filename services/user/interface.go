package user

import "codabs/models"

// AuthResponse carries an authenticated user and their session token.
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// UserService manages staff accounts and sessions.
type UserService interface {
	// Register creates a staff account. Roles default to viewer.
	Register(reg models.UserRegistration) (*models.User, error)
	// Authenticate verifies credentials and issues a session token.
	Authenticate(email, password string) (*AuthResponse, error)
	// RevokeToken invalidates the user's current session token.
	RevokeToken(userID string) error
	// ResetPassword replaces the password for the account with the given email
	// and notifies the account owner.
	ResetPassword(email, newPassword string) error
	// GetByID retrieves a user by ID.
	GetByID(id string) (*models.User, error)
	// GetAll retrieves all users.
	GetAll() ([]models.User, error)
	// Update modifies profile fields; a non-empty ProfilePicture is uploaded
	// to image storage first.
	Update(id string, upd models.UserUpdate) (*models.User, error)
	// Delete removes a user account.
	Delete(id string) error
}
