package userRepo

import (
	"codabs/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID. Returns (nil, nil) when absent.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address. Returns (nil, nil) when absent.
	GetByEmail(email string) (*models.User, error)
	// GetByTokenHash retrieves a user holding the given session token hash.
	GetByTokenHash(tokenHash string) (*models.User, error)
	// GetAll retrieves all users (sensitive fields excluded).
	GetAll() ([]models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// UpdateSet applies a $set update to a user record.
	UpdateSet(id string, set bson.M) error
	// Delete removes a user record by its ID.
	Delete(id string) error
}
