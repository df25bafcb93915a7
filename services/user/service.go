package user

import (
	"context"
	"fmt"
	"time"
	"unicode"

	userRepo "codabs/database/repository/user"
	"codabs/models"
	"codabs/services/notification"
	"codabs/services/storage"
	"codabs/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenDuration is how long issued session tokens stay valid.
const tokenDuration = 7 * 24 * time.Hour

// DefaultUserService is the production UserService.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Storage  storage.StorageService
	Notifier notification.NotificationService
}

// validatePassword enforces minimum password strength.
func validatePassword(password string) error {
	if len(password) < 8 {
		return &ValidationError{Message: "Password must be at least 8 characters long"}
	}
	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}
	if !hasUpper || !hasLower || !hasNumber || !hasSpecial {
		return &ValidationError{Message: "Password must contain upper and lower case letters, a number and a special character"}
	}
	return nil
}

// validRoles filters the requested roles down to known ones, defaulting to viewer.
func validRoles(requested []string) []string {
	known := map[string]bool{
		models.RoleSuperAdmin: true,
		models.RoleAdmin:      true,
		models.RoleEditor:     true,
		models.RoleViewer:     true,
	}
	var roles []string
	for _, r := range requested {
		if known[r] {
			roles = append(roles, r)
		}
	}
	if len(roles) == 0 {
		roles = []string{models.RoleViewer}
	}
	return roles
}

// Register creates a staff account.
func (s *DefaultUserService) Register(reg models.UserRegistration) (*models.User, error) {
	existing, err := s.Repo.GetByEmail(reg.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, &ValidationError{Message: "User already exists"}
	}

	if err := validatePassword(reg.Password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usr := &models.User{
		ID:           uuid.NewString(),
		Name:         reg.Name,
		Email:        reg.Email,
		Phone:        reg.Phone,
		PasswordHash: string(hash),
		Roles:        validRoles(reg.Roles),
	}

	if reg.ProfilePicture != "" {
		url, err := s.Storage.UploadImage(context.Background(), reg.ProfilePicture, "profile")
		if err != nil {
			return nil, fmt.Errorf("failed to upload profile picture: %w", err)
		}
		usr.ProfilePicture = url
	}

	if err := s.Repo.Create(usr); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return usr, nil
}

// Authenticate verifies credentials and issues a session token. The token hash
// is stored on the user record and cached in redis for the middleware.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if usr == nil {
		return nil, &AuthError{Message: "Invalid email or password"}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, &AuthError{Message: "Invalid email or password"}
	}

	token, err := utils.GenerateToken(usr.ID, usr.Email, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.UpdateSet(usr.ID, bson.M{"tokenHash": tokenHash}); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}
	usr.TokenHash = tokenHash

	cacheKey := utils.AuthCachePrefix + tokenHash
	if err := utils.GetAuthCacheClient().Set(context.Background(), cacheKey, usr.ID, tokenDuration).Err(); err != nil {
		utils.GetLogger().Warn("Authenticate: failed to cache token", zap.Error(err))
	}

	return &AuthResponse{User: usr, Token: token}, nil
}

// RevokeToken invalidates the user's current session token.
func (s *DefaultUserService) RevokeToken(userID string) error {
	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}
	if usr == nil {
		return &NotFoundError{ID: userID}
	}

	if usr.TokenHash != "" {
		cacheKey := utils.AuthCachePrefix + usr.TokenHash
		if err := utils.GetAuthCacheClient().Del(context.Background(), cacheKey).Err(); err != nil {
			utils.GetLogger().Warn("RevokeToken: failed to clear token cache", zap.Error(err))
		}
	}
	return s.Repo.UpdateSet(userID, bson.M{"tokenHash": ""})
}

// ResetPassword replaces the password for the account with the given email.
func (s *DefaultUserService) ResetPassword(email, newPassword string) error {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}
	if usr == nil {
		return &NotFoundError{ID: email}
	}

	if err := validatePassword(newPassword); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.Repo.UpdateSet(usr.ID, bson.M{"passwordHash": string(hash), "tokenHash": ""}); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	go func() {
		body := fmt.Sprintf("Dear %s,\n\nYour password was reset just now. If this wasn't you, contact the site administrator immediately.", usr.Name)
		if err := s.Notifier.Send(usr.Email, "Your password has been reset", body); err != nil {
			utils.GetLogger().Error("Failed to send password reset email", zap.Error(err))
		}
	}()

	return nil
}

// GetByID retrieves a user by ID.
func (s *DefaultUserService) GetByID(id string) (*models.User, error) {
	usr, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, &NotFoundError{ID: id}
	}
	return usr, nil
}

// GetAll retrieves all users.
func (s *DefaultUserService) GetAll() ([]models.User, error) {
	return s.Repo.GetAll()
}

// Update modifies profile fields.
func (s *DefaultUserService) Update(id string, upd models.UserUpdate) (*models.User, error) {
	set := bson.M{}
	if upd.Name != "" {
		set["name"] = upd.Name
	}
	if upd.Phone != "" {
		set["phone"] = upd.Phone
	}
	if len(upd.Roles) > 0 {
		set["roles"] = validRoles(upd.Roles)
	}
	if upd.ProfilePicture != "" {
		url, err := s.Storage.UploadImage(context.Background(), upd.ProfilePicture, "profile")
		if err != nil {
			return nil, fmt.Errorf("failed to upload profile picture: %w", err)
		}
		set["profilePicture"] = url
	}

	if len(set) > 0 {
		if err := s.Repo.UpdateSet(id, set); err != nil {
			return nil, err
		}
	}
	return s.GetByID(id)
}

// Delete removes a user account.
func (s *DefaultUserService) Delete(id string) error {
	return s.Repo.Delete(id)
}
