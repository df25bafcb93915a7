package content

import (
	"context"
	"fmt"

	contentRepo "codabs/database/repository/content"
	"codabs/models"
	"codabs/services/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// TeamInput is the payload for creating or updating a team member.
type TeamInput struct {
	Name        string             `json:"name"`
	Position    string             `json:"position"`
	Roles       []string           `json:"roles"`
	Bio         string             `json:"bio"`
	Image       string             `json:"image"`
	SocialLinks models.SocialLinks `json:"socialLinks"`
	IsActive    *bool              `json:"isActive"`
}

// TeamService manages team member profiles.
type TeamService interface {
	Create(in TeamInput) (*models.TeamMember, error)
	GetAll(activeOnly bool) ([]models.TeamMember, error)
	GetByID(id string) (*models.TeamMember, error)
	Update(id string, in TeamInput) (*models.TeamMember, error)
	Delete(id string) error
}

// DefaultTeamService is the production TeamService.
type DefaultTeamService struct {
	Repo    contentRepo.ContentRepository
	Storage storage.StorageService
}

// Create inserts a new team member; the portrait is uploaded to storage.
func (s *DefaultTeamService) Create(in TeamInput) (*models.TeamMember, error) {
	if in.Name == "" || in.Position == "" || in.Bio == "" || in.Image == "" {
		return nil, &ValidationError{Message: "Name, position, bio and image are required"}
	}

	url, err := s.Storage.UploadImage(context.Background(), in.Image, "team")
	if err != nil {
		return nil, fmt.Errorf("failed to upload team member image: %w", err)
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	member := &models.TeamMember{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Position:    in.Position,
		Roles:       in.Roles,
		Bio:         in.Bio,
		Image:       url,
		SocialLinks: in.SocialLinks,
		IsActive:    active,
		CreatedAt:   now(),
		UpdatedAt:   now(),
	}
	if err := s.Repo.Insert(member); err != nil {
		return nil, err
	}
	return member, nil
}

// GetAll retrieves team members, optionally only active ones.
func (s *DefaultTeamService) GetAll(activeOnly bool) ([]models.TeamMember, error) {
	filter := bson.M{}
	if activeOnly {
		filter["isActive"] = true
	}
	var members []models.TeamMember
	if err := s.Repo.FindAll(filter, nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// GetByID retrieves a team member.
func (s *DefaultTeamService) GetByID(id string) (*models.TeamMember, error) {
	var member models.TeamMember
	found, err := s.Repo.FindByID(id, &member)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &NotFoundError{Resource: "team member", ID: id}
	}
	return &member, nil
}

// Update modifies a team member profile.
func (s *DefaultTeamService) Update(id string, in TeamInput) (*models.TeamMember, error) {
	set := bson.M{}
	if in.Name != "" {
		set["name"] = in.Name
	}
	if in.Position != "" {
		set["position"] = in.Position
	}
	if len(in.Roles) > 0 {
		set["roles"] = in.Roles
	}
	if in.Bio != "" {
		set["bio"] = in.Bio
	}
	if in.IsActive != nil {
		set["isActive"] = *in.IsActive
	}
	if in.SocialLinks != (models.SocialLinks{}) {
		set["socialLinks"] = in.SocialLinks
	}
	if in.Image != "" {
		url, err := s.Storage.UploadImage(context.Background(), in.Image, "team")
		if err != nil {
			return nil, fmt.Errorf("failed to upload team member image: %w", err)
		}
		set["image"] = url
	}

	found, err := s.Repo.UpdateSet(id, set)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &NotFoundError{Resource: "team member", ID: id}
	}
	return s.GetByID(id)
}

// Delete removes a team member.
func (s *DefaultTeamService) Delete(id string) error {
	found, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if !found {
		return &NotFoundError{Resource: "team member", ID: id}
	}
	return nil
}
