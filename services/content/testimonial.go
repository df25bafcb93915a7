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

// TestimonialInput is the payload for creating or updating a testimonial.
type TestimonialInput struct {
	Name     string `json:"name"`
	Company  string `json:"company"`
	Position string `json:"position"`
	Message  string `json:"message"`
	Rating   int    `json:"rating"`
	Image    string `json:"image"`
}

// TestimonialService manages client testimonials.
type TestimonialService interface {
	Create(in TestimonialInput) (*models.Testimonial, error)
	GetAll() ([]models.Testimonial, error)
	Update(id string, in TestimonialInput) (*models.Testimonial, error)
	Delete(id string) error
}

// DefaultTestimonialService is the production TestimonialService.
type DefaultTestimonialService struct {
	Repo    contentRepo.ContentRepository
	Storage storage.StorageService
}

// Create inserts a new testimonial. Rating defaults to 5 and is clamped to 1-5.
func (s *DefaultTestimonialService) Create(in TestimonialInput) (*models.Testimonial, error) {
	if in.Name == "" || in.Message == "" {
		return nil, &ValidationError{Message: "Name and message are required"}
	}

	rating := in.Rating
	if rating == 0 {
		rating = 5
	}
	if rating < 1 || rating > 5 {
		return nil, &ValidationError{Message: "Rating must be between 1 and 5"}
	}

	t := &models.Testimonial{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Company:   in.Company,
		Position:  in.Position,
		Message:   in.Message,
		Rating:    rating,
		CreatedAt: now(),
		UpdatedAt: now(),
	}

	if in.Image != "" {
		url, err := s.Storage.UploadImage(context.Background(), in.Image, "testimonials")
		if err != nil {
			return nil, fmt.Errorf("failed to upload testimonial image: %w", err)
		}
		t.Image = url
	}

	if err := s.Repo.Insert(t); err != nil {
		return nil, err
	}
	return t, nil
}

// GetAll retrieves all testimonials.
func (s *DefaultTestimonialService) GetAll() ([]models.Testimonial, error) {
	var ts []models.Testimonial
	if err := s.Repo.FindAll(bson.M{}, nil, &ts); err != nil {
		return nil, err
	}
	return ts, nil
}

// Update modifies a testimonial.
func (s *DefaultTestimonialService) Update(id string, in TestimonialInput) (*models.Testimonial, error) {
	set := bson.M{}
	if in.Name != "" {
		set["name"] = in.Name
	}
	if in.Company != "" {
		set["company"] = in.Company
	}
	if in.Position != "" {
		set["position"] = in.Position
	}
	if in.Message != "" {
		set["message"] = in.Message
	}
	if in.Rating != 0 {
		if in.Rating < 1 || in.Rating > 5 {
			return nil, &ValidationError{Message: "Rating must be between 1 and 5"}
		}
		set["rating"] = in.Rating
	}
	if in.Image != "" {
		url, err := s.Storage.UploadImage(context.Background(), in.Image, "testimonials")
		if err != nil {
			return nil, fmt.Errorf("failed to upload testimonial image: %w", err)
		}
		set["image"] = url
	}

	found, err := s.Repo.UpdateSet(id, set)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &NotFoundError{Resource: "testimonial", ID: id}
	}

	var t models.Testimonial
	if _, err := s.Repo.FindByID(id, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Delete removes a testimonial.
func (s *DefaultTestimonialService) Delete(id string) error {
	found, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if !found {
		return &NotFoundError{Resource: "testimonial", ID: id}
	}
	return nil
}
