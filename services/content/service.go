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

// ServiceInput is the payload for creating or updating a construction service.
type ServiceInput struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Images        []string `json:"images"`
	CategoryIDs   []string `json:"categoryIds"`
	SubcategoryID string   `json:"subcategoryId"`
}

// ServiceService manages the construction services on offer.
type ServiceService interface {
	Create(in ServiceInput) (*models.Service, error)
	GetAll() ([]models.Service, error)
	GetByID(id string) (*models.Service, error)
	Update(id string, in ServiceInput) (*models.Service, error)
	Delete(id string) error
}

// DefaultServiceService is the production ServiceService.
type DefaultServiceService struct {
	Repo    contentRepo.ContentRepository
	Storage storage.StorageService
}

// Create inserts a new service; images are uploaded to storage first.
func (s *DefaultServiceService) Create(in ServiceInput) (*models.Service, error) {
	if in.Title == "" || in.Description == "" || len(in.CategoryIDs) == 0 {
		return nil, &ValidationError{Message: "Title, description and category are required"}
	}

	images, err := s.Storage.UploadImages(context.Background(), in.Images, "services")
	if err != nil {
		return nil, fmt.Errorf("failed to upload service images: %w", err)
	}

	svc := &models.Service{
		ID:            uuid.NewString(),
		Title:         in.Title,
		Description:   in.Description,
		Images:        images,
		CategoryIDs:   in.CategoryIDs,
		SubcategoryID: in.SubcategoryID,
		CreatedAt:     now(),
		UpdatedAt:     now(),
	}
	if err := s.Repo.Insert(svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// GetAll retrieves all services.
func (s *DefaultServiceService) GetAll() ([]models.Service, error) {
	var svcs []models.Service
	if err := s.Repo.FindAll(bson.M{}, nil, &svcs); err != nil {
		return nil, err
	}
	return svcs, nil
}

// GetByID retrieves a service.
func (s *DefaultServiceService) GetByID(id string) (*models.Service, error) {
	var svc models.Service
	found, err := s.Repo.FindByID(id, &svc)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &NotFoundError{Resource: "service", ID: id}
	}
	return &svc, nil
}

// Update modifies a service; any new images are uploaded and replace the old set.
func (s *DefaultServiceService) Update(id string, in ServiceInput) (*models.Service, error) {
	set := bson.M{}
	if in.Title != "" {
		set["title"] = in.Title
	}
	if in.Description != "" {
		set["description"] = in.Description
	}
	if len(in.CategoryIDs) > 0 {
		set["categoryIds"] = in.CategoryIDs
	}
	if in.SubcategoryID != "" {
		set["subcategoryId"] = in.SubcategoryID
	}
	if len(in.Images) > 0 {
		images, err := s.Storage.UploadImages(context.Background(), in.Images, "services")
		if err != nil {
			return nil, fmt.Errorf("failed to upload service images: %w", err)
		}
		set["images"] = images
	}

	found, err := s.Repo.UpdateSet(id, set)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &NotFoundError{Resource: "service", ID: id}
	}
	return s.GetByID(id)
}

// Delete removes a service.
func (s *DefaultServiceService) Delete(id string) error {
	found, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if !found {
		return &NotFoundError{Resource: "service", ID: id}
	}
	return nil
}
