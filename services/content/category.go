package content

import (
	"fmt"

	contentRepo "codabs/database/repository/content"
	"codabs/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// CategoryService manages service/project/blog categories.
type CategoryService interface {
	Create(name, description string) (*models.Category, error)
	GetAll() ([]models.Category, error)
	GetByID(id string) (*models.Category, error)
	Update(id, name, description string) (*models.Category, error)
	Delete(id string) error
}

// DefaultCategoryService is the production CategoryService.
type DefaultCategoryService struct {
	Repo contentRepo.ContentRepository
}

// Create inserts a new category; names are unique.
func (s *DefaultCategoryService) Create(name, description string) (*models.Category, error) {
	if name == "" || description == "" {
		return nil, &ValidationError{Message: "Name and description are required"}
	}

	var existing models.Category
	found, err := s.Repo.FindOne(bson.M{"name": name}, &existing)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}
	if found {
		return nil, &ValidationError{Message: "Category already exists"}
	}

	cat := &models.Category{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		CreatedAt:   now(),
		UpdatedAt:   now(),
	}
	if err := s.Repo.Insert(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// GetAll retrieves all categories.
func (s *DefaultCategoryService) GetAll() ([]models.Category, error) {
	var cats []models.Category
	if err := s.Repo.FindAll(bson.M{}, nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// GetByID retrieves a category.
func (s *DefaultCategoryService) GetByID(id string) (*models.Category, error) {
	var cat models.Category
	found, err := s.Repo.FindByID(id, &cat)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &NotFoundError{Resource: "category", ID: id}
	}
	return &cat, nil
}

// Update modifies a category's name and description.
func (s *DefaultCategoryService) Update(id, name, description string) (*models.Category, error) {
	set := bson.M{}
	if name != "" {
		set["name"] = name
	}
	if description != "" {
		set["description"] = description
	}

	found, err := s.Repo.UpdateSet(id, set)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &NotFoundError{Resource: "category", ID: id}
	}
	return s.GetByID(id)
}

// Delete removes a category.
func (s *DefaultCategoryService) Delete(id string) error {
	found, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if !found {
		return &NotFoundError{Resource: "category", ID: id}
	}
	return nil
}
