package content

import (
	"fmt"

	contentRepo "codabs/database/repository/content"
	"codabs/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// SubcategoryService manages subcategories; each belongs to a category.
type SubcategoryService interface {
	Create(name, description, categoryID string) (*models.Subcategory, error)
	GetAll() ([]models.Subcategory, error)
	GetByCategory(categoryID string) ([]models.Subcategory, error)
	GetByID(id string) (*models.Subcategory, error)
	Update(id string, set map[string]string) (*models.Subcategory, error)
	Delete(id string) error
}

// DefaultSubcategoryService is the production SubcategoryService.
type DefaultSubcategoryService struct {
	Repo       contentRepo.ContentRepository
	Categories contentRepo.ContentRepository
}

// Create inserts a new subcategory under an existing category.
func (s *DefaultSubcategoryService) Create(name, description, categoryID string) (*models.Subcategory, error) {
	if name == "" || categoryID == "" {
		return nil, &ValidationError{Message: "Name and category are required"}
	}

	var cat models.Category
	found, err := s.Categories.FindByID(categoryID, &cat)
	if err != nil {
		return nil, fmt.Errorf("failed to check category: %w", err)
	}
	if !found {
		return nil, &NotFoundError{Resource: "category", ID: categoryID}
	}

	var existing models.Subcategory
	found, err = s.Repo.FindOne(bson.M{"name": name}, &existing)
	if err != nil {
		return nil, fmt.Errorf("failed to check subcategory name: %w", err)
	}
	if found {
		return nil, &ValidationError{Message: "Subcategory already exists"}
	}

	sub := &models.Subcategory{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		CategoryID:  categoryID,
		CreatedAt:   now(),
		UpdatedAt:   now(),
	}
	if err := s.Repo.Insert(sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// GetAll retrieves all subcategories.
func (s *DefaultSubcategoryService) GetAll() ([]models.Subcategory, error) {
	var subs []models.Subcategory
	if err := s.Repo.FindAll(bson.M{}, nil, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// GetByCategory retrieves the subcategories of one category.
func (s *DefaultSubcategoryService) GetByCategory(categoryID string) ([]models.Subcategory, error) {
	var subs []models.Subcategory
	if err := s.Repo.FindAll(bson.M{"categoryId": categoryID}, nil, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// GetByID retrieves a subcategory.
func (s *DefaultSubcategoryService) GetByID(id string) (*models.Subcategory, error) {
	var sub models.Subcategory
	found, err := s.Repo.FindByID(id, &sub)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &NotFoundError{Resource: "subcategory", ID: id}
	}
	return &sub, nil
}

// Update modifies subcategory fields.
func (s *DefaultSubcategoryService) Update(id string, fields map[string]string) (*models.Subcategory, error) {
	set := bson.M{}
	for key, value := range fields {
		switch key {
		case "name", "description", "categoryId":
			if value != "" {
				set[key] = value
			}
		}
	}

	found, err := s.Repo.UpdateSet(id, set)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &NotFoundError{Resource: "subcategory", ID: id}
	}
	return s.GetByID(id)
}

// Delete removes a subcategory.
func (s *DefaultSubcategoryService) Delete(id string) error {
	found, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if !found {
		return &NotFoundError{Resource: "subcategory", ID: id}
	}
	return nil
}
