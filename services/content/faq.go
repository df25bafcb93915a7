package content

import (
	contentRepo "codabs/database/repository/content"
	"codabs/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// FAQInput is the payload for creating or updating an FAQ entry.
type FAQInput struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	IsVisible *bool  `json:"isVisible"`
}

// FAQService manages FAQ entries.
type FAQService interface {
	Create(in FAQInput) (*models.FAQ, error)
	GetAll(visibleOnly bool) ([]models.FAQ, error)
	Update(id string, in FAQInput) (*models.FAQ, error)
	Delete(id string) error
}

// DefaultFAQService is the production FAQService.
type DefaultFAQService struct {
	Repo contentRepo.ContentRepository
}

// Create inserts a new FAQ entry, visible by default.
func (s *DefaultFAQService) Create(in FAQInput) (*models.FAQ, error) {
	if in.Question == "" || in.Answer == "" {
		return nil, &ValidationError{Message: "Question and answer are required"}
	}

	visible := true
	if in.IsVisible != nil {
		visible = *in.IsVisible
	}

	faq := &models.FAQ{
		ID:        uuid.NewString(),
		Question:  in.Question,
		Answer:    in.Answer,
		IsVisible: visible,
		CreatedAt: now(),
		UpdatedAt: now(),
	}
	if err := s.Repo.Insert(faq); err != nil {
		return nil, err
	}
	return faq, nil
}

// GetAll retrieves FAQ entries, optionally only visible ones.
func (s *DefaultFAQService) GetAll(visibleOnly bool) ([]models.FAQ, error) {
	filter := bson.M{}
	if visibleOnly {
		filter["isVisible"] = true
	}
	var faqs []models.FAQ
	if err := s.Repo.FindAll(filter, nil, &faqs); err != nil {
		return nil, err
	}
	return faqs, nil
}

// Update modifies an FAQ entry.
func (s *DefaultFAQService) Update(id string, in FAQInput) (*models.FAQ, error) {
	set := bson.M{}
	if in.Question != "" {
		set["question"] = in.Question
	}
	if in.Answer != "" {
		set["answer"] = in.Answer
	}
	if in.IsVisible != nil {
		set["isVisible"] = *in.IsVisible
	}

	found, err := s.Repo.UpdateSet(id, set)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &NotFoundError{Resource: "FAQ", ID: id}
	}

	var faq models.FAQ
	if _, err := s.Repo.FindByID(id, &faq); err != nil {
		return nil, err
	}
	return &faq, nil
}

// Delete removes an FAQ entry.
func (s *DefaultFAQService) Delete(id string) error {
	found, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if !found {
		return &NotFoundError{Resource: "FAQ", ID: id}
	}
	return nil
}
