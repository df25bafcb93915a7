package content

import (
	"context"
	"fmt"
	"time"

	contentRepo "codabs/database/repository/content"
	"codabs/models"
	"codabs/services/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// ProjectInput is the payload for creating or updating a project.
type ProjectInput struct {
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	CategoryID     string     `json:"categoryId"`
	SubcategoryID  string     `json:"subcategoryId"`
	Location       string     `json:"location"`
	StartDate      time.Time  `json:"startDate"`
	EndDate        *time.Time `json:"endDate"`
	StartingImages []string   `json:"startingImages"`
	FinishedImages []string   `json:"finishedImages"`
	Status         string     `json:"status"`
	Tags           []string   `json:"tags"`
}

// ProjectQuery carries list filters for the projects page.
type ProjectQuery struct {
	Page       int    `form:"page,default=1"`
	Limit      int    `form:"limit,default=10"`
	CategoryID string `form:"category"`
	Status     string `form:"status"`
	Tag        string `form:"tag"`
}

// ProjectService manages showcased construction projects.
type ProjectService interface {
	Create(in ProjectInput) (*models.Project, error)
	List(q ProjectQuery) ([]models.Project, int64, error)
	GetByID(id string) (*models.Project, error)
	Update(id string, in ProjectInput) (*models.Project, error)
	Delete(id string) error
}

// DefaultProjectService is the production ProjectService.
type DefaultProjectService struct {
	Repo    contentRepo.ContentRepository
	Storage storage.StorageService
}

func validProjectStatus(status string) bool {
	switch status {
	case models.ProjectStarting, models.ProjectOngoing, models.ProjectCompleted:
		return true
	}
	return false
}

// Create inserts a new project; both image sets are uploaded to storage.
func (s *DefaultProjectService) Create(in ProjectInput) (*models.Project, error) {
	if in.Title == "" || in.Description == "" || in.CategoryID == "" || in.Location == "" {
		return nil, &ValidationError{Message: "Title, description, category and location are required"}
	}
	if in.StartDate.IsZero() {
		return nil, &ValidationError{Message: "Start date is required"}
	}
	if len(in.StartingImages) == 0 {
		return nil, &ValidationError{Message: "Starting images are required"}
	}

	status := in.Status
	if status == "" {
		status = models.ProjectStarting
	}
	if !validProjectStatus(status) {
		return nil, &ValidationError{Message: "Invalid project status"}
	}

	starting, err := s.Storage.UploadImages(context.Background(), in.StartingImages, "projects")
	if err != nil {
		return nil, fmt.Errorf("failed to upload project images: %w", err)
	}
	finished, err := s.Storage.UploadImages(context.Background(), in.FinishedImages, "projects")
	if err != nil {
		return nil, fmt.Errorf("failed to upload project images: %w", err)
	}

	proj := &models.Project{
		ID:             uuid.NewString(),
		Title:          in.Title,
		Description:    in.Description,
		CategoryID:     in.CategoryID,
		SubcategoryID:  in.SubcategoryID,
		Location:       in.Location,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
		StartingImages: starting,
		FinishedImages: finished,
		Status:         status,
		Tags:           in.Tags,
		CreatedAt:      now(),
		UpdatedAt:      now(),
	}
	if err := s.Repo.Insert(proj); err != nil {
		return nil, err
	}
	return proj, nil
}

// List retrieves projects matching the query, newest first.
func (s *DefaultProjectService) List(q ProjectQuery) ([]models.Project, int64, error) {
	filter := bson.M{}
	if q.CategoryID != "" {
		filter["categoryId"] = q.CategoryID
	}
	if q.Status != "" && validProjectStatus(q.Status) {
		filter["status"] = q.Status
	}
	if q.Tag != "" {
		filter["tags"] = q.Tag
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 10
	}

	opts := listOptions(page, limit, "createdAt", false)
	var projects []models.Project
	if err := s.Repo.FindAll(filter, opts, &projects); err != nil {
		return nil, 0, err
	}

	total, err := s.Repo.Count(filter)
	if err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

// GetByID retrieves a project.
func (s *DefaultProjectService) GetByID(id string) (*models.Project, error) {
	var proj models.Project
	found, err := s.Repo.FindByID(id, &proj)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &NotFoundError{Resource: "project", ID: id}
	}
	return &proj, nil
}

// Update modifies project fields; new image sets replace the old ones.
func (s *DefaultProjectService) Update(id string, in ProjectInput) (*models.Project, error) {
	set := bson.M{}
	if in.Title != "" {
		set["title"] = in.Title
	}
	if in.Description != "" {
		set["description"] = in.Description
	}
	if in.CategoryID != "" {
		set["categoryId"] = in.CategoryID
	}
	if in.SubcategoryID != "" {
		set["subcategoryId"] = in.SubcategoryID
	}
	if in.Location != "" {
		set["location"] = in.Location
	}
	if !in.StartDate.IsZero() {
		set["startDate"] = in.StartDate
	}
	if in.EndDate != nil {
		set["endDate"] = *in.EndDate
	}
	if in.Status != "" {
		if !validProjectStatus(in.Status) {
			return nil, &ValidationError{Message: "Invalid project status"}
		}
		set["status"] = in.Status
	}
	if len(in.Tags) > 0 {
		set["tags"] = in.Tags
	}
	if len(in.StartingImages) > 0 {
		images, err := s.Storage.UploadImages(context.Background(), in.StartingImages, "projects")
		if err != nil {
			return nil, fmt.Errorf("failed to upload project images: %w", err)
		}
		set["startingImages"] = images
	}
	if len(in.FinishedImages) > 0 {
		images, err := s.Storage.UploadImages(context.Background(), in.FinishedImages, "projects")
		if err != nil {
			return nil, fmt.Errorf("failed to upload project images: %w", err)
		}
		set["finishedImages"] = images
	}

	found, err := s.Repo.UpdateSet(id, set)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &NotFoundError{Resource: "project", ID: id}
	}
	return s.GetByID(id)
}

// Delete removes a project.
func (s *DefaultProjectService) Delete(id string) error {
	found, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if !found {
		return &NotFoundError{Resource: "project", ID: id}
	}
	return nil
}
