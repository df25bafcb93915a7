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
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogInput is the payload for creating or updating a blog post.
type BlogInput struct {
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	Excerpt       string   `json:"excerpt"`
	CoverImage    string   `json:"coverImage"`
	Images        []string `json:"images"`
	Tags          []string `json:"tags"`
	CategoryID    string   `json:"categoryId"`
	SubcategoryID string   `json:"subcategoryId"`
	IsPublished   *bool    `json:"isPublished"`
}

// BlogQuery carries list filters for the blog index.
type BlogQuery struct {
	Page          int        `form:"page,default=1"`
	Limit         int        `form:"limit,default=10"`
	Search        string     `form:"search"`
	CategoryID    string     `form:"category"`
	SubcategoryID string     `form:"subcategory"`
	AuthorID      string     `form:"author"`
	IsPublished   *bool      `form:"isPublished"`
	Tag           string     `form:"tag"`
	CreatedAfter  *time.Time `form:"createdAfter"`
	CreatedBefore *time.Time `form:"createdBefore"`
	SortBy        string     `form:"sortBy,default=createdAt"`
	Order         string     `form:"order,default=desc"`
}

// BlogService manages blog posts.
type BlogService interface {
	Create(authorID string, in BlogInput) (*models.Blog, error)
	List(q BlogQuery) ([]models.Blog, int64, error)
	GetByID(id string) (*models.Blog, error)
	Update(id string, in BlogInput) (*models.Blog, error)
	Delete(id string) error
}

// DefaultBlogService is the production BlogService.
type DefaultBlogService struct {
	Repo    contentRepo.ContentRepository
	Storage storage.StorageService
}

// Create inserts a new blog post; the cover image and any extra images are
// uploaded to storage first.
func (s *DefaultBlogService) Create(authorID string, in BlogInput) (*models.Blog, error) {
	if in.Title == "" || in.Content == "" || in.Excerpt == "" || in.CategoryID == "" {
		return nil, &ValidationError{Message: "Title, content, excerpt and category are required"}
	}
	if in.CoverImage == "" {
		return nil, &ValidationError{Message: "Cover image is required"}
	}

	cover, err := s.Storage.UploadImage(context.Background(), in.CoverImage, "blogs")
	if err != nil {
		return nil, fmt.Errorf("failed to upload cover image: %w", err)
	}
	images, err := s.Storage.UploadImages(context.Background(), in.Images, "blogs")
	if err != nil {
		return nil, fmt.Errorf("failed to upload blog images: %w", err)
	}

	published := false
	if in.IsPublished != nil {
		published = *in.IsPublished
	}

	blog := &models.Blog{
		ID:            uuid.NewString(),
		Title:         in.Title,
		Content:       in.Content,
		Excerpt:       in.Excerpt,
		CoverImage:    cover,
		Images:        images,
		Tags:          in.Tags,
		CategoryID:    in.CategoryID,
		SubcategoryID: in.SubcategoryID,
		AuthorID:      authorID,
		IsPublished:   published,
		CreatedAt:     now(),
		UpdatedAt:     now(),
	}
	if err := s.Repo.Insert(blog); err != nil {
		return nil, err
	}
	return blog, nil
}

// List retrieves blog posts matching the query.
func (s *DefaultBlogService) List(q BlogQuery) ([]models.Blog, int64, error) {
	filter := buildBlogFilter(q)

	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 10
	}
	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = "createdAt"
	}

	opts := listOptions(page, limit, sortBy, q.Order == "asc")
	var blogs []models.Blog
	if err := s.Repo.FindAll(filter, opts, &blogs); err != nil {
		return nil, 0, err
	}

	total, err := s.Repo.Count(filter)
	if err != nil {
		return nil, 0, err
	}
	return blogs, total, nil
}

// buildBlogFilter translates a BlogQuery into a Mongo filter document.
func buildBlogFilter(q BlogQuery) bson.M {
	filter := bson.M{}

	if q.Search != "" {
		regex := primitive.Regex{Pattern: q.Search, Options: "i"}
		filter["$or"] = []bson.M{
			{"title": regex},
			{"content": regex},
			{"excerpt": regex},
		}
	}
	if q.CategoryID != "" {
		filter["categoryId"] = q.CategoryID
	}
	if q.SubcategoryID != "" {
		filter["subcategoryId"] = q.SubcategoryID
	}
	if q.AuthorID != "" {
		filter["authorId"] = q.AuthorID
	}
	if q.IsPublished != nil {
		filter["isPublished"] = *q.IsPublished
	}
	if q.Tag != "" {
		filter["tags"] = q.Tag
	}
	if q.CreatedAfter != nil || q.CreatedBefore != nil {
		created := bson.M{}
		if q.CreatedAfter != nil {
			created["$gte"] = *q.CreatedAfter
		}
		if q.CreatedBefore != nil {
			created["$lte"] = *q.CreatedBefore
		}
		filter["createdAt"] = created
	}

	return filter
}

// GetByID retrieves a blog post.
func (s *DefaultBlogService) GetByID(id string) (*models.Blog, error) {
	var blog models.Blog
	found, err := s.Repo.FindByID(id, &blog)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &NotFoundError{Resource: "blog", ID: id}
	}
	return &blog, nil
}

// Update modifies a blog post; new images replace the old ones.
func (s *DefaultBlogService) Update(id string, in BlogInput) (*models.Blog, error) {
	set := bson.M{}
	if in.Title != "" {
		set["title"] = in.Title
	}
	if in.Content != "" {
		set["content"] = in.Content
	}
	if in.Excerpt != "" {
		set["excerpt"] = in.Excerpt
	}
	if in.CategoryID != "" {
		set["categoryId"] = in.CategoryID
	}
	if in.SubcategoryID != "" {
		set["subcategoryId"] = in.SubcategoryID
	}
	if len(in.Tags) > 0 {
		set["tags"] = in.Tags
	}
	if in.IsPublished != nil {
		set["isPublished"] = *in.IsPublished
	}
	if in.CoverImage != "" {
		cover, err := s.Storage.UploadImage(context.Background(), in.CoverImage, "blogs")
		if err != nil {
			return nil, fmt.Errorf("failed to upload cover image: %w", err)
		}
		set["coverImage"] = cover
	}
	if len(in.Images) > 0 {
		images, err := s.Storage.UploadImages(context.Background(), in.Images, "blogs")
		if err != nil {
			return nil, fmt.Errorf("failed to upload blog images: %w", err)
		}
		set["images"] = images
	}

	found, err := s.Repo.UpdateSet(id, set)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &NotFoundError{Resource: "blog", ID: id}
	}
	return s.GetByID(id)
}

// Delete removes a blog post.
func (s *DefaultBlogService) Delete(id string) error {
	found, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if !found {
		return &NotFoundError{Resource: "blog", ID: id}
	}
	return nil
}
