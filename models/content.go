package models

import "time"

// Category groups services, projects and blog posts.
type Category struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Subcategory refines a category.
type Subcategory struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	CategoryID  string    `bson:"categoryId" json:"categoryId"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Service is a construction service offered on the site.
type Service struct {
	ID            string    `bson:"id" json:"id"`
	Title         string    `bson:"title" json:"title"`
	Description   string    `bson:"description" json:"description"`
	Images        []string  `bson:"images,omitempty" json:"images,omitempty"`
	CategoryIDs   []string  `bson:"categoryIds" json:"categoryIds"`
	SubcategoryID string    `bson:"subcategoryId,omitempty" json:"subcategoryId,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Project statuses.
const (
	ProjectStarting  = "starting"
	ProjectOngoing   = "ongoing"
	ProjectCompleted = "completed"
)

// Project is a construction project showcased on the site.
type Project struct {
	ID             string     `bson:"id" json:"id"`
	Title          string     `bson:"title" json:"title"`
	Description    string     `bson:"description" json:"description"`
	CategoryID     string     `bson:"categoryId" json:"categoryId"`
	SubcategoryID  string     `bson:"subcategoryId,omitempty" json:"subcategoryId,omitempty"`
	Location       string     `bson:"location" json:"location"`
	StartDate      time.Time  `bson:"startDate" json:"startDate"`
	EndDate        *time.Time `bson:"endDate,omitempty" json:"endDate,omitempty"`
	StartingImages []string   `bson:"startingImages" json:"startingImages"`
	FinishedImages []string   `bson:"finishedImages,omitempty" json:"finishedImages,omitempty"`
	Status         string     `bson:"status" json:"status"`
	Tags           []string   `bson:"tags,omitempty" json:"tags,omitempty"`
	CreatedAt      time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// Blog is a published article.
type Blog struct {
	ID            string    `bson:"id" json:"id"`
	Title         string    `bson:"title" json:"title"`
	Content       string    `bson:"content" json:"content"`
	Excerpt       string    `bson:"excerpt" json:"excerpt"`
	CoverImage    string    `bson:"coverImage" json:"coverImage"`
	Images        []string  `bson:"images,omitempty" json:"images,omitempty"`
	Tags          []string  `bson:"tags,omitempty" json:"tags,omitempty"`
	CategoryID    string    `bson:"categoryId" json:"categoryId"`
	SubcategoryID string    `bson:"subcategoryId,omitempty" json:"subcategoryId,omitempty"`
	AuthorID      string    `bson:"authorId" json:"authorId"`
	IsPublished   bool      `bson:"isPublished" json:"isPublished"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Testimonial is a client quote.
type Testimonial struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Company   string    `bson:"company,omitempty" json:"company,omitempty"`
	Position  string    `bson:"position,omitempty" json:"position,omitempty"`
	Message   string    `bson:"message" json:"message"`
	Rating    int       `bson:"rating" json:"rating"`
	Image     string    `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// SocialLinks holds a team member's public profiles.
type SocialLinks struct {
	LinkedIn  string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	Twitter   string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	Facebook  string `bson:"facebook,omitempty" json:"facebook,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	WhatsApp  string `bson:"whatsapp,omitempty" json:"whatsapp,omitempty"`
}

// TeamMember is a staff profile on the team page.
type TeamMember struct {
	ID          string      `bson:"id" json:"id"`
	Name        string      `bson:"name" json:"name"`
	Position    string      `bson:"position" json:"position"`
	Roles       []string    `bson:"roles,omitempty" json:"roles,omitempty"`
	Bio         string      `bson:"bio" json:"bio"`
	Image       string      `bson:"image" json:"image"`
	SocialLinks SocialLinks `bson:"socialLinks,omitempty" json:"socialLinks,omitempty"`
	IsActive    bool        `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time   `bson:"updatedAt" json:"updatedAt"`
}

// FAQ is a question/answer pair.
type FAQ struct {
	ID        string    `bson:"id" json:"id"`
	Question  string    `bson:"question" json:"question"`
	Answer    string    `bson:"answer" json:"answer"`
	IsVisible bool      `bson:"isVisible" json:"isVisible"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ContactMessage is a message sent through the contact form.
type ContactMessage struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Telephone string    `bson:"telephone" json:"telephone"`
	From      string    `bson:"from" json:"from"`
	Subject   string    `bson:"subject" json:"subject"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
