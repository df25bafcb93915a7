package models

import "time"

// Visit types tracked by the analytics middleware.
const (
	VisitPage    = "page"
	VisitBlog    = "blog"
	VisitProject = "project"
	VisitService = "service"
)

// Visit is a single tracked page or content view.
type Visit struct {
	ID          string    `bson:"id" json:"id"`
	Type        string    `bson:"type" json:"type"`
	ReferenceID string    `bson:"referenceId,omitempty" json:"referenceId,omitempty"`
	IP          string    `bson:"ip,omitempty" json:"ip,omitempty"`
	UserAgent   string    `bson:"userAgent,omitempty" json:"userAgent,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// ContentViews aggregates view counts for one piece of content.
type ContentViews struct {
	ReferenceID string `bson:"_id" json:"referenceId"`
	Title       string `bson:"title" json:"title"`
	Views       int64  `bson:"views" json:"views"`
}

// AnalyticsSummary is the admin dashboard rollup.
type AnalyticsSummary struct {
	TotalPageVisits int64          `json:"totalPageVisits"`
	BlogViews       []ContentViews `json:"blogViews"`
	ProjectViews    []ContentViews `json:"projectViews"`
}
