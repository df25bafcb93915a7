package content

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Content collections.
const (
	CollCategories    = "categories"
	CollSubcategories = "subcategories"
	CollServices      = "services"
	CollProjects      = "projects"
	CollBlogs         = "blogs"
	CollTestimonials  = "testimonials"
	CollTeam          = "team"
	CollFAQs          = "faqs"
	CollContact       = "contactmessages"
)

func now() time.Time {
	return time.Now()
}

// listOptions builds pagination and sort options for list queries.
func listOptions(page, limit int, sortField string, asc bool) *options.FindOptions {
	order := -1
	if asc {
		order = 1
	}
	return options.Find().
		SetSort(bson.D{{Key: sortField, Value: order}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))
}
