package contentRepo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ContentRepository is a generic document store shared by the content modules
// (categories, subcategories, services, projects, blogs, testimonials, team,
// FAQs, contact messages). Each service owns one collection-bound instance.
type ContentRepository interface {
	// Insert persists a new document.
	Insert(doc interface{}) error
	// FindByID decodes the document with the given id into dest.
	// Returns false when no document matched.
	FindByID(id string, dest interface{}) (bool, error)
	// FindOne decodes the first document matching filter into dest.
	// Returns false when no document matched.
	FindOne(filter bson.M, dest interface{}) (bool, error)
	// FindAll decodes all documents matching filter into dest (a slice pointer).
	FindAll(filter bson.M, opts *options.FindOptions, dest interface{}) error
	// Count returns the number of documents matching filter.
	Count(filter bson.M) (int64, error)
	// UpdateSet applies a $set update to the document with the given id.
	// Returns false when no document matched.
	UpdateSet(id string, set bson.M) (bool, error)
	// Delete removes the document with the given id.
	// Returns false when no document matched.
	Delete(id string) (bool, error)
}
