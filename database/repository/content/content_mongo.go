package contentRepo

import (
	"context"
	"fmt"
	"time"

	"codabs/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoContentRepo implements ContentRepository for a single collection.
type MongoContentRepo struct {
	coll *mongo.Collection
}

// NewMongoContentRepo creates a ContentRepository bound to the named collection.
func NewMongoContentRepo(collection string) ContentRepository {
	repo := &MongoContentRepo{coll: database.Collection(collection)}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates the id index shared by every content collection.
func (r *MongoContentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Insert persists a new document.
func (r *MongoContentRepo) Insert(doc interface{}) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", r.coll.Name(), err)
	}
	return nil
}

// FindByID decodes the document with the given id into dest.
func (r *MongoContentRepo) FindByID(id string, dest interface{}) (bool, error) {
	return r.FindOne(bson.M{"id": id}, dest)
}

// FindOne decodes the first document matching filter into dest.
func (r *MongoContentRepo) FindOne(filter bson.M, dest interface{}) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if err := r.coll.FindOne(ctx, filter).Decode(dest); err != nil {
		if err == mongo.ErrNoDocuments {
			return false, nil
		}
		return false, fmt.Errorf("failed to fetch from %s: %w", r.coll.Name(), err)
	}
	return true, nil
}

// FindAll decodes all documents matching filter into dest (a slice pointer).
func (r *MongoContentRepo) FindAll(filter bson.M, opts *options.FindOptions, dest interface{}) error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", r.coll.Name(), err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, dest); err != nil {
		return fmt.Errorf("failed to decode %s documents: %w", r.coll.Name(), err)
	}
	return nil
}

// Count returns the number of documents matching filter.
func (r *MongoContentRepo) Count(filter bson.M) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s documents: %w", r.coll.Name(), err)
	}
	return total, nil
}

// UpdateSet applies a $set update to the document with the given id.
func (r *MongoContentRepo) UpdateSet(id string, set bson.M) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set["updatedAt"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return false, fmt.Errorf("failed to update %s document with id %s: %w", r.coll.Name(), id, err)
	}
	return result.MatchedCount > 0, nil
}

// Delete removes the document with the given id.
func (r *MongoContentRepo) Delete(id string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete %s document with id %s: %w", r.coll.Name(), id, err)
	}
	return result.DeletedCount > 0, nil
}
