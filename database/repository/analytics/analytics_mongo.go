package analyticsRepo

import (
	"context"
	"fmt"
	"time"

	"codabs/database"
	"codabs/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AnalyticsRepository defines methods for visit tracking data access.
type AnalyticsRepository interface {
	// Insert records a single visit.
	Insert(visit *models.Visit) error
	// CountByType counts visits of the given type.
	CountByType(visitType string) (int64, error)
	// ViewsByReference aggregates per-content view counts for the given visit
	// type, joining titles from the named content collection.
	ViewsByReference(visitType, contentCollection string) ([]models.ContentViews, error)
}

// MongoAnalyticsRepo implements AnalyticsRepository using MongoDB.
type MongoAnalyticsRepo struct {
	coll *mongo.Collection
}

// NewMongoAnalyticsRepo creates a new instance of AnalyticsRepository using MongoDB.
func NewMongoAnalyticsRepo() AnalyticsRepository {
	return &MongoAnalyticsRepo{coll: database.Collection("analytics")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Insert records a single visit.
func (r *MongoAnalyticsRepo) Insert(visit *models.Visit) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	visit.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, visit); err != nil {
		return fmt.Errorf("failed to record visit: %w", err)
	}
	return nil
}

// CountByType counts visits of the given type.
func (r *MongoAnalyticsRepo) CountByType(visitType string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, bson.M{"type": visitType})
	if err != nil {
		return 0, fmt.Errorf("failed to count %s visits: %w", visitType, err)
	}
	return total, nil
}

// ViewsByReference aggregates per-content view counts for the given visit type.
func (r *MongoAnalyticsRepo) ViewsByReference(visitType, contentCollection string) ([]models.ContentViews, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"type": visitType, "referenceId": bson.M{"$ne": ""}}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$referenceId",
			"views": bson.M{"$sum": 1},
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         contentCollection,
			"localField":   "_id",
			"foreignField": "id",
			"as":           "content",
		}}},
		{{Key: "$unwind", Value: "$content"}},
		{{Key: "$project", Value: bson.M{
			"views": 1,
			"title": "$content.title",
		}}},
		{{Key: "$sort", Value: bson.M{"views": -1}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate %s views: %w", visitType, err)
	}
	defer cursor.Close(ctx)

	var views []models.ContentViews
	if err := cursor.All(ctx, &views); err != nil {
		return nil, fmt.Errorf("failed to decode %s views: %w", visitType, err)
	}
	return views, nil
}
