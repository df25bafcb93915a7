package appointmentRepo

import (
	"fmt"
	"time"

	"codabs/database"
	"codabs/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// availabilitySettingID is the fixed identity of the singleton setting record.
const availabilitySettingID = "appointment-availability"

// MongoAvailabilityRepo implements AvailabilityRepository using a dedicated
// settings collection. The flag used to live as a sentinel field on an
// appointment document; it now has its own record with a fixed identity.
type MongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo creates a new instance of AvailabilityRepository using MongoDB.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	return &MongoAvailabilityRepo{coll: database.Collection("settings")}
}

// Get retrieves the availability setting.
func (r *MongoAvailabilityRepo) Get() (*models.AvailabilitySetting, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var setting models.AvailabilitySetting
	if err := r.coll.FindOne(ctx, bson.M{"id": availabilitySettingID}).Decode(&setting); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch availability setting: %w", err)
	}
	return &setting, nil
}

// Save upserts the availability setting.
func (r *MongoAvailabilityRepo) Save(setting *models.AvailabilitySetting) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	setting.ID = availabilitySettingID
	setting.UpdatedAt = time.Now()

	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"id": availabilitySettingID}, setting, opts); err != nil {
		return fmt.Errorf("failed to save availability setting: %w", err)
	}
	return nil
}
