package appointmentRepo

import (
	"fmt"
	"math"
	"time"

	"codabs/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindByDateRange retrieves all appointments whose date falls in [start, end).
func (r *MongoAppointmentRepo) FindByDateRange(start, end time.Time) ([]models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"date": bson.M{"$gte": start, "$lt": end}}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments by date range: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}

// List retrieves a filtered, sorted, paginated page of appointments.
func (r *MongoAppointmentRepo) List(q models.AppointmentQuery) (*models.AppointmentPage, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := buildListFilter(q)

	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 10
	}

	sortField := q.SortField
	if sortField == "" {
		sortField = "createdAt"
	}
	sortOrder := -1
	if q.SortOrder == "asc" {
		sortOrder = 1
	}

	opts := options.Find().
		SetSort(bson.D{{Key: sortField, Value: sortOrder}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count appointments: %w", err)
	}

	return &models.AppointmentPage{
		Total:        total,
		Page:         page,
		TotalPages:   int64(math.Ceil(float64(total) / float64(limit))),
		Appointments: appts,
	}, nil
}

// buildListFilter translates an AppointmentQuery into a Mongo filter document.
func buildListFilter(q models.AppointmentQuery) bson.M {
	filter := bson.M{}

	if q.Search != "" {
		regex := primitive.Regex{Pattern: q.Search, Options: "i"}
		filter["$or"] = []bson.M{
			{"name": regex},
			{"email": regex},
			{"phone": regex},
			{"message": regex},
		}
	}

	switch q.Status {
	case models.AppointmentPending, models.AppointmentAccepted, models.AppointmentRejected:
		filter["status"] = q.Status
	}

	if q.DateFrom != nil || q.DateTo != nil {
		dateFilter := bson.M{}
		if q.DateFrom != nil {
			dateFilter["$gte"] = *q.DateFrom
		}
		if q.DateTo != nil {
			dateFilter["$lte"] = *q.DateTo
		}
		filter["date"] = dateFilter
	}

	return filter
}
