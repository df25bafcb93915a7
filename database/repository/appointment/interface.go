package appointmentRepo

import (
	"time"

	"codabs/models"

	"go.mongodb.org/mongo-driver/bson"
)

// AppointmentRepository defines methods for appointment data access.
type AppointmentRepository interface {
	// Insert persists a new appointment record.
	Insert(appt *models.Appointment) error
	// GetByID retrieves an appointment by its unique ID. Returns (nil, nil) when absent.
	GetByID(id string) (*models.Appointment, error)
	// UpdateSet applies a $set update to an appointment and returns the updated record.
	UpdateSet(id string, set bson.M) (*models.Appointment, error)
	// FindByDateRange retrieves all appointments whose date falls in [start, end).
	FindByDateRange(start, end time.Time) ([]models.Appointment, error)
	// List retrieves a filtered, sorted, paginated page of appointments.
	List(q models.AppointmentQuery) (*models.AppointmentPage, error)
}

// AvailabilityRepository manages the singleton availability setting.
type AvailabilityRepository interface {
	// Get retrieves the availability setting. Returns (nil, nil) when it has
	// never been toggled.
	Get() (*models.AvailabilitySetting, error)
	// Save upserts the availability setting.
	Save(setting *models.AvailabilitySetting) error
}
