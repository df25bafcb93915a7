package appointment

import "codabs/models"

// AppointmentService manages the appointment lifecycle and the availability flag.
type AppointmentService interface {
	// Create runs the admission check for the requested slot and, when admitted,
	// persists a pending appointment and notifies the operator.
	Create(req models.AppointmentRequest) (*models.Appointment, error)
	// Accept marks an appointment accepted and emails the requester.
	Accept(id string) (*models.Appointment, error)
	// Reject marks an appointment rejected with the given reason and emails the
	// requester. The reason is required.
	Reject(id, reason string) (*models.Appointment, error)
	// List retrieves a filtered, paginated page of appointments.
	List(q models.AppointmentQuery) (*models.AppointmentPage, error)
	// GetAvailability reports whether new requests are currently being accepted.
	GetAvailability() (bool, error)
	// ToggleAvailability flips the availability flag, creating it (off) on
	// first use, and returns the new value.
	ToggleAvailability() (bool, error)
}
