package models

import "time"

// Appointment statuses.
const (
	AppointmentPending  = "pending"
	AppointmentAccepted = "accepted"
	AppointmentRejected = "rejected"
)

// AppointmentRequest is the inbound payload for booking an appointment.
type AppointmentRequest struct {
	Name    string    `json:"name" binding:"required"`
	Email   string    `json:"email" binding:"required,email"`
	Phone   string    `json:"phone" binding:"required"`
	Date    time.Time `json:"date" binding:"required"`
	Message string    `json:"message"`
}

// Appointment is a persisted appointment record.
type Appointment struct {
	ID                 string    `bson:"id" json:"id"`
	Name               string    `bson:"name" json:"name"`
	Email              string    `bson:"email" json:"email"`
	Phone              string    `bson:"phone" json:"phone"`
	Date               time.Time `bson:"date" json:"date"`
	Message            string    `bson:"message,omitempty" json:"message,omitempty"`
	Status             string    `bson:"status" json:"status"`
	ReasonForRejection string    `bson:"reasonForRejection,omitempty" json:"reasonForRejection,omitempty"`
	CreatedAt          time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time `bson:"updatedAt" json:"updatedAt"`
}

// AppointmentQuery carries list filters for the admin appointment view.
type AppointmentQuery struct {
	Page      int        `form:"page,default=1"`
	Limit     int        `form:"limit,default=10"`
	Search    string     `form:"search"`
	Status    string     `form:"status"`
	DateFrom  *time.Time `form:"dateFrom"`
	DateTo    *time.Time `form:"dateTo"`
	SortField string     `form:"sortField,default=createdAt"`
	SortOrder string     `form:"sortOrder,default=desc"`
}

// AppointmentPage is a paginated list of appointments.
type AppointmentPage struct {
	Total        int64         `json:"total"`
	Page         int           `json:"page"`
	TotalPages   int64         `json:"totalPages"`
	Appointments []Appointment `json:"appointments"`
}

// AvailabilitySetting is the singleton record gating whether new appointment
// requests are being accepted at all. It is independent of the per-day
// capacity and spacing rules.
type AvailabilitySetting struct {
	ID          string    `bson:"id" json:"id"`
	IsAvailable bool      `bson:"isAvailable" json:"isAvailable"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
