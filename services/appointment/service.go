package appointment

import (
	"fmt"

	appointmentRepo "codabs/database/repository/appointment"
	"codabs/models"
	"codabs/services/notification"
	"codabs/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// dateLayout is the human-readable format used in notification emails.
const dateLayout = "January 2, 2006 at 3:04 PM"

// ReminderScheduler enqueues a reminder to be delivered ahead of an accepted
// appointment.
type ReminderScheduler interface {
	Schedule(appt *models.Appointment) error
}

// DefaultAppointmentService is the production AppointmentService.
type DefaultAppointmentService struct {
	Repo         appointmentRepo.AppointmentRepository
	Availability appointmentRepo.AvailabilityRepository
	Notifier     notification.NotificationService
	Locker       DayLocker

	// Scheduler is optional; when nil no reminders are queued.
	Scheduler ReminderScheduler

	// CountRejected keeps rejected appointments in the capacity and spacing
	// checks. The site launched with this behavior; keep it on unless product
	// confirms rejected slots should free up.
	CountRejected bool
}

// Create runs the admission check and persists the appointment when admitted.
// The day lock serializes read-decide-write against concurrent requests for
// the same calendar day. The record is the commit point; the operator email is
// sent best-effort afterwards so a mail outage cannot drop a valid booking.
func (s *DefaultAppointmentService) Create(req models.AppointmentRequest) (*models.Appointment, error) {
	if req.Date.IsZero() {
		return nil, &ValidationError{Message: "A valid appointment date is required"}
	}

	if err := s.Locker.Acquire(req.Date); err != nil {
		return nil, fmt.Errorf("failed to lock appointment day: %w", err)
	}
	defer s.Locker.Release(req.Date)

	start, end := DayBounds(req.Date)
	sameDay, err := s.Repo.FindByDateRange(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load same-day appointments: %w", err)
	}
	if !s.CountRejected {
		kept := sameDay[:0]
		for _, a := range sameDay {
			if a.Status != models.AppointmentRejected {
				kept = append(kept, a)
			}
		}
		sameDay = kept
	}

	if decision := EvaluateAdmission(req.Date, sameDay); !decision.Admit {
		return nil, &AdmissionError{Reason: decision.Reason}
	}

	appt := &models.Appointment{
		ID:      uuid.NewString(),
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Date:    req.Date,
		Message: req.Message,
		Status:  models.AppointmentPending,
	}
	if err := s.Repo.Insert(appt); err != nil {
		return nil, fmt.Errorf("failed to persist appointment: %w", err)
	}

	go s.notifyOperatorIntake(appt)

	return appt, nil
}

// Accept marks an appointment accepted and emails the requester. Capacity and
// spacing are not re-validated here.
func (s *DefaultAppointmentService) Accept(id string) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointment: %w", err)
	}
	if appt == nil {
		return nil, &NotFoundError{ID: id}
	}

	updated, err := s.Repo.UpdateSet(id, bson.M{"status": models.AppointmentAccepted})
	if err != nil {
		return nil, fmt.Errorf("failed to accept appointment: %w", err)
	}
	if updated == nil {
		return nil, &NotFoundError{ID: id}
	}

	go s.notifyAccepted(updated)

	if s.Scheduler != nil {
		if err := s.Scheduler.Schedule(updated); err != nil {
			utils.GetLogger().Error("Failed to queue appointment reminder",
				zap.String("appointmentId", updated.ID), zap.Error(err))
		}
	}

	return updated, nil
}

// Reject marks an appointment rejected with the given reason and emails the
// requester. An empty reason fails before any record is loaded or mutated.
func (s *DefaultAppointmentService) Reject(id, reason string) (*models.Appointment, error) {
	if reason == "" {
		return nil, &ValidationError{Message: "Rejection reason is required"}
	}

	appt, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointment: %w", err)
	}
	if appt == nil {
		return nil, &NotFoundError{ID: id}
	}

	updated, err := s.Repo.UpdateSet(id, bson.M{
		"status":             models.AppointmentRejected,
		"reasonForRejection": reason,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reject appointment: %w", err)
	}
	if updated == nil {
		return nil, &NotFoundError{ID: id}
	}

	go s.notifyRejected(updated)

	return updated, nil
}

// List retrieves a filtered, paginated page of appointments.
func (s *DefaultAppointmentService) List(q models.AppointmentQuery) (*models.AppointmentPage, error) {
	return s.Repo.List(q)
}

// GetAvailability reports whether new requests are currently being accepted.
// The flag defaults to false until the first toggle.
func (s *DefaultAppointmentService) GetAvailability() (bool, error) {
	setting, err := s.Availability.Get()
	if err != nil {
		return false, fmt.Errorf("failed to read availability: %w", err)
	}
	if setting == nil {
		return false, nil
	}
	return setting.IsAvailable, nil
}

// ToggleAvailability flips the availability flag and returns the new value.
func (s *DefaultAppointmentService) ToggleAvailability() (bool, error) {
	setting, err := s.Availability.Get()
	if err != nil {
		return false, fmt.Errorf("failed to read availability: %w", err)
	}
	if setting == nil {
		setting = &models.AvailabilitySetting{IsAvailable: false}
	}

	setting.IsAvailable = !setting.IsAvailable
	if err := s.Availability.Save(setting); err != nil {
		return false, fmt.Errorf("failed to save availability: %w", err)
	}
	return setting.IsAvailable, nil
}

func (s *DefaultAppointmentService) notifyOperatorIntake(appt *models.Appointment) {
	formatted := appt.Date.Local().Format(dateLayout)
	subject := fmt.Sprintf("New appointment requested for %s", formatted)
	body := fmt.Sprintf("From: %s <%s>\nPhone: %s\nRequested time: %s\n\n%s",
		appt.Name, appt.Email, appt.Phone, formatted, appt.Message)

	if err := s.Notifier.SendToOperator(appt.Email, subject, body); err != nil {
		utils.GetLogger().Error("Failed to send intake email",
			zap.String("appointmentId", appt.ID), zap.Error(err))
	}
}

func (s *DefaultAppointmentService) notifyAccepted(appt *models.Appointment) {
	body := fmt.Sprintf(`Dear %s,

We are pleased to inform you that your appointment scheduled for %s has been successfully accepted.

Our team is looking forward to speaking with you and addressing your needs. If you have any additional information or documents you'd like to share before the meeting, feel free to reply to this email.

Please ensure you're available on time. If anything changes, kindly notify us in advance.

Thank you for choosing CODABS. We're excited to connect with you soon!

Warm regards,
The CODABS Team`, appt.Name, appt.Date.Local().Format(dateLayout))

	if err := s.Notifier.Send(appt.Email, "Your Appointment Has Been Accepted", body); err != nil {
		utils.GetLogger().Error("Failed to send acceptance email",
			zap.String("appointmentId", appt.ID), zap.Error(err))
	}
}

func (s *DefaultAppointmentService) notifyRejected(appt *models.Appointment) {
	body := fmt.Sprintf(`Dear %s,

Unfortunately we are unable to accommodate your appointment requested for %s.

Reason: %s

Please feel free to request another time that suits you.

Warm regards,
The CODABS Team`, appt.Name, appt.Date.Local().Format(dateLayout), appt.ReasonForRejection)

	if err := s.Notifier.Send(appt.Email, "Your Appointment Request", body); err != nil {
		utils.GetLogger().Error("Failed to send rejection email",
			zap.String("appointmentId", appt.ID), zap.Error(err))
	}
}
