package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"codabs/config"
	appointmentRepo "codabs/database/repository/appointment"
	"codabs/models"
	"codabs/services/notification"
	"codabs/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeReminderSend = "reminder:send"

// reminderLead is how far ahead of the appointment the reminder fires.
const reminderLead = 24 * time.Hour

type reminderPayload struct {
	AppointmentID string `json:"appointmentId"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// Scheduler enqueues appointment reminder tasks.
type Scheduler struct {
	client *asynq.Client
}

// NewScheduler creates a Scheduler backed by the reminder queue.
func NewScheduler() *Scheduler {
	return &Scheduler{client: asynq.NewClient(redisOpts())}
}

// Schedule queues a reminder to fire 24 hours before the appointment. Same-day
// acceptances inside the lead window get no reminder.
func (s *Scheduler) Schedule(appt *models.Appointment) error {
	fireAt := appt.Date.Add(-reminderLead)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload, err := json.Marshal(reminderPayload{AppointmentID: appt.ID})
	if err != nil {
		return fmt.Errorf("failed to encode reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeReminderSend, payload)
	if _, err := s.client.Enqueue(task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

// Close releases the queue connection.
func (s *Scheduler) Close() error {
	return s.client.Close()
}

// InitReminderWorker runs the reminder worker in the background.
func InitReminderWorker(repo appointmentRepo.AppointmentRepository, notifier notification.NotificationService) {
	srv := asynq.NewServer(redisOpts(), asynq.Config{
		Concurrency: 10,
		Queues: map[string]int{
			"default": 1,
		},
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderSend, handleReminderTask(repo, notifier))

	go func() {
		logger := utils.GetLogger()
		logger.Info("Starting reminder worker")
		if err := srv.Run(mux); err != nil {
			logger.Error("Reminder worker stopped", zap.Error(err))
		}
	}()
}

func handleReminderTask(repo appointmentRepo.AppointmentRepository, notifier notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p reminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Invalid reminder payload", zap.Error(err))
			return err
		}

		appt, err := repo.GetByID(p.AppointmentID)
		if err != nil {
			return fmt.Errorf("failed to load appointment %s: %w", p.AppointmentID, err)
		}
		// Deleted or no longer accepted appointments need no reminder.
		if appt == nil || appt.Status != models.AppointmentAccepted {
			return nil
		}

		formatted := appt.Date.Local().Format("January 2, 2006 at 3:04 PM")
		body := fmt.Sprintf(`Dear %s,

This is a friendly reminder of your upcoming appointment on %s.

If anything has changed, please let us know as soon as possible.

Warm regards,
The CODABS Team`, appt.Name, formatted)

		if err := notifier.Send(appt.Email, "Appointment Reminder", body); err != nil {
			logger.Error("Failed to send reminder email",
				zap.String("appointmentId", appt.ID), zap.Error(err))
			return err
		}

		logger.Info("Reminder sent", zap.String("appointmentId", appt.ID))
		return nil
	}
}
