package appointment

import (
	"fmt"
	"testing"
	"time"

	"codabs/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeRepo struct {
	appts        []models.Appointment
	getByIDCalls int
	updates      int
}

func (r *fakeRepo) Insert(appt *models.Appointment) error {
	r.appts = append(r.appts, *appt)
	return nil
}

func (r *fakeRepo) GetByID(id string) (*models.Appointment, error) {
	r.getByIDCalls++
	for i := range r.appts {
		if r.appts[i].ID == id {
			found := r.appts[i]
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) UpdateSet(id string, set bson.M) (*models.Appointment, error) {
	r.updates++
	for i := range r.appts {
		if r.appts[i].ID != id {
			continue
		}
		if status, ok := set["status"].(string); ok {
			r.appts[i].Status = status
		}
		if reason, ok := set["reasonForRejection"].(string); ok {
			r.appts[i].ReasonForRejection = reason
		}
		updated := r.appts[i]
		return &updated, nil
	}
	return nil, nil
}

func (r *fakeRepo) FindByDateRange(start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appts {
		if !a.Date.Before(start) && a.Date.Before(end) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeRepo) List(q models.AppointmentQuery) (*models.AppointmentPage, error) {
	return &models.AppointmentPage{
		Appointments: r.appts,
		Total:        int64(len(r.appts)),
		Page:         1,
		TotalPages:   1,
	}, nil
}

type fakeAvailability struct {
	setting *models.AvailabilitySetting
}

func (a *fakeAvailability) Get() (*models.AvailabilitySetting, error) {
	return a.setting, nil
}

func (a *fakeAvailability) Save(setting *models.AvailabilitySetting) error {
	a.setting = setting
	return nil
}

type sentMail struct {
	to      string
	subject string
}

type fakeNotifier struct {
	mails chan sentMail
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{mails: make(chan sentMail, 10)}
}

func (n *fakeNotifier) Send(to, subject, body string) error {
	n.mails <- sentMail{to: to, subject: subject}
	return nil
}

func (n *fakeNotifier) SendToOperator(replyTo, subject, body string) error {
	n.mails <- sentMail{to: "operator", subject: subject}
	return nil
}

func (n *fakeNotifier) waitMail(t *testing.T) sentMail {
	t.Helper()
	select {
	case m := <-n.mails:
		return m
	case <-time.After(2 * time.Second):
		t.Fatal("expected an email to be sent")
		return sentMail{}
	}
}

type noopLocker struct{}

func (noopLocker) Acquire(day time.Time) error { return nil }
func (noopLocker) Release(day time.Time)       {}

type fakeScheduler struct {
	scheduled []string
}

func (s *fakeScheduler) Schedule(appt *models.Appointment) error {
	s.scheduled = append(s.scheduled, appt.ID)
	return nil
}

func newService(repo *fakeRepo, notifier *fakeNotifier) *DefaultAppointmentService {
	return &DefaultAppointmentService{
		Repo:          repo,
		Availability:  &fakeAvailability{},
		Notifier:      notifier,
		Locker:        noopLocker{},
		CountRejected: true,
	}
}

func request(date time.Time) models.AppointmentRequest {
	return models.AppointmentRequest{
		Name:    "Jane Mwangi",
		Email:   "jane@example.com",
		Phone:   "+254700000000",
		Date:    date,
		Message: "Site visit for a residential build",
	}
}

func TestCreate_RequiresDate(t *testing.T) {
	repo := &fakeRepo{}
	svc := newService(repo, newFakeNotifier())

	_, err := svc.Create(request(time.Time{}))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, repo.appts)
}

func TestCreate_AdmitsAndNotifiesOperator(t *testing.T) {
	repo := &fakeRepo{}
	notifier := newFakeNotifier()
	svc := newService(repo, notifier)

	appt, err := svc.Create(request(at(10, 0)))
	require.NoError(t, err)

	assert.NotEmpty(t, appt.ID)
	assert.Equal(t, models.AppointmentPending, appt.Status)
	require.Len(t, repo.appts, 1)

	mail := notifier.waitMail(t)
	assert.Equal(t, "operator", mail.to)
}

func TestCreate_RejectsAtCapacity(t *testing.T) {
	repo := &fakeRepo{}
	for i, h := range []int{8, 11, 14} {
		repo.appts = append(repo.appts, models.Appointment{
			ID: fmt.Sprintf("a%d", i), Date: at(h, 0), Status: models.AppointmentPending,
		})
	}
	svc := newService(repo, newFakeNotifier())

	_, err := svc.Create(request(at(17, 0)))

	var aerr *AdmissionError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, CapacityReason, aerr.Reason)
	assert.Len(t, repo.appts, 3)
}

func TestCreate_RejectsTooClose(t *testing.T) {
	repo := &fakeRepo{}
	repo.appts = append(repo.appts, models.Appointment{ID: "a1", Date: at(10, 0)})
	svc := newService(repo, newFakeNotifier())

	_, err := svc.Create(request(at(11, 30)))

	var aerr *AdmissionError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, SpacingReason, aerr.Reason)
}

func TestCreate_RejectedSlotsFreedWhenNotCounted(t *testing.T) {
	repo := &fakeRepo{}
	repo.appts = append(repo.appts,
		models.Appointment{ID: "a1", Date: at(8, 0), Status: models.AppointmentAccepted},
		models.Appointment{ID: "a2", Date: at(11, 0), Status: models.AppointmentPending},
		models.Appointment{ID: "a3", Date: at(14, 0), Status: models.AppointmentRejected},
	)

	svc := newService(repo, newFakeNotifier())
	_, err := svc.Create(request(at(17, 0)))
	var aerr *AdmissionError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, CapacityReason, aerr.Reason)

	svc.CountRejected = false
	appt, err := svc.Create(request(at(17, 0)))
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentPending, appt.Status)
}

func TestAccept_UnknownID(t *testing.T) {
	repo := &fakeRepo{}
	svc := newService(repo, newFakeNotifier())

	_, err := svc.Accept("missing")

	var nerr *NotFoundError
	require.ErrorAs(t, err, &nerr)
	assert.Zero(t, repo.updates)
}

func TestAccept_UpdatesAndSchedulesReminder(t *testing.T) {
	repo := &fakeRepo{}
	repo.appts = append(repo.appts, models.Appointment{
		ID: "a1", Name: "Jane", Email: "jane@example.com",
		Date: at(10, 0), Status: models.AppointmentPending,
	})
	notifier := newFakeNotifier()
	scheduler := &fakeScheduler{}
	svc := newService(repo, notifier)
	svc.Scheduler = scheduler

	appt, err := svc.Accept("a1")
	require.NoError(t, err)

	assert.Equal(t, models.AppointmentAccepted, appt.Status)
	assert.Equal(t, []string{"a1"}, scheduler.scheduled)
	mail := notifier.waitMail(t)
	assert.Equal(t, "jane@example.com", mail.to)
}

func TestReject_RequiresReason(t *testing.T) {
	repo := &fakeRepo{}
	repo.appts = append(repo.appts, models.Appointment{ID: "a1", Date: at(10, 0)})
	svc := newService(repo, newFakeNotifier())

	_, err := svc.Reject("a1", "")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	// Validation fails before the record is even loaded.
	assert.Zero(t, repo.getByIDCalls)
	assert.Zero(t, repo.updates)
}

func TestReject_StoresReason(t *testing.T) {
	repo := &fakeRepo{}
	repo.appts = append(repo.appts, models.Appointment{
		ID: "a1", Name: "Jane", Email: "jane@example.com",
		Date: at(10, 0), Status: models.AppointmentPending,
	})
	notifier := newFakeNotifier()
	svc := newService(repo, notifier)

	appt, err := svc.Reject("a1", "Fully booked that week")
	require.NoError(t, err)

	assert.Equal(t, models.AppointmentRejected, appt.Status)
	assert.Equal(t, "Fully booked that week", appt.ReasonForRejection)
	notifier.waitMail(t)
}

func TestReject_UnknownID(t *testing.T) {
	repo := &fakeRepo{}
	svc := newService(repo, newFakeNotifier())

	_, err := svc.Reject("missing", "some reason")

	var nerr *NotFoundError
	require.ErrorAs(t, err, &nerr)
	assert.Zero(t, repo.updates)
}

func TestAvailability_DefaultsToFalse(t *testing.T) {
	svc := newService(&fakeRepo{}, newFakeNotifier())

	available, err := svc.GetAvailability()
	require.NoError(t, err)
	assert.False(t, available)
}

func TestToggleAvailability(t *testing.T) {
	svc := newService(&fakeRepo{}, newFakeNotifier())

	available, err := svc.ToggleAvailability()
	require.NoError(t, err)
	assert.True(t, available)

	available, err = svc.GetAvailability()
	require.NoError(t, err)
	assert.True(t, available)

	available, err = svc.ToggleAvailability()
	require.NoError(t, err)
	assert.False(t, available)
}
