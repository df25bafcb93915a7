package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"codabs/models"
	"codabs/services/appointment"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAppointmentService struct {
	createErr error
	created   *models.Appointment
	acceptErr error
	rejectErr error
	available bool
}

func (s *stubAppointmentService) Create(req models.AppointmentRequest) (*models.Appointment, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.created, nil
}

func (s *stubAppointmentService) Accept(id string) (*models.Appointment, error) {
	if s.acceptErr != nil {
		return nil, s.acceptErr
	}
	return &models.Appointment{ID: id, Status: models.AppointmentAccepted}, nil
}

func (s *stubAppointmentService) Reject(id, reason string) (*models.Appointment, error) {
	if s.rejectErr != nil {
		return nil, s.rejectErr
	}
	return &models.Appointment{ID: id, Status: models.AppointmentRejected, ReasonForRejection: reason}, nil
}

func (s *stubAppointmentService) List(q models.AppointmentQuery) (*models.AppointmentPage, error) {
	return &models.AppointmentPage{Page: q.Page, TotalPages: 1}, nil
}

func (s *stubAppointmentService) GetAvailability() (bool, error) {
	return s.available, nil
}

func (s *stubAppointmentService) ToggleAvailability() (bool, error) {
	s.available = !s.available
	return s.available, nil
}

func newAppointmentRouter(svc appointment.AppointmentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAppointmentHandler(svc)
	r := gin.New()
	r.POST("/api/appointment", h.CreateAppointmentHandler)
	r.GET("/api/appointment", h.ListAppointmentsHandler)
	r.PUT("/api/appointment/:id/accept", h.AcceptAppointmentHandler)
	r.PUT("/api/appointment/:id/reject", h.RejectAppointmentHandler)
	r.GET("/api/appointment/availability", h.GetAvailabilityHandler)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateAppointment_Created(t *testing.T) {
	svc := &stubAppointmentService{created: &models.Appointment{
		ID: "a1", Name: "Jane", Status: models.AppointmentPending,
	}}
	r := newAppointmentRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/api/appointment", gin.H{
		"name":    "Jane",
		"email":   "jane@example.com",
		"phone":   "+254700000000",
		"date":    time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		"message": "Site visit",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success     bool               `json:"success"`
		Appointment models.Appointment `json:"appointment"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "a1", resp.Appointment.ID)
}

func TestCreateAppointment_MissingFields(t *testing.T) {
	r := newAppointmentRouter(&stubAppointmentService{})

	w := doJSON(t, r, http.MethodPost, "/api/appointment", gin.H{"name": "Jane"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), codeValidation)
}

func TestCreateAppointment_AdmissionRejected(t *testing.T) {
	svc := &stubAppointmentService{
		createErr: &appointment.AdmissionError{Reason: appointment.CapacityReason},
	}
	r := newAppointmentRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/api/appointment", gin.H{
		"name":    "Jane",
		"email":   "jane@example.com",
		"phone":   "+254700000000",
		"date":    time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		"message": "Site visit",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), codeAdmission)
	assert.Contains(t, w.Body.String(), appointment.CapacityReason)
}

func TestCreateAppointment_ServerError(t *testing.T) {
	svc := &stubAppointmentService{createErr: errors.New("mongo down")}
	r := newAppointmentRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/api/appointment", gin.H{
		"name":    "Jane",
		"email":   "jane@example.com",
		"phone":   "+254700000000",
		"date":    time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		"message": "Site visit",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// Internal details never leak to the client.
	assert.NotContains(t, w.Body.String(), "mongo down")
}

func TestAcceptAppointment_NotFound(t *testing.T) {
	svc := &stubAppointmentService{acceptErr: &appointment.NotFoundError{ID: "missing"}}
	r := newAppointmentRouter(svc)

	w := doJSON(t, r, http.MethodPut, "/api/appointment/missing/accept", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRejectAppointment_RequiresReason(t *testing.T) {
	svc := &stubAppointmentService{rejectErr: &appointment.ValidationError{Message: "Rejection reason is required"}}
	r := newAppointmentRouter(svc)

	w := doJSON(t, r, http.MethodPut, "/api/appointment/a1/reject", gin.H{"reasonForRejection": ""})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), codeValidation)
}

func TestRejectAppointment_OK(t *testing.T) {
	r := newAppointmentRouter(&stubAppointmentService{})

	w := doJSON(t, r, http.MethodPut, "/api/appointment/a1/reject", gin.H{"reasonForRejection": "Fully booked"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), models.AppointmentRejected)
}

func TestGetAvailability(t *testing.T) {
	r := newAppointmentRouter(&stubAppointmentService{available: true})

	w := doJSON(t, r, http.MethodGet, "/api/appointment/availability", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"isAvailable":true`)
}

func TestListAppointments(t *testing.T) {
	r := newAppointmentRouter(&stubAppointmentService{})

	w := doJSON(t, r, http.MethodGet, "/api/appointment?page=2&limit=5", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"page":2`)
}
