package create_appointment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createAppointment "github.com/m04kA/ATL-SchedulingService/internal/usecase/create_appointment"
)

type fakeUseCase struct {
	resp    *createAppointment.Response
	err     error
	lastReq *createAppointment.Request
}

func (u *fakeUseCase) Execute(_ context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	u.lastReq = req
	if u.err != nil {
		return nil, u.err
	}
	return u.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const validBody = `{
	"date": "2026-03-20",
	"time": "10-00",
	"reason": "fitting",
	"mode": "in_person",
	"people": 2,
	"outfits": 3,
	"consent": true
}`

func doRequest(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer session-token")
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createAppointment.Response{
		UID:    "2026-03-20-10-00-maria.lopez@example.com",
		Name:   "Maria Lopez",
		Email:  "maria.lopez@example.com",
		Date:   time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
		Time:   "10-00",
		Status: "pending",
	}}

	rec := doRequest(t, uc, validBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, uc.lastReq)
	assert.Equal(t, "session-token", uc.lastReq.SessionToken)
	assert.EqualValues(t, "10-00", uc.lastReq.Time)

	var resp AppointmentResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "2026-03-20-10-00-maria.lopez@example.com", resp.UID)
	assert.Equal(t, "2026-03-20", resp.Date)
	assert.Equal(t, "pending", resp.Status)
}

func TestHandle_InvalidBody(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidDate(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{"date": "20/03/2026", "time": "10-00", "consent": true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"consent required", createAppointment.ErrConsentRequired, http.StatusBadRequest},
		{"unauthenticated", createAppointment.ErrUnauthenticated, http.StatusUnauthorized},
		{"date not eligible", createAppointment.ErrDateNotEligible, http.StatusBadRequest},
		{"unknown slot", createAppointment.ErrUnknownSlot, http.StatusBadRequest},
		{"slot passed", createAppointment.ErrSlotPassed, http.StatusBadRequest},
		{"slot not available", createAppointment.ErrSlotNotAvailable, http.StatusConflict},
		{"already booked", createAppointment.ErrAlreadyBooked, http.StatusConflict},
		{"invalid input", createAppointment.ErrInvalidInput, http.StatusBadRequest},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, validBody)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestBearerToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	assert.Empty(t, bearerToken(req))

	req.Header.Set("Authorization", "Bearer abc")
	assert.Equal(t, "abc", bearerToken(req))

	req.Header.Set("Authorization", "Basic abc")
	assert.Empty(t, bearerToken(req))
}
