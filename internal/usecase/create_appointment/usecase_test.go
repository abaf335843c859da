package create_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ATL-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/ATL-SchedulingService/internal/infra/storage/appointment"
	"github.com/m04kA/ATL-SchedulingService/internal/integrations/profileservice"
)

type fakeRepo struct {
	existing  []*domain.Appointment
	filterErr error
	createErr error
	created   *domain.Appointment
}

func (r *fakeRepo) Create(_ context.Context, apt *domain.Appointment) (*domain.Appointment, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.created = apt
	out := *apt
	out.CreatedAt = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	out.UpdatedAt = out.CreatedAt
	return &out, nil
}

func (r *fakeRepo) GetByFilter(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	if r.filterErr != nil {
		return nil, r.filterErr
	}
	return r.existing, nil
}

type fakeProfileClient struct {
	profile *profileservice.Profile
	err     error
}

func (c *fakeProfileClient) GetProfile(_ context.Context, _ string) (*profileservice.Profile, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.profile, nil
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testProfile = &profileservice.Profile{
	Name:  "Maria Lopez",
	Email: "Maria.Lopez@Example.com",
	Phone: "+34600111222",
}

// Вторник 2026-03-10, 9:00 утра
var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func validRequest() *Request {
	return &Request{
		SessionToken: "session-token",
		Date:         time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
		Time:         "10-00",
		Reason:       "fitting",
		Mode:         "in_person",
		People:       2,
		Outfits:      3,
		Consent:      true,
	}
}

func newTestUseCase(repo *fakeRepo, client *fakeProfileClient) *UseCase {
	uc := NewUseCase(repo, client, nopLogger{})
	uc.timeProvider = &fixedTime{now: testNow}
	return uc
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(repo, &fakeProfileClient{profile: testProfile})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "2026-03-20-10-00-maria.lopez@example.com", resp.UID)
	assert.Equal(t, "Maria Lopez", resp.Name)
	assert.Equal(t, "maria.lopez@example.com", resp.Email, "email is normalized to lowercase")
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, 2, resp.People)
	assert.Equal(t, 3, resp.Outfits)
}

func TestExecute_ConfirmFlagSetsConfirmedStatus(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(repo, &fakeProfileClient{profile: testProfile})

	req := validRequest()
	req.Confirm = true

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
}

func TestExecute_ZeroCountsDefaultToOne(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(repo, &fakeProfileClient{profile: testProfile})

	req := validRequest()
	req.People = 0
	req.Outfits = 0

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.People)
	assert.Equal(t, 1, resp.Outfits)
}

func TestExecute_ConsentRequired(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, &fakeProfileClient{profile: testProfile})

	req := validRequest()
	req.Consent = false

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrConsentRequired)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, &fakeProfileClient{profile: testProfile})

	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{"missing session token", func(r *Request) { r.SessionToken = "" }, ErrUnauthenticated},
		{"zero date", func(r *Request) { r.Date = time.Time{} }, ErrInvalidInput},
		{"empty time", func(r *Request) { r.Time = "" }, ErrInvalidInput},
		{"unknown reason", func(r *Request) { r.Reason = "wedding" }, ErrInvalidInput},
		{"unknown mode", func(r *Request) { r.Mode = "phone" }, ErrInvalidInput},
		{"too many people", func(r *Request) { r.People = domain.MaxPeopleCount + 1 }, ErrInvalidInput},
		{"too many outfits", func(r *Request) { r.Outfits = domain.MaxOutfitsCount + 1 }, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_ProfileUnavailable(t *testing.T) {
	tests := []struct {
		name      string
		clientErr error
	}{
		{"unauthenticated", profileservice.ErrUnauthenticated},
		{"profile not found", profileservice.ErrProfileNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeRepo{}, &fakeProfileClient{err: tt.clientErr})
			_, err := uc.Execute(context.Background(), validRequest())
			assert.ErrorIs(t, err, ErrUnauthenticated)
		})
	}
}

func TestExecute_ProfileServiceFailure(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, &fakeProfileClient{err: errors.New("timeout")})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_DateNotEligible(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, &fakeProfileClient{profile: testProfile})

	tests := []struct {
		name string
		d    time.Time
	}{
		{"sunday", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"before window", time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)},
		{"past window", testNow.AddDate(0, 0, domain.BookingWindowDays+2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.Date = tt.d
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrDateNotEligible)
		})
	}
}

func TestExecute_UnknownOrDisabledSlot(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, &fakeProfileClient{profile: testProfile})

	req := validRequest()
	req.Time = "7-00"
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrUnknownSlot)

	// Обеденный слот есть в каталоге, но выключен
	req = validRequest()
	req.Time = "12-40"
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrUnknownSlot)
}

func TestExecute_SlotPassedToday(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, &fakeProfileClient{profile: testProfile})

	req := validRequest()
	req.Date = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC) // сегодня
	req.Time = "8-00"                                       // 9:00 уже позже

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotPassed)
}

func TestExecute_SlotNotAvailable(t *testing.T) {
	targetDate := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	repo := &fakeRepo{existing: []*domain.Appointment{
		{Date: targetDate, Time: "10-00", Status: domain.StatusConfirmed},
		{Date: targetDate, Time: "10-00", Status: domain.StatusPending},
	}}
	uc := newTestUseCase(repo, &fakeProfileClient{profile: testProfile})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_NoDoubleSlotTodayCapacityOne(t *testing.T) {
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeRepo{existing: []*domain.Appointment{
		{Date: today, Time: "14-00", Status: domain.StatusPending},
	}}
	uc := newTestUseCase(repo, &fakeProfileClient{profile: testProfile})

	req := validRequest()
	req.Date = today
	req.Time = "14-00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_DuplicateUID(t *testing.T) {
	repo := &fakeRepo{createErr: appointmentRepo.ErrDuplicateUID}
	uc := newTestUseCase(repo, &fakeProfileClient{profile: testProfile})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrAlreadyBooked)
}

func TestExecute_RepositoryFetchError(t *testing.T) {
	repo := &fakeRepo{filterErr: errors.New("connection refused")}
	uc := newTestUseCase(repo, &fakeProfileClient{profile: testProfile})

	// Создание записи, в отличие от резолвера, не деградирует открыто
	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}
