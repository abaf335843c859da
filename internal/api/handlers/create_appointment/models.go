package create_appointment

import (
	"time"

	"github.com/m04kA/ATL-SchedulingService/internal/domain"
	createAppointment "github.com/m04kA/ATL-SchedulingService/internal/usecase/create_appointment"
	"github.com/m04kA/ATL-SchedulingService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	Date        string `json:"date"` // "2026-03-14"
	Time        string `json:"time"` // "8-00"
	Reason      string `json:"reason"`
	Accessories string `json:"accessories,omitempty"`
	People      int    `json:"people,omitempty"`
	Outfits     int    `json:"outfits,omitempty"`
	Mode        string `json:"mode"`
	Consent     bool   `json:"consent"`
	Confirm     bool   `json:"confirm,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	UID         string    `json:"uid"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Status      string    `json:"status"`
	Reason      string    `json:"reason"`
	Accessories string    `json:"accessories,omitempty"`
	People      int       `json:"people"`
	Outfits     int       `json:"outfits"`
	Mode        string    `json:"mode"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// с парсингом даты и ключа слота
func (r *CreateAppointmentRequest) ToUseCaseRequest(sessionToken string) (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	slot, err := types.NewSlotTimeFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		SessionToken: sessionToken,
		Date:         date,
		Time:         slot,
		Reason:       r.Reason,
		Accessories:  r.Accessories,
		People:       r.People,
		Outfits:      r.Outfits,
		Mode:         r.Mode,
		Consent:      r.Consent,
		Confirm:      r.Confirm,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		UID:         resp.UID,
		Name:        resp.Name,
		Phone:       resp.Phone,
		Email:       resp.Email,
		Date:        resp.Date.Format(domain.DateFormat),
		Time:        resp.Time.String(),
		Status:      resp.Status,
		Reason:      resp.Reason,
		Accessories: resp.Accessories,
		People:      resp.People,
		Outfits:     resp.Outfits,
		Mode:        resp.Mode,
		CreatedAt:   resp.CreatedAt,
		UpdatedAt:   resp.UpdatedAt,
	}
}
