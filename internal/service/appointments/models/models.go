package models

import (
	"errors"
	"time"

	"github.com/m04kA/ATL-SchedulingService/internal/domain"
	"github.com/m04kA/ATL-SchedulingService/internal/infra/storage/appointment"
	"github.com/m04kA/ATL-SchedulingService/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidView возвращается при неизвестном представлении дашборда
	ErrInvalidView = errors.New("invalid dashboard view")

	// ErrInvalidSortField возвращается при неизвестном поле сортировки
	ErrInvalidSortField = errors.New("invalid sort field")
)

// Request модели

// ListAppointmentsRequest запрос на выборку записей для дашборда
type ListAppointmentsRequest struct {
	Search    string `json:"search,omitempty"`    // Подстрока по имени, телефону или email
	View      string `json:"view,omitempty"`      // all | today | tomorrow
	SortField string `json:"sortField,omitempty"` // name | date | time | status
	SortAsc   bool   `json:"sortAsc,omitempty"`
	Page      int    `json:"page,omitempty"`
	PageSize  int    `json:"pageSize,omitempty"`
}

// ToDomainQuery конвертирует request в domain-параметры выборки.
// Пустые значения заменяются значениями по умолчанию, неизвестные отклоняются.
func (r *ListAppointmentsRequest) ToDomainQuery(defaultPageSize int) (domain.DashboardQuery, error) {
	q := domain.DashboardQuery{
		Search:    r.Search,
		View:      domain.ViewAll,
		SortField: domain.SortByDate,
		SortAsc:   r.SortAsc,
		Page:      r.Page,
		PageSize:  r.PageSize,
	}

	if r.View != "" {
		view := domain.ViewFilter(r.View)
		if !view.IsValid() {
			return q, ErrInvalidView
		}
		q.View = view
	}

	if r.SortField != "" {
		field := domain.SortField(r.SortField)
		if !field.IsValid() {
			return q, ErrInvalidSortField
		}
		q.SortField = field
	}

	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = defaultPageSize
	}

	return q, nil
}

// UpdateStatusRequest запрос на смену статуса записи
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateAppointmentRequest запрос на частичное обновление записи
type UpdateAppointmentRequest struct {
	Phone       *string `json:"phone,omitempty"`
	Reason      *string `json:"reason,omitempty"`
	Accessories *string `json:"accessories,omitempty"`
	People      *int    `json:"people,omitempty"`
	Outfits     *int    `json:"outfits,omitempty"`
	Mode        *string `json:"mode,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// IsEmpty возвращает true, если запрос не содержит ни одного поля
func (r *UpdateAppointmentRequest) IsEmpty() bool {
	return r.Phone == nil && r.Reason == nil && r.Accessories == nil &&
		r.People == nil && r.Outfits == nil && r.Mode == nil && r.Status == nil
}

// ToUpdateFields конвертирует запрос в поля обновления репозитория.
// Статус конвертируется отдельно, после проверки перехода.
func (r *UpdateAppointmentRequest) ToUpdateFields(status *domain.AppointmentStatus) appointment.UpdateFields {
	return appointment.UpdateFields{
		Phone:       r.Phone,
		Reason:      r.Reason,
		Accessories: r.Accessories,
		People:      r.People,
		Outfits:     r.Outfits,
		Mode:        r.Mode,
		Status:      status,
	}
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	UID         string         `json:"uid"`
	Name        string         `json:"name"`
	Phone       string         `json:"phone"`
	Email       string         `json:"email"`
	Date        string         `json:"date"` // "2026-03-14"
	Time        types.SlotTime `json:"time"` // "8-00"
	TimeLabel   string         `json:"timeLabel"`
	Status      string         `json:"status"`
	Reason      string         `json:"reason"`
	Accessories string         `json:"accessories,omitempty"`
	People      int            `json:"people"`
	Outfits     int            `json:"outfits"`
	Mode        string         `json:"mode"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// AppointmentListResponse ответ со страницей записей дашборда
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"pageSize"`
	TotalPages   int                   `json:"totalPages"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO.
// Статус вычисляется на момент чтения: просроченные pending и confirmed
// показываются как overdue без записи в хранилище.
func FromDomainAppointment(apt *domain.Appointment, now time.Time) *AppointmentResponse {
	if apt == nil {
		return nil
	}

	return &AppointmentResponse{
		UID:         apt.UID,
		Name:        apt.Name,
		Phone:       apt.Phone,
		Email:       apt.Email,
		Date:        apt.Date.Format(domain.DateFormat),
		Time:        apt.Time,
		TimeLabel:   apt.Time.Label(),
		Status:      string(apt.DisplayStatus(now)),
		Reason:      apt.Reason,
		Accessories: apt.Accessories,
		People:      apt.People,
		Outfits:     apt.Outfits,
		Mode:        apt.Mode,
		CreatedAt:   apt.CreatedAt,
		UpdatedAt:   apt.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует страницу записей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment, total int, q domain.DashboardQuery, now time.Time) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
		Total:        total,
		Page:         q.Page,
		PageSize:     q.PageSize,
	}

	for _, apt := range appointments {
		if aptResp := FromDomainAppointment(apt, now); aptResp != nil {
			resp.Appointments = append(resp.Appointments, *aptResp)
		}
	}

	if q.PageSize > 0 {
		resp.TotalPages = (total + q.PageSize - 1) / q.PageSize
	}

	return resp
}

// ToDomainStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
