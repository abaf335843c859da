package create_appointment

import (
	"time"

	"github.com/m04kA/ATL-SchedulingService/internal/domain"
	"github.com/m04kA/ATL-SchedulingService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	SessionToken string         // Токен сессии клиента, профиль запрашивается у сервиса профилей
	Date         time.Time      // Дата записи (без времени)
	Time         types.SlotTime // Слот каталога, например "8-00"
	Reason       string         // Причина визита (идентификатор из справочника)
	Accessories  string         // Свободный текст: аксессуары
	People       int            // Количество сопровождающих
	Outfits      int            // Количество нарядов
	Mode         string         // Формат встречи (идентификатор из справочника)
	Consent      bool           // Клиент согласился с условиями
	Confirm      bool           // Клиент сразу подтвердил визит
}

// Response модель ответа с созданной записью
type Response struct {
	UID         string
	Name        string
	Phone       string
	Email       string
	Date        time.Time
	Time        types.SlotTime
	Status      string
	Reason      string
	Accessories string
	People      int
	Outfits     int
	Mode        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func toResponse(apt *domain.Appointment) *Response {
	return &Response{
		UID:         apt.UID,
		Name:        apt.Name,
		Phone:       apt.Phone,
		Email:       apt.Email,
		Date:        apt.Date,
		Time:        apt.Time,
		Status:      string(apt.Status),
		Reason:      apt.Reason,
		Accessories: apt.Accessories,
		People:      apt.People,
		Outfits:     apt.Outfits,
		Mode:        apt.Mode,
		CreatedAt:   apt.CreatedAt,
		UpdatedAt:   apt.UpdatedAt,
	}
}
