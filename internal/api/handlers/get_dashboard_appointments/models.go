package get_dashboard_appointments

import (
	"net/url"
	"strconv"

	"github.com/m04kA/ATL-SchedulingService/internal/service/appointments/models"
)

// ToServiceRequest создает запрос сервиса из query параметров.
// sortDir принимает asc|desc, по умолчанию desc (свежие записи сверху).
func ToServiceRequest(query url.Values) *models.ListAppointmentsRequest {
	req := &models.ListAppointmentsRequest{
		Search:    query.Get("search"),
		View:      query.Get("view"),
		SortField: query.Get("sort"),
		SortAsc:   query.Get("sortDir") == "asc",
	}

	if page, err := strconv.Atoi(query.Get("page")); err == nil {
		req.Page = page
	}
	if pageSize, err := strconv.Atoi(query.Get("pageSize")); err == nil {
		req.PageSize = pageSize
	}

	return req
}
