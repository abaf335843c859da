package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/ATL-SchedulingService/internal/domain"
	"github.com/m04kA/ATL-SchedulingService/pkg/psqlbuilder"
)

// Колонки таблицы appointments в порядке сканирования
var appointmentColumns = []string{
	"uid",
	"name",
	"phone",
	"email",
	"date",
	"time",
	"status",
	"reason",
	"accessories",
	"people",
	"outfits",
	"mode",
	"created_at",
	"updated_at",
}

// timeOrderExpr выражение для сортировки по времени слота.
// Время хранится текстовым ключом "H-MM", лексикографический порядок
// ломается на "10-00" < "8-00", поэтому сортируем по минутам от полуночи.
const timeOrderExpr = "(split_part(\"time\", '-', 1)::int * 60 + split_part(\"time\", '-', 2)::int)"

const uniqueViolationCode = "23505"

// Repository репозиторий для работы с записями на примерку
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись.
// Дубликат uid (та же дата, слот и email) возвращает ErrDuplicateUID: проверка
// доступности и вставка не атомарны, уникальный индекс - единственный барьер.
func (r *Repository) Create(ctx context.Context, apt *domain.Appointment) (*domain.Appointment, error) {
	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"uid",
			"name",
			"phone",
			"email",
			"date",
			"time",
			"status",
			"reason",
			"accessories",
			"people",
			"outfits",
			"mode",
		).
		Values(
			apt.UID,
			apt.Name,
			apt.Phone,
			apt.Email,
			apt.Date,
			apt.Time,
			apt.Status,
			apt.Reason,
			apt.Accessories,
			apt.People,
			apt.Outfits,
			apt.Mode,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
			return nil, ErrDuplicateUID
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	apt.CreatedAt = createdAt.Time
	apt.UpdatedAt = updatedAt.Time

	return apt, nil
}

// GetByUID получает запись по идентификатору
func (r *Repository) GetByUID(ctx context.Context, uid string) (*domain.Appointment, error) {
	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"uid": uid}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUID - build select query: %v", ErrBuildQuery, err)
	}

	apt, err := r.scanAppointment(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUID - scan appointment: %v", ErrScanRow, err)
	}

	return apt, nil
}

// GetByFilter получает записи по фильтру (дата и/или email клиента).
// Результат отсортирован по дате и времени слота по возрастанию.
// Используется резолвером доступности: для него фильтр по дате обязателен.
func (r *Repository) GetByFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		OrderBy("date ASC", timeOrderExpr+" ASC")

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"date": domain.DayOf(*filter.Date)})
	}
	if filter.Email != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"email": *filter.Email})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// ListDashboard получает страницу записей для дашборда и общее количество
// записей, подходящих под фильтры.
//
// Порядок применения соответствует контракту дашборда:
// поиск (подстрока по имени/телефону/email без регистра) и фильтр
// представления комбинируются по AND, затем сортировка, затем пагинация.
// Параметр today задает точку отсчета для представлений today/tomorrow.
func (r *Repository) ListDashboard(ctx context.Context, q domain.DashboardQuery, today time.Time) ([]*domain.Appointment, int, error) {
	conditions := dashboardConditions(q, today)

	countBuilder := psqlbuilder.Select("COUNT(*)").From("appointments")
	for _, cond := range conditions {
		countBuilder = countBuilder.Where(cond)
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: ListDashboard - build count query: %v", ErrBuildQuery, err)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: ListDashboard - count rows: %v", ErrExecQuery, err)
	}

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		OrderBy(dashboardOrder(q)...).
		Limit(uint64(q.PageSize)).
		Offset(uint64((q.Page - 1) * q.PageSize))

	for _, cond := range conditions {
		selectBuilder = selectBuilder.Where(cond)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: ListDashboard - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: ListDashboard - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments, err := r.scanAppointments(rows)
	if err != nil {
		return nil, 0, err
	}

	return appointments, total, nil
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, uid string, status domain.AppointmentStatus) error {
	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"uid": uid}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, "UpdateStatus", query, args)
}

// UpdateFields частичное обновление полей записи из дашборда.
// Обновляются только не-nil поля.
type UpdateFields struct {
	Phone       *string
	Reason      *string
	Accessories *string
	People      *int
	Outfits     *int
	Mode        *string
	Status      *domain.AppointmentStatus
}

// IsEmpty возвращает true, если ни одно поле не задано
func (f UpdateFields) IsEmpty() bool {
	return f.Phone == nil && f.Reason == nil && f.Accessories == nil &&
		f.People == nil && f.Outfits == nil && f.Mode == nil && f.Status == nil
}

// Update выполняет частичное обновление записи по uid
func (r *Repository) Update(ctx context.Context, uid string, fields UpdateFields) error {
	updateBuilder := psqlbuilder.Update("appointments").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"uid": uid})

	if fields.Phone != nil {
		updateBuilder = updateBuilder.Set("phone", *fields.Phone)
	}
	if fields.Reason != nil {
		updateBuilder = updateBuilder.Set("reason", *fields.Reason)
	}
	if fields.Accessories != nil {
		updateBuilder = updateBuilder.Set("accessories", *fields.Accessories)
	}
	if fields.People != nil {
		updateBuilder = updateBuilder.Set("people", *fields.People)
	}
	if fields.Outfits != nil {
		updateBuilder = updateBuilder.Set("outfits", *fields.Outfits)
	}
	if fields.Mode != nil {
		updateBuilder = updateBuilder.Set("mode", *fields.Mode)
	}
	if fields.Status != nil {
		updateBuilder = updateBuilder.Set("status", *fields.Status)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, "Update", query, args)
}

// Delete физически удаляет запись (явное действие персонала)
func (r *Repository) Delete(ctx context.Context, uid string) error {
	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"uid": uid}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, "Delete", query, args)
}

// dashboardConditions собирает условия WHERE для выборки дашборда
func dashboardConditions(q domain.DashboardQuery, today time.Time) []squirrel.Sqlizer {
	var conditions []squirrel.Sqlizer

	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		conditions = append(conditions, squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"phone": pattern},
			squirrel.ILike{"email": pattern},
		})
	}

	switch q.View {
	case domain.ViewToday:
		conditions = append(conditions, squirrel.Eq{"date": domain.DayOf(today)})
	case domain.ViewTomorrow:
		conditions = append(conditions, squirrel.Eq{"date": domain.DayOf(today).AddDate(0, 0, 1)})
	}

	return conditions
}

// dashboardOrder собирает ORDER BY для выборки дашборда.
// Вторичная сортировка по дате и времени дает стабильный порядок страниц.
func dashboardOrder(q domain.DashboardQuery) []string {
	dir := "DESC"
	if q.SortAsc {
		dir = "ASC"
	}

	var primary string
	switch q.SortField {
	case domain.SortByName:
		primary = "name " + dir
	case domain.SortByTime:
		primary = timeOrderExpr + " " + dir
	case domain.SortByStatus:
		primary = "status " + dir
	default:
		primary = "date " + dir
	}

	return []string{primary, "date DESC", timeOrderExpr + " ASC", "uid ASC"}
}

func (r *Repository) execExpectingRow(ctx context.Context, op, query string, args []interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var apt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&apt.UID,
		&apt.Name,
		&apt.Phone,
		&apt.Email,
		&apt.Date,
		&apt.Time,
		&apt.Status,
		&apt.Reason,
		&apt.Accessories,
		&apt.People,
		&apt.Outfits,
		&apt.Mode,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	apt.CreatedAt = createdAt.Time
	apt.UpdatedAt = updatedAt.Time

	return &apt, nil
}

func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		apt, err := r.scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, apt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
