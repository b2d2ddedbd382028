package call

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/callassist/CallAssist-BookingService/internal/domain"
	"github.com/callassist/CallAssist-BookingService/pkg/dbmetrics"
	"github.com/callassist/CallAssist-BookingService/pkg/psqlbuilder"
)

var callColumns = []string{
	"id",
	"phone",
	"direction",
	"provider",
	"external_id",
	"status",
	"transcript",
	"customer_id",
	"appointment_id",
	"started_at",
	"ended_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий журнала звонков
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория звонков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись журнала звонков
func (r *Repository) Create(ctx context.Context, c *domain.Call) (*domain.Call, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("calls").
		Columns(
			"phone",
			"direction",
			"provider",
			"external_id",
			"status",
			"customer_id",
			"appointment_id",
			"started_at",
		).
		Values(
			domain.CleanPhone(c.Phone),
			c.Direction,
			c.Provider,
			c.ExternalID,
			c.Status,
			c.CustomerID,
			c.AppointmentID,
			c.StartedAt,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return c, nil
}

// GetByID получает звонок по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Call, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByExternalID получает звонок по идентификатору голосового провайдера
func (r *Repository) GetByExternalID(ctx context.Context, externalID string) (*domain.Call, error) {
	return r.getOne(ctx, squirrel.Eq{"external_id": externalID}, "GetByExternalID")
}

// Finish помечает звонок завершенным и сохраняет итоговые данные
func (r *Repository) Finish(ctx context.Context, id int64, status domain.CallStatus, transcript *string, startedAt, endedAt *time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("calls").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()"))

	if transcript != nil {
		updateBuilder = updateBuilder.Set("transcript", transcript)
	}
	if startedAt != nil {
		updateBuilder = updateBuilder.Set("started_at", startedAt)
	}
	if endedAt != nil {
		updateBuilder = updateBuilder.Set("ended_at", endedAt)
	}

	query, args, err := updateBuilder.Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: Finish - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Finish - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Finish - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrCallNotFound
	}

	return nil
}

// LinkAppointment связывает звонок с созданной во время него записью
func (r *Repository) LinkAppointment(ctx context.Context, id, appointmentID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("calls").
		Set("appointment_id", appointmentID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: LinkAppointment - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: LinkAppointment - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: LinkAppointment - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrCallNotFound
	}

	return nil
}

// ListBetween возвращает звонки за интервал [from, to)
func (r *Repository) ListBetween(ctx context.Context, from, to time.Time) ([]*domain.Call, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(callColumns...).
		From("calls").
		Where(squirrel.GtOrEq{"created_at": from}).
		Where(squirrel.Lt{"created_at": to}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBetween - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBetween - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var calls []*domain.Call
	for rows.Next() {
		c, err := scanCall(rows)
		if err != nil {
			return nil, err
		}
		calls = append(calls, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBetween - iterate rows: %v", ErrScanRow, err)
	}

	return calls, nil
}

// CountByStatusBetween возвращает количество звонков по статусам
// за интервал [from, to). Используется аналитикой.
func (r *Repository) CountByStatusBetween(ctx context.Context, from, to time.Time) (map[domain.CallStatus]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("status", "COUNT(*)").
		From("calls").
		Where(squirrel.GtOrEq{"created_at": from}).
		Where(squirrel.Lt{"created_at": to}).
		GroupBy("status").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CountByStatusBetween - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByStatusBetween - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(map[domain.CallStatus]int64)
	for rows.Next() {
		var status domain.CallStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("%w: CountByStatusBetween - scan row: %v", ErrScanRow, err)
		}
		counts[status] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByStatusBetween - iterate rows: %v", ErrScanRow, err)
	}

	return counts, nil
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, method string) (*domain.Call, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(callColumns...).
		From("calls").
		Where(where).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	var c domain.Call
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&c.Phone,
		&c.Direction,
		&c.Provider,
		&c.ExternalID,
		&c.Status,
		&c.Transcript,
		&c.CustomerID,
		&c.AppointmentID,
		&c.StartedAt,
		&c.EndedAt,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCallNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan call: %v", ErrScanRow, method, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return &c, nil
}

func scanCall(rows *sql.Rows) (*domain.Call, error) {
	var c domain.Call
	var createdAt, updatedAt sql.NullTime

	err := rows.Scan(
		&c.ID,
		&c.Phone,
		&c.Direction,
		&c.Provider,
		&c.ExternalID,
		&c.Status,
		&c.Transcript,
		&c.CustomerID,
		&c.AppointmentID,
		&c.StartedAt,
		&c.EndedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: scan call row: %v", ErrScanRow, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return &c, nil
}
