package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/EduManager-BookingService/internal/domain"
	"github.com/m04kA/EduManager-BookingService/pkg/dbmetrics"
	"github.com/m04kA/EduManager-BookingService/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"room_id",
	"user_id",
	"booker_name",
	"start_time",
	"duration_label",
	"status",
	"created_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"room_id",
			"user_id",
			"booker_name",
			"start_time",
			"duration_label",
			"status",
		).
		Values(
			booking.RoomID,
			booking.UserID,
			booking.BookerName,
			booking.StartTime,
			booking.DurationLabel,
			booking.Status,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	var userID sql.NullInt64
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.RoomID,
		&userID,
		&booking.BookerName,
		&booking.StartTime,
		&booking.DurationLabel,
		&booking.Status,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	booking.UserID = userID.Int64
	booking.CreatedAt = createdAt.Time

	return &booking, nil
}

// List получает бронирования с фильтрацией
//
// Примеры использования:
//
// 1. Все бронирования комнаты в порядке хранения (для проверки конфликтов):
//    filter := domain.BookingsFilter{RoomID: &roomID}
//
// 2. Последние 10 бронирований:
//    filter := domain.BookingsFilter{Latest: true, Limit: 10}
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := applyFilter(psqlbuilder.Select(bookingColumns...).From("bookings"), filter, "")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListHistory получает историю бронирований вместе с названиями комнат
// Для бронирований удалённых комнат возвращается domain.UnknownRoomName
func (r *Repository) ListHistory(ctx context.Context, filter domain.BookingsFilter) ([]*domain.BookingHistoryItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"b.id",
		"b.booker_name",
		"COALESCE(r.room_name, '')",
		"b.start_time",
		"b.duration_label",
		"b.status",
	).
		From("bookings b").
		LeftJoin("classrooms r ON r.id = b.room_id")

	selectBuilder = applyFilter(selectBuilder, filter, "b.")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListHistory - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListHistory - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]*domain.BookingHistoryItem, 0)
	for rows.Next() {
		var item domain.BookingHistoryItem
		if err := rows.Scan(
			&item.BookingID,
			&item.BookerName,
			&item.RoomName,
			&item.StartTime,
			&item.DurationLabel,
			&item.Status,
		); err != nil {
			return nil, fmt.Errorf("%w: ListHistory - scan row: %w", ErrScanRow, err)
		}
		if item.RoomName == "" {
			item.RoomName = domain.UnknownRoomName
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListHistory - rows error: %w", ErrScanRow, err)
	}

	return items, nil
}

// Count считает бронирования. userID = nil - все бронирования
func (r *Repository) Count(ctx context.Context, userID *int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("COUNT(*)").From("bookings")
	if userID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"user_id": *userID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %w", ErrScanRow, err)
	}

	return count, nil
}

// Delete удаляет бронирование
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// DeleteByRoom удаляет все бронирования комнаты и возвращает их количество
// Используется при переводе комнаты в обслуживание
func (r *Repository) DeleteByRoom(ctx context.Context, roomID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"room_id": roomID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByRoom - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByRoom - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByRoom - get rows affected: %w", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// applyFilter добавляет условия фильтра. prefix - алиас таблицы для запросов с JOIN
func applyFilter(b squirrel.SelectBuilder, filter domain.BookingsFilter, prefix string) squirrel.SelectBuilder {
	if filter.RoomID != nil {
		b = b.Where(squirrel.Eq{prefix + "room_id": *filter.RoomID})
	}
	if filter.UserID != nil {
		b = b.Where(squirrel.Eq{prefix + "user_id": *filter.UserID})
	}

	if filter.Latest {
		b = b.OrderBy(prefix + "id DESC")
	} else {
		b = b.OrderBy(prefix + "id ASC")
	}

	if filter.Limit > 0 {
		b = b.Limit(filter.Limit)
	}

	return b
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var userID sql.NullInt64
		var createdAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.RoomID,
			&userID,
			&booking.BookerName,
			&booking.StartTime,
			&booking.DurationLabel,
			&booking.Status,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %w", ErrScanRow, err)
		}

		booking.UserID = userID.Int64
		booking.CreatedAt = createdAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}
