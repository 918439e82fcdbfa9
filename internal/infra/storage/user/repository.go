package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/EduManager-BookingService/internal/domain"
	"github.com/m04kA/EduManager-BookingService/pkg/dbmetrics"
	"github.com/m04kA/EduManager-BookingService/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

// Имена уникальных ограничений из миграции
const (
	constraintUsername = "users_username_key"
	constraintEmail    = "users_email_key"
	constraintFullName = "users_full_name_key"
)

var userColumns = []string{
	"id",
	"username",
	"password_hash",
	"email",
	"phone",
	"role",
	"full_name",
}

// Repository репозиторий для работы с пользователями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового пользователя
// Пустые email, телефон и ФИО хранятся как NULL, чтобы не нарушать уникальность
func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("users").
		Columns("username", "password_hash", "email", "phone", "role", "full_name").
		Values(
			user.Username,
			user.PasswordHash,
			nullable(user.Email),
			nullable(user.Phone),
			user.Role,
			nullable(user.FullName),
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&user.ID); err != nil {
		if uerr := uniqueError(err); uerr != nil {
			return nil, uerr
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return user, nil
}

// GetByID получает пользователя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByUsername получает пользователя по логину
func (r *Repository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getOne(ctx, "GetByUsername", squirrel.Eq{"username": username})
}

// GetByEmail получает пользователя по email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, "GetByEmail", squirrel.Eq{"email": email})
}

// GetByFullName получает пользователя по ФИО
func (r *Repository) GetByFullName(ctx context.Context, fullName string) (*domain.User, error) {
	return r.getOne(ctx, "GetByFullName", squirrel.Eq{"full_name": fullName})
}

// List получает всех пользователей в порядке регистрации
func (r *Repository) List(ctx context.Context) ([]*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(userColumns...).
		From("users").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return users, nil
}

// Update частично обновляет пользователя (nil поля не меняются)
func (r *Repository) Update(ctx context.Context, id int64, update domain.UserUpdate) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("users").Where(squirrel.Eq{"id": id})

	changed := false
	if update.Email != nil {
		updateBuilder = updateBuilder.Set("email", nullable(*update.Email))
		changed = true
	}
	if update.Phone != nil {
		updateBuilder = updateBuilder.Set("phone", nullable(*update.Phone))
		changed = true
	}
	if update.Role != nil {
		updateBuilder = updateBuilder.Set("role", *update.Role)
		changed = true
	}
	if update.PasswordHash != nil {
		updateBuilder = updateBuilder.Set("password_hash", *update.PasswordHash)
		changed = true
	}

	// Нечего обновлять: проверяем только существование
	if !changed {
		_, err := r.GetByID(ctx, id)
		return err
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if uerr := uniqueError(err); uerr != nil {
			return uerr
		}
		return fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// Delete удаляет пользователя
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("users").
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
		return ErrUserNotFound
	}

	return nil
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(userColumns...).
		From("users").
		Where(where).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	user, err := scanUser(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan user: %w", ErrScanRow, op, err)
	}

	return user, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	var email, phone, fullName sql.NullString

	if err := row.Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&email,
		&phone,
		&user.Role,
		&fullName,
	); err != nil {
		return nil, err
	}

	user.Email = email.String
	user.Phone = phone.String
	user.FullName = fullName.String

	return &user, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// uniqueError переводит нарушение уникальности в ошибку репозитория
func uniqueError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != uniqueViolation {
		return nil
	}

	switch pqErr.Constraint {
	case constraintUsername:
		return ErrUsernameTaken
	case constraintEmail:
		return ErrEmailTaken
	case constraintFullName:
		return ErrFullNameTaken
	default:
		return fmt.Errorf("%w: unique violation on %s", ErrExecQuery, pqErr.Constraint)
	}
}
