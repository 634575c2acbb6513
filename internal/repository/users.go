package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mmeshcher/retail-store/internal/model"
)

const userColumns = `id, user_name, user_type, registration_date, password_hash`

// CreateUser сохраняет нового пользователя и возвращает его с присвоенным идентификатором.
func (r *PostgresRepository) CreateUser(ctx context.Context, u model.User) (*model.User, error) {
	u.ID = uuid.NewString()

	err := r.withRetry(ctx, func() error {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO users (id, user_name, user_type, registration_date, password_hash)
			 VALUES ($1, $2, $3, $4, $5)`,
			u.ID, u.UserName, string(u.UserType), u.RegistrationDate, u.PasswordHash,
		)
		return err
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", ErrUserExists, u.UserName)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return &u, nil
}

// GetUserByUserName возвращает пользователя по имени.
func (r *PostgresRepository) GetUserByUserName(ctx context.Context, userName string) (*model.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE user_name = $1`,
		userName,
	)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return u, nil
}

// GetUsers возвращает всех пользователей в порядке регистрации.
func (r *PostgresRepository) GetUsers(ctx context.Context) ([]model.User, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY registration_date, user_name`,
	)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return users, nil
}

func scanUser(row pgx.Row) (*model.User, error) {
	var (
		u        model.User
		userType string
	)
	if err := row.Scan(&u.ID, &u.UserName, &userType, &u.RegistrationDate, &u.PasswordHash); err != nil {
		return nil, err
	}
	u.UserType = model.UserType(userType)
	return &u, nil
}
