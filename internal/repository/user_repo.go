package repo

import (
	"context"
	"database/sql"
	"errors"

	"clockinout/internal/lib"
	"clockinout/internal/models"
	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) (int, error)
	GetByID(ctx context.Context, userID int) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, userID int) error
}

type UserRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewUserRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *UserRepo {
	return &UserRepo{
		db:     db,
		getter: c,
	}
}

func (r *UserRepo) Create(ctx context.Context, user *models.User) (int, error) {
	const op = "user_repo.Create"

	query := `
		INSERT INTO users (username, password_hash, email, first_name, last_name)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`

	var userID int
	err := withRetry(ctx, func() error {
		return r.getter.DefaultTrOrDB(ctx, r.db).QueryRowContext(
			ctx,
			query,
			user.Username,
			user.PasswordHash,
			user.Email,
			user.FirstName,
			user.LastName,
		).Scan(&userID)
	})
	if err != nil {
		pgErr := &pq.Error{}
		if errors.As(err, &pgErr) {
			if pgErr.Code == uniqueViolationCode {
				return 0, ErrUserExists
			}
		}
		return 0, lib.Err(op, err)
	}

	return userID, nil
}

func (r *UserRepo) GetByID(ctx context.Context, userID int) (*models.User, error) {
	const op = "user_repo.GetByID"

	query := `
		SELECT id, username, password_hash, email, first_name, last_name
		FROM users
		WHERE id = $1;
	`

	var user models.User
	err := withRetry(ctx, func() error {
		return r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &user, query, userID)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &user, nil
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "user_repo.GetByUsername"

	query := `
		SELECT id, username, password_hash, email, first_name, last_name
		FROM users
		WHERE username = $1;
	`

	var user models.User
	err := withRetry(ctx, func() error {
		return r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &user, query, username)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &user, nil
}

func (r *UserRepo) GetAll(ctx context.Context) ([]*models.User, error) {
	const op = "user_repo.GetAll"

	query := `
		SELECT id, username, password_hash, email, first_name, last_name
		FROM users
		ORDER BY id;
	`

	var users []*models.User
	err := withRetry(ctx, func() error {
		return r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &users, query)
	})
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return users, nil
}

func (r *UserRepo) Update(ctx context.Context, user *models.User) error {
	const op = "user_repo.Update"

	query := `
		UPDATE users
		SET username = $1, email = $2, first_name = $3, last_name = $4
		WHERE id = $5;
	`

	var rowsAffected int64
	err := withRetry(ctx, func() error {
		res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(
			ctx,
			query,
			user.Username,
			user.Email,
			user.FirstName,
			user.LastName,
			user.ID,
		)
		if err != nil {
			return err
		}
		rowsAffected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		pgErr := &pq.Error{}
		if errors.As(err, &pgErr) {
			if pgErr.Code == uniqueViolationCode {
				return ErrUserExists
			}
		}
		return lib.Err(op, err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *UserRepo) Delete(ctx context.Context, userID int) error {
	const op = "user_repo.Delete"

	query := `DELETE FROM users WHERE id = $1;`

	var rowsAffected int64
	err := withRetry(ctx, func() error {
		res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, userID)
		if err != nil {
			return err
		}
		rowsAffected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return lib.Err(op, err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
