package repo

import (
	"context"
	"database/sql"
	"errors"

	"clockinout/internal/lib"
	"clockinout/internal/models"
	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
)

type TimeEntryRepository interface {
	Create(ctx context.Context, entry *models.TimeEntry) (int, error)
	GetByID(ctx context.Context, id int) (*models.TimeEntry, error)
	GetAll(ctx context.Context) ([]*models.TimeEntry, error)
	GetByUserID(ctx context.Context, userID int) ([]*models.TimeEntry, error)
	Update(ctx context.Context, entry *models.TimeEntry) error
	Delete(ctx context.Context, id int) error
}

type TimeEntryRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewTimeEntryRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *TimeEntryRepo {
	return &TimeEntryRepo{
		db:     db,
		getter: c,
	}
}

func (r *TimeEntryRepo) Create(ctx context.Context, entry *models.TimeEntry) (int, error) {
	const op = "timeentry_repo.Create"

	query := `
		INSERT INTO time_entries (user_id, clock_in_time, clock_out_time, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`

	var entryID int
	err := withRetry(ctx, func() error {
		return r.getter.DefaultTrOrDB(ctx, r.db).QueryRowContext(
			ctx,
			query,
			entry.UserID,
			entry.ClockInTime,
			entry.ClockOutTime,
			entry.Latitude,
			entry.Longitude,
		).Scan(&entryID)
	})
	if err != nil {
		return 0, lib.Err(op, err)
	}

	return entryID, nil
}

func (r *TimeEntryRepo) GetByID(ctx context.Context, id int) (*models.TimeEntry, error) {
	const op = "timeentry_repo.GetByID"

	query := `
		SELECT id, user_id, clock_in_time, clock_out_time, latitude, longitude
		FROM time_entries
		WHERE id = $1;
	`

	var entry models.TimeEntry
	err := withRetry(ctx, func() error {
		return r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &entry, query, id)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &entry, nil
}

func (r *TimeEntryRepo) GetAll(ctx context.Context) ([]*models.TimeEntry, error) {
	const op = "timeentry_repo.GetAll"

	query := `
		SELECT id, user_id, clock_in_time, clock_out_time, latitude, longitude
		FROM time_entries
		ORDER BY id;
	`

	var entries []*models.TimeEntry
	err := withRetry(ctx, func() error {
		return r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &entries, query)
	})
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return entries, nil
}

func (r *TimeEntryRepo) GetByUserID(ctx context.Context, userID int) ([]*models.TimeEntry, error) {
	const op = "timeentry_repo.GetByUserID"

	query := `
		SELECT id, user_id, clock_in_time, clock_out_time, latitude, longitude
		FROM time_entries
		WHERE user_id = $1
		ORDER BY id;
	`

	var entries []*models.TimeEntry
	err := withRetry(ctx, func() error {
		return r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &entries, query, userID)
	})
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return entries, nil
}

func (r *TimeEntryRepo) Update(ctx context.Context, entry *models.TimeEntry) error {
	const op = "timeentry_repo.Update"

	query := `
		UPDATE time_entries
		SET user_id = $1, clock_in_time = $2, clock_out_time = $3, latitude = $4, longitude = $5
		WHERE id = $6;
	`

	var rowsAffected int64
	err := withRetry(ctx, func() error {
		res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(
			ctx,
			query,
			entry.UserID,
			entry.ClockInTime,
			entry.ClockOutTime,
			entry.Latitude,
			entry.Longitude,
			entry.ID,
		)
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

func (r *TimeEntryRepo) Delete(ctx context.Context, id int) error {
	const op = "timeentry_repo.Delete"

	query := `DELETE FROM time_entries WHERE id = $1;`

	var rowsAffected int64
	err := withRetry(ctx, func() error {
		res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, id)
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
