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

type TeamRepository interface {
	Create(ctx context.Context, teamName string) (int, error)
	GetByID(ctx context.Context, teamID int) (*models.Team, error)
	GetAll(ctx context.Context) ([]*models.Team, error)
	GetMembers(ctx context.Context, teamID int) ([]*models.TeamMember, error)
	Update(ctx context.Context, team *models.Team) error
	Delete(ctx context.Context, teamID int) error
	AddMember(ctx context.Context, teamID, userID int) (int, error)
	RemoveMember(ctx context.Context, teamID, userID int) error
}

type TeamRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewTeamRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *TeamRepo {
	return &TeamRepo{
		db:     db,
		getter: c,
	}
}

func (r *TeamRepo) Create(ctx context.Context, teamName string) (int, error) {
	const op = "team_repo.Create"

	query := `
		INSERT INTO teams (name)
		VALUES ($1)
		RETURNING id;
	`

	var teamID int
	err := withRetry(ctx, func() error {
		return r.getter.DefaultTrOrDB(ctx, r.db).QueryRowContext(ctx, query, teamName).Scan(&teamID)
	})
	if err != nil {
		return 0, lib.Err(op, err)
	}

	return teamID, nil
}

func (r *TeamRepo) GetByID(ctx context.Context, teamID int) (*models.Team, error) {
	const op = "team_repo.GetByID"

	query := `
		SELECT id, name
		FROM teams
		WHERE id = $1;
	`

	var team models.Team
	err := withRetry(ctx, func() error {
		return r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &team, query, teamID)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &team, nil
}

func (r *TeamRepo) GetAll(ctx context.Context) ([]*models.Team, error) {
	const op = "team_repo.GetAll"

	query := `
		SELECT id, name
		FROM teams
		ORDER BY id;
	`

	var teams []*models.Team
	err := withRetry(ctx, func() error {
		return r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &teams, query)
	})
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return teams, nil
}

func (r *TeamRepo) GetMembers(ctx context.Context, teamID int) ([]*models.TeamMember, error) {
	const op = "team_repo.GetMembers"

	query := `
		SELECT id, team_id, user_id
		FROM team_members
		WHERE team_id = $1
		ORDER BY id;
	`

	var members []*models.TeamMember
	err := withRetry(ctx, func() error {
		return r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &members, query, teamID)
	})
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return members, nil
}

func (r *TeamRepo) Update(ctx context.Context, team *models.Team) error {
	const op = "team_repo.Update"

	query := `UPDATE teams SET name = $1 WHERE id = $2;`

	var rowsAffected int64
	err := withRetry(ctx, func() error {
		res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, team.Name, team.ID)
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

// Delete removes the team row; membership rows go with it via the cascade.
func (r *TeamRepo) Delete(ctx context.Context, teamID int) error {
	const op = "team_repo.Delete"

	query := `DELETE FROM teams WHERE id = $1;`

	var rowsAffected int64
	err := withRetry(ctx, func() error {
		res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, teamID)
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

func (r *TeamRepo) AddMember(ctx context.Context, teamID, userID int) (int, error) {
	const op = "team_repo.AddMember"

	query := `
		INSERT INTO team_members (team_id, user_id)
		VALUES ($1, $2)
		RETURNING id;
	`

	var memberID int
	err := withRetry(ctx, func() error {
		return r.getter.DefaultTrOrDB(ctx, r.db).QueryRowContext(ctx, query, teamID, userID).Scan(&memberID)
	})
	if err != nil {
		pgErr := &pq.Error{}
		if errors.As(err, &pgErr) {
			if pgErr.Code == uniqueViolationCode {
				return 0, ErrMemberExists
			}
		}
		return 0, lib.Err(op, err)
	}

	return memberID, nil
}

func (r *TeamRepo) RemoveMember(ctx context.Context, teamID, userID int) error {
	const op = "team_repo.RemoveMember"

	query := `DELETE FROM team_members WHERE team_id = $1 AND user_id = $2;`

	var rowsAffected int64
	err := withRetry(ctx, func() error {
		res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, teamID, userID)
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
