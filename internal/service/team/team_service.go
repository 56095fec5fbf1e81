package team

import (
	"context"
	"log/slog"
	"time"

	"clockinout/internal/cache"
	"clockinout/internal/http/api"
	"clockinout/internal/models"
	"clockinout/internal/service"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=TeamProvider
type TeamProvider interface {
	Create(ctx context.Context, teamName string) (int, error)
	GetByID(ctx context.Context, teamID int) (*models.Team, error)
	GetAll(ctx context.Context) ([]*models.Team, error)
	GetMembers(ctx context.Context, teamID int) ([]*models.TeamMember, error)
	Update(ctx context.Context, team *models.Team) error
	Delete(ctx context.Context, teamID int) error
	AddMember(ctx context.Context, teamID, userID int) (int, error)
	RemoveMember(ctx context.Context, teamID, userID int) error
}

type TeamService struct {
	teams TeamProvider
	trm   service.TransactionManager
	store cache.Store
	log   *slog.Logger
	keys  cache.Keys
	ttl   time.Duration
}

func NewTeamService(
	log *slog.Logger,
	trm service.TransactionManager,
	teams TeamProvider,
	store cache.Store,
	ttl time.Duration,
) *TeamService {
	return &TeamService{
		teams: teams,
		trm:   trm,
		store: store,
		log:   log,
		keys:  cache.NewKeys("teams"),
		ttl:   ttl,
	}
}

func (s *TeamService) Create(ctx context.Context, name string) (*api.TeamSchema, error) {
	team := &models.Team{Name: name}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		id, err := s.teams.Create(ctx, name)
		if err != nil {
			return err
		}
		team.ID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	cache.Invalidate(ctx, s.store, s.log, s.keys.All())

	return &api.TeamSchema{ID: team.ID, Name: team.Name}, nil
}

func (s *TeamService) GetAll(ctx context.Context) ([]api.TeamSchema, error) {
	return cache.GetOrFetch(ctx, s.store, s.log, s.keys.All(), s.ttl,
		func(ctx context.Context) ([]api.TeamSchema, error) {
			teams, err := s.teams.GetAll(ctx)
			if err != nil {
				return nil, err
			}

			schemas := make([]api.TeamSchema, 0, len(teams))
			for _, t := range teams {
				schemas = append(schemas, api.TeamSchema{ID: t.ID, Name: t.Name})
			}
			return schemas, nil
		})
}

// GetByID returns the team together with its member listing.
func (s *TeamService) GetByID(ctx context.Context, id int) (*api.TeamDetailsSchema, error) {
	return cache.GetOrFetch(ctx, s.store, s.log, s.keys.ByID(id), s.ttl,
		func(ctx context.Context) (*api.TeamDetailsSchema, error) {
			team, err := s.teams.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}

			members, err := s.teams.GetMembers(ctx, id)
			if err != nil {
				return nil, err
			}

			schema := &api.TeamDetailsSchema{
				ID:      team.ID,
				Name:    team.Name,
				Members: make([]api.TeamMemberSchema, 0, len(members)),
			}
			for _, m := range members {
				schema.Members = append(schema.Members, api.TeamMemberSchema{UserID: m.UserID})
			}
			return schema, nil
		})
}

func (s *TeamService) Update(ctx context.Context, id int, name string) (*api.TeamSchema, error) {
	team := &models.Team{ID: id, Name: name}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		return s.teams.Update(ctx, team)
	})
	if err != nil {
		return nil, err
	}

	cache.Invalidate(ctx, s.store, s.log, s.keys.ByID(id), s.keys.All())

	return &api.TeamSchema{ID: team.ID, Name: team.Name}, nil
}

func (s *TeamService) Delete(ctx context.Context, id int) error {
	err := s.trm.Do(ctx, func(ctx context.Context) error {
		return s.teams.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	cache.Invalidate(ctx, s.store, s.log, s.keys.ByID(id), s.keys.All())

	return nil
}

func (s *TeamService) AddMember(ctx context.Context, teamID, userID int) error {
	err := s.trm.Do(ctx, func(ctx context.Context) error {
		if _, err := s.teams.GetByID(ctx, teamID); err != nil {
			return err
		}

		_, err := s.teams.AddMember(ctx, teamID, userID)
		return err
	})
	if err != nil {
		return err
	}

	cache.Invalidate(ctx, s.store, s.log, s.keys.ByID(teamID), s.keys.All())

	return nil
}

func (s *TeamService) RemoveMember(ctx context.Context, teamID, userID int) error {
	err := s.trm.Do(ctx, func(ctx context.Context) error {
		if _, err := s.teams.GetByID(ctx, teamID); err != nil {
			return err
		}

		return s.teams.RemoveMember(ctx, teamID, userID)
	})
	if err != nil {
		return err
	}

	cache.Invalidate(ctx, s.store, s.log, s.keys.ByID(teamID), s.keys.All())

	return nil
}
