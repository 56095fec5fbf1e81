package timeentry

import (
	"context"
	"log/slog"
	"time"

	"clockinout/internal/cache"
	"clockinout/internal/http/api"
	"clockinout/internal/models"
	"clockinout/internal/service"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=EntryProvider
type EntryProvider interface {
	Create(ctx context.Context, entry *models.TimeEntry) (int, error)
	GetByID(ctx context.Context, id int) (*models.TimeEntry, error)
	GetAll(ctx context.Context) ([]*models.TimeEntry, error)
	GetByUserID(ctx context.Context, userID int) ([]*models.TimeEntry, error)
	Update(ctx context.Context, entry *models.TimeEntry) error
	Delete(ctx context.Context, id int) error
}

// TimeEntryService wraps the repository with cache-aside reads and
// write-through invalidation over the "timeentries" key namespace.
type TimeEntryService struct {
	entries EntryProvider
	trm     service.TransactionManager
	store   cache.Store
	log     *slog.Logger
	keys    cache.Keys
	ttl     time.Duration
}

func NewTimeEntryService(
	log *slog.Logger,
	trm service.TransactionManager,
	entries EntryProvider,
	store cache.Store,
	ttl time.Duration,
) *TimeEntryService {
	return &TimeEntryService{
		entries: entries,
		trm:     trm,
		store:   store,
		log:     log,
		keys:    cache.NewKeys("timeentries"),
		ttl:     ttl,
	}
}

func (s *TimeEntryService) GetAll(ctx context.Context) ([]api.TimeEntrySchema, error) {
	return cache.GetOrFetch(ctx, s.store, s.log, s.keys.All(), s.ttl,
		func(ctx context.Context) ([]api.TimeEntrySchema, error) {
			entries, err := s.entries.GetAll(ctx)
			if err != nil {
				return nil, err
			}
			return toSchemas(entries), nil
		})
}

func (s *TimeEntryService) GetByID(ctx context.Context, id int) (*api.TimeEntrySchema, error) {
	return cache.GetOrFetch(ctx, s.store, s.log, s.keys.ByID(id), s.ttl,
		func(ctx context.Context) (*api.TimeEntrySchema, error) {
			entry, err := s.entries.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			return toSchema(entry), nil
		})
}

func (s *TimeEntryService) GetByUserID(ctx context.Context, userID int) ([]api.TimeEntrySchema, error) {
	return cache.GetOrFetch(ctx, s.store, s.log, s.keys.ByField("user", userID), s.ttl,
		func(ctx context.Context) ([]api.TimeEntrySchema, error) {
			entries, err := s.entries.GetByUserID(ctx, userID)
			if err != nil {
				return nil, err
			}
			return toSchemas(entries), nil
		})
}

func (s *TimeEntryService) Add(ctx context.Context, input api.TimeEntryWrite) (*api.TimeEntrySchema, error) {
	entry := fromWrite(0, input)

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		id, err := s.entries.Create(ctx, entry)
		if err != nil {
			return err
		}
		entry.ID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	cache.Invalidate(ctx, s.store, s.log,
		s.keys.All(),
		s.keys.ByField("user", entry.UserID),
	)

	return toSchema(entry), nil
}

func (s *TimeEntryService) Update(ctx context.Context, id int, input api.TimeEntryWrite) (*api.TimeEntrySchema, error) {
	entry := fromWrite(id, input)

	var prevUserID int
	err := s.trm.Do(ctx, func(ctx context.Context) error {
		existing, err := s.entries.GetByID(ctx, id)
		if err != nil {
			return err
		}
		prevUserID = existing.UserID

		return s.entries.Update(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	keys := []string{
		s.keys.ByID(id),
		s.keys.All(),
		s.keys.ByField("user", entry.UserID),
	}
	if prevUserID != entry.UserID {
		keys = append(keys, s.keys.ByField("user", prevUserID))
	}
	cache.Invalidate(ctx, s.store, s.log, keys...)

	return toSchema(entry), nil
}

func (s *TimeEntryService) Delete(ctx context.Context, id int) error {
	// The row is resolved first so the user index key can be invalidated too.
	var userID int
	err := s.trm.Do(ctx, func(ctx context.Context) error {
		existing, err := s.entries.GetByID(ctx, id)
		if err != nil {
			return err
		}
		userID = existing.UserID

		return s.entries.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	cache.Invalidate(ctx, s.store, s.log,
		s.keys.ByID(id),
		s.keys.All(),
		s.keys.ByField("user", userID),
	)

	return nil
}

func fromWrite(id int, input api.TimeEntryWrite) *models.TimeEntry {
	return &models.TimeEntry{
		ID:           id,
		UserID:       input.UserID,
		ClockInTime:  input.ClockInTime,
		ClockOutTime: input.ClockOutTime,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
	}
}

func toSchema(entry *models.TimeEntry) *api.TimeEntrySchema {
	return &api.TimeEntrySchema{
		ID:           entry.ID,
		UserID:       entry.UserID,
		ClockInTime:  entry.ClockInTime,
		ClockOutTime: entry.ClockOutTime,
		Latitude:     entry.Latitude,
		Longitude:    entry.Longitude,
	}
}

func toSchemas(entries []*models.TimeEntry) []api.TimeEntrySchema {
	schemas := make([]api.TimeEntrySchema, 0, len(entries))
	for _, entry := range entries {
		schemas = append(schemas, *toSchema(entry))
	}
	return schemas
}
