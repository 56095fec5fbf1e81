package mocks

import (
	context "context"
	testing "testing"

	models "clockinout/internal/models"
	mock "github.com/stretchr/testify/mock"
)

type EntryProvider struct {
	mock.Mock
}

func NewEntryProvider(t *testing.T) *EntryProvider {
	m := &EntryProvider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *EntryProvider) Create(ctx context.Context, entry *models.TimeEntry) (int, error) {
	args := m.Called(ctx, entry)
	return args.Int(0), args.Error(1)
}

func (m *EntryProvider) GetByID(ctx context.Context, id int) (*models.TimeEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TimeEntry), args.Error(1)
}

func (m *EntryProvider) GetAll(ctx context.Context) ([]*models.TimeEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.TimeEntry), args.Error(1)
}

func (m *EntryProvider) GetByUserID(ctx context.Context, userID int) ([]*models.TimeEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.TimeEntry), args.Error(1)
}

func (m *EntryProvider) Update(ctx context.Context, entry *models.TimeEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *EntryProvider) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
