package mocks

import (
	context "context"
	testing "testing"

	api "clockinout/internal/http/api"
	mock "github.com/stretchr/testify/mock"
)

type MockTimeEntryService struct {
	mock.Mock
}

func NewMockTimeEntryService(t *testing.T) *MockTimeEntryService {
	m := &MockTimeEntryService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTimeEntryService) GetAll(ctx context.Context) ([]api.TimeEntrySchema, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]api.TimeEntrySchema), args.Error(1)
}

func (m *MockTimeEntryService) GetByID(ctx context.Context, id int) (*api.TimeEntrySchema, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.TimeEntrySchema), args.Error(1)
}

func (m *MockTimeEntryService) GetByUserID(ctx context.Context, userID int) ([]api.TimeEntrySchema, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]api.TimeEntrySchema), args.Error(1)
}

func (m *MockTimeEntryService) Add(ctx context.Context, input api.TimeEntryWrite) (*api.TimeEntrySchema, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.TimeEntrySchema), args.Error(1)
}

func (m *MockTimeEntryService) Update(ctx context.Context, id int, input api.TimeEntryWrite) (*api.TimeEntrySchema, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.TimeEntrySchema), args.Error(1)
}

func (m *MockTimeEntryService) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
