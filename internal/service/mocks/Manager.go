package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

type MockManager struct {
	mock.Mock
}

func (m *MockManager) Do(ctx context.Context, fn func(context.Context) error) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}

// StubManager runs the callback directly, standing in for a real
// transaction manager in tests that only care about the callback's effects.
type StubManager struct{}

func (StubManager) Do(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}
