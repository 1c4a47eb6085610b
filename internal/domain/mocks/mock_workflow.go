// Package mocks provides testify mocks for the domain package.
package mocks

import (
	"context"

	"github.com/mouse-blink/antinode/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockWorkflow is a mock implementation of domain.Workflow.
type MockWorkflow struct {
	mock.Mock
}

// Solve provides a mock function.
func (_m *MockWorkflow) Solve(ctx context.Context, args domain.SolveArgs) error {
	ret := _m.Called(ctx, args)

	return ret.Error(0)
}

// View provides a mock function.
func (_m *MockWorkflow) View(ctx context.Context, args domain.ViewArgs) error {
	ret := _m.Called(ctx, args)

	return ret.Error(0)
}

// NewMockWorkflow creates a new MockWorkflow and registers a cleanup that asserts its expectations.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	mockWorkflow := &MockWorkflow{}
	mockWorkflow.Mock.Test(t)

	t.Cleanup(func() { mockWorkflow.AssertExpectations(t) })

	return mockWorkflow
}
