// Package mocks provides testify mocks for the adapter package.
package mocks

import (
	m "github.com/mouse-blink/antinode/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockInputAdapter is a mock implementation of adapter.InputAdapter.
type MockInputAdapter struct {
	mock.Mock
}

// Read provides a mock function.
func (_m *MockInputAdapter) Read(path m.Path) ([]byte, error) {
	ret := _m.Called(path)

	var data []byte
	if v := ret.Get(0); v != nil {
		data = v.([]byte)
	}

	return data, ret.Error(1)
}

// NewMockInputAdapter creates a new MockInputAdapter and registers a cleanup that asserts its expectations.
func NewMockInputAdapter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockInputAdapter {
	mockAdapter := &MockInputAdapter{}
	mockAdapter.Mock.Test(t)

	t.Cleanup(func() { mockAdapter.AssertExpectations(t) })

	return mockAdapter
}
