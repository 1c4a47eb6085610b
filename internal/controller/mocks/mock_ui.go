// Package mocks provides testify mocks for the controller package.
package mocks

import (
	m "github.com/mouse-blink/antinode/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockUI is a mock implementation of controller.UI.
type MockUI struct {
	mock.Mock
}

// DisplayParse provides a mock function.
func (_m *MockUI) DisplayParse(stats m.ParseStats) {
	_m.Called(stats)
}

// DisplayResults provides a mock function.
func (_m *MockUI) DisplayResults(results []m.ScanResult, err error) error {
	ret := _m.Called(results, err)

	if rf, ok := ret.Get(0).(func([]m.ScanResult, error) error); ok {
		return rf(results, err)
	}

	return ret.Error(0)
}

// DisplayMap provides a mock function.
func (_m *MockUI) DisplayMap(view m.AntinodeMap) error {
	ret := _m.Called(view)

	return ret.Error(0)
}

// NewMockUI creates a new MockUI and registers a cleanup that asserts its expectations.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	mockUI := &MockUI{}
	mockUI.Mock.Test(t)

	t.Cleanup(func() { mockUI.AssertExpectations(t) })

	return mockUI
}
