// Package mocks holds gomock doubles for the engine collaborators Surface
// and Scheduler. It follows mockgen's layout; running `go generate
// ./pkg/engine` replaces it with mockgen's own output.
package mocks

import (
	reflect "reflect"

	physics "github.com/opd-ai/go-invaders/pkg/physics"
	gomock "go.uber.org/mock/gomock"
)

// MockSurface is a mock of Surface interface.
type MockSurface struct {
	ctrl     *gomock.Controller
	recorder *MockSurfaceMockRecorder
	isgomock struct{}
}

// MockSurfaceMockRecorder is the mock recorder for MockSurface.
type MockSurfaceMockRecorder struct {
	mock *MockSurface
}

// NewMockSurface creates a new mock instance.
func NewMockSurface(ctrl *gomock.Controller) *MockSurface {
	mock := &MockSurface{ctrl: ctrl}
	mock.recorder = &MockSurfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSurface) EXPECT() *MockSurfaceMockRecorder {
	return m.recorder
}

// Clear mocks base method.
func (m *MockSurface) Clear(area physics.Rect) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Clear", area)
}

// Clear indicates an expected call of Clear.
func (mr *MockSurfaceMockRecorder) Clear(area any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Clear", reflect.TypeOf((*MockSurface)(nil).Clear), area)
}

// FillRect mocks base method.
func (m *MockSurface) FillRect(x, y, width, height float64) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "FillRect", x, y, width, height)
}

// FillRect indicates an expected call of FillRect.
func (mr *MockSurfaceMockRecorder) FillRect(x, y, width, height any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FillRect", reflect.TypeOf((*MockSurface)(nil).FillRect), x, y, width, height)
}

// MockScheduler is a mock of Scheduler interface.
type MockScheduler struct {
	ctrl     *gomock.Controller
	recorder *MockSchedulerMockRecorder
	isgomock struct{}
}

// MockSchedulerMockRecorder is the mock recorder for MockScheduler.
type MockSchedulerMockRecorder struct {
	mock *MockScheduler
}

// NewMockScheduler creates a new mock instance.
func NewMockScheduler(ctrl *gomock.Controller) *MockScheduler {
	mock := &MockScheduler{ctrl: ctrl}
	mock.recorder = &MockSchedulerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockScheduler) EXPECT() *MockSchedulerMockRecorder {
	return m.recorder
}

// RequestFrame mocks base method.
func (m *MockScheduler) RequestFrame(callback func()) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RequestFrame", callback)
}

// RequestFrame indicates an expected call of RequestFrame.
func (mr *MockSchedulerMockRecorder) RequestFrame(callback any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RequestFrame", reflect.TypeOf((*MockScheduler)(nil).RequestFrame), callback)
}
