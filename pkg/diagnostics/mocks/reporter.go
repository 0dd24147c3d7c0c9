package mocks

import (
	mock "github.com/stretchr/testify/mock"

	diagnostics "github.com/stackb/fir-symbols/pkg/diagnostics"
	source "github.com/stackb/fir-symbols/pkg/source"
)

// Reporter is a mock type for the Reporter type
type Reporter struct {
	mock.Mock
}

// Report provides a mock function with given fields: src, factory
func (_m *Reporter) Report(src source.Element, factory *diagnostics.Factory) {
	_m.Called(src, factory)
}

type mockConstructorTestingTNewReporter interface {
	mock.TestingT
	Cleanup(func())
}

// NewReporter creates a new instance of Reporter. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewReporter(t mockConstructorTestingTNewReporter) *Reporter {
	m := &Reporter{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
