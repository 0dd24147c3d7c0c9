package mocks

import (
	mock "github.com/stretchr/testify/mock"

	fir "github.com/stackb/fir-symbols/pkg/fir"
	name "github.com/stackb/fir-symbols/pkg/name"
)

// SymbolProvider is a mock type for the SymbolProvider type
type SymbolProvider struct {
	mock.Mock
}

// Name provides a mock function with given fields:
func (_m *SymbolProvider) Name() string {
	ret := _m.Called()

	var r0 string
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(string)
	}

	return r0
}

// ClassLikeSymbolByClassId provides a mock function with given fields: classId
func (_m *SymbolProvider) ClassLikeSymbolByClassId(classId name.ClassId) (fir.ClassLikeSymbol, bool) {
	ret := _m.Called(classId)

	var r0 fir.ClassLikeSymbol
	if rf, ok := ret.Get(0).(func(name.ClassId) fir.ClassLikeSymbol); ok {
		r0 = rf(classId)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(fir.ClassLikeSymbol)
	}

	var r1 bool
	if rf, ok := ret.Get(1).(func(name.ClassId) bool); ok {
		r1 = rf(classId)
	} else {
		r1 = ret.Get(1).(bool)
	}

	return r0, r1
}

// TopLevelCallableSymbols provides a mock function with given fields: packageFqName, n
func (_m *SymbolProvider) TopLevelCallableSymbols(packageFqName name.FqName, n name.Name) []fir.CallableSymbol {
	ret := _m.Called(packageFqName, n)

	var r0 []fir.CallableSymbol
	if rf, ok := ret.Get(0).(func(name.FqName, name.Name) []fir.CallableSymbol); ok {
		r0 = rf(packageFqName, n)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]fir.CallableSymbol)
	}

	return r0
}

// NestedClassifierScope provides a mock function with given fields: classId
func (_m *SymbolProvider) NestedClassifierScope(classId name.ClassId) (fir.ClassifierScope, bool) {
	ret := _m.Called(classId)

	var r0 fir.ClassifierScope
	if rf, ok := ret.Get(0).(func(name.ClassId) fir.ClassifierScope); ok {
		r0 = rf(classId)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(fir.ClassifierScope)
	}

	var r1 bool
	if rf, ok := ret.Get(1).(func(name.ClassId) bool); ok {
		r1 = rf(classId)
	} else {
		r1 = ret.Get(1).(bool)
	}

	return r0, r1
}

// Package provides a mock function with given fields: fqName
func (_m *SymbolProvider) Package(fqName name.FqName) (name.FqName, bool) {
	ret := _m.Called(fqName)

	var r0 name.FqName
	if rf, ok := ret.Get(0).(func(name.FqName) name.FqName); ok {
		r0 = rf(fqName)
	} else {
		r0 = ret.Get(0).(name.FqName)
	}

	var r1 bool
	if rf, ok := ret.Get(1).(func(name.FqName) bool); ok {
		r1 = rf(fqName)
	} else {
		r1 = ret.Get(1).(bool)
	}

	return r0, r1
}

type mockConstructorTestingTNewSymbolProvider interface {
	mock.TestingT
	Cleanup(func())
}

// NewSymbolProvider creates a new instance of SymbolProvider. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewSymbolProvider(t mockConstructorTestingTNewSymbolProvider) *SymbolProvider {
	m := &SymbolProvider{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
