package mocks

import (
	"testing"

	mock "github.com/stretchr/testify/mock"

	name "github.com/stackb/fir-symbols/pkg/name"
)

// ClassIdCapturer is a SymbolProvider that records every class lookup and
// never finds anything.
type ClassIdCapturer struct {
	Provider *SymbolProvider
	Got      []name.ClassId
}

func (c *ClassIdCapturer) capture(classId name.ClassId) bool {
	c.Got = append(c.Got, classId)
	return true
}

func NewClassIdCapturer(t *testing.T) *ClassIdCapturer {
	c := &ClassIdCapturer{
		Provider: NewSymbolProvider(t),
	}

	c.Provider.
		On("ClassLikeSymbolByClassId", mock.MatchedBy(c.capture)).
		Maybe().
		Return(nil, false)

	return c
}
