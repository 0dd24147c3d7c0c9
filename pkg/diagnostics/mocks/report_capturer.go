package mocks

import (
	"testing"

	mock "github.com/stretchr/testify/mock"

	diagnostics "github.com/stackb/fir-symbols/pkg/diagnostics"
	source "github.com/stackb/fir-symbols/pkg/source"
)

// ReportCapturer records every diagnostic passed to its Reporter.
type ReportCapturer struct {
	Reporter *Reporter
	Got      []*diagnostics.Diagnostic
	pending  source.Element
}

func (c *ReportCapturer) captureSource(src source.Element) bool {
	c.pending = src
	return true
}

func (c *ReportCapturer) captureFactory(factory *diagnostics.Factory) bool {
	c.Got = append(c.Got, &diagnostics.Diagnostic{Factory: factory, Source: c.pending})
	return true
}

func NewReportCapturer(t *testing.T) *ReportCapturer {
	c := &ReportCapturer{
		Reporter: NewReporter(t),
	}

	c.Reporter.
		On("Report", mock.MatchedBy(c.captureSource), mock.MatchedBy(c.captureFactory)).
		Maybe().
		Return()

	return c
}
