package diagnostics

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/stackb/fir-symbols/pkg/source"
)

// Collector implements Reporter by keeping every diagnostic in memory.
type Collector struct {
	logger      zerolog.Logger
	mu          sync.Mutex
	diagnostics []*Diagnostic
	errorCount  int
	warnCount   int
}

// NewCollector creates an empty collector.
func NewCollector(logger zerolog.Logger) *Collector {
	return &Collector{logger: logger}
}

// Report implements the Reporter interface.
func (c *Collector) Report(src source.Element, factory *Factory) {
	c.mu.Lock()
	defer c.mu.Unlock()

	d := &Diagnostic{Factory: factory, Source: src}
	c.diagnostics = append(c.diagnostics, d)

	switch factory.Severity {
	case Error:
		c.errorCount++
	case Warning:
		c.warnCount++
	}

	c.logger.Debug().Str("diagnostic", factory.Name).Msg(d.String())
}

// Diagnostics returns a copy of the collected diagnostics in report order.
func (c *Collector) Diagnostics() []*Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*Diagnostic(nil), c.diagnostics...)
}

// HasErrors returns true if there are any errors
func (c *Collector) HasErrors() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errorCount > 0
}

// ErrorCount returns the number of errors
func (c *Collector) ErrorCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errorCount
}

// WarningCount returns the number of warnings
func (c *Collector) WarningCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.warnCount
}
