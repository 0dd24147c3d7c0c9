// Package checkers holds best-effort expression checkers that run after
// resolution.  A checker never fails a compilation pass; when it cannot
// decide, it reports nothing.
package checkers

import (
	"github.com/rs/zerolog"

	"github.com/stackb/fir-symbols/pkg/diagnostics"
	"github.com/stackb/fir-symbols/pkg/fir"
)

// CheckerContext carries state shared by checkers during one pass.
type CheckerContext struct {
	Session *fir.Session
	Logger  zerolog.Logger
}

// NewCheckerContext constructs a context for the given session.
func NewCheckerContext(session *fir.Session, logger zerolog.Logger) *CheckerContext {
	return &CheckerContext{Session: session, Logger: logger}
}

func (c *CheckerContext) logger() *zerolog.Logger {
	if c == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return &c.Logger
}

// ExpressionChecker inspects one statement.
type ExpressionChecker interface {
	Check(stmt fir.Statement, ctx *CheckerContext, reporter diagnostics.Reporter)
}

// Run applies each checker to each statement, descending into call
// receivers and arguments.
func Run(statements []fir.Statement, ctx *CheckerContext, reporter diagnostics.Reporter, checkers ...ExpressionChecker) {
	for _, stmt := range statements {
		visit(stmt, ctx, reporter, checkers)
	}
}

func visit(stmt fir.Statement, ctx *CheckerContext, reporter diagnostics.Reporter, checkers []ExpressionChecker) {
	if stmt == nil {
		return
	}
	for _, c := range checkers {
		c.Check(stmt, ctx, reporter)
	}
	call, ok := stmt.(*fir.FunctionCall)
	if !ok {
		return
	}
	if call.ExplicitReceiver != nil {
		visit(call.ExplicitReceiver, ctx, reporter, checkers)
	}
	for _, arg := range call.Arguments {
		visit(arg, ctx, reporter, checkers)
	}
}
