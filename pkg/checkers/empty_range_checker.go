package checkers

import (
	"strconv"

	"github.com/stackb/fir-symbols/pkg/diagnostics"
	"github.com/stackb/fir-symbols/pkg/fir"
	"github.com/stackb/fir-symbols/pkg/name"
	"github.com/stackb/fir-symbols/pkg/source"
)

// Range operator function names.
const (
	RangeTo name.Name = "rangeTo"
	DownTo  name.Name = "downTo"
	Until   name.Name = "until"
)

// EmptyRangeChecker reports range expressions over integer literals that can
// never contain a value, such as `2..1`.
type EmptyRangeChecker struct{}

// EmptyRange is the shared checker instance.
var EmptyRange = &EmptyRangeChecker{}

// Check implements the ExpressionChecker interface.
func (c *EmptyRangeChecker) Check(stmt fir.Statement, ctx *CheckerContext, reporter diagnostics.Reporter) {
	call, ok := stmt.(*fir.FunctionCall)
	if !ok {
		return
	}
	src := call.Source()
	if source.IsFake(src) {
		return
	}

	left, right, ok := rangeBounds(src)
	if !ok {
		return
	}

	if !IsEmptyRange(call.CalleeReference.Name, left, right) {
		return
	}

	ctx.logger().Debug().
		Str("callee", call.CalleeReference.Name.String()).
		Int64("left", left).
		Int64("right", right).
		Msg("empty range")
	reporter.Report(src, diagnostics.EmptyRange)
}

// IsEmptyRange reports whether the range built by the given operator over
// [left, right] is empty.  Unknown operators are never empty.
func IsEmptyRange(op name.Name, left, right int64) bool {
	switch op {
	case RangeTo:
		return left > right
	case DownTo:
		return right > left
	case Until:
		return left >= right
	default:
		return false
	}
}

// rangeBounds reads the first and third children of the range expression
// (left operand, operator, right operand) as integer literals.
func rangeBounds(src source.Element) (left, right int64, ok bool) {
	switch e := src.(type) {
	case *source.LightElement:
		if e.Tree == nil {
			return 0, 0, false
		}
		children := e.Tree.Children(e.Index)
		if len(children) < 3 {
			return 0, 0, false
		}
		leftText, ok := e.Tree.NodeText(children[0])
		if !ok {
			return 0, 0, false
		}
		rightText, ok := e.Tree.NodeText(children[2])
		if !ok {
			return 0, 0, false
		}
		return parseBounds(leftText, rightText)
	case *source.PsiElement:
		if e.Psi == nil {
			return 0, 0, false
		}
		leftNode, ok := e.Psi.Child(0)
		if !ok {
			return 0, 0, false
		}
		rightNode, ok := e.Psi.Child(2)
		if !ok {
			return 0, 0, false
		}
		return parseBounds(leftNode.Text(), rightNode.Text())
	default:
		return 0, 0, false
	}
}

func parseBounds(leftText, rightText string) (left, right int64, ok bool) {
	left, err := strconv.ParseInt(leftText, 10, 64)
	if err != nil {
		return 0, 0, false
	}
	right, err = strconv.ParseInt(rightText, 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return left, right, true
}
