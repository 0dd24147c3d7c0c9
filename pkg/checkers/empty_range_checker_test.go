package checkers_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/stackb/fir-symbols/pkg/checkers"
	"github.com/stackb/fir-symbols/pkg/diagnostics"
	"github.com/stackb/fir-symbols/pkg/diagnostics/mocks"
	"github.com/stackb/fir-symbols/pkg/fir"
	"github.com/stackb/fir-symbols/pkg/name"
	"github.com/stackb/fir-symbols/pkg/source"
	"github.com/stackb/fir-symbols/pkg/testutil"
)

// binaryPsi models `left op right` as a binary expression with the operands
// at children 0 and 2.
func binaryPsi(left *source.PsiNode, op string, right *source.PsiNode) *source.PsiNode {
	return source.NewPsiNode("BINARY_EXPRESSION",
		left,
		source.NewPsiNode("OPERATION_REFERENCE", source.NewPsiLeaf("IDENTIFIER", op)),
		right,
	)
}

func literal(text string) *source.PsiNode {
	return source.NewPsiLeaf("INTEGER_CONSTANT", text)
}

func reference(text string) *source.PsiNode {
	return source.NewPsiLeaf("REFERENCE_EXPRESSION", text)
}

func call(src source.Element, callee name.Name) *fir.FunctionCall {
	return fir.NewFunctionCall(src, callee, nil)
}

type rangeCase struct {
	callee name.Name
	psi    *source.PsiNode
	want   bool
}

var rangeCases = map[string]rangeCase{
	"1..2": {
		callee: checkers.RangeTo,
		psi:    binaryPsi(literal("1"), "..", literal("2")),
	},
	"2..1": {
		callee: checkers.RangeTo,
		psi:    binaryPsi(literal("2"), "..", literal("1")),
		want:   true,
	},
	"1..1": {
		callee: checkers.RangeTo,
		psi:    binaryPsi(literal("1"), "..", literal("1")),
	},
	"5 downTo 10": {
		callee: checkers.DownTo,
		psi:    binaryPsi(literal("5"), " downTo ", literal("10")),
		want:   true,
	},
	"10 downTo 5": {
		callee: checkers.DownTo,
		psi:    binaryPsi(literal("10"), " downTo ", literal("5")),
	},
	"1 until 1": {
		callee: checkers.Until,
		psi:    binaryPsi(literal("1"), " until ", literal("1")),
		want:   true,
	},
	"1 until 2": {
		callee: checkers.Until,
		psi:    binaryPsi(literal("1"), " until ", literal("2")),
	},
	"negative literals": {
		callee: checkers.RangeTo,
		psi:    binaryPsi(literal("-1"), "..", literal("-5")),
		want:   true,
	},
	"foo(1, 2) is not a range": {
		callee: "foo",
		psi:    binaryPsi(literal("2"), ", ", literal("1")),
	},
	"non-literal operands": {
		callee: checkers.RangeTo,
		psi:    binaryPsi(reference("a"), "..", reference("b")),
	},
	"non-literal right operand": {
		callee: checkers.Until,
		psi:    binaryPsi(literal("5"), " until ", reference("n")),
	},
	"overflowing literal": {
		callee: checkers.RangeTo,
		psi:    binaryPsi(literal("99999999999999999999"), "..", literal("1")),
	},
	"missing right operand": {
		callee: checkers.RangeTo,
		psi: source.NewPsiNode("BINARY_EXPRESSION",
			literal("2"),
			source.NewPsiNode("OPERATION_REFERENCE", source.NewPsiLeaf("IDENTIFIER", "..")),
		),
	},
}

func check(t *testing.T, src source.Element, callee name.Name) []*diagnostics.Diagnostic {
	capturer := mocks.NewReportCapturer(t)
	ctx := checkers.NewCheckerContext(fir.NewSession("test"), testutil.NewTestLogger(t))
	checkers.EmptyRange.Check(call(src, callee), ctx, capturer.Reporter)
	return capturer.Got
}

func TestEmptyRangeCheckerPsi(t *testing.T) {
	for testName, tc := range rangeCases {
		t.Run(testName, func(t *testing.T) {
			src := &source.PsiElement{Psi: tc.psi}
			got := check(t, src, tc.callee)

			var want []*diagnostics.Diagnostic
			if tc.want {
				want = []*diagnostics.Diagnostic{{Factory: diagnostics.EmptyRange, Source: src}}
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestEmptyRangeCheckerLightTree(t *testing.T) {
	for testName, tc := range rangeCases {
		t.Run(testName, func(t *testing.T) {
			src := &source.LightElement{Tree: source.NewLightTree(tc.psi)}
			got := check(t, src, tc.callee)

			var want []*diagnostics.Diagnostic
			if tc.want {
				want = []*diagnostics.Diagnostic{{Factory: diagnostics.EmptyRange, Source: src}}
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestEmptyRangeCheckerSkips(t *testing.T) {
	empty := &source.PsiElement{Psi: binaryPsi(literal("2"), "..", literal("1"))}

	for testName, tc := range map[string]struct {
		stmt fir.Statement
	}{
		"fake source": {
			stmt: call(&source.FakeElement{Real: empty}, checkers.RangeTo),
		},
		"nil source": {
			stmt: call(nil, checkers.RangeTo),
		},
		"psi element without a node": {
			stmt: call(&source.PsiElement{}, checkers.RangeTo),
		},
		"light element without a tree": {
			stmt: call(&source.LightElement{}, checkers.RangeTo),
		},
		"not a call": {
			stmt: fir.NewConstExpression(empty, int64(2)),
		},
	} {
		t.Run(testName, func(t *testing.T) {
			reporter := mocks.NewReporter(t)
			checkers.EmptyRange.Check(tc.stmt, nil, reporter)
			reporter.AssertNotCalled(t, "Report")
		})
	}
}

func TestIsEmptyRange(t *testing.T) {
	for testName, tc := range map[string]struct {
		op          name.Name
		left, right int64
		want        bool
	}{
		"rangeTo ascending":  {op: checkers.RangeTo, left: 1, right: 2},
		"rangeTo single":     {op: checkers.RangeTo, left: 3, right: 3},
		"rangeTo descending": {op: checkers.RangeTo, left: 2, right: 1, want: true},
		"downTo descending":  {op: checkers.DownTo, left: 10, right: 5},
		"downTo single":      {op: checkers.DownTo, left: 5, right: 5},
		"downTo ascending":   {op: checkers.DownTo, left: 5, right: 10, want: true},
		"until ascending":    {op: checkers.Until, left: 1, right: 2},
		"until equal":        {op: checkers.Until, left: 1, right: 1, want: true},
		"until descending":   {op: checkers.Until, left: 2, right: 1, want: true},
		"unknown operator":   {op: "step", left: 2, right: 1},
	} {
		t.Run(testName, func(t *testing.T) {
			if got := checkers.IsEmptyRange(tc.op, tc.left, tc.right); got != tc.want {
				t.Errorf("want %t, got %t", tc.want, got)
			}
		})
	}
}

func TestRun(t *testing.T) {
	inner := &source.PsiElement{Psi: binaryPsi(literal("3"), "..", literal("0"))}
	outer := &source.PsiElement{Psi: binaryPsi(literal("0"), "..", literal("3"))}
	fake := &source.FakeElement{Real: inner}

	statements := []fir.Statement{
		// listOf(3..0)
		fir.NewFunctionCall(outer, "listOf", nil, call(inner, checkers.RangeTo)),
		call(fake, checkers.RangeTo),
		nil,
		fir.NewConstExpression(inner, int64(1)),
	}

	collector := diagnostics.NewCollector(zerolog.Nop())
	checkers.Run(statements, checkers.NewCheckerContext(fir.NewSession("test"), zerolog.Nop()), collector, checkers.EmptyRange)

	want := []*diagnostics.Diagnostic{{Factory: diagnostics.EmptyRange, Source: inner}}
	if diff := cmp.Diff(want, collector.Diagnostics()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
