package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/stackb/fir-symbols/pkg/checkers"
	"github.com/stackb/fir-symbols/pkg/fir"
	"github.com/stackb/fir-symbols/pkg/name"
	"github.com/stackb/fir-symbols/pkg/source"
)

var rangeOperators = []struct {
	token  string
	callee name.Name
}{
	{token: " downTo ", callee: checkers.DownTo},
	{token: " until ", callee: checkers.Until},
	{token: "..", callee: checkers.RangeTo},
}

// parseRange builds the call for a single binary range expression, with the
// operand tree laid out as the parser would produce it.  If light is set the
// call source is the flattened form of the tree.
func parseRange(expr string, light bool) (*fir.FunctionCall, error) {
	for _, op := range rangeOperators {
		i := strings.Index(expr, op.token)
		if i < 0 {
			continue
		}
		left := strings.TrimSpace(expr[:i])
		right := strings.TrimSpace(expr[i+len(op.token):])
		if left == "" || right == "" {
			return nil, fmt.Errorf("invalid range %q: missing operand", expr)
		}
		psi := source.NewPsiNode("BINARY_EXPRESSION",
			operand(left),
			source.NewPsiNode("OPERATION_REFERENCE", source.NewPsiLeaf("IDENTIFIER", op.token)),
			operand(right),
		)
		var src source.Element = &source.PsiElement{Psi: psi}
		if light {
			src = &source.LightElement{Tree: source.NewLightTree(psi)}
		}
		return fir.NewFunctionCall(src, op.callee, nil), nil
	}
	return nil, fmt.Errorf("invalid range %q: expected one of '..', 'downTo' or 'until'", expr)
}

func operand(text string) *source.PsiNode {
	if _, err := strconv.ParseInt(text, 10, 64); err == nil {
		return source.NewPsiLeaf("INTEGER_CONSTANT", text)
	}
	return source.NewPsiLeaf("REFERENCE_EXPRESSION", text)
}
