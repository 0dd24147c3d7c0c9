package fir

import (
	"github.com/stackb/fir-symbols/pkg/name"
	"github.com/stackb/fir-symbols/pkg/source"
)

// Statement is a node of a function body.
type Statement interface {
	Source() source.Element
}

// Expression is a statement that produces a value.
type Expression interface {
	Statement
	expression()
}

// NamedReference is the callee of a call, by name.
type NamedReference struct {
	Name name.Name
}

// FunctionCall is a call expression.  Binary operators such as `a..b` are
// calls whose callee is the operator function (rangeTo) and whose explicit
// receiver is the left operand.
type FunctionCall struct {
	CalleeReference  NamedReference
	ExplicitReceiver Expression
	Arguments        []Expression
	source           source.Element
}

// NewFunctionCall constructs a call expression.
func NewFunctionCall(src source.Element, callee name.Name, receiver Expression, args ...Expression) *FunctionCall {
	return &FunctionCall{
		CalleeReference:  NamedReference{Name: callee},
		ExplicitReceiver: receiver,
		Arguments:        args,
		source:           src,
	}
}

// Source implements part of the Statement interface.
func (c *FunctionCall) Source() source.Element { return c.source }

func (c *FunctionCall) expression() {}

// ConstExpression is a literal.
type ConstExpression struct {
	Value  any
	source source.Element
}

// NewConstExpression constructs a literal expression.
func NewConstExpression(src source.Element, value any) *ConstExpression {
	return &ConstExpression{Value: value, source: src}
}

// Source implements part of the Statement interface.
func (c *ConstExpression) Source() source.Element { return c.source }

func (c *ConstExpression) expression() {}
