package fhirpath

import (
	"context"
	"fmt"
)

func evalExpression(
	ctx context.Context,
	root Element, target Collection,
	tree Node,
) (Collection, error) {
	switch n := tree.(type) {
	case *LiteralNode:
		return Collection{n.Value}, nil

	case *RootNode:
		if root != nil && n.Name == root.TypeName() {
			return root.ToCollection(n.Index), nil
		}
		return evalPathStep(target, n.Name, n.Index, n.Offset)

	case *PathNode:
		return evalPathStep(target, n.Name, n.Index, n.Offset)

	case *FunctionNode:
		result, err := callFunc(ctx, root, target, n)
		if err != nil {
			return nil, err
		}
		return selectIndex(result, n.Index, n.Name, n.Offset)

	case *ParenNode:
		result, err := evalExpression(ctx, root, target, n.Expr)
		if err != nil {
			return nil, err
		}
		return selectIndex(result, n.Index, "", n.Offset)

	case *UnaryNode:
		operand, err := evalExpression(ctx, root, target, n.Operand)
		if err != nil {
			return nil, err
		}
		result, err := evalNegate(ctx, operand)
		return result, atPos(err, n.Offset)

	case *BinaryNode:
		return evalBinary(ctx, root, target, n)

	case *TypeSpecifierNode:
		return nil, newError(Internal, n.Offset, "type specifier %s outside of is or as", n)

	default:
		return nil, newError(Internal, tree.Pos(), "unexpected node %T", tree)
	}
}

func evalBinary(
	ctx context.Context,
	root Element, target Collection,
	n *BinaryNode,
) (Collection, error) {
	left, err := evalExpression(ctx, root, target, n.Left)
	if err != nil {
		return nil, err
	}

	if n.Op == OpDot {
		return evalExpression(ctx, root, left, n.Right)
	}

	if n.Op == OpIs || n.Op == OpAs {
		spec, ok := n.Right.(*TypeSpecifierNode)
		if !ok {
			return nil, newError(Internal, n.Offset, "%s requires a type specifier", n.Op)
		}
		result, err := evalTypeOperator(n.Op, left, spec)
		return result, atPos(err, n.Offset)
	}

	right, err := evalExpression(ctx, root, target, n.Right)
	if err != nil {
		return nil, err
	}

	var result Collection
	switch n.Op {
	case OpAnd, OpOr, OpXor:
		result, err = evalLogical(n.Op, left, right)
	case OpAdd, OpSub, OpMul, OpDiv:
		result, err = evalArithmetic(ctx, n.Op, left, right)
	default:
		if !n.Op.IsComparator() {
			return nil, newError(Internal, n.Offset, "unexpected operator %s", n.Op)
		}
		result, err = evalComparison(n.Op, left, right)
	}
	if err != nil {
		return nil, atPos(err, n.Offset)
	}
	return result, nil
}

// evalPathStep descends into name on every element of target.
//
// Properties that are known but absent contribute nothing. With an index,
// the step fails with IndexOutOfRange only if nothing was selected although
// the property was not empty.
func evalPathStep(target Collection, name string, index int, pos int) (Collection, error) {
	result := Collection{}
	nonEmpty := false

	for _, e := range target {
		children, err := e.Children(name, index)
		if err != nil {
			return nil, atPos(err, pos)
		}
		result = append(result, children...)

		if index != NoIndex && len(children) == 0 && !nonEmpty {
			all, err := e.Children(name, NoIndex)
			if err != nil {
				return nil, atPos(err, pos)
			}
			nonEmpty = len(all) > 0
		}
	}

	if len(result) == 0 && nonEmpty {
		return nil, &Error{
			Kind:   IndexOutOfRange,
			Pos:    pos,
			Symbol: name,
			Msg:    fmt.Sprintf("index %d out of range for %s", index, name),
		}
	}
	return result, nil
}

func selectIndex(c Collection, index int, symbol string, pos int) (Collection, error) {
	if index == NoIndex {
		return c, nil
	}
	if len(c) > 0 && index >= len(c) {
		return nil, &Error{
			Kind:   IndexOutOfRange,
			Pos:    pos,
			Symbol: symbol,
			Msg:    fmt.Sprintf("index %d out of range for collection of %d", index, len(c)),
		}
	}
	return Select(c, index), nil
}

func callFunc(
	ctx context.Context,
	root Element, target Collection,
	n *FunctionNode,
) (Collection, error) {
	fn, ok := getFunction(ctx, n.Name)
	if !ok {
		return nil, symbolError(FunctionUnknown, n.Offset, n.Name, "function %s is not defined", n.Name)
	}

	params := make([]Expression, 0, len(n.Args))
	for _, a := range n.Args {
		params = append(params, Expression{tree: a, source: a.String()})
	}

	evaluate := func(ctx context.Context, target Collection, expr Expression) (Collection, error) {
		return evalExpression(ctx, root, target, expr.tree)
	}

	result, err := fn(ctx, root, target, params, evaluate)
	if err != nil {
		return nil, atPos(withSymbol(err, n.Name), n.Offset)
	}
	return result, nil
}
