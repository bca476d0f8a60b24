package fhirpath

import (
	"context"
	"fmt"
)

// operand returns the system value of the single element of c.
// ok is false if c is empty or holds a primitive without value.
func operand(op Operator, c Collection) (v Element, ok bool, err error) {
	if len(c) == 0 {
		return nil, false, nil
	}
	if len(c) > 1 {
		return nil, false, symbolError(TypeMismatch, -1, op.String(),
			"operator %s expects a single element, got %d", op, len(c))
	}
	p, isPrimitive := c[0].(Primitive)
	if !isPrimitive {
		return nil, false, &Error{
			Kind:     TypeMismatch,
			Pos:      -1,
			Symbol:   op.String(),
			TypeName: c[0].TypeName(),
			Msg:      fmt.Sprintf("operator %s can not be applied to %s", op, c[0].TypeName()),
		}
	}
	v, ok = p.PrimitiveValue()
	return v, ok, nil
}

func operands(op Operator, left, right Collection) (l, r Element, ok bool, err error) {
	l, lok, err := operand(op, left)
	if err != nil {
		return nil, nil, false, err
	}
	r, rok, err := operand(op, right)
	if err != nil {
		return nil, nil, false, err
	}
	return l, r, lok && rok, nil
}

func evalComparison(op Operator, left, right Collection) (Collection, error) {
	l, r, ok, err := operands(op, left, right)
	if err != nil || !ok {
		return Collection{}, err
	}

	switch op {
	case OpEq, OpNotEq:
		eq, decided := equal(l, r)
		if !decided {
			return Collection{}, nil
		}
		return Collection{Boolean(eq == (op == OpEq))}, nil

	case OpEquiv, OpNotEquiv:
		eq := equivalent(l, r)
		return Collection{Boolean(eq == (op == OpEquiv))}, nil
	}

	c, isCmp := l.(cmpElement)
	if !isCmp {
		return nil, typeMismatch(op.String(), l, r)
	}
	cmp, decided, err := c.Cmp(r)
	if err != nil {
		return nil, typeMismatch(op.String(), l, r)
	}
	if !decided {
		return Collection{}, nil
	}

	var result bool
	switch op {
	case OpGt:
		result = cmp > 0
	case OpGte:
		result = cmp >= 0
	case OpLt:
		result = cmp < 0
	case OpLte:
		result = cmp <= 0
	}
	return Collection{Boolean(result)}, nil
}

// equal compares two system values. Values of different kinds are not equal.
// decided is false for date times whose equality depends on missing precision.
func equal(l, r Element) (eq bool, decided bool) {
	if ldt, ok := l.(DateTime); ok {
		cmp, decided, err := ldt.Cmp(r)
		if err != nil {
			return false, true
		}
		return decided && cmp == 0, decided
	}
	if e, ok := l.(equalElement); ok {
		return e.Equal(r), true
	}
	return false, true
}

func equivalent(l, r Element) bool {
	if e, ok := l.(equalElement); ok {
		return e.Equivalent(r)
	}
	return false
}

func evalArithmetic(ctx context.Context, op Operator, left, right Collection) (Collection, error) {
	l, r, ok, err := operands(op, left, right)
	if err != nil || !ok {
		return Collection{}, err
	}

	var result Element
	switch op {
	case OpAdd:
		a, ok := l.(addElement)
		if !ok {
			return nil, typeMismatch(op.String(), l, r)
		}
		result, err = a.Add(ctx, r)
	case OpSub:
		s, ok := l.(subtractElement)
		if !ok {
			return nil, typeMismatch(op.String(), l, r)
		}
		result, err = s.Subtract(ctx, r)
	case OpMul:
		m, ok := l.(multiplyElement)
		if !ok {
			return nil, typeMismatch(op.String(), l, r)
		}
		result, err = m.Multiply(ctx, r)
	case OpDiv:
		d, ok := l.(divideElement)
		if !ok {
			return nil, typeMismatch(op.String(), l, r)
		}
		result, err = d.Divide(ctx, r)
	default:
		return nil, newError(Internal, -1, "unexpected arithmetic operator %s", op)
	}
	if err != nil {
		return nil, err
	}
	return Collection{result}, nil
}

func evalNegate(ctx context.Context, c Collection) (Collection, error) {
	v, ok, err := operand(OpSub, c)
	if err != nil || !ok {
		return Collection{}, err
	}
	n, isNumber := v.(negateElement)
	if !isNumber {
		return nil, typeMismatch("-", v, nil)
	}
	result, err := n.Negate(ctx)
	if err != nil {
		return nil, err
	}
	return Collection{result}, nil
}

// evalLogical implements the three-valued and, or and xor.
func evalLogical(op Operator, left, right Collection) (Collection, error) {
	leftSingle, leftOk, err := Singleton[Boolean](left)
	if err != nil {
		return nil, withSymbol(err, op.String())
	}
	rightSingle, rightOk, err := Singleton[Boolean](right)
	if err != nil {
		return nil, withSymbol(err, op.String())
	}

	switch op {
	case OpAnd:
		if leftOk && bool(leftSingle) && rightOk && bool(rightSingle) {
			return Collection{Boolean(true)}, nil
		} else if leftOk && !bool(leftSingle) {
			return Collection{Boolean(false)}, nil
		} else if rightOk && !bool(rightSingle) {
			return Collection{Boolean(false)}, nil
		}
	case OpOr:
		if leftOk && !bool(leftSingle) && rightOk && !bool(rightSingle) {
			return Collection{Boolean(false)}, nil
		} else if leftOk && bool(leftSingle) {
			return Collection{Boolean(true)}, nil
		} else if rightOk && bool(rightSingle) {
			return Collection{Boolean(true)}, nil
		}
	case OpXor:
		if leftOk && rightOk {
			return Collection{Boolean(leftSingle != rightSingle)}, nil
		}
	}
	return Collection{}, nil
}

// evalTypeOperator implements is and as. The left side must hold at most one element.
func evalTypeOperator(op Operator, left Collection, spec *TypeSpecifierNode) (Collection, error) {
	if len(left) == 0 {
		return Collection{}, nil
	}
	if len(left) > 1 {
		return nil, symbolError(TypeMismatch, -1, op.String(),
			"operator %s expects a single element, got %d", op, len(left))
	}

	matches := isOfType(left[0], spec)
	if op == OpIs {
		return Collection{Boolean(matches)}, nil
	}
	if matches {
		return Collection{left[0]}, nil
	}
	return Collection{}, nil
}

// isOfType matches e against its own type name, its base type and,
// for primitives, the System type of its value.
func isOfType(e Element, spec *TypeSpecifierNode) bool {
	name := spec.Name

	if spec.Namespace != "System" {
		if e.TypeName() == name {
			return true
		}
		if b, ok := e.(BaseTyped); ok && b.BaseTypeName() == name {
			return true
		}
	}
	if spec.Namespace != "FHIR" {
		if v, ok := systemValue(e); ok && v.TypeName() == name {
			return true
		}
	}
	return false
}
