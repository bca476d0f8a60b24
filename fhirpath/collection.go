package fhirpath

import (
	"fmt"
	"reflect"
	"strings"
)

// Collection is the ordered sequence of elements every expression evaluates to.
type Collection []Element

func (c Collection) Count() int {
	return len(c)
}

func (c Collection) Empty() bool {
	return len(c) == 0
}

// At returns the element at index i.
func (c Collection) At(i int) (Element, bool) {
	if i < 0 || i >= len(c) {
		return nil, false
	}
	return c[i], true
}

func (c *Collection) Append(elements ...Element) {
	*c = append(*c, elements...)
}

func (c *Collection) Extend(other Collection) {
	*c = append(*c, other...)
}

// Equal compares element-wise and in order.
//
// Primitives are compared by their system value, other elements structurally.
func (c Collection) Equal(other Collection) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if !elementsEqual(c[i], other[i]) {
			return false
		}
	}
	return true
}

func elementsEqual(a, b Element) bool {
	av, aok := systemValue(a)
	bv, bok := systemValue(b)
	if aok && bok {
		if eq, ok := av.(equalElement); ok {
			return eq.Equal(bv)
		}
	}
	return reflect.DeepEqual(a, b)
}

// AllTrue reports whether every element is the boolean true.
// It is true for the empty collection.
// Every element is checked, a non-boolean after a false is still an error.
func (c Collection) AllTrue() (bool, error) {
	all := true
	for _, e := range c {
		b, err := toBoolean(e)
		if err != nil {
			return false, err
		}
		all = all && b
	}
	return all, nil
}

// AnyTrue reports whether at least one element is the boolean true.
// It is false for the empty collection.
func (c Collection) AnyTrue() (bool, error) {
	found := false
	for _, e := range c {
		b, err := toBoolean(e)
		if err != nil {
			return false, err
		}
		found = found || b
	}
	return found, nil
}

// AllHaveValue reports whether no element is a primitive without value.
func (c Collection) AllHaveValue() bool {
	for _, e := range c {
		if p, ok := e.(Primitive); ok {
			if _, hasValue := p.PrimitiveValue(); !hasValue {
				return false
			}
		}
	}
	return true
}

// toBoolean unwraps e to a boolean or fails with TypeMismatch.
func toBoolean(e Element) (bool, error) {
	v, ok := systemValue(e)
	if ok {
		if b, isBool := v.(Boolean); isBool {
			return bool(b), nil
		}
	}
	return false, &Error{
		Kind:     TypeMismatch,
		Pos:      -1,
		TypeName: e.TypeName(),
		Msg:      fmt.Sprintf("expected Boolean, got %s", e.TypeName()),
	}
}

// Singleton returns the single element of c converted to T.
//
// ok is false if c is empty or holds a primitive without value. More than one element or an element
// of another type is a TypeMismatch error.
func Singleton[T Element](c Collection) (v T, ok bool, err error) {
	if len(c) == 0 {
		return v, false, nil
	}
	if len(c) > 1 {
		return v, false, newError(TypeMismatch, -1, "expected a single element, got %d", len(c))
	}
	e := c[0]
	if p, isPrimitive := e.(Primitive); isPrimitive {
		sv, hasValue := p.PrimitiveValue()
		if !hasValue {
			return v, false, nil
		}
		e = sv
	}
	v, ok = e.(T)
	if !ok {
		return v, false, newError(TypeMismatch, -1, "expected %T, got %s", v, c[0].TypeName())
	}
	return v, true, nil
}

func (c Collection) String() string {
	if len(c) == 0 {
		return "{ }"
	}
	var b strings.Builder
	b.WriteString("{ ")
	for i, e := range c {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.String())
	}
	b.WriteString(" }")
	return b.String()
}
