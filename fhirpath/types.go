package fhirpath

import (
	"context"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

type equalElement interface {
	Element
	Equal(other Element) bool
	Equivalent(other Element) bool
}

type cmpElement interface {
	Element
	// Cmp returns ok=false when the order can not be decided,
	// e.g. for date times of different precision.
	Cmp(other Element) (cmp int, ok bool, err error)
}

type addElement interface {
	Element
	Add(ctx context.Context, other Element) (Element, error)
}

type subtractElement interface {
	Element
	Subtract(ctx context.Context, other Element) (Element, error)
}

type multiplyElement interface {
	Element
	Multiply(ctx context.Context, other Element) (Element, error)
}

type divideElement interface {
	Element
	Divide(ctx context.Context, other Element) (Element, error)
}

type negateElement interface {
	Element
	Negate(ctx context.Context) (Element, error)
}

type apdContextKey struct{}

// WithAPDContext sets the apd.Context used for Decimal arithmetic.
//
// By default 34 significant digits are kept, which exceeds the precision
// FHIR requires for decimal values.
//
//	ctx = fhirpath.WithAPDContext(ctx, apd.BaseContext.WithPrecision(10))
//	result, err := fhirpath.Evaluate(ctx, resource, expr)
func WithAPDContext(
	ctx context.Context,
	apdContext *apd.Context,
) context.Context {
	return context.WithValue(ctx, apdContextKey{}, apdContext)
}

const defaultDecimalPrecision uint32 = 34

var defaultAPDContext = apd.BaseContext.WithPrecision(defaultDecimalPrecision)

func apdContext(ctx context.Context) *apd.Context {
	if ctx != nil {
		if apdContext, ok := ctx.Value(apdContextKey{}).(*apd.Context); ok && apdContext != nil {
			return apdContext
		}
	}
	return defaultAPDContext
}

func typeMismatch(op string, left, right Element) error {
	if right == nil {
		return symbolError(TypeMismatch, -1, op, "can not apply %s to %s", op, left.TypeName())
	}
	return symbolError(TypeMismatch, -1, op, "can not apply %s to %s and %s", op, left.TypeName(), right.TypeName())
}

type Boolean bool

func (b Boolean) TypeName() string {
	return "Boolean"
}
func (b Boolean) Children(symbol string, index int) (Collection, error) {
	return nil, NoSuchPath(b.TypeName(), symbol)
}
func (b Boolean) ToCollection(index int) Collection {
	return Select(Collection{b}, index)
}
func (b Boolean) PrimitiveValue() (Element, bool) {
	return b, true
}
func (b Boolean) Equal(other Element) bool {
	o, ok := other.(Boolean)
	return ok && b == o
}
func (b Boolean) Equivalent(other Element) bool {
	return b.Equal(other)
}
func (b Boolean) String() string {
	return strconv.FormatBool(bool(b))
}

type String string

func (s String) TypeName() string {
	return "String"
}
func (s String) Children(symbol string, index int) (Collection, error) {
	return nil, NoSuchPath(s.TypeName(), symbol)
}
func (s String) ToCollection(index int) Collection {
	return Select(Collection{s}, index)
}
func (s String) PrimitiveValue() (Element, bool) {
	return s, true
}
func (s String) Equal(other Element) bool {
	o, ok := other.(String)
	return ok && s == o
}

var whitespaceRegex = regexp.MustCompile(`\s+`)

// Equivalent compares case-insensitively with whitespace runs normalized to a single space.
func (s String) Equivalent(other Element) bool {
	o, ok := other.(String)
	if !ok {
		return false
	}
	return strings.EqualFold(normalizeWhitespace(string(s)), normalizeWhitespace(string(o)))
}

func normalizeWhitespace(s string) string {
	return whitespaceRegex.ReplaceAllString(strings.TrimSpace(s), " ")
}

func (s String) Cmp(other Element) (cmp int, ok bool, err error) {
	o, isString := other.(String)
	if !isString {
		return 0, false, typeMismatch("comparison", s, other)
	}
	return strings.Compare(string(s), string(o)), true, nil
}
func (s String) String() string {
	return string(s)
}

type Integer int32

func (i Integer) TypeName() string {
	return "Integer"
}
func (i Integer) Children(symbol string, index int) (Collection, error) {
	return nil, NoSuchPath(i.TypeName(), symbol)
}
func (i Integer) ToCollection(index int) Collection {
	return Select(Collection{i}, index)
}
func (i Integer) PrimitiveValue() (Element, bool) {
	return i, true
}
func (i Integer) toDecimal() Decimal {
	return Decimal{Value: apd.New(int64(i), 0)}
}
func (i Integer) Equal(other Element) bool {
	switch o := other.(type) {
	case Integer:
		return i == o
	case Decimal:
		return i.toDecimal().Equal(o)
	}
	return false
}
func (i Integer) Equivalent(other Element) bool {
	switch o := other.(type) {
	case Integer:
		return i == o
	case Decimal:
		return i.toDecimal().Equivalent(o)
	}
	return false
}
func (i Integer) Cmp(other Element) (cmp int, ok bool, err error) {
	switch o := other.(type) {
	case Integer:
		switch {
		case i < o:
			return -1, true, nil
		case i > o:
			return 1, true, nil
		}
		return 0, true, nil
	case Decimal:
		return i.toDecimal().Cmp(o)
	}
	return 0, false, typeMismatch("comparison", i, other)
}

func checkedInteger(op string, v int64) (Element, error) {
	if v > math.MaxInt32 || v < math.MinInt32 {
		return nil, symbolError(Arithmetic, -1, op, "integer overflow")
	}
	return Integer(v), nil
}

func (i Integer) Add(ctx context.Context, other Element) (Element, error) {
	switch o := other.(type) {
	case Integer:
		return checkedInteger("+", int64(i)+int64(o))
	case Decimal:
		return i.toDecimal().Add(ctx, o)
	}
	return nil, typeMismatch("+", i, other)
}
func (i Integer) Subtract(ctx context.Context, other Element) (Element, error) {
	switch o := other.(type) {
	case Integer:
		return checkedInteger("-", int64(i)-int64(o))
	case Decimal:
		return i.toDecimal().Subtract(ctx, o)
	}
	return nil, typeMismatch("-", i, other)
}
func (i Integer) Multiply(ctx context.Context, other Element) (Element, error) {
	switch o := other.(type) {
	case Integer:
		return checkedInteger("*", int64(i)*int64(o))
	case Decimal:
		return i.toDecimal().Multiply(ctx, o)
	}
	return nil, typeMismatch("*", i, other)
}

// Divide always yields a Decimal.
func (i Integer) Divide(ctx context.Context, other Element) (Element, error) {
	switch o := other.(type) {
	case Integer:
		return i.toDecimal().Divide(ctx, o.toDecimal())
	case Decimal:
		return i.toDecimal().Divide(ctx, o)
	}
	return nil, typeMismatch("/", i, other)
}
func (i Integer) Negate(ctx context.Context) (Element, error) {
	return checkedInteger("-", -int64(i))
}
func (i Integer) String() string {
	return strconv.Itoa(int(i))
}

type Decimal struct {
	Value *apd.Decimal
}

func (d Decimal) TypeName() string {
	return "Decimal"
}
func (d Decimal) Children(symbol string, index int) (Collection, error) {
	return nil, NoSuchPath(d.TypeName(), symbol)
}
func (d Decimal) ToCollection(index int) Collection {
	return Select(Collection{d}, index)
}
func (d Decimal) PrimitiveValue() (Element, bool) {
	return d, true
}

func toDecimal(e Element) (Decimal, bool) {
	switch v := e.(type) {
	case Decimal:
		return v, true
	case Integer:
		return v.toDecimal(), true
	}
	return Decimal{}, false
}

func (d Decimal) Equal(other Element) bool {
	o, ok := toDecimal(other)
	return ok && d.Value.Cmp(o.Value) == 0
}

// Equivalent compares both values rounded to the precision of the less precise one.
func (d Decimal) Equivalent(other Element) bool {
	o, ok := toDecimal(other)
	if !ok {
		return false
	}
	exp := max(d.Value.Exponent, o.Value.Exponent)
	ctx := apd.BaseContext.WithPrecision(defaultDecimalPrecision)
	ctx.Rounding = apd.RoundHalfUp

	var a, b apd.Decimal
	if _, err := ctx.Quantize(&a, d.Value, exp); err != nil {
		return false
	}
	if _, err := ctx.Quantize(&b, o.Value, exp); err != nil {
		return false
	}
	return a.Cmp(&b) == 0
}
func (d Decimal) Cmp(other Element) (cmp int, ok bool, err error) {
	o, isNumber := toDecimal(other)
	if !isNumber {
		return 0, false, typeMismatch("comparison", d, other)
	}
	return d.Value.Cmp(o.Value), true, nil
}

func (d Decimal) arithmetic(
	ctx context.Context,
	op string,
	other Element,
	fn func(c *apd.Context, res, x, y *apd.Decimal) (apd.Condition, error),
) (Element, error) {
	o, ok := toDecimal(other)
	if !ok {
		return nil, typeMismatch(op, d, other)
	}
	var res apd.Decimal
	if _, err := fn(apdContext(ctx), &res, d.Value, o.Value); err != nil {
		return nil, symbolError(Arithmetic, -1, op, "%v", err)
	}
	return Decimal{Value: &res}, nil
}

func (d Decimal) Add(ctx context.Context, other Element) (Element, error) {
	return d.arithmetic(ctx, "+", other, (*apd.Context).Add)
}
func (d Decimal) Subtract(ctx context.Context, other Element) (Element, error) {
	return d.arithmetic(ctx, "-", other, (*apd.Context).Sub)
}
func (d Decimal) Multiply(ctx context.Context, other Element) (Element, error) {
	return d.arithmetic(ctx, "*", other, (*apd.Context).Mul)
}
func (d Decimal) Divide(ctx context.Context, other Element) (Element, error) {
	if o, ok := toDecimal(other); ok && o.Value.IsZero() {
		return nil, symbolError(Arithmetic, -1, "/", "division by zero")
	}
	return d.arithmetic(ctx, "/", other, (*apd.Context).Quo)
}
func (d Decimal) Negate(ctx context.Context) (Element, error) {
	var res apd.Decimal
	res.Neg(d.Value)
	return Decimal{Value: &res}, nil
}
func (d Decimal) String() string {
	return d.Value.Text('f')
}
