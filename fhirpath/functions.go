package fhirpath

import (
	"context"
	"maps"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/apd/v3"
)

// Functions maps function names to their implementation.
type Functions map[string]Function

// Function implements a FHIRPath function.
//
// target is the collection the function is invoked on. Parameters are passed
// unevaluated, so that functions like where can evaluate them per element
// using evaluate.
type Function = func(
	ctx context.Context,
	root Element, target Collection,
	parameters []Expression,
	evaluate EvaluateFunc,
) (result Collection, err error)

type EvaluateFunc = func(
	ctx context.Context,
	target Collection,
	expr Expression,
) (result Collection, err error)

type functionsKey struct{}

// WithFunctions installs the given functions into the context,
// in addition to the functions already installed.
//
// Functions with the name of a built-in function replace it.
func WithFunctions(
	ctx context.Context,
	functions Functions,
) context.Context {
	allFns := maps.Clone(getFunctions(ctx))
	maps.Copy(allFns, functions)
	return context.WithValue(ctx, functionsKey{}, allFns)
}

func getFunctions(ctx context.Context) Functions {
	fns, ok := ctx.Value(functionsKey{}).(Functions)
	if !ok {
		return defaultFunctions
	}
	return fns
}

func getFunction(ctx context.Context, name string) (Function, bool) {
	fn, ok := getFunctions(ctx)[name]
	return fn, ok
}

func checkArity(parameters []Expression, lo, hi int) error {
	if len(parameters) >= lo && len(parameters) <= hi {
		return nil
	}
	switch {
	case lo == hi && lo == 0:
		return newError(Arity, -1, "expected no parameters, got %d", len(parameters))
	case lo == hi:
		return newError(Arity, -1, "expected %d parameters, got %d", lo, len(parameters))
	default:
		return newError(Arity, -1, "expected %d to %d parameters, got %d", lo, hi, len(parameters))
	}
}

// criteria evaluates expr for a single element and reports whether it yields true.
func criteria(ctx context.Context, elem Element, expr Expression, evaluate EvaluateFunc) (bool, error) {
	result, err := evaluate(ctx, Collection{elem}, expr)
	if err != nil {
		return false, err
	}
	b, ok, err := Singleton[Boolean](result)
	if err != nil {
		return false, err
	}
	return ok && bool(b), nil
}

func integerParameter(ctx context.Context, target Collection, expr Expression, evaluate EvaluateFunc) (int, bool, error) {
	result, err := evaluate(ctx, target, expr)
	if err != nil {
		return 0, false, err
	}
	i, ok, err := Singleton[Integer](result)
	return int(i), ok, err
}

func stringParameter(ctx context.Context, target Collection, expr Expression, evaluate EvaluateFunc) (string, bool, error) {
	result, err := evaluate(ctx, target, expr)
	if err != nil {
		return "", false, err
	}
	s, ok, err := Singleton[String](result)
	return string(s), ok, err
}

func booleanReduce(target Collection, want bool, all bool) (Collection, error) {
	result := all
	for _, e := range target {
		b, err := toBoolean(e)
		if err != nil {
			return nil, err
		}
		if all && b != want {
			result = false
		}
		if !all && b == want {
			result = true
		}
	}
	return Collection{Boolean(result)}, nil
}

// stringFunction applies fn to the single string of target and the single string parameter.
// An empty input or parameter yields an empty result.
func stringFunction(fn func(s, param string) Element) Function {
	return func(
		ctx context.Context,
		root Element, target Collection,
		parameters []Expression,
		evaluate EvaluateFunc,
	) (result Collection, err error) {
		if err := checkArity(parameters, 1, 1); err != nil {
			return nil, err
		}
		s, ok, err := Singleton[String](target)
		if err != nil || !ok {
			return Collection{}, err
		}
		param, ok, err := stringParameter(ctx, target, parameters[0], evaluate)
		if err != nil || !ok {
			return Collection{}, err
		}
		return Collection{fn(string(s), param)}, nil
	}
}

// stringMapFunction applies fn to the single string of target.
func stringMapFunction(fn func(s string) Element) Function {
	return func(
		ctx context.Context,
		root Element, target Collection,
		parameters []Expression,
		evaluate EvaluateFunc,
	) (result Collection, err error) {
		if err := checkArity(parameters, 0, 0); err != nil {
			return nil, err
		}
		s, ok, err := Singleton[String](target)
		if err != nil || !ok {
			return Collection{}, err
		}
		return Collection{fn(string(s))}, nil
	}
}

var decimalRegex = regexp.MustCompile(`^[+-]?\d+(\.\d+)?$`)

// defaultFunctions contains the built-in FHIRPath functions.
// It is never modified, WithFunctions works on a copy.
var defaultFunctions = Functions{
	// Existence
	"exists": func(
		ctx context.Context,
		root Element, target Collection,
		parameters []Expression,
		evaluate EvaluateFunc,
	) (result Collection, err error) {
		if err := checkArity(parameters, 0, 1); err != nil {
			return nil, err
		}
		if len(parameters) == 0 {
			return Collection{Boolean(len(target) > 0)}, nil
		}

		// With criteria, equivalent to where(criteria).exists()
		for _, elem := range target {
			ok, err := criteria(ctx, elem, parameters[0], evaluate)
			if err != nil {
				return nil, err
			}
			if ok {
				return Collection{Boolean(true)}, nil
			}
		}
		return Collection{Boolean(false)}, nil
	},
	"empty": func(
		ctx context.Context,
		root Element, target Collection,
		parameters []Expression,
		evaluate EvaluateFunc,
	) (result Collection, err error) {
		if err := checkArity(parameters, 0, 0); err != nil {
			return nil, err
		}
		return Collection{Boolean(len(target) == 0)}, nil
	},
	"count": func(
		ctx context.Context,
		root Element, target Collection,
		parameters []Expression,
		evaluate EvaluateFunc,
	) (result Collection, err error) {
		if err := checkArity(parameters, 0, 0); err != nil {
			return nil, err
		}
		return Collection{Integer(len(target))}, nil
	},
	"all": func(
		ctx context.Context,
		root Element, target Collection,
		parameters []Expression,
		evaluate EvaluateFunc,
	) (result Collection, err error) {
		if err := checkArity(parameters, 1, 1); err != nil {
			return nil, err
		}
		for _, elem := range target {
			ok, err := criteria(ctx, elem, parameters[0], evaluate)
			if err != nil {
				return nil, err
			}
			if !ok {
				return Collection{Boolean(false)}, nil
			}
		}
		return Collection{Boolean(true)}, nil
	},
	"allTrue": func(
		ctx context.Context,
		root Element, target Collection,
		parameters []Expression,
		evaluate EvaluateFunc,
	) (result Collection, err error) {
		if err := checkArity(parameters, 0, 0); err != nil {
			return nil, err
		}
		return booleanReduce(target, true, true)
	},
	"anyTrue": func(
		ctx context.Context,
		root Element, target Collection,
		parameters []Expression,
		evaluate EvaluateFunc,
	) (result Collection, err error) {
		if err := checkArity(parameters, 0, 0); err != nil {
			return nil, err
		}
		return booleanReduce(target, true, false)
	},
	"allFalse": func(
		ctx context.Context,
		root Element, target Collection,
		parameters []Expression,
		evaluate EvaluateFunc,
	) (result Collection, err error) {
		if err := checkArity(parameters, 0, 0); err != nil {
			return nil, err
		}
		return booleanReduce(target, false, true)
	},
	"anyFalse": func(
		ctx context.Context,
		root Element, target Collection,
		parameters []Expression,
		evaluate EvaluateFunc,
	) (result Collection, err error) {
		if err := checkArity(parameters, 0, 0); err != nil {
			return nil, err
		}
		return booleanReduce(target, false, false)
	},
	"isDistinct": func(
		ctx context.Context,
		root Element, target Collection,
		parameters []Expression,
		evaluate EvaluateFunc,
	) (result Collection, err error) {
		if err := checkArity(parameters, 0, 0); err != nil {
			return nil, err
		}
		return Collection{Boolean(len(distinct(target)) == len(target))}, nil
	},
	"hasValue": func(
		ctx context.Context,
		root Element, target Collection,
		parameters []Expression,
		evaluate EvaluateFunc,
	) (result Collection, err error) {
		if err := checkArity(parameters, 0, 0); err != nil {
			return nil, err
		}
		if len(target) != 1 {
			return Collection{Boolean(false)}, nil
		}
		_, ok := systemValue(target[0])
		return Collection{Boolean(ok)}, nil
	},

	// Filtering and projection
	"where": func(
		ctx context.Context,
		root Element, target Collection,
		parameters []Expression,
		evaluate EvaluateFunc,
	) (result Collection, err error) {
		if err := checkArity(parameters, 1, 1); err != nil {
			return nil, err
		}
		result = Collection{}
		for _, elem := range target {
			ok, err := criteria(ctx, elem, parameters[0], evaluate)
			if err != nil {
				return nil, err
			}
			if ok {
				result = append(result, elem)
			}
		}
		return result, nil
	},
	"select": func(
		ctx context.Context,
		root Element, target Collection,
		parameters []Expression,
		evaluate EvaluateFunc,
	) (result Collection, err error) {
		if err := checkArity(parameters, 1, 1); err != nil {
			return nil, err
		}
		result = Collection{}
		for _, elem := range target {
			projection, err := evaluate(ctx, Collection{elem}, parameters[0])
			if err != nil {
				return nil, err
			}
			result = append(result, projection...)
		}
		return result, nil
	},

	// Subsetting
	"single": func(
		ctx context.Context,
		root Element, target Collection,
		parameters []Expression,
		evaluate EvaluateFunc,
	) (result Collection, err error) {
		if err := checkArity(parameters, 0, 0); err != nil {
			return nil, err
		}
		if len(target) > 1 {
			return nil, newError(TypeMismatch, -1, "expected a single element, got %d", len(target))
		}
		return target, nil
	},
	"first": func(
		ctx context.Context,
		root Element, target Collection,
		parameters []Expression,
		evaluate EvaluateFunc,
	) (result Collection, err error) {
		if err := checkArity(parameters, 0, 0); err != nil {
			return nil, err
		}
		if len(target) == 0 {
			return Collection{}, nil
		}
		return Collection{target[0]}, nil
	},
	"last": func(
		ctx context.Context,
		root Element, target Collection,
		parameters []Expression,
		evaluate EvaluateFunc,
	) (result Collection, err error) {
		if err := checkArity(parameters, 0, 0); err != nil {
			return nil, err
		}
		if len(target) == 0 {
			return Collection{}, nil
		}
		return Collection{target[len(target)-1]}, nil
	},
	"tail": func(
		ctx context.Context,
		root Element, target Collection,
		parameters []Expression,
		evaluate EvaluateFunc,
	) (result Collection, err error) {
		if err := checkArity(parameters, 0, 0); err != nil {
			return nil, err
		}
		if len(target) < 2 {
			return Collection{}, nil
		}
		return append(Collection{}, target[1:]...), nil
	},
	"skip": func(
		ctx context.Context,
		root Element, target Collection,
		parameters []Expression,
		evaluate EvaluateFunc,
	) (result Collection, err error) {
		if err := checkArity(parameters, 1, 1); err != nil {
			return nil, err
		}
		n, ok, err := integerParameter(ctx, target, parameters[0], evaluate)
		if err != nil {
			return nil, err
		}
		if !ok || n <= 0 {
			return append(Collection{}, target...), nil
		}
		if n >= len(target) {
			return Collection{}, nil
		}
		return append(Collection{}, target[n:]...), nil
	},
	"take": func(
		ctx context.Context,
		root Element, target Collection,
		parameters []Expression,
		evaluate EvaluateFunc,
	) (result Collection, err error) {
		if err := checkArity(parameters, 1, 1); err != nil {
			return nil, err
		}
		n, ok, err := integerParameter(ctx, target, parameters[0], evaluate)
		if err != nil {
			return nil, err
		}
		if !ok || n <= 0 {
			return Collection{}, nil
		}
		n = min(n, len(target))
		return append(Collection{}, target[:n]...), nil
	},
	"distinct": func(
		ctx context.Context,
		root Element, target Collection,
		parameters []Expression,
		evaluate EvaluateFunc,
	) (result Collection, err error) {
		if err := checkArity(parameters, 0, 0); err != nil {
			return nil, err
		}
		return distinct(target), nil
	},

	// Boolean logic and control flow
	"not": func(
		ctx context.Context,
		root Element, target Collection,
		parameters []Expression,
		evaluate EvaluateFunc,
	) (result Collection, err error) {
		if err := checkArity(parameters, 0, 0); err != nil {
			return nil, err
		}
		b, ok, err := Singleton[Boolean](target)
		if err != nil || !ok {
			return Collection{}, err
		}
		return Collection{!b}, nil
	},
	"iif": func(
		ctx context.Context,
		root Element, target Collection,
		parameters []Expression,
		evaluate EvaluateFunc,
	) (result Collection, err error) {
		if err := checkArity(parameters, 2, 3); err != nil {
			return nil, err
		}
		criterion, err := evaluate(ctx, target, parameters[0])
		if err != nil {
			return nil, err
		}
		b, ok, err := Singleton[Boolean](criterion)
		if err != nil {
			return nil, err
		}
		if ok && bool(b) {
			return evaluate(ctx, target, parameters[1])
		}
		if len(parameters) == 3 {
			return evaluate(ctx, target, parameters[2])
		}
		return Collection{}, nil
	},

	// Conversion
	"toString": func(
		ctx context.Context,
		root Element, target Collection,
		parameters []Expression,
		evaluate EvaluateFunc,
	) (result Collection, err error) {
		if err := checkArity(parameters, 0, 0); err != nil {
			return nil, err
		}
		v, ok, err := singleValue(target)
		if err != nil || !ok {
			return Collection{}, err
		}
		return Collection{String(v.String())}, nil
	},
	"toInteger": func(
		ctx context.Context,
		root Element, target Collection,
		parameters []Expression,
		evaluate EvaluateFunc,
	) (result Collection, err error) {
		if err := checkArity(parameters, 0, 0); err != nil {
			return nil, err
		}
		v, ok, err := singleValue(target)
		if err != nil || !ok {
			return Collection{}, err
		}
		switch v := v.(type) {
		case Integer:
			return Collection{v}, nil
		case Boolean:
			if v {
				return Collection{Integer(1)}, nil
			}
			return Collection{Integer(0)}, nil
		case String:
			i, err := strconv.ParseInt(string(v), 10, 32)
			if err != nil {
				return Collection{}, nil
			}
			return Collection{Integer(i)}, nil
		}
		return Collection{}, nil
	},
	"toDecimal": func(
		ctx context.Context,
		root Element, target Collection,
		parameters []Expression,
		evaluate EvaluateFunc,
	) (result Collection, err error) {
		if err := checkArity(parameters, 0, 0); err != nil {
			return nil, err
		}
		v, ok, err := singleValue(target)
		if err != nil || !ok {
			return Collection{}, err
		}
		switch v := v.(type) {
		case Decimal:
			return Collection{v}, nil
		case Integer:
			return Collection{v.toDecimal()}, nil
		case Boolean:
			if v {
				return Collection{Decimal{Value: apd.New(10, -1)}}, nil
			}
			return Collection{Decimal{Value: apd.New(0, -1)}}, nil
		case String:
			if !decimalRegex.MatchString(string(v)) {
				return Collection{}, nil
			}
			d, _, err := apd.NewFromString(string(v))
			if err != nil {
				return Collection{}, nil
			}
			return Collection{Decimal{Value: d}}, nil
		}
		return Collection{}, nil
	},

	// String manipulation
	"length": stringMapFunction(func(s string) Element {
		return Integer(utf8.RuneCountInString(s))
	}),
	"upper": stringMapFunction(func(s string) Element {
		return String(strings.ToUpper(s))
	}),
	"lower": stringMapFunction(func(s string) Element {
		return String(strings.ToLower(s))
	}),
	"startsWith": stringFunction(func(s, prefix string) Element {
		return Boolean(strings.HasPrefix(s, prefix))
	}),
	"endsWith": stringFunction(func(s, suffix string) Element {
		return Boolean(strings.HasSuffix(s, suffix))
	}),
	"contains": stringFunction(func(s, substr string) Element {
		return Boolean(strings.Contains(s, substr))
	}),

	// Utility
	"trace": func(
		ctx context.Context,
		root Element, target Collection,
		parameters []Expression,
		evaluate EvaluateFunc,
	) (result Collection, err error) {
		if err := checkArity(parameters, 1, 2); err != nil {
			return nil, err
		}
		name, _, err := stringParameter(ctx, target, parameters[0], evaluate)
		if err != nil {
			return nil, err
		}

		logged := target
		if len(parameters) == 2 {
			logged = Collection{}
			for _, elem := range target {
				projection, err := evaluate(ctx, Collection{elem}, parameters[1])
				if err != nil {
					return nil, err
				}
				logged = append(logged, projection...)
			}
		}

		if err := tracer(ctx).Log(name, logged); err != nil {
			return nil, err
		}
		return target, nil
	},
}

// singleValue returns the system value of the single element of target.
// ok is false for an empty target and for elements without system value.
func singleValue(target Collection) (Element, bool, error) {
	if len(target) == 0 {
		return nil, false, nil
	}
	if len(target) > 1 {
		return nil, false, newError(TypeMismatch, -1, "expected a single element, got %d", len(target))
	}
	v, ok := systemValue(target[0])
	return v, ok, nil
}

func distinct(c Collection) Collection {
	result := Collection{}
outer:
	for _, e := range c {
		for _, seen := range result {
			if elementsEqual(e, seen) {
				continue outer
			}
		}
		result = append(result, e)
	}
	return result
}
