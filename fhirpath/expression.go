// Package fhirpath parses and evaluates FHIRPath expressions against resources
// that implement the Element protocol.
package fhirpath

import "context"

// Expression represents a parsed FHIRPath expression that can be evaluated against a FHIR resource.
// Expressions are created using the Parse or MustParse functions.
//
// An Expression is immutable and can be evaluated concurrently against different roots.
type Expression struct {
	tree   Node
	source string
}

// String returns the source the expression was parsed from.
func (e Expression) String() string {
	return e.source
}

// Tree returns the root node of the parsed expression.
func (e Expression) Tree() Node {
	return e.tree
}

// Parse parses a FHIRPath expression string and returns an Expression object.
// If the expression cannot be tokenized or parsed, an *Error of kind Lexical or Syntax is returned.
//
// Example:
//
//	expr, err := fhirpath.Parse("Patient.name.given")
//	if err != nil {
//	    // Handle error
//	}
func Parse(expr string) (Expression, error) {
	tokens, err := Tokenize(expr)
	if err != nil {
		return Expression{}, err
	}
	tree, err := parseTokens(tokens, len(expr))
	if err != nil {
		return Expression{}, err
	}
	return Expression{tree: tree, source: expr}, nil
}

// MustParse parses a FHIRPath expression string and returns an Expression object.
// If the expression cannot be parsed, it panics.
//
// This function is useful when you know the expression is valid and want to avoid
// error checking, such as in tests or with hardcoded expressions.
//
//	expr := fhirpath.MustParse("Patient.name.given")
func MustParse(path string) Expression {
	expr, err := Parse(path)
	if err != nil {
		panic(err)
	}
	return expr
}

// Path evaluates the expression against root with a background context.
func (e Expression) Path(root Element) (Collection, error) {
	return Evaluate(context.Background(), root, e)
}

// Assert evaluates the expression against root with a background context
// and reduces the result to a boolean, see Assert.
func (e Expression) Assert(root Element) (bool, error) {
	return Assert(context.Background(), root, e)
}

// Evaluate evaluates a FHIRPath expression against a root element and returns the resulting collection.
//
// The context carries configuration for the evaluation, such as the function table
// (WithFunctions), decimal precision (WithAPDContext) and trace output (WithTracer).
// It is not used for cancellation.
//
// Example:
//
//	patient := r4.Patient{...}
//	expr := fhirpath.MustParse("Patient.name.given")
//	result, err := fhirpath.Evaluate(context.Background(), patient, expr)
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(result) // Output: { Donald }
func Evaluate(ctx context.Context, root Element, expr Expression) (Collection, error) {
	if expr.tree == nil {
		return nil, newError(Internal, -1, "can not evaluate empty expression")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	target := Collection{}
	if root != nil {
		target = Collection{root}
	}
	result, err := evalExpression(ctx, root, target, expr.tree)
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = Collection{}
	}
	return result, nil
}

// Assert evaluates expr and reduces the result to a single boolean.
//
// The result is true iff the collection is not empty and every element is the boolean true.
// An empty collection yields false. Any non-boolean element is a TypeMismatch error.
func Assert(ctx context.Context, root Element, expr Expression) (bool, error) {
	result, err := Evaluate(ctx, root, expr)
	if err != nil {
		return false, err
	}
	if result.Empty() {
		return false, nil
	}
	return result.AllTrue()
}
