package fhirpath

import "fmt"

// Element is the protocol every value in a resource graph implements.
//
// Resource and element types are usually generated (see model/r4),
// system values are implemented in this package.
type Element interface {
	// TypeName returns the FHIR type name, e.g. "Patient" or "HumanName".
	TypeName() string
	// Children returns the collection of the property named symbol.
	//
	// If index is not NoIndex, only the element at that position is returned,
	// or an empty collection if the property holds fewer elements.
	// Properties that are known but not set return an empty collection.
	// Unknown properties return the error created by NoSuchPath.
	Children(symbol string, index int) (Collection, error)
	// ToCollection wraps the element into a collection, honoring index like Children.
	ToCollection(index int) Collection
	fmt.Stringer
}

// Primitive is implemented by FHIR primitive wrappers and system values.
type Primitive interface {
	Element
	// PrimitiveValue returns the underlying system value.
	// ok is false if the primitive carries no value, e.g. only extensions.
	PrimitiveValue() (v Element, ok bool)
}

// BaseTyped is optionally implemented by elements that derive from another type,
// e.g. FHIR code derives from string. It is consulted by is and as.
type BaseTyped interface {
	BaseTypeName() string
}

// Select applies index to c.
func Select(c Collection, index int) Collection {
	if index == NoIndex {
		return c
	}
	if index < 0 || index >= len(c) {
		return Collection{}
	}
	return Collection{c[index]}
}

// systemValue unwraps primitives to their system value.
// ok is false for primitives without value and for non-primitive elements.
func systemValue(e Element) (Element, bool) {
	p, ok := e.(Primitive)
	if !ok {
		return nil, false
	}
	return p.PrimitiveValue()
}
