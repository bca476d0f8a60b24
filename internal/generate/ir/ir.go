// Package ir holds the intermediate representation the model generators work on.
package ir

// ResourceOrType is one top-level definition. It yields one generated file.
type ResourceOrType struct {
	Name        string
	FileName    string
	IsResource  bool
	IsPrimitive bool
	// Structs holds the type itself first, followed by its backbone elements.
	Structs []Struct
}

type Struct struct {
	// Name is the Go type name.
	Name string
	// MarshalName is the FHIR type name.
	MarshalName string
	IsResource  bool
	IsPrimitive bool
	IsBackbone  bool
	// BaseType is the FHIR type this type derives from, empty if none.
	BaseType string
	// ValueKind is the System type a primitive's value maps to.
	ValueKind  ValueKind
	DocComment string
	Fields     []StructField
}

type StructField struct {
	// Name is the Go field name.
	Name string
	// MarshalName is the FHIR element name without [x].
	MarshalName   string
	PossibleTypes []FieldType
	Polymorph     bool
	Multiple      bool
	Optional      bool
	DocComment    string
}

type FieldType struct {
	// Name is the Go type name of the field. For system-typed fields
	// (element ids, extension urls) this is a Go builtin.
	Name        string
	IsPrimitive bool
	IsSystem    bool
}

// ValueKind names the System type a FHIR primitive value maps to.
type ValueKind string

const (
	ValueBoolean  ValueKind = "boolean"
	ValueString   ValueKind = "string"
	ValueInteger  ValueKind = "integer"
	ValueUnsigned ValueKind = "unsigned"
	ValueDecimal  ValueKind = "decimal"
	ValueDateTime ValueKind = "datetime"
)

// GoType returns the Go type of a primitive's value field.
// Decimals are handled separately, as they use apd.Decimal.
func (k ValueKind) GoType() string {
	switch k {
	case ValueBoolean:
		return "bool"
	case ValueInteger:
		return "int32"
	case ValueUnsigned:
		return "uint32"
	default:
		return "string"
	}
}
