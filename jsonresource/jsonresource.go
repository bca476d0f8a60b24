// Package jsonresource exposes FHIR JSON documents as FHIRPath elements
// without decoding them into a model.
//
// Properties are looked up lazily in the raw document. As there is no schema,
// properties not present in the document are empty instead of an error,
// and nested objects carry the type name "Element" unless they name a resourceType.
//
//	res, err := jsonresource.Parse(data)
//	if err != nil {
//		return err
//	}
//	result, err := fhirpath.Evaluate(ctx, res, fhirpath.MustParse("Patient.name.given"))
package jsonresource

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/buger/jsonparser"
	"github.com/cockroachdb/apd/v3"
	"github.com/yeyanbo/fhirpath-go/fhirpath"
	"github.com/yeyanbo/fhirpath-go/model"
)

// ElementTypeName is the type name of nested objects without resourceType.
const ElementTypeName = "Element"

var (
	ErrNotAnObject         = errors.New("jsonresource: document is not a JSON object")
	ErrMissingResourceType = errors.New("jsonresource: document has no resourceType")
)

var _ model.Resource = Object{}

// Object is a JSON object.
type Object struct {
	typeName string
	raw      []byte
}

// Parse validates data and returns its root object.
// The root type name is taken from the resourceType property.
func Parse(data []byte) (Object, error) {
	value, dataType, _, err := jsonparser.Get(data)
	if err != nil {
		return Object{}, fmt.Errorf("jsonresource: %w", err)
	}
	if dataType != jsonparser.Object {
		return Object{}, ErrNotAnObject
	}
	if err := validate(value, dataType); err != nil {
		return Object{}, fmt.Errorf("jsonresource: %w", err)
	}

	resourceType, err := jsonparser.GetString(value, "resourceType")
	if err != nil || resourceType == "" {
		return Object{}, ErrMissingResourceType
	}
	return Object{typeName: resourceType, raw: value}, nil
}

// validate walks the whole document once, so lazy lookups later can not fail.
func validate(value []byte, dataType jsonparser.ValueType) error {
	switch dataType {
	case jsonparser.Object:
		return jsonparser.ObjectEach(value, func(key []byte, v []byte, t jsonparser.ValueType, _ int) error {
			if err := validate(v, t); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			return nil
		})
	case jsonparser.Array:
		var inner error
		_, err := jsonparser.ArrayEach(value, func(v []byte, t jsonparser.ValueType, _ int, err error) {
			if inner != nil {
				return
			}
			if err != nil {
				inner = err
				return
			}
			inner = validate(v, t)
		})
		if err != nil {
			return err
		}
		return inner
	case jsonparser.String:
		_, err := jsonparser.ParseString(value)
		return err
	case jsonparser.Number:
		_, _, err := apd.NewFromString(string(value))
		return err
	case jsonparser.Boolean:
		_, err := jsonparser.ParseBoolean(value)
		return err
	case jsonparser.Null:
		return nil
	default:
		return fmt.Errorf("unexpected value %q", value)
	}
}

func (o Object) TypeName() string {
	return o.typeName
}

// Children looks symbol up as a literal key. It is not interpreted as a
// jsonparser key path, so symbols like "a[0]" only match a key of that name.
func (o Object) Children(symbol string, index int) (fhirpath.Collection, error) {
	var (
		value    []byte
		dataType = jsonparser.NotExist
	)
	err := jsonparser.ObjectEach(o.raw, func(key []byte, v []byte, t jsonparser.ValueType, _ int) error {
		if dataType == jsonparser.NotExist && string(key) == symbol {
			value, dataType = v, t
		}
		return nil
	})
	if err != nil {
		return nil, o.lookupError(symbol, err)
	}
	if dataType == jsonparser.NotExist {
		return fhirpath.Collection{}, nil
	}

	children, err := appendValue(nil, value, dataType)
	if err != nil {
		return nil, o.lookupError(symbol, err)
	}
	return fhirpath.Select(children, index), nil
}

func (o Object) lookupError(symbol string, err error) error {
	return &fhirpath.Error{
		Kind:     fhirpath.Internal,
		Pos:      -1,
		Symbol:   symbol,
		TypeName: o.typeName,
		Msg:      fmt.Sprintf("jsonresource: %s: %v", symbol, err),
	}
}

func (o Object) ToCollection(index int) fhirpath.Collection {
	return fhirpath.Select(fhirpath.Collection{o}, index)
}

// ResourceType returns the resourceType property, empty for nested elements.
func (o Object) ResourceType() string {
	if o.typeName == ElementTypeName {
		return ""
	}
	return o.typeName
}

func (o Object) ResourceId() (string, bool) {
	id, err := jsonparser.GetString(o.raw, "id")
	if err != nil {
		return "", false
	}
	return id, true
}

func (o Object) MemSize() int {
	return int(reflect.TypeOf(o).Size()) + len(o.typeName) + cap(o.raw)
}

// String returns the raw JSON of the object.
func (o Object) String() string {
	return string(o.raw)
}

// appendValue converts a JSON value to elements. Arrays flatten, null is dropped.
func appendValue(c fhirpath.Collection, value []byte, dataType jsonparser.ValueType) (fhirpath.Collection, error) {
	switch dataType {
	case jsonparser.Object:
		typeName := ElementTypeName
		if rt, err := jsonparser.GetString(value, "resourceType"); err == nil && rt != "" {
			typeName = rt
		}
		return append(c, Object{typeName: typeName, raw: value}), nil
	case jsonparser.Array:
		var inner error
		_, err := jsonparser.ArrayEach(value, func(v []byte, t jsonparser.ValueType, _ int, err error) {
			if inner != nil {
				return
			}
			if err != nil {
				inner = err
				return
			}
			c, inner = appendValue(c, v, t)
		})
		if err != nil {
			return nil, err
		}
		return c, inner
	case jsonparser.String:
		s, err := jsonparser.ParseString(value)
		if err != nil {
			return nil, err
		}
		return append(c, fhirpath.String(s)), nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(value)
		if err != nil {
			return nil, err
		}
		return append(c, fhirpath.Boolean(b)), nil
	case jsonparser.Number:
		n, err := parseNumber(value)
		if err != nil {
			return nil, err
		}
		return append(c, n), nil
	case jsonparser.Null:
		return c, nil
	default:
		return nil, fmt.Errorf("unexpected value %q", value)
	}
}

// parseNumber yields an Integer for numbers without fraction or exponent
// that fit into 32 bits, a Decimal otherwise.
func parseNumber(value []byte) (fhirpath.Element, error) {
	if !strings.ContainsAny(string(value), ".eE") {
		if i, err := jsonparser.ParseInt(value); err == nil && i >= -1<<31 && i <= 1<<31-1 {
			return fhirpath.Integer(i), nil
		}
	}
	d, _, err := apd.NewFromString(string(value))
	if err != nil {
		return nil, err
	}
	return fhirpath.Decimal{Value: d}, nil
}
