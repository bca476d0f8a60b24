package ir

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
	"gopkg.in/yaml.v3"
)

// Definitions is the on-disk format of a release's type definitions.
type Definitions struct {
	Release string       `yaml:"release"`
	Types   []Definition `yaml:"types"`
}

type Definition struct {
	Name        string              `yaml:"name"`
	Kind        string              `yaml:"kind"`
	Base        string              `yaml:"base"`
	Value       ValueKind           `yaml:"value"`
	Description string              `yaml:"description"`
	Elements    []ElementDefinition `yaml:"elements"`
}

type ElementDefinition struct {
	// Name may end in [x] for choice elements.
	Name        string              `yaml:"name"`
	Types       []string            `yaml:"types"`
	Min         int                 `yaml:"min"`
	Max         string              `yaml:"max"`
	Description string              `yaml:"description"`
	Elements    []ElementDefinition `yaml:"elements"`
}

const systemPrefix = "System."

// Parse parses type definitions into the intermediate representation.
func Parse(data []byte) (string, []ResourceOrType, error) {
	var defs Definitions
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return "", nil, fmt.Errorf("unmarshal definitions: %w", err)
	}
	if defs.Release == "" {
		return "", nil, fmt.Errorf("definitions do not name a release")
	}

	known := map[string]Definition{}
	for _, d := range defs.Types {
		if _, ok := known[d.Name]; ok {
			return "", nil, fmt.Errorf("type %s defined twice", d.Name)
		}
		known[d.Name] = d
	}

	var resourcesOrTypes []ResourceOrType
	for _, d := range defs.Types {
		isPrimitive := d.Kind == "primitive"
		isResource := d.Kind == "resource"

		switch d.Kind {
		case "primitive", "complex", "resource":
		default:
			return "", nil, fmt.Errorf("type %s: unknown kind %q", d.Name, d.Kind)
		}
		if isPrimitive && d.Value == "" {
			return "", nil, fmt.Errorf("primitive %s has no value kind", d.Name)
		}

		structs, err := parseStructs(known, d, toGoTypeCasing(d.Name), d.Elements, false)
		if err != nil {
			return "", nil, err
		}

		resourcesOrTypes = append(resourcesOrTypes, ResourceOrType{
			Name:        toGoTypeCasing(d.Name),
			FileName:    toGoFileCasing(d.Name),
			IsResource:  isResource,
			IsPrimitive: isPrimitive,
			Structs:     structs,
		})
	}

	return defs.Release, resourcesOrTypes, nil
}

func parseStructs(
	known map[string]Definition,
	d Definition,
	structName string,
	elements []ElementDefinition,
	isBackbone bool,
) ([]Struct, error) {
	s := Struct{
		Name:        structName,
		MarshalName: d.Name,
		IsResource:  d.Kind == "resource" && !isBackbone,
		IsPrimitive: d.Kind == "primitive",
		IsBackbone:  isBackbone,
		BaseType:    d.Base,
		ValueKind:   d.Value,
		DocComment:  d.Description,
	}
	if isBackbone {
		s.MarshalName = "BackboneElement"
		s.BaseType = "Element"
		s.ValueKind = ""
	}

	var nested []Struct
	for _, e := range elements {
		name, polymorph := strings.CutSuffix(e.Name, "[x]")

		field := StructField{
			Name:        toGoFieldCasing(name),
			MarshalName: name,
			Polymorph:   polymorph,
			Multiple:    e.Max == "*",
			Optional:    e.Min == 0,
			DocComment:  e.Description,
		}

		if len(e.Elements) > 0 {
			backboneName := structName + toGoTypeCasing(name)
			backbone, err := parseStructs(known, d, backboneName, e.Elements, true)
			if err != nil {
				return nil, err
			}
			backbone[0].DocComment = e.Description
			nested = append(nested, backbone...)
			field.PossibleTypes = []FieldType{{Name: backboneName}}
		} else {
			if len(e.Types) == 0 {
				return nil, fmt.Errorf("%s.%s has no type", d.Name, e.Name)
			}
			if len(e.Types) > 1 && !polymorph {
				return nil, fmt.Errorf("%s.%s has several types but is no choice element", d.Name, e.Name)
			}
			for _, t := range e.Types {
				ft, err := matchFieldType(known, t)
				if err != nil {
					return nil, fmt.Errorf("%s.%s: %w", d.Name, e.Name, err)
				}
				field.PossibleTypes = append(field.PossibleTypes, ft)
			}
		}

		s.Fields = append(s.Fields, field)
	}

	return append([]Struct{s}, nested...), nil
}

func matchFieldType(known map[string]Definition, code string) (FieldType, error) {
	if system, ok := strings.CutPrefix(code, systemPrefix); ok {
		switch system {
		case "String":
			return FieldType{Name: "string", IsSystem: true}, nil
		default:
			return FieldType{}, fmt.Errorf("unsupported system type %s", code)
		}
	}

	d, ok := known[code]
	if !ok {
		return FieldType{}, fmt.Errorf("unknown type %s", code)
	}
	return FieldType{
		Name:        toGoTypeCasing(code),
		IsPrimitive: d.Kind == "primitive",
	}, nil
}

func toGoTypeCasing(name string) string {
	return strcase.ToCamel(name)
}

func toGoFieldCasing(name string) string {
	return strcase.ToCamel(name)
}

func toGoFileCasing(name string) string {
	return strcase.ToSnake(name)
}
