package ir_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeyanbo/fhirpath-go/internal/generate/ir"
)

const definitions = `
release: R4
types:
  - name: boolean
    kind: primitive
    value: boolean
    elements:
      - name: id
        types: [System.String]
        max: "1"
  - name: string
    kind: primitive
    value: string
  - name: Extension
    kind: complex
    base: Element
    elements:
      - name: url
        types: [System.String]
        min: 1
        max: "1"
      - name: value[x]
        types: [boolean, string]
        max: "1"
  - name: Patient
    kind: resource
    base: DomainResource
    description: A patient.
    elements:
      - name: active
        types: [boolean]
        max: "1"
      - name: contact
        max: "*"
        description: A contact.
        elements:
          - name: name
            types: [string]
            min: 1
            max: "1"
`

func TestParse(t *testing.T) {
	release, rts, err := ir.Parse([]byte(definitions))
	require.NoError(t, err)
	assert.Equal(t, "R4", release)

	boolean := ir.FieldType{Name: "Boolean", IsPrimitive: true}
	str := ir.FieldType{Name: "String", IsPrimitive: true}
	system := ir.FieldType{Name: "string", IsSystem: true}

	want := []ir.ResourceOrType{
		{
			Name:        "Boolean",
			FileName:    "boolean",
			IsPrimitive: true,
			Structs: []ir.Struct{{
				Name:        "Boolean",
				MarshalName: "boolean",
				IsPrimitive: true,
				ValueKind:   ir.ValueBoolean,
				Fields: []ir.StructField{
					{Name: "Id", MarshalName: "id", PossibleTypes: []ir.FieldType{system}, Optional: true},
				},
			}},
		},
		{
			Name:        "String",
			FileName:    "string",
			IsPrimitive: true,
			Structs: []ir.Struct{{
				Name:        "String",
				MarshalName: "string",
				IsPrimitive: true,
				ValueKind:   ir.ValueString,
			}},
		},
		{
			Name:     "Extension",
			FileName: "extension",
			Structs: []ir.Struct{{
				Name:        "Extension",
				MarshalName: "Extension",
				BaseType:    "Element",
				Fields: []ir.StructField{
					{Name: "Url", MarshalName: "url", PossibleTypes: []ir.FieldType{system}},
					{Name: "Value", MarshalName: "value", PossibleTypes: []ir.FieldType{boolean, str}, Polymorph: true, Optional: true},
				},
			}},
		},
		{
			Name:       "Patient",
			FileName:   "patient",
			IsResource: true,
			Structs: []ir.Struct{
				{
					Name:        "Patient",
					MarshalName: "Patient",
					IsResource:  true,
					BaseType:    "DomainResource",
					DocComment:  "A patient.",
					Fields: []ir.StructField{
						{Name: "Active", MarshalName: "active", PossibleTypes: []ir.FieldType{boolean}, Optional: true},
						{
							Name:          "Contact",
							MarshalName:   "contact",
							PossibleTypes: []ir.FieldType{{Name: "PatientContact"}},
							Multiple:      true,
							Optional:      true,
							DocComment:    "A contact.",
						},
					},
				},
				{
					Name:        "PatientContact",
					MarshalName: "BackboneElement",
					IsBackbone:  true,
					BaseType:    "Element",
					DocComment:  "A contact.",
					Fields: []ir.StructField{
						{Name: "Name", MarshalName: "name", PossibleTypes: []ir.FieldType{str}},
					},
				},
			},
		},
	}

	if diff := cmp.Diff(want, rts); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "invalid yaml", data: "release: [R4"},
		{name: "no release", data: "types: []"},
		{
			name: "duplicate type",
			data: "release: R4\ntypes:\n  - {name: string, kind: primitive, value: string}\n  - {name: string, kind: primitive, value: string}\n",
		},
		{
			name: "unknown kind",
			data: "release: R4\ntypes:\n  - {name: Thing, kind: logical}\n",
		},
		{
			name: "primitive without value",
			data: "release: R4\ntypes:\n  - {name: string, kind: primitive}\n",
		},
		{
			name: "unknown element type",
			data: "release: R4\ntypes:\n  - name: Patient\n    kind: resource\n    elements:\n      - {name: name, types: [HumanName], max: '*'}\n",
		},
		{
			name: "element without type",
			data: "release: R4\ntypes:\n  - name: Patient\n    kind: resource\n    elements:\n      - {name: name, max: '*'}\n",
		},
		{
			name: "several types without choice",
			data: "release: R4\ntypes:\n  - {name: string, kind: primitive, value: string}\n  - {name: boolean, kind: primitive, value: boolean}\n  - name: Patient\n    kind: resource\n    elements:\n      - {name: deceased, types: [boolean, string], max: '1'}\n",
		},
		{
			name: "unsupported system type",
			data: "release: R4\ntypes:\n  - name: Patient\n    kind: resource\n    elements:\n      - {name: count, types: [System.Integer], max: '1'}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ir.Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}
