package jsonresource_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeyanbo/fhirpath-go/fhirpath"
	"github.com/yeyanbo/fhirpath-go/jsonresource"
)

const patientJSON = `{
  "resourceType": "Patient",
  "id": "windsor",
  "active": true,
  "gender": "male",
  "photo": null,
  "name": [
    {"use": "maiden", "family": "Windsor", "given": ["Peter", "Tom"]},
    {"use": "maiden", "family": "Blacksmith", "given": ["Jack", "Tom2", null]}
  ],
  "telecom": [{"value": "1234567890", "use": "work", "rank": 1}],
  "extension": [
    {"url": "http://example.org/weight", "valueDecimal": 71.50},
    {"url": "http://example.org/steps", "valueInteger": 3000000000},
    {"url": "http://example.org/nickname", "valueString": "Pete \"the Great\""}
  ],
  "contained": [
    {"resourceType": "Organization", "id": "org", "name": "Acme"}
  ]
}`

func parsePatient(t *testing.T) jsonresource.Object {
	t.Helper()
	patient, err := jsonresource.Parse([]byte(patientJSON))
	require.NoError(t, err)
	return patient
}

func evaluate(t *testing.T, root fhirpath.Element, src string) fhirpath.Collection {
	t.Helper()
	result, err := fhirpath.Evaluate(context.Background(), root, fhirpath.MustParse(src))
	require.NoError(t, err, src)
	return result
}

func TestParse(t *testing.T) {
	patient := parsePatient(t)

	assert.Equal(t, "Patient", patient.TypeName())
	assert.Equal(t, "Patient", patient.ResourceType())
	id, ok := patient.ResourceId()
	assert.True(t, ok)
	assert.Equal(t, "windsor", id)
	assert.Greater(t, patient.MemSize(), len(patientJSON)/2)
	assert.JSONEq(t, patientJSON, patient.String())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{name: "array", data: `[{"resourceType": "Patient"}]`, wantErr: jsonresource.ErrNotAnObject},
		{name: "string", data: `"Patient"`, wantErr: jsonresource.ErrNotAnObject},
		{name: "no resourceType", data: `{"id": "x"}`, wantErr: jsonresource.ErrMissingResourceType},
		{name: "empty resourceType", data: `{"resourceType": ""}`, wantErr: jsonresource.ErrMissingResourceType},
		{name: "numeric resourceType", data: `{"resourceType": 1}`, wantErr: jsonresource.ErrMissingResourceType},
		{name: "truncated", data: `{"resourceType": "Patient", "name": [`},
		{name: "bad nested value", data: `{"resourceType": "Patient", "name": [{"given": [tru]}]}`},
		{name: "empty", data: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := jsonresource.Parse([]byte(tt.data))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	patient := parsePatient(t)

	tests := []struct {
		src  string
		want fhirpath.Collection
	}{
		{src: "Patient.active", want: fhirpath.Collection{fhirpath.Boolean(true)}},
		{src: "Patient.name.given.count()", want: fhirpath.Collection{fhirpath.Integer(4)}},
		{src: "Patient.name[0].given[1]", want: fhirpath.Collection{fhirpath.String("Tom")}},
		{src: "Patient.telecom.rank = 1", want: fhirpath.Collection{fhirpath.Boolean(true)}},
		{src: "Patient.name.exists()", want: fhirpath.Collection{fhirpath.Boolean(true)}},
		{src: "Patient.photo.exists()", want: fhirpath.Collection{fhirpath.Boolean(false)}},
		{src: "Patient.nickname", want: fhirpath.Collection{}},
		{src: "Patient.name.where(family = 'Blacksmith').given", want: fhirpath.Collection{
			fhirpath.String("Jack"), fhirpath.String("Tom2"),
		}},
		{src: "Patient.extension.valueDecimal > 71", want: fhirpath.Collection{fhirpath.Boolean(true)}},
		{src: "Patient.extension.valueInteger is Decimal", want: fhirpath.Collection{fhirpath.Boolean(true)}},
		{src: "Patient.telecom.rank is Integer", want: fhirpath.Collection{fhirpath.Boolean(true)}},
		{src: "Patient.extension.valueString", want: fhirpath.Collection{fhirpath.String(`Pete "the Great"`)}},
		{src: "Patient.contained.name", want: fhirpath.Collection{fhirpath.String("Acme")}},
		{src: "Patient.contained is Organization", want: fhirpath.Collection{fhirpath.Boolean(true)}},
		{src: "Patient.name[0] is Element", want: fhirpath.Collection{fhirpath.Boolean(true)}},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got := evaluate(t, patient, tt.src)
			assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
		})
	}
}

func TestDecimalKeepsPrecision(t *testing.T) {
	patient := parsePatient(t)

	got := evaluate(t, patient, "Patient.extension.valueDecimal")
	require.Len(t, got, 1)
	assert.Equal(t, "71.50", got[0].String())
}

func TestNestedObjects(t *testing.T) {
	patient := parsePatient(t)

	names := evaluate(t, patient, "Patient.name")
	require.Len(t, names, 2)

	name, ok := names[0].(jsonresource.Object)
	require.True(t, ok)
	assert.Equal(t, jsonresource.ElementTypeName, name.TypeName())
	assert.Equal(t, "", name.ResourceType())
	_, ok = name.ResourceId()
	assert.False(t, ok)

	contained := evaluate(t, patient, "Patient.contained")
	require.Len(t, contained, 1)
	org, ok := contained[0].(jsonresource.Object)
	require.True(t, ok)
	assert.Equal(t, "Organization", org.ResourceType())
	id, ok := org.ResourceId()
	assert.True(t, ok)
	assert.Equal(t, "org", id)
}

func TestChildrenIndex(t *testing.T) {
	patient := parsePatient(t)

	given, err := patient.Children("name", 1)
	require.NoError(t, err)
	require.Len(t, given, 1)

	none, err := patient.Children("name", 5)
	require.NoError(t, err)
	assert.Empty(t, none)

	assert.Len(t, patient.ToCollection(fhirpath.NoIndex), 1)
	assert.Empty(t, patient.ToCollection(1))
}

func TestChildrenLiteralKeys(t *testing.T) {
	basic, err := jsonresource.Parse([]byte(`{
	  "resourceType": "Basic",
	  "code": ["x", "y"],
	  "code[0]": "literal",
	  "subject": {"reference": "Patient/1"}
	}`))
	require.NoError(t, err)

	tests := []struct {
		src  string
		want fhirpath.Collection
	}{
		{src: "Basic.`code[0]`", want: fhirpath.Collection{fhirpath.String("literal")}},
		{src: "Basic.`code[1]`", want: fhirpath.Collection{}},
		{src: "Basic.code[1]", want: fhirpath.Collection{fhirpath.String("y")}},
		{src: "Basic.`subject.reference`", want: fhirpath.Collection{}},
		{src: "Basic.subject.reference", want: fhirpath.Collection{fhirpath.String("Patient/1")}},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got := evaluate(t, basic, tt.src)
			assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
		})
	}
}
