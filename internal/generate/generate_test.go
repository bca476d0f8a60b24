package generate

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"testing"

	. "github.com/dave/jennifer/jen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeyanbo/fhirpath-go/internal/generate/ir"
)

func parseDefinitions(t *testing.T) (string, []ir.ResourceOrType) {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("definitions", "r4.yaml"))
	require.NoError(t, err)
	release, rts, err := ir.Parse(data)
	require.NoError(t, err)
	return release, rts
}

func render(t *testing.T, files map[string]*File, name string) string {
	t.Helper()
	f, ok := files[name]
	require.True(t, ok, "no file %s", name)
	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf))
	return buf.String()
}

func TestFilesMatchCheckedInModel(t *testing.T) {
	release, rts := parseDefinitions(t)
	assert.Equal(t, "R4", release)

	files := Files(release, rts, DefaultGenerators())

	var names []string
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	checkedIn, err := filepath.Glob(filepath.Join("..", "..", "model", "r4", "*.go"))
	require.NoError(t, err)
	var want []string
	for _, path := range checkedIn {
		name := filepath.Base(path)
		want = append(want, name[:len(name)-len(".go")])
	}
	sort.Strings(want)

	assert.Equal(t, want, names)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			src := render(t, files, name)
			assert.Contains(t, src, "// Code generated by internal/cmd/generate. DO NOT EDIT.")
			assert.Contains(t, src, "package r4")
		})
	}
}

func TestGeneratedDecls(t *testing.T) {
	release, rts := parseDefinitions(t)
	files := Files(release, rts, DefaultGenerators())

	patient := render(t, files, "patient")
	for _, decl := range []string{
		"type Patient struct",
		"type PatientContact struct",
		"type PatientDeceased interface",
		"func (r Boolean) isPatientDeceased() {}",
		"func (r Patient) MemSize() int",
		"func (r Patient) ResourceType() string",
		"func (r Patient) ResourceId() (string, bool)",
		"func (r Patient) TypeName() string",
		"func (r Patient) Children(symbol string, index int) (fhirpath.Collection, error)",
		"func (r Patient) ToCollection(index int) fhirpath.Collection",
		"func (r Patient) String() string",
		`return "BackboneElement"`,
		`fhirpath.NoSuchPath("Patient", symbol)`,
	} {
		assert.Contains(t, patient, decl)
	}
	assert.NotContains(t, patient, "func (r PatientContact) ResourceType() string")
	assert.NotContains(t, patient, "PrimitiveValue")

	boolean := render(t, files, "boolean")
	for _, decl := range []string{
		"type Boolean struct",
		"func (r Boolean) PrimitiveValue() (fhirpath.Element, bool)",
		"fhirpath.Boolean(*r.Value)",
		"func (r Boolean) MarshalJSON() ([]byte, error)",
		"strconv.FormatBool(*r.Value)",
	} {
		assert.Contains(t, boolean, decl)
	}
	assert.NotContains(t, boolean, "ResourceType")

	decimal := render(t, files, "decimal")
	assert.Contains(t, decimal, `"github.com/cockroachdb/apd/v3"`)
	assert.Contains(t, decimal, "*apd.Decimal")

	positiveInt := render(t, files, "positive_int")
	assert.Contains(t, positiveInt, "if *r.Value > math.MaxInt32 {")
	assert.Contains(t, positiveInt, "fhirpath.Decimal{Value: apd.New(int64(*r.Value), 0)}")

	code := render(t, files, "code")
	assert.Contains(t, code, `return "string"`)

	doc := render(t, files, "doc")
	assert.Contains(t, doc, "// Package r4 provides generated models")
}

func TestFilesSkipsTypesWithoutCode(t *testing.T) {
	release, rts := parseDefinitions(t)
	files := Files(release, rts, []Generator{ImplResourceGenerator{}})

	var names []string
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	assert.Equal(t, []string{"observation", "patient"}, names)
}

func TestWrite(t *testing.T) {
	release, rts := parseDefinitions(t)
	files := Files(release, rts, DefaultGenerators())

	dir := filepath.Join(t.TempDir(), "r4")
	require.NoError(t, Write(dir, files))

	written, err := filepath.Glob(filepath.Join(dir, "*.go"))
	require.NoError(t, err)
	assert.Len(t, written, len(files))

	data, err := os.ReadFile(filepath.Join(dir, "patient.go"))
	require.NoError(t, err)
	assert.Equal(t, render(t, files, "patient"), string(data))
}
