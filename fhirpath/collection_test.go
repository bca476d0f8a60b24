package fhirpath_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeyanbo/fhirpath-go/fhirpath"
	"github.com/yeyanbo/fhirpath-go/model/r4"
	"github.com/yeyanbo/fhirpath-go/utils/ptr"
)

func TestCollectionAccess(t *testing.T) {
	var c fhirpath.Collection
	assert.True(t, c.Empty())
	assert.Equal(t, 0, c.Count())

	c.Append(fhirpath.Integer(1), fhirpath.Integer(2))
	c.Extend(fhirpath.Collection{fhirpath.String("a")})
	assert.False(t, c.Empty())
	assert.Equal(t, 3, c.Count())

	e, ok := c.At(2)
	require.True(t, ok)
	assert.Equal(t, fhirpath.String("a"), e)

	_, ok = c.At(3)
	assert.False(t, ok)
	_, ok = c.At(-1)
	assert.False(t, ok)
}

func TestCollectionEqual(t *testing.T) {
	tests := []struct {
		name  string
		a, b  fhirpath.Collection
		equal bool
	}{
		{name: "both empty", a: fhirpath.Collection{}, b: nil, equal: true},
		{name: "same values", a: strs("a", "b"), b: strs("a", "b"), equal: true},
		{name: "order matters", a: strs("a", "b"), b: strs("b", "a"), equal: false},
		{name: "length differs", a: strs("a"), b: strs("a", "a"), equal: false},
		{
			name:  "wrapped primitive",
			a:     fhirpath.Collection{r4.String{Value: ptr.To("a")}},
			b:     strs("a"),
			equal: true,
		},
		{
			name:  "integer and decimal",
			a:     fhirpath.Collection{fhirpath.Integer(2)},
			b:     fhirpath.Collection{decimal("2.0")},
			equal: true,
		},
		{
			name:  "complex elements",
			a:     fhirpath.Collection{r4.Coding{Code: &r4.Code{Value: ptr.To("x")}}},
			b:     fhirpath.Collection{r4.Coding{Code: &r4.Code{Value: ptr.To("x")}}},
			equal: true,
		},
		{
			name:  "different complex elements",
			a:     fhirpath.Collection{r4.Coding{Code: &r4.Code{Value: ptr.To("x")}}},
			b:     fhirpath.Collection{r4.Coding{Code: &r4.Code{Value: ptr.To("y")}}},
			equal: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, tt.a.Equal(tt.b))
			assert.Equal(t, tt.equal, tt.b.Equal(tt.a))
		})
	}
}

func TestCollectionPredicates(t *testing.T) {
	empty := fhirpath.Collection{}
	allTrue, err := empty.AllTrue()
	require.NoError(t, err)
	assert.True(t, allTrue)
	anyTrue, err := empty.AnyTrue()
	require.NoError(t, err)
	assert.False(t, anyTrue)

	mixed := fhirpath.Collection{fhirpath.Boolean(true), r4.Boolean{Value: ptr.To(false)}}
	allTrue, err = mixed.AllTrue()
	require.NoError(t, err)
	assert.False(t, allTrue)
	anyTrue, err = mixed.AnyTrue()
	require.NoError(t, err)
	assert.True(t, anyTrue)

	_, err = strs("true").AllTrue()
	assert.True(t, errors.Is(err, fhirpath.TypeMismatch))
	_, err = fhirpath.Collection{fhirpath.Boolean(false), fhirpath.Integer(1)}.AnyTrue()
	assert.True(t, errors.Is(err, fhirpath.TypeMismatch))
	_, err = fhirpath.Collection{fhirpath.Boolean(false), fhirpath.String("x")}.AllTrue()
	assert.True(t, errors.Is(err, fhirpath.TypeMismatch))
	_, err = fhirpath.Collection{fhirpath.Boolean(true), fhirpath.String("x")}.AnyTrue()
	assert.True(t, errors.Is(err, fhirpath.TypeMismatch))

	assert.True(t, empty.AllHaveValue())
	assert.True(t, fhirpath.Collection{r4.String{Value: ptr.To("a")}, r4.HumanName{}}.AllHaveValue())
	assert.False(t, fhirpath.Collection{r4.String{Value: ptr.To("a")}, r4.String{}}.AllHaveValue())
}

func TestCollectionString(t *testing.T) {
	assert.Equal(t, "{ }", fhirpath.Collection{}.String())
	assert.Equal(t, "{ a, 1, true }", fhirpath.Collection{
		fhirpath.String("a"), fhirpath.Integer(1), fhirpath.Boolean(true),
	}.String())
}

func TestSingleton(t *testing.T) {
	b, ok, err := fhirpath.Singleton[fhirpath.Boolean](fhirpath.Collection{r4.Boolean{Value: ptr.To(true)}})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, fhirpath.Boolean(true), b)

	_, ok, err = fhirpath.Singleton[fhirpath.Boolean](fhirpath.Collection{})
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = fhirpath.Singleton[fhirpath.Boolean](fhirpath.Collection{r4.Boolean{}})
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = fhirpath.Singleton[fhirpath.Boolean](strs("a", "b"))
	assert.True(t, errors.Is(err, fhirpath.TypeMismatch))

	_, _, err = fhirpath.Singleton[fhirpath.Integer](strs("a"))
	assert.True(t, errors.Is(err, fhirpath.TypeMismatch))
}

func TestSelect(t *testing.T) {
	c := strs("a", "b", "c")
	assert.Equal(t, c, fhirpath.Select(c, fhirpath.NoIndex))
	assert.Equal(t, strs("b"), fhirpath.Select(c, 1))
	assert.Equal(t, fhirpath.Collection{}, fhirpath.Select(c, 3))
}
