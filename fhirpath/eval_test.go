package fhirpath_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeyanbo/fhirpath-go/fhirpath"
	"github.com/yeyanbo/fhirpath-go/model/r4"
	"github.com/yeyanbo/fhirpath-go/utils/ptr"
)

func names(values ...string) []r4.String {
	s := make([]r4.String, 0, len(values))
	for _, v := range values {
		s = append(s, r4.String{Value: ptr.To(v)})
	}
	return s
}

func testPatient() r4.Patient {
	return r4.Patient{
		Id: &r4.Id{Value: ptr.To("windsor")},
		Name: []r4.HumanName{
			{
				Use:    &r4.Code{Value: ptr.To("maiden")},
				Family: &r4.String{Value: ptr.To("Windsor")},
				Given:  names("Peter", "Tom"),
			},
			{
				Use:    &r4.Code{Value: ptr.To("maiden")},
				Family: &r4.String{Value: ptr.To("Blacksmith")},
				Given:  names("Jack", "Tom2"),
			},
		},
		Gender: &r4.Code{Value: ptr.To("male")},
		Active: &r4.Boolean{Value: ptr.To(true)},
		Telecom: []r4.ContactPoint{{
			Value: &r4.String{Value: ptr.To("1234567890")},
			Use:   &r4.Code{Value: ptr.To("work")},
			Rank:  &r4.PositiveInt{Value: ptr.To[uint32](1)},
		}},
	}
}

func eval(t *testing.T, ctx context.Context, root fhirpath.Element, src string) fhirpath.Collection {
	t.Helper()
	expr, err := fhirpath.Parse(src)
	require.NoError(t, err, src)
	result, err := fhirpath.Evaluate(ctx, root, expr)
	require.NoError(t, err, src)
	return result
}

func evalError(t *testing.T, ctx context.Context, root fhirpath.Element, src string) *fhirpath.Error {
	t.Helper()
	expr, err := fhirpath.Parse(src)
	require.NoError(t, err, src)
	result, err := fhirpath.Evaluate(ctx, root, expr)
	require.Error(t, err, src)
	assert.Nil(t, result)

	var fpErr *fhirpath.Error
	require.True(t, errors.As(err, &fpErr), "%v is not a *fhirpath.Error", err)
	return fpErr
}

func assertCollection(t *testing.T, want, got fhirpath.Collection) {
	t.Helper()
	assert.True(t, want.Equal(got), "want %v, got %v", want, got)
}

func decimal(s string) fhirpath.Decimal {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return fhirpath.Decimal{Value: d}
}

func TestScenarios(t *testing.T) {
	patient := testPatient()
	ctx := context.Background()

	t.Run("active", func(t *testing.T) {
		assertCollection(t, fhirpath.Collection{fhirpath.Boolean(true)}, eval(t, ctx, patient, "Patient.active"))
	})
	t.Run("count of given names", func(t *testing.T) {
		assertCollection(t, fhirpath.Collection{fhirpath.Integer(4)}, eval(t, ctx, patient, "Patient.name.given.count()"))
	})
	t.Run("allTrue on strings", func(t *testing.T) {
		err := evalError(t, ctx, patient, "Patient.name.given.allTrue()")
		assert.True(t, errors.Is(err, fhirpath.TypeMismatch))
		assert.Equal(t, "allTrue", err.Symbol)
		assert.Equal(t, 19, err.Pos)
		assert.Equal(t, "string", err.TypeName)
	})
	t.Run("indexed path", func(t *testing.T) {
		assertCollection(t, fhirpath.Collection{fhirpath.String("Tom")}, eval(t, ctx, patient, "Patient.name[0].given[1]"))
	})
	t.Run("rank comparison", func(t *testing.T) {
		assertCollection(t, fhirpath.Collection{fhirpath.Boolean(true)}, eval(t, ctx, patient, "Patient.telecom.rank = 1"))
	})
	t.Run("exists", func(t *testing.T) {
		assertCollection(t, fhirpath.Collection{fhirpath.Boolean(true)}, eval(t, ctx, patient, "Patient.name.exists()"))
		assertCollection(t, fhirpath.Collection{fhirpath.Boolean(false)}, eval(t, ctx, patient, "Patient.photo.exists()"))
	})
}

func TestEvaluate(t *testing.T) {
	patient := testPatient()
	ctx := context.Background()

	tests := []struct {
		src  string
		want fhirpath.Collection
	}{
		// navigation
		{src: "Patient.name.given", want: fhirpath.Collection{
			fhirpath.String("Peter"), fhirpath.String("Tom"), fhirpath.String("Jack"), fhirpath.String("Tom2"),
		}},
		{src: "Patient.name.family", want: fhirpath.Collection{fhirpath.String("Windsor"), fhirpath.String("Blacksmith")}},
		{src: "name.family", want: fhirpath.Collection{fhirpath.String("Windsor"), fhirpath.String("Blacksmith")}},
		{src: "Patient.name[1].given[0]", want: fhirpath.Collection{fhirpath.String("Jack")}},
		{src: "Patient[0].id", want: fhirpath.Collection{fhirpath.String("windsor")}},
		{src: "Patient.gender", want: fhirpath.Collection{fhirpath.String("male")}},
		{src: "Patient.deceased", want: fhirpath.Collection{}},
		{src: "Patient.photo[0]", want: fhirpath.Collection{}},
		{src: "(Patient.name.given)[2]", want: fhirpath.Collection{fhirpath.String("Jack")}},

		// literals
		{src: "'abc'", want: fhirpath.Collection{fhirpath.String("abc")}},
		{src: "true", want: fhirpath.Collection{fhirpath.Boolean(true)}},
		{src: "-7", want: fhirpath.Collection{fhirpath.Integer(-7)}},
		{src: "1.25", want: fhirpath.Collection{decimal("1.25")}},

		// equality
		{src: "Patient.gender = 'male'", want: fhirpath.Collection{fhirpath.Boolean(true)}},
		{src: "Patient.gender != 'male'", want: fhirpath.Collection{fhirpath.Boolean(false)}},
		{src: "Patient.gender = 'MALE'", want: fhirpath.Collection{fhirpath.Boolean(false)}},
		{src: "Patient.gender ~ ' MALE '", want: fhirpath.Collection{fhirpath.Boolean(true)}},
		{src: "Patient.gender !~ 'female'", want: fhirpath.Collection{fhirpath.Boolean(true)}},
		{src: "Patient.name[0].family = Patient.name[1].family", want: fhirpath.Collection{fhirpath.Boolean(false)}},
		{src: "1 = 1.0", want: fhirpath.Collection{fhirpath.Boolean(true)}},
		{src: "1.2 ~ 1.24", want: fhirpath.Collection{fhirpath.Boolean(true)}},
		{src: "1.2 ~ 1.26", want: fhirpath.Collection{fhirpath.Boolean(false)}},
		{src: "'a' = 1", want: fhirpath.Collection{fhirpath.Boolean(false)}},

		// ordering
		{src: "Patient.telecom.rank < 2", want: fhirpath.Collection{fhirpath.Boolean(true)}},
		{src: "2 >= 2.0", want: fhirpath.Collection{fhirpath.Boolean(true)}},
		{src: "'abc' > 'abd'", want: fhirpath.Collection{fhirpath.Boolean(false)}},
		{src: "@2020-01-01 < @2020-02", want: fhirpath.Collection{fhirpath.Boolean(true)}},
		{src: "@2020-02-01 <= @2020-01", want: fhirpath.Collection{fhirpath.Boolean(false)}},
		{src: "@2020 = @2020-01", want: fhirpath.Collection{}},
		{src: "@2020-01-01T10:00:00Z = @2020-01-01T11:00:00+01:00", want: fhirpath.Collection{fhirpath.Boolean(true)}},

		// arithmetic
		{src: "(1 + 2) * 3", want: fhirpath.Collection{fhirpath.Integer(9)}},
		{src: "1 + 2 * 3", want: fhirpath.Collection{fhirpath.Integer(7)}},
		{src: "10 - 4 - 3", want: fhirpath.Collection{fhirpath.Integer(3)}},
		{src: "Patient.telecom.rank + 1", want: fhirpath.Collection{fhirpath.Integer(2)}},
		{src: "1.5 + 1", want: fhirpath.Collection{decimal("2.5")}},
		{src: "10 / 4", want: fhirpath.Collection{decimal("2.5")}},
		{src: "6 / 3", want: fhirpath.Collection{decimal("2")}},
		{src: "-(2 * 3)", want: fhirpath.Collection{fhirpath.Integer(-6)}},
		{src: "-2147483648", want: fhirpath.Collection{fhirpath.Integer(-2147483648)}},

		// logic
		{src: "Patient.active and Patient.name.exists()", want: fhirpath.Collection{fhirpath.Boolean(true)}},
		{src: "Patient.active and Patient.photo.exists()", want: fhirpath.Collection{fhirpath.Boolean(false)}},
		{src: "Patient.deceased and false", want: fhirpath.Collection{fhirpath.Boolean(false)}},
		{src: "Patient.deceased and true", want: fhirpath.Collection{}},
		{src: "Patient.deceased or true", want: fhirpath.Collection{fhirpath.Boolean(true)}},
		{src: "Patient.deceased or false", want: fhirpath.Collection{}},
		{src: "true xor false", want: fhirpath.Collection{fhirpath.Boolean(true)}},
		{src: "true xor Patient.deceased", want: fhirpath.Collection{}},
		{src: "false or true and false", want: fhirpath.Collection{fhirpath.Boolean(false)}},

		// types
		{src: "Patient.gender is code", want: fhirpath.Collection{fhirpath.Boolean(true)}},
		{src: "Patient.gender is string", want: fhirpath.Collection{fhirpath.Boolean(true)}},
		{src: "Patient.gender is System.String", want: fhirpath.Collection{fhirpath.Boolean(true)}},
		{src: "Patient.gender is FHIR.String", want: fhirpath.Collection{fhirpath.Boolean(false)}},
		{src: "Patient.gender is boolean", want: fhirpath.Collection{fhirpath.Boolean(false)}},
		{src: "Patient.active is Boolean", want: fhirpath.Collection{fhirpath.Boolean(true)}},
		{src: "Patient.telecom.rank is integer", want: fhirpath.Collection{fhirpath.Boolean(true)}},
		{src: "Patient.name[0] is HumanName", want: fhirpath.Collection{fhirpath.Boolean(true)}},
		{src: "Patient is DomainResource", want: fhirpath.Collection{fhirpath.Boolean(true)}},
		{src: "Patient.deceased is boolean", want: fhirpath.Collection{}},
		{src: "Patient.gender as string", want: fhirpath.Collection{fhirpath.String("male")}},
		{src: "Patient.gender as boolean", want: fhirpath.Collection{}},
		{src: "1 is Integer", want: fhirpath.Collection{fhirpath.Boolean(true)}},
		{src: "1 is Decimal", want: fhirpath.Collection{fhirpath.Boolean(false)}},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assertCollection(t, tt.want, eval(t, ctx, patient, tt.src))
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	patient := testPatient()
	ctx := context.Background()

	tests := []struct {
		src          string
		wantKind     fhirpath.ErrorKind
		wantPos      int
		wantSymbol   string
		wantTypeName string
	}{
		{src: "Patient.nickname", wantKind: fhirpath.PathUnknown, wantPos: 8, wantSymbol: "nickname", wantTypeName: "Patient"},
		{src: "Patient.gender.family", wantKind: fhirpath.PathUnknown, wantPos: 15, wantSymbol: "family", wantTypeName: "code"},
		{src: "Patient.name.where(nickname = 'x')", wantKind: fhirpath.PathUnknown, wantPos: 19, wantSymbol: "nickname", wantTypeName: "HumanName"},
		{src: "Patient.unknown()", wantKind: fhirpath.FunctionUnknown, wantPos: 8, wantSymbol: "unknown"},
		{src: "Patient.name.count(1)", wantKind: fhirpath.Arity, wantPos: 13, wantSymbol: "count"},
		{src: "Patient.name.where()", wantKind: fhirpath.Arity, wantPos: 13, wantSymbol: "where"},
		{src: "Patient.name.given + 1", wantKind: fhirpath.TypeMismatch, wantPos: 19, wantSymbol: "+"},
		{src: "Patient.name[0] = 1", wantKind: fhirpath.TypeMismatch, wantPos: 16, wantSymbol: "=", wantTypeName: "HumanName"},
		{src: "'a' + 'b'", wantKind: fhirpath.TypeMismatch, wantPos: 4, wantSymbol: "+"},
		{src: "Patient.active * 2", wantKind: fhirpath.TypeMismatch, wantPos: 15, wantSymbol: "*"},
		{src: "'a' < 1", wantKind: fhirpath.TypeMismatch, wantPos: 4, wantSymbol: "<"},
		{src: "'a' and true", wantKind: fhirpath.TypeMismatch, wantPos: 4, wantSymbol: "and"},
		{src: "Patient.name is HumanName", wantKind: fhirpath.TypeMismatch, wantPos: 13, wantSymbol: "is"},
		{src: "-'a'", wantKind: fhirpath.TypeMismatch, wantPos: 0, wantSymbol: "-"},
		{src: "1 / 0", wantKind: fhirpath.Arithmetic, wantPos: 2, wantSymbol: "/"},
		{src: "1.5 / 0.0", wantKind: fhirpath.Arithmetic, wantPos: 4, wantSymbol: "/"},
		{src: "2147483647 + 1", wantKind: fhirpath.Arithmetic, wantPos: 11, wantSymbol: "+"},
		{src: "-2147483648 * -1", wantKind: fhirpath.Arithmetic, wantPos: 12, wantSymbol: "*"},
		{src: "Patient.name[2]", wantKind: fhirpath.IndexOutOfRange, wantPos: 8, wantSymbol: "name"},
		{src: "Patient.name.given[2]", wantKind: fhirpath.IndexOutOfRange, wantPos: 13, wantSymbol: "given"},
		{src: "Patient.name.first()[1]", wantKind: fhirpath.IndexOutOfRange, wantPos: 13, wantSymbol: "first"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			err := evalError(t, ctx, patient, tt.src)
			assert.True(t, errors.Is(err, tt.wantKind), "expected %v, got %v", tt.wantKind, err)
			assert.Equal(t, tt.wantPos, err.Pos, "position of %v", err)
			assert.Equal(t, tt.wantSymbol, err.Symbol)
			if tt.wantTypeName != "" {
				assert.Equal(t, tt.wantTypeName, err.TypeName)
			}
		})
	}
}

func TestEvaluationIsDeterministic(t *testing.T) {
	patient := testPatient()
	srcs := []string{
		"Patient.name.given",
		"Patient.name.where(family = 'Windsor').given.first()",
		"Patient.telecom.select(use)",
		"10 / 3",
	}
	for _, src := range srcs {
		expr := fhirpath.MustParse(src)
		first, err := expr.Path(patient)
		require.NoError(t, err)
		second, err := expr.Path(patient)
		require.NoError(t, err)
		assertCollection(t, first, second)
	}
}

func TestConcurrentEvaluation(t *testing.T) {
	patient := testPatient()
	expr := fhirpath.MustParse("Patient.name.given.count() = 4 and Patient.telecom.rank = 1")

	var wg sync.WaitGroup
	results := make([]bool, 16)
	errs := make([]error, 16)
	for i := range results {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = expr.Assert(patient)
		}()
	}
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		assert.True(t, results[i])
	}
}

func TestPathFold(t *testing.T) {
	patient := testPatient()
	ctx := context.Background()

	tests := []struct {
		left  string
		right string
	}{
		{left: "Patient.name", right: "given"},
		{left: "Patient.name", right: "family"},
		{left: "Patient.name", right: "photo"},
		{left: "Patient.telecom", right: "rank"},
		{left: "Patient.name.given", right: "extension"},
	}

	for _, tt := range tests {
		t.Run(tt.left+"."+tt.right, func(t *testing.T) {
			joined, err := fhirpath.Evaluate(ctx, patient, fhirpath.MustParse(tt.left+"."+tt.right))

			folded := fhirpath.Collection{}
			var foldErr error
			for _, elem := range eval(t, ctx, patient, tt.left) {
				step, err := fhirpath.Evaluate(ctx, elem, fhirpath.MustParse(tt.right))
				if err != nil {
					foldErr = err
					break
				}
				folded = append(folded, step...)
			}

			if foldErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, fhirpath.PathUnknown))
				return
			}
			require.NoError(t, err)
			assertCollection(t, folded, joined)
		})
	}
}

func TestCountAgreement(t *testing.T) {
	patient := testPatient()
	ctx := context.Background()

	srcs := []string{
		"Patient",
		"Patient.name",
		"Patient.name.given",
		"Patient.name.given.where(startsWith('T'))",
		"Patient.photo",
		"Patient.deceased",
		"Patient.telecom.value",
		"1",
	}
	for _, src := range srcs {
		t.Run(src, func(t *testing.T) {
			result := eval(t, ctx, patient, src)
			count := eval(t, ctx, patient, src+".count()")
			assertCollection(t, fhirpath.Collection{fhirpath.Integer(len(result))}, count)
		})
	}
}

func TestEmptyNeutrality(t *testing.T) {
	patient := testPatient()
	ctx := context.Background()

	operators := []string{"=", "!=", "~", "!~", "<", "<=", ">", ">=", "+", "-", "*", "/"}
	operands := []string{"1", "1.5", "'a'", "@2020", "Patient.active"}

	for _, op := range operators {
		for _, other := range operands {
			for _, src := range []string{
				"Patient.birthDate " + op + " " + other,
				other + " " + op + " Patient.deceased",
			} {
				t.Run(src, func(t *testing.T) {
					assertCollection(t, fhirpath.Collection{}, eval(t, ctx, patient, src))
				})
			}
		}
	}

	for _, op := range []string{"=", "~", "!~"} {
		src := "Patient.deceased " + op + " Patient.photo"
		t.Run(src, func(t *testing.T) {
			assertCollection(t, fhirpath.Collection{}, eval(t, ctx, patient, src))
		})
	}
}

func TestAssert(t *testing.T) {
	patient := testPatient()
	ctx := context.Background()

	tests := []struct {
		src     string
		want    bool
		wantErr fhirpath.ErrorKind
	}{
		{src: "Patient.active", want: true},
		{src: "Patient.name.exists()", want: true},
		{src: "Patient.photo.exists()", want: false},
		{src: "Patient.photo", want: false},
		{src: "Patient.name.given.exists(length() > 3)", want: true},
		{src: "Patient.name.given.all(length() > 3)", want: false},
		{src: "Patient.name.select(given.exists())", want: true},
		{src: "Patient.deceased = true", want: false},
		{src: "Patient.name.use", wantErr: fhirpath.TypeMismatch},
		{src: "Patient.name", wantErr: fhirpath.TypeMismatch},
		{src: "Patient.name.select(iif(family = 'Windsor', false, 'x'))", wantErr: fhirpath.TypeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			expr := fhirpath.MustParse(tt.src)
			got, err := fhirpath.Assert(ctx, patient, expr)
			if tt.wantErr != 0 {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			result, err := fhirpath.Evaluate(ctx, patient, expr)
			require.NoError(t, err)
			allTrue, err := result.AllTrue()
			require.NoError(t, err)
			assert.Equal(t, !result.Empty() && allTrue, got)
		})
	}
}

func TestEvaluateWithoutExpression(t *testing.T) {
	_, err := fhirpath.Evaluate(context.Background(), testPatient(), fhirpath.Expression{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, fhirpath.Internal))
}

func TestPositiveIntBeyondIntegerRange(t *testing.T) {
	patient := testPatient()
	patient.Telecom[0].Rank = &r4.PositiveInt{Value: ptr.To[uint32](3000000000)}
	ctx := context.Background()

	assertCollection(t, fhirpath.Collection{fhirpath.Boolean(true)}, eval(t, ctx, patient, "Patient.telecom.rank > 0"))
	assertCollection(t, fhirpath.Collection{fhirpath.Boolean(true)}, eval(t, ctx, patient, "Patient.telecom.rank > 2147483647"))

	rank := eval(t, ctx, patient, "Patient.telecom.rank + 1")
	require.Len(t, rank, 1)
	assert.Equal(t, "3000000001", rank[0].String())
}

func TestEvaluateNilRoot(t *testing.T) {
	for _, src := range []string{"name", "Patient.name.given", "name.exists()"} {
		t.Run(src, func(t *testing.T) {
			result, err := fhirpath.MustParse(src).Path(nil)
			require.NoError(t, err)
			assert.Empty(t, result)
		})
	}

	assertCollection(t, fhirpath.Collection{fhirpath.Integer(3)}, eval(t, context.Background(), nil, "1 + 2"))
	assertCollection(t, fhirpath.Collection{fhirpath.Boolean(false)}, eval(t, context.Background(), nil, "name.exists()"))
}

func TestDecimalPrecision(t *testing.T) {
	patient := testPatient()

	ctx := fhirpath.WithAPDContext(context.Background(), apd.BaseContext.WithPrecision(5))
	result := eval(t, ctx, patient, "10 / 3")
	require.Len(t, result, 1)
	assert.Equal(t, "3.3333", result[0].String())

	result = eval(t, context.Background(), patient, "10.0 / 3")
	require.Len(t, result, 1)
	assert.Equal(t, "3."+strings.Repeat("3", 33), result[0].String())
}

func TestWithFunctions(t *testing.T) {
	patient := testPatient()

	double := func(
		ctx context.Context,
		root fhirpath.Element, target fhirpath.Collection,
		parameters []fhirpath.Expression,
		evaluate fhirpath.EvaluateFunc,
	) (fhirpath.Collection, error) {
		if len(parameters) != 0 {
			return nil, errors.New("double takes no parameters")
		}
		i, ok, err := fhirpath.Singleton[fhirpath.Integer](target)
		if err != nil || !ok {
			return fhirpath.Collection{}, err
		}
		return fhirpath.Collection{i * 2}, nil
	}
	ctx := fhirpath.WithFunctions(context.Background(), fhirpath.Functions{"double": double})

	assertCollection(t, fhirpath.Collection{fhirpath.Integer(8)}, eval(t, ctx, patient, "Patient.name.given.count().double()"))
	assertCollection(t, fhirpath.Collection{fhirpath.Integer(2)}, eval(t, ctx, patient, "Patient.name.count()"))

	// not installed in the background context
	err := evalError(t, context.Background(), patient, "Patient.name.count().double()")
	assert.True(t, errors.Is(err, fhirpath.FunctionUnknown))
}
