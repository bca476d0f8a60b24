package generate

import (
	. "github.com/dave/jennifer/jen"
	"github.com/yeyanbo/fhirpath-go/internal/generate/ir"
)

type StringerGenerator struct {
	NoOpGenerator
}

func (g StringerGenerator) GenerateType(f *File, rt ir.ResourceOrType) bool {
	for _, s := range rt.Structs {
		if s.IsPrimitive {
			implementPrimitiveStringer(f, s)
			implementPrimitiveMarshalJSON(f, s)
			continue
		}

		f.Func().Params(Id("r").Id(s.Name)).Id("String").Params().String().Block(
			List(Id("buf"), Id("err")).Op(":=").Qual("encoding/json", "MarshalIndent").Params(Id("r"), Lit(""), Lit("  ")),
			If(Id("err").Op("!=").Nil()).Block(
				Return(Lit("null")),
			),
			Return(Id("string").Params(Id("buf"))),
		)
	}

	return true
}

// implementPrimitiveStringer renders the plain value, as primitives print
// like their system counterpart in results and traces.
func implementPrimitiveStringer(f *File, s ir.Struct) {
	f.Func().Params(Id("r").Id(s.Name)).Id("String").Params().String().BlockFunc(func(g *Group) {
		g.If(Id("r").Dot("Value").Op("==").Nil()).Block(
			Return(Lit("null")),
		)
		switch s.ValueKind {
		case ir.ValueBoolean:
			g.Return(Qual("strconv", "FormatBool").Call(Op("*").Id("r").Dot("Value")))
		case ir.ValueInteger:
			g.Return(Qual("strconv", "FormatInt").Call(Int64().Call(Op("*").Id("r").Dot("Value")), Lit(10)))
		case ir.ValueUnsigned:
			g.Return(Qual("strconv", "FormatUint").Call(Uint64().Call(Op("*").Id("r").Dot("Value")), Lit(10)))
		case ir.ValueDecimal:
			g.Return(Id("r").Dot("Value").Dot("Text").Call(LitRune('f')))
		default:
			g.Return(Op("*").Id("r").Dot("Value"))
		}
	})
}

func implementPrimitiveMarshalJSON(f *File, s ir.Struct) {
	f.Func().Params(Id("r").Id(s.Name)).Id("MarshalJSON").Params().Params(Index().Byte(), Error()).BlockFunc(func(g *Group) {
		if s.ValueKind == ir.ValueDecimal {
			g.If(Id("r").Dot("Value").Op("==").Nil()).Block(
				Return(Index().Byte().Call(Lit("null")), Nil()),
			)
			g.Return(Index().Byte().Call(Id("r").Dot("Value").Dot("Text").Call(LitRune('f'))), Nil())
			return
		}
		g.Return(Qual("encoding/json", "Marshal").Call(Id("r").Dot("Value")))
	})
}
