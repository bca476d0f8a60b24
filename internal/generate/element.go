package generate

import (
	. "github.com/dave/jennifer/jen"
	"github.com/yeyanbo/fhirpath-go/internal/generate/ir"
)

type ImplElementGenerator struct {
	NoOpGenerator
}

func (g ImplElementGenerator) GenerateType(f *File, rt ir.ResourceOrType) bool {
	for _, t := range rt.Structs {
		implementMemSize(f, t)
	}

	return true
}

func implementMemSize(f *File, s ir.Struct) {
	f.Func().Params(Id("r").Id(s.Name)).Id("MemSize").Params().Params(Int()).BlockFunc(func(g *Group) {
		g.Id("s").Op(":=").Add(size(Id("r")))

		for _, f := range s.Fields {
			t := f.PossibleTypes[0]
			field := Id("r").Dot(f.Name)

			if f.Multiple {
				g.For(List(Id("_"), Id("i")).Op(":=").Range().Add(field.Clone())).Block(
					Id("s").Op("+=").Id("i").Dot("MemSize").Call(),
				)
				g.Id("s").Op("+=").Parens(
					Cap(field.Clone()).Op("-").Len(field.Clone()),
				).Op("*").Add(size(Id(t.Name).Values()))
			} else if f.Optional || f.Polymorph {
				if t.IsSystem && !f.Polymorph {
					g.If(field.Clone().Op("!=").Nil()).Block(
						Id("s").Op("+=").Len(Op("*").Add(field.Clone())).Op("+").Add(size(Op("*").Add(field.Clone()))),
					)
				} else {
					g.If(field.Clone().Op("!=").Nil()).Block(
						Id("s").Op("+=").Add(field.Clone()).Dot("MemSize").Call(),
					)
				}
			} else if t.IsSystem {
				// the string header is part of the struct already
				g.Id("s").Op("+=").Len(field.Clone())
			} else {
				g.Id("s").Op("+=").Add(field.Clone()).Dot("MemSize").Call().Op("-").Add(size(field.Clone()))
			}
		}

		if s.IsPrimitive {
			value := Id("r").Dot("Value")
			switch s.ValueKind {
			case ir.ValueDecimal:
				g.If(value.Clone().Op("!=").Nil()).Block(
					Id("s").Op("+=").Int().Call(value.Clone().Dot("Size").Call()),
				)
			case ir.ValueString, ir.ValueDateTime:
				g.If(value.Clone().Op("!=").Nil()).Block(
					Id("s").Op("+=").Len(Op("*").Add(value.Clone())).Op("+").Add(size(Op("*").Add(value.Clone()))),
				)
			default:
				g.If(value.Clone().Op("!=").Nil()).Block(
					Id("s").Op("+=").Add(size(Op("*").Add(value.Clone()))),
				)
			}
		}

		g.Return(Id("s"))
	})
}

func size(s *Statement) *Statement {
	return Int().Call(Qual("reflect", "TypeOf").Call(s).Dot("Size").Call())
}
