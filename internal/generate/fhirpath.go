package generate

import (
	. "github.com/dave/jennifer/jen"
	"github.com/yeyanbo/fhirpath-go/internal/generate/ir"
)

const fhirpathModuleName = moduleName + "/fhirpath"

// FHIRPathGenerator implements fhirpath.Element, and fhirpath.Primitive for primitives.
type FHIRPathGenerator struct {
	NoOpGenerator
}

func (g FHIRPathGenerator) GenerateType(f *File, rt ir.ResourceOrType) bool {
	for _, s := range rt.Structs {
		generateTypeNameFunc(f, s)
		if s.BaseType != "" {
			generateBaseTypeNameFunc(f, s)
		}
		generateChildrenFunc(f, s)
		generateToCollectionFunc(f, s)
		if s.IsPrimitive {
			generatePrimitiveValueFunc(f, s)
		}
	}

	return true
}

func generateTypeNameFunc(f *File, s ir.Struct) {
	f.Func().Params(Id("r").Id(s.Name)).Id("TypeName").Params().String().Block(
		Return(Lit(s.MarshalName)),
	)
}

func generateBaseTypeNameFunc(f *File, s ir.Struct) {
	f.Func().Params(Id("r").Id(s.Name)).Id("BaseTypeName").Params().String().Block(
		Return(Lit(s.BaseType)),
	)
}

func generateChildrenFunc(f *File, s ir.Struct) {
	f.Func().Params(Id("r").Id(s.Name)).Id("Children").Params(
		Id("symbol").String(),
		Id("index").Int(),
	).Params(
		Qual(fhirpathModuleName, "Collection"),
		Error(),
	).BlockFunc(func(g *Group) {
		g.Var().Id("children").Qual(fhirpathModuleName, "Collection")
		g.Switch(Id("symbol")).BlockFunc(func(g *Group) {
			for _, f := range s.Fields {
				g.Case(Lit(f.MarshalName)).BlockFunc(func(g *Group) {
					appendChild(g, f)
				})
			}
			g.Default().Block(
				Return(Nil(), Qual(fhirpathModuleName, "NoSuchPath").Call(Lit(s.MarshalName), Id("symbol"))),
			)
		})
		g.Return(Qual(fhirpathModuleName, "Select").Call(Id("children"), Id("index")), Nil())
	})
}

func appendChild(g *Group, f ir.StructField) {
	t := f.PossibleTypes[0]
	field := Id("r").Dot(f.Name)
	add := func(v *Statement) *Statement {
		return Id("children").Op("=").Append(Id("children"), v)
	}

	switch {
	case f.Multiple:
		g.For(List(Id("_"), Id("v")).Op(":=").Range().Add(field)).Block(
			add(Id("v")),
		)
	case f.Polymorph:
		g.If(field.Clone().Op("!=").Nil()).Block(
			add(field.Clone()),
		)
	case f.Optional && t.IsSystem:
		g.If(field.Clone().Op("!=").Nil()).Block(
			add(Qual(fhirpathModuleName, "String").Call(Op("*").Add(field.Clone()))),
		)
	case f.Optional:
		g.If(field.Clone().Op("!=").Nil()).Block(
			add(Op("*").Add(field.Clone())),
		)
	case t.IsSystem:
		g.Add(add(Qual(fhirpathModuleName, "String").Call(field)))
	default:
		g.Add(add(field))
	}
}

func generateToCollectionFunc(f *File, s ir.Struct) {
	f.Func().Params(Id("r").Id(s.Name)).Id("ToCollection").Params(Id("index").Int()).
		Qual(fhirpathModuleName, "Collection").Block(
		Return(Qual(fhirpathModuleName, "Select").Call(
			Qual(fhirpathModuleName, "Collection").Values(Id("r")),
			Id("index"),
		)),
	)
}

func generatePrimitiveValueFunc(f *File, s ir.Struct) {
	if s.ValueKind == ir.ValueUnsigned {
		f.ImportName(apdModuleName, "apd")
	}
	f.Func().Params(Id("r").Id(s.Name)).Id("PrimitiveValue").Params().Params(
		Qual(fhirpathModuleName, "Element"),
		Bool(),
	).BlockFunc(func(g *Group) {
		g.If(Id("r").Dot("Value").Op("==").Nil()).Block(
			Return(Nil(), False()),
		)

		value := Op("*").Id("r").Dot("Value")
		switch s.ValueKind {
		case ir.ValueBoolean:
			g.Return(Qual(fhirpathModuleName, "Boolean").Call(value), True())
		case ir.ValueString:
			g.Return(Qual(fhirpathModuleName, "String").Call(value), True())
		case ir.ValueInteger:
			g.Return(Qual(fhirpathModuleName, "Integer").Call(value), True())
		case ir.ValueUnsigned:
			g.Comment("values beyond the Integer range become a Decimal")
			g.If(Op("*").Id("r").Dot("Value").Op(">").Qual("math", "MaxInt32")).Block(
				Return(Qual(fhirpathModuleName, "Decimal").Values(Dict{
					Id("Value"): Qual(apdModuleName, "New").Call(Int64().Call(Op("*").Id("r").Dot("Value")), Lit(0)),
				}), True()),
			)
			g.Return(Qual(fhirpathModuleName, "Integer").Call(Int32().Call(value)), True())
		case ir.ValueDecimal:
			g.Return(Qual(fhirpathModuleName, "Decimal").Values(Dict{
				Id("Value"): Id("r").Dot("Value"),
			}), True())
		case ir.ValueDateTime:
			g.List(Id("v"), Id("err")).Op(":=").Qual(fhirpathModuleName, "ParseDateTime").Call(value)
			g.If(Id("err").Op("!=").Nil()).Block(
				Return(Nil(), False()),
			)
			g.Return(Id("v"), True())
		}
	})
}
