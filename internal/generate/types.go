package generate

import (
	"strings"

	. "github.com/dave/jennifer/jen"
	"github.com/yeyanbo/fhirpath-go/internal/generate/ir"
)

const apdModuleName = "github.com/cockroachdb/apd/v3"

type TypesGenerator struct {
	NoOpGenerator
}

func (g TypesGenerator) GenerateType(f *File, rt ir.ResourceOrType) bool {
	for _, t := range rt.Structs {
		generateStruct(f, t)
		generateChoiceInterfaces(f, t)
	}
	return true
}

func generateStruct(f *File, s ir.Struct) {
	if s.ValueKind == ir.ValueDecimal {
		f.ImportName(apdModuleName, "apd")
	}

	if s.DocComment != "" {
		for _, line := range strings.Split(s.DocComment, "\n") {
			f.Comment(line)
		}
	}

	f.Type().Id(s.Name).StructFunc(func(g *Group) {
		for _, f := range s.Fields {
			if f.DocComment != "" {
				for _, line := range strings.Split(f.DocComment, "\n") {
					g.Comment(line)
				}
			}

			stmt := g.Id(f.Name)

			if f.Polymorph {
				stmt.Id(s.Name + f.Name)
			} else {
				t := f.PossibleTypes[0]

				if f.Multiple {
					stmt.Index()
				} else if f.Optional {
					stmt.Op("*")
				}

				stmt.Id(t.Name)
			}

			stmt.Tag(map[string]string{"json": f.MarshalName + ",omitempty"})
		}

		if s.IsPrimitive {
			g.Comment("Value is the primitive value, nil if the element only carries extensions.")
			if s.ValueKind == ir.ValueDecimal {
				g.Id("Value").Op("*").Qual(apdModuleName, "Decimal").Tag(map[string]string{"json": "value,omitempty"})
			} else {
				g.Id("Value").Op("*").Id(s.ValueKind.GoType()).Tag(map[string]string{"json": "value,omitempty"})
			}
		}
	})
}

// generateChoiceInterfaces declares one interface per choice element,
// implemented by each of its possible types.
func generateChoiceInterfaces(f *File, s ir.Struct) {
	for _, sf := range s.Fields {
		if !sf.Polymorph {
			continue
		}

		f.Type().Id(s.Name+sf.Name).Interface(
			Qual(moduleName+"/model", "Element"),
			Id("is"+s.Name+sf.Name).Params(),
		)

		for _, t := range sf.PossibleTypes {
			f.Func().Params(Id("r").Id(t.Name)).Id("is" + s.Name + sf.Name).Params().Block()
		}
	}
}
