package generate

import (
	"fmt"
	"strings"

	. "github.com/dave/jennifer/jen"
	"github.com/yeyanbo/fhirpath-go/internal/generate/ir"
)

type ModelPkgDocGenerator struct {
	NoOpGenerator
}

func (g ModelPkgDocGenerator) GenerateAdditional(f func(fileName string, pkgName string) *File, release string, rt []ir.ResourceOrType) {
	file := f("doc", strings.ToLower(release))
	file.PackageComment(fmt.Sprintf(
		"Package %s provides generated models for the subset of FHIR release %s the definitions name.\n\n"+
			"All types implement fhirpath.Element, primitives also fhirpath.Primitive.",
		strings.ToLower(release), release,
	))
}
