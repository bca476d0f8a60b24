// Package generate emits the model packages from the intermediate representation.
package generate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	. "github.com/dave/jennifer/jen"
	"github.com/yeyanbo/fhirpath-go/internal/generate/ir"
)

const moduleName = "github.com/yeyanbo/fhirpath-go"

// Generator contributes code for each type and, once per release, additional files.
type Generator interface {
	// GenerateType adds code for rt to f. It returns false if nothing was added.
	GenerateType(f *File, rt ir.ResourceOrType) bool
	GenerateAdditional(f func(fileName string, pkgName string) *File, release string, rt []ir.ResourceOrType)
}

type NoOpGenerator struct{}

func (g NoOpGenerator) GenerateType(f *File, rt ir.ResourceOrType) bool {
	return false
}

func (g NoOpGenerator) GenerateAdditional(f func(fileName string, pkgName string) *File, release string, rt []ir.ResourceOrType) {
}

// DefaultGenerators are the generators producing a model package.
func DefaultGenerators() []Generator {
	return []Generator{
		ModelPkgDocGenerator{},
		TypesGenerator{},
		ImplElementGenerator{},
		ImplResourceGenerator{},
		FHIRPathGenerator{},
		StringerGenerator{},
	}
}

// Files renders the package for release into file names and jennifer files.
func Files(release string, rts []ir.ResourceOrType, generators []Generator) map[string]*File {
	pkgName := strings.ToLower(release)
	files := map[string]*File{}

	newFile := func(fileName string, pkg string) *File {
		if f, ok := files[fileName]; ok {
			return f
		}
		f := NewFile(pkg)
		f.HeaderComment("Code generated by internal/cmd/generate. DO NOT EDIT.")
		files[fileName] = f
		return f
	}

	for _, rt := range rts {
		f := NewFile(pkgName)
		f.HeaderComment("Code generated by internal/cmd/generate. DO NOT EDIT.")

		generated := false
		for _, g := range generators {
			if g.GenerateType(f, rt) {
				generated = true
			}
		}
		if generated {
			files[rt.FileName] = f
		}
	}

	for _, g := range generators {
		g.GenerateAdditional(newFile, release, rts)
	}

	return files
}

// Write renders files into dir, one .go file each.
func Write(dir string, files map[string]*File) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	for name, f := range files {
		path := filepath.Join(dir, name+".go")
		if err := f.Save(path); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}
