// Package generate renders Go source for OData vocabularies.
package generate

import (
	"io"

	. "github.com/dave/jennifer/jen"

	"github.com/damedic/odata-toolbox-go/internal/generate/ir"
)

const annotationPkg = "github.com/damedic/odata-toolbox-go/annotation"

// Generator adds declarations for a vocabulary to a file.
type Generator interface {
	Generate(f *File, v ir.Vocabulary)
}

// DefaultGenerators are the generators run by VocabularyFile when none are given.
var DefaultGenerators = []Generator{
	NamespaceGenerator{},
	TermsGenerator{},
	EnumsGenerator{},
}

// VocabularyFile returns the file of package pkgName holding the declarations of v.
func VocabularyFile(pkgName string, v ir.Vocabulary, generators ...Generator) *File {
	if len(generators) == 0 {
		generators = DefaultGenerators
	}
	f := NewFile(pkgName)
	f.HeaderComment("Code generated by internal/cmd/generate; DO NOT EDIT.")
	f.ImportName(annotationPkg, "annotation")
	for _, g := range generators {
		g.Generate(f, v)
	}
	return f
}

// Write renders the Go source of v to w.
func Write(w io.Writer, pkgName string, v ir.Vocabulary) error {
	return VocabularyFile(pkgName, v).Render(w)
}
