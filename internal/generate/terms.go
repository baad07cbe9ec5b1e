package generate

import (
	"unicode"
	"unicode/utf8"

	. "github.com/dave/jennifer/jen"

	"github.com/damedic/odata-toolbox-go/internal/generate/ir"
)

type NamespaceGenerator struct{}

func (g NamespaceGenerator) Generate(f *File, v ir.Vocabulary) {
	f.Comment("Namespace of the vocabulary.")
	f.Const().Id("Namespace").Op("=").Lit(v.Namespace)
	if v.Alias != "" {
		f.Comment("Alias is the conventional alias of the vocabulary.")
		f.Const().Id("Alias").Op("=").Lit(v.Alias)
	}
}

// TermsGenerator declares a string constant with the qualified name of every term.
type TermsGenerator struct{}

func (g TermsGenerator) Generate(f *File, v ir.Vocabulary) {
	if len(v.Terms) == 0 {
		return
	}
	f.Comment("Terms of the " + v.Namespace + " vocabulary.")
	f.Const().DefsFunc(func(defs *Group) {
		for _, t := range v.Terms {
			name := "Term" + t.Name
			if t.Description != "" {
				defs.Comment(name + " " + lowerFirst(t.Description))
			}
			defs.Id(name).Op("=").Lit(v.QualifiedName(t.Name))
		}
	})
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
