package generate

import (
	. "github.com/dave/jennifer/jen"
	"github.com/iancoleman/strcase"

	"github.com/damedic/odata-toolbox-go/internal/generate/ir"
)

// EnumsGenerator declares an annotation.EnumType variable per enum type and a string
// constant per member, e.g. HTTPMethodGet.
type EnumsGenerator struct{}

func (g EnumsGenerator) Generate(f *File, v ir.Vocabulary) {
	for _, e := range v.EnumTypes {
		qualified := v.QualifiedName(e.Name)

		members := make([]Code, 0, len(e.Members))
		for _, m := range e.Members {
			members = append(members, Lit(m.Name))
		}
		f.Comment(goName(e.Name) + " lists the members of " + qualified + ".")
		f.Var().Id(goName(e.Name)).Op("=").Qual(annotationPkg, "EnumType").Values(Dict{
			Id("Name"):    Lit(qualified),
			Id("Members"): Index().String().Values(members...),
			Id("Flags"):   Lit(e.Flags),
		})

		f.Comment("Members of " + qualified + ".")
		f.Const().DefsFunc(func(defs *Group) {
			for _, m := range e.Members {
				defs.Id(memberName(e, m)).Op("=").Lit(m.Name)
			}
		})
	}
}

func memberName(e ir.EnumType, m ir.Member) string {
	return goName(e.Name) + goName(strcase.ToCamel(m.Name))
}
