package gen

import (
	"strings"

	"github.com/dave/jennifer/jen"
)

// generatedHeader marks every rendered Go file as generated.
const generatedHeader = "Code generated by mapgen, DO NOT EDIT."

// File renders the interface, its holder types included, as a Go file.
func (i *Interface) File(c *Config) *jen.File {
	f := newFile(c)
	for _, r := range i.Records {
		renderRecord(f, r)
	}
	var items []jen.Code
	if i.Embeds != "" {
		items = append(items, TypeCode(i.Embeds))
	}
	for _, m := range i.Methods {
		if m.Doc != "" {
			items = append(items, jen.Comment(m.Doc))
		}
		for _, d := range m.Directives {
			items = append(items, jen.Comment("//"+d))
		}
		items = append(items, jen.Id(m.Name).Params(params(m)...).Params(results(m)...))
	}
	f.Commentf("%s is the data-access client of its table.", i.Name)
	f.Type().Id(i.Name).Interface(items...)
	return f
}

// File renders the provider as a Go file.
func (p *Provider) File(c *Config) *jen.File {
	f := newFile(c)
	f.Commentf("%s builds the SQL text of the dynamic statements.", p.Name)
	f.Type().Id(p.Name).Struct()
	for _, m := range p.Methods {
		f.Line()
		if m.Doc != "" {
			f.Comment(m.Doc)
		}
		f.Func().Params(jen.Id("p").Op("*").Id(p.Name)).
			Id(m.Name).Params(params(m)...).Params(results(m)...).
			Block(m.Body...)
	}
	return f
}

func newFile(c *Config) *jen.File {
	var f *jen.File
	if c.Package != "" {
		f = jen.NewFilePathName(c.Package, c.PackageName())
	} else {
		f = jen.NewFile(c.PackageName())
	}
	if c.Header != "" {
		f.HeaderComment(c.Header)
	}
	f.HeaderComment(generatedHeader)
	return f
}

func renderRecord(f *jen.File, r *Record) {
	fields := make([]jen.Code, 0, len(r.Embeds)+len(r.Fields))
	for _, e := range r.Embeds {
		fields = append(fields, TypeCode(e))
	}
	for _, fd := range r.Fields {
		fields = append(fields, jen.Id(fd.Name).Add(TypeCode(fd.Type)).Tag(map[string]string{"db": fd.Column}))
	}
	if r.Doc != "" {
		f.Comment(r.Doc)
	}
	f.Type().Id(r.Name).Struct(fields...)
	f.Line()
}

func params(m *Method) []jen.Code {
	ps := make([]jen.Code, len(m.Params))
	for i, p := range m.Params {
		ps[i] = jen.Id(p.Name).Add(TypeCode(p.Type))
	}
	return ps
}

func results(m *Method) []jen.Code {
	rs := make([]jen.Code, len(m.Results))
	for i, r := range m.Results {
		rs[i] = TypeCode(r)
	}
	return rs
}

// TypeCode returns the jennifer code of a Go type spelling. Qualified names
// such as "context.Context" or "example.com/pkg.Type" are imported.
func TypeCode(s string) *jen.Statement {
	switch {
	case strings.HasPrefix(s, "*"):
		return jen.Op("*").Add(TypeCode(s[1:]))
	case strings.HasPrefix(s, "[]"):
		return jen.Index().Add(TypeCode(s[2:]))
	}
	slash := strings.LastIndexByte(s, '/')
	if dot := strings.LastIndexByte(s, '.'); dot > slash && dot > 0 {
		return jen.Qual(s[:dot], s[dot+1:])
	}
	return jen.Id(s)
}
