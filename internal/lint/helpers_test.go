package lint

import (
	"github.com/mabhi256/jlint/internal/model"
)

type classOpt func(*model.ClassModel)

func newClass(name string, opts ...classOpt) *model.ClassModel {
	c := &model.ClassModel{Name: name, SuperType: model.RootObject, IsPublic: true}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func withSuper(name string) classOpt {
	return func(c *model.ClassModel) { c.SuperType = name }
}

func withInterfaces(names ...string) classOpt {
	return func(c *model.ClassModel) { c.Interfaces = append(c.Interfaces, names...) }
}

func withField(name, typ string, public, final bool) classOpt {
	return func(c *model.ClassModel) {
		c.Fields = append(c.Fields, &model.FieldModel{
			Name: name, OwnerName: c.Name, Type: typ, IsPublic: public, IsFinal: final,
		})
	}
}

func withMethod(name string, public bool, vars ...string) classOpt {
	return func(c *model.ClassModel) {
		m := &model.MethodModel{Name: name, OwnerName: c.Name, ReturnType: model.VoidType, IsPublic: public}
		for _, v := range vars {
			m.Variables = append(m.Variables, &model.VariableModel{Name: v, Type: "int"})
		}
		c.Methods = append(c.Methods, m)
	}
}

func private() classOpt {
	return func(c *model.ClassModel) { c.IsPublic = false }
}

func abstract() classOpt {
	return func(c *model.ClassModel) { c.IsAbstract = true }
}

func iface() classOpt {
	return func(c *model.ClassModel) { c.IsInterface = true; c.IsAbstract = true }
}

func messages(violations []Violation) []string {
	out := make([]string, len(violations))
	for i, v := range violations {
		out[i] = v.Message
	}
	return out
}
