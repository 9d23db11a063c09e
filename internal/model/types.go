package model

import "strings"

// Sentinel names produced by the class-file converter
const (
	ConstructorName = "<init>"
	StaticInitName  = "<clinit>"
	ReceiverName    = "this"
	VoidType        = "void"
	RootObject      = "Object"
)

// ClassModel holds the structural facts of one analysed class.
// It is built once by the converter and never mutated afterwards.
type ClassModel struct {
	Name        string   // simple, unqualified name
	Package     string   // dotted package, empty for the default package
	SuperType   string   // empty when the class has no super type
	Interfaces  []string // declaration order
	IsPublic    bool
	IsAbstract  bool
	IsInterface bool
	Fields      []*FieldModel
	Methods     []*MethodModel
}

// IsConcrete reports whether the class can be instantiated directly
func (c *ClassModel) IsConcrete() bool {
	return !c.IsAbstract && !c.IsInterface
}

// QualifiedName returns the dotted name including the package
func (c *ClassModel) QualifiedName() string {
	if c.Package == "" {
		return c.Name
	}
	return c.Package + "." + c.Name
}

func (c *ClassModel) HasMethod(name string) bool {
	for _, m := range c.Methods {
		if m.Name == name {
			return true
		}
	}
	return false
}

// Constructors returns the explicitly declared constructors
func (c *ClassModel) Constructors() []*MethodModel {
	var ctors []*MethodModel
	for _, m := range c.Methods {
		if m.IsConstructor() {
			ctors = append(ctors, m)
		}
	}
	return ctors
}

func (c *ClassModel) String() string {
	return c.QualifiedName()
}

type FieldModel struct {
	Name      string
	OwnerName string
	Type      string // may carry one "[]" per array dimension
	IsPublic  bool
	IsFinal   bool
	IsStatic  bool
}

type MethodModel struct {
	Name           string
	OwnerName      string
	ReturnType     string
	ParameterTypes []string
	IsPublic       bool
	IsStatic       bool
	IsAbstract     bool
	Variables      []*VariableModel // parameters and locals, receiver excluded
}

func (m *MethodModel) IsConstructor() bool {
	return m.Name == ConstructorName
}

func (m *MethodModel) IsStaticInitializer() bool {
	return m.Name == StaticInitName
}

// ReferencedTypes lists every type the method signature or body variables mention.
// The void return type is not a reference.
func (m *MethodModel) ReferencedTypes() []string {
	types := make([]string, 0, 1+len(m.ParameterTypes)+len(m.Variables))
	if m.ReturnType != "" && m.ReturnType != VoidType {
		types = append(types, m.ReturnType)
	}
	types = append(types, m.ParameterTypes...)
	for _, v := range m.Variables {
		types = append(types, v.Type)
	}
	return types
}

type VariableModel struct {
	Name string
	Type string
}

// ElementType strips every trailing "[]" and reports whether any were present
func ElementType(typeName string) (string, bool) {
	isArray := false
	for strings.HasSuffix(typeName, "[]") {
		typeName = strings.TrimSuffix(typeName, "[]")
		isArray = true
	}
	return typeName, isArray
}
