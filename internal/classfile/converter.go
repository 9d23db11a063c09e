package classfile

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/mabhi256/jlint/internal/model"
)

const javaLangObject = "java/lang/Object"

// Converter turns raw class bytes into class models
type Converter struct {
	logger           hclog.Logger
	includeSynthetic bool
}

type ConverterOption func(*Converter)

// WithSynthetic keeps compiler-generated members such as bridge methods and lambda bodies
func WithSynthetic(include bool) ConverterOption {
	return func(c *Converter) { c.includeSynthetic = include }
}

func NewConverter(logger hclog.Logger, opts ...ConverterOption) *Converter {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	c := &Converter{logger: logger}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ConvertClass parses class bytes into a ClassModel
func (c *Converter) ConvertClass(data []byte) (*model.ClassModel, error) {
	cf, err := ParseClassFile(data)
	if err != nil {
		return nil, err
	}
	return c.Convert(cf)
}

// Convert maps a parsed class file onto the analysis model
func (c *Converter) Convert(cf *ClassFile) (*model.ClassModel, error) {
	if strings.HasSuffix(cf.ThisClass, "package-info") || strings.HasSuffix(cf.ThisClass, "module-info") {
		return nil, ErrNotAClass
	}

	cls := &model.ClassModel{
		Name:        SimpleName(cf.ThisClass),
		Package:     PackageName(cf.ThisClass),
		IsPublic:    cf.AccessFlags.Has(ACC_PUBLIC),
		IsAbstract:  cf.AccessFlags.Has(ACC_ABSTRACT),
		IsInterface: cf.AccessFlags.Has(ACC_INTERFACE),
	}

	switch cf.SuperClass {
	case "":
	case javaLangObject:
		cls.SuperType = model.RootObject
	default:
		cls.SuperType = SimpleName(cf.SuperClass)
	}

	for _, iface := range cf.Interfaces {
		cls.Interfaces = append(cls.Interfaces, SimpleName(iface))
	}

	for _, f := range cf.Fields {
		if f.AccessFlags.Has(ACC_SYNTHETIC) && !c.includeSynthetic {
			continue
		}
		typeName, err := ParseFieldDescriptor(f.Descriptor)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		cls.Fields = append(cls.Fields, &model.FieldModel{
			Name:      f.Name,
			OwnerName: cls.Name,
			Type:      typeName,
			IsPublic:  f.AccessFlags.Has(ACC_PUBLIC),
			IsFinal:   f.AccessFlags.Has(ACC_FINAL),
			IsStatic:  f.AccessFlags.Has(ACC_STATIC),
		})
	}

	for _, m := range cf.Methods {
		if m.AccessFlags.Has(ACC_SYNTHETIC) && !c.includeSynthetic {
			continue
		}
		method, err := c.convertMethod(m, cls.Name)
		if err != nil {
			return nil, fmt.Errorf("method %s: %w", m.Name, err)
		}
		cls.Methods = append(cls.Methods, method)
	}

	c.logger.Trace("converted class", "name", cls.QualifiedName(),
		"fields", len(cls.Fields), "methods", len(cls.Methods))

	return cls, nil
}

func (c *Converter) convertMethod(m MemberInfo, owner string) (*model.MethodModel, error) {
	params, ret, err := ParseMethodDescriptor(m.Descriptor)
	if err != nil {
		return nil, err
	}

	method := &model.MethodModel{
		Name:           m.Name,
		OwnerName:      owner,
		ReturnType:     ret,
		ParameterTypes: params,
		IsPublic:       m.AccessFlags.Has(ACC_PUBLIC),
		IsStatic:       m.AccessFlags.Has(ACC_STATIC),
		IsAbstract:     m.AccessFlags.Has(ACC_ABSTRACT),
	}

	for _, local := range m.LocalVariables {
		if local.Name == model.ReceiverName {
			continue
		}
		typeName, err := ParseFieldDescriptor(local.Descriptor)
		if err != nil {
			return nil, fmt.Errorf("local variable %s: %w", local.Name, err)
		}
		method.Variables = append(method.Variables, &model.VariableModel{Name: local.Name, Type: typeName})
	}

	return method, nil
}
