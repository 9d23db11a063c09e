package graph

import (
	"github.com/mabhi256/jlint/internal/model"
)

// Classify builds the relationship matrix for exactly the given classes.
//
// Rules run per class in increasing strength so that later rules win:
//
//	GENERAL     method return, parameter and variable types (fills NONE only)
//	HAS_A       scalar field types
//	HAS_MANY    array field types
//	IMPLEMENTS  declared interfaces
//	IS_A        super type
func Classify(classes []*model.ClassModel) *Matrix {
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = c.Name
	}

	matrix := NewMatrix(names)
	for _, c := range classes {
		classifyGeneral(matrix, c)
		classifyFields(matrix, c)
		classifyInterfaces(matrix, c)
		classifySuperType(matrix, c)
	}

	return matrix
}

func classifyGeneral(matrix *Matrix, c *model.ClassModel) {
	for _, method := range c.Methods {
		for _, ref := range method.ReferencedTypes() {
			target, _ := model.ElementType(ref)
			if matrix.Get(c.Name, target) == NONE {
				matrix.set(c.Name, target, GENERAL)
			}
		}
	}
}

func classifyFields(matrix *Matrix, c *model.ClassModel) {
	for _, field := range c.Fields {
		target, isArray := model.ElementType(field.Type)
		kind := HAS_A
		if isArray {
			kind = HAS_MANY
		}
		matrix.set(c.Name, target, kind)
	}
}

func classifyInterfaces(matrix *Matrix, c *model.ClassModel) {
	for _, iface := range c.Interfaces {
		matrix.set(c.Name, iface, IMPLEMENTS)
	}
}

func classifySuperType(matrix *Matrix, c *model.ClassModel) {
	if c.SuperType != "" {
		matrix.set(c.Name, c.SuperType, IS_A)
	}
}
