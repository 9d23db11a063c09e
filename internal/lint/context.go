package lint

import (
	"github.com/mabhi256/jlint/internal/graph"
	"github.com/mabhi256/jlint/internal/model"
)

// Context is everything a check may read during one analysis run.
// Nothing in it is mutated once built.
type Context struct {
	Classes  []*model.ClassModel
	Matrix   *graph.Matrix
	Path     string            // label of the analysed input, carried for checks that write files
	Bytecode map[string][]byte // raw class bytes keyed by class name
	Sources  map[string]string // class file path keyed by class name
}

// NewContext classifies the classes and wraps them into a Context
func NewContext(classes []*model.ClassModel, path string) *Context {
	return &Context{
		Classes:  classes,
		Matrix:   graph.Classify(classes),
		Path:     path,
		Bytecode: make(map[string][]byte),
		Sources:  make(map[string]string),
	}
}

func (c *Context) ClassCount() int {
	return len(c.Classes)
}

// Class looks up an analysed class by name
func (c *Context) Class(name string) (*model.ClassModel, bool) {
	for _, cls := range c.Classes {
		if cls.Name == name {
			return cls, true
		}
	}
	return nil, false
}
