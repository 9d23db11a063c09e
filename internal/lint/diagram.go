package lint

import (
	"context"

	"github.com/mabhi256/jlint/internal/uml"
)

const DiagramCheckName = "Generate PlantUML Diagram"

// DiagramOptions selects where and how the diagram is written
type DiagramOptions struct {
	Renderer string // native or genuml
	Output   string // file name, relative to the analysed directory unless absolute
}

// DiagramCheck writes a PlantUML diagram of the analysed classes. It only reports a
// violation when the diagram could not be produced.
type DiagramCheck struct {
	opts DiagramOptions
	// Written holds the path of the last diagram written
	Written string
}

func NewDiagramCheck(opts DiagramOptions) Check {
	return &DiagramCheck{opts: opts}
}

func (c *DiagramCheck) Name() string { return DiagramCheckName }

func (c *DiagramCheck) Description() string {
	return "Generates a PlantUML class diagram for the entire package including all dependencies."
}

func (c *DiagramCheck) Analyze(ctx *Context) []Violation {
	renderer, err := uml.NewRenderer(c.opts.Renderer)
	if err != nil {
		return []Violation{c.failure(err)}
	}

	content, err := uml.Generate(context.Background(), ctx.Classes, ctx.Matrix, ctx.Bytecode, renderer)
	if err != nil {
		return []Violation{c.failure(err)}
	}

	written, err := uml.WriteFile(ctx.Path, c.opts.Output, content)
	if err != nil {
		return []Violation{c.failure(err)}
	}
	c.Written = written

	return nil
}

func (c *DiagramCheck) failure(err error) Violation {
	return NewViolation(c.Name(), "PackageGeneration", "Failed to generate PlantUML diagram: "+err.Error())
}
