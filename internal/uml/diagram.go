package uml

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mabhi256/jlint/internal/graph"
	"github.com/mabhi256/jlint/internal/model"
)

const DefaultOutput = "design.puml"

// Arrow returns the PlantUML arrow for a relationship kind, or "" for NONE
func Arrow(kind graph.RelationshipKind) string {
	switch kind {
	case graph.IS_A:
		return "--|>"
	case graph.IMPLEMENTS:
		return "..|>"
	case graph.HAS_A:
		return "-->"
	case graph.GENERAL:
		return "..>"
	case graph.HAS_MANY:
		return `-->"*"`
	default:
		return ""
	}
}

// Generate renders the whole analysed set as one PlantUML class diagram
func Generate(ctx context.Context, classes []*model.ClassModel, matrix *graph.Matrix,
	bytecode map[string][]byte, renderer Renderer,
) (string, error) {
	if closer, ok := renderer.(io.Closer); ok {
		defer closer.Close()
	}

	var sb strings.Builder
	sb.WriteString("@startuml\n\n")

	for _, cls := range classes {
		block, err := renderer.RenderClass(ctx, cls, bytecode[cls.Name])
		if err != nil {
			return "", fmt.Errorf("failed to render class %s: %w", cls.Name, err)
		}
		sb.WriteString(block)
		sb.WriteString("\n")
	}

	sb.WriteString(Relationships(matrix))
	sb.WriteString("\n@enduml\n")

	return sb.String(), nil
}

// Relationships renders one arrow line per non-NONE matrix entry
func Relationships(matrix *graph.Matrix) string {
	var sb strings.Builder
	sb.WriteString("' Relationships\n")
	for _, edge := range matrix.Edges() {
		fmt.Fprintf(&sb, "%s %s %s\n", edge.From, Arrow(edge.Kind), edge.To)
	}
	return sb.String()
}

// WriteFile stores the diagram under dir and returns the written path
func WriteFile(dir, name, content string) (string, error) {
	if name == "" {
		name = DefaultOutput
	}
	outputPath := name
	if !filepath.IsAbs(name) {
		outputPath = filepath.Join(dir, name)
	}

	if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write diagram: %w", err)
	}
	return outputPath, nil
}
