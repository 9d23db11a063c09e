package uml

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/mabhi256/jlint/internal/model"
)

const (
	RendererNative = "native"
	RendererGenuml = "genuml"
)

// Renderer produces the PlantUML block for a single class
type Renderer interface {
	RenderClass(ctx context.Context, cls *model.ClassModel, bytecode []byte) (string, error)
}

// NewRenderer returns the renderer registered under name
func NewRenderer(name string) (Renderer, error) {
	switch name {
	case "", RendererNative:
		return NativeRenderer{}, nil
	case RendererGenuml:
		return &GenumlRenderer{Command: "genuml"}, nil
	default:
		return nil, fmt.Errorf("unknown diagram renderer: %s", name)
	}
}

// NativeRenderer draws class blocks straight from the class model
type NativeRenderer struct{}

func (NativeRenderer) RenderClass(_ context.Context, cls *model.ClassModel, _ []byte) (string, error) {
	var sb strings.Builder

	keyword := "class"
	switch {
	case cls.IsInterface:
		keyword = "interface"
	case cls.IsAbstract:
		keyword = "abstract class"
	}

	fmt.Fprintf(&sb, "%s %s {\n", keyword, cls.Name)
	for _, f := range cls.Fields {
		static := ""
		if f.IsStatic {
			static = "{static} "
		}
		fmt.Fprintf(&sb, "  %s%s%s : %s\n", static, visibility(f.IsPublic), f.Name, f.Type)
	}
	for _, m := range cls.Methods {
		if m.IsStaticInitializer() {
			continue
		}
		params := strings.Join(m.ParameterTypes, ", ")
		if m.IsConstructor() {
			fmt.Fprintf(&sb, "  %s%s(%s)\n", visibility(m.IsPublic), cls.Name, params)
			continue
		}

		prefix := ""
		if m.IsStatic {
			prefix = "{static} "
		} else if m.IsAbstract {
			prefix = "{abstract} "
		}
		fmt.Fprintf(&sb, "  %s%s%s(%s) : %s\n", prefix, visibility(m.IsPublic), m.Name, params, m.ReturnType)
	}
	sb.WriteString("}\n")

	return sb.String(), nil
}

func visibility(public bool) string {
	if public {
		return "+"
	}
	return "-"
}

// GenumlRenderer shells out to `genuml generate <file.class>` for each class
type GenumlRenderer struct {
	Command string
	tempDir string
}

func (r *GenumlRenderer) RenderClass(ctx context.Context, cls *model.ClassModel, bytecode []byte) (string, error) {
	if len(bytecode) == 0 {
		return "", fmt.Errorf("no bytecode retained for %s", cls.Name)
	}

	if r.tempDir == "" {
		dir, err := os.MkdirTemp("", "genuml_temp")
		if err != nil {
			return "", fmt.Errorf("failed to create temp dir: %w", err)
		}
		r.tempDir = dir
	}

	classFile := filepath.Join(r.tempDir, cls.Name+".class")
	if err := os.WriteFile(classFile, bytecode, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", classFile, err)
	}

	out, err := exec.CommandContext(ctx, r.Command, "generate", classFile).CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("%s generate %s: %w", r.Command, cls.Name, err)
	}

	var sb strings.Builder
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		// the combined diagram adds its own markers
		if trimmed == "@startuml" || trimmed == "@enduml" {
			continue
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	return sb.String(), scanner.Err()
}

// Close removes the temporary class files
func (r *GenumlRenderer) Close() error {
	if r.tempDir == "" {
		return nil
	}
	err := os.RemoveAll(r.tempDir)
	r.tempDir = ""
	return err
}
