package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	ignore "github.com/sabhiram/go-gitignore"

	"github.com/mabhi256/jlint/internal/classfile"
	"github.com/mabhi256/jlint/internal/lint"
	"github.com/mabhi256/jlint/internal/model"
)

// IgnoreFileName holds gitignore-style patterns in the analysed directory
const IgnoreFileName = ".jlintignore"

const classExtension = ".class"

var (
	ErrNotDirectory = errors.New("path is not a directory")
	ErrNoClassFiles = errors.New("no .class files found")
)

// Unit is one class file read from disk
type Unit struct {
	Path string // relative to the loaded directory, slash separated
	Data []byte
}

// Problem records a file that was skipped
type Problem struct {
	Path string
	Err  error
}

func (p Problem) Error() string {
	return fmt.Sprintf("%s: %v", p.Path, p.Err)
}

type Loader struct {
	logger hclog.Logger
}

func New(logger hclog.Logger) *Loader {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Loader{logger: logger}
}

// Load walks dir in lexical order and reads every regular .class file not excluded
// by the given patterns or by a .jlintignore file in dir. Unreadable files are
// returned as problems and skipped.
func (l *Loader) Load(dir string, patterns []string) ([]Unit, []Problem, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, nil, fmt.Errorf("%s: %w", dir, ErrNotDirectory)
	}

	matcher, err := compileIgnore(dir, patterns)
	if err != nil {
		return nil, nil, err
	}

	var units []Unit
	var problems []Problem

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		rel, _ := filepath.Rel(dir, path)
		rel = filepath.ToSlash(rel)

		if walkErr != nil {
			if path == dir {
				return walkErr
			}
			problems = append(problems, Problem{Path: rel, Err: walkErr})
			l.logger.Warn("skipping unreadable path", "path", rel, "error", walkErr)
			return nil
		}
		if path == dir {
			return nil
		}

		if d.IsDir() {
			if matcher.MatchesPath(rel + "/") {
				l.logger.Debug("ignoring directory", "path", rel)
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() || !strings.HasSuffix(d.Name(), classExtension) {
			return nil
		}
		if matcher.MatchesPath(rel) {
			l.logger.Debug("ignoring file", "path", rel)
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			problems = append(problems, Problem{Path: rel, Err: err})
			l.logger.Warn("error reading file", "path", rel, "error", err)
			return nil
		}

		units = append(units, Unit{Path: rel, Data: data})
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to walk %s: %w", dir, err)
	}

	l.logger.Debug("loaded class files", "dir", dir, "count", len(units), "skipped", len(problems))

	if len(units) == 0 {
		return nil, problems, fmt.Errorf("%s: %w", dir, ErrNoClassFiles)
	}

	return units, problems, nil
}

func compileIgnore(dir string, patterns []string) (*ignore.GitIgnore, error) {
	ignoreFile := filepath.Join(dir, IgnoreFileName)
	if _, err := os.Stat(ignoreFile); err == nil {
		matcher, err := ignore.CompileIgnoreFileAndLines(ignoreFile, patterns...)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", ignoreFile, err)
		}
		return matcher, nil
	}
	return ignore.CompileIgnoreLines(patterns...), nil
}

type BuildOptions struct {
	Label            string // recorded as Context.Path
	IncludeSynthetic bool
}

// Build converts loaded units into an analysis context. Units that fail to decode
// are returned as problems; module and package descriptors are skipped silently.
func (l *Loader) Build(units []Unit, opts BuildOptions) (*lint.Context, []Problem) {
	converter := classfile.NewConverter(l.logger.Named("classfile"), classfile.WithSynthetic(opts.IncludeSynthetic))

	var classes []*model.ClassModel
	var problems []Problem
	bytecode := make(map[string][]byte)
	sources := make(map[string]string)

	for _, unit := range units {
		cls, err := converter.ConvertClass(unit.Data)
		if errors.Is(err, classfile.ErrNotAClass) {
			l.logger.Debug("skipping descriptor", "path", unit.Path)
			continue
		}
		if err != nil {
			problems = append(problems, Problem{Path: unit.Path, Err: err})
			l.logger.Warn("failed to decode class file", "path", unit.Path, "error", err)
			continue
		}

		classes = append(classes, cls)

		// the first class with a simple name owns its matrix row, bytes and source
		if prev, dup := sources[cls.Name]; dup {
			l.logger.Warn("duplicate class name, analysis keys on simple names",
				"class", cls.Name, "first", prev, "second", unit.Path)
			continue
		}
		bytecode[cls.Name] = unit.Data
		sources[cls.Name] = unit.Path
	}

	ctx := lint.NewContext(classes, opts.Label)
	ctx.Bytecode = bytecode
	ctx.Sources = sources

	l.logger.Debug("built context", "classes", ctx.ClassCount(), "relationships", len(ctx.Matrix.Edges()))

	return ctx, problems
}

// LoadContext is Load followed by Build, with the directory as label
func (l *Loader) LoadContext(dir string, patterns []string, includeSynthetic bool) (*lint.Context, []Problem, error) {
	units, problems, err := l.Load(dir, patterns)
	if err != nil {
		return nil, problems, err
	}

	ctx, buildProblems := l.Build(units, BuildOptions{Label: dir, IncludeSynthetic: includeSynthetic})
	return ctx, append(problems, buildProblems...), nil
}
