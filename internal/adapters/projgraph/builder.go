// Package projgraph constructs project dependency graphs by following
// MSBuild-style ProjectReference items transitively from an entry project.
package projgraph

import (
	"context"
	"encoding/xml"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.refold.dev/refold/internal/core/domain"
	"go.trai.ch/zerr"
)

// propertyPattern matches $(PropertyName) references inside include paths.
var propertyPattern = regexp.MustCompile(`\$\(([A-Za-z_][A-Za-z0-9_]*)\)`)

// Builder implements ports.GraphBuilder over project files on disk.
type Builder struct{}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// BuildGraph walks the reference closure of entryProject. Load and parse
// failures are independent per project; they are collected and returned as
// one joined error, and no partial graph is returned.
func (b *Builder) BuildGraph(
	ctx context.Context,
	entryProject string,
	globalProperties map[string]string,
) (*domain.ProjectGraph, error) {
	entry, err := filepath.Abs(entryProject)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve entry project path")
	}

	graph := domain.NewProjectGraph(entry)
	visited := map[string]bool{entry: true}
	queue := []string{entry}
	var problems []error

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		project := queue[0]
		queue = queue[1:]

		refs, err := loadReferences(project, globalProperties)
		if err != nil {
			problems = append(problems, err)
			continue
		}

		for _, ref := range refs {
			if !visited[ref] {
				visited[ref] = true
				if err := graph.AddProject(ref); err != nil {
					problems = append(problems, err)
					continue
				}
				queue = append(queue, ref)
			}
			if err := graph.AddReference(project, ref); err != nil {
				problems = append(problems, err)
			}
		}
	}

	if len(problems) > 0 {
		return nil, errors.Join(problems...)
	}
	return graph, nil
}

// loadReferences parses one project file and returns the absolute paths of
// its direct project references.
func loadReferences(project string, globalProperties map[string]string) ([]string, error) {
	data, err := os.ReadFile(project)
	if err != nil {
		return nil, zerr.With(domain.ErrProjectLoadFailed, "project", project)
	}

	var file projectFile
	if err := xml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.With(domain.ErrProjectParseFailed, "project", project), "cause", err.Error())
	}

	projectDir := filepath.Dir(project)
	var refs []string
	for _, group := range file.ItemGroups {
		for _, ref := range group.ProjectReferences {
			include := expandProperties(ref.Include, projectDir, globalProperties)
			if include == "" {
				continue
			}

			// Project files routinely use backslash separators.
			include = filepath.FromSlash(strings.ReplaceAll(include, `\`, "/"))
			if !filepath.IsAbs(include) {
				include = filepath.Join(projectDir, include)
			}
			refs = append(refs, filepath.Clean(include))
		}
	}
	return refs, nil
}

// expandProperties substitutes $(Name) references from the global properties.
// MSBuildProjectDirectory is always defined; unknown properties expand to the
// empty string, matching evaluator semantics.
func expandProperties(s, projectDir string, globalProperties map[string]string) string {
	return propertyPattern.ReplaceAllStringFunc(s, func(match string) string {
		name := propertyPattern.FindStringSubmatch(match)[1]
		if name == "MSBuildProjectDirectory" || name == "MSBuildThisFileDirectory" {
			return projectDir
		}
		if value, ok := globalProperties[name]; ok {
			return value
		}
		return ""
	})
}
