package swaggen

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"sort"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Target is one generation target, typically loaded from a YAML file.
// It names the namespaces in scope and carries the fixed document
// metadata plus the shared-parameter tables.
type Target struct {
	// Output is the file the rendered document is written to.
	Output string `yaml:"output" validate:"required"`

	// Namespaces limits generation to the listed namespaces. Empty
	// means every namespace of the Api.
	Namespaces []string `yaml:"namespaces"`

	// Split emits one self-contained document per namespace closure
	// instead of a single merged document.
	Split bool `yaml:"split"`

	Info     TargetInfo `yaml:"info"`
	Host     string     `yaml:"host"`
	BasePath string     `yaml:"basePath"`
	Consumes []string   `yaml:"consumes"`
	Produces []string   `yaml:"produces"`

	// Parameters defines named shared parameters rendered under the
	// document's parameters object.
	Parameters map[string]TargetParameter `yaml:"parameters" validate:"dive"`

	// PathParameters maps a path regular expression to the name of a
	// shared parameter injected into every matching operation.
	PathParameters map[string]string `yaml:"pathParameters"`
}

// TargetInfo is the document's info block.
type TargetInfo struct {
	Title       string `yaml:"title" validate:"required"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
}

// TargetParameter is one shared parameter definition.
type TargetParameter struct {
	Name        string `yaml:"name" validate:"required"`
	In          string `yaml:"in" validate:"required,oneof=query header path formData body"`
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
	Required    bool   `yaml:"required"`
}

// defaultMediaTypes applies when a target lists no media types.
var defaultMediaTypes = []string{"application/json"}

// LoadTarget reads and validates a target file. Unknown keys, missing
// required fields, uncompilable path patterns, and injection entries
// naming undefined parameters are all load-time errors.
func LoadTarget(path string) (*Target, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("swaggen: read target: %w", err)
	}

	var t Target
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("swaggen: parse target %s: %w", path, err)
	}

	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("swaggen: invalid target %s: %w", path, err)
	}
	return &t, nil
}

// Validate checks structural constraints and the cross-references
// between the path-injection table and the parameter definitions.
func (t *Target) Validate() error {
	if err := validator.New().Struct(t); err != nil {
		return err
	}
	for pattern, name := range t.PathParameters {
		if _, err := regexp.Compile(pattern); err != nil {
			return fmt.Errorf("path parameter pattern %q: %w", pattern, err)
		}
		if _, ok := t.Parameters[name]; !ok {
			return fmt.Errorf("path parameter pattern %q names undefined parameter %q", pattern, name)
		}
	}
	return nil
}

// Options translates the target into generator options. Map-backed
// tables are applied in sorted key order so identical targets always
// configure identical generators.
func (t *Target) Options() ([]Option, error) {
	consumes := t.Consumes
	if len(consumes) == 0 {
		consumes = defaultMediaTypes
	}
	produces := t.Produces
	if len(produces) == 0 {
		produces = defaultMediaTypes
	}

	opts := []Option{
		WithTitle(t.Info.Title),
		WithDescription(t.Info.Description),
		WithHost(t.Host),
		WithBasePath(t.BasePath),
		WithConsumes(consumes...),
		WithProduces(produces...),
	}
	if t.Info.Version != "" {
		opts = append(opts, WithVersion(t.Info.Version))
	}

	for _, name := range sortedKeys(t.Parameters) {
		p := t.Parameters[name]
		opts = append(opts, WithSharedParameter(name, Parameter{
			Name:        p.Name,
			In:          p.In,
			Type:        p.Type,
			Description: p.Description,
			Required:    p.Required,
		}))
	}
	for _, pattern := range sortedKeys(t.PathParameters) {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("swaggen: path parameter pattern %q: %w", pattern, err)
		}
		opts = append(opts, WithPathParameter(re, t.PathParameters[pattern]))
	}
	return opts, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
