package swaggen

import (
	"fmt"
	"log/slog"
	"regexp"
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// SwaggerVersion is the format version written to every document.
const SwaggerVersion = "2.0"

// Generator assembles Swagger documents from an Api. A Generator is
// immutable after New and safe to reuse; every Generate call runs one
// independent pass with its own registry.
type Generator struct {
	logger *slog.Logger

	title       string
	version     string
	description string
	host        string
	basePath    string
	consumes    []string
	produces    []string

	sharedParams []sharedParameter
	pathParams   []pathParameter
}

// sharedParameter is a named entry of the document's top-level
// parameters object.
type sharedParameter struct {
	name  string
	param *Parameter
}

// pathParameter injects a shared-parameter reference into every
// operation whose fully-qualified path matches the pattern.
type pathParameter struct {
	pattern *regexp.Regexp
	name    string
}

// Option configures a Generator.
type Option func(*Generator)

// WithTitle sets the document's info title.
func WithTitle(title string) Option {
	return func(g *Generator) {
		g.title = title
	}
}

// WithVersion sets the document's info version. When unset, the Api's
// own version is used.
func WithVersion(version string) Option {
	return func(g *Generator) {
		g.version = version
	}
}

// WithDescription sets the document's info description.
func WithDescription(desc string) Option {
	return func(g *Generator) {
		g.description = desc
	}
}

// WithHost sets the document host.
func WithHost(host string) Option {
	return func(g *Generator) {
		g.host = host
	}
}

// WithBasePath sets the document base path.
func WithBasePath(basePath string) Option {
	return func(g *Generator) {
		g.basePath = basePath
	}
}

// WithConsumes sets the document's consumed media types.
func WithConsumes(mimes ...string) Option {
	return func(g *Generator) {
		g.consumes = mimes
	}
}

// WithProduces sets the document's produced media types.
func WithProduces(mimes ...string) Option {
	return func(g *Generator) {
		g.produces = mimes
	}
}

// WithSharedParameter registers a named parameter definition under the
// document's parameters object. Definitions render in registration
// order.
func WithSharedParameter(name string, p Parameter) Option {
	return func(g *Generator) {
		g.sharedParams = append(g.sharedParams, sharedParameter{name: name, param: &p})
	}
}

// WithPathParameter injects a reference to the named shared parameter
// into every operation whose path matches pattern.
func WithPathParameter(pattern *regexp.Regexp, paramName string) Option {
	return func(g *Generator) {
		g.pathParams = append(g.pathParams, pathParameter{pattern: pattern, name: paramName})
	}
}

// WithLogger sets the logger used for degraded-path warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// New creates a Generator with the given options.
func New(opts ...Option) *Generator {
	g := &Generator{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate assembles one document covering every namespace of the Api.
func (g *Generator) Generate(api *Api) (*Document, error) {
	scope := api.Namespaces()
	sort.Slice(scope, func(i, j int) bool { return scope[i].Name < scope[j].Name })
	return g.generate(api, scope)
}

// GenerateNamespace assembles one document for the import closure of the
// named namespace, so the result is self-contained: it includes the
// routes and definitions of every namespace transitively reachable from
// the root.
func (g *Generator) GenerateNamespace(api *Api, root string) (*Document, error) {
	ns, ok := api.Namespace(root)
	if !ok {
		return nil, fmt.Errorf("swaggen: unknown namespace %q", root)
	}
	return g.generate(api, Closure(ns))
}

// GenerateNamespaces assembles one document covering the union of the
// import closures of the named namespaces.
func (g *Generator) GenerateNamespaces(api *Api, roots []string) (*Document, error) {
	seen := make(map[string]bool)
	var scope []*Namespace
	for _, root := range roots {
		ns, ok := api.Namespace(root)
		if !ok {
			return nil, fmt.Errorf("swaggen: unknown namespace %q", root)
		}
		for _, n := range Closure(ns) {
			if !seen[n.Name] {
				seen[n.Name] = true
				scope = append(scope, n)
			}
		}
	}
	sort.Slice(scope, func(i, j int) bool { return scope[i].Name < scope[j].Name })
	return g.generate(api, scope)
}

// generate runs one pass: compile every route of every in-scope
// namespace through a fresh registry, then assemble the document.
// Namespaces arrive sorted; routes keep declaration order.
func (g *Generator) generate(api *Api, scope []*Namespace) (*Document, error) {
	reg := NewRegistry(g.logger)
	paths := orderedmap.New[string, *PathItem]()
	owners := make(map[string]string)

	for _, ns := range scope {
		for _, rt := range ns.Routes {
			op, err := g.compileRoute(reg, ns, rt)
			if err != nil {
				return nil, err
			}
			qualified := ns.Name + "." + rt.Name
			if prev, ok := owners[op.OperationID]; ok {
				return nil, &OperationIDCollisionError{
					OperationID: op.OperationID,
					RouteA:      prev,
					RouteB:      qualified,
				}
			}
			owners[op.OperationID] = qualified
			paths.Set(routePath(ns, rt), &PathItem{Post: op})
		}
	}

	version := g.version
	if version == "" {
		version = api.Version
	}

	return &Document{
		Swagger: SwaggerVersion,
		Info: Info{
			Title:       g.title,
			Version:     version,
			Description: g.description,
		},
		Host:        g.host,
		BasePath:    g.basePath,
		Consumes:    g.consumes,
		Produces:    g.produces,
		Paths:       paths,
		Definitions: reg.Definitions(),
		Parameters:  g.parametersObject(),
	}, nil
}

// parametersObject renders the shared parameter definitions, or nil when
// none are configured.
func (g *Generator) parametersObject() *orderedmap.OrderedMap[string, *Parameter] {
	if len(g.sharedParams) == 0 {
		return nil
	}
	out := orderedmap.New[string, *Parameter]()
	for _, sp := range g.sharedParams {
		out.Set(sp.name, sp.param)
	}
	return out
}
