package swaggen

import (
	"github.com/stoewer/go-strcase"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// routePath returns the fully-qualified path for a route:
// "/<namespace>/<route>".
func routePath(ns *Namespace, rt *Route) string {
	return "/" + ns.Name + "/" + rt.Name
}

// operationID derives the externally visible operation identifier from a
// fully-qualified route path. Path separators act as word breaks, so
// "/files/list_folder" becomes "FilesListFolder". The result is
// URL-safe; uniqueness is enforced at document assembly.
func operationID(fqPath string) string {
	return strcase.UpperCamelCase(fqPath)
}

// compileRoute translates one route into a path operation, synthesizing
// its argument, result, and error types through the pass registry.
func (g *Generator) compileRoute(reg *Registry, ns *Namespace, rt *Route) (*Operation, error) {
	summary, description := splitDoc(rt.Doc)

	fqPath := routePath(ns, rt)
	params, err := g.routeParameters(reg, rt, fqPath)
	if err != nil {
		return nil, err
	}
	responses, err := routeResponses(reg, rt)
	if err != nil {
		return nil, err
	}

	return &Operation{
		Summary:     summary,
		Description: description,
		OperationID: operationID(fqPath),
		Parameters:  params,
		Responses:   responses,
	}, nil
}

// routeParameters builds the operation's parameter list: exactly one
// body parameter carrying the argument schema, followed by references to
// any shared parameters whose configured pattern matches the path. A
// Void argument still gets a body parameter with an empty object schema.
func (g *Generator) routeParameters(reg *Registry, rt *Route, fqPath string) ([]*Parameter, error) {
	var argSchema *Schema
	if isVoid(rt.ArgType) {
		argSchema = &Schema{Type: "object"}
	} else {
		var err error
		argSchema, err = reg.Synthesize(rt.ArgType)
		if err != nil {
			return nil, err
		}
	}

	params := []*Parameter{{
		Name:   "body",
		In:     "body",
		Schema: argSchema,
	}}
	for _, pp := range g.pathParams {
		if pp.pattern.MatchString(fqPath) {
			params = append(params, ParameterRef(pp.name))
		}
	}
	return params, nil
}

// routeResponses builds the success and default error responses for a
// route. The 200 entry precedes the default entry.
func routeResponses(reg *Registry, rt *Route) (*orderedmap.OrderedMap[string, *Response], error) {
	okSchema, err := reg.Synthesize(rt.ResultType)
	if err != nil {
		return nil, err
	}
	errSchema, err := reg.Synthesize(rt.ErrorType)
	if err != nil {
		return nil, err
	}

	responses := orderedmap.New[string, *Response]()
	responses.Set("200", &Response{Description: "Success", Schema: okSchema})
	responses.Set("default", &Response{Description: "Error", Schema: errSchema})
	return responses, nil
}
