// Package swaggen is the schema-synthesis backend of an IDL API
// compiler: it turns an already-validated intermediate representation
// (namespaces, routes, and a closed type system) into Swagger 2.0
// documents. Every route becomes a POST operation; every struct and
// union reachable from a route becomes a named, referenceable entry in
// the document's definitions object.
//
// A pass is a single synchronous transformation:
//
//	g := swaggen.New(swaggen.WithTitle("Files API"), swaggen.WithHost("api.example.com"))
//	doc, err := g.Generate(api)
//	if err != nil {
//	    // nothing was emitted
//	}
//	out, err := swaggen.Render(doc)
//
// Recursive and mutually-recursive types are supported: the definitions
// registry pre-registers a placeholder the moment a type's synthesis
// begins, so nested self-references resolve to a $ref instead of
// recursing. Identical input always renders identical output.
//
// The package never executes HTTP requests, parses IDL text, or mutates
// the IR it is given.
package swaggen
