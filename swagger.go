package swaggen

import orderedmap "github.com/wk8/go-ordered-map/v2"

// Document is the top-level Swagger 2.0 document. Attributes holding an
// absent value are omitted from the wire form entirely, never rendered
// as null; reserved wire names ($ref, in, basePath) are fixed by the
// JSON tags. Indexed collections (paths, definitions, responses,
// parameters) keep construction order.
type Document struct {
	Swagger     string                                     `json:"swagger"`
	Info        Info                                       `json:"info"`
	Host        string                                     `json:"host,omitempty"`
	BasePath    string                                     `json:"basePath,omitempty"`
	Consumes    []string                                   `json:"consumes,omitempty"`
	Produces    []string                                   `json:"produces,omitempty"`
	Paths       *orderedmap.OrderedMap[string, *PathItem]  `json:"paths"`
	Definitions *orderedmap.OrderedMap[string, *Schema]    `json:"definitions,omitempty"`
	Parameters  *orderedmap.OrderedMap[string, *Parameter] `json:"parameters,omitempty"`
}

// Info holds document metadata.
type Info struct {
	Title       string `json:"title"`
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`
}

// PathItem holds the operations available on one path. Every IDL route
// maps to a POST operation.
type PathItem struct {
	Post *Operation `json:"post,omitempty"`
}

// Operation describes a single operation on a path.
type Operation struct {
	Summary     string                                    `json:"summary,omitempty"`
	Description string                                    `json:"description,omitempty"`
	OperationID string                                    `json:"operationId"`
	Parameters  []*Parameter                              `json:"parameters"`
	Responses   *orderedmap.OrderedMap[string, *Response] `json:"responses"`
}

// Parameter describes a single operation parameter, or (when Ref is set)
// a reference to a shared parameter definition.
type Parameter struct {
	Ref         string  `json:"$ref,omitempty"`
	Name        string  `json:"name,omitempty"`
	In          string  `json:"in,omitempty"`
	Description string  `json:"description,omitempty"`
	Required    bool    `json:"required,omitempty"`
	Type        string  `json:"type,omitempty"`
	Schema      *Schema `json:"schema,omitempty"`
}

// ParameterRef returns a reference to a shared parameter definition.
func ParameterRef(name string) *Parameter {
	return &Parameter{Ref: "#/parameters/" + name}
}

// Response describes a single response of an operation.
type Response struct {
	Description string  `json:"description"`
	Schema      *Schema `json:"schema,omitempty"`
}

// Schema is a structural type descriptor, or (when Ref is set) a by-name
// reference to a registered definition. Reference nodes carry no other
// attributes.
type Schema struct {
	Ref         string                                  `json:"$ref,omitempty"`
	Type        string                                  `json:"type,omitempty"`
	Title       string                                  `json:"title,omitempty"`
	Format      string                                  `json:"format,omitempty"`
	Items       *Schema                                 `json:"items,omitempty"`
	Properties  *orderedmap.OrderedMap[string, *Schema] `json:"properties,omitempty"`
	Description string                                  `json:"description,omitempty"`
	Enum        []string                                `json:"enum,omitempty"`
}

// SchemaRef returns a reference node pointing at the definition with the
// given type name.
func SchemaRef(name string) *Schema {
	return &Schema{Ref: "#/definitions/" + name}
}

// IsRef reports whether s is a reference node rather than an inline
// schema.
func (s *Schema) IsRef() bool {
	return s.Ref != ""
}
