package swaggen

import (
	"encoding/json"
	"fmt"
	"os"
)

// Compiled-IR file format. The upstream front end parses and validates
// IDL source, then emits its object graph as JSON: namespaces holding
// named type declarations and routes, with type expressions as small
// tagged objects ({"kind": "list", "type": ...}) and named types
// referenced by {"kind": "ref", "name": ...}.

type irFile struct {
	Version    string        `json:"version"`
	Namespaces []irNamespace `json:"namespaces"`
}

type irNamespace struct {
	Name   string    `json:"name"`
	Doc    string    `json:"doc,omitempty"`
	Types  []irDecl  `json:"types,omitempty"`
	Routes []irRoute `json:"routes,omitempty"`
}

type irDecl struct {
	Kind     string      `json:"kind"`
	Name     string      `json:"name"`
	Doc      string      `json:"doc,omitempty"`
	Fields   []irField   `json:"fields,omitempty"`
	Variants []irField   `json:"variants,omitempty"`
	Type     *irTypeExpr `json:"type,omitempty"`
}

type irField struct {
	Name string      `json:"name"`
	Doc  string      `json:"doc,omitempty"`
	Type *irTypeExpr `json:"type"`
}

type irTypeExpr struct {
	Kind string      `json:"kind"`
	Name string      `json:"name,omitempty"`
	Type *irTypeExpr `json:"type,omitempty"`
}

type irRoute struct {
	Name   string      `json:"name"`
	Doc    string      `json:"doc,omitempty"`
	Arg    *irTypeExpr `json:"arg"`
	Result *irTypeExpr `json:"result"`
	Error  *irTypeExpr `json:"error"`
}

// LoadAPI reads a compiled-IR JSON file into an Api graph.
func LoadAPI(path string) (*Api, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("swaggen: read IR: %w", err)
	}
	api, err := DecodeAPI(raw)
	if err != nil {
		return nil, fmt.Errorf("swaggen: %s: %w", path, err)
	}
	return api, nil
}

// DecodeAPI decodes compiled-IR JSON. Named types are declared in a
// first pass and resolved in a second, so declarations may reference
// each other in any order, across namespaces, and cyclically.
func DecodeAPI(raw []byte) (*Api, error) {
	var file irFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse IR: %w", err)
	}

	api := NewAPI(file.Version)
	named := make(map[string]DataType)

	// First pass: declare shells for every named type.
	for _, irns := range file.Namespaces {
		ns := api.EnsureNamespace(irns.Name)
		ns.Doc = irns.Doc
		for _, decl := range irns.Types {
			if _, ok := named[decl.Name]; ok {
				return nil, &TypeNameCollisionError{Name: decl.Name}
			}
			var dt DataType
			switch decl.Kind {
			case "struct":
				dt = &Struct{Name: decl.Name, Doc: decl.Doc}
			case "union":
				dt = &Union{Name: decl.Name, Doc: decl.Doc}
			case "alias":
				dt = &Alias{Name: decl.Name}
			default:
				return nil, fmt.Errorf("type %q: unknown declaration kind %q", decl.Name, decl.Kind)
			}
			named[decl.Name] = dt
			ns.AddType(dt)
		}
	}

	// Second pass: resolve fields, alias targets, and route types.
	for _, irns := range file.Namespaces {
		ns, _ := api.Namespace(irns.Name)
		for _, decl := range irns.Types {
			if err := resolveDecl(named, decl); err != nil {
				return nil, err
			}
		}
		for _, irrt := range irns.Routes {
			rt, err := resolveRoute(named, irrt)
			if err != nil {
				return nil, err
			}
			ns.AddRoute(rt)
		}
	}
	return api, nil
}

func resolveDecl(named map[string]DataType, decl irDecl) error {
	switch dt := named[decl.Name].(type) {
	case *Struct:
		fields, err := resolveFields(named, decl.Fields)
		if err != nil {
			return fmt.Errorf("struct %q: %w", decl.Name, err)
		}
		dt.Fields = fields
	case *Union:
		variants, err := resolveFields(named, decl.Variants)
		if err != nil {
			return fmt.Errorf("union %q: %w", decl.Name, err)
		}
		dt.Variants = variants
	case *Alias:
		if decl.Type == nil {
			return fmt.Errorf("alias %q: missing type", decl.Name)
		}
		inner, err := resolveExpr(named, decl.Type)
		if err != nil {
			return fmt.Errorf("alias %q: %w", decl.Name, err)
		}
		dt.Inner = inner
	}
	return nil
}

func resolveFields(named map[string]DataType, irs []irField) ([]Field, error) {
	fields := make([]Field, 0, len(irs))
	for _, f := range irs {
		if f.Type == nil {
			return nil, fmt.Errorf("field %q: missing type", f.Name)
		}
		dt, err := resolveExpr(named, f.Type)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		fields = append(fields, Field{Name: f.Name, Doc: f.Doc, Type: dt})
	}
	return fields, nil
}

func resolveRoute(named map[string]DataType, irrt irRoute) (*Route, error) {
	rt := &Route{Name: irrt.Name, Doc: irrt.Doc}
	for _, part := range []struct {
		name string
		expr *irTypeExpr
		dst  *DataType
	}{
		{"arg", irrt.Arg, &rt.ArgType},
		{"result", irrt.Result, &rt.ResultType},
		{"error", irrt.Error, &rt.ErrorType},
	} {
		if part.expr == nil {
			return nil, fmt.Errorf("route %q: missing %s type", irrt.Name, part.name)
		}
		dt, err := resolveExpr(named, part.expr)
		if err != nil {
			return nil, fmt.Errorf("route %q: %w", irrt.Name, err)
		}
		*part.dst = dt
	}
	return rt, nil
}

func resolveExpr(named map[string]DataType, expr *irTypeExpr) (DataType, error) {
	switch expr.Kind {
	case "boolean":
		return Boolean, nil
	case "numeric":
		return Numeric, nil
	case "string":
		return String, nil
	case "timestamp":
		return Timestamp, nil
	case "void":
		return Void, nil
	case "nullable":
		if expr.Type == nil {
			return nil, fmt.Errorf("nullable: missing inner type")
		}
		inner, err := resolveExpr(named, expr.Type)
		if err != nil {
			return nil, err
		}
		return NewNullable(inner), nil
	case "list":
		if expr.Type == nil {
			return nil, fmt.Errorf("list: missing element type")
		}
		elem, err := resolveExpr(named, expr.Type)
		if err != nil {
			return nil, err
		}
		return &List{Elem: elem}, nil
	case "ref":
		dt, ok := named[expr.Name]
		if !ok {
			return nil, &UnresolvedRefError{Name: expr.Name}
		}
		return dt, nil
	default:
		return nil, fmt.Errorf("unknown type kind %q", expr.Kind)
	}
}
