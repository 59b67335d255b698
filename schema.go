package swaggen

import (
	"log/slog"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// discriminatorKey is the synthetic union property that names the
// variant present in a value.
const discriminatorKey = ".tag"

// Registry is the per-pass definitions registry: it maps user-defined
// type names to their rendered schemas, in first-encounter order. A
// Registry belongs to exactly one generation pass and must not be shared
// across concurrent passes.
type Registry struct {
	logger  *slog.Logger
	schemas *orderedmap.OrderedMap[string, *Schema]
	origins map[string]DataType
}

// NewRegistry creates an empty registry logging through the given
// logger. A nil logger falls back to slog.Default.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		logger:  logger,
		schemas: orderedmap.New[string, *Schema](),
		origins: make(map[string]DataType),
	}
}

// Definitions returns the registered schemas keyed by type name, in
// registration order, or nil when nothing was registered.
func (reg *Registry) Definitions() *orderedmap.OrderedMap[string, *Schema] {
	if reg.schemas.Len() == 0 {
		return nil
	}
	return reg.schemas
}

// Len returns the number of registered definitions.
func (reg *Registry) Len() int {
	return reg.schemas.Len()
}

// Synthesize converts an IR type expression into a schema node.
// Primitives, lists, and nullables yield inline schemas; structs and
// unions are registered under their name and yield a reference node.
// Aliases are transparent. The dispatch is exhaustive over the closed
// DataType sum; an unknown variant is a fatal error.
func (reg *Registry) Synthesize(dt DataType) (*Schema, error) {
	switch t := dt.(type) {
	case *Primitive:
		return reg.primitiveSchema(t), nil
	case *Nullable:
		// Nullability is not encoded in the schema node; it only
		// matters to the containing field's caller.
		return reg.Synthesize(t.Inner)
	case *List:
		items, err := reg.Synthesize(t.Elem)
		if err != nil {
			return nil, err
		}
		return &Schema{Type: "array", Items: items}, nil
	case *Alias:
		return reg.Synthesize(t.Inner)
	case *Struct:
		return reg.define(t.Name, t, func(s *Schema) error {
			return reg.fillStruct(s, t)
		})
	case *Union:
		return reg.define(t.Name, t, func(s *Schema) error {
			return reg.fillUnion(s, t)
		})
	default:
		return nil, &UnhandledTypeError{Type: dt}
	}
}

// define registers a named type at most once per pass and returns a
// reference to it. The placeholder entry is inserted before fill runs,
// so self-referential and mutually-recursive types resolve against it
// instead of recursing forever; fill then completes the entry in place.
func (reg *Registry) define(name string, origin DataType, fill func(*Schema) error) (*Schema, error) {
	if prev, ok := reg.origins[name]; ok {
		if prev != origin {
			return nil, &TypeNameCollisionError{Name: name}
		}
		return SchemaRef(name), nil
	}
	reg.origins[name] = origin

	placeholder := &Schema{}
	reg.schemas.Set(name, placeholder)
	if err := fill(placeholder); err != nil {
		return nil, err
	}
	return SchemaRef(name), nil
}

// fillStruct completes a struct definition: one property per field, the
// field doc copied onto inline property schemas, and a top-level
// description concatenating the struct's own doc with each field's
// "name: doc" line.
func (reg *Registry) fillStruct(s *Schema, t *Struct) error {
	props := orderedmap.New[string, *Schema]()
	desc := newDocBuilder(t.Doc)
	for _, f := range t.Fields {
		desc.field(f.Name, f.Doc)
		prop, err := reg.Synthesize(f.Type)
		if err != nil {
			return err
		}
		if f.Doc != "" && !prop.IsRef() {
			prop.Description = f.Doc
		}
		props.Set(f.Name, prop)
	}
	s.Type = "object"
	s.Properties = props
	s.Description = desc.String()
	return nil
}

// fillUnion completes a union definition: one property per non-Void
// variant plus the trailing ".tag" discriminator whose enum lists every
// variant name, Void included, in declaration order.
func (reg *Registry) fillUnion(s *Schema, t *Union) error {
	props := orderedmap.New[string, *Schema]()
	desc := newDocBuilder(t.Doc)
	choices := make([]string, 0, len(t.Variants))
	for _, f := range t.Variants {
		desc.field(f.Name, f.Doc)
		choices = append(choices, f.Name)
		if isVoid(f.Type) {
			continue
		}
		prop, err := reg.Synthesize(f.Type)
		if err != nil {
			return err
		}
		if f.Doc != "" && !prop.IsRef() {
			prop.Description = f.Doc
		}
		props.Set(f.Name, prop)
	}
	props.Set(discriminatorKey, &Schema{
		Type:  "string",
		Enum:  choices,
		Title: "Choice of " + t.Name,
	})
	s.Type = "object"
	s.Properties = props
	s.Description = desc.String()
	return nil
}

// primitiveSchema maps a primitive kind to its scalar schema. Void
// yields the null-type marker used only for union-variant detection.
// An unrecognized kind degrades to an untyped object schema with a
// warning; this is the one deliberately lenient case.
func (reg *Registry) primitiveSchema(t *Primitive) *Schema {
	switch t.Kind {
	case KindBoolean:
		return &Schema{Type: "boolean"}
	case KindNumeric:
		return &Schema{Type: "number"}
	case KindString:
		return &Schema{Type: "string"}
	case KindTimestamp:
		return &Schema{Type: "string", Format: "date-time"}
	case KindVoid:
		return &Schema{Type: "null"}
	default:
		reg.logger.Warn("unknown primitive data type", "kind", int(t.Kind))
		return &Schema{Type: "object"}
	}
}
