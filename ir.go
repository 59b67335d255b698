package swaggen

import "sort"

// Api is a full, already-validated description of an API: its version and
// an ordered, name-unique set of namespaces. It is produced by an upstream
// IDL front end and consumed read-only here.
type Api struct {
	Version string

	namespaces map[string]*Namespace
	order      []string
}

// NewAPI creates an empty Api with the given version string.
func NewAPI(version string) *Api {
	return &Api{
		Version:    version,
		namespaces: make(map[string]*Namespace),
	}
}

// EnsureNamespace returns the namespace with the given name, creating it
// if it does not exist yet. Declaration order is preserved.
func (a *Api) EnsureNamespace(name string) *Namespace {
	if ns, ok := a.namespaces[name]; ok {
		return ns
	}
	ns := &Namespace{Name: name}
	a.namespaces[name] = ns
	a.order = append(a.order, name)
	return ns
}

// Namespace returns the namespace with the given name, if declared.
func (a *Api) Namespace(name string) (*Namespace, bool) {
	ns, ok := a.namespaces[name]
	return ns, ok
}

// Namespaces returns all namespaces in declaration order.
func (a *Api) Namespaces() []*Namespace {
	out := make([]*Namespace, 0, len(a.order))
	for _, name := range a.order {
		out = append(out, a.namespaces[name])
	}
	return out
}

// Namespace groups routes and type declarations under one name.
type Namespace struct {
	Name string
	Doc  string

	Routes []*Route
	types  []DataType
}

// AddRoute appends a route to the namespace in declaration order.
func (ns *Namespace) AddRoute(r *Route) {
	ns.Routes = append(ns.Routes, r)
}

// AddType declares a named type in this namespace and records the
// namespace as its owner.
func (ns *Namespace) AddType(dt DataType) {
	switch t := dt.(type) {
	case *Struct:
		t.owner = ns
	case *Union:
		t.owner = ns
	case *Alias:
		t.owner = ns
	}
	ns.types = append(ns.types, dt)
}

// Types returns the namespace's declared types in declaration order.
func (ns *Namespace) Types() []DataType {
	return ns.types
}

// ImportedNamespaces returns every other namespace whose declared types
// are referenced from this namespace's routes or type declarations,
// sorted by name. The result is derived from the type graph; cycles
// between namespaces are fine.
func (ns *Namespace) ImportedNamespaces() []*Namespace {
	found := make(map[string]*Namespace)
	seen := make(map[string]bool)
	visit := func(dt DataType) {
		walkNamed(dt, seen, func(owner *Namespace) {
			if owner != nil && owner != ns {
				found[owner.Name] = owner
			}
		})
	}
	for _, dt := range ns.types {
		visit(dt)
	}
	for _, r := range ns.Routes {
		visit(r.ArgType)
		visit(r.ResultType)
		visit(r.ErrorType)
	}

	names := make([]string, 0, len(found))
	for name := range found {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]*Namespace, 0, len(names))
	for _, name := range names {
		out = append(out, found[name])
	}
	return out
}

// Route is a single API endpoint: a name unique within its namespace,
// optional doc text, and argument/result/error data types.
type Route struct {
	Name string
	Doc  string

	ArgType    DataType
	ResultType DataType
	ErrorType  DataType
}

// DataType is the closed sum of IR type expressions. The synthesizer
// dispatches exhaustively over its variants; no new variants can be added
// outside this package.
type DataType interface {
	isDataType()
}

// PrimitiveKind discriminates primitive types. Values outside the
// declared constants are tolerated by the synthesizer, which degrades
// them to an untyped schema with a warning.
type PrimitiveKind int

const (
	KindBoolean PrimitiveKind = iota
	KindNumeric
	KindString
	KindTimestamp
	KindVoid
)

// String returns the kind's IDL-facing name.
func (k PrimitiveKind) String() string {
	switch k {
	case KindBoolean:
		return "Boolean"
	case KindNumeric:
		return "Numeric"
	case KindString:
		return "String"
	case KindTimestamp:
		return "Timestamp"
	case KindVoid:
		return "Void"
	default:
		return "Unknown"
	}
}

// Primitive is a scalar IR type.
type Primitive struct {
	Kind PrimitiveKind
}

// Shared primitive instances. The IR has no per-use primitive state, so
// one value per kind suffices.
var (
	Boolean   = &Primitive{Kind: KindBoolean}
	Numeric   = &Primitive{Kind: KindNumeric}
	String    = &Primitive{Kind: KindString}
	Timestamp = &Primitive{Kind: KindTimestamp}
	Void      = &Primitive{Kind: KindVoid}
)

// Nullable marks its inner type as optional. The inner type is never
// itself Nullable; NewNullable flattens on construction.
type Nullable struct {
	Inner DataType
}

// NewNullable wraps inner in a Nullable, collapsing nested Nullables so
// the invariant Nullable(Nullable(T)) == Nullable(T) holds by
// construction.
func NewNullable(inner DataType) *Nullable {
	for {
		n, ok := inner.(*Nullable)
		if !ok {
			break
		}
		inner = n.Inner
	}
	return &Nullable{Inner: inner}
}

// List is a homogeneous sequence of Elem values.
type List struct {
	Elem DataType
}

// Alias is a named, fully transparent synonym for its inner type. It is
// never registered as a definition of its own.
type Alias struct {
	Name  string
	Inner DataType

	owner *Namespace
}

// Field is one member of a Struct or one variant of a Union.
type Field struct {
	Name string
	Type DataType
	Doc  string
}

// Struct is a named product type. Fields may reference the struct itself
// or any other reachable named type, including cyclically.
type Struct struct {
	Name   string
	Doc    string
	Fields []Field

	owner *Namespace
}

// Union is a named tagged sum type. Variants with a Void type carry no
// payload.
type Union struct {
	Name     string
	Doc      string
	Variants []Field

	owner *Namespace
}

func (*Primitive) isDataType() {}
func (*Nullable) isDataType()  {}
func (*List) isDataType()      {}
func (*Alias) isDataType()     {}
func (*Struct) isDataType()    {}
func (*Union) isDataType()     {}

// Owner returns the namespace that declared the struct, if any.
func (s *Struct) Owner() *Namespace { return s.owner }

// Owner returns the namespace that declared the union, if any.
func (u *Union) Owner() *Namespace { return u.owner }

// Owner returns the namespace that declared the alias, if any.
func (a *Alias) Owner() *Namespace { return a.owner }

// isVoid reports whether dt resolves to the Void primitive through any
// chain of aliases and nullables.
func isVoid(dt DataType) bool {
	for {
		switch t := dt.(type) {
		case *Alias:
			dt = t.Inner
		case *Nullable:
			dt = t.Inner
		case *Primitive:
			return t.Kind == KindVoid
		default:
			return false
		}
	}
}

// walkNamed calls fn with the owning namespace of every named type
// reachable from dt. Each named type is visited once; seen guards
// against cycles and is shared across calls so a whole namespace can be
// walked with one set.
func walkNamed(dt DataType, seen map[string]bool, fn func(owner *Namespace)) {
	switch t := dt.(type) {
	case *Primitive:
	case *Nullable:
		walkNamed(t.Inner, seen, fn)
	case *List:
		walkNamed(t.Elem, seen, fn)
	case *Alias:
		if seen["alias:"+t.Name] {
			return
		}
		seen["alias:"+t.Name] = true
		fn(t.owner)
		walkNamed(t.Inner, seen, fn)
	case *Struct:
		if seen[t.Name] {
			return
		}
		seen[t.Name] = true
		fn(t.owner)
		for _, f := range t.Fields {
			walkNamed(f.Type, seen, fn)
		}
	case *Union:
		if seen[t.Name] {
			return
		}
		seen[t.Name] = true
		fn(t.owner)
		for _, f := range t.Variants {
			walkNamed(f.Type, seen, fn)
		}
	}
}
