package swaggen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idlkit/swaggen"
)

func names(nss []*swaggen.Namespace) []string {
	out := make([]string, 0, len(nss))
	for _, ns := range nss {
		out = append(out, ns.Name)
	}
	return out
}

func TestClosure_single_namespace(t *testing.T) {
	t.Parallel()

	api := swaggen.NewAPI("1.0")
	files := api.EnsureNamespace("files")
	arg := &swaggen.Struct{Name: "Arg", Fields: []swaggen.Field{{Name: "path", Type: swaggen.String}}}
	files.AddType(arg)
	files.AddRoute(&swaggen.Route{
		Name:       "list",
		ArgType:    arg,
		ResultType: swaggen.Void,
		ErrorType:  swaggen.Void,
	})

	got := swaggen.Closure(files)
	assert.Equal(t, []string{"files"}, names(got))
}

func TestClosure_follows_type_references(t *testing.T) {
	t.Parallel()

	api := swaggen.NewAPI("1.0")
	common := api.EnsureNamespace("common")
	shared := &swaggen.Struct{Name: "Cursor", Fields: []swaggen.Field{{Name: "token", Type: swaggen.String}}}
	common.AddType(shared)

	files := api.EnsureNamespace("files")
	arg := &swaggen.Struct{Name: "ListArg", Fields: []swaggen.Field{{Name: "cursor", Type: shared}}}
	files.AddType(arg)
	files.AddRoute(&swaggen.Route{Name: "list", ArgType: arg, ResultType: swaggen.Void, ErrorType: swaggen.Void})

	// An unrelated namespace must not appear.
	api.EnsureNamespace("team")

	got := swaggen.Closure(files)
	assert.Equal(t, []string{"common", "files"}, names(got), "result is sorted by name")

	imports := files.ImportedNamespaces()
	require.Len(t, imports, 1)
	assert.Equal(t, "common", imports[0].Name)
	assert.Empty(t, common.ImportedNamespaces())
}

func TestClosure_transitive_and_cyclic(t *testing.T) {
	t.Parallel()

	api := swaggen.NewAPI("1.0")
	a := api.EnsureNamespace("a")
	b := api.EnsureNamespace("b")
	c := api.EnsureNamespace("c")

	ta := &swaggen.Struct{Name: "A"}
	tb := &swaggen.Struct{Name: "B"}
	tc2 := &swaggen.Struct{Name: "C"}
	a.AddType(ta)
	b.AddType(tb)
	c.AddType(tc2)

	// a -> b -> c -> a forms an import cycle.
	ta.Fields = []swaggen.Field{{Name: "b", Type: tb}}
	tb.Fields = []swaggen.Field{{Name: "c", Type: tc2}}
	tc2.Fields = []swaggen.Field{{Name: "a", Type: ta}}

	got := swaggen.Closure(a)
	assert.Equal(t, []string{"a", "b", "c"}, names(got))

	// Starting anywhere in the cycle reaches the same set.
	assert.Equal(t, []string{"a", "b", "c"}, names(swaggen.Closure(c)))
}

func TestClosure_route_types_create_import_edges(t *testing.T) {
	t.Parallel()

	api := swaggen.NewAPI("1.0")
	errs := api.EnsureNamespace("errors")
	generic := &swaggen.Union{Name: "GenericError", Variants: []swaggen.Field{{Name: "internal", Type: swaggen.Void}}}
	errs.AddType(generic)

	auth := api.EnsureNamespace("auth")
	auth.AddRoute(&swaggen.Route{
		Name:       "check",
		ArgType:    swaggen.Void,
		ResultType: swaggen.Boolean,
		ErrorType:  generic,
	})

	got := swaggen.Closure(auth)
	assert.Equal(t, []string{"auth", "errors"}, names(got))
}

func TestClosure_self_referential_type_terminates(t *testing.T) {
	t.Parallel()

	api := swaggen.NewAPI("1.0")
	ns := api.EnsureNamespace("tree")
	node := &swaggen.Struct{Name: "Node"}
	node.Fields = []swaggen.Field{{Name: "children", Type: &swaggen.List{Elem: node}}}
	ns.AddType(node)

	got := swaggen.Closure(ns)
	assert.Equal(t, []string{"tree"}, names(got))
}
