package swaggen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idlkit/swaggen"
)

func TestEnsureNamespace(t *testing.T) {
	t.Parallel()

	api := swaggen.NewAPI("1.0")
	files := api.EnsureNamespace("files")
	again := api.EnsureNamespace("files")
	assert.Same(t, files, again, "ensure only creates once")

	api.EnsureNamespace("auth")
	assert.Equal(t, []string{"files", "auth"}, names(api.Namespaces()), "declaration order is preserved")

	_, ok := api.Namespace("missing")
	assert.False(t, ok)
}

func TestNewNullable_flattens_on_construction(t *testing.T) {
	t.Parallel()

	inner := swaggen.NewNullable(swaggen.String)
	outer := swaggen.NewNullable(swaggen.NewNullable(inner))
	assert.Equal(t, swaggen.String, outer.Inner, "nested nullables collapse to the innermost type")
}

func TestAddType_records_owner(t *testing.T) {
	t.Parallel()

	api := swaggen.NewAPI("1.0")
	ns := api.EnsureNamespace("files")

	st := &swaggen.Struct{Name: "S"}
	un := &swaggen.Union{Name: "U"}
	al := &swaggen.Alias{Name: "A", Inner: swaggen.String}
	ns.AddType(st)
	ns.AddType(un)
	ns.AddType(al)

	assert.Same(t, ns, st.Owner())
	assert.Same(t, ns, un.Owner())
	assert.Same(t, ns, al.Owner())
	require.Len(t, ns.Types(), 3)
}

func TestPrimitiveKindString(t *testing.T) {
	t.Parallel()

	tests := map[swaggen.PrimitiveKind]string{
		swaggen.KindBoolean:   "Boolean",
		swaggen.KindNumeric:   "Numeric",
		swaggen.KindString:    "String",
		swaggen.KindTimestamp: "Timestamp",
		swaggen.KindVoid:      "Void",
		99:                    "Unknown",
	}
	for kind, expect := range tests {
		assert.Equal(t, expect, kind.String())
	}
}

func TestImportedNamespaces_alias_edges(t *testing.T) {
	t.Parallel()

	api := swaggen.NewAPI("1.0")
	common := api.EnsureNamespace("common")
	path := &swaggen.Alias{Name: "Path", Inner: swaggen.String}
	common.AddType(path)

	files := api.EnsureNamespace("files")
	files.AddRoute(&swaggen.Route{
		Name:       "delete",
		ArgType:    path,
		ResultType: swaggen.Void,
		ErrorType:  swaggen.Void,
	})

	imports := files.ImportedNamespaces()
	require.Len(t, imports, 1)
	assert.Equal(t, "common", imports[0].Name, "alias use imports the declaring namespace")
}
