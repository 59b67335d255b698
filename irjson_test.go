package swaggen_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idlkit/swaggen"
)

const filesIR = `{
  "version": "0.5",
  "namespaces": [
    {
      "name": "files",
      "doc": "File operations.",
      "types": [
        {
          "kind": "struct",
          "name": "ListArg",
          "fields": [
            {"name": "path", "doc": "Folder path.", "type": {"kind": "string"}},
            {"name": "limit", "type": {"kind": "nullable", "type": {"kind": "numeric"}}}
          ]
        },
        {
          "kind": "union",
          "name": "ListError",
          "variants": [
            {"name": "path_error", "type": {"kind": "void"}},
            {"name": "other", "type": {"kind": "string"}}
          ]
        },
        {
          "kind": "alias",
          "name": "Entries",
          "type": {"kind": "list", "type": {"kind": "string"}}
        }
      ],
      "routes": [
        {
          "name": "list_folder",
          "doc": "Lists a folder.",
          "arg": {"kind": "ref", "name": "ListArg"},
          "result": {"kind": "ref", "name": "Entries"},
          "error": {"kind": "ref", "name": "ListError"}
        }
      ]
    },
    {
      "name": "common",
      "types": [
        {
          "kind": "struct",
          "name": "Node",
          "fields": [
            {"name": "children", "type": {"kind": "list", "type": {"kind": "ref", "name": "Node"}}},
            {"name": "arg", "type": {"kind": "ref", "name": "ListArg"}}
          ]
        }
      ]
    }
  ]
}`

func TestDecodeAPI(t *testing.T) {
	t.Parallel()

	api, err := swaggen.DecodeAPI([]byte(filesIR))
	require.NoError(t, err)
	assert.Equal(t, "0.5", api.Version)

	files, ok := api.Namespace("files")
	require.True(t, ok)
	assert.Equal(t, "File operations.", files.Doc)
	require.Len(t, files.Routes, 1)
	require.Len(t, files.Types(), 3)

	rt := files.Routes[0]
	assert.Equal(t, "list_folder", rt.Name)

	arg, ok := rt.ArgType.(*swaggen.Struct)
	require.True(t, ok)
	assert.Equal(t, "ListArg", arg.Name)
	require.Len(t, arg.Fields, 2)
	assert.Equal(t, swaggen.String, arg.Fields[0].Type)

	limit, ok := arg.Fields[1].Type.(*swaggen.Nullable)
	require.True(t, ok)
	assert.Equal(t, swaggen.Numeric, limit.Inner)

	result, ok := rt.ResultType.(*swaggen.Alias)
	require.True(t, ok)
	list, ok := result.Inner.(*swaggen.List)
	require.True(t, ok)
	assert.Equal(t, swaggen.String, list.Elem)

	errType, ok := rt.ErrorType.(*swaggen.Union)
	require.True(t, ok)
	assert.Len(t, errType.Variants, 2)

	// Cross-namespace reference resolves to the same declaration.
	common, ok := api.Namespace("common")
	require.True(t, ok)
	node, ok := common.Types()[0].(*swaggen.Struct)
	require.True(t, ok)
	assert.Same(t, rt.ArgType, node.Fields[1].Type)
	assert.Same(t, node, node.Fields[0].Type.(*swaggen.List).Elem, "self reference is cyclic")

	imports := common.ImportedNamespaces()
	require.Len(t, imports, 1)
	assert.Equal(t, "files", imports[0].Name)
}

func TestDecodeAPI_generates(t *testing.T) {
	t.Parallel()

	api, err := swaggen.DecodeAPI([]byte(filesIR))
	require.NoError(t, err)

	doc, err := swaggen.New(swaggen.WithTitle("Files")).GenerateNamespace(api, "files")
	require.NoError(t, err)

	item, ok := doc.Paths.Get("/files/list_folder")
	require.True(t, ok)
	ok200, _ := item.Post.Responses.Get("200")
	assert.Equal(t, "array", ok200.Schema.Type, "alias results stay inline")
}

func TestDecodeAPI_errors(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"invalid json":     `{`,
		"unknown decl":     `{"version":"1","namespaces":[{"name":"n","types":[{"kind":"enum","name":"E"}]}]}`,
		"unknown expr":     `{"version":"1","namespaces":[{"name":"n","routes":[{"name":"r","arg":{"kind":"mystery"},"result":{"kind":"void"},"error":{"kind":"void"}}]}]}`,
		"missing route ty": `{"version":"1","namespaces":[{"name":"n","routes":[{"name":"r","result":{"kind":"void"},"error":{"kind":"void"}}]}]}`,
		"alias no type":    `{"version":"1","namespaces":[{"name":"n","types":[{"kind":"alias","name":"A"}]}]}`,
		"field no type":    `{"version":"1","namespaces":[{"name":"n","types":[{"kind":"struct","name":"S","fields":[{"name":"f"}]}]}]}`,
	}

	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := swaggen.DecodeAPI([]byte(raw))
			assert.Error(t, err)
		})
	}
}

func TestDecodeAPI_duplicate_name(t *testing.T) {
	t.Parallel()

	raw := `{"version":"1","namespaces":[
		{"name":"a","types":[{"kind":"struct","name":"Dup"}]},
		{"name":"b","types":[{"kind":"struct","name":"Dup"}]}]}`

	_, err := swaggen.DecodeAPI([]byte(raw))
	var collision *swaggen.TypeNameCollisionError
	require.ErrorAs(t, err, &collision)
	assert.Equal(t, "Dup", collision.Name)
}

func TestDecodeAPI_unresolved_ref(t *testing.T) {
	t.Parallel()

	raw := `{"version":"1","namespaces":[{"name":"n","routes":[
		{"name":"r","arg":{"kind":"ref","name":"Ghost"},"result":{"kind":"void"},"error":{"kind":"void"}}]}]}`

	_, err := swaggen.DecodeAPI([]byte(raw))
	var unresolved *swaggen.UnresolvedRefError
	require.ErrorAs(t, err, &unresolved)
	assert.Equal(t, "Ghost", unresolved.Name)
}

func TestLoadAPI(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "api.ir.json")
	require.NoError(t, os.WriteFile(path, []byte(filesIR), 0o600))

	api, err := swaggen.LoadAPI(path)
	require.NoError(t, err)
	_, ok := api.Namespace("files")
	assert.True(t, ok)

	_, err = swaggen.LoadAPI(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
