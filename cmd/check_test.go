package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"

	"github.com/jsonapi-tools/wiremap/internal/flags"
)

const testSchema = `
[[types]]
type = "articles"

  [[types.attributes]]
  name = "title"
  kind = "string"

  [[types.relationships]]
  name = "author"
  type = "people"

[[types]]
type = "people"

  [[types.attributes]]
  name = "name"
  kind = "string"
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// withSchemaFile points the global schema flag at a temp schema for the
// duration of a test.
func withSchemaFile(t *testing.T, dir string) {
	t.Helper()

	prev := flags.SchemaFile
	flags.SchemaFile = writeFile(t, dir, "schema.toml", testSchema)
	t.Cleanup(func() { flags.SchemaFile = prev })
}

func TestCheckCmdValidDocument(t *testing.T) {
	dir := t.TempDir()
	withSchemaFile(t, dir)

	doc := writeFile(t, dir, "doc.json", `{
		"data": {
			"type": "articles", "id": "1",
			"attributes": {"title": "Intro"},
			"relationships": {"author": {"data": {"type": "people", "id": "9"}}}
		}
	}`)

	cmd := NewCheckCmd(hclog.NewNullLogger())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{doc})

	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "OK: 2 resource(s), 1 primary")
}

func TestCheckCmdStructuralProblems(t *testing.T) {
	dir := t.TempDir()
	withSchemaFile(t, dir)

	doc := writeFile(t, dir, "doc.json", `{"data": {"id": "1"}}`)

	cmd := NewCheckCmd(hclog.NewNullLogger())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{doc})

	err := cmd.Execute()
	require.Error(t, err)
	require.ErrorContains(t, err, "structural problem")
}

func TestCheckCmdUnknownType(t *testing.T) {
	dir := t.TempDir()
	withSchemaFile(t, dir)

	doc := writeFile(t, dir, "doc.json", `{"data": {"type": "reviews", "id": "1"}}`)

	cmd := NewCheckCmd(hclog.NewNullLogger())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{doc})

	err := cmd.Execute()
	require.Error(t, err)
	require.ErrorContains(t, err, "does not decode against the schema")
}

func TestCheckCmdMissingDocument(t *testing.T) {
	dir := t.TempDir()
	withSchemaFile(t, dir)

	cmd := NewCheckCmd(hclog.NewNullLogger())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(dir, "missing.json")})

	require.Error(t, cmd.Execute())
}
