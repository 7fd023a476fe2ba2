package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"

	"github.com/jsonapi-tools/wiremap/internal/flags"
)

func TestInspectCmdPrintsGraph(t *testing.T) {
	dir := t.TempDir()
	withSchemaFile(t, dir)

	doc := writeFile(t, dir, "doc.json", `{
		"data": [{
			"type": "articles", "id": "1",
			"attributes": {"title": "Intro"},
			"relationships": {"author": {"data": {"type": "people", "id": "9"}}}
		}],
		"links": {"next": "/articles?page=2"}
	}`)

	cmd := NewInspectCmd(hclog.NewNullLogger())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{doc})

	require.NoError(t, cmd.Execute())

	got := out.String()
	require.Contains(t, got, "articles/1")
	require.Contains(t, got, "title = Intro")
	require.Contains(t, got, "author -> people/9")
	require.Contains(t, got, "people/9  [placeholder]")
	require.Contains(t, got, "2 resource(s), 1 primary, shape=many")
	require.Contains(t, got, "next: /articles?page=2")
}

func TestInspectCmdWithoutLinkage(t *testing.T) {
	dir := t.TempDir()
	withSchemaFile(t, dir)

	doc := writeFile(t, dir, "doc.json", `{
		"data": {
			"type": "articles", "id": "1",
			"relationships": {"author": {"data": {"type": "people", "id": "9"}}}
		}
	}`)

	cmd := NewInspectCmd(hclog.NewNullLogger())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{doc, "--linkage=false"})

	require.NoError(t, cmd.Execute())
	require.NotContains(t, out.String(), "author ->")
}

func TestInspectCmdErrorDocument(t *testing.T) {
	dir := t.TempDir()
	withSchemaFile(t, dir)

	doc := writeFile(t, dir, "doc.json", `{"errors": [{"id": 42, "title": "Not allowed"}]}`)

	cmd := NewInspectCmd(hclog.NewNullLogger())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{doc})

	err := cmd.Execute()
	require.Error(t, err)
	require.ErrorContains(t, err, "server error 42: Not allowed")
}

func TestInitCmdCreatesSchema(t *testing.T) {
	dir := t.TempDir()

	prev := flags.SchemaFile
	flags.SchemaFile = filepath.Join(dir, ".wiremap.toml")
	t.Cleanup(func() { flags.SchemaFile = prev })

	cmd := NewInitCmd(hclog.NewNullLogger())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	require.FileExists(t, flags.SchemaFile)
	require.Contains(t, out.String(), "Created")

	// Second init refuses to overwrite.
	again := NewInitCmd(hclog.NewNullLogger())
	again.SetOut(&bytes.Buffer{})
	again.SetErr(&bytes.Buffer{})
	again.SetArgs([]string{})
	require.Error(t, again.Execute())
}
