package ioflows_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/onestep/osimport/internal/ioflows"
	"github.com/onestep/osimport/pkg/flows"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flows.yaml")

	all, err := ioflows.Load(path)
	require.NoError(t, err)

	assert.Contains(t, all, "research_groups")
	assert.Contains(t, all, "sponsors")
}

func TestLoadOverride(t *testing.T) {
	yml := `flows:
  - name: research_groups
    columns:
      name: "Nome do Grupo"
      campus: "Campus"
    required:
      - name
      - campus
      - knowledge_area
    members: leaders
`
	path := writeFlows(t, yml)

	all, err := ioflows.Load(path)
	require.NoError(t, err)

	f := all["research_groups"]
	assert.Equal(t, "Nome do Grupo", f.Header(flows.ColName))
	assert.Equal(t, "knowledge_area", f.Header(flows.ColKnowledgeArea))
}

func TestLoadNewFlow(t *testing.T) {
	yml := `flows:
  - name: partners
    required:
      - name
    email:
      - contact_email
`
	path := writeFlows(t, yml)

	all, err := ioflows.Load(path)
	require.NoError(t, err)

	assert.Contains(t, all, "partners")
	assert.Contains(t, all, "research_groups")
}

func TestLoadInvalidFlow(t *testing.T) {
	yml := `flows:
  - name: broken
    required:
      - no_such_column
`
	path := writeFlows(t, yml)

	_, err := ioflows.Load(path)
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeFlows(t, "flows: [pipers\n")

	_, err := ioflows.Load(path)
	assert.Error(t, err)
}

func TestGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flows.yaml")

	f, err := ioflows.Get(path, "sponsors")
	require.NoError(t, err)
	assert.Equal(t, "sponsors", f.Name)

	_, err = ioflows.Get(path, "nope")
	assert.Error(t, err)
}

func writeFlows(t *testing.T, yml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flows.yaml")
	err := os.WriteFile(path, []byte(yml), 0644)
	require.NoError(t, err)
	return path
}
