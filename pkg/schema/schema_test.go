package schema_test

import (
	"testing"

	"github.com/onestep/osimport/pkg/schema"
	"github.com/stretchr/testify/assert"
)

func TestAllModels(t *testing.T) {
	models := schema.AllModels()
	assert.Len(t, models, 8)
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "campuses", schema.Campus{}.TableName())
	assert.Equal(t, "knowledge_areas", schema.KnowledgeArea{}.TableName())
	assert.Equal(t, "people", schema.Person{}.TableName())
	assert.Equal(t, "person_emails", schema.PersonEmail{}.TableName())
	assert.Equal(t, "sponsors", schema.Sponsor{}.TableName())
	assert.Equal(t, "research_groups", schema.ResearchGroup{}.TableName())
	assert.Equal(t, "leaderships", schema.Leadership{}.TableName())
	assert.Equal(t, "import_runs", schema.ImportRun{}.TableName())
}
