package ioimport_test

import (
	"testing"
	"time"

	"github.com/onestep/osimport/internal/ioimport"
	"github.com/onestep/osimport/internal/iotesting"
	"github.com/onestep/osimport/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedGroup(t *testing.T, db *gorm.DB) (*schema.ResearchGroup, *schema.Person) {
	t.Helper()

	campus := &schema.Campus{Name: "Serra", Code: "SER"}
	require.NoError(t, db.Create(campus).Error)
	area := &schema.KnowledgeArea{Name: "Engenharia Elétrica"}
	require.NoError(t, db.Create(area).Error)

	group := &schema.ResearchGroup{
		UUID:            "00000000-0000-0000-0000-000000000001",
		Name:            "Robótica e Automação",
		ShortName:       "ROB-SER",
		CampusID:        campus.ID,
		KnowledgeAreaID: area.ID,
	}
	require.NoError(t, db.Create(group).Error)

	person := &schema.Person{
		UUID:     "00000000-0000-0000-0000-000000000002",
		FullName: "Ana Lima",
	}
	require.NoError(t, db.Create(person).Error)

	return group, person
}

func TestAssignLeaderIdempotent(t *testing.T) {
	db := iotesting.OpenTestDB(t)
	group, person := seedGroup(t, db)
	start := time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)

	t1, err := ioimport.AssignLeader(db, group, person, start)
	require.NoError(t, err)
	assert.True(t, t1.IsActive)

	t2, err := ioimport.AssignLeader(db, group, person, start.AddDate(0, 1, 0))
	require.NoError(t, err)
	assert.Equal(t, t1.ID, t2.ID)

	var n int64
	require.NoError(t, db.Model(&schema.Leadership{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestReleaseLeader(t *testing.T) {
	db := iotesting.OpenTestDB(t)
	group, person := seedGroup(t, db)
	start := time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)

	_, err := ioimport.AssignLeader(db, group, person, start)
	require.NoError(t, err)

	end := start.AddDate(1, 0, 0)
	require.NoError(t, ioimport.ReleaseLeader(db, group, person, end))

	var tenure schema.Leadership
	require.NoError(t, db.First(&tenure).Error)
	assert.False(t, tenure.IsActive)
	require.NotNil(t, tenure.EndDate)

	// A second release finds no active tenure and does nothing.
	require.NoError(t, ioimport.ReleaseLeader(db, group, person, end))

	var n int64
	require.NoError(t, db.Model(&schema.Leadership{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestReleaseLeaderBeforeStart(t *testing.T) {
	db := iotesting.OpenTestDB(t)
	group, person := seedGroup(t, db)
	start := time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)

	_, err := ioimport.AssignLeader(db, group, person, start)
	require.NoError(t, err)

	err = ioimport.ReleaseLeader(db, group, person, start.AddDate(0, 0, -1))
	assert.Error(t, err)

	// The tenure stays active.
	var tenure schema.Leadership
	require.NoError(t, db.First(&tenure).Error)
	assert.True(t, tenure.IsActive)
}

func TestReleaseNewLeaderAfterReassign(t *testing.T) {
	db := iotesting.OpenTestDB(t)
	group, person := seedGroup(t, db)
	start := time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)

	_, err := ioimport.AssignLeader(db, group, person, start)
	require.NoError(t, err)
	require.NoError(t,
		ioimport.ReleaseLeader(db, group, person, start.AddDate(0, 6, 0)))

	// A release-then-assign cycle yields a second, separate tenure.
	t2, err := ioimport.AssignLeader(db, group, person, start.AddDate(1, 0, 0))
	require.NoError(t, err)
	assert.True(t, t2.IsActive)

	var n int64
	require.NoError(t, db.Model(&schema.Leadership{}).Count(&n).Error)
	assert.Equal(t, int64(2), n)
}
