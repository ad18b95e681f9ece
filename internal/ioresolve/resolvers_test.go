package ioresolve

import (
	"os"
	"testing"

	"github.com/onestep/osimport/internal/iotesting"
	"github.com/onestep/osimport/pkg/rowcheck"
	"github.com/onestep/osimport/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestDeriveCode(t *testing.T) {
	tests := []struct {
		name, code string
	}{
		{"Vitória", "VIT"},
		{"Colatina", "COL"},
		{"Guarapari", "GUA"},
		{"Serra", "SER"},
		{"São Mateus", "SAO"},
		{"  - ", "X"},
	}
	for _, v := range tests {
		assert.Equal(t, v.code, deriveCode(v.name), v.name)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"Engenharia  Civil", "Engenharia Civil"},
		{"  Vitória ", "Vitória"},
		{"São\tMateus", "São Mateus"},
		{"", ""},
		{"   ", ""},
	}
	for _, v := range tests {
		assert.Equal(t, v.out, Normalize(v.in), v.in)
	}
}

func TestResolveCollapsesWhitespace(t *testing.T) {
	db := iotesting.OpenTestDB(t)
	r := New()

	ka1, err := r.KnowledgeArea(db, "Engenharia Civil")
	require.NoError(t, err)
	assert.Equal(t, "Engenharia Civil", ka1.Name)

	r.Commit()

	// Internal whitespace is not identity; the doubled space resolves
	// to the same record.
	ka2, err := r.KnowledgeArea(db, "Engenharia  Civil")
	require.NoError(t, err)
	assert.Equal(t, ka1.ID, ka2.ID)

	var n int64
	require.NoError(t, db.Model(&schema.KnowledgeArea{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)

	c1, err := r.Campus(db, "  Vitória ")
	require.NoError(t, err)
	assert.Equal(t, "Vitória", c1.Name)
	c2, err := r.Campus(db, "Vitória")
	require.NoError(t, err)
	assert.Equal(t, c1.ID, c2.ID)

	p1, err := r.Person(db, rowcheck.Member{Name: "Maria  de  Souza"})
	require.NoError(t, err)
	assert.Equal(t, "Maria De Souza", p1.FullName)
	p2, err := r.Person(db, rowcheck.Member{Name: "Maria de Souza"})
	require.NoError(t, err)
	assert.Equal(t, p1.ID, p2.ID)
}

func TestCampusGetOrCreate(t *testing.T) {
	db := iotesting.OpenTestDB(t)
	r := New()

	c1, err := r.Campus(db, "Vitória")
	require.NoError(t, err)
	assert.Equal(t, "VIT", c1.Code)

	r.Commit()

	// Case-insensitive: same campus, no second record.
	c2, err := r.Campus(db, "VITÓRIA")
	require.NoError(t, err)
	assert.Equal(t, c1.ID, c2.ID)

	var n int64
	require.NoError(t, db.Model(&schema.Campus{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestCampusCodeCollision(t *testing.T) {
	db := iotesting.OpenTestDB(t)
	r := New()

	c1, err := r.Campus(db, "Vitória")
	require.NoError(t, err)
	c2, err := r.Campus(db, "Vitoria Nova")
	require.NoError(t, err)

	assert.Equal(t, "VIT", c1.Code)
	assert.Equal(t, "VIT2", c2.Code)
}

func TestKnowledgeAreaConflictRetry(t *testing.T) {
	db := iotesting.OpenTestDB(t)

	// Simulate a concurrent resolver winning the insert between the
	// lookup and this resolver's create.
	var winner schema.KnowledgeArea
	r := New()
	r.beforeCreate = func(kind string) {
		winner = schema.KnowledgeArea{Name: "Computing"}
		require.NoError(t, db.Create(&winner).Error)
	}

	ka, err := r.KnowledgeArea(db, "Computing")
	require.NoError(t, err)
	assert.Equal(t, winner.ID, ka.ID)

	var n int64
	require.NoError(t, db.Model(&schema.KnowledgeArea{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestPersonByEmail(t *testing.T) {
	db := iotesting.OpenTestDB(t)
	r := New()

	p1, err := r.Person(db, rowcheck.Member{
		Name: "JOÃO DA SILVA", Email: "joao@example.org",
	})
	require.NoError(t, err)
	assert.Equal(t, "João Da Silva", p1.FullName)
	assert.NotEmpty(t, p1.UUID)

	r.Commit()

	// Same email is the same person; the display name refreshes.
	p2, err := r.Person(db, rowcheck.Member{
		Name: "João Carlos da Silva", Email: "Joao@Example.org",
	})
	require.NoError(t, err)
	assert.Equal(t, p1.ID, p2.ID)
	assert.Equal(t, "João Carlos Da Silva", p2.FullName)

	var people, emails int64
	require.NoError(t, db.Model(&schema.Person{}).Count(&people).Error)
	require.NoError(t, db.Model(&schema.PersonEmail{}).Count(&emails).Error)
	assert.Equal(t, int64(1), people)
	assert.Equal(t, int64(1), emails)
}

func TestPersonByNameFallback(t *testing.T) {
	db := iotesting.OpenTestDB(t)
	r := New()

	p1, err := r.Person(db, rowcheck.Member{Name: "Maria Souza"})
	require.NoError(t, err)

	r.Commit()

	p2, err := r.Person(db, rowcheck.Member{Name: "MARIA SOUZA"})
	require.NoError(t, err)
	assert.Equal(t, p1.ID, p2.ID)

	var n int64
	require.NoError(t, db.Model(&schema.Person{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestCacheDiscard(t *testing.T) {
	db := iotesting.OpenTestDB(t)
	r := New()

	// A rolled-back row must not leave its entities in the cache.
	err := db.Transaction(func(tx *gorm.DB) error {
		_, err := r.Campus(tx, "Serra")
		require.NoError(t, err)
		return gorm.ErrInvalidData
	})
	require.Error(t, err)
	r.Discard()

	c, err := r.Campus(db, "Serra")
	require.NoError(t, err)
	assert.NotZero(t, c.ID)

	var n int64
	require.NoError(t, db.Model(&schema.Campus{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

// TestConcurrentResolution exercises the create race against a real
// PostgreSQL server. It needs OSIMPORT_TEST_DATABASE_URL and is skipped
// otherwise.
func TestConcurrentResolution(t *testing.T) {
	dsn := os.Getenv("OSIMPORT_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("OSIMPORT_TEST_DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrator().DropTable(schema.AllModels()...))
	require.NoError(t, schema.Migrate(db))

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			_, err := New().Campus(db, "Cariacica")
			return err
		})
	}
	require.NoError(t, g.Wait())

	var n int64
	require.NoError(t, db.Model(&schema.Campus{}).
		Where("LOWER(name) = ?", "cariacica").Count(&n).Error)
	assert.Equal(t, int64(1), n)
}
