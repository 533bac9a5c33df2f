package store

import (
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/hireloop-ai/hireloop/internal/generator"
	"github.com/hireloop-ai/hireloop/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.Role{}, &models.Candidate{}))

	return New(gdb)
}

func createRole(t *testing.T, s *Store, title string, created time.Time, candidates []models.Candidate) *models.Role {
	t.Helper()

	role := &models.Role{Title: title, Description: "desc for " + title, DateCreated: created}
	require.NoError(t, s.CreateRoleWithCandidates(role, candidates))
	require.NotZero(t, role.ID)
	return role
}

func TestCreateRoleWithCandidatesPersistsBatch(t *testing.T) {
	s := newTestStore(t)
	gen := generator.New(rand.New(rand.NewSource(7)))

	role := createRole(t, s, "Backend Engineer", time.Now().UTC(), gen.Generate("Backend Engineer", generator.DefaultCount))

	candidates, err := s.ListCandidatesForRole(role.ID)
	require.NoError(t, err)
	require.Len(t, candidates, generator.DefaultCount)
	for _, c := range candidates {
		assert.Equal(t, role.ID, c.RoleID)
	}
}

func TestGetRole(t *testing.T) {
	s := newTestStore(t)
	role := createRole(t, s, "SRE", time.Now().UTC(), nil)

	got, err := s.GetRole(role.ID)
	require.NoError(t, err)
	assert.Equal(t, "SRE", got.Title)

	_, err = s.GetRole(role.ID + 100)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListRolesWithCountsOrderAndCounts(t *testing.T) {
	s := newTestStore(t)
	gen := generator.New(rand.New(rand.NewSource(9)))
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	createRole(t, s, "Oldest", base, gen.Generate("Oldest", 3))
	createRole(t, s, "Middle", base.Add(time.Hour), nil)
	createRole(t, s, "Newest", base.Add(2*time.Hour), gen.Generate("Newest", 10))

	rows, err := s.ListRolesWithCounts()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Newest", rows[0].Title)
	assert.Equal(t, "Middle", rows[1].Title)
	assert.Equal(t, "Oldest", rows[2].Title)

	assert.EqualValues(t, 10, rows[0].CandidateCount)
	assert.EqualValues(t, 0, rows[1].CandidateCount)
	assert.EqualValues(t, 3, rows[2].CandidateCount)
}

func TestListCandidatesForRoleSortedByFitScore(t *testing.T) {
	s := newTestStore(t)
	gen := generator.New(rand.New(rand.NewSource(11)))

	role := createRole(t, s, "Data Engineer", time.Now().UTC(), gen.Generate("Data Engineer", 25))
	other := createRole(t, s, "Designer", time.Now().UTC(), gen.Generate("Designer", 5))

	candidates, err := s.ListCandidatesForRole(role.ID)
	require.NoError(t, err)
	require.Len(t, candidates, 25)

	for i := 1; i < len(candidates); i++ {
		assert.GreaterOrEqual(t, candidates[i-1].FitScore, candidates[i].FitScore)
	}
	for _, c := range candidates {
		assert.NotEqual(t, other.ID, c.RoleID)
	}
}
