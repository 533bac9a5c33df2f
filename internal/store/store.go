package store

import (
	"time"

	"github.com/hireloop-ai/hireloop/internal/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("role not found")

// Store provides the named storage operations over the roles and candidates
// tables.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// RoleWithCount is one row of the listing page: a role plus how many
// candidates were generated for it.
type RoleWithCount struct {
	ID             uint
	Title          string
	DateCreated    time.Time
	CandidateCount int64
}

// CreateRoleWithCandidates inserts the role and its candidate batch as one
// transaction. Either all rows persist or none do. The role's id is assigned
// by the insert and stamped onto every candidate before the batch insert.
func (s *Store) CreateRoleWithCandidates(role *models.Role, candidates []models.Candidate) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(role).Error; err != nil {
			return errors.Wrap(err, "insert role")
		}
		for i := range candidates {
			candidates[i].RoleID = role.ID
		}
		if len(candidates) == 0 {
			return nil
		}
		if err := tx.Create(&candidates).Error; err != nil {
			return errors.Wrap(err, "insert candidates")
		}
		return nil
	})
}

// ListRolesWithCounts returns every role with its candidate count, newest
// first.
func (s *Store) ListRolesWithCounts() ([]RoleWithCount, error) {
	var rows []RoleWithCount
	err := s.db.Model(&models.Role{}).
		Select("roles.id, roles.title, roles.date_created, COUNT(candidates.id) AS candidate_count").
		Joins("LEFT JOIN candidates ON candidates.role_id = roles.id").
		Group("roles.id, roles.title, roles.date_created").
		Order("roles.date_created DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "list roles")
	}
	return rows, nil
}

// GetRole returns the role with the given id, or ErrNotFound.
func (s *Store) GetRole(id uint) (*models.Role, error) {
	var role models.Role
	if err := s.db.First(&role, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrapf(err, "get role %d", id)
	}
	return &role, nil
}

// ListCandidatesForRole returns the role's candidates ordered by fit score
// descending, best match first.
func (s *Store) ListCandidatesForRole(roleID uint) ([]models.Candidate, error) {
	var candidates []models.Candidate
	err := s.db.
		Where("role_id = ?", roleID).
		Order("fit_score DESC").
		Find(&candidates).Error
	if err != nil {
		return nil, errors.Wrapf(err, "list candidates for role %d", roleID)
	}
	return candidates, nil
}
