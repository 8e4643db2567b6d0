package vocabulary

import (
	"context"
	"errors"

	"github.com/thehyve/omop-etl-wrapper/pkg/common/models"
	"github.com/thehyve/omop-etl-wrapper/pkg/schema"
	"gorm.io/gorm"
)

// Store resolves domains against the concept table in the vocabulary schema
// of the current execution context.
type Store struct {
	db    *gorm.DB
	table string
}

func NewStore(db *gorm.DB, schemas schema.Map) (*Store, error) {
	table, err := schemas.Qualify(schema.RoleVocab, "concept")
	if err != nil {
		return nil, err
	}
	return &Store{db: db, table: table}, nil
}

func (s *Store) DomainOf(ctx context.Context, conceptID int64) (models.Domain, bool, error) {
	var concept models.Concept
	err := s.db.WithContext(ctx).
		Table(s.table).
		Select("concept_id", "domain_id").
		Where("concept_id = ?", conceptID).
		First(&concept).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return concept.DomainID, true, nil
}

// Lookup returns the full concept row, for callers that need pass-through
// attributes beyond the domain.
func (s *Store) Lookup(ctx context.Context, conceptID int64) (models.Concept, bool, error) {
	var concept models.Concept
	err := s.db.WithContext(ctx).
		Table(s.table).
		Where("concept_id = ?", conceptID).
		First(&concept).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Concept{}, false, nil
	}
	if err != nil {
		return models.Concept{}, false, err
	}
	return concept, true, nil
}
