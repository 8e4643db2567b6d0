package stem

import (
	"context"

	"github.com/thehyve/omop-etl-wrapper/pkg/common/models"
	"github.com/thehyve/omop-etl-wrapper/pkg/schema"
	"gorm.io/gorm"
)

// Repository is a read-only view over the stem table of one execution
// context. The snapshot it returns is immutable for the duration of a
// mapping run.
type Repository struct {
	db    *gorm.DB
	table string
}

func NewRepository(db *gorm.DB, schemas schema.Map) (*Repository, error) {
	table, err := schemas.Qualify(schema.RoleStem, "stem_table")
	if err != nil {
		return nil, err
	}
	return &Repository{db: db, table: table}, nil
}

// Snapshot fetches every stem record, ordered by id so repeated runs see the
// records in the same order.
func (r *Repository) Snapshot(ctx context.Context) ([]models.StemRecord, error) {
	var records []models.StemRecord
	err := r.db.WithContext(ctx).Table(r.table).Order("id").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Count returns the current stem table size without materializing records.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Table(r.table).Count(&count).Error
	return count, err
}
