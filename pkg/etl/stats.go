package etl

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/thehyve/omop-etl-wrapper/pkg/common/models"
	"github.com/thehyve/omop-etl-wrapper/pkg/schema"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StatsRecorder keeps an audit trail of mapping runs for data-quality
// reporting.
type StatsRecorder interface {
	Record(ctx context.Context, run models.MappingRun) error
}

type runModel struct {
	ID           uuid.UUID         `gorm:"column:id;type:uuid;primaryKey"`
	TargetTable  string            `gorm:"column:target_table;index"`
	Domain       string            `gorm:"column:domain"`
	Mapped       int               `gorm:"column:mapped"`
	Unmapped     int               `gorm:"column:unmapped"`
	OtherDomain  int               `gorm:"column:other_domain"`
	Status       string            `gorm:"column:status"`
	ErrorMessage string            `gorm:"column:error_message"`
	StartedAt    time.Time         `gorm:"column:started_at"`
	CompletedAt  *time.Time        `gorm:"column:completed_at"`
	Detail       datatypes.JSONMap `gorm:"column:detail;type:jsonb"`
}

// GormStats stores run summaries in a mapping_run table next to the
// destination tables.
type GormStats struct {
	db    *gorm.DB
	table string
}

func NewGormStats(db *gorm.DB, schemas schema.Map) (*GormStats, error) {
	table, err := schemas.Qualify(schema.RoleCDM, "mapping_run")
	if err != nil {
		return nil, err
	}
	return &GormStats{db: db, table: table}, nil
}

func (s *GormStats) EnsureTable() error {
	return s.db.Table(s.table).AutoMigrate(&runModel{})
}

func (s *GormStats) Record(ctx context.Context, run models.MappingRun) error {
	row := runModel{
		ID:           run.ID,
		TargetTable:  run.Table,
		Domain:       string(run.Domain),
		Mapped:       run.Mapped,
		Unmapped:     run.Unmapped,
		OtherDomain:  run.OtherDomain,
		Status:       run.Status,
		ErrorMessage: run.ErrorMsg,
		StartedAt:    run.StartedAt,
		CompletedAt:  run.CompletedAt,
		Detail: datatypes.JSONMap{
			"mapped":       run.Mapped,
			"unmapped":     run.Unmapped,
			"other_domain": run.OtherDomain,
		},
	}
	return s.db.WithContext(ctx).Table(s.table).Create(&row).Error
}
