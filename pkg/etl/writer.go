package etl

import (
	"context"
	"fmt"

	"github.com/thehyve/omop-etl-wrapper/pkg/mapping"
	"github.com/thehyve/omop-etl-wrapper/pkg/schema"
	"gorm.io/gorm"
)

const insertBatchSize = 1000

// Writer persists destination records. Append-only: the engine never updates
// destination rows in place. Clearing before a re-run is the caller's call,
// which is why it is a separate operation.
type Writer interface {
	Append(ctx context.Context, table string, records []mapping.DestinationRecord) error
	Clear(ctx context.Context, table string) error
}

// GormWriter inserts destination records into the resolved cdm schema.
type GormWriter struct {
	db      *gorm.DB
	schemas schema.Map
}

func NewGormWriter(db *gorm.DB, schemas schema.Map) *GormWriter {
	return &GormWriter{db: db, schemas: schemas}
}

func (w *GormWriter) Append(ctx context.Context, table string, records []mapping.DestinationRecord) error {
	if len(records) == 0 {
		return nil
	}
	qualified, err := w.schemas.Qualify(schema.RoleCDM, table)
	if err != nil {
		return err
	}

	for start := 0; start < len(records); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(records) {
			end = len(records)
		}
		rows := make([]map[string]interface{}, 0, end-start)
		for _, record := range records[start:end] {
			rows = append(rows, record.AsMap())
		}
		if err := w.db.WithContext(ctx).Table(qualified).Create(rows).Error; err != nil {
			return fmt.Errorf("append to %s: %w", qualified, err)
		}
	}
	return nil
}

func (w *GormWriter) Clear(ctx context.Context, table string) error {
	qualified, err := w.schemas.Qualify(schema.RoleCDM, table)
	if err != nil {
		return err
	}
	return w.db.WithContext(ctx).Exec("DELETE FROM " + qualified).Error
}
