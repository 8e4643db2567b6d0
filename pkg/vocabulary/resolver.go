// Package vocabulary provides read-only concept lookups. The primary
// concept's domain decides which clinical data table a stem record is routed
// into; a concept absent from the vocabulary is not an error, it simply
// matches no domain.
package vocabulary

import (
	"context"

	"github.com/thehyve/omop-etl-wrapper/pkg/common/models"
)

// Resolver resolves a concept identifier to its domain classification.
// Implementations are read-only. The boolean is false when the identifier has
// no vocabulary entry.
type Resolver interface {
	DomainOf(ctx context.Context, conceptID int64) (models.Domain, bool, error)
}
