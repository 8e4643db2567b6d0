package mapping

import (
	"context"

	"github.com/thehyve/omop-etl-wrapper/pkg/common/models"
	"github.com/thehyve/omop-etl-wrapper/pkg/stem"
	"github.com/thehyve/omop-etl-wrapper/pkg/vocabulary"
)

// DestinationRecord is one fully shaped destination row. Columns carry the
// rule's declared order; Values align index-for-index and may hold nil where
// the source was null and no default applies.
type DestinationRecord struct {
	Table   string
	Columns []string
	Values  []interface{}
}

// AsMap flattens the record for map-based inserts.
func (d DestinationRecord) AsMap() map[string]interface{} {
	row := make(map[string]interface{}, len(d.Columns))
	for i, col := range d.Columns {
		row[col] = d.Values[i]
	}
	return row
}

// Result is the outcome of applying one rule to a stem snapshot. Exclusions
// are counted, not silently dropped, so data-quality reporting stays
// possible downstream.
type Result struct {
	Table       string
	Domain      models.Domain
	Records     []DestinationRecord
	Mapped      int
	Unmapped    int // concept id missing or absent from the vocabulary
	OtherDomain int // concept resolved to a different domain
}

// Engine joins stem records to their vocabulary classification and applies a
// mapping rule to the records that belong to the rule's domain. It is a pure
// transformation: same inputs, same output, no retries, no hidden state.
type Engine struct {
	resolver vocabulary.Resolver
}

func NewEngine(resolver vocabulary.Resolver) *Engine {
	return &Engine{resolver: resolver}
}

// Apply produces one destination record per stem record whose primary
// concept resolves to the rule's domain. Records that do not resolve, or
// resolve elsewhere, are excluded and counted; they are never an error.
func (e *Engine) Apply(ctx context.Context, rule Rule, records []models.StemRecord) (Result, error) {
	result := Result{Table: rule.Table, Domain: rule.Domain}

	columns := rule.ColumnNames()
	for _, record := range records {
		if record.ConceptID == nil {
			result.Unmapped++
			continue
		}
		domain, found, err := e.resolver.DomainOf(ctx, *record.ConceptID)
		if err != nil {
			return Result{}, err
		}
		if !found {
			result.Unmapped++
			continue
		}
		if domain != rule.Domain {
			result.OtherDomain++
			continue
		}

		values := make([]interface{}, len(rule.Columns))
		for i, col := range rule.Columns {
			values[i] = evaluate(col.Source, record)
		}
		result.Records = append(result.Records, DestinationRecord{
			Table:   rule.Table,
			Columns: columns,
			Values:  values,
		})
		result.Mapped++
	}

	return result, nil
}

func evaluate(expr Expr, record models.StemRecord) interface{} {
	switch expr.Kind {
	case ExprFixed:
		return expr.Value
	case ExprCoalesce:
		value, _ := stem.Value(record, expr.Field)
		if value == nil {
			return expr.Default
		}
		return value
	default:
		value, _ := stem.Value(record, expr.Field)
		return value
	}
}
