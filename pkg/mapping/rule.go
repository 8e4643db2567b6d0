// Package mapping routes stem records into their destination clinical data
// tables. A Rule is declarative data describing one destination table's
// column contract; the Engine is the generic evaluator and never needs to
// change when a rule is added.
package mapping

import (
	"fmt"

	"github.com/thehyve/omop-etl-wrapper/pkg/common/models"
	"github.com/thehyve/omop-etl-wrapper/pkg/stem"
)

type ExprKind string

const (
	// ExprCopy passes the stem value through unchanged, including null.
	ExprCopy ExprKind = "copy"
	// ExprCoalesce substitutes a declared default when the stem value is
	// null. Used for concept-identifier columns, conventionally default 0.
	ExprCoalesce ExprKind = "coalesce"
	// ExprFixed emits a constant regardless of the record, e.g. the type
	// concept marking survey provenance.
	ExprFixed ExprKind = "fixed"
)

// Expr is one destination-column source expression, a tagged variant rather
// than an interface hierarchy so rules stay plain data.
type Expr struct {
	Kind    ExprKind
	Field   string
	Default int64
	Value   int64
}

func Copy(field string) Expr {
	return Expr{Kind: ExprCopy, Field: field}
}

func Coalesce(field string, def int64) Expr {
	return Expr{Kind: ExprCoalesce, Field: field, Default: def}
}

func Fixed(value int64) Expr {
	return Expr{Kind: ExprFixed, Value: value}
}

// ColumnMapping binds one destination column to its source expression.
type ColumnMapping struct {
	Column string
	Source Expr
}

// Rule is the immutable mapping specification for one destination table.
type Rule struct {
	Table   string
	Domain  models.Domain
	Columns []ColumnMapping
}

// Validate checks the rule's static shape: non-empty table and domain, no
// duplicate destination columns, and every referenced source field present on
// the stem record. This is the only place static validation happens, before
// any data flows.
func (r Rule) Validate() error {
	if r.Table == "" {
		return fmt.Errorf("mapping rule without a destination table")
	}
	if r.Domain == "" {
		return fmt.Errorf("rule %s: target domain missing", r.Table)
	}
	if len(r.Columns) == 0 {
		return fmt.Errorf("rule %s: no destination columns declared", r.Table)
	}

	seen := make(map[string]struct{}, len(r.Columns))
	for _, col := range r.Columns {
		if col.Column == "" {
			return fmt.Errorf("rule %s: destination column without a name", r.Table)
		}
		if _, dup := seen[col.Column]; dup {
			return fmt.Errorf("rule %s: duplicate destination column %q", r.Table, col.Column)
		}
		seen[col.Column] = struct{}{}

		switch col.Source.Kind {
		case ExprCopy, ExprCoalesce:
			if !stem.HasField(col.Source.Field) {
				return fmt.Errorf("rule %s: column %q references unknown stem field %q",
					r.Table, col.Column, col.Source.Field)
			}
		case ExprFixed:
			// nothing to resolve
		default:
			return fmt.Errorf("rule %s: column %q has unsupported expression kind %q",
				r.Table, col.Column, col.Source.Kind)
		}
	}
	return nil
}

// ColumnNames returns the destination columns in declared order.
func (r Rule) ColumnNames() []string {
	names := make([]string, len(r.Columns))
	for i, col := range r.Columns {
		names[i] = col.Column
	}
	return names
}
