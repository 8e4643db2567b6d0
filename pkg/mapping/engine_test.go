package mapping

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/thehyve/omop-etl-wrapper/pkg/common/models"
	"github.com/thehyve/omop-etl-wrapper/pkg/vocabulary"
)

const (
	procedureConcept = int64(4301351)
	conditionConcept = int64(201826)
	unknownConcept   = int64(999999)
)

func testResolver() vocabulary.Resolver {
	return vocabulary.NewSnapshot(
		models.Concept{ConceptID: procedureConcept, ConceptName: "Surgical procedure", DomainID: models.DomainProcedure},
		models.Concept{ConceptID: conditionConcept, ConceptName: "Type 2 diabetes mellitus", DomainID: models.DomainCondition},
	)
}

func procedureRule(t *testing.T) Rule {
	t.Helper()
	reg, err := NewRegistry(DefaultRules()...)
	if err != nil {
		t.Fatalf("default rules failed validation: %v", err)
	}
	rule, ok := reg.ByTable("procedure_occurrence")
	if !ok {
		t.Fatal("procedure_occurrence rule missing from defaults")
	}
	return rule
}

func stemProcedure() models.StemRecord {
	concept := procedureConcept
	quantity := 2.0
	return models.StemRecord{
		ID:            1,
		PersonID:      42,
		ConceptID:     &concept,
		StartDatetime: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Quantity:      &quantity,
	}
}

func TestApplyRoutesProcedureRecord(t *testing.T) {
	engine := NewEngine(testResolver())
	rule := procedureRule(t)

	result, err := engine.Apply(context.Background(), rule, []models.StemRecord{stemProcedure()})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if result.Mapped != 1 || len(result.Records) != 1 {
		t.Fatalf("expected one mapped record, got mapped=%d records=%d", result.Mapped, len(result.Records))
	}

	row := result.Records[0].AsMap()
	if got := row["procedure_concept_id"]; got != procedureConcept {
		t.Errorf("procedure_concept_id = %v, want %d", got, procedureConcept)
	}
	if got := row["quantity"]; got != 2.0 {
		t.Errorf("quantity = %v, want 2", got)
	}
	// null modifier coalesces to the unknown-concept sentinel
	if got := row["modifier_concept_id"]; got != int64(0) {
		t.Errorf("modifier_concept_id = %v, want 0", got)
	}
	if got := row["procedure_type_concept_id"]; got != TypeConceptSurvey {
		t.Errorf("procedure_type_concept_id = %v, want %d", got, TypeConceptSurvey)
	}
	if got := row["person_id"]; got != int64(42) {
		t.Errorf("person_id = %v, want 42", got)
	}
}

func TestApplyExcludesUnknownConcept(t *testing.T) {
	engine := NewEngine(testResolver())
	rule := procedureRule(t)

	record := stemProcedure()
	missing := unknownConcept
	record.ConceptID = &missing

	result, err := engine.Apply(context.Background(), rule, []models.StemRecord{record})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if len(result.Records) != 0 {
		t.Fatalf("expected no records for an unknown concept, got %d", len(result.Records))
	}
	if result.Unmapped != 1 {
		t.Errorf("unmapped = %d, want 1", result.Unmapped)
	}
}

func TestApplyExcludesNilConcept(t *testing.T) {
	engine := NewEngine(testResolver())
	rule := procedureRule(t)

	record := stemProcedure()
	record.ConceptID = nil

	result, err := engine.Apply(context.Background(), rule, []models.StemRecord{record})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if len(result.Records) != 0 || result.Unmapped != 1 {
		t.Fatalf("expected a single unmapped exclusion, got records=%d unmapped=%d",
			len(result.Records), result.Unmapped)
	}
}

func TestApplyRoutesByDomainOnly(t *testing.T) {
	engine := NewEngine(testResolver())

	reg, err := NewRegistry(DefaultRules()...)
	if err != nil {
		t.Fatalf("default rules failed validation: %v", err)
	}
	procRule, _ := reg.ByTable("procedure_occurrence")
	condRule, _ := reg.ByTable("condition_occurrence")

	concept := conditionConcept
	record := stemProcedure()
	record.ConceptID = &concept
	records := []models.StemRecord{record}

	procResult, err := engine.Apply(context.Background(), procRule, records)
	if err != nil {
		t.Fatalf("procedure apply failed: %v", err)
	}
	if len(procResult.Records) != 0 || procResult.OtherDomain != 1 {
		t.Fatalf("condition concept leaked into procedure output: records=%d otherDomain=%d",
			len(procResult.Records), procResult.OtherDomain)
	}

	condResult, err := engine.Apply(context.Background(), condRule, records)
	if err != nil {
		t.Fatalf("condition apply failed: %v", err)
	}
	if len(condResult.Records) != 1 {
		t.Fatalf("expected one condition record, got %d", len(condResult.Records))
	}
}

func TestApplyPassesNullsThrough(t *testing.T) {
	engine := NewEngine(testResolver())
	rule := procedureRule(t)

	record := stemProcedure()
	record.Quantity = nil
	record.SourceValue = nil

	result, err := engine.Apply(context.Background(), rule, []models.StemRecord{record})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	row := result.Records[0].AsMap()
	if row["quantity"] != nil {
		t.Errorf("quantity = %v, want nil pass-through", row["quantity"])
	}
	if row["procedure_source_value"] != nil {
		t.Errorf("procedure_source_value = %v, want nil pass-through", row["procedure_source_value"])
	}
}

func TestApplyIsDeterministic(t *testing.T) {
	engine := NewEngine(testResolver())
	rule := procedureRule(t)

	records := []models.StemRecord{stemProcedure(), stemProcedure()}

	first, err := engine.Apply(context.Background(), rule, records)
	if err != nil {
		t.Fatalf("first apply failed: %v", err)
	}
	second, err := engine.Apply(context.Background(), rule, records)
	if err != nil {
		t.Fatalf("second apply failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("expected identical results for identical inputs")
	}
}

func TestApplyOutputShapeMatchesRule(t *testing.T) {
	engine := NewEngine(testResolver())
	rule := procedureRule(t)

	result, err := engine.Apply(context.Background(), rule, []models.StemRecord{stemProcedure()})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	record := result.Records[0]
	if !reflect.DeepEqual(record.Columns, rule.ColumnNames()) {
		t.Fatalf("columns %v do not match rule order %v", record.Columns, rule.ColumnNames())
	}
	if len(record.Values) != len(record.Columns) {
		t.Fatalf("values length %d does not match columns %d", len(record.Values), len(record.Columns))
	}
}

func TestApplyCardinality(t *testing.T) {
	engine := NewEngine(testResolver())
	rule := procedureRule(t)

	procConcept := procedureConcept
	condConcept := conditionConcept
	missing := unknownConcept

	records := []models.StemRecord{
		{ID: 1, PersonID: 1, ConceptID: &procConcept, StartDatetime: time.Now().UTC()},
		{ID: 2, PersonID: 1, ConceptID: &procConcept, StartDatetime: time.Now().UTC()},
		{ID: 3, PersonID: 2, ConceptID: &condConcept, StartDatetime: time.Now().UTC()},
		{ID: 4, PersonID: 2, ConceptID: &missing, StartDatetime: time.Now().UTC()},
		{ID: 5, PersonID: 3, StartDatetime: time.Now().UTC()},
	}

	result, err := engine.Apply(context.Background(), rule, records)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if result.Mapped != 2 || len(result.Records) != 2 {
		t.Errorf("mapped = %d records = %d, want 2 each", result.Mapped, len(result.Records))
	}
	if result.OtherDomain != 1 {
		t.Errorf("otherDomain = %d, want 1", result.OtherDomain)
	}
	if result.Unmapped != 2 {
		t.Errorf("unmapped = %d, want 2", result.Unmapped)
	}
}
