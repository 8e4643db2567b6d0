package mapping

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thehyve/omop-etl-wrapper/pkg/common/models"
)

func TestRegistryRejectsDuplicateColumn(t *testing.T) {
	rule := Rule{
		Table:  "procedure_occurrence",
		Domain: models.DomainProcedure,
		Columns: []ColumnMapping{
			{Column: "person_id", Source: Copy("person_id")},
			{Column: "person_id", Source: Copy("person_id")},
		},
	}
	if _, err := NewRegistry(rule); err == nil {
		t.Fatal("expected duplicate column to fail validation")
	}
}

func TestRegistryRejectsUnknownField(t *testing.T) {
	rule := Rule{
		Table:  "procedure_occurrence",
		Domain: models.DomainProcedure,
		Columns: []ColumnMapping{
			{Column: "person_id", Source: Copy("no_such_field")},
		},
	}
	_, err := NewRegistry(rule)
	if err == nil {
		t.Fatal("expected unknown stem field to fail validation")
	}
	if !strings.Contains(err.Error(), "no_such_field") {
		t.Errorf("error should name the offending field, got: %v", err)
	}
}

func TestRegistryRejectsMissingDomain(t *testing.T) {
	rule := Rule{
		Table: "procedure_occurrence",
		Columns: []ColumnMapping{
			{Column: "person_id", Source: Copy("person_id")},
		},
	}
	if _, err := NewRegistry(rule); err == nil {
		t.Fatal("expected missing domain to fail validation")
	}
}

func TestRegistryRejectsDuplicateTable(t *testing.T) {
	rules := DefaultRules()
	if _, err := NewRegistry(append(rules, rules[0])...); err == nil {
		t.Fatal("expected duplicate table registration to fail")
	}
}

func TestRegistryLookups(t *testing.T) {
	reg, err := NewRegistry(DefaultRules()...)
	if err != nil {
		t.Fatalf("default rules failed validation: %v", err)
	}

	if _, ok := reg.ByTable("measurement"); !ok {
		t.Error("measurement rule not found by table")
	}
	if _, ok := reg.ByTable("nope"); ok {
		t.Error("unexpected rule for unknown table")
	}

	drugRules := reg.ByDomain(models.DomainDrug)
	if len(drugRules) != 1 || drugRules[0].Table != "drug_exposure" {
		t.Errorf("ByDomain(Drug) = %v, want the drug_exposure rule", drugRules)
	}

	if len(reg.Tables()) != len(DefaultRules()) {
		t.Errorf("expected %d tables, got %d", len(DefaultRules()), len(reg.Tables()))
	}
}

func TestLoadRulesFromYAML(t *testing.T) {
	dir := t.TempDir()
	content := `table: procedure_occurrence
domain: Procedure
columns:
  - column: person_id
    field: person_id
  - column: procedure_concept_id
    field: concept_id
    default: 0
  - column: procedure_type_concept_id
    value: 45905771
`
	if err := os.WriteFile(filepath.Join(dir, "procedure.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write rule file: %v", err)
	}

	rules, err := LoadRules(dir)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(rules) != 1 {
		t.Fatalf("expected one rule, got %d", len(rules))
	}

	rule := rules[0]
	if rule.Domain != models.DomainProcedure {
		t.Errorf("domain = %s, want Procedure", rule.Domain)
	}
	if rule.Columns[1].Source.Kind != ExprCoalesce || rule.Columns[1].Source.Default != 0 {
		t.Errorf("expected coalesce-to-zero for concept column, got %+v", rule.Columns[1].Source)
	}
	if rule.Columns[2].Source.Kind != ExprFixed || rule.Columns[2].Source.Value != 45905771 {
		t.Errorf("expected fixed type concept, got %+v", rule.Columns[2].Source)
	}

	if _, err := NewRegistry(rule); err != nil {
		t.Errorf("loaded rule failed validation: %v", err)
	}
}

func TestLoadRulesRejectsAmbiguousColumn(t *testing.T) {
	dir := t.TempDir()
	content := `table: procedure_occurrence
domain: Procedure
columns:
  - column: person_id
    field: person_id
    value: 1
`
	if err := os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write rule file: %v", err)
	}
	if _, err := LoadRules(dir); err == nil {
		t.Fatal("expected a column with both field and value to fail")
	}
}

func TestLoadRulesEmptyDir(t *testing.T) {
	if _, err := LoadRules(t.TempDir()); err == nil {
		t.Fatal("expected an empty rules dir to fail")
	}
}

func TestDefaultRulesCoverStemDomains(t *testing.T) {
	reg, err := NewRegistry(DefaultRules()...)
	if err != nil {
		t.Fatalf("default rules failed validation: %v", err)
	}
	for _, domain := range []models.Domain{
		models.DomainCondition,
		models.DomainProcedure,
		models.DomainDrug,
		models.DomainMeasurement,
		models.DomainObservation,
		models.DomainDevice,
		models.DomainSpecimen,
	} {
		if len(reg.ByDomain(domain)) == 0 {
			t.Errorf("no rule registered for domain %s", domain)
		}
	}
}
