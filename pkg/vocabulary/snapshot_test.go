package vocabulary

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/thehyve/omop-etl-wrapper/pkg/common/models"
)

func TestSnapshotDomainLookup(t *testing.T) {
	snapshot := NewSnapshot(
		models.Concept{ConceptID: 4301351, ConceptName: "Surgical procedure", DomainID: models.DomainProcedure},
	)

	domain, ok, err := snapshot.DomainOf(context.Background(), 4301351)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if !ok || domain != models.DomainProcedure {
		t.Errorf("DomainOf = (%s, %v), want (Procedure, true)", domain, ok)
	}

	_, ok, err = snapshot.DomainOf(context.Background(), 999999)
	if err != nil {
		t.Fatalf("miss lookup errored: %v", err)
	}
	if ok {
		t.Error("expected a miss for an unknown concept")
	}
}

func TestLoadSnapshotFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `concepts:
  - concept_id: 201826
    concept_name: Type 2 diabetes mellitus
    domain_id: Condition
    vocabulary_id: SNOMED
    concept_code: "44054006"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}

	snapshot, err := LoadSnapshot(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if snapshot.Len() != 1 {
		t.Fatalf("expected one concept, got %d", snapshot.Len())
	}

	concept, ok := snapshot.Lookup(201826)
	if !ok {
		t.Fatal("loaded concept not found")
	}
	if concept.DomainID != models.DomainCondition {
		t.Errorf("domain = %s, want Condition", concept.DomainID)
	}
	if concept.VocabularyID != "SNOMED" {
		t.Errorf("vocabulary = %s, want SNOMED", concept.VocabularyID)
	}
}

func TestLoadSnapshotRejectsEmptyCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, []byte("concepts: []\n"), 0o644); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}
	if _, err := LoadSnapshot(path); err == nil {
		t.Fatal("expected an empty catalog to fail")
	}
}
