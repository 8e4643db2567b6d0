package stem

import (
	"testing"
	"time"

	"github.com/thehyve/omop-etl-wrapper/pkg/common/models"
)

func TestValueReadsColumns(t *testing.T) {
	concept := int64(4301351)
	quantity := 2.0
	source := "survey-q12"
	record := models.StemRecord{
		ID:            7,
		PersonID:      42,
		ConceptID:     &concept,
		StartDatetime: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Quantity:      &quantity,
		SourceValue:   &source,
	}

	cases := []struct {
		field string
		want  interface{}
	}{
		{"id", int64(7)},
		{"person_id", int64(42)},
		{"concept_id", int64(4301351)},
		{"quantity", 2.0},
		{"source_value", "survey-q12"},
	}
	for _, tc := range cases {
		got, ok := Value(record, tc.field)
		if !ok {
			t.Errorf("field %q not found", tc.field)
			continue
		}
		if got != tc.want {
			t.Errorf("Value(%q) = %v, want %v", tc.field, got, tc.want)
		}
	}
}

func TestValueNilPointersAreUntypedNil(t *testing.T) {
	record := models.StemRecord{ID: 1, PersonID: 1}

	for _, field := range []string{"concept_id", "quantity", "source_value", "end_date"} {
		got, ok := Value(record, field)
		if !ok {
			t.Fatalf("field %q not found", field)
		}
		if got != nil {
			t.Errorf("Value(%q) = %v, want nil", field, got)
		}
	}
}

func TestValueUnknownField(t *testing.T) {
	if _, ok := Value(models.StemRecord{}, "no_such_field"); ok {
		t.Fatal("expected unknown field to report not-found")
	}
}

func TestHasField(t *testing.T) {
	if !HasField("modifier_concept_id") {
		t.Error("modifier_concept_id should exist")
	}
	if HasField("domain_id") {
		t.Error("domain_id is not a stem column")
	}
}

func TestFieldsSortedAndComplete(t *testing.T) {
	fields := Fields()
	if len(fields) == 0 {
		t.Fatal("no fields registered")
	}
	for i := 1; i < len(fields); i++ {
		if fields[i-1] >= fields[i] {
			t.Fatalf("fields not sorted at %d: %s >= %s", i, fields[i-1], fields[i])
		}
	}
	for _, name := range fields {
		if !HasField(name) {
			t.Errorf("listed field %q fails HasField", name)
		}
	}
}
