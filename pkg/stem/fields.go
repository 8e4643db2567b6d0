// Package stem exposes the staged stem record set: the generic clinical
// events waiting to be routed into their domain tables.
package stem

import (
	"sort"
	"time"

	"github.com/thehyve/omop-etl-wrapper/pkg/common/models"
)

// accessor reads one stem column off a record. Nil pointers come back as an
// untyped nil so downstream coalescing can test against nil directly.
type accessor func(r models.StemRecord) interface{}

var fieldAccessors = map[string]accessor{
	"id":        func(r models.StemRecord) interface{} { return r.ID },
	"person_id": func(r models.StemRecord) interface{} { return r.PersonID },
	"concept_id": func(r models.StemRecord) interface{} {
		return int64Value(r.ConceptID)
	},
	"start_date":         func(r models.StemRecord) interface{} { return timeValue(r.StartDate) },
	"start_datetime":     func(r models.StemRecord) interface{} { return r.StartDatetime },
	"end_date":           func(r models.StemRecord) interface{} { return timeValue(r.EndDate) },
	"end_datetime":       func(r models.StemRecord) interface{} { return timeValue(r.EndDatetime) },
	"verbatim_end_date":  func(r models.StemRecord) interface{} { return timeValue(r.VerbatimEndDate) },
	"type_concept_id":    func(r models.StemRecord) interface{} { return int64Value(r.TypeConceptID) },
	"operator_concept_id": func(r models.StemRecord) interface{} {
		return int64Value(r.OperatorConceptID)
	},
	"value_as_number":               func(r models.StemRecord) interface{} { return floatValue(r.ValueAsNumber) },
	"value_as_concept_id":           func(r models.StemRecord) interface{} { return int64Value(r.ValueAsConceptID) },
	"value_as_string":               func(r models.StemRecord) interface{} { return stringValue(r.ValueAsString) },
	"value_as_datetime":             func(r models.StemRecord) interface{} { return timeValue(r.ValueAsDatetime) },
	"unit_concept_id":               func(r models.StemRecord) interface{} { return int64Value(r.UnitConceptID) },
	"range_low":                     func(r models.StemRecord) interface{} { return floatValue(r.RangeLow) },
	"range_high":                    func(r models.StemRecord) interface{} { return floatValue(r.RangeHigh) },
	"provider_id":                   func(r models.StemRecord) interface{} { return int64Value(r.ProviderID) },
	"visit_occurrence_id":           func(r models.StemRecord) interface{} { return int64Value(r.VisitOccurrenceID) },
	"visit_detail_id":               func(r models.StemRecord) interface{} { return int64Value(r.VisitDetailID) },
	"source_value":                  func(r models.StemRecord) interface{} { return stringValue(r.SourceValue) },
	"source_concept_id":             func(r models.StemRecord) interface{} { return int64Value(r.SourceConceptID) },
	"unit_source_value":             func(r models.StemRecord) interface{} { return stringValue(r.UnitSourceValue) },
	"value_source_value":            func(r models.StemRecord) interface{} { return stringValue(r.ValueSourceValue) },
	"stop_reason":                   func(r models.StemRecord) interface{} { return stringValue(r.StopReason) },
	"refills":                       func(r models.StemRecord) interface{} { return intValue(r.Refills) },
	"quantity":                      func(r models.StemRecord) interface{} { return floatValue(r.Quantity) },
	"days_supply":                   func(r models.StemRecord) interface{} { return intValue(r.DaysSupply) },
	"sig":                           func(r models.StemRecord) interface{} { return stringValue(r.Sig) },
	"route_concept_id":              func(r models.StemRecord) interface{} { return int64Value(r.RouteConceptID) },
	"lot_number":                    func(r models.StemRecord) interface{} { return stringValue(r.LotNumber) },
	"route_source_value":            func(r models.StemRecord) interface{} { return stringValue(r.RouteSourceValue) },
	"dose_unit_source_value":        func(r models.StemRecord) interface{} { return stringValue(r.DoseUnitSourceValue) },
	"condition_status_concept_id":   func(r models.StemRecord) interface{} { return int64Value(r.ConditionStatusConceptID) },
	"condition_status_source_value": func(r models.StemRecord) interface{} { return stringValue(r.ConditionStatusSourceValue) },
	"qualifier_concept_id":          func(r models.StemRecord) interface{} { return int64Value(r.QualifierConceptID) },
	"qualifier_source_value":        func(r models.StemRecord) interface{} { return stringValue(r.QualifierSourceValue) },
	"modifier_concept_id":           func(r models.StemRecord) interface{} { return int64Value(r.ModifierConceptID) },
	"modifier_source_value":         func(r models.StemRecord) interface{} { return stringValue(r.ModifierSourceValue) },
	"unique_device_id":              func(r models.StemRecord) interface{} { return stringValue(r.UniqueDeviceID) },
	"anatomic_site_concept_id":      func(r models.StemRecord) interface{} { return int64Value(r.AnatomicSiteConceptID) },
	"anatomic_site_source_value":    func(r models.StemRecord) interface{} { return stringValue(r.AnatomicSiteSourceValue) },
	"disease_status_concept_id":     func(r models.StemRecord) interface{} { return int64Value(r.DiseaseStatusConceptID) },
	"disease_status_source_value":   func(r models.StemRecord) interface{} { return stringValue(r.DiseaseStatusSourceValue) },
	"specimen_source_id":            func(r models.StemRecord) interface{} { return stringValue(r.SpecimenSourceID) },
}

// HasField reports whether name is a column of the stem record shape.
func HasField(name string) bool {
	_, ok := fieldAccessors[name]
	return ok
}

// Value reads the named column off a record. The second return is false for
// an unknown field name, which rule validation rejects before any data flows.
func Value(r models.StemRecord, name string) (interface{}, bool) {
	get, ok := fieldAccessors[name]
	if !ok {
		return nil, false
	}
	return get(r), true
}

// Fields lists the stem column names in sorted order.
func Fields() []string {
	names := make([]string, 0, len(fieldAccessors))
	for name := range fieldAccessors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func int64Value(p *int64) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func intValue(p *int) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func floatValue(p *float64) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func stringValue(p *string) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func timeValue(p *time.Time) interface{} {
	if p == nil {
		return nil
	}
	return *p
}
