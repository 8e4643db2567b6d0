package mapping

import "github.com/thehyve/omop-etl-wrapper/pkg/common/models"

// TypeConceptSurvey marks records as recorded from a survey instrument. All
// built-in rules stamp it into their type concept column; rule files can
// declare a different provenance marker.
const TypeConceptSurvey int64 = 45905771

// DefaultRules returns the built-in rule set covering the clinical data
// tables fed from the stem table. Column lists mirror the destination table
// contracts; concept-identifier columns coalesce to the unknown-concept
// sentinel 0, everything else passes through as-is.
func DefaultRules() []Rule {
	return []Rule{
		{
			Table:  "condition_occurrence",
			Domain: models.DomainCondition,
			Columns: []ColumnMapping{
				{Column: "person_id", Source: Copy("person_id")},
				{Column: "condition_concept_id", Source: Coalesce("concept_id", 0)},
				{Column: "condition_start_date", Source: Copy("start_date")},
				{Column: "condition_start_datetime", Source: Copy("start_datetime")},
				{Column: "condition_end_date", Source: Copy("end_date")},
				{Column: "condition_end_datetime", Source: Copy("end_datetime")},
				{Column: "condition_type_concept_id", Source: Fixed(TypeConceptSurvey)},
				{Column: "stop_reason", Source: Copy("stop_reason")},
				{Column: "provider_id", Source: Copy("provider_id")},
				{Column: "visit_occurrence_id", Source: Copy("visit_occurrence_id")},
				{Column: "visit_detail_id", Source: Copy("visit_detail_id")},
				{Column: "condition_source_value", Source: Copy("source_value")},
				{Column: "condition_source_concept_id", Source: Coalesce("source_concept_id", 0)},
				{Column: "condition_status_source_value", Source: Copy("condition_status_source_value")},
				{Column: "condition_status_concept_id", Source: Coalesce("condition_status_concept_id", 0)},
			},
		},
		{
			Table:  "procedure_occurrence",
			Domain: models.DomainProcedure,
			Columns: []ColumnMapping{
				{Column: "person_id", Source: Copy("person_id")},
				{Column: "procedure_concept_id", Source: Coalesce("concept_id", 0)},
				{Column: "procedure_date", Source: Copy("start_date")},
				{Column: "procedure_datetime", Source: Copy("start_datetime")},
				{Column: "procedure_type_concept_id", Source: Fixed(TypeConceptSurvey)},
				{Column: "modifier_concept_id", Source: Coalesce("modifier_concept_id", 0)},
				{Column: "quantity", Source: Copy("quantity")},
				{Column: "provider_id", Source: Copy("provider_id")},
				{Column: "visit_occurrence_id", Source: Copy("visit_occurrence_id")},
				{Column: "visit_detail_id", Source: Copy("visit_detail_id")},
				{Column: "procedure_source_value", Source: Copy("source_value")},
				{Column: "procedure_source_concept_id", Source: Coalesce("source_concept_id", 0)},
				{Column: "modifier_source_value", Source: Copy("modifier_source_value")},
			},
		},
		{
			Table:  "drug_exposure",
			Domain: models.DomainDrug,
			Columns: []ColumnMapping{
				{Column: "person_id", Source: Copy("person_id")},
				{Column: "drug_concept_id", Source: Coalesce("concept_id", 0)},
				{Column: "drug_exposure_start_date", Source: Copy("start_date")},
				{Column: "drug_exposure_start_datetime", Source: Copy("start_datetime")},
				{Column: "drug_exposure_end_date", Source: Copy("end_date")},
				{Column: "drug_exposure_end_datetime", Source: Copy("end_datetime")},
				{Column: "verbatim_end_date", Source: Copy("verbatim_end_date")},
				{Column: "drug_type_concept_id", Source: Fixed(TypeConceptSurvey)},
				{Column: "stop_reason", Source: Copy("stop_reason")},
				{Column: "refills", Source: Copy("refills")},
				{Column: "quantity", Source: Copy("quantity")},
				{Column: "days_supply", Source: Copy("days_supply")},
				{Column: "sig", Source: Copy("sig")},
				{Column: "route_concept_id", Source: Coalesce("route_concept_id", 0)},
				{Column: "lot_number", Source: Copy("lot_number")},
				{Column: "provider_id", Source: Copy("provider_id")},
				{Column: "visit_occurrence_id", Source: Copy("visit_occurrence_id")},
				{Column: "visit_detail_id", Source: Copy("visit_detail_id")},
				{Column: "drug_source_value", Source: Copy("source_value")},
				{Column: "drug_source_concept_id", Source: Coalesce("source_concept_id", 0)},
				{Column: "route_source_value", Source: Copy("route_source_value")},
				{Column: "dose_unit_source_value", Source: Copy("dose_unit_source_value")},
			},
		},
		{
			Table:  "measurement",
			Domain: models.DomainMeasurement,
			Columns: []ColumnMapping{
				{Column: "person_id", Source: Copy("person_id")},
				{Column: "measurement_concept_id", Source: Coalesce("concept_id", 0)},
				{Column: "measurement_date", Source: Copy("start_date")},
				{Column: "measurement_datetime", Source: Copy("start_datetime")},
				{Column: "measurement_type_concept_id", Source: Fixed(TypeConceptSurvey)},
				{Column: "operator_concept_id", Source: Coalesce("operator_concept_id", 0)},
				{Column: "value_as_number", Source: Copy("value_as_number")},
				{Column: "value_as_concept_id", Source: Coalesce("value_as_concept_id", 0)},
				{Column: "unit_concept_id", Source: Coalesce("unit_concept_id", 0)},
				{Column: "range_low", Source: Copy("range_low")},
				{Column: "range_high", Source: Copy("range_high")},
				{Column: "provider_id", Source: Copy("provider_id")},
				{Column: "visit_occurrence_id", Source: Copy("visit_occurrence_id")},
				{Column: "visit_detail_id", Source: Copy("visit_detail_id")},
				{Column: "measurement_source_value", Source: Copy("source_value")},
				{Column: "measurement_source_concept_id", Source: Coalesce("source_concept_id", 0)},
				{Column: "unit_source_value", Source: Copy("unit_source_value")},
				{Column: "value_source_value", Source: Copy("value_source_value")},
			},
		},
		{
			Table:  "observation",
			Domain: models.DomainObservation,
			Columns: []ColumnMapping{
				{Column: "person_id", Source: Copy("person_id")},
				{Column: "observation_concept_id", Source: Coalesce("concept_id", 0)},
				{Column: "observation_date", Source: Copy("start_date")},
				{Column: "observation_datetime", Source: Copy("start_datetime")},
				{Column: "observation_type_concept_id", Source: Fixed(TypeConceptSurvey)},
				{Column: "value_as_number", Source: Copy("value_as_number")},
				{Column: "value_as_string", Source: Copy("value_as_string")},
				{Column: "value_as_concept_id", Source: Coalesce("value_as_concept_id", 0)},
				{Column: "qualifier_concept_id", Source: Coalesce("qualifier_concept_id", 0)},
				{Column: "unit_concept_id", Source: Coalesce("unit_concept_id", 0)},
				{Column: "provider_id", Source: Copy("provider_id")},
				{Column: "visit_occurrence_id", Source: Copy("visit_occurrence_id")},
				{Column: "visit_detail_id", Source: Copy("visit_detail_id")},
				{Column: "observation_source_value", Source: Copy("source_value")},
				{Column: "observation_source_concept_id", Source: Coalesce("source_concept_id", 0)},
				{Column: "unit_source_value", Source: Copy("unit_source_value")},
				{Column: "qualifier_source_value", Source: Copy("qualifier_source_value")},
			},
		},
		{
			Table:  "device_exposure",
			Domain: models.DomainDevice,
			Columns: []ColumnMapping{
				{Column: "person_id", Source: Copy("person_id")},
				{Column: "device_concept_id", Source: Coalesce("concept_id", 0)},
				{Column: "device_exposure_start_date", Source: Copy("start_date")},
				{Column: "device_exposure_start_datetime", Source: Copy("start_datetime")},
				{Column: "device_exposure_end_date", Source: Copy("end_date")},
				{Column: "device_exposure_end_datetime", Source: Copy("end_datetime")},
				{Column: "device_type_concept_id", Source: Fixed(TypeConceptSurvey)},
				{Column: "unique_device_id", Source: Copy("unique_device_id")},
				{Column: "quantity", Source: Copy("quantity")},
				{Column: "provider_id", Source: Copy("provider_id")},
				{Column: "visit_occurrence_id", Source: Copy("visit_occurrence_id")},
				{Column: "visit_detail_id", Source: Copy("visit_detail_id")},
				{Column: "device_source_value", Source: Copy("source_value")},
				{Column: "device_source_concept_id", Source: Coalesce("source_concept_id", 0)},
			},
		},
		{
			Table:  "specimen",
			Domain: models.DomainSpecimen,
			Columns: []ColumnMapping{
				{Column: "person_id", Source: Copy("person_id")},
				{Column: "specimen_concept_id", Source: Coalesce("concept_id", 0)},
				{Column: "specimen_type_concept_id", Source: Fixed(TypeConceptSurvey)},
				{Column: "specimen_date", Source: Copy("start_date")},
				{Column: "specimen_datetime", Source: Copy("start_datetime")},
				{Column: "quantity", Source: Copy("quantity")},
				{Column: "unit_concept_id", Source: Coalesce("unit_concept_id", 0)},
				{Column: "anatomic_site_concept_id", Source: Coalesce("anatomic_site_concept_id", 0)},
				{Column: "disease_status_concept_id", Source: Coalesce("disease_status_concept_id", 0)},
				{Column: "specimen_source_id", Source: Copy("specimen_source_id")},
				{Column: "specimen_source_value", Source: Copy("source_value")},
				{Column: "unit_source_value", Source: Copy("unit_source_value")},
				{Column: "anatomic_site_source_value", Source: Copy("anatomic_site_source_value")},
				{Column: "disease_status_source_value", Source: Copy("disease_status_source_value")},
			},
		},
	}
}
