package models

import (
	"time"

	"github.com/google/uuid"
)

// Domain is the vocabulary-assigned classification that decides which
// clinical data table a staged record is routed into.
type Domain string

const (
	DomainCondition   Domain = "Condition"
	DomainDrug        Domain = "Drug"
	DomainProcedure   Domain = "Procedure"
	DomainMeasurement Domain = "Measurement"
	DomainObservation Domain = "Observation"
	DomainDevice      Domain = "Device"
	DomainSpecimen    Domain = "Specimen"
)

// Concept is one row of the vocabulary concept table.
type Concept struct {
	ConceptID       int64  `gorm:"column:concept_id;primaryKey" json:"concept_id" yaml:"concept_id"`
	ConceptName     string `gorm:"column:concept_name" json:"concept_name" yaml:"concept_name"`
	DomainID        Domain `gorm:"column:domain_id" json:"domain_id" yaml:"domain_id"`
	VocabularyID    string `gorm:"column:vocabulary_id" json:"vocabulary_id,omitempty" yaml:"vocabulary_id,omitempty"`
	ConceptClassID  string `gorm:"column:concept_class_id" json:"concept_class_id,omitempty" yaml:"concept_class_id,omitempty"`
	StandardConcept string `gorm:"column:standard_concept" json:"standard_concept,omitempty" yaml:"standard_concept,omitempty"`
	ConceptCode     string `gorm:"column:concept_code" json:"concept_code,omitempty" yaml:"concept_code,omitempty"`
}

// StemRecord is one staged clinical event before domain routing. The shape is
// a superset of the fields needed by every destination table; which subset is
// read depends on the mapping rule that picks the record up. Nullable source
// columns are pointers so that null passes through to the destination
// untouched.
type StemRecord struct {
	ID                         int64      `gorm:"column:id;primaryKey" json:"id"`
	PersonID                   int64      `gorm:"column:person_id" json:"person_id"`
	ConceptID                  *int64     `gorm:"column:concept_id" json:"concept_id,omitempty"`
	StartDate                  *time.Time `gorm:"column:start_date" json:"start_date,omitempty"`
	StartDatetime              time.Time  `gorm:"column:start_datetime" json:"start_datetime"`
	EndDate                    *time.Time `gorm:"column:end_date" json:"end_date,omitempty"`
	EndDatetime                *time.Time `gorm:"column:end_datetime" json:"end_datetime,omitempty"`
	VerbatimEndDate            *time.Time `gorm:"column:verbatim_end_date" json:"verbatim_end_date,omitempty"`
	TypeConceptID              *int64     `gorm:"column:type_concept_id" json:"type_concept_id,omitempty"`
	OperatorConceptID          *int64     `gorm:"column:operator_concept_id" json:"operator_concept_id,omitempty"`
	ValueAsNumber              *float64   `gorm:"column:value_as_number" json:"value_as_number,omitempty"`
	ValueAsConceptID           *int64     `gorm:"column:value_as_concept_id" json:"value_as_concept_id,omitempty"`
	ValueAsString              *string    `gorm:"column:value_as_string" json:"value_as_string,omitempty"`
	ValueAsDatetime            *time.Time `gorm:"column:value_as_datetime" json:"value_as_datetime,omitempty"`
	UnitConceptID              *int64     `gorm:"column:unit_concept_id" json:"unit_concept_id,omitempty"`
	RangeLow                   *float64   `gorm:"column:range_low" json:"range_low,omitempty"`
	RangeHigh                  *float64   `gorm:"column:range_high" json:"range_high,omitempty"`
	ProviderID                 *int64     `gorm:"column:provider_id" json:"provider_id,omitempty"`
	VisitOccurrenceID          *int64     `gorm:"column:visit_occurrence_id" json:"visit_occurrence_id,omitempty"`
	VisitDetailID              *int64     `gorm:"column:visit_detail_id" json:"visit_detail_id,omitempty"`
	SourceValue                *string    `gorm:"column:source_value" json:"source_value,omitempty"`
	SourceConceptID            *int64     `gorm:"column:source_concept_id" json:"source_concept_id,omitempty"`
	UnitSourceValue            *string    `gorm:"column:unit_source_value" json:"unit_source_value,omitempty"`
	ValueSourceValue           *string    `gorm:"column:value_source_value" json:"value_source_value,omitempty"`
	StopReason                 *string    `gorm:"column:stop_reason" json:"stop_reason,omitempty"`
	Refills                    *int       `gorm:"column:refills" json:"refills,omitempty"`
	Quantity                   *float64   `gorm:"column:quantity" json:"quantity,omitempty"`
	DaysSupply                 *int       `gorm:"column:days_supply" json:"days_supply,omitempty"`
	Sig                        *string    `gorm:"column:sig" json:"sig,omitempty"`
	RouteConceptID             *int64     `gorm:"column:route_concept_id" json:"route_concept_id,omitempty"`
	LotNumber                  *string    `gorm:"column:lot_number" json:"lot_number,omitempty"`
	RouteSourceValue           *string    `gorm:"column:route_source_value" json:"route_source_value,omitempty"`
	DoseUnitSourceValue        *string    `gorm:"column:dose_unit_source_value" json:"dose_unit_source_value,omitempty"`
	ConditionStatusConceptID   *int64     `gorm:"column:condition_status_concept_id" json:"condition_status_concept_id,omitempty"`
	ConditionStatusSourceValue *string    `gorm:"column:condition_status_source_value" json:"condition_status_source_value,omitempty"`
	QualifierConceptID         *int64     `gorm:"column:qualifier_concept_id" json:"qualifier_concept_id,omitempty"`
	QualifierSourceValue       *string    `gorm:"column:qualifier_source_value" json:"qualifier_source_value,omitempty"`
	ModifierConceptID          *int64     `gorm:"column:modifier_concept_id" json:"modifier_concept_id,omitempty"`
	ModifierSourceValue        *string    `gorm:"column:modifier_source_value" json:"modifier_source_value,omitempty"`
	UniqueDeviceID             *string    `gorm:"column:unique_device_id" json:"unique_device_id,omitempty"`
	AnatomicSiteConceptID      *int64     `gorm:"column:anatomic_site_concept_id" json:"anatomic_site_concept_id,omitempty"`
	AnatomicSiteSourceValue    *string    `gorm:"column:anatomic_site_source_value" json:"anatomic_site_source_value,omitempty"`
	DiseaseStatusConceptID     *int64     `gorm:"column:disease_status_concept_id" json:"disease_status_concept_id,omitempty"`
	DiseaseStatusSourceValue   *string    `gorm:"column:disease_status_source_value" json:"disease_status_source_value,omitempty"`
	SpecimenSourceID           *string    `gorm:"column:specimen_source_id" json:"specimen_source_id,omitempty"`
}

// Event Bus models
type Event struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"` // stem-loaded, domain-routed
	Source    string                 `json:"source"`
	Data      map[string]interface{} `json:"data"`
	Timestamp time.Time              `json:"timestamp"`
	Metadata  map[string]string      `json:"metadata,omitempty"`
}

// MappingRun summarizes one engine invocation for one destination table.
type MappingRun struct {
	ID          uuid.UUID  `json:"id"`
	Table       string     `json:"table"`
	Domain      Domain     `json:"domain"`
	Mapped      int        `json:"mapped"`
	Unmapped    int        `json:"unmapped"`
	OtherDomain int        `json:"other_domain"`
	Status      string     `json:"status"`
	ErrorMsg    string     `json:"error_message,omitempty"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
