// Package cdm declares the destination clinical data tables fed from the
// stem table. The models exist for target provisioning in dev and test
// databases; production schemas are managed externally.
package cdm

import "time"

type ConditionOccurrence struct {
	ConditionOccurrenceID      int64      `gorm:"column:condition_occurrence_id;primaryKey;autoIncrement"`
	PersonID                   int64      `gorm:"column:person_id;not null;index"`
	ConditionConceptID         int64      `gorm:"column:condition_concept_id;not null;index"`
	ConditionStartDate         *time.Time `gorm:"column:condition_start_date"`
	ConditionStartDatetime     time.Time  `gorm:"column:condition_start_datetime"`
	ConditionEndDate           *time.Time `gorm:"column:condition_end_date"`
	ConditionEndDatetime       *time.Time `gorm:"column:condition_end_datetime"`
	ConditionTypeConceptID     int64      `gorm:"column:condition_type_concept_id;not null"`
	StopReason                 *string    `gorm:"column:stop_reason;size:20"`
	ProviderID                 *int64     `gorm:"column:provider_id"`
	VisitOccurrenceID          *int64     `gorm:"column:visit_occurrence_id;index"`
	VisitDetailID              *int64     `gorm:"column:visit_detail_id"`
	ConditionSourceValue       *string    `gorm:"column:condition_source_value;size:50"`
	ConditionSourceConceptID   int64      `gorm:"column:condition_source_concept_id"`
	ConditionStatusSourceValue *string    `gorm:"column:condition_status_source_value;size:50"`
	ConditionStatusConceptID   int64      `gorm:"column:condition_status_concept_id"`
}

func (ConditionOccurrence) TableName() string { return "condition_occurrence" }

type ProcedureOccurrence struct {
	ProcedureOccurrenceID    int64      `gorm:"column:procedure_occurrence_id;primaryKey;autoIncrement"`
	PersonID                 int64      `gorm:"column:person_id;not null;index"`
	ProcedureConceptID       int64      `gorm:"column:procedure_concept_id;not null;index"`
	ProcedureDate            *time.Time `gorm:"column:procedure_date"`
	ProcedureDatetime        time.Time  `gorm:"column:procedure_datetime"`
	ProcedureTypeConceptID   int64      `gorm:"column:procedure_type_concept_id;not null"`
	ModifierConceptID        int64      `gorm:"column:modifier_concept_id"`
	Quantity                 *float64   `gorm:"column:quantity"`
	ProviderID               *int64     `gorm:"column:provider_id"`
	VisitOccurrenceID        *int64     `gorm:"column:visit_occurrence_id;index"`
	VisitDetailID            *int64     `gorm:"column:visit_detail_id"`
	ProcedureSourceValue     *string    `gorm:"column:procedure_source_value;size:50"`
	ProcedureSourceConceptID int64      `gorm:"column:procedure_source_concept_id"`
	ModifierSourceValue      *string    `gorm:"column:modifier_source_value;size:50"`
}

func (ProcedureOccurrence) TableName() string { return "procedure_occurrence" }

type DrugExposure struct {
	DrugExposureID           int64      `gorm:"column:drug_exposure_id;primaryKey;autoIncrement"`
	PersonID                 int64      `gorm:"column:person_id;not null;index"`
	DrugConceptID            int64      `gorm:"column:drug_concept_id;not null;index"`
	DrugExposureStartDate    *time.Time `gorm:"column:drug_exposure_start_date"`
	DrugExposureStartDatetime time.Time `gorm:"column:drug_exposure_start_datetime"`
	DrugExposureEndDate      *time.Time `gorm:"column:drug_exposure_end_date"`
	DrugExposureEndDatetime  *time.Time `gorm:"column:drug_exposure_end_datetime"`
	VerbatimEndDate          *time.Time `gorm:"column:verbatim_end_date"`
	DrugTypeConceptID        int64      `gorm:"column:drug_type_concept_id;not null"`
	StopReason               *string    `gorm:"column:stop_reason;size:20"`
	Refills                  *int       `gorm:"column:refills"`
	Quantity                 *float64   `gorm:"column:quantity"`
	DaysSupply               *int       `gorm:"column:days_supply"`
	Sig                      *string    `gorm:"column:sig;type:text"`
	RouteConceptID           int64      `gorm:"column:route_concept_id"`
	LotNumber                *string    `gorm:"column:lot_number;size:50"`
	ProviderID               *int64     `gorm:"column:provider_id"`
	VisitOccurrenceID        *int64     `gorm:"column:visit_occurrence_id;index"`
	VisitDetailID            *int64     `gorm:"column:visit_detail_id"`
	DrugSourceValue          *string    `gorm:"column:drug_source_value;size:50"`
	DrugSourceConceptID      int64      `gorm:"column:drug_source_concept_id"`
	RouteSourceValue         *string    `gorm:"column:route_source_value;size:50"`
	DoseUnitSourceValue      *string    `gorm:"column:dose_unit_source_value;size:50"`
}

func (DrugExposure) TableName() string { return "drug_exposure" }

type Measurement struct {
	MeasurementID              int64      `gorm:"column:measurement_id;primaryKey;autoIncrement"`
	PersonID                   int64      `gorm:"column:person_id;not null;index"`
	MeasurementConceptID       int64      `gorm:"column:measurement_concept_id;not null;index"`
	MeasurementDate            *time.Time `gorm:"column:measurement_date"`
	MeasurementDatetime        time.Time  `gorm:"column:measurement_datetime"`
	MeasurementTypeConceptID   int64      `gorm:"column:measurement_type_concept_id;not null"`
	OperatorConceptID          int64      `gorm:"column:operator_concept_id"`
	ValueAsNumber              *float64   `gorm:"column:value_as_number"`
	ValueAsConceptID           int64      `gorm:"column:value_as_concept_id"`
	UnitConceptID              int64      `gorm:"column:unit_concept_id"`
	RangeLow                   *float64   `gorm:"column:range_low"`
	RangeHigh                  *float64   `gorm:"column:range_high"`
	ProviderID                 *int64     `gorm:"column:provider_id"`
	VisitOccurrenceID          *int64     `gorm:"column:visit_occurrence_id;index"`
	VisitDetailID              *int64     `gorm:"column:visit_detail_id"`
	MeasurementSourceValue     *string    `gorm:"column:measurement_source_value;size:50"`
	MeasurementSourceConceptID int64      `gorm:"column:measurement_source_concept_id"`
	UnitSourceValue            *string    `gorm:"column:unit_source_value;size:50"`
	ValueSourceValue           *string    `gorm:"column:value_source_value;size:50"`
}

func (Measurement) TableName() string { return "measurement" }

type Observation struct {
	ObservationID              int64      `gorm:"column:observation_id;primaryKey;autoIncrement"`
	PersonID                   int64      `gorm:"column:person_id;not null;index"`
	ObservationConceptID       int64      `gorm:"column:observation_concept_id;not null;index"`
	ObservationDate            *time.Time `gorm:"column:observation_date"`
	ObservationDatetime        time.Time  `gorm:"column:observation_datetime"`
	ObservationTypeConceptID   int64      `gorm:"column:observation_type_concept_id;not null"`
	ValueAsNumber              *float64   `gorm:"column:value_as_number"`
	ValueAsString              *string    `gorm:"column:value_as_string;size:60"`
	ValueAsConceptID           int64      `gorm:"column:value_as_concept_id"`
	QualifierConceptID         int64      `gorm:"column:qualifier_concept_id"`
	UnitConceptID              int64      `gorm:"column:unit_concept_id"`
	ProviderID                 *int64     `gorm:"column:provider_id"`
	VisitOccurrenceID          *int64     `gorm:"column:visit_occurrence_id;index"`
	VisitDetailID              *int64     `gorm:"column:visit_detail_id"`
	ObservationSourceValue     *string    `gorm:"column:observation_source_value;size:50"`
	ObservationSourceConceptID int64      `gorm:"column:observation_source_concept_id"`
	UnitSourceValue            *string    `gorm:"column:unit_source_value;size:50"`
	QualifierSourceValue       *string    `gorm:"column:qualifier_source_value;size:50"`
}

func (Observation) TableName() string { return "observation" }

type DeviceExposure struct {
	DeviceExposureID           int64      `gorm:"column:device_exposure_id;primaryKey;autoIncrement"`
	PersonID                   int64      `gorm:"column:person_id;not null;index"`
	DeviceConceptID            int64      `gorm:"column:device_concept_id;not null;index"`
	DeviceExposureStartDate    *time.Time `gorm:"column:device_exposure_start_date"`
	DeviceExposureStartDatetime time.Time `gorm:"column:device_exposure_start_datetime"`
	DeviceExposureEndDate      *time.Time `gorm:"column:device_exposure_end_date"`
	DeviceExposureEndDatetime  *time.Time `gorm:"column:device_exposure_end_datetime"`
	DeviceTypeConceptID        int64      `gorm:"column:device_type_concept_id;not null"`
	UniqueDeviceID             *string    `gorm:"column:unique_device_id;size:50"`
	Quantity                   *float64   `gorm:"column:quantity"`
	ProviderID                 *int64     `gorm:"column:provider_id"`
	VisitOccurrenceID          *int64     `gorm:"column:visit_occurrence_id;index"`
	VisitDetailID              *int64     `gorm:"column:visit_detail_id"`
	DeviceSourceValue          *string    `gorm:"column:device_source_value;size:100"`
	DeviceSourceConceptID      int64      `gorm:"column:device_source_concept_id"`
}

func (DeviceExposure) TableName() string { return "device_exposure" }

type Specimen struct {
	SpecimenID               int64      `gorm:"column:specimen_id;primaryKey;autoIncrement"`
	PersonID                 int64      `gorm:"column:person_id;not null;index"`
	SpecimenConceptID        int64      `gorm:"column:specimen_concept_id;not null;index"`
	SpecimenTypeConceptID    int64      `gorm:"column:specimen_type_concept_id;not null"`
	SpecimenDate             *time.Time `gorm:"column:specimen_date"`
	SpecimenDatetime         time.Time  `gorm:"column:specimen_datetime"`
	Quantity                 *float64   `gorm:"column:quantity"`
	UnitConceptID            int64      `gorm:"column:unit_concept_id"`
	AnatomicSiteConceptID    int64      `gorm:"column:anatomic_site_concept_id"`
	DiseaseStatusConceptID   int64      `gorm:"column:disease_status_concept_id"`
	SpecimenSourceID         *string    `gorm:"column:specimen_source_id;size:50"`
	SpecimenSourceValue      *string    `gorm:"column:specimen_source_value;size:50"`
	UnitSourceValue          *string    `gorm:"column:unit_source_value;size:50"`
	AnatomicSiteSourceValue  *string    `gorm:"column:anatomic_site_source_value;size:50"`
	DiseaseStatusSourceValue *string    `gorm:"column:disease_status_source_value;size:50"`
}

func (Specimen) TableName() string { return "specimen" }
