package cdm

import (
	"github.com/thehyve/omop-etl-wrapper/pkg/schema"
	"gorm.io/gorm"
)

// Migrate provisions the destination tables in the resolved cdm schema.
// Intended for dev and test targets; production schemas are created by the
// external schema management tooling.
func Migrate(db *gorm.DB, schemas schema.Map) error {
	tables := []interface{}{
		&ConditionOccurrence{},
		&ProcedureOccurrence{},
		&DrugExposure{},
		&Measurement{},
		&Observation{},
		&DeviceExposure{},
		&Specimen{},
	}
	for _, model := range tables {
		name, err := schemas.Qualify(schema.RoleCDM, tableName(model))
		if err != nil {
			return err
		}
		if err := db.Table(name).AutoMigrate(model); err != nil {
			return err
		}
	}
	return nil
}

func tableName(model interface{}) string {
	type named interface{ TableName() string }
	return model.(named).TableName()
}
