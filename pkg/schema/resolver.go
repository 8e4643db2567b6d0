// Package schema binds logical schema roles to the physical schema names of
// one execution context, so mapping rules can be written once and executed
// against differently named databases.
package schema

import (
	"fmt"

	"github.com/thehyve/omop-etl-wrapper/pkg/common/config"
)

// Role is a logical schema placeholder referenced by the engine.
type Role string

const (
	RoleCDM   Role = "cdm"   // destination clinical data tables
	RoleVocab Role = "vocab" // vocabulary tables
	RoleStem  Role = "stem"  // staged stem records
)

// Map resolves schema roles for one execution context. It is pure
// substitution: no business logic, immutable after construction.
type Map struct {
	bindings map[Role]string
}

func NewMap(bindings map[Role]string) Map {
	copied := make(map[Role]string, len(bindings))
	for role, name := range bindings {
		if name == "" {
			continue
		}
		copied[role] = name
	}
	return Map{bindings: copied}
}

// FromConfig builds the schema map from the environment configuration.
func FromConfig(cfg *config.Config) Map {
	return NewMap(map[Role]string{
		RoleCDM:   cfg.CDMSchema,
		RoleVocab: cfg.VocabSchema,
		RoleStem:  cfg.StemSchema,
	})
}

// Resolve returns the physical schema bound to role. A missing binding is a
// configuration error and surfaces before any data flows.
func (m Map) Resolve(role Role) (string, error) {
	name, ok := m.bindings[role]
	if !ok {
		return "", fmt.Errorf("schema role %q has no binding in this execution context", role)
	}
	return name, nil
}

// Qualify returns the schema-qualified table name for role.
func (m Map) Qualify(role Role, table string) (string, error) {
	name, err := m.Resolve(role)
	if err != nil {
		return "", err
	}
	return name + "." + table, nil
}
