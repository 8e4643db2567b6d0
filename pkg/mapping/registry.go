package mapping

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/thehyve/omop-etl-wrapper/pkg/common/models"
	"gopkg.in/yaml.v3"
)

// Registry holds the fixed rule set, one rule per destination table. Every
// rule is validated at construction; a malformed rule never reaches a run.
type Registry struct {
	byTable  map[string]Rule
	byDomain map[models.Domain][]Rule
	order    []string
}

func NewRegistry(rules ...Rule) (*Registry, error) {
	reg := &Registry{
		byTable:  make(map[string]Rule, len(rules)),
		byDomain: make(map[models.Domain][]Rule),
	}
	for _, rule := range rules {
		if err := rule.Validate(); err != nil {
			return nil, err
		}
		if _, exists := reg.byTable[rule.Table]; exists {
			return nil, fmt.Errorf("duplicate rule for table %q", rule.Table)
		}
		reg.byTable[rule.Table] = rule
		reg.byDomain[rule.Domain] = append(reg.byDomain[rule.Domain], rule)
		reg.order = append(reg.order, rule.Table)
	}
	return reg, nil
}

// ByTable looks a rule up by destination table name.
func (r *Registry) ByTable(table string) (Rule, bool) {
	rule, ok := r.byTable[table]
	return rule, ok
}

// ByDomain returns the rules targeting a domain classification.
func (r *Registry) ByDomain(domain models.Domain) []Rule {
	return r.byDomain[domain]
}

// Rules returns all rules in registration order.
func (r *Registry) Rules() []Rule {
	rules := make([]Rule, 0, len(r.order))
	for _, table := range r.order {
		rules = append(rules, r.byTable[table])
	}
	return rules
}

// Tables lists the destination table names in registration order.
func (r *Registry) Tables() []string {
	return append([]string(nil), r.order...)
}

type ruleFile struct {
	Table   string       `yaml:"table"`
	Domain  string       `yaml:"domain"`
	Columns []columnFile `yaml:"columns"`
}

type columnFile struct {
	Column  string `yaml:"column"`
	Field   string `yaml:"field,omitempty"`
	Default *int64 `yaml:"default,omitempty"`
	Value   *int64 `yaml:"value,omitempty"`
}

// LoadRules reads every *.yaml rule file in dir. Rules are data: a new
// destination table needs a new file, not an engine change. File names are
// sorted so registration order is stable across platforms.
func LoadRules(dir string) ([]Rule, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no rule files found in %s", dir)
	}
	sort.Strings(matches)

	rules := make([]Rule, 0, len(matches))
	for _, path := range matches {
		content, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, err
		}
		var file ruleFile
		if err := yaml.Unmarshal(content, &file); err != nil {
			return nil, fmt.Errorf("rule file %s: %w", path, err)
		}
		rule, err := file.toRule()
		if err != nil {
			return nil, fmt.Errorf("rule file %s: %w", path, err)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func (f ruleFile) toRule() (Rule, error) {
	rule := Rule{
		Table:   f.Table,
		Domain:  models.Domain(f.Domain),
		Columns: make([]ColumnMapping, 0, len(f.Columns)),
	}
	for _, col := range f.Columns {
		expr, err := col.toExpr()
		if err != nil {
			return Rule{}, fmt.Errorf("column %q: %w", col.Column, err)
		}
		rule.Columns = append(rule.Columns, ColumnMapping{Column: col.Column, Source: expr})
	}
	return rule, nil
}

func (c columnFile) toExpr() (Expr, error) {
	switch {
	case c.Value != nil && c.Field != "":
		return Expr{}, fmt.Errorf("declares both a fixed value and a source field")
	case c.Value != nil:
		return Fixed(*c.Value), nil
	case c.Field != "" && c.Default != nil:
		return Coalesce(c.Field, *c.Default), nil
	case c.Field != "":
		return Copy(c.Field), nil
	default:
		return Expr{}, fmt.Errorf("declares neither a source field nor a fixed value")
	}
}
