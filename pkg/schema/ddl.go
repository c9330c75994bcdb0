package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// generateDDL creates a CREATE TABLE statement from struct tags.
func generateDDL(model any, tableName string) string {
	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()

	var columns []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		dbTag := field.Tag.Get("db")
		ddlTag := field.Tag.Get("ddl")

		if dbTag != "" && ddlTag != "" {
			columns = append(columns, fmt.Sprintf("    %s %s", dbTag, ddlTag))
		}
	}

	ddl := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n);",
		tableName,
		strings.Join(columns, ",\n"))

	return ddl
}

// Columns returns column names of a model in the order of its fields.
func Columns(model any) []string {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	var res []string
	for i := 0; i < t.NumField(); i++ {
		if tag := t.Field(i).Tag.Get("db"); tag != "" {
			res = append(res, tag)
		}
	}
	return res
}

// Indicator DDL methods
func (i Indicator) TableDDL() string {
	return generateDDL(i, "indicators")
}

func (i Indicator) IndexDDL() []string {
	return []string{}
}

func (i Indicator) TableName() string {
	return "indicators"
}

// Observation DDL methods
func (o Observation) TableDDL() string {
	return generateDDL(o, "observations")
}

func (o Observation) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_observations_indicator ON observations(indicator, country_code, year);",
	}
}

func (o Observation) TableName() string {
	return "observations"
}

// SchemaVersion DDL methods
func (sv SchemaVersion) TableDDL() string {
	return generateDDL(sv, "schema_versions")
}

func (sv SchemaVersion) IndexDDL() []string {
	return []string{}
}

func (sv SchemaVersion) TableName() string {
	return "schema_versions"
}

// DDL returns all statements needed to create the schema.
func DDL() []string {
	var res []string
	for _, m := range AllModels() {
		g := m.(DDLGenerator)
		res = append(res, g.TableDDL())
		res = append(res, g.IndexDDL()...)
	}
	return res
}
