package db

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoFields is returned when a dynamic update carries no columns.
var ErrNoFields = errors.New("no fields to update")

// UpdateField is a single column assignment in a dynamic UPDATE. Column
// names are always literals from a fixed per-resource whitelist; only
// values are bound as parameters.
type UpdateField struct {
	Column string
	Value  interface{}
}

// buildUpdate assembles "UPDATE <table> SET col = $1, ... WHERE id = $n"
// together with its bind values.
func buildUpdate(table string, fields []UpdateField, id int64) (string, []interface{}, error) {
	if len(fields) == 0 {
		return "", nil, ErrNoFields
	}

	assignments := make([]string, 0, len(fields))
	values := make([]interface{}, 0, len(fields)+1)
	for i, f := range fields {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", f.Column, i+1))
		values = append(values, f.Value)
	}
	values = append(values, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d",
		table, strings.Join(assignments, ", "), len(values))
	return query, values, nil
}

func execUpdate(table string, fields []UpdateField, id int64) error {
	query, values, err := buildUpdate(table, fields, id)
	if err != nil {
		return err
	}
	if _, err := DB.Exec(query, values...); err != nil {
		return fmt.Errorf("error updating %s %d: %v", table, id, err)
	}
	return nil
}
