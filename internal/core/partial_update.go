package core

import (
	"fmt"
	"strings"

	"jobboard/internal/apperror"
)

// FieldValue is one (field, new value) pair of a partial update. Order is
// significant: the generated SET clause binds values in the order the
// caller appended them.
type FieldValue struct {
	Field string
	Value any
}

// BuildPartialUpdate turns a sparse field list into a SQL SET clause with
// $n placeholders numbered from 1, plus the matching bind arguments.
//
// columns is the entity's complete field-to-column allow-list. A field
// missing from it is rejected outright rather than passed through, so no
// caller-supplied name ever reaches the SQL text. Values travel only in
// the bind slice. Callers append their lookup key to the returned args and
// reference it as the next placeholder.
func BuildPartialUpdate(fields []FieldValue, columns map[string]string) (string, []any, error) {
	if len(fields) == 0 {
		return "", nil, apperror.BadRequest("No data")
	}

	clauses := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields))
	for _, f := range fields {
		col, ok := columns[f.Field]
		if !ok {
			return "", nil, apperror.BadRequest(fmt.Sprintf("Invalid field: %s", f.Field))
		}
		args = append(args, f.Value)
		clauses = append(clauses, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	return strings.Join(clauses, ", "), args, nil
}
