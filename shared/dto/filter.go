package dto

import (
	"fmt"
	"maps"
	"reflect"
	"strings"
)

const (
	FilterOperatorEq        = "eq"
	FilterOperatorNotEq     = "not_eq"
	FilterOperatorLike      = "like"
	FilterOperatorIn        = "in"
	FilterOperatorLessEq    = "less_eq"
	FilterOperatorGreaterEq = "greater_eq"
	FilterIsNull            = "is_null"
	FilterIsNotNull         = "is_not_null"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

// comparisons bind a single named argument.
var comparisons = map[string]string{
	FilterOperatorEq:        "%s = :%s",
	FilterOperatorNotEq:     "%s != :%s",
	FilterOperatorLessEq:    "%s <= :%s",
	FilterOperatorGreaterEq: "%s >= :%s",
}

// Filter is one predicate on a column. ArgName overrides the bind name when
// the same column appears twice in a group.
type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq not_eq like in less_eq greater_eq is_null is_not_null"`
	Table    string
}

func (f *Filter) column() string {
	if f.Table == "" {
		return f.Field
	}

	return f.Table + "." + f.Field
}

func (f *Filter) argName() string {
	if f.ArgName == "" {
		return f.Field
	}

	return f.ArgName
}

// GetWhereClause renders the predicate with sqlx named binds. Unknown
// operators render nothing.
func (f *Filter) GetWhereClause() (string, map[string]any) {
	column, name := f.column(), f.argName()
	args := map[string]any{}

	if format, ok := comparisons[f.Operator]; ok {
		args[name] = f.Value

		return fmt.Sprintf(format, column, name), args
	}

	switch f.Operator {
	case FilterOperatorLike:
		args[name] = fmt.Sprintf("%%%v%%", f.Value)

		return fmt.Sprintf("LOWER(%s) LIKE LOWER(:%s)", column, name), args
	case FilterOperatorIn:
		values := reflect.ValueOf(f.Value)
		if kind := values.Kind(); kind != reflect.Slice && kind != reflect.Array {
			args[name] = f.Value

			return fmt.Sprintf("%s = :%s", column, name), args
		}

		if values.Len() == 0 {
			return "FALSE", args
		}

		binds := make([]string, values.Len())
		for i := range values.Len() {
			key := fmt.Sprintf("%s_%d", name, i)
			args[key] = values.Index(i).Interface()
			binds[i] = ":" + key
		}

		return fmt.Sprintf("%s IN (%s)", column, strings.Join(binds, ", ")), args
	case FilterIsNull:
		return column + " IS NULL", args
	case FilterIsNotNull:
		return column + " IS NOT NULL", args
	default:
		return "", args
	}
}

// FilterGroup joins Filters and nested FilterGroups with Operator, AND when empty.
type FilterGroup struct {
	Filters  []any
	Operator string
}

func (f *FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	clauses := make([]string, 0, len(f.Filters))

	for _, item := range f.Filters {
		var where string
		var arg map[string]any

		switch typed := item.(type) {
		case Filter:
			where, arg = typed.GetWhereClause()
		case FilterGroup:
			where, arg = typed.GetWhereClause()
		default:
			continue
		}

		if where == "" {
			continue
		}

		clauses = append(clauses, where)
		maps.Copy(args, arg)
	}

	if len(clauses) == 0 {
		return "", args
	}

	operator := f.Operator
	if operator == "" {
		operator = FilterGroupOperatorAnd
	}

	return "(" + strings.Join(clauses, " "+operator+" ") + ")", args
}
