package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/jmoiron/sqlx"

	"tzform/infras/otel"
	"tzform/infras/postgres"
	"tzform/shared/constant"
	"tzform/shared/dto"
	"tzform/shared/logger"
)

var (
	errRequiredFilter = errors.New("required filter")

	// ErrNotFound is returned when no row matches the filter.
	ErrNotFound = errors.New("record not found")
)

// Table runs named sqlx queries for one entity against a read/write pair.
// Columns come from the `db` tags of T, embedded structs included.
type Table[T any] struct {
	db      *postgres.Connection
	otel    otel.Otel
	name    string
	entity  string
	key     string
	Columns []string
}

func NewTable[T any](entity, table, key string, db *postgres.Connection, otl otel.Otel) Table[T] {
	var zero T

	return Table[T]{
		db:      db,
		otel:    otl,
		name:    table,
		entity:  entity,
		key:     key,
		Columns: columnsOf(reflect.TypeOf(zero)),
	}
}

func (t *Table[T]) scope(ctx context.Context, op string) (context.Context, otel.Scope) {
	return t.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, t.entity, op))
}

func (t *Table[T]) fail(scope otel.Scope, action string, err error) error {
	logger.ErrorWithStack(err)
	scope.TraceError(err)

	return fmt.Errorf("failed to %s (%s): %w", action, t.entity, err)
}

// read prepares query on the read pool and hands the statement to fn.
func (t *Table[T]) read(ctx context.Context, scope otel.Scope, query string, fn func(*sqlx.NamedStmt) error) error {
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := t.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return t.fail(scope, "prepare statement", err)
	}
	defer stmt.Close()

	return fn(stmt)
}

// write runs query on the write pool and maps zero affected rows to ErrNotFound
// unless allowEmpty is set.
func (t *Table[T]) write(ctx context.Context, scope otel.Scope, action, query string, arg any, allowEmpty bool) error {
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := t.db.Write.NamedExecContext(ctx, query, arg)
	if err != nil {
		return t.fail(scope, action, err)
	}

	if allowEmpty {
		return nil
	}

	return affected(result)
}

func (t *Table[T]) Insert(ctx context.Context, row T) error {
	ctx, scope := t.scope(ctx, "Insert")
	defer scope.End()

	placeholders := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		placeholders[i] = ":" + col
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", t.name, strings.Join(t.Columns, ", "), strings.Join(placeholders, ", "))

	return t.write(ctx, scope, "insert data", query, row, true)
}

func (t *Table[T]) Get(ctx context.Context, filter dto.FilterGroup) (T, error) {
	ctx, scope := t.scope(ctx, "Get")
	defer scope.End()

	var row T

	where, args := whereClause(filter)
	query := fmt.Sprintf("SELECT %s FROM %s%s LIMIT 1", t.selectList(), t.name, where)

	err := t.read(ctx, scope, query, func(stmt *sqlx.NamedStmt) error {
		err := stmt.GetContext(ctx, &row, args)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}

		if err != nil {
			return t.fail(scope, "get data", err)
		}

		return nil
	})

	return row, err
}

// List applies params verbatim. Callers whitelist SortBy before it gets here.
func (t *Table[T]) List(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup) ([]T, error) {
	ctx, scope := t.scope(ctx, "List")
	defer scope.End()

	where, args := whereClause(filter)

	var clauses strings.Builder

	if params.SortBy != "" && params.SortDir != "" {
		// key breaks ties so pages stay stable
		fmt.Fprintf(&clauses, " ORDER BY %s %s, %s %s", params.SortBy, params.SortDir, t.key, params.SortDir)
	}

	if params.Limit > 0 {
		args["limit"] = params.Limit
		clauses.WriteString(" LIMIT :limit")

		if params.Page > 1 {
			args["offset"] = params.Offset()
			clauses.WriteString(" OFFSET :offset")
		}
	}

	query := fmt.Sprintf("SELECT %s FROM %s%s%s", t.selectList(), t.name, where, clauses.String())

	rows := []T{}

	err := t.read(ctx, scope, query, func(stmt *sqlx.NamedStmt) error {
		if err := stmt.SelectContext(ctx, &rows, args); err != nil {
			return t.fail(scope, "list data", err)
		}

		return nil
	})

	return rows, err
}

func (t *Table[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	ctx, scope := t.scope(ctx, "Count")
	defer scope.End()

	var count int

	where, args := whereClause(filter)
	query := fmt.Sprintf("SELECT COUNT(%s) FROM %s%s", t.key, t.name, where)

	err := t.read(ctx, scope, query, func(stmt *sqlx.NamedStmt) error {
		if err := stmt.GetContext(ctx, &count, args); err != nil {
			return t.fail(scope, "count data", err)
		}

		return nil
	})

	return count, err
}

// Update sets fields on every row matching filter. Column names in fields
// double as their bind names, so they must not collide with filter arguments.
func (t *Table[T]) Update(ctx context.Context, fields map[string]any, filter dto.FilterGroup) error {
	ctx, scope := t.scope(ctx, "Update")
	defer scope.End()

	where, args := whereClause(filter)
	if where == "" {
		return errRequiredFilter
	}

	assignments := make([]string, 0, len(fields))
	for _, col := range slices.Sorted(maps.Keys(fields)) {
		assignments = append(assignments, fmt.Sprintf("%s = :%s", col, col))
	}

	maps.Copy(args, fields)

	query := fmt.Sprintf("UPDATE %s SET %s%s", t.name, strings.Join(assignments, ", "), where)

	return t.write(ctx, scope, "update data", query, args, false)
}

func (t *Table[T]) Delete(ctx context.Context, filter dto.FilterGroup) error {
	ctx, scope := t.scope(ctx, "Delete")
	defer scope.End()

	where, args := whereClause(filter)
	if where == "" {
		return errRequiredFilter
	}

	query := fmt.Sprintf("DELETE FROM %s%s", t.name, where)

	return t.write(ctx, scope, "delete data", query, args, false)
}

func (t *Table[T]) selectList() string {
	qualified := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		qualified[i] = t.name + "." + col
	}

	return strings.Join(qualified, ", ")
}

func whereClause(filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()
	if where == "" {
		return "", map[string]any{}
	}

	return " WHERE " + where, args
}

func columnsOf(typ reflect.Type) []string {
	var columns []string

	for _, field := range reflect.VisibleFields(typ) {
		if field.Anonymous {
			continue
		}

		if tag := field.Tag.Get("db"); tag != "" && tag != "-" {
			columns = append(columns, tag)
		}
	}

	return columns
}

func affected(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}

	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
