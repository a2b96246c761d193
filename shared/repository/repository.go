package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"lumen/infras/otel"
	"lumen/infras/postgres"
	"lumen/shared/constant"
	"lumen/shared/dto"
	"lumen/shared/failure"
	"lumen/shared/logger"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/lib/pq"
)

var (
	errRequiredFilter = errors.New("required filter")
	errEmptyUpdate    = errors.New("empty update")
)

type column struct {
	name  string
	table string
	alias string
}

// Repository is the relational gateway shared by every entity. Columns come from the
// db, table, column and generated struct tags of T.
type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entitas       string
	primaryColumn string
	columns       []column
	join          string
	insertQuery   string
	InsertColumns []string
}

func NewRepository[T any](entitasName, tableName, primaryColumn string, dbConnection *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	columns, insertColumns := getColumns(tableName, reflect.TypeOf(zero))

	join := ""
	if joiner, ok := any(zero).(interface{ GetJoinQuery() string }); ok {
		join = joiner.GetJoinQuery()
	}

	placeholders := make([]string, len(insertColumns))
	for i, col := range insertColumns {
		placeholders[i] = ":" + col
	}

	return Repository[T]{
		db:            dbConnection,
		otel:          otl,
		table:         tableName,
		entitas:       entitasName,
		primaryColumn: primaryColumn,
		columns:       columns,
		join:          join,
		insertQuery:   fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", tableName, strings.Join(insertColumns, ", "), strings.Join(placeholders, ", ")),
		InsertColumns: insertColumns,
	}
}

// classify maps driver errors onto the failure taxonomy. Constraint violations become
// conflicts and every other store error is reported as storage unavailable.
func (repo *Repository[T]) classify(action string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case constant.PqErrorCodeUniqueViolation:
			return fmt.Errorf("failed to %s (%s): %w", action, repo.entitas, failure.Conflict(repo.entitas+" already exists"))
		case constant.PqErrorCodeFkViolation:
			return fmt.Errorf("failed to %s (%s): %w", action, repo.entitas, failure.Conflict(repo.entitas+" references a missing record"))
		}
	}

	return fmt.Errorf("failed to %s (%s): %w", action, repo.entitas, failure.StorageUnavailable(err))
}

func (repo *Repository[T]) newScope(ctx context.Context, operation string) (context.Context, otel.Scope) {
	return repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entitas, operation))
}

func (repo *Repository[T]) fail(scope otel.Scope, action string, err error) error {
	logger.ErrorWithStack(err)
	scope.TraceError(err)

	return repo.classify(action, err)
}

// getOne runs a single-row read into dest. sql.ErrNoRows is returned unclassified.
func (repo *Repository[T]) getOne(ctx context.Context, scope otel.Scope, action, query string, dest, args any) error {
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return repo.fail(scope, "prepare statement", err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, dest, args)
	if err == nil || errors.Is(err, sql.ErrNoRows) {
		return err //nolint:wrapcheck
	}

	return repo.fail(scope, action, err)
}

func (repo *Repository[T]) exec(ctx context.Context, scope otel.Scope, action, query string, args any) error {
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.db.Write.NamedExecContext(ctx, query, args); err != nil {
		return repo.fail(scope, action, err)
	}

	return nil
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	ctx, scope := repo.newScope(ctx, "Insert")
	defer scope.End()

	return repo.exec(ctx, scope, "insert data", repo.insertQuery, model)
}

// InsertReturningID inserts model and returns the key assigned by the table sequence.
func (repo *Repository[T]) InsertReturningID(ctx context.Context, model T) (int64, error) {
	ctx, scope := repo.newScope(ctx, "InsertReturningID")
	defer scope.End()

	query := repo.insertQuery + " RETURNING " + repo.primaryColumn
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := repo.db.Write.PrepareNamedContext(ctx, query)
	if err != nil {
		return 0, repo.fail(scope, "prepare insert", err)
	}
	defer prepare.Close()

	var id int64

	if err = prepare.GetContext(ctx, &id, model); err != nil {
		return 0, repo.fail(scope, "insert data", err)
	}

	return id, nil
}

// InsertBulk writes every model in one multi-row statement.
func (repo *Repository[T]) InsertBulk(ctx context.Context, models []T) error {
	ctx, scope := repo.newScope(ctx, "InsertBulk")
	defer scope.End()

	if len(models) == 0 {
		return nil
	}

	scope.SetAttribute("rows", len(models))

	return repo.exec(ctx, scope, "bulk insert data", repo.insertQuery, models)
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	ctx, scope := repo.newScope(ctx, "Exist")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return false, errRequiredFilter
	}

	var exist bool

	err := repo.getOne(ctx, scope, "check exist data", fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s %s)", repo.table, where), &exist, args)

	return exist, err
}

// Get returns the zero value of T when no row matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	ctx, scope := repo.newScope(ctx, "Get")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	query := fmt.Sprintf("SELECT %s FROM %s %s %s", repo.getSelectQuery(ctx, columns...), repo.table, repo.join, where)

	var model T

	err := repo.getOne(ctx, scope, "get data", query, &model, args)
	if errors.Is(err, sql.ErrNoRows) {
		var zero T

		return zero, nil
	}

	return model, err
}

func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	ctx, scope := repo.newScope(ctx, "GetAll")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)

	var pagination string

	switch {
	case params.Page > 0 && params.Limit > 0:
		args["limit"] = params.Limit
		args["offset"] = params.Offset()

		pagination = "LIMIT :limit OFFSET :offset"
	case params.Limit > 0:
		args["limit"] = params.Limit

		pagination = "LIMIT :limit"
	}

	query := fmt.Sprintf("SELECT %s FROM %s %s %s %s %s", repo.getSelectQuery(ctx, columns...), repo.table, repo.join, where, params.OrderBy(), pagination)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var models []T

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return models, repo.fail(scope, "prepare statement", err)
	}
	defer prepare.Close()

	if err = prepare.SelectContext(ctx, &models, args); err != nil {
		return models, repo.fail(scope, "get all data", err)
	}

	return models, nil
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	ctx, scope := repo.newScope(ctx, "Count")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	query := fmt.Sprintf("SELECT COUNT(%s.%s) FROM %s %s %s", repo.table, repo.primaryColumn, repo.table, repo.join, where)

	var count int

	err := repo.getOne(ctx, scope, "count data", query, &count, args)

	return count, err
}

// Delete refuses to run without a filter.
func (repo *Repository[T]) Delete(ctx context.Context, filter dto.FilterGroup) error {
	ctx, scope := repo.newScope(ctx, "Delete")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return errRequiredFilter
	}

	return repo.exec(ctx, scope, "delete data", fmt.Sprintf("DELETE FROM %s %s", repo.table, where), args)
}

// Update sets the columns in mod on every row matching filter, in one statement.
func (repo *Repository[T]) Update(ctx context.Context, mod map[string]any, filter dto.FilterGroup) error {
	ctx, scope := repo.newScope(ctx, "Update")
	defer scope.End()

	if len(mod) == 0 {
		return errEmptyUpdate
	}

	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return errRequiredFilter
	}

	return repo.exec(ctx, scope, "update data", fmt.Sprintf("UPDATE %s SET %s %s", repo.table, setClause(mod), where), mergeArgs(args, mod))
}

func (repo *Repository[T]) getSelectQuery(ctx context.Context, names ...string) string {
	_, scope := repo.newScope(ctx, "getSelectQuery")
	defer scope.End()

	selected := make([]string, 0, len(repo.columns))

	for _, col := range repo.columns {
		if len(names) > 0 && !slices.Contains(names, col.name) {
			continue
		}

		selected = append(selected, col.expression())
	}

	return strings.Join(selected, ", ")
}

func (repo *Repository[T]) BuildWhereClause(ctx context.Context, filter dto.FilterGroup) (string, map[string]any) {
	_, scope := repo.newScope(ctx, "BuildWhereClause")
	defer scope.End()

	where, args := filter.GetWhereClause()

	if where == "" {
		return where, map[string]any{}
	}

	return fmt.Sprintf(" WHERE %s ", where), args
}

func (c column) expression() string {
	switch {
	case c.table == "":
		return c.name
	case c.alias != "":
		return fmt.Sprintf("%s.%s AS %s", c.table, c.name, c.alias)
	default:
		return fmt.Sprintf("%s.%s", c.table, c.name)
	}
}

// setClause renders "col = :col" pairs in a stable order.
func setClause(mod map[string]any) string {
	cols := slices.Sorted(maps.Keys(mod))

	pairs := make([]string, len(cols))
	for i, col := range cols {
		pairs[i] = fmt.Sprintf("%s = :%s", col, col)
	}

	return strings.Join(pairs, ", ")
}

func mergeArgs(args, mod map[string]any) map[string]any {
	merged := make(map[string]any, len(args)+len(mod))
	maps.Copy(merged, args)
	maps.Copy(merged, mod)

	return merged
}

// getColumns walks the fields of reflectType, descending into embedded structs.
// Fields owned by a joined table are selectable but never inserted.
func getColumns(table string, reflectType reflect.Type) (columns []column, insertColumns []string) {
	for i := range reflectType.NumField() {
		field := reflectType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			embedded, embeddedInsert := getColumns(table, field.Type)
			columns = append(columns, embedded...)
			insertColumns = append(insertColumns, embeddedInsert...)

			continue
		}

		dbTag := field.Tag.Get("db")
		if dbTag == "" {
			continue
		}

		owner := field.Tag.Get("table")
		if owner == "" {
			owner = table
		}

		if owner == table && field.Tag.Get("generated") != "true" {
			insertColumns = append(insertColumns, dbTag)
		}

		if name := field.Tag.Get("column"); name != "" {
			columns = append(columns, column{name: name, table: owner, alias: dbTag})
		} else {
			columns = append(columns, column{name: dbTag, table: owner})
		}
	}

	return columns, insertColumns
}
