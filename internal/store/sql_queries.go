package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/resource-service/models"
)

const resourcesTable = "resources"

var resourceColumns = []string{"id", "name", "description", "tags", "created_at"}

var returningResourceColumns = "RETURNING " + strings.Join(resourceColumns, ", ")

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralises LIKE wildcards so user input is matched literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// resourceFilter builds the WHERE condition of list and count queries.
// It returns nil when the query carries no filters.
//
// q matches name OR description as a case-insensitive substring; any
// non-empty q filters, whitespace included. tag matches one whole tag of the
// comma-joined column: the column is wrapped in separators so "a" never
// matches inside "ab". Both sides are folded by the database's LOWER so
// column and pattern always agree.
func resourceFilter(query models.ListQuery) sq.Sqlizer {
	conditions := sq.And{}

	if query.Query != "" {
		pattern := "%" + escapeLike(query.Query) + "%"
		conditions = append(conditions, sq.Or{
			sq.Expr(`LOWER(name) LIKE LOWER(?) ESCAPE '\'`, pattern),
			sq.Expr(`LOWER(COALESCE(description, '')) LIKE LOWER(?) ESCAPE '\'`, pattern),
		})
	}

	if tag := strings.TrimSpace(query.Tag); tag != "" {
		pattern := "%" + models.TagSeparator + escapeLike(tag) + models.TagSeparator + "%"
		conditions = append(conditions,
			sq.Expr(`(',' || LOWER(COALESCE(tags, '')) || ',') LIKE LOWER(?) ESCAPE '\'`, pattern),
		)
	}

	if len(conditions) == 0 {
		return nil
	}
	return conditions
}

func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func buildInsertResourceQuery(builder sq.StatementBuilderType, create models.ResourceCreate, createdAt time.Time) (string, []any, error) {
	return builder.
		Insert(resourcesTable).
		Columns("name", "description", "tags", "created_at").
		Values(create.Name, nullableString(create.Description), models.EncodeTags(create.Tags), createdAt).
		Suffix(returningResourceColumns).
		ToSql()
}

func buildSelectResourceQuery(builder sq.StatementBuilderType, id int64) (string, []any, error) {
	return builder.
		Select(resourceColumns...).
		From(resourcesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildCountResourcesQuery(builder sq.StatementBuilderType, query models.ListQuery) (string, []any, error) {
	selectBuilder := builder.Select("COUNT(*)").From(resourcesTable)
	if filter := resourceFilter(query); filter != nil {
		selectBuilder = selectBuilder.Where(filter)
	}

	return selectBuilder.ToSql()
}

func buildListResourcesQuery(builder sq.StatementBuilderType, query models.ListQuery) (string, []any, error) {
	selectBuilder := builder.Select(resourceColumns...).From(resourcesTable)
	if filter := resourceFilter(query); filter != nil {
		selectBuilder = selectBuilder.Where(filter)
	}

	return selectBuilder.
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(query.Limit)).
		Offset(uint64(query.Offset)).
		ToSql()
}

// buildUpdateResourceQuery sets only the fields present in update.
// Squirrel refuses an UPDATE without SET clauses, so callers handle empty
// updates before getting here.
func buildUpdateResourceQuery(builder sq.StatementBuilderType, update models.ResourceUpdate) (string, []any, error) {
	updateBuilder := builder.Update(resourcesTable)

	if update.Name != nil {
		updateBuilder = updateBuilder.Set("name", *update.Name)
	}
	if update.Description != nil {
		updateBuilder = updateBuilder.Set("description", *update.Description)
	}
	if update.Tags != nil {
		updateBuilder = updateBuilder.Set("tags", models.EncodeTags(*update.Tags))
	}

	return updateBuilder.
		Where(sq.Eq{"id": update.ID}).
		Suffix(returningResourceColumns).
		ToSql()
}

func buildDeleteResourceQuery(builder sq.StatementBuilderType, id int64) (string, []any, error) {
	return builder.
		Delete(resourcesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}
