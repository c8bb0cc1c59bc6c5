package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/resource-service/internal/logger"
	"github.com/MKhiriev/resource-service/models"
)

// resourceRepository is the SQL-backed implementation of [ResourceRepository].
// Queries are built with squirrel using the placeholder format of the
// connected driver, so the same code serves PostgreSQL and SQLite.
type resourceRepository struct {
	db     *DB
	logger *logger.Logger

	// now stamps created_at on insert.
	now func() time.Time
}

// NewResourceRepository constructs a [ResourceRepository] backed by db.
func NewResourceRepository(db *DB, logger *logger.Logger) ResourceRepository {
	logger.Debug().Msg("creating resource repository")
	return &resourceRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanResource(row rowScanner) (models.Resource, error) {
	var (
		resource    models.Resource
		description sql.NullString
		tags        sql.NullString
		createdAt   timestamp
	)

	if err := row.Scan(&resource.ID, &resource.Name, &description, &tags, &createdAt); err != nil {
		return models.Resource{}, err
	}

	if description.Valid {
		resource.Description = &description.String
	}
	resource.Tags = models.DecodeTags(tags.String)
	resource.CreatedAt = createdAt.UTC()

	return resource, nil
}

func (r *resourceRepository) CreateResource(ctx context.Context, create models.ResourceCreate) (models.Resource, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertResourceQuery(r.db.builder, create, r.now())
	if err != nil {
		log.Err(err).Str("func", "*resourceRepository.CreateResource").Msg("error building insert query")
		return models.Resource{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	resource, err := scanResource(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*resourceRepository.CreateResource").
			Stringer("classification", r.db.classify(err)).
			Msg("error inserting resource")
		return models.Resource{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return resource, nil
}

// GetResource returns [ErrResourceNotFound] when no row has the given id.
func (r *resourceRepository) GetResource(ctx context.Context, id int64) (models.Resource, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectResourceQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*resourceRepository.GetResource").Msg("error building select query")
		return models.Resource{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	resource, err := scanResource(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Resource{}, ErrResourceNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*resourceRepository.GetResource").
			Stringer("classification", r.db.classify(err)).
			Msg("error selecting resource")
		return models.Resource{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return resource, nil
}

// ListResources runs the count and the page query in one read-only
// transaction so total and items describe the same snapshot.
func (r *resourceRepository) ListResources(ctx context.Context, listQuery models.ListQuery) (page models.ResourcePage, err error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := buildCountResourcesQuery(r.db.builder, listQuery)
	if err != nil {
		log.Err(err).Str("func", "*resourceRepository.ListResources").Msg("error building count query")
		return models.ResourcePage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	pageQuery, pageArgs, err := buildListResourcesQuery(r.db.builder, listQuery)
	if err != nil {
		log.Err(err).Str("func", "*resourceRepository.ListResources").Msg("error building list query")
		return models.ResourcePage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		log.Err(err).Str("func", "*resourceRepository.ListResources").Msg("error beginning transaction")
		return models.ResourcePage{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				log.Err(rbErr).Str("func", "*resourceRepository.ListResources").Msg("error rolling back transaction")
			}
		}
	}()

	page = models.ResourcePage{
		Limit:  listQuery.Limit,
		Offset: listQuery.Offset,
		Items:  make([]models.Resource, 0),
	}

	if err = tx.QueryRowContext(ctx, countQuery, countArgs...).Scan(&page.Total); err != nil {
		log.Err(err).Str("func", "*resourceRepository.ListResources").
			Stringer("classification", r.db.classify(err)).
			Msg("error counting resources")
		return models.ResourcePage{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rows, err := tx.QueryContext(ctx, pageQuery, pageArgs...)
	if err != nil {
		log.Err(err).Str("func", "*resourceRepository.ListResources").
			Stringer("classification", r.db.classify(err)).
			Msg("error selecting resources")
		return models.ResourcePage{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		resource, scanErr := scanResource(rows)
		if scanErr != nil {
			err = scanErr
			log.Err(err).Str("func", "*resourceRepository.ListResources").Msg("error scanning resource row")
			return models.ResourcePage{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		page.Items = append(page.Items, resource)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*resourceRepository.ListResources").Msg("error iterating resource rows")
		return models.ResourcePage{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*resourceRepository.ListResources").Msg("error committing transaction")
		return models.ResourcePage{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return page, nil
}

// UpdateResource writes the non-nil fields of update. An update with no
// fields returns the current row unchanged.
func (r *resourceRepository) UpdateResource(ctx context.Context, update models.ResourceUpdate) (models.Resource, error) {
	if update.IsEmpty() {
		return r.GetResource(ctx, update.ID)
	}

	log := logger.FromContext(ctx)

	query, args, err := buildUpdateResourceQuery(r.db.builder, update)
	if err != nil {
		log.Err(err).Str("func", "*resourceRepository.UpdateResource").Msg("error building update query")
		return models.Resource{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	resource, err := scanResource(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Resource{}, ErrResourceNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*resourceRepository.UpdateResource").
			Stringer("classification", r.db.classify(err)).
			Msg("error updating resource")
		return models.Resource{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return resource, nil
}

// DeleteResource returns [ErrResourceNotFound] when no row was removed.
func (r *resourceRepository) DeleteResource(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteResourceQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*resourceRepository.DeleteResource").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*resourceRepository.DeleteResource").
			Stringer("classification", r.db.classify(err)).
			Msg("error deleting resource")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*resourceRepository.DeleteResource").Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrResourceNotFound
	}

	return nil
}
