package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/resource-service/internal/logger"
	"github.com/MKhiriev/resource-service/models"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

var resourceRowColumns = []string{"id", "name", "description", "tags", "created_at"}

func newTestResourceRepo(t *testing.T) (*resourceRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	repo := &resourceRepository{
		db: &DB{
			DB:                 db,
			driver:             "pgx",
			builder:            dollarBuilder,
			errorClassificator: NewPostgresErrorClassifier(),
			logger:             l,
		},
		logger: l,
		now:    func() time.Time { return fixedNow },
	}
	return repo, mock
}

func TestCreateResource_Success(t *testing.T) {
	repo, mock := newTestResourceRepo(t)

	create := models.ResourceCreate{Name: "Docs", Tags: []string{"a", "b"}}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO resources")).
		WithArgs("Docs", nil, "a,b", fixedNow).
		WillReturnRows(sqlmock.NewRows(resourceRowColumns).
			AddRow(int64(1), "Docs", nil, "a,b", fixedNow))

	created, err := repo.CreateResource(context.Background(), create)
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Docs", created.Name)
	assert.Nil(t, created.Description)
	assert.Equal(t, []string{"a", "b"}, created.Tags)
	assert.Equal(t, fixedNow, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateResource_DBError(t *testing.T) {
	repo, mock := newTestResourceRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO resources")).
		WillReturnError(errors.New("db down"))

	_, err := repo.CreateResource(context.Background(), models.ResourceCreate{Name: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetResource_Success(t *testing.T) {
	repo, mock := newTestResourceRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, description, tags, created_at FROM resources WHERE id = $1")).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(resourceRowColumns).
			AddRow(int64(5), "Spec", "about", "", fixedNow))

	got, err := repo.GetResource(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, int64(5), got.ID)
	require.NotNil(t, got.Description)
	assert.Equal(t, "about", *got.Description)
	assert.NotNil(t, got.Tags)
	assert.Empty(t, got.Tags)
}

func TestGetResource_NotFound(t *testing.T) {
	repo, mock := newTestResourceRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM resources WHERE id = $1")).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(resourceRowColumns))

	_, err := repo.GetResource(context.Background(), 404)
	assert.ErrorIs(t, err, ErrResourceNotFound)
}

func TestGetResource_DBErrorIsNotNotFound(t *testing.T) {
	repo, mock := newTestResourceRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM resources WHERE id = $1")).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.GetResource(context.Background(), 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrResourceNotFound)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListResources_Success(t *testing.T) {
	repo, mock := newTestResourceRepo(t)

	query := models.ListQuery{Tag: "go", Limit: 2, Offset: 0}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM resources WHERE")).
		WithArgs("%,go,%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC, id DESC LIMIT 2 OFFSET 0")).
		WithArgs("%,go,%").
		WillReturnRows(sqlmock.NewRows(resourceRowColumns).
			AddRow(int64(3), "c", nil, "go", fixedNow).
			AddRow(int64(2), "b", "desc", "go,db", fixedNow.Add(-time.Minute)))
	mock.ExpectCommit()

	page, err := repo.ListResources(context.Background(), query)
	require.NoError(t, err)

	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 2, page.Limit)
	assert.Equal(t, 0, page.Offset)
	require.Len(t, page.Items, 2)
	assert.Equal(t, int64(3), page.Items[0].ID)
	assert.Equal(t, []string{"go", "db"}, page.Items[1].Tags)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListResources_EmptyPage(t *testing.T) {
	repo, mock := newTestResourceRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM resources")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectQuery(regexp.QuoteMeta("LIMIT 20 OFFSET 40")).
		WillReturnRows(sqlmock.NewRows(resourceRowColumns))
	mock.ExpectCommit()

	page, err := repo.ListResources(context.Background(), models.ListQuery{Limit: 20, Offset: 40})
	require.NoError(t, err)

	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListResources_BeginError(t *testing.T) {
	repo, mock := newTestResourceRepo(t)

	mock.ExpectBegin().WillReturnError(errors.New("cannot begin"))

	_, err := repo.ListResources(context.Background(), models.ListQuery{Limit: 20})
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestListResources_CountErrorRollsBack(t *testing.T) {
	repo, mock := newTestResourceRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
		WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	_, err := repo.ListResources(context.Background(), models.ListQuery{Limit: 20})
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListResources_CommitError(t *testing.T) {
	repo, mock := newTestResourceRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY")).
		WillReturnRows(sqlmock.NewRows(resourceRowColumns))
	mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

	_, err := repo.ListResources(context.Background(), models.ListQuery{Limit: 20})
	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

func TestUpdateResource_Success(t *testing.T) {
	repo, mock := newTestResourceRepo(t)

	name := "renamed"
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE resources SET name = $1 WHERE id = $2")).
		WithArgs("renamed", int64(4)).
		WillReturnRows(sqlmock.NewRows(resourceRowColumns).
			AddRow(int64(4), "renamed", nil, "a", fixedNow))

	got, err := repo.UpdateResource(context.Background(), models.ResourceUpdate{ID: 4, Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "renamed", got.Name)
	assert.Equal(t, []string{"a"}, got.Tags)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateResource_NotFound(t *testing.T) {
	repo, mock := newTestResourceRepo(t)

	name := "x"
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE resources")).
		WillReturnRows(sqlmock.NewRows(resourceRowColumns))

	_, err := repo.UpdateResource(context.Background(), models.ResourceUpdate{ID: 99, Name: &name})
	assert.ErrorIs(t, err, ErrResourceNotFound)
}

func TestUpdateResource_EmptyReadsCurrentRow(t *testing.T) {
	repo, mock := newTestResourceRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, description, tags, created_at FROM resources")).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(resourceRowColumns).
			AddRow(int64(4), "same", nil, "", fixedNow))

	got, err := repo.UpdateResource(context.Background(), models.ResourceUpdate{ID: 4})
	require.NoError(t, err)
	assert.Equal(t, "same", got.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteResource(t *testing.T) {
	tests := []struct {
		name    string
		result  driver.Result
		execErr error
		wantErr error
	}{
		{name: "deleted", result: sqlmock.NewResult(0, 1)},
		{name: "missing", result: sqlmock.NewResult(0, 0), wantErr: ErrResourceNotFound},
		{name: "db error", execErr: errors.New("boom"), wantErr: ErrExecutingQuery},
		{name: "rows affected error", result: sqlmock.NewErrorResult(errors.New("unsupported")), wantErr: ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestResourceRepo(t)

			exp := mock.ExpectExec(regexp.QuoteMeta("DELETE FROM resources WHERE id = $1")).WithArgs(int64(1))
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(tt.result)
			}

			err := repo.DeleteResource(context.Background(), 1)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
