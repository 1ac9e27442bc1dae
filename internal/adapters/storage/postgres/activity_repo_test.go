package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"riavet-admin/internal/adapters/storage/postgres/migrations"
	"riavet-admin/internal/domain/activity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*ActivityRepo, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewActivityRepo(db), mock, db
}

func TestActivityRepo_Append(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	at := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	mock.ExpectExec(`(?s)INSERT\s+INTO\s+activity_entries\s*\(id,\s*entity,\s*action,\s*entity_id,\s*operator,\s*at\)`).
		WithArgs("e-1", "invoice", "status", "i-1", "caja", at).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Append(context.Background(), activity.Entry{
		ID: "e-1", Entity: "invoice", Action: "status", EntityID: "i-1", Operator: "caja", At: at,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityRepo_AppendError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT\s+INTO\s+activity_entries`).WillReturnError(errors.New("db down"))

	err := repo.Append(context.Background(), activity.Entry{ID: "e-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert activity: db down")
}

func TestActivityRepo_RecentClampsLimit(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	at := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "entity", "action", "entity_id", "operator", "at"}).
		AddRow("e-2", "patient", "merge", "p-1", "system", at.Add(time.Minute)).
		AddRow("e-1", "owner", "create", "o-1", "recepcion", at)
	mock.ExpectQuery(`(?s)SELECT\s+id,\s*entity,\s*action,\s*entity_id,\s*operator,\s*at\s+FROM\s+activity_entries\s+ORDER\s+BY\s+at\s+DESC\s+LIMIT\s+\$1`).
		WithArgs(activity.MaxLimit).
		WillReturnRows(rows)

	got, err := repo.Recent(context.Background(), 1000)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "merge", got[0].Action)
	assert.Equal(t, "recepcion", got[1].Operator)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate_UsesEmbeddedFS(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	orig := gooseUp
	defer func() { gooseUp = orig }()

	var dir string
	gooseUp = func(_ context.Context, _ *sql.DB, d string) error {
		dir = d
		return errors.New("boom")
	}

	err = Migrate(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migrate: boom")
	assert.Equal(t, ".", dir)
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrations.FS.ReadDir(".")
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "00001_create_activity_entries.sql", entries[0].Name())
}
