package preferences

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/securedocs/internal/client/client"
	"github.com/dmitrijs2005/securedocs/internal/common"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// every connection of :memory: is a separate database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, client.RunMigrations(context.Background(), db))
	return db
}

func TestSetAndGet_LocaleRoundTrip(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, common.LocalePreferenceKey, []byte("en")))

	v, err := r.Get(ctx, common.LocalePreferenceKey)
	require.NoError(t, err)
	require.Equal(t, []byte("en"), v)
}

func TestGet_NotExists_ReturnsNilNil(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	v, err := r.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSet_UpsertOverwritesValue(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "lang", []byte("ru")))
	require.NoError(t, r.Set(ctx, "lang", []byte("en")))

	v, err := r.Get(ctx, "lang")
	require.NoError(t, err)
	require.Equal(t, []byte("en"), v)

	m, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, m, 1)
}

func TestList_ReturnsAllPairs(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "a", []byte{0xAA}))
	require.NoError(t, r.Set(ctx, "b", []byte{0xBB, 0xCC}))

	m, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"a": {0xAA}, "b": {0xBB, 0xCC}}, m)
}

func TestDelete_RemovesKey_AndIsIdempotent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "x", []byte{0x01}))
	require.NoError(t, r.Delete(ctx, "x"))

	v, err := r.Get(ctx, "x")
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, r.Delete(ctx, "x"))
}

func newMock(t *testing.T) (*SQLiteRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteRepository(db), mock
}

func TestGet_DBErrorWrapped(t *testing.T) {
	r, mock := newMock(t)
	boom := errors.New("disk I/O error")
	mock.ExpectQuery(`SELECT value FROM preferences WHERE key = \?`).
		WithArgs("lang").
		WillReturnError(boom)

	v, err := r.Get(context.Background(), "lang")
	require.ErrorIs(t, err, boom)
	require.Nil(t, v)
	require.Contains(t, err.Error(), "failed to get preference[lang]")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSet_DBErrorWrapped(t *testing.T) {
	r, mock := newMock(t)
	boom := errors.New("database is locked")
	mock.ExpectExec(`INSERT INTO preferences`).
		WithArgs("lang", []byte("en")).
		WillReturnError(boom)

	err := r.Set(context.Background(), "lang", []byte("en"))
	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), "failed to set preference[lang]")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_DBErrorWrapped(t *testing.T) {
	r, mock := newMock(t)
	mock.ExpectExec(`DELETE FROM preferences WHERE key = \?`).
		WithArgs("lang").
		WillReturnError(errors.New("readonly"))

	err := r.Delete(context.Background(), "lang")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to delete preference[lang]")
}

func TestList_DBErrorWrapped(t *testing.T) {
	r, mock := newMock(t)
	mock.ExpectQuery(`SELECT key, value FROM preferences`).
		WillReturnError(errors.New("no such table"))

	_, err := r.List(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to list preferences")
}

func TestList_RowErrorWrapped(t *testing.T) {
	r, mock := newMock(t)
	rows := sqlmock.NewRows([]string{"key", "value"}).
		AddRow("lang", []byte("en")).
		RowError(0, errors.New("corrupt page"))
	mock.ExpectQuery(`SELECT key, value FROM preferences`).WillReturnRows(rows)

	_, err := r.List(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to iterate preference rows")
}
