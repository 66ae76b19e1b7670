package session

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T, path string) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSQLiteStore_EmptyReadsAsAnonymous(t *testing.T) {
	s := NewSQLiteStore(openTestDB(t, filepath.Join(t.TempDir(), "session.db")))
	ctx := context.Background()

	token, ok, err := s.Read(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, token)

	email, err := s.Identity(ctx)
	require.NoError(t, err)
	assert.Empty(t, email)
}

func TestSQLiteStore_WriteReadClear(t *testing.T) {
	s := NewSQLiteStore(openTestDB(t, filepath.Join(t.TempDir(), "session.db")))
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, "QpwL5tke4Pnpja7X4", "eve.holt@reqres.in"))

	token, ok, err := s.Read(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "QpwL5tke4Pnpja7X4", token)

	email, err := s.Identity(ctx)
	require.NoError(t, err)
	assert.Equal(t, "eve.holt@reqres.in", email)

	require.NoError(t, s.Write(ctx, "second", "janet.weaver@reqres.in"))
	token, _, err = s.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", token)

	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx), "clear must be idempotent")

	_, ok, err = s.Read(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")
	ctx := context.Background()

	db1, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, NewSQLiteStore(db1).Write(ctx, "tok", "eve.holt@reqres.in"))
	require.NoError(t, db1.Close())

	s := NewSQLiteStore(openTestDB(t, path))
	token, ok, err := s.Read(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok", token)
}

func newStoreWithMock(t *testing.T) (*SQLiteStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteStore(db), mock
}

func TestSQLiteStore_ReadDBError(t *testing.T) {
	s, mock := newStoreWithMock(t)

	mock.ExpectQuery(`SELECT value FROM session WHERE key = \?`).
		WithArgs(KeyToken).
		WillReturnError(errors.New("disk I/O error"))

	_, ok, err := s.Read(context.Background())
	require.Error(t, err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "failed to get session[token]")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_WriteRollsBackOnError(t *testing.T) {
	s, mock := newStoreWithMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO session`).
		WithArgs(KeyToken, "tok").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO session`).
		WithArgs(KeyEmail, "eve.holt@reqres.in").
		WillReturnError(errors.New("constraint failed"))
	mock.ExpectRollback()

	err := s.Write(context.Background(), "tok", "eve.holt@reqres.in")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to set session[email]")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_WriteCommits(t *testing.T) {
	s, mock := newStoreWithMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO session`).WithArgs(KeyToken, "tok").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO session`).WithArgs(KeyEmail, "e@x.io").WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	require.NoError(t, s.Write(context.Background(), "tok", "e@x.io"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_ClearDBError(t *testing.T) {
	s, mock := newStoreWithMock(t)

	mock.ExpectExec(`DELETE FROM session`).WillReturnError(errors.New("locked"))

	err := s.Clear(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to clear session")
}
