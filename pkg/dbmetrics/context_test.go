package dbmetrics

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeTx struct{ DBExecutor }

func (fakeTx) Commit() error   { return nil }
func (fakeTx) Rollback() error { return nil }

type fakeDB struct{}

func (fakeDB) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}
func (fakeDB) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}
func (fakeDB) QueryRowContext(context.Context, string, ...interface{}) *sql.Row { return nil }

func TestGetExecutor(t *testing.T) {
	db := fakeDB{}
	ctx := context.Background()

	assert.False(t, IsInTransaction(ctx))
	assert.Equal(t, db, GetExecutor(ctx, db))

	tx := &fakeTx{DBExecutor: db}
	txCtx := WithTx(ctx, tx)

	assert.True(t, IsInTransaction(txCtx))
	assert.Same(t, tx, GetExecutor(txCtx, db))
}
