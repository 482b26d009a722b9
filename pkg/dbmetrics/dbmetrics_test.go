package dbmetrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeTx struct {
	DBExecutor
}

func (f *fakeTx) Commit() error   { return nil }
func (f *fakeTx) Rollback() error { return nil }

func TestOperationOf(t *testing.T) {
	assert.Equal(t, "select", operationOf("SELECT content FROM site_content"))
	assert.Equal(t, "update", operationOf("  UPDATE site_content SET content = $1"))
	assert.Equal(t, "unknown", operationOf(""))
}

func TestGetExecutor_PrefersTransactionFromContext(t *testing.T) {
	fallback := &DB{}
	tx := &fakeTx{}

	assert.Same(t, fallback, GetExecutor(context.Background(), fallback))
	assert.False(t, IsInTransaction(context.Background()))

	ctx := WithTx(context.Background(), tx)
	assert.Same(t, tx, GetExecutor(ctx, fallback))
	assert.True(t, IsInTransaction(ctx))
}
