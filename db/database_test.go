package db

import (
	"context"
	"path/filepath"
	"testing"

	"casa_hotels_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeAndMigrate(t *testing.T) {
	prev := DB
	t.Cleanup(func() { DB = prev })

	path := filepath.Join(t.TempDir(), "nested", "site.db")
	require.NoError(t, Initialize(path, "production"))
	t.Cleanup(func() { _ = Close() })

	require.NoError(t, Migrate())
	assert.NoError(t, Ping(context.Background()))

	for _, m := range Models() {
		assert.True(t, DB.Migrator().HasTable(m))
	}
	assert.True(t, DB.Migrator().HasIndex(&models.SessionValue{}, "idx_session_key"))
}

func TestUninitialized(t *testing.T) {
	prev := DB
	DB = nil
	t.Cleanup(func() { DB = prev })

	assert.Error(t, Migrate())
	assert.Error(t, Ping(context.Background()))
	assert.NoError(t, Close())
}
