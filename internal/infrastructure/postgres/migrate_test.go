package postgres

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateURL(t *testing.T) {
	assert.Equal(t, "pgx5://u:p@db:5432/fin?sslmode=disable", migrateURL("postgres://u:p@db:5432/fin?sslmode=disable"))
	assert.Equal(t, "pgx5://u@host/fin", migrateURL("postgresql://u@host/fin"))
	assert.Equal(t, "pgx5://ya", migrateURL("pgx5://ya"))
}

func TestMigrationsEmbebidas(t *testing.T) {
	files, err := fs.Glob(migrationsFS, "migrations/*.sql")
	require.NoError(t, err)
	assert.Contains(t, files, "migrations/000001_init.up.sql")
	assert.Contains(t, files, "migrations/000001_init.down.sql")
}
