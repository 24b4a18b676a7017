package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitDDLStatements(t *testing.T) {
	content := `
-- leading comment
CREATE TABLE a (
  id STRING(36) NOT NULL,
) PRIMARY KEY (id);

CREATE INDEX a_by_id ON a(id);
;
`
	statements := splitDDLStatements(content)

	require.Len(t, statements, 2)
	assert.Equal(t, "CREATE TABLE a (\nid STRING(36) NOT NULL,\n) PRIMARY KEY (id)", statements[0])
	assert.Equal(t, "CREATE INDEX a_by_id ON a(id)", statements[1])
}

func TestInitialSchemaDeclaresUniqueVariantIndex(t *testing.T) {
	content, err := os.ReadFile(filepath.Join("..", "..", "migrations", "001_initial_schema.sql"))
	require.NoError(t, err)

	statements := splitDDLStatements(string(content))

	assert.Contains(t, statements, "CREATE UNIQUE INDEX IF NOT EXISTS skus_by_spu_variant ON skus(spu_id, variant_hash)")
	assert.Contains(t, statements, "CREATE INDEX IF NOT EXISTS sku_prices_by_sku_type ON sku_prices(sku_id, price_type)")
}

func TestSplitDDLStatements_TrailingComments(t *testing.T) {
	content := "CREATE TABLE b (\n  id STRING(36) NOT NULL, -- primary key\n) PRIMARY KEY (id); -- done\n"

	statements := splitDDLStatements(content)

	require.Len(t, statements, 1)
	assert.Equal(t, "CREATE TABLE b (\nid STRING(36) NOT NULL,\n) PRIMARY KEY (id)", statements[0])
}

func TestMigrationFiles(t *testing.T) {
	t.Run("sorted by name", func(t *testing.T) {
		dir := t.TempDir()
		for _, name := range []string{"010_later.sql", "002_second.sql", "001_first.sql", "notes.txt"} {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1;"), 0o600))
		}

		files, err := migrationFiles(dir)
		require.NoError(t, err)
		require.Len(t, files, 3)
		assert.Equal(t, "001_first.sql", filepath.Base(files[0]))
		assert.Equal(t, "002_second.sql", filepath.Base(files[1]))
		assert.Equal(t, "010_later.sql", filepath.Base(files[2]))
	})

	t.Run("empty directory is an error", func(t *testing.T) {
		_, err := migrationFiles(t.TempDir())
		assert.Error(t, err)
	})

	t.Run("repository migrations are found", func(t *testing.T) {
		files, err := migrationFiles(filepath.Join("..", "..", "migrations"))
		require.NoError(t, err)
		assert.Equal(t, "001_initial_schema.sql", filepath.Base(files[0]))
	})
}
