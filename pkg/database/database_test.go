package database

import (
	"testing"

	"exam_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialectorByDriver(t *testing.T) {
	for _, driver := range []string{"mysql", "postgres", "sqlite"} {
		d, err := Dialector(&config.DatabaseConfig{Driver: driver, DBName: "exams"})
		require.NoError(t, err, driver)
		assert.Equal(t, driver, d.Name())
	}

	_, err := Dialector(&config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestInitDBMigratesSQLite(t *testing.T) {
	db, err := InitDB(&config.DatabaseConfig{
		Driver:      "sqlite",
		DSN:         "file:initdb_test?mode=memory&cache=shared",
		AutoMigrate: true,
	}, "release")
	require.NoError(t, err)

	for _, table := range []string{"quizzes", "questions", "options", "answers", "attempts", "answers_comment", "users", "subjects"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.True(t, db.Migrator().HasIndex("answers", "idx_answers_natural_key"))
	assert.True(t, db.Migrator().HasIndex("answers_comment", "idx_comments_natural_key"))
}
