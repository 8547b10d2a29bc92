package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationSource_Ordered(t *testing.T) {
	migrations, err := MigrationSource().FindMigrations()
	require.NoError(t, err)
	require.Len(t, migrations, 3)

	assert.Equal(t, "0001_create_meetings.sql", migrations[0].Id)
	assert.Equal(t, "0002_create_meeting_shares.sql", migrations[1].Id)
	assert.Equal(t, "0003_create_action_items.sql", migrations[2].Id)

	for _, m := range migrations {
		assert.NotEmpty(t, m.Up, m.Id)
		assert.NotEmpty(t, m.Down, m.Id)
	}
}

func TestMigrationSource_SharesReferenceMeetings(t *testing.T) {
	migrations, err := MigrationSource().FindMigrations()
	require.NoError(t, err)

	up := migrations[1].Up
	require.NotEmpty(t, up)
	assert.Contains(t, up[0], "REFERENCES meetings (id)")
	assert.Contains(t, up[0], "share_token VARCHAR(64) NOT NULL UNIQUE")
}
