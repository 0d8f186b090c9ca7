// Package migrations embeds the goose migration scripts for both supported
// backends. Each backend gets its own dialect directory because the schema
// DDL differs slightly between PostgreSQL and SQLite.
package migrations

import "embed"

//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

const (
	PostgresDir = "postgres"
	SQLiteDir   = "sqlite"
)
