// Package migrations embeds the goose migration scripts, one directory per
// SQL dialect.
package migrations

import (
	"embed"
	"io/fs"
)

//go:embed postgres/*.sql
var postgresFS embed.FS

//go:embed sqlite/*.sql
var sqliteFS embed.FS

// Postgres holds the PostgreSQL migration scripts.
var Postgres = mustSub(postgresFS, "postgres")

// SQLite holds the SQLite migration scripts.
var SQLite = mustSub(sqliteFS, "sqlite")

func mustSub(f embed.FS, dir string) fs.FS {
	sub, err := fs.Sub(f, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
