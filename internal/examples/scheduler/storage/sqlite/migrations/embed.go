package migrations

import "embed"

// FS contains embedded SQLite migrations for scheduler storage.
//
//go:embed *.sql
var FS embed.FS
