// Package migrations holds the SQL schema applied by sql-migrate.
package migrations

import "embed"

// FS contains every migration file
//
//go:embed *.sql
var FS embed.FS
