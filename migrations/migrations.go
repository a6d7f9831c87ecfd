// Package migrations embeds the SQL schema files. Every statement is safe to
// run again against an already migrated database.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
