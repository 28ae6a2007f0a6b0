// Package migrations embeds the admin SQLite schema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
