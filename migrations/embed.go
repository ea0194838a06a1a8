// Package migrations embeds the goose SQL migrations so the binary can
// migrate its own schema (`service migrate up`, or database.migrate_on_start).
package migrations

import "embed"

// FS holds every *.sql migration, for goose.NewProvider.
//
//go:embed *.sql
var FS embed.FS
