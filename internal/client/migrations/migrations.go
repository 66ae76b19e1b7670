// Package migrations embeds the SQL migrations applied to the local console
// database on start-up.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
