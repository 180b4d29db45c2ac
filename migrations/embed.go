// Package migrations embeds the goose SQL migrations of every service.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
