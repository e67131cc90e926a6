package migrations

import "embed"

// FS contains the goose migrations for the social graph schema.
//
//go:embed *.sql
var FS embed.FS
