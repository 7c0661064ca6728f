// Package migrations держит SQL-миграции goose внутри бинарника.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
