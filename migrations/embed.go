package migrations

import "embed"

// Files stores forward and rollback SQL migrations embedded into the
// binary. The startup runner applies *.up.sql; cmd/migrate feeds the
// same directory to golang-migrate for Postgres deployments.
//
//go:embed *.sql
var Files embed.FS
