// Package fusiondb holds all the migrations for the fusion middleware database
package fusiondb

import (
	"github.com/uptrace/bun/migrate"
)

// Migrations is the collection of all migrations for the fusion middleware database
var Migrations = migrate.NewMigrations()
