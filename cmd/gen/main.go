package main

import (
	"kioskdash/internal/infra/persistence/postgres"

	"gorm.io/gen"
)

// Generates type-safe query helpers for the dashboard tables.
func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath:       "./internal/infra/persistence/postgres/query",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(postgres.Models()...)

	g.Execute()
}
