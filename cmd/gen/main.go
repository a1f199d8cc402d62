package main

import (
	"identity/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates type-safe query helpers for the identity model into ./internal/infra/persistence/postgres/query.
func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(model.IdentityModel{})

	g.Execute()
}
