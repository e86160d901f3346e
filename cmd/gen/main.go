package main

import (
	"inventario/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.CategoryModel{},
		model.ProductModel{},
		model.SaleModel{},
		model.SaleLineModel{},
		model.PurchaseModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
