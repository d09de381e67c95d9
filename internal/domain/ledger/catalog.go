package ledger

import "github.com/jhoicas/Inventario-ledger/internal/domain/entity"

// defaultCatalog es la plantilla inicial; nunca se entrega sin copiar.
var defaultCatalog = []entity.Category{
	{
		Name: "Fruits",
		Products: []entity.Product{
			{Name: "Apples", Quantity: 10},
			{Name: "Bananas", Quantity: 5},
			{Name: "Oranges", Quantity: 8},
		},
	},
	{
		Name: "Vegetables",
		Products: []entity.Product{
			{Name: "Tomatoes", Quantity: 15},
			{Name: "Carrots", Quantity: 12},
			{Name: "Peppers", Quantity: 9},
		},
	},
}

// DefaultCatalog devuelve una copia profunda del catálogo por defecto.
func DefaultCatalog() []entity.Category {
	return entity.CloneCategories(defaultCatalog)
}
