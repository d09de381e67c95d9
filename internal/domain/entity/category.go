package entity

// Category agrupa productos bajo un nombre único dentro del ledger.
// Los tags JSON siguen el formato persistido por el navegador (clave "category").
type Category struct {
	Name     string    `json:"category"`
	Products []Product `json:"products"`
}

// FindProduct devuelve el índice del producto con ese nombre exacto, o -1.
func (c *Category) FindProduct(name string) int {
	for i := range c.Products {
		if c.Products[i].Name == name {
			return i
		}
	}
	return -1
}

// Clone copia la categoría y su lista de productos.
func (c Category) Clone() Category {
	out := Category{Name: c.Name, Products: make([]Product, len(c.Products))}
	copy(out.Products, c.Products)
	return out
}

// CloneCategories copia profunda de una lista de categorías (nunca devuelve nil).
func CloneCategories(in []Category) []Category {
	out := make([]Category, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}
