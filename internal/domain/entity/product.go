package entity

// Product es un artículo dentro de una categoría. Quantity nunca es negativa.
type Product struct {
	Name     string `json:"product"`
	Quantity int    `json:"quantity"`
}
