package products

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	InStock     bool    `json:"inStock"`
}

// Fields is everything about a product except its id.
type Fields struct {
	Name        string
	Description string
	Price       float64
	Category    string
	InStock     bool
}

func (f Fields) withID(id string) Product {
	return Product{
		ID:          id,
		Name:        f.Name,
		Description: f.Description,
		Price:       f.Price,
		Category:    f.Category,
		InStock:     f.InStock,
	}
}

// SeedProducts returns the catalog a fresh process starts with.
func SeedProducts() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "Laptop",
			Description: "High-performance laptop with 16GB RAM",
			Price:       1200,
			Category:    "electronics",
			InStock:     true,
		},
		{
			ID:          "2",
			Name:        "Smartphone",
			Description: "Latest model with 128GB storage",
			Price:       800,
			Category:    "electronics",
			InStock:     true,
		},
		{
			ID:          "3",
			Name:        "Coffee Maker",
			Description: "Programmable coffee maker with timer",
			Price:       50,
			Category:    "kitchen",
			InStock:     false,
		},
	}
}
