package dto

type CreateProductRequestDTO struct {
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"required,gt=0"`
	Category string  `json:"category" validate:"required"`
	Stock    int     `json:"stock" validate:"gte=0"`
}

type ProductFilterDTO struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
}
