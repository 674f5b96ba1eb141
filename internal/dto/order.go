package dto

type OrderItemDTO struct {
	ProductID int `json:"productId" validate:"required"`
	Quantity  int `json:"quantity" validate:"required,gt=0"`
}

type CreateOrderRequestDTO struct {
	UserID int            `json:"userId" validate:"required"`
	Items  []OrderItemDTO `json:"items"`
}

type UpdateOrderStatusRequestDTO struct {
	Status string `json:"status" validate:"required"`
}
