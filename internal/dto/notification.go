package dto

type CreateNotificationRequestDTO struct {
	UserID  int    `json:"userId" validate:"required"`
	Type    string `json:"type" validate:"required"`
	Message string `json:"message" validate:"required"`
	OrderID int    `json:"orderId,omitempty"`
}
