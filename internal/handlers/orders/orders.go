package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/aturgenev/minimart/internal/domain"
	"github.com/aturgenev/minimart/internal/dto"
	orderservice "github.com/aturgenev/minimart/internal/service/orderservice"
	"github.com/aturgenev/minimart/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	Create(ctx context.Context, userID int, items []dto.OrderItemDTO) (*domain.Order, error)
	GetByID(ctx context.Context, id int) (*domain.Order, error)
	ListByUser(ctx context.Context, userID int) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id int, status string) (*domain.Order, error)
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/orders", func(r chi.Router) {
		r.Post("/", h.CreateOrder)
		r.Get("/user/{userId}", h.GetUserOrders)
		r.Get("/{id}", h.GetOrder)
		r.Patch("/{id}/status", h.UpdateStatus)
	})
}

// CreateOrder godoc
//
//	@Summary		Create a new order
//	@Description	Price the requested items against the product service and create a pending order.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateOrderRequestDTO	true	"Order to create"
//	@Success		201		{object}	domain.Order
//	@Failure		400		{object}	utils.Response	"Referenced product not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.orderService.Create(r.Context(), req.UserID, req.Items)
	if err != nil {
		var notFound *orderservice.ProductNotFoundError
		if errors.As(err, &notFound) {
			utils.RespondWithError(w, http.StatusBadRequest,
				fmt.Sprintf("Product %d not found", notFound.ProductID))
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, order)
}

// GetUserOrders godoc
//
//	@Summary	List orders of a user
//	@Tags		Orders
//	@Produce	json
//	@Param		userId	path		int	true	"User id"
//	@Success	200		{array}		domain.Order
//	@Failure	400		{object}	utils.Response	"Invalid user id"
//	@Router		/api/orders/user/{userId} [get]
func (h *OrderHandler) GetUserOrders(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userId"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	orders, err := h.orderService.ListByUser(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, orders)
}

// GetOrder godoc
//
//	@Summary	Get an order by id
//	@Tags		Orders
//	@Produce	json
//	@Param		id	path		int	true	"Order id"
//	@Success	200	{object}	domain.Order
//	@Failure	404	{object}	utils.Response	"Order not found"
//	@Router		/api/orders/{id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}

	order, err := h.orderService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, orderservice.ErrOrderNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Order not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, order)
}

// UpdateStatus godoc
//
//	@Summary	Update the status of an order
//	@Tags		Orders
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int								true	"Order id"
//	@Param		request	body		dto.UpdateOrderStatusRequestDTO	true	"New status"
//	@Success	200		{object}	domain.Order
//	@Failure	404		{object}	utils.Response	"Order not found"
//	@Router		/api/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}

	var req dto.UpdateOrderStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.orderService.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, orderservice.ErrOrderNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Order not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, order)
}
