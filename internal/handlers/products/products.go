package products

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/aturgenev/minimart/internal/domain"
	"github.com/aturgenev/minimart/internal/dto"
	productservice "github.com/aturgenev/minimart/internal/service/productservice"
	"github.com/aturgenev/minimart/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	List(ctx context.Context, filter dto.ProductFilterDTO) ([]domain.Product, error)
	GetByID(ctx context.Context, id int) (*domain.Product, error)
	Create(ctx context.Context, req dto.CreateProductRequestDTO) (*domain.Product, error)
}

type ProductHandler struct {
	productService Service
}

func New(productService Service) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)
		r.Post("/", h.CreateProduct)
		r.Get("/{id}", h.GetProduct)
	})
}

// ListProducts godoc
//
//	@Summary	List products
//	@Tags		Products
//	@Produce	json
//	@Param		category	query		string	false	"Category filter (case-insensitive)"
//	@Param		minPrice	query		number	false	"Minimum price"
//	@Param		maxPrice	query		number	false	"Maximum price"
//	@Success	200			{array}		domain.Product
//	@Failure	400			{object}	utils.Response	"Invalid price filter"
//	@Router		/api/products [get]
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	filter := dto.ProductFilterDTO{
		Category: r.URL.Query().Get("category"),
	}

	if raw := r.URL.Query().Get("minPrice"); raw != "" {
		minPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid price filter")
			return
		}
		filter.MinPrice = &minPrice
	}
	if raw := r.URL.Query().Get("maxPrice"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid price filter")
			return
		}
		filter.MaxPrice = &maxPrice
	}

	products, err := h.productService.List(r.Context(), filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, products)
}

// GetProduct godoc
//
//	@Summary	Get a product by id
//	@Tags		Products
//	@Produce	json
//	@Param		id	path		int	true	"Product id"
//	@Success	200	{object}	domain.Product
//	@Failure	404	{object}	utils.Response	"Product not found"
//	@Router		/api/products/{id} [get]
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	product, err := h.productService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, productservice.ErrProductNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Product not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, product)
}

// CreateProduct godoc
//
//	@Summary	Create a product
//	@Tags		Products
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.CreateProductRequestDTO	true	"Product to create"
//	@Success	201		{object}	domain.Product
//	@Failure	400		{object}	utils.Response	"Invalid request body"
//	@Router		/api/products [post]
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProductRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.productService.Create(r.Context(), req)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, product)
}
