package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aturgenev/minimart/internal/domain"
	"github.com/aturgenev/minimart/internal/dto"
	userservice "github.com/aturgenev/minimart/internal/service/userservice"
	"github.com/aturgenev/minimart/pkg/auth"
	"github.com/aturgenev/minimart/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	GenerateToken(userID int, email string) (string, error)
	GetProfile(ctx context.Context, userID int) (*domain.User, error)
}

type UserHandler struct {
	userService Service
}

func New(userService Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/users", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Get("/profile", h.Profile)
		})
	})
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create a user account with username, email and password.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		201		{object}	domain.User
//	@Failure		400		{object}	utils.Response	"User already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/users/register [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.userService.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, userservice.ErrUserAlreadyExists) {
			utils.RespondWithError(w, http.StatusBadRequest, "User already exists")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, user)
}

// Login godoc
//
//	@Summary	Authenticate a user
//	@Tags		Users
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success	200		{object}	dto.LoginResponseDTO
//	@Failure	401		{object}	utils.Response	"Invalid credentials"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/users/login [post]
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.userService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.userService.GenerateToken(user.ID, user.Email)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Token: token,
		User: dto.UserDTO{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
		},
	})
}

// Profile godoc
//
//	@Summary	Get the authenticated user's profile
//	@Tags		Users
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	domain.User
//	@Failure	401	{object}	utils.Response	"No or invalid token"
//	@Failure	404	{object}	utils.Response	"User not found"
//	@Router		/api/users/profile [get]
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	user, err := h.userService.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, userservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, user)
}
