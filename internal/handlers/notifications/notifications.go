package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/aturgenev/minimart/internal/domain"
	"github.com/aturgenev/minimart/internal/dto"
	notificationservice "github.com/aturgenev/minimart/internal/service/notificationservice"
	"github.com/aturgenev/minimart/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	Create(ctx context.Context, req dto.CreateNotificationRequestDTO) (*domain.Notification, error)
	ListByUser(ctx context.Context, userID int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id int) (*domain.Notification, error)
}

type NotificationHandler struct {
	notificationService Service
}

func New(notificationService Service) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

func (h *NotificationHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/notifications", func(r chi.Router) {
		r.Post("/", h.CreateNotification)
		r.Get("/user/{userId}", h.GetUserNotifications)
		r.Patch("/{id}/read", h.MarkRead)
	})
}

// CreateNotification godoc
//
//	@Summary	Record a notification
//	@Tags		Notifications
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.CreateNotificationRequestDTO	true	"Notification to record"
//	@Success	201		{object}	domain.Notification
//	@Failure	400		{object}	utils.Response	"Invalid request body"
//	@Router		/api/notifications [post]
func (h *NotificationHandler) CreateNotification(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateNotificationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	notification, err := h.notificationService.Create(r.Context(), req)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, notification)
}

// GetUserNotifications godoc
//
//	@Summary	List notifications of a user
//	@Tags		Notifications
//	@Produce	json
//	@Param		userId	path		int	true	"User id"
//	@Success	200		{array}		domain.Notification
//	@Failure	400		{object}	utils.Response	"Invalid user id"
//	@Router		/api/notifications/user/{userId} [get]
func (h *NotificationHandler) GetUserNotifications(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userId"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	notifications, err := h.notificationService.ListByUser(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, notifications)
}

// MarkRead godoc
//
//	@Summary	Mark a notification as read
//	@Tags		Notifications
//	@Produce	json
//	@Param		id	path		int	true	"Notification id"
//	@Success	200	{object}	domain.Notification
//	@Failure	404	{object}	utils.Response	"Notification not found"
//	@Router		/api/notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Notification not found")
		return
	}

	notification, err := h.notificationService.MarkRead(r.Context(), id)
	if err != nil {
		if errors.Is(err, notificationservice.ErrNotificationNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Notification not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, notification)
}
