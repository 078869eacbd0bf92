package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/skillsync/backend/internal/models"
	"github.com/skillsync/backend/internal/repositories"
)

// NotificationHandler handles notification-related HTTP requests
type NotificationHandler struct {
	notificationRepository repositories.NotificationRepository
	userRepository         repositories.UserRepository
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notifRepo repositories.NotificationRepository, userRepo repositories.UserRepository) *NotificationHandler {
	return &NotificationHandler{
		notificationRepository: notifRepo,
		userRepository:         userRepo,
	}
}

// RegisterNotificationRoutes registers notification routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("/notifications", h.GetNotifications)
	g.GET("/notifications/unread", h.GetUnreadNotifications)
	g.GET("/notifications/unread-count", h.GetUnreadCount)
	g.PUT("/notifications/:id/read", h.MarkAsRead)
	g.PUT("/notifications/read-all", h.MarkAllAsRead)
}

// GetNotifications returns all notifications for the caller, most recent first
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return err
	}

	notifications, err := h.notificationRepository.GetByRecipientID(c.Request().Context(), user.ID.Hex())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, h.toDTOs(c, notifications))
}

// GetUnreadNotifications returns the caller's unread notifications, most recent first
func (h *NotificationHandler) GetUnreadNotifications(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return err
	}

	notifications, err := h.notificationRepository.GetUnreadByRecipientID(c.Request().Context(), user.ID.Hex())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, h.toDTOs(c, notifications))
}

// GetUnreadCount returns the number of unread notifications for the caller
func (h *NotificationHandler) GetUnreadCount(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return err
	}

	count, err := h.notificationRepository.CountUnread(c.Request().Context(), user.ID.Hex())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, count)
}

// MarkAsRead marks a single notification as read.
// TODO: verify the notification belongs to the caller before flipping the flag;
// the current behavior lets any authenticated user mark any notification.
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	if _, err := currentUser(c, h.userRepository); err != nil {
		return err
	}
	notifID := c.Param("id")

	notification, err := h.notificationRepository.GetNotificationByID(c.Request().Context(), notifID)
	if err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Notification not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.notificationRepository.MarkAsRead(c.Request().Context(), notifID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	notification.Read = true

	return c.JSON(http.StatusOK, h.toDTO(c, notification, map[string]*models.User{}))
}

// MarkAllAsRead marks all of the caller's unread notifications as read
func (h *NotificationHandler) MarkAllAsRead(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return err
	}

	if err := h.notificationRepository.MarkAllAsRead(c.Request().Context(), user.ID.Hex()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}

// toDTOs projects notifications for the API with sender display details
// resolved once per sender per request.
func (h *NotificationHandler) toDTOs(c echo.Context, notifications []models.Notification) []models.NotificationDTO {
	senderCache := make(map[string]*models.User)
	dtos := make([]models.NotificationDTO, len(notifications))
	for i := range notifications {
		dtos[i] = h.toDTO(c, &notifications[i], senderCache)
	}
	return dtos
}

// toDTO projects a single notification. A missing sender record leaves the
// sender fields empty rather than failing the response.
func (h *NotificationHandler) toDTO(c echo.Context, n *models.Notification, senderCache map[string]*models.User) models.NotificationDTO {
	dto := models.NotificationDTO{
		ID:              n.ID.Hex(),
		UserID:          n.UserID,
		Type:            n.Type,
		Message:         n.Message,
		RelatedEntityID: n.RelatedEntityID,
		Read:            n.Read,
		CreatedAt:       n.CreatedAt,
	}

	sender, ok := senderCache[n.SenderID]
	if !ok {
		if u, err := h.userRepository.GetUserByID(c.Request().Context(), n.SenderID); err == nil {
			sender = u
		}
		senderCache[n.SenderID] = sender
	}
	if sender != nil {
		dto.SenderName = sender.Username
		dto.SenderPhoto = sender.Photo
	}
	return dto
}
