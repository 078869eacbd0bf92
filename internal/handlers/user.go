package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/skillsync/backend/internal/models"
	"github.com/skillsync/backend/internal/repositories"
)

// UserHandler handles user profile and follow-related HTTP requests
type UserHandler struct {
	userRepository         repositories.UserRepository
	notificationRepository repositories.NotificationRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository, notifRepo repositories.NotificationRepository) *UserHandler {
	return &UserHandler{
		userRepository:         userRepo,
		notificationRepository: notifRepo,
	}
}

// RegisterUserRoutes registers user profile and follow routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.GET("/users/me", h.GetProfile)
	g.GET("/users/recommendations", h.GetRecommendations)
	g.POST("/users/follow/:user_id", h.FollowUser)
	g.POST("/users/unfollow/:user_id", h.UnfollowUser)
}

// GetProfile returns the caller's profile
func (h *UserHandler) GetProfile(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user.ToDTO())
}

// GetRecommendations returns users the caller does not follow yet
func (h *UserHandler) GetRecommendations(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return err
	}

	users, err := h.userRepository.GetUsers(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	recommendations := make([]models.UserDTO, 0)
	for i := range users {
		candidate := &users[i]
		if candidate.ID == user.ID || user.IsFollowing(candidate.ID.Hex()) {
			continue
		}
		recommendations = append(recommendations, candidate.ToDTO())
	}
	return c.JSON(http.StatusOK, recommendations)
}

// FollowUser makes the caller follow the target user and notifies the target
func (h *UserHandler) FollowUser(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return err
	}
	targetID := c.Param("user_id")

	if targetID == user.ID.Hex() {
		return echo.NewHTTPError(http.StatusBadRequest, "You cannot follow yourself")
	}

	target, err := h.userRepository.GetUserByID(c.Request().Context(), targetID)
	if err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.userRepository.Follow(c.Request().Context(), user.ID.Hex(), targetID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	notification := &models.Notification{
		UserID:          target.ID.Hex(),
		SenderID:        user.ID.Hex(),
		Type:            "follow",
		Message:         "started following you",
		RelatedEntityID: user.ID.Hex(),
	}
	if err := h.notificationRepository.CreateNotification(c.Request().Context(), notification); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Now following " + target.Username})
}

// UnfollowUser makes the caller stop following the target user
func (h *UserHandler) UnfollowUser(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return err
	}
	targetID := c.Param("user_id")

	if err := h.userRepository.Unfollow(c.Request().Context(), user.ID.Hex(), targetID); err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Unfollowed"})
}
