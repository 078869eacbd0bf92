package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/skillsync/backend/internal/models"
	"github.com/skillsync/backend/internal/repositories"
)

// currentUser resolves the authenticated user from the JWT claims stored in
// the context by the auth middleware. The token subject is the user's email.
func currentUser(c echo.Context, userRepo repositories.UserRepository) (*models.User, error) {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok || claims.Subject == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	user, err := userRepo.GetUserByEmail(c.Request().Context(), claims.Subject)
	if err != nil {
		if err == repositories.ErrNotFound {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authenticated user not found")
		}
		return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return user, nil
}
