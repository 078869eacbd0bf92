package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/skillsync/backend/internal/models"
	"github.com/skillsync/backend/internal/repositories"
)

// LearningPlanHandler handles HTTP requests related to learning plans
type LearningPlanHandler struct {
	planRepository repositories.LearningPlanRepository
	userRepository repositories.UserRepository
}

// NewLearningPlanHandler creates a new LearningPlanHandler
func NewLearningPlanHandler(planRepo repositories.LearningPlanRepository, userRepo repositories.UserRepository) *LearningPlanHandler {
	return &LearningPlanHandler{
		planRepository: planRepo,
		userRepository: userRepo,
	}
}

// RegisterLearningPlanRoutes registers learning plan routes
func (h *LearningPlanHandler) RegisterLearningPlanRoutes(g *echo.Group) {
	g.GET("/learningplans/my", h.GetMyPlans)
	g.POST("/learningplans", h.CreatePlan)
	g.PUT("/learningplans/:id", h.UpdatePlan)
	g.DELETE("/learningplans/:id", h.DeletePlan)
}

// GetMyPlans retrieves the caller's learning plans, most recent first
func (h *LearningPlanHandler) GetMyPlans(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return err
	}

	plans, err := h.planRepository.GetPlansByUserID(c.Request().Context(), user.ID.Hex())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, plans)
}

// CreatePlan creates a new learning plan owned by the caller
func (h *LearningPlanHandler) CreatePlan(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return err
	}

	var req models.CreateLearningPlanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	plan := &models.LearningPlan{
		UserID:      user.ID.Hex(),
		Name:        req.Name,
		Description: req.Description,
		Topics:      req.Topics,
		Resources:   req.Resources,
	}

	if err := h.planRepository.CreatePlan(c.Request().Context(), plan); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, plan)
}

// UpdatePlan updates an existing learning plan, owner only
func (h *LearningPlanHandler) UpdatePlan(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return err
	}
	planID := c.Param("id")

	var req models.UpdateLearningPlanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	plan, err := h.planRepository.GetPlanByID(c.Request().Context(), planID)
	if err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Learning plan not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if plan.UserID != user.ID.Hex() {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to update this learning plan")
	}

	plan.Name = req.Name
	plan.Description = req.Description
	plan.Topics = req.Topics
	plan.Resources = req.Resources

	if err := h.planRepository.UpdatePlan(c.Request().Context(), planID, plan); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, plan)
}

// DeletePlan deletes a learning plan, owner only
func (h *LearningPlanHandler) DeletePlan(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return err
	}
	planID := c.Param("id")

	plan, err := h.planRepository.GetPlanByID(c.Request().Context(), planID)
	if err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Learning plan not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if plan.UserID != user.ID.Hex() {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to delete this learning plan")
	}

	if err := h.planRepository.DeletePlan(c.Request().Context(), planID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}
