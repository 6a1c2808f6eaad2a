package workout

import (
	"net/http"
	"time"

	"gymclass/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Examples godoc
// @Summary      List example workouts
// @Description  Returns all workout templates flattened for the workout builder.
// @Tags         workouts
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   ExampleWorkout
// @Failure      500  {object}  gin.H
// @Router       /workouts/examples [get]
func (h *Handler) Examples(c *gin.Context) {
	examples, err := h.service.Examples(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch example workouts"})
		return
	}

	c.JSON(http.StatusOK, examples)
}

// Schedule godoc
// @Summary      Schedule a workout
// @Description  Adds a draft workout to the current user's calendar.
// @Tags         workouts
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      ScheduleRequest  true  "Workout to schedule"
// @Success      201      {object}  ScheduledWorkout
// @Failure      400      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /workouts/scheduled [post]
func (h *Handler) Schedule(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	sw, err := h.service.Schedule(c.Request.Context(), userID, req)
	if err != nil {
		if IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to schedule workout"})
		return
	}

	c.JSON(http.StatusCreated, sw)
}

// ListScheduled godoc
// @Summary      List scheduled workouts
// @Description  Returns the current user's scheduled workouts with date in [from, to).
// @Tags         workouts
// @Security     BearerAuth
// @Produce      json
// @Param        from  query     string  true  "Window start (YYYY-MM-DD)"
// @Param        to    query     string  true  "Window end (YYYY-MM-DD)"
// @Success      200   {array}   ScheduledWorkout
// @Failure      400   {object}  gin.H
// @Failure      500   {object}  gin.H
// @Router       /workouts/scheduled [get]
func (h *Handler) ListScheduled(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to query params are required"})
		return
	}

	from, err := time.Parse(dateLayout, fromStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from format, use YYYY-MM-DD"})
		return
	}

	to, err := time.Parse(dateLayout, toStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to format, use YYYY-MM-DD"})
		return
	}

	workouts, err := h.service.ListScheduled(c.Request.Context(), userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch scheduled workouts"})
		return
	}

	c.JSON(http.StatusOK, workouts)
}
