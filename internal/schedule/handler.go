package schedule

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// CreateSingle godoc
// @Summary      Create a single class occurrence
// @Description  Creates one class occurrence from a date, start time and duration. Coach or owner only.
// @Tags         classes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateSingleRequest  true  "Class definition"
// @Success      201      {object}  ClassOccurrence
// @Failure      400      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /classes [post]
func (h *Handler) CreateSingle(c *gin.Context) {
	var req CreateSingleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	occ, err := h.service.CreateSingle(c.Request.Context(), req)
	if err != nil {
		if IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create class"})
		return
	}

	c.JSON(http.StatusCreated, occ)
}

// CreateRecurring godoc
// @Summary      Create recurring class occurrences
// @Description  Expands a weekly recurrence into concrete occurrences and persists the whole batch atomically. Coach or owner only.
// @Tags         classes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateRecurringRequest  true  "Recurrence definition"
// @Success      201      {array}   ClassOccurrence
// @Failure      400      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /classes/recurring [post]
func (h *Handler) CreateRecurring(c *gin.Context) {
	var req CreateRecurringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	occurrences, err := h.service.CreateRecurring(c.Request.Context(), req)
	if err != nil {
		if IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create classes"})
		return
	}

	c.JSON(http.StatusCreated, occurrences)
}

// ListWindow godoc
// @Summary      List classes in a time window
// @Description  Returns occurrences starting in [start, end) for a group, each with its confirmed registration count.
// @Tags         classes
// @Security     BearerAuth
// @Produce      json
// @Param        group_id  query     string  true  "Group ID"
// @Param        start     query     string  true  "Window start (RFC3339)"
// @Param        end       query     string  true  "Window end (RFC3339)"
// @Success      200       {array}   OccurrenceWithCount
// @Failure      400       {object}  gin.H
// @Failure      500       {object}  gin.H
// @Router       /classes [get]
func (h *Handler) ListWindow(c *gin.Context) {
	groupID := c.Query("group_id")
	startStr := c.Query("start")
	endStr := c.Query("end")

	if groupID == "" || startStr == "" || endStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "group_id, start and end query params are required"})
		return
	}

	windowStart, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start format, use RFC3339"})
		return
	}

	windowEnd, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end format, use RFC3339"})
		return
	}

	occurrences, err := h.service.ListWindow(c.Request.Context(), groupID, windowStart, windowEnd)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch classes"})
		return
	}

	c.JSON(http.StatusOK, occurrences)
}

// Reschedule godoc
// @Summary      Reschedule a class occurrence
// @Description  Moves an occurrence to a new start/end. Registrations are preserved. Coach or owner only.
// @Tags         classes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        classID  path      string             true  "Occurrence ID"
// @Param        request  body      RescheduleRequest  true  "New times"
// @Success      200      {object}  gin.H
// @Failure      400      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /classes/{classID}/reschedule [put]
func (h *Handler) Reschedule(c *gin.Context) {
	classID := c.Param("classID")

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	err := h.service.Reschedule(c.Request.Context(), classID, req.NewStart, req.NewEnd)
	if err != nil {
		switch {
		case IsValidationError(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrOccurrenceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Class not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reschedule class"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Class rescheduled successfully"})
}

// Delete godoc
// @Summary      Delete a class occurrence
// @Description  Deletes an occurrence and its registrations. Coach or owner only.
// @Tags         classes
// @Security     BearerAuth
// @Produce      json
// @Param        classID  path      string  true  "Occurrence ID"
// @Success      200      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /classes/{classID} [delete]
func (h *Handler) Delete(c *gin.Context) {
	classID := c.Param("classID")

	if err := h.service.Delete(c.Request.Context(), classID); err != nil {
		if errors.Is(err, ErrOccurrenceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Class not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete class"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Class deleted successfully"})
}
