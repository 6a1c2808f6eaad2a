package registration

import (
	"errors"
	"net/http"

	"gymclass/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Register godoc
// @Summary      Register for a class
// @Description  Registers the current user. The assigned status is confirmed while seats remain, waitlisted once the class is full.
// @Tags         registrations
// @Security     BearerAuth
// @Produce      json
// @Param        classID  path      string  true  "Occurrence ID"
// @Success      201      {object}  RegisterResponse
// @Failure      404      {object}  gin.H
// @Failure      409      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /classes/{classID}/register [post]
func (h *Handler) Register(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	classID := c.Param("classID")

	status, err := h.service.Register(c.Request.Context(), classID, userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrClassNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Class not found"})
		case errors.Is(err, ErrAlreadyRegistered):
			c.JSON(http.StatusConflict, gin.H{"error": "You are already registered or waitlisted for this class"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register"})
		}
		return
	}

	c.JSON(http.StatusCreated, RegisterResponse{Status: status})
}

// Cancel godoc
// @Summary      Cancel a class registration
// @Description  Removes the current user's registration. Cancelling when not registered succeeds as a no-op.
// @Tags         registrations
// @Security     BearerAuth
// @Produce      json
// @Param        classID  path      string  true  "Occurrence ID"
// @Success      200      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /classes/{classID}/cancel [post]
func (h *Handler) Cancel(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	classID := c.Param("classID")

	if err := h.service.Cancel(c.Request.Context(), classID, userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel registration"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Registration cancelled"})
}

// StatusOf godoc
// @Summary      Get my registration status for a class
// @Tags         registrations
// @Security     BearerAuth
// @Produce      json
// @Param        classID  path      string  true  "Occurrence ID"
// @Success      200      {object}  StatusResponse
// @Failure      500      {object}  gin.H
// @Router       /classes/{classID}/registration [get]
func (h *Handler) StatusOf(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	classID := c.Param("classID")

	status, err := h.service.StatusOf(c.Request.Context(), classID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch registration status"})
		return
	}

	c.JSON(http.StatusOK, StatusResponse{Status: status})
}

// Roster godoc
// @Summary      List registrations for a class
// @Description  Returns all registrations for an occurrence, confirmed first. Coach or owner only.
// @Tags         registrations
// @Security     BearerAuth
// @Produce      json
// @Param        classID  path      string  true  "Occurrence ID"
// @Success      200      {array}   Registration
// @Failure      403      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /classes/{classID}/registrations [get]
func (h *Handler) Roster(c *gin.Context) {
	classID := c.Param("classID")

	registrations, err := h.service.Roster(c.Request.Context(), classID)
	if err != nil {
		if errors.Is(err, ErrClassNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Class not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch registrations"})
		return
	}

	c.JSON(http.StatusOK, registrations)
}
