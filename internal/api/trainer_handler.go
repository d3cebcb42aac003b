package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gymhub/internal/service"
)

// TrainerHandler holds the trainer service dependency.
type TrainerHandler struct {
	trainerService service.TrainerService
}

// NewTrainerHandler creates a new TrainerHandler.
func NewTrainerHandler(trainerService service.TrainerService) *TrainerHandler {
	return &TrainerHandler{trainerService: trainerService}
}

// --- Request Structs ---

type UpdateTrainerProfileRequest struct {
	Name           string `json:"name" binding:"required"`
	Specialization string `json:"specialization" binding:"required"`
}

type ResolveRequestRequest struct {
	Decision service.Decision `json:"decision" binding:"required,oneof=accept reject"`
}

// --- Handler Methods ---

func (h *TrainerHandler) GetProfile(c *gin.Context) {
	trainerID, err := getNumericIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify trainer from token")
		return
	}

	trainer, err := h.trainerService.Profile(c.Request.Context(), trainerID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, trainer)
}

func (h *TrainerHandler) UpdateProfile(c *gin.Context) {
	trainerID, err := getNumericIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify trainer from token")
		return
	}

	var req UpdateTrainerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	trainer, err := h.trainerService.UpdateProfile(c.Request.Context(), trainerID, req.Name, req.Specialization)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, trainer)
}

// GetMyClasses lists the classes on this trainer's schedule.
func (h *TrainerHandler) GetMyClasses(c *gin.Context) {
	trainerID, err := getNumericIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify trainer from token")
		return
	}

	classes, err := h.trainerService.MyClasses(c.Request.Context(), trainerID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, classes)
}

// GetMyMembers lists the members assigned to this trainer.
func (h *TrainerHandler) GetMyMembers(c *gin.Context) {
	trainerID, err := getNumericIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify trainer from token")
		return
	}

	members, err := h.trainerService.MyMembers(c.Request.Context(), trainerID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

func (h *TrainerHandler) GetPendingRequests(c *gin.Context) {
	trainerID, err := getNumericIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify trainer from token")
		return
	}

	requests, err := h.trainerService.PendingRequests(c.Request.Context(), trainerID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// ResolveRequest accepts or rejects a member's assignment request.
func (h *TrainerHandler) ResolveRequest(c *gin.Context) {
	trainerID, err := getNumericIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify trainer from token")
		return
	}
	memberID, err := strconv.Atoi(c.Param("memberId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid member ID")
		return
	}

	var req ResolveRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	if err := h.trainerService.ResolveRequest(c.Request.Context(), trainerID, memberID, req.Decision); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "request resolved"})
}
