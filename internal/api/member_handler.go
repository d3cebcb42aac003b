package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gymhub/internal/domain"
	"gymhub/internal/service"
)

// MemberHandler holds the member service dependency.
type MemberHandler struct {
	memberService service.MemberService
}

// NewMemberHandler creates a new MemberHandler.
func NewMemberHandler(memberService service.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// --- Request Structs ---

type UpdateContactInfoRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type LogWorkoutRequest struct {
	Exercise string  `json:"exercise" binding:"required"`
	Weight   float64 `json:"weight" binding:"min=0"`
	Sets     int     `json:"sets" binding:"required,min=1"`
	Reps     int     `json:"reps" binding:"required,min=1"`
}

type LibraryEntryRequest struct {
	Name        string            `json:"name" binding:"required"`
	MuscleGroup string            `json:"muscleGroup" binding:"required"`
	Difficulty  domain.Difficulty `json:"difficulty" binding:"required,oneof=Beginner Intermediate Advanced"`
	Equipment   string            `json:"equipment"`
	VideoURL    string            `json:"videoUrl" binding:"required,url"`
}

type PlanEntryRequest struct {
	Exercise string `json:"exercise" binding:"required"`
	Sets     int    `json:"sets" binding:"required,min=1"`
	Reps     int    `json:"reps" binding:"required,min=1"`
	Notes    string `json:"notes"`
}

type LogMealRequest struct {
	Food           string `json:"food" binding:"required"`
	Calories       int    `json:"calories" binding:"min=0"`
	Macronutrients string `json:"macronutrients"`
}

type LogBodyMetricRequest struct {
	Weight  float64 `json:"weight" binding:"required,gt=0"`
	BodyFat float64 `json:"bodyFat" binding:"min=0"`
}

type FeedPostRequest struct {
	Text string `json:"text" binding:"required"`
}

// --- Profile ---

func (h *MemberHandler) GetProfile(c *gin.Context) {
	memberID, err := getNumericIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify member from token")
		return
	}

	profile, err := h.memberService.Profile(c.Request.Context(), memberID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *MemberHandler) UpdateContactInfo(c *gin.Context) {
	memberID, err := getNumericIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify member from token")
		return
	}

	var req UpdateContactInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	member, err := h.memberService.UpdateContactInfo(c.Request.Context(), memberID, req.Name, req.Email, req.Phone, req.Address)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *MemberHandler) UploadProfilePhoto(c *gin.Context) {
	memberID, err := getNumericIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify member from token")
		return
	}

	contentType, data, err := readUploadedFile(c, "photo")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid photo upload: %v", err))
		return
	}

	if err := h.memberService.UploadProfilePhoto(c.Request.Context(), memberID, contentType, data); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "photo updated"})
}

// --- Class Booking ---

func (h *MemberHandler) GetClasses(c *gin.Context) {
	memberID, err := getNumericIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify member from token")
		return
	}

	classes, err := h.memberService.Classes(c.Request.Context(), memberID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, classes)
}

func (h *MemberHandler) BookClass(c *gin.Context) {
	memberID, err := getNumericIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify member from token")
		return
	}
	classID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid class ID")
		return
	}

	if err := h.memberService.BookClass(c.Request.Context(), memberID, classID); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "class booked"})
}

func (h *MemberHandler) CancelBooking(c *gin.Context) {
	memberID, err := getNumericIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify member from token")
		return
	}
	classID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid class ID")
		return
	}

	if err := h.memberService.CancelBooking(c.Request.Context(), memberID, classID); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking cancelled"})
}

// --- Workout Tracking ---

func (h *MemberHandler) LogWorkout(c *gin.Context) {
	memberID, err := getNumericIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify member from token")
		return
	}

	var req LogWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	err = h.memberService.LogWorkout(c.Request.Context(), memberID, service.WorkoutLogInput{
		Exercise: req.Exercise,
		Weight:   req.Weight,
		Sets:     req.Sets,
		Reps:     req.Reps,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "workout logged"})
}

func (h *MemberHandler) GetWorkoutHistory(c *gin.Context) {
	memberID, err := getNumericIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify member from token")
		return
	}

	history, err := h.memberService.WorkoutHistory(c.Request.Context(), memberID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

func (h *MemberHandler) GetWorkoutLibrary(c *gin.Context) {
	library, err := h.memberService.WorkoutLibrary(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, library)
}

func (h *MemberHandler) AddLibraryEntry(c *gin.Context) {
	var req LibraryEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	err := h.memberService.AddLibraryEntry(c.Request.Context(), domain.WorkoutLibraryEntry{
		Name:        req.Name,
		MuscleGroup: req.MuscleGroup,
		Difficulty:  req.Difficulty,
		Equipment:   req.Equipment,
		VideoURL:    req.VideoURL,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "exercise added to library"})
}

func (h *MemberHandler) GetPlanEntries(c *gin.Context) {
	memberID, err := getNumericIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify member from token")
		return
	}

	entries, err := h.memberService.PlanEntries(c.Request.Context(), memberID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *MemberHandler) AddPlanEntry(c *gin.Context) {
	memberID, err := getNumericIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify member from token")
		return
	}

	var req PlanEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	err = h.memberService.AddPlanEntry(c.Request.Context(), memberID, domain.WorkoutPlanEntry{
		Exercise: req.Exercise,
		Sets:     req.Sets,
		Reps:     req.Reps,
		Notes:    req.Notes,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "plan entry added"})
}

// --- Nutrition Tracking ---

func (h *MemberHandler) LogMeal(c *gin.Context) {
	memberID, err := getNumericIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify member from token")
		return
	}

	var req LogMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	err = h.memberService.LogMeal(c.Request.Context(), memberID, service.MealLogInput{
		Food:           req.Food,
		Calories:       req.Calories,
		Macronutrients: req.Macronutrients,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "meal logged"})
}

func (h *MemberHandler) GetNutritionHistory(c *gin.Context) {
	memberID, err := getNumericIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify member from token")
		return
	}

	history, err := h.memberService.NutritionHistory(c.Request.Context(), memberID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// --- Progress Tracking ---

func (h *MemberHandler) LogBodyMetric(c *gin.Context) {
	memberID, err := getNumericIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify member from token")
		return
	}

	var req LogBodyMetricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	if err := h.memberService.LogBodyMetric(c.Request.Context(), memberID, req.Weight, req.BodyFat); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "body metrics logged"})
}

func (h *MemberHandler) GetBodyMetricHistory(c *gin.Context) {
	memberID, err := getNumericIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify member from token")
		return
	}

	history, err := h.memberService.BodyMetricHistory(c.Request.Context(), memberID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

func (h *MemberHandler) GetBadges(c *gin.Context) {
	memberID, err := getNumericIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify member from token")
		return
	}

	badges, err := h.memberService.Badges(c.Request.Context(), memberID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, badges)
}

func (h *MemberHandler) UploadProgressPhoto(c *gin.Context) {
	memberID, err := getNumericIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify member from token")
		return
	}

	contentType, data, err := readUploadedFile(c, "photo")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid photo upload: %v", err))
		return
	}

	if err := h.memberService.UploadProgressPhoto(c.Request.Context(), memberID, contentType, data); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "progress photo uploaded"})
}

func (h *MemberHandler) GetProgressPhotos(c *gin.Context) {
	memberID, err := getNumericIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify member from token")
		return
	}

	photos, err := h.memberService.ProgressPhotoList(c.Request.Context(), memberID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, photos)
}

// --- Challenges ---

func (h *MemberHandler) GetChallenges(c *gin.Context) {
	challenges, err := h.memberService.Challenges(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, challenges)
}

// --- Community ---

func (h *MemberHandler) GetFeed(c *gin.Context) {
	feed, err := h.memberService.Feed(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, feed)
}

func (h *MemberHandler) PostToFeed(c *gin.Context) {
	memberID, err := getNumericIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify member from token")
		return
	}

	var req FeedPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	if err := h.memberService.PostToFeed(c.Request.Context(), memberID, req.Text); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "posted"})
}

// --- Find a Trainer ---

func (h *MemberHandler) GetTrainers(c *gin.Context) {
	memberID, err := getNumericIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify member from token")
		return
	}

	trainers, err := h.memberService.Trainers(c.Request.Context(), memberID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, trainers)
}

func (h *MemberHandler) RequestTrainer(c *gin.Context) {
	memberID, err := getNumericIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify member from token")
		return
	}
	trainerID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid trainer ID")
		return
	}

	if err := h.memberService.RequestTrainer(c.Request.Context(), memberID, trainerID); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "request submitted"})
}

// --- Announcements ---

func (h *MemberHandler) GetAnnouncements(c *gin.Context) {
	announcements, err := h.memberService.Announcements(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, announcements)
}
