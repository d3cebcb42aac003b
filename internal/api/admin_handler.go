package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"gymhub/internal/domain"
	"gymhub/internal/service"
)

// AdminHandler holds the services behind the admin screens.
type AdminHandler struct {
	adminService  service.AdminService
	reportService service.ReportService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminService service.AdminService, reportService service.ReportService) *AdminHandler {
	return &AdminHandler{adminService: adminService, reportService: reportService}
}

// --- Request Structs ---

// Dates travel as "2006-01-02" strings; all membership dates are
// day-granular.
const dateLayout = "2006-01-02"

type UpdateAdminProfileRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
}

type MemberEditRequest struct {
	ID         int                 `json:"id" binding:"required"`
	Name       string              `json:"name" binding:"required"`
	Email      string              `json:"email" binding:"required,email"`
	Phone      string              `json:"phone"`
	DOB        string              `json:"dob" binding:"required"`
	Address    string              `json:"address"`
	Plan       string              `json:"plan" binding:"required"`
	Status     domain.MemberStatus `json:"status" binding:"required,oneof=Active Expired"`
	ExpiryDate string              `json:"expiryDate" binding:"required"`
	TrainerID  *int                `json:"trainerId"`
}

type AddMemberRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required"`
	Plan     string `json:"plan" binding:"required"`
}

type AddClassRequest struct {
	Name      string `json:"name" binding:"required"`
	TrainerID int    `json:"trainerId" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Capacity  int    `json:"capacity" binding:"required,min=1"`
}

type AddTrainerRequest struct {
	Name           string `json:"name" binding:"required"`
	Specialization string `json:"specialization" binding:"required"`
}

type UpdateEquipmentRequest struct {
	Name   string                 `json:"name" binding:"required"`
	Status domain.EquipmentStatus `json:"status" binding:"required"`
}

type AnnouncementRequest struct {
	Text string `json:"text" binding:"required"`
}

// --- Profile ---

func (h *AdminHandler) GetProfile(c *gin.Context) {
	admin, err := h.adminService.Profile(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, admin)
}

func (h *AdminHandler) UpdateProfile(c *gin.Context) {
	var req UpdateAdminProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	currentUsername, err := getSubjectFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify admin from token")
		return
	}

	admin, err := h.adminService.UpdateProfile(c.Request.Context(), currentUsername, req.Name, req.Username)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, admin)
}

// --- Member Management ---

func (h *AdminHandler) GetMembers(c *gin.Context) {
	members, err := h.adminService.Members(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// ReplaceMembers applies the bulk member editor: the submitted rows replace
// the member table wholesale.
func (h *AdminHandler) ReplaceMembers(c *gin.Context) {
	var req []MemberEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	edits := make([]service.MemberEdit, len(req))
	for i, row := range req {
		dob, err := time.Parse(dateLayout, row.DOB)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid dob for member %d: %v", row.ID, err))
			return
		}
		expiry, err := time.Parse(dateLayout, row.ExpiryDate)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid expiryDate for member %d: %v", row.ID, err))
			return
		}
		edits[i] = service.MemberEdit{
			ID:         row.ID,
			Name:       row.Name,
			Email:      row.Email,
			Phone:      row.Phone,
			DOB:        dob,
			Address:    row.Address,
			Plan:       row.Plan,
			Status:     row.Status,
			ExpiryDate: expiry,
			TrainerID:  row.TrainerID,
		}
	}

	if err := h.adminService.ReplaceMembers(c.Request.Context(), edits); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "members updated"})
}

func (h *AdminHandler) AddMember(c *gin.Context) {
	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	member, err := h.adminService.AddMember(c.Request.Context(), service.AddMemberInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Plan:     req.Plan,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

// SetMemberPhoto accepts a multipart photo upload for a member.
func (h *AdminHandler) SetMemberPhoto(c *gin.Context) {
	memberID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid member ID")
		return
	}

	contentType, data, err := readUploadedFile(c, "photo")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid photo upload: %v", err))
		return
	}

	if err := h.adminService.SetMemberPhoto(c.Request.Context(), memberID, contentType, data); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "photo updated"})
}

// --- Class & Schedule Management ---

func (h *AdminHandler) GetClasses(c *gin.Context) {
	classes, err := h.adminService.Classes(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, classes)
}

func (h *AdminHandler) AddClass(c *gin.Context) {
	var req AddClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid date: %v", err))
		return
	}

	class, err := h.adminService.AddClass(c.Request.Context(), service.AddClassInput{
		Name:      req.Name,
		TrainerID: req.TrainerID,
		Date:      date,
		Time:      req.Time,
		Capacity:  req.Capacity,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, class)
}

// --- Trainer Management ---

func (h *AdminHandler) GetTrainers(c *gin.Context) {
	trainers, err := h.adminService.Trainers(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, trainers)
}

func (h *AdminHandler) AddTrainer(c *gin.Context) {
	var req AddTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	trainer, err := h.adminService.AddTrainer(c.Request.Context(), req.Name, req.Specialization)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, trainer)
}

// --- Equipment ---

func (h *AdminHandler) GetEquipment(c *gin.Context) {
	equipment, err := h.adminService.Equipment(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, equipment)
}

func (h *AdminHandler) UpdateEquipmentStatus(c *gin.Context) {
	var req UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	equipment, err := h.adminService.UpdateEquipmentStatus(c.Request.Context(), req.Name, req.Status)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, equipment)
}

// --- Billing ---

func (h *AdminHandler) GetPayments(c *gin.Context) {
	payments, err := h.adminService.Payments(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// --- Announcements ---

func (h *AdminHandler) GetAnnouncements(c *gin.Context) {
	announcements, err := h.adminService.Announcements(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, announcements)
}

func (h *AdminHandler) PostAnnouncement(c *gin.Context) {
	var req AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	announcement, err := h.adminService.PostAnnouncement(c.Request.Context(), req.Text)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, announcement)
}

func (h *AdminHandler) EditAnnouncement(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid announcement ID")
		return
	}
	var req AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	if err := h.adminService.EditAnnouncement(c.Request.Context(), id, req.Text); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "announcement updated"})
}

// --- Reports ---

func (h *AdminHandler) GetDashboard(c *gin.Context) {
	stats, err := h.reportService.Dashboard(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) GetMonthlyRevenue(c *gin.Context) {
	revenue, err := h.reportService.MonthlyRevenue(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, revenue)
}

func (h *AdminHandler) GetPlanDistribution(c *gin.Context) {
	distribution, err := h.reportService.PlanDistribution(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, distribution)
}

func (h *AdminHandler) GetClassPopularity(c *gin.Context) {
	popularity, err := h.reportService.ClassPopularity(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, popularity)
}
