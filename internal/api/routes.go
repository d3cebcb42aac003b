package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymhub/internal/domain"
	"gymhub/internal/service"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	adminService service.AdminService,
	trainerService service.TrainerService,
	memberService service.MemberService,
	reportService service.ReportService,
) {
	authHandler := NewAuthHandler(authService)
	adminHandler := NewAdminHandler(adminService, reportService)
	trainerHandler := NewTrainerHandler(trainerService)
	memberHandler := NewMemberHandler(memberService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")

	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/logout", authMiddleware, authHandler.Logout)
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			subject, err := getSubjectFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get subject from token")
				return
			}
			role, _ := getUserRoleFromContext(c)
			c.JSON(http.StatusOK, gin.H{"subject": subject, "role": role})
		})

		// --- Admin Routes ---
		adminGroup := protected.Group("/admin")
		adminGroup.Use(RoleMiddleware(domain.RoleAdmin))
		{
			adminGroup.GET("/profile", adminHandler.GetProfile)
			adminGroup.PUT("/profile", adminHandler.UpdateProfile)

			adminGroup.GET("/members", adminHandler.GetMembers)
			adminGroup.PUT("/members", adminHandler.ReplaceMembers)
			adminGroup.POST("/members", adminHandler.AddMember)
			adminGroup.POST("/members/:id/photo", adminHandler.SetMemberPhoto)

			adminGroup.GET("/classes", adminHandler.GetClasses)
			adminGroup.POST("/classes", adminHandler.AddClass)

			adminGroup.GET("/trainers", adminHandler.GetTrainers)
			adminGroup.POST("/trainers", adminHandler.AddTrainer)

			adminGroup.GET("/equipment", adminHandler.GetEquipment)
			adminGroup.PUT("/equipment", adminHandler.UpdateEquipmentStatus)

			adminGroup.GET("/payments", adminHandler.GetPayments)

			adminGroup.GET("/announcements", adminHandler.GetAnnouncements)
			adminGroup.POST("/announcements", adminHandler.PostAnnouncement)
			adminGroup.PUT("/announcements/:id", adminHandler.EditAnnouncement)

			adminGroup.GET("/reports/dashboard", adminHandler.GetDashboard)
			adminGroup.GET("/reports/revenue", adminHandler.GetMonthlyRevenue)
			adminGroup.GET("/reports/plans", adminHandler.GetPlanDistribution)
			adminGroup.GET("/reports/classes", adminHandler.GetClassPopularity)
		}

		// --- Trainer Routes ---
		trainerGroup := protected.Group("/trainer")
		trainerGroup.Use(RoleMiddleware(domain.RoleTrainer))
		{
			trainerGroup.GET("/profile", trainerHandler.GetProfile)
			trainerGroup.PUT("/profile", trainerHandler.UpdateProfile)

			trainerGroup.GET("/classes", trainerHandler.GetMyClasses)
			trainerGroup.GET("/members", trainerHandler.GetMyMembers)

			trainerGroup.GET("/requests", trainerHandler.GetPendingRequests)
			trainerGroup.POST("/requests/:memberId", trainerHandler.ResolveRequest)
		}

		// --- Member Routes ---
		memberGroup := protected.Group("/member")
		memberGroup.Use(RoleMiddleware(domain.RoleMember))
		{
			memberGroup.GET("/profile", memberHandler.GetProfile)
			memberGroup.PUT("/profile", memberHandler.UpdateContactInfo)
			memberGroup.POST("/profile/photo", memberHandler.UploadProfilePhoto)

			memberGroup.GET("/classes", memberHandler.GetClasses)
			memberGroup.POST("/classes/:id/book", memberHandler.BookClass)
			memberGroup.DELETE("/classes/:id/book", memberHandler.CancelBooking)

			memberGroup.POST("/workouts", memberHandler.LogWorkout)
			memberGroup.GET("/workouts", memberHandler.GetWorkoutHistory)
			memberGroup.GET("/library", memberHandler.GetWorkoutLibrary)
			memberGroup.POST("/library", memberHandler.AddLibraryEntry)
			memberGroup.GET("/plan", memberHandler.GetPlanEntries)
			memberGroup.POST("/plan", memberHandler.AddPlanEntry)

			memberGroup.POST("/meals", memberHandler.LogMeal)
			memberGroup.GET("/meals", memberHandler.GetNutritionHistory)

			memberGroup.POST("/metrics", memberHandler.LogBodyMetric)
			memberGroup.GET("/metrics", memberHandler.GetBodyMetricHistory)
			memberGroup.GET("/badges", memberHandler.GetBadges)
			memberGroup.POST("/progress-photos", memberHandler.UploadProgressPhoto)
			memberGroup.GET("/progress-photos", memberHandler.GetProgressPhotos)

			memberGroup.GET("/challenges", memberHandler.GetChallenges)

			memberGroup.GET("/feed", memberHandler.GetFeed)
			memberGroup.POST("/feed", memberHandler.PostToFeed)

			memberGroup.GET("/trainers", memberHandler.GetTrainers)
			memberGroup.POST("/trainers/:id/request", memberHandler.RequestTrainer)

			memberGroup.GET("/announcements", memberHandler.GetAnnouncements)
		}
	}
}
