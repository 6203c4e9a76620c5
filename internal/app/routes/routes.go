package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deepam/hostelmess/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	menuController *controllers.MenuController,
	feedbackController *controllers.FeedbackController,
	complaintController *controllers.ComplaintController,
	dashboardController *controllers.DashboardController,
) {
	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}

	// Liveness probe, at the root for infra and under the versioned API
	// for clients.
	router.GET("/health", healthHandler)

	// API version group
	v1 := router.Group("/api/v1")
	v1.GET("/health", healthHandler)

	students := v1.Group("/students")
	{
		students.POST("", studentController.RegisterStudent)
		students.GET("", studentController.GetActiveStudents)
		students.GET("/:id", studentController.GetStudentByID)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeactivateStudent)
		students.POST("/:id/activate", studentController.ReactivateStudent)
		students.GET("/by-student-id/:studentId", studentController.GetStudentByCode)
	}

	menus := v1.Group("/menus")
	{
		menus.POST("", menuController.PublishMenu)
		menus.GET("/today", menuController.GetTodaysMenus)
		menus.GET("/upcoming", menuController.GetUpcomingMenus)
		menus.GET("/date/:date", menuController.GetMenusForDate)
		menus.GET("/date/:date/meal-type/:mealType", menuController.GetCurrentMenu)
		menus.GET("/week/:startDate", menuController.GetWeekMenus)
		menus.GET("/meal-types", menuController.GetMealTypes)
		menus.GET("/:id", menuController.GetMenuByID)
	}

	feedback := v1.Group("/feedback")
	{
		feedback.POST("", feedbackController.SubmitFeedback)
		feedback.GET("/menu/:menuId", feedbackController.GetFeedbackForMenu)
		feedback.GET("/menu/:menuId/average-rating", feedbackController.GetMenuRatingSummary)
		feedback.GET("/student/:studentId", feedbackController.GetFeedbackByStudent)
		feedback.GET("/negative", feedbackController.GetNegativeFeedback)
		feedback.GET("/positive", feedbackController.GetPositiveFeedback)
	}

	complaints := v1.Group("/complaints")
	{
		complaints.POST("", complaintController.SubmitComplaint)
		complaints.GET("", complaintController.GetAllComplaints)
		complaints.GET("/open", complaintController.GetOpenComplaints)
		complaints.GET("/stats", complaintController.GetComplaintStats)
		complaints.GET("/stats/pending-count", complaintController.GetPendingCount)
		complaints.GET("/stats/urgent-count", complaintController.GetUrgentCount)
		complaints.GET("/student/:studentId", complaintController.GetComplaintsByStudent)
		complaints.GET("/:id", complaintController.GetComplaintByID)
		complaints.PUT("/:id/status", complaintController.UpdateComplaintStatus)
	}

	dashboard := v1.Group("/dashboard")
	{
		dashboard.GET("/overview", dashboardController.GetOverview)
		dashboard.GET("/health", dashboardController.GetHealth)
	}
}
