package routes

import (
	"net/http"
	"time"

	"codabs/handlers"
	"codabs/middleware"
	"codabs/models"
	"codabs/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAppointmentRoutes registers appointment endpoints. Booking is public;
// triage is staff-only.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointment")
	{
		api.POST("", hb.Appointment.CreateAppointmentHandler)
		api.GET("/availability", hb.Appointment.GetAvailabilityHandler)

		staff := api.Group("")
		staff.Use(middleware.JWTAuthMiddleware(hb.Users))
		staff.GET("", hb.Appointment.ListAppointmentsHandler)

		admin := staff.Group("")
		admin.Use(middleware.RequireRoles(models.RoleSuperAdmin, models.RoleAdmin))
		admin.PUT("/:id/accept", hb.Appointment.AcceptAppointmentHandler)
		admin.PUT("/:id/reject", hb.Appointment.RejectAppointmentHandler)
		admin.PUT("/availability/toggle", hb.Appointment.ToggleAvailabilityHandler)
	}
}

// RegisterAuthRoutes registers session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.User.LoginHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.Users))
		protected.POST("/logout", hb.User.LogoutHandler)

		admin := protected.Group("")
		admin.Use(middleware.RequireRoles(models.RoleSuperAdmin))
		admin.POST("/register", hb.User.RegisterHandler)
		admin.POST("/reset-password", hb.User.ResetPasswordHandler)
	}
}

// RegisterUserRoutes registers staff account management endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.Users))
		api.GET("", hb.User.GetUsersHandler)
		api.GET("/:id", hb.User.GetUserHandler)

		admin := api.Group("")
		admin.Use(middleware.RequireRoles(models.RoleSuperAdmin))
		admin.PUT("/:id", hb.User.UpdateUserHandler)
		admin.DELETE("/:id", hb.User.DeleteUserHandler)
	}
}

// RegisterContentRoutes registers the public site content endpoints and their
// staff-side write counterparts. Editors and above may write content.
func RegisterContentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	editors := []string{models.RoleSuperAdmin, models.RoleAdmin, models.RoleEditor}

	category := r.Group("/api/category")
	{
		category.GET("", hb.Category.GetCategoriesHandler)
		category.GET("/:id", hb.Category.GetCategoryHandler)

		write := category.Group("")
		write.Use(middleware.JWTAuthMiddleware(hb.Users), middleware.RequireRoles(editors...))
		write.POST("", hb.Category.CreateCategoryHandler)
		write.PUT("/:id", hb.Category.UpdateCategoryHandler)
		write.DELETE("/:id", hb.Category.DeleteCategoryHandler)
	}

	subcategory := r.Group("/api/subcategory")
	{
		subcategory.GET("", hb.Subcategory.GetSubcategoriesHandler)
		subcategory.GET("/:id", hb.Subcategory.GetSubcategoryHandler)

		write := subcategory.Group("")
		write.Use(middleware.JWTAuthMiddleware(hb.Users), middleware.RequireRoles(editors...))
		write.POST("", hb.Subcategory.CreateSubcategoryHandler)
		write.PUT("/:id", hb.Subcategory.UpdateSubcategoryHandler)
		write.DELETE("/:id", hb.Subcategory.DeleteSubcategoryHandler)
	}

	service := r.Group("/api/service")
	{
		service.GET("", hb.Service.GetServicesHandler)
		service.GET("/:id", middleware.TrackVisit(hb.AnalyticsSvc, models.VisitService), hb.Service.GetServiceHandler)

		write := service.Group("")
		write.Use(middleware.JWTAuthMiddleware(hb.Users), middleware.RequireRoles(editors...))
		write.POST("", hb.Service.CreateServiceHandler)
		write.PUT("/:id", hb.Service.UpdateServiceHandler)
		write.DELETE("/:id", hb.Service.DeleteServiceHandler)
	}

	project := r.Group("/api/project")
	{
		project.GET("", hb.Project.ListProjectsHandler)
		project.GET("/:id", middleware.TrackVisit(hb.AnalyticsSvc, models.VisitProject), hb.Project.GetProjectHandler)

		write := project.Group("")
		write.Use(middleware.JWTAuthMiddleware(hb.Users), middleware.RequireRoles(editors...))
		write.POST("", hb.Project.CreateProjectHandler)
		write.PUT("/:id", hb.Project.UpdateProjectHandler)
		write.DELETE("/:id", hb.Project.DeleteProjectHandler)
	}

	blog := r.Group("/api/blog")
	{
		blog.GET("", hb.Blog.ListBlogsHandler)
		blog.GET("/:id", middleware.TrackVisit(hb.AnalyticsSvc, models.VisitBlog), hb.Blog.GetBlogHandler)

		write := blog.Group("")
		write.Use(middleware.JWTAuthMiddleware(hb.Users), middleware.RequireRoles(editors...))
		write.POST("", hb.Blog.CreateBlogHandler)
		write.PUT("/:id", hb.Blog.UpdateBlogHandler)
		write.DELETE("/:id", hb.Blog.DeleteBlogHandler)
	}

	testimonial := r.Group("/api/testimonial")
	{
		testimonial.GET("", hb.Testimonial.GetTestimonialsHandler)

		write := testimonial.Group("")
		write.Use(middleware.JWTAuthMiddleware(hb.Users), middleware.RequireRoles(editors...))
		write.POST("", hb.Testimonial.CreateTestimonialHandler)
		write.PUT("/:id", hb.Testimonial.UpdateTestimonialHandler)
		write.DELETE("/:id", hb.Testimonial.DeleteTestimonialHandler)
	}

	team := r.Group("/api/team")
	{
		team.GET("", hb.Team.GetTeamHandler)
		team.GET("/:id", hb.Team.GetTeamMemberHandler)

		write := team.Group("")
		write.Use(middleware.JWTAuthMiddleware(hb.Users), middleware.RequireRoles(editors...))
		write.POST("", hb.Team.CreateTeamMemberHandler)
		write.PUT("/:id", hb.Team.UpdateTeamMemberHandler)
		write.DELETE("/:id", hb.Team.DeleteTeamMemberHandler)
	}

	faq := r.Group("/api/faq")
	{
		faq.GET("", hb.FAQ.GetFAQsHandler)

		write := faq.Group("")
		write.Use(middleware.JWTAuthMiddleware(hb.Users), middleware.RequireRoles(editors...))
		write.POST("", hb.FAQ.CreateFAQHandler)
		write.PUT("/:id", hb.FAQ.UpdateFAQHandler)
		write.DELETE("/:id", hb.FAQ.DeleteFAQHandler)
	}
}

// RegisterContactRoutes registers the public contact form endpoint.
func RegisterContactRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/contact", hb.Contact.SubmitContactHandler)
}

// RegisterAnalyticsRoutes registers the staff analytics endpoint.
func RegisterAnalyticsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/analytics")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.Users))
		api.Use(middleware.RequireRoles(models.RoleSuperAdmin, models.RoleAdmin))
		api.GET("/summary", hb.Analytics.SummaryHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.HealthCheck()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	// Landing page hit counts feed the dashboard.
	r.GET("/", middleware.TrackVisit(hb.AnalyticsSvc, models.VisitPage), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Codabs Constructions API"})
	})

	RegisterAppointmentRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterContentRoutes(r, hb)
	RegisterContactRoutes(r, hb)
	RegisterAnalyticsRoutes(r, hb)
	RegisterHealthRoute(r)
}
