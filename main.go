package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codabs/config"
	"codabs/cron"
	"codabs/database"
	analyticsRepoPkg "codabs/database/repository/analytics"
	appointmentRepoPkg "codabs/database/repository/appointment"
	contentRepoPkg "codabs/database/repository/content"
	userRepoPkg "codabs/database/repository/user"
	"codabs/handlers"
	"codabs/routes"
	"codabs/services/analytics"
	"codabs/services/appointment"
	"codabs/services/contact"
	"codabs/services/content"
	"codabs/services/notification"
	"codabs/services/user"
	"codabs/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	availabilityRepo := appointmentRepoPkg.NewMongoAvailabilityRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	analyticsRepo := analyticsRepoPkg.NewMongoAnalyticsRepo()

	categoryRepo := contentRepoPkg.NewMongoContentRepo(content.CollCategories)
	subcategoryRepo := contentRepoPkg.NewMongoContentRepo(content.CollSubcategories)
	serviceRepo := contentRepoPkg.NewMongoContentRepo(content.CollServices)
	projectRepo := contentRepoPkg.NewMongoContentRepo(content.CollProjects)
	blogRepo := contentRepoPkg.NewMongoContentRepo(content.CollBlogs)
	testimonialRepo := contentRepoPkg.NewMongoContentRepo(content.CollTestimonials)
	teamRepo := contentRepoPkg.NewMongoContentRepo(content.CollTeam)
	faqRepo := contentRepoPkg.NewMongoContentRepo(content.CollFAQs)
	contactRepo := contentRepoPkg.NewMongoContentRepo(content.CollContact)

	// services.
	notificationService := notification.NewSMTPNotificationService()
	reminderScheduler := cron.NewScheduler()

	appointmentService := &appointment.DefaultAppointmentService{
		Repo:          apptRepo,
		Availability:  availabilityRepo,
		Notifier:      notificationService,
		Locker:        &appointment.RedisDayLocker{Client: utils.GetCacheClient()},
		Scheduler:     reminderScheduler,
		CountRejected: config.AppConfig.AdmissionCountRejected,
	}

	userService := &user.DefaultUserService{
		Repo:     userRepo,
		Storage:  storageService,
		Notifier: notificationService,
	}

	analyticsService := &analytics.DefaultAnalyticsService{Repo: analyticsRepo}

	categoryService := &content.DefaultCategoryService{Repo: categoryRepo}
	subcategoryService := &content.DefaultSubcategoryService{Repo: subcategoryRepo, Categories: categoryRepo}
	serviceService := &content.DefaultServiceService{Repo: serviceRepo, Storage: storageService}
	projectService := &content.DefaultProjectService{Repo: projectRepo, Storage: storageService}
	blogService := &content.DefaultBlogService{Repo: blogRepo, Storage: storageService}
	testimonialService := &content.DefaultTestimonialService{Repo: testimonialRepo, Storage: storageService}
	teamService := &content.DefaultTeamService{Repo: teamRepo, Storage: storageService}
	faqService := &content.DefaultFAQService{Repo: faqRepo}
	contactService := &contact.DefaultContactService{Repo: contactRepo, Notifier: notificationService}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Users:        userRepo,
		AnalyticsSvc: analyticsService,
		Appointment:  handlers.NewAppointmentHandler(appointmentService),
		User:         handlers.NewUserHandler(userService),
		Category:     handlers.NewCategoryHandler(categoryService),
		Subcategory:  handlers.NewSubcategoryHandler(subcategoryService),
		Service:      handlers.NewServiceHandler(serviceService),
		Project:      handlers.NewProjectHandler(projectService),
		Blog:         handlers.NewBlogHandler(blogService),
		Testimonial:  handlers.NewTestimonialHandler(testimonialService),
		Team:         handlers.NewTeamHandler(teamService),
		FAQ:          handlers.NewFAQHandler(faqService),
		Contact:      handlers.NewContactHandler(contactService),
		Analytics:    handlers.NewAnalyticsHandler(analyticsService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the reminder worker.
	cron.InitReminderWorker(apptRepo, notificationService)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := reminderScheduler.Close(); err != nil {
		logger.Sugar().Warnf("main: failed to close reminder scheduler: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
