package handlers

import (
	userRepo "codabs/database/repository/user"
	"codabs/services/analytics"
)

// HandlerBundle groups every handler, plus the dependencies route registration
// needs for auth and visit tracking middleware.
type HandlerBundle struct {
	Users        userRepo.UserRepository
	AnalyticsSvc analytics.AnalyticsService

	Appointment *AppointmentHandler
	User        *UserHandler
	Category    *CategoryHandler
	Subcategory *SubcategoryHandler
	Service     *ServiceHandler
	Project     *ProjectHandler
	Blog        *BlogHandler
	Testimonial *TestimonialHandler
	Team        *TeamHandler
	FAQ         *FAQHandler
	Contact     *ContactHandler
	Analytics   *AnalyticsHandler
}
