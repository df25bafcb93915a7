package analytics

import (
	"fmt"

	analyticsRepo "codabs/database/repository/analytics"
	"codabs/models"
	"codabs/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AnalyticsService records visits and produces the dashboard summary.
type AnalyticsService interface {
	// Track records a single visit. Failures are logged, never surfaced.
	Track(visitType, referenceID, ip, userAgent string)
	// Summary builds the admin dashboard rollup.
	Summary() (*models.AnalyticsSummary, error)
}

// DefaultAnalyticsService is the production AnalyticsService.
type DefaultAnalyticsService struct {
	Repo analyticsRepo.AnalyticsRepository
}

// Track records a single visit. Tracking must never fail a page load, so
// errors are logged and dropped.
func (s *DefaultAnalyticsService) Track(visitType, referenceID, ip, userAgent string) {
	visit := &models.Visit{
		ID:          uuid.NewString(),
		Type:        visitType,
		ReferenceID: referenceID,
		IP:          ip,
		UserAgent:   userAgent,
	}
	if err := s.Repo.Insert(visit); err != nil {
		utils.GetLogger().Warn("Analytics tracking error", zap.Error(err))
	}
}

// Summary builds the admin dashboard rollup.
func (s *DefaultAnalyticsService) Summary() (*models.AnalyticsSummary, error) {
	totalPages, err := s.Repo.CountByType(models.VisitPage)
	if err != nil {
		return nil, fmt.Errorf("failed to count page visits: %w", err)
	}

	blogViews, err := s.Repo.ViewsByReference(models.VisitBlog, "blogs")
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate blog views: %w", err)
	}
	projectViews, err := s.Repo.ViewsByReference(models.VisitProject, "projects")
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate project views: %w", err)
	}

	return &models.AnalyticsSummary{
		TotalPageVisits: totalPages,
		BlogViews:       blogViews,
		ProjectViews:    projectViews,
	}, nil
}
