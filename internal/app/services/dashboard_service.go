package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/deepam/hostelmess/internal/app/models/dto"
	"github.com/deepam/hostelmess/internal/pkg/logger"
)

// Dashboard system status values
const (
	SystemStatusOperational = "operational"
	SystemStatusError       = "error"
)

// DashboardService assembles the aggregate snapshot for the admin
// landing page from the other services.
type DashboardService struct {
	studentService   *StudentService
	menuService      *MenuService
	feedbackService  *FeedbackService
	complaintService *ComplaintService
	logger           zerolog.Logger
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(studentService *StudentService, menuService *MenuService, feedbackService *FeedbackService, complaintService *ComplaintService) *DashboardService {
	return &DashboardService{
		studentService:   studentService,
		menuService:      menuService,
		feedbackService:  feedbackService,
		complaintService: complaintService,
		logger:           logger.WithFields(map[string]interface{}{"component": "dashboard_service"}),
	}
}

// GetOverview collects the dashboard counters. A failing counter is
// logged and left at zero; the snapshot is still returned with
// SystemStatus set to "error" so staff can tell it is partial.
func (s *DashboardService) GetOverview(ctx context.Context) (*dto.DashboardOverviewResponse, error) {
	overview := &dto.DashboardOverviewResponse{
		SystemStatus: SystemStatusOperational,
		GeneratedAt:  time.Now().Format(time.RFC3339),
	}

	var err error
	if overview.ActiveStudents, err = s.studentService.CountActiveStudents(ctx); err != nil {
		s.markDegraded(overview, "active students", err)
	}
	if overview.TodayMenus, err = s.menuService.CountTodaysMenus(ctx); err != nil {
		s.markDegraded(overview, "today's menus", err)
	}

	positive, err := s.feedbackService.GetPositiveFeedback(ctx)
	if err != nil {
		s.markDegraded(overview, "positive feedback", err)
	} else {
		overview.PositiveFeedback = int64(len(positive))
	}
	negative, err := s.feedbackService.GetNegativeFeedback(ctx)
	if err != nil {
		s.markDegraded(overview, "negative feedback", err)
	} else {
		overview.NegativeFeedback = int64(len(negative))
	}

	if overview.PendingComplaints, err = s.complaintService.CountPendingComplaints(ctx); err != nil {
		s.markDegraded(overview, "pending complaints", err)
	}
	if overview.UrgentComplaints, err = s.complaintService.CountUrgentOpenComplaints(ctx); err != nil {
		s.markDegraded(overview, "urgent complaints", err)
	}

	return overview, nil
}

func (s *DashboardService) markDegraded(overview *dto.DashboardOverviewResponse, counter string, err error) {
	overview.SystemStatus = SystemStatusError
	s.logger.Warn().Err(err).Str("counter", counter).Msg("Dashboard counter unavailable")
}
