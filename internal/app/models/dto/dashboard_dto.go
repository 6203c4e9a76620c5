package dto

// DashboardOverviewResponse is the aggregate snapshot for the admin
// landing page. SystemStatus turns "error" when any counter could not
// be collected; the remaining counters are still reported.
type DashboardOverviewResponse struct {
	ActiveStudents    int64  `json:"activeStudents" example:"142"`
	TodayMenus        int64  `json:"todayMenus" example:"3"`
	PositiveFeedback  int64  `json:"positiveFeedback" example:"25"`
	NegativeFeedback  int64  `json:"negativeFeedback" example:"3"`
	PendingComplaints int64  `json:"pendingComplaints" example:"4"`
	UrgentComplaints  int64  `json:"urgentComplaints" example:"1"`
	SystemStatus      string `json:"systemStatus" example:"operational"`
	GeneratedAt       string `json:"generatedAt" example:"2025-06-02T09:30:00.000Z"`
}
